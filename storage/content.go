package storage

import (
	"encoding/hex"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/crypto/blake2b"
)

const octetStream = "application/octet-stream"

var extensionTypes = map[string]string{
	".pdf":  "application/pdf",
	".txt":  "text/plain",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// ContentTypeByExtension maps a filename to a MIME type without looking at content
func ContentTypeByExtension(filename string) string {
	if t, ok := extensionTypes[strings.ToLower(filepath.Ext(filename))]; ok {
		return t
	}
	return octetStream
}

// DetectContentType sniffs head (the first bytes of a file) and falls back to
// the filename extension when the content is not recognised.
func DetectContentType(filename string, head []byte) string {
	if len(head) > 0 {
		detected := mimetype.Detect(head)
		if !detected.Is(octetStream) {
			t, _, _ := strings.Cut(detected.String(), ";")
			// Office files sniff as a generic container; the extension is more specific
			if t == "application/zip" || t == "application/x-ole-storage" {
				if byExt := ContentTypeByExtension(filename); byExt != octetStream {
					return byExt
				}
			}
			return t
		}
	}
	return ContentTypeByExtension(filename)
}

// Checksum returns the hex BLAKE2b-256 digest of r
func Checksum(r io.Reader) (string, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return "", fmt.Errorf("failed to init hash: %w", err)
	}
	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("failed to hash content: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
