// Package i18n holds the supported display languages and the two-level
// string tables (language -> key -> text) used across the service.
//
// Lookups never fail: a missing entry falls back to the default language and
// then to the raw key.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Default is the language used when a request names none or an unsupported one
const Default = "en"

// Language describes one supported display language
type Language struct {
	Code       string `json:"code" yaml:"code"`
	Name       string `json:"name" yaml:"name"`
	NativeName string `json:"native_name" yaml:"native_name"`
	// VoicePrefix is the speech-synthesis voice prefix clients should pick
	VoicePrefix string `json:"voice_prefix" yaml:"voice_prefix"`
}

var languages = []Language{
	{Code: "en", Name: "English", NativeName: "English", VoicePrefix: "en"},
	{Code: "hi", Name: "Hindi", NativeName: "हिंदी", VoicePrefix: "hi"},
	{Code: "ta", Name: "Tamil", NativeName: "தமிழ்", VoicePrefix: "ta"},
	{Code: "te", Name: "Telugu", NativeName: "తెలుగు", VoicePrefix: "te"},
}

// matcher resolves Accept-Language preferences; the first tag is the fallback
var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Hindi,
	language.Tamil,
	language.Telugu,
})

// Languages returns the supported languages in display order
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// Supported reports whether code is exactly one of the supported codes
func Supported(code string) bool {
	for _, l := range languages {
		if l.Code == code {
			return true
		}
	}
	return false
}

// Get returns the language for code after normalization
func Get(code string) Language {
	code = Normalize(code)
	for _, l := range languages {
		if l.Code == code {
			return l
		}
	}
	return languages[0]
}

// Normalize maps any language tag onto a supported code.
// "hi-IN" becomes "hi"; unknown or malformed tags become Default.
func Normalize(code string) string {
	lang, _ := Match(code)
	return lang
}

// Match is Normalize that also reports whether code named a supported
// language rather than falling back to Default.
func Match(code string) (string, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Default, false
	}
	if Supported(code) {
		return code, true
	}

	tag, err := language.Parse(code)
	if err != nil {
		return Default, false
	}
	base, conf := tag.Base()
	if conf == language.No {
		return Default, false
	}
	if Supported(base.String()) {
		return base.String(), true
	}
	return Default, false
}

// FromAcceptLanguage picks the best supported language for an Accept-Language header
func FromAcceptLanguage(header string) string {
	lang, _ := MatchAcceptLanguage(header)
	return lang
}

// MatchAcceptLanguage is FromAcceptLanguage that also reports whether the
// header named a supported language
func MatchAcceptLanguage(header string) (string, bool) {
	if strings.TrimSpace(header) == "" {
		return Default, false
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return Default, false
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default, false
	}
	return languages[idx].Code, true
}

// Table is a two-level string table: language -> key -> text
type Table map[string]map[string]string

// Lookup resolves key for lang: requested language, then Default, then the key itself
func (t Table) Lookup(key, lang string) string {
	if text := t[Normalize(lang)][key]; text != "" {
		return text
	}
	if text := t[Default][key]; text != "" {
		return text
	}
	return key
}

// Has reports whether lang has its own non-empty entry for key
func (t Table) Has(key, lang string) bool {
	return t[lang][key] != ""
}

// Bundle returns every default-language key resolved for lang
func (t Table) Bundle(lang string) map[string]string {
	out := make(map[string]string, len(t[Default]))
	for key := range t[Default] {
		out[key] = t.Lookup(key, lang)
	}
	return out
}

// T looks up an interface string
func T(key, lang string) string {
	return UIStrings.Lookup(key, lang)
}
