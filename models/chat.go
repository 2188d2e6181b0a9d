package models

import (
	"time"

	"github.com/google/uuid"
)

// Sender identifies who wrote a chat message
type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

// ChatMessage is one entry in a document's chat log
type ChatMessage struct {
	ID         uuid.UUID `json:"id"`
	DocumentID uuid.UUID `json:"document_id"`
	Sender     Sender    `json:"sender"`
	Category   string    `json:"category,omitempty"`
	Text       string    `json:"text"`
	Language   string    `json:"language"`
	CreatedAt  time.Time `json:"created_at"`
}
