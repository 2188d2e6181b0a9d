package repository

import (
	"context"

	"legalclarify-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ChatRepository stores the per-document chat log
type ChatRepository struct {
	db *pgxpool.Pool
}

// NewChatRepository creates a new chat repository
func NewChatRepository(db *pgxpool.Pool) *ChatRepository {
	return &ChatRepository{db: db}
}

// Append adds a message to the log
func (r *ChatRepository) Append(ctx context.Context, msg *models.ChatMessage) error {
	query := `
		INSERT INTO chat_messages (document_id, sender, category, text, language)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	return r.db.QueryRow(
		ctx, query,
		msg.DocumentID,
		msg.Sender,
		msg.Category,
		msg.Text,
		msg.Language,
	).Scan(&msg.ID, &msg.CreatedAt)
}

// ListByDocument returns a document's messages oldest first
func (r *ChatRepository) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*models.ChatMessage, error) {
	query := `
		SELECT id, document_id, sender, category, text, language, created_at
		FROM chat_messages
		WHERE document_id = $1
		ORDER BY created_at ASC, id ASC`

	rows, err := r.db.Query(ctx, query, documentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]*models.ChatMessage, 0)
	for rows.Next() {
		msg := &models.ChatMessage{}
		if err := rows.Scan(
			&msg.ID,
			&msg.DocumentID,
			&msg.Sender,
			&msg.Category,
			&msg.Text,
			&msg.Language,
			&msg.CreatedAt,
		); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}

	return messages, rows.Err()
}
