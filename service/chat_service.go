package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"legalclarify-backend/i18n"
	"legalclarify-backend/matcher"
	"legalclarify-backend/models"
	"legalclarify-backend/repository"

	"github.com/google/uuid"
)

var ErrEmptyQuestion = errors.New("question is empty")

// chatText holds the chat opener strings. Only English is translated so far;
// other languages fall back to it.
var chatText = i18n.Table{
	"en": {
		"greeting": `Hi! I've read through your document "%s" and I'm here to help you understand it. Think of me as your friendly legal translator - I can explain confusing parts, tell you about your rights, or help you spot anything that might be unfair. What questions do you have?`,
	},
}

var suggestedQuestions = map[string][]string{
	"en": {
		"Can my landlord kick me out without much warning?",
		"What happens if I need to move out early?",
		"Can my landlord raise the rent whenever they want?",
		"What if something expensive breaks - who pays?",
		"Is this security deposit amount normal?",
		"What are my rights if the landlord doesn't fix things?",
	},
}

// ChatService answers document questions with canned responses
type ChatService struct {
	matcher *matcher.Matcher
	docRepo DocumentRepository
	chat    ChatRepository
	logger  *log.Logger
}

// ChatServiceOption is a functional option for ChatService
type ChatServiceOption func(*ChatService)

// ChatWithMatcher sets the response matcher
func ChatWithMatcher(m *matcher.Matcher) ChatServiceOption {
	return func(s *ChatService) {
		s.matcher = m
	}
}

// ChatWithDocumentRepository enables document existence checks
func ChatWithDocumentRepository(repo DocumentRepository) ChatServiceOption {
	return func(s *ChatService) {
		s.docRepo = repo
	}
}

// ChatWithRepository enables the persisted chat log
func ChatWithRepository(repo ChatRepository) ChatServiceOption {
	return func(s *ChatService) {
		s.chat = repo
	}
}

// ChatWithLogger sets the logger
func ChatWithLogger(l *log.Logger) ChatServiceOption {
	return func(s *ChatService) {
		s.logger = l
	}
}

// NewChatService creates a chat service using the default matcher unless one is given
func NewChatService(opts ...ChatServiceOption) *ChatService {
	s := &ChatService{}
	for _, opt := range opts {
		opt(s)
	}
	if s.matcher == nil {
		s.matcher = matcher.Default()
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	return s
}

// Greeting returns the opening chat line for a document
func (s *ChatService) Greeting(documentName, lang string) string {
	return fmt.Sprintf(chatText.Lookup("greeting", lang), documentName)
}

// SuggestedQuestions returns starter questions in lang, or English
func (s *ChatService) SuggestedQuestions(lang string) []string {
	questions, ok := suggestedQuestions[i18n.Normalize(lang)]
	if !ok {
		questions = suggestedQuestions[i18n.Default]
	}
	out := make([]string, len(questions))
	copy(out, questions)
	return out
}

// Respond answers a question without touching any document
func (s *ChatService) Respond(question, lang string) matcher.Match {
	return s.matcher.Resolve(matcher.MatchRequest{Question: question, Language: lang})
}

// AskRequest is a question about one document
type AskRequest struct {
	DocumentID uuid.UUID
	Question   string
	Language   string
}

// AskResult is the answer to an AskRequest
type AskResult struct {
	Match    matcher.Match       `json:"match"`
	Question *models.ChatMessage `json:"question,omitempty"`
	Answer   *models.ChatMessage `json:"answer,omitempty"`
}

// Ask answers a question about a document and records both sides of the
// exchange when a chat repository is configured
func (s *ChatService) Ask(ctx context.Context, req AskRequest) (*AskResult, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return nil, ErrEmptyQuestion
	}

	if s.docRepo != nil {
		if _, err := s.docRepo.GetByID(ctx, req.DocumentID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrDocumentNotFound
			}
			return nil, fmt.Errorf("failed to load document: %w", err)
		}
	}

	match := s.Respond(question, req.Language)
	result := &AskResult{Match: match}
	if s.chat == nil {
		return result, nil
	}

	userMsg := &models.ChatMessage{
		DocumentID: req.DocumentID,
		Sender:     models.SenderUser,
		Text:       question,
		Language:   match.Language,
	}
	if err := s.chat.Append(ctx, userMsg); err != nil {
		return nil, fmt.Errorf("failed to record question: %w", err)
	}
	aiMsg := &models.ChatMessage{
		DocumentID: req.DocumentID,
		Sender:     models.SenderAI,
		Category:   string(match.Category),
		Text:       match.Text,
		Language:   match.Language,
	}
	if err := s.chat.Append(ctx, aiMsg); err != nil {
		return nil, fmt.Errorf("failed to record answer: %w", err)
	}

	result.Question, result.Answer = userMsg, aiMsg
	return result, nil
}

// History returns the recorded chat of a document, oldest first
func (s *ChatService) History(ctx context.Context, documentID uuid.UUID) ([]*models.ChatMessage, error) {
	if s.chat == nil {
		return []*models.ChatMessage{}, nil
	}
	msgs, err := s.chat.ListByDocument(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}
	return msgs, nil
}
