package service

import (
	"context"
	"testing"

	"legalclarify-backend/matcher"
	"legalclarify-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGreeting(t *testing.T) {
	svc := NewChatService()

	greeting := svc.Greeting("lease.pdf", "en")
	assert.Contains(t, greeting, `I've read through your document "lease.pdf"`)

	// Untranslated languages use the English opener
	assert.Equal(t, greeting, svc.Greeting("lease.pdf", "ta"))
}

func TestSuggestedQuestions(t *testing.T) {
	svc := NewChatService()

	questions := svc.SuggestedQuestions("te")
	require.Len(t, questions, 6)
	assert.Equal(t, "Can my landlord kick me out without much warning?", questions[0])

	questions[0] = "changed"
	assert.NotEqual(t, "changed", svc.SuggestedQuestions("en")[0])
}

func TestAsk(t *testing.T) {
	ctx := context.Background()

	t.Run("Records both messages", func(t *testing.T) {
		docs, chat := newStubDocs(), &stubChat{}
		svc := NewChatService(ChatWithDocumentRepository(docs), ChatWithRepository(chat))
		doc := docs.put(&models.Document{Name: "lease.txt"})

		res, err := svc.Ask(ctx, AskRequest{DocumentID: doc.ID, Question: "  Can they EVICT me?  ", Language: "hi"})
		require.NoError(t, err)
		assert.Equal(t, matcher.Eviction, res.Match.Category)
		assert.Equal(t, "hi", res.Match.Language)
		assert.Equal(t, matcher.Default().Text(matcher.Eviction, "hi"), res.Match.Text)

		history, err := svc.History(ctx, doc.ID)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, models.SenderUser, history[0].Sender)
		assert.Equal(t, "Can they EVICT me?", history[0].Text)
		assert.Equal(t, models.SenderAI, history[1].Sender)
		assert.Equal(t, string(matcher.Eviction), history[1].Category)
	})

	t.Run("Unknown document", func(t *testing.T) {
		svc := NewChatService(ChatWithDocumentRepository(newStubDocs()))
		_, err := svc.Ask(ctx, AskRequest{DocumentID: uuid.New(), Question: "hello"})
		assert.ErrorIs(t, err, ErrDocumentNotFound)
	})

	t.Run("Empty question", func(t *testing.T) {
		svc := NewChatService()
		_, err := svc.Ask(ctx, AskRequest{DocumentID: uuid.New(), Question: "   "})
		assert.ErrorIs(t, err, ErrEmptyQuestion)
	})

	t.Run("Without repositories", func(t *testing.T) {
		svc := NewChatService()
		res, err := svc.Ask(ctx, AskRequest{DocumentID: uuid.New(), Question: "what is the deposit?"})
		require.NoError(t, err)
		assert.Equal(t, matcher.SecurityDeposit, res.Match.Category)
		assert.Nil(t, res.Answer)

		history, err := svc.History(ctx, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, history)
	})

	t.Run("Chat log failure", func(t *testing.T) {
		svc := NewChatService(ChatWithRepository(&stubChat{err: errBoom}))
		_, err := svc.Ask(ctx, AskRequest{DocumentID: uuid.New(), Question: "rent"})
		assert.ErrorIs(t, err, errBoom)
	})
}

func TestRespond(t *testing.T) {
	svc := NewChatService()
	m := svc.Respond("How do I break the lease early?", "xx")
	assert.Equal(t, "en", m.Language)
	assert.NotEmpty(t, m.Text)
}
