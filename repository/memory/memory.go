// Package memory provides in-process repositories with the same behaviour as
// the Postgres ones. The server uses them when STORE=memory;
// data is lost on restart.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"legalclarify-backend/models"
	"legalclarify-backend/repository"

	"github.com/google/uuid"
)

// Store holds every table behind one lock
type Store struct {
	mu    sync.RWMutex
	docs  map[uuid.UUID]*models.Document
	files map[uuid.UUID]*models.File
	jobs  map[uuid.UUID]*models.AnalysisJob
	users map[uuid.UUID]*models.User
	chat  []*models.ChatMessage
	// seq orders rows created within the same clock tick
	seq map[uuid.UUID]int64
	n   int64
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		docs:  map[uuid.UUID]*models.Document{},
		files: map[uuid.UUID]*models.File{},
		jobs:  map[uuid.UUID]*models.AnalysisJob{},
		users: map[uuid.UUID]*models.User{},
		seq:   map[uuid.UUID]int64{},
	}
}

func (s *Store) stamp(id uuid.UUID) time.Time {
	s.n++
	s.seq[id] = s.n
	return time.Now().UTC()
}

// Documents returns the document repository
func (s *Store) Documents() *DocumentRepository { return &DocumentRepository{s} }

// Files returns the file repository
func (s *Store) Files() *FileRepository { return &FileRepository{s} }

// Jobs returns the analysis job repository
func (s *Store) Jobs() *AnalysisJobRepository { return &AnalysisJobRepository{s} }

// Chat returns the chat repository
func (s *Store) Chat() *ChatRepository { return &ChatRepository{s} }

// Users returns the user repository
func (s *Store) Users() *UserRepository { return &UserRepository{s} }

// DocumentRepository is the in-memory document table
type DocumentRepository struct{ s *Store }

func (r *DocumentRepository) Create(_ context.Context, doc *models.Document) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	doc.ID = uuid.New()
	now := r.s.stamp(doc.ID)
	doc.UploadDate, doc.CreatedAt, doc.UpdatedAt = now, now, now
	cp := *doc
	r.s.docs[doc.ID] = &cp
	return nil
}

func (r *DocumentRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Document, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	doc, ok := r.s.docs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *doc
	return &cp, nil
}

func (r *DocumentRepository) UpdateAnalysis(_ context.Context, id uuid.UUID, analysis *models.DocumentAnalysis) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	doc, ok := r.s.docs[id]
	if !ok {
		return repository.ErrNotFound
	}
	doc.Analysis = analysis
	doc.UpdatedAt = time.Now().UTC()
	return nil
}

// ListHistory returns up to limit documents of userID (nil selects anonymous
// uploads), newest first
func (r *DocumentRepository) ListHistory(_ context.Context, userID *uuid.UUID, limit int) ([]*models.Document, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*models.Document, 0)
	for _, doc := range r.s.docs {
		if !sameUser(doc.UserID, userID) {
			continue
		}
		cp := *doc
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return r.s.seq[out[i].ID] > r.s.seq[out[j].ID] })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *DocumentRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.docs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.docs, id)

	// Cascade like the chat_messages and analysis_jobs foreign keys
	kept := r.s.chat[:0]
	for _, m := range r.s.chat {
		if m.DocumentID != id {
			kept = append(kept, m)
		}
	}
	r.s.chat = kept
	for jobID, job := range r.s.jobs {
		if job.DocumentID == id {
			delete(r.s.jobs, jobID)
		}
	}
	return nil
}

func sameUser(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// FileRepository is the in-memory file table
type FileRepository struct{ s *Store }

func (r *FileRepository) Create(_ context.Context, file *models.File) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if file.ID == uuid.Nil {
		file.ID = uuid.New()
	}
	file.CreatedAt = r.s.stamp(file.ID)
	cp := *file
	r.s.files[file.ID] = &cp
	return nil
}

func (r *FileRepository) GetByID(_ context.Context, id uuid.UUID) (*models.File, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	file, ok := r.s.files[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *file
	return &cp, nil
}

func (r *FileRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.files[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.files, id)
	return nil
}

// AnalysisJobRepository is the in-memory analysis job table
type AnalysisJobRepository struct{ s *Store }

func cloneJob(job *models.AnalysisJob) *models.AnalysisJob {
	cp := *job
	cp.Steps = append(models.AnalysisSteps(nil), job.Steps...)
	return &cp
}

func (r *AnalysisJobRepository) Create(_ context.Context, job *models.AnalysisJob) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	job.ID = uuid.New()
	now := r.s.stamp(job.ID)
	job.CreatedAt, job.UpdatedAt = now, now
	r.s.jobs[job.ID] = cloneJob(job)
	return nil
}

func (r *AnalysisJobRepository) GetByID(_ context.Context, id uuid.UUID) (*models.AnalysisJob, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	job, ok := r.s.jobs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneJob(job), nil
}

func (r *AnalysisJobRepository) GetLatestByDocumentID(_ context.Context, documentID uuid.UUID) (*models.AnalysisJob, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var latest *models.AnalysisJob
	for _, job := range r.s.jobs {
		if job.DocumentID != documentID {
			continue
		}
		if latest == nil || r.s.seq[job.ID] > r.s.seq[latest.ID] {
			latest = job
		}
	}
	if latest == nil {
		return nil, repository.ErrNotFound
	}
	return cloneJob(latest), nil
}

func (r *AnalysisJobRepository) update(id uuid.UUID, fn func(*models.AnalysisJob)) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	job, ok := r.s.jobs[id]
	if !ok {
		return repository.ErrNotFound
	}
	fn(job)
	job.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *AnalysisJobRepository) UpdateStatus(_ context.Context, id uuid.UUID, status models.AnalysisJobStatus) error {
	return r.update(id, func(job *models.AnalysisJob) {
		job.Status = status
	})
}

func (r *AnalysisJobRepository) UpdateProgress(_ context.Context, id uuid.UUID, currentStep string, steps models.AnalysisSteps) error {
	return r.update(id, func(job *models.AnalysisJob) {
		step := currentStep
		job.CurrentStep = &step
		job.Steps = append(models.AnalysisSteps(nil), steps...)
	})
}

func (r *AnalysisJobRepository) Complete(_ context.Context, id uuid.UUID) error {
	return r.update(id, func(job *models.AnalysisJob) {
		now := time.Now().UTC()
		job.Status = models.JobStatusCompleted
		job.CurrentStep = nil
		job.CompletedAt = &now
	})
}

func (r *AnalysisJobRepository) Fail(_ context.Context, id uuid.UUID, errorMessage string) error {
	return r.update(id, func(job *models.AnalysisJob) {
		msg := errorMessage
		job.Status = models.JobStatusFailed
		job.ErrorMessage = &msg
	})
}

// ChatRepository is the in-memory chat log
type ChatRepository struct{ s *Store }

func (r *ChatRepository) Append(_ context.Context, msg *models.ChatMessage) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	msg.ID = uuid.New()
	msg.CreatedAt = r.s.stamp(msg.ID)
	cp := *msg
	r.s.chat = append(r.s.chat, &cp)
	return nil
}

func (r *ChatRepository) ListByDocument(_ context.Context, documentID uuid.UUID) ([]*models.ChatMessage, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*models.ChatMessage, 0)
	for _, m := range r.s.chat {
		if m.DocumentID == documentID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

// UserRepository is the in-memory user table
type UserRepository struct{ s *Store }

func (r *UserRepository) Create(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return repository.ErrDuplicateEmail
		}
	}
	user.ID = uuid.New()
	now := r.s.stamp(user.ID)
	user.CreatedAt, user.UpdatedAt = now, now
	cp := *user
	r.s.users[user.ID] = &cp
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	user, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *user
	return &cp, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, user := range r.s.users {
		if strings.EqualFold(user.Email, email) {
			cp := *user
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *UserRepository) UpdatePreferredLanguage(_ context.Context, id uuid.UUID, language string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	user, ok := r.s.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	user.PreferredLanguage = language
	user.UpdatedAt = time.Now().UTC()
	return nil
}
