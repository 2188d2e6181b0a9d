package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sort"
	"sync"
	"time"

	"legalclarify-backend/models"
	"legalclarify-backend/repository"
	"legalclarify-backend/storage"

	"github.com/google/uuid"
)

var (
	_ DocumentRepository    = (*stubDocs)(nil)
	_ FileRepository        = (*stubFiles)(nil)
	_ AnalysisJobRepository = (*stubJobs)(nil)
	_ ChatRepository        = (*stubChat)(nil)
	_ UserRepository        = (*stubUsers)(nil)
	_ storage.Storage       = (*memStorage)(nil)
)

type stubDocs struct {
	mu        sync.Mutex
	docs      map[uuid.UUID]*models.Document
	createErr error
	clock     time.Time
}

func newStubDocs() *stubDocs {
	return &stubDocs{docs: map[uuid.UUID]*models.Document{}, clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (r *stubDocs) Create(_ context.Context, doc *models.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	doc.ID = uuid.New()
	r.clock = r.clock.Add(time.Minute)
	doc.UploadDate, doc.CreatedAt, doc.UpdatedAt = r.clock, r.clock, r.clock
	cp := *doc
	r.docs[doc.ID] = &cp
	return nil
}

func (r *stubDocs) GetByID(_ context.Context, id uuid.UUID) (*models.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *doc
	return &cp, nil
}

func (r *stubDocs) UpdateAnalysis(_ context.Context, id uuid.UUID, analysis *models.DocumentAnalysis) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.docs[id]
	if !ok {
		return repository.ErrNotFound
	}
	doc.Analysis = analysis
	return nil
}

func (r *stubDocs) ListHistory(_ context.Context, userID *uuid.UUID, limit int) ([]*models.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Document
	for _, doc := range r.docs {
		switch {
		case userID == nil && doc.UserID != nil:
			continue
		case userID != nil && (doc.UserID == nil || *doc.UserID != *userID):
			continue
		}
		cp := *doc
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UploadDate.After(out[j].UploadDate) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubDocs) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.docs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.docs, id)
	return nil
}

// put stores an analyzed document directly
func (r *stubDocs) put(doc *models.Document) *models.Document {
	if err := r.Create(context.Background(), doc); err != nil {
		panic(err)
	}
	return doc
}

type stubFiles struct {
	mu    sync.Mutex
	files map[uuid.UUID]*models.File
}

func newStubFiles() *stubFiles {
	return &stubFiles{files: map[uuid.UUID]*models.File{}}
}

func (r *stubFiles) Create(_ context.Context, file *models.File) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if file.ID == uuid.Nil {
		file.ID = uuid.New()
	}
	cp := *file
	r.files[file.ID] = &cp
	return nil
}

func (r *stubFiles) GetByID(_ context.Context, id uuid.UUID) (*models.File, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	file, ok := r.files[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *file
	return &cp, nil
}

func (r *stubFiles) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.files[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.files, id)
	return nil
}

type stubJobs struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]*models.AnalysisJob
	// progress records every UpdateProgress call as "step=status" of the current step
	progress []string
}

func newStubJobs() *stubJobs {
	return &stubJobs{jobs: map[uuid.UUID]*models.AnalysisJob{}}
}

func cloneJob(job *models.AnalysisJob) *models.AnalysisJob {
	cp := *job
	cp.Steps = append(models.AnalysisSteps(nil), job.Steps...)
	return &cp
}

func (r *stubJobs) Create(_ context.Context, job *models.AnalysisJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job.ID = uuid.New()
	r.jobs[job.ID] = cloneJob(job)
	return nil
}

func (r *stubJobs) GetByID(_ context.Context, id uuid.UUID) (*models.AnalysisJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return cloneJob(job), nil
}

func (r *stubJobs) GetLatestByDocumentID(_ context.Context, documentID uuid.UUID) (*models.AnalysisJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, job := range r.jobs {
		if job.DocumentID == documentID {
			return cloneJob(job), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *stubJobs) UpdateStatus(_ context.Context, id uuid.UUID, status models.AnalysisJobStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return repository.ErrNotFound
	}
	job.Status = status
	return nil
}

func (r *stubJobs) UpdateProgress(_ context.Context, id uuid.UUID, currentStep string, steps models.AnalysisSteps) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return repository.ErrNotFound
	}
	step := currentStep
	job.CurrentStep = &step
	job.Steps = append(models.AnalysisSteps(nil), steps...)
	if s := job.Steps.Step(currentStep); s != nil {
		r.progress = append(r.progress, currentStep+"="+string(s.Status))
	}
	return nil
}

func (r *stubJobs) Complete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return repository.ErrNotFound
	}
	now := time.Now()
	job.Status = models.JobStatusCompleted
	job.CurrentStep = nil
	job.CompletedAt = &now
	return nil
}

func (r *stubJobs) Fail(_ context.Context, id uuid.UUID, msg string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return repository.ErrNotFound
	}
	job.Status = models.JobStatusFailed
	job.ErrorMessage = &msg
	return nil
}

type stubChat struct {
	mu   sync.Mutex
	msgs []*models.ChatMessage
	err  error
}

func (r *stubChat) Append(_ context.Context, msg *models.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	msg.ID = uuid.New()
	msg.CreatedAt = time.Now()
	cp := *msg
	r.msgs = append(r.msgs, &cp)
	return nil
}

func (r *stubChat) ListByDocument(_ context.Context, documentID uuid.UUID) ([]*models.ChatMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*models.ChatMessage{}
	for _, m := range r.msgs {
		if m.DocumentID == documentID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

type stubUsers struct {
	mu    sync.Mutex
	users map[uuid.UUID]*models.User
}

func newStubUsers() *stubUsers {
	return &stubUsers{users: map[uuid.UUID]*models.User{}}
}

func (r *stubUsers) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *stubUsers) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *user
	return &cp, nil
}

func (r *stubUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			cp := *user
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *stubUsers) UpdatePreferredLanguage(_ context.Context, id uuid.UUID, language string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	user.PreferredLanguage = language
	return nil
}

type memStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{objects: map[string][]byte{}}
}

func (s *memStorage) Upload(_ context.Context, fileID uuid.UUID, filename string, data io.Reader) (string, error) {
	b, err := io.ReadAll(data)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	path := fileID.String() + "/" + filename
	s.objects[path] = b
	return path, nil
}

func (s *memStorage) Download(_ context.Context, path string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.objects[path]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (s *memStorage) Delete(_ context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, path)
	return nil
}

func (s *memStorage) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

// failingAnalyzer always returns err
type failingAnalyzer struct{ err error }

func (a failingAnalyzer) Analyze(context.Context, AnalyzeInput) (*models.DocumentAnalysis, error) {
	return nil, a.err
}

var errBoom = errors.New("boom")
