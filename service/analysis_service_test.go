package service

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	"legalclarify-backend/extract"
	"legalclarify-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAnalysisFixture(analyzer Analyzer) (*AnalysisService, *stubDocs, *stubJobs) {
	docs, jobs := newStubDocs(), newStubJobs()
	svc := NewAnalysisService(
		AnalysisWithDocumentRepository(docs),
		AnalysisWithJobRepository(jobs),
		AnalysisWithAnalyzer(analyzer),
		AnalysisWithLogger(log.New(io.Discard, "", 0)),
	)
	return svc, docs, jobs
}

func TestStartAnalysis(t *testing.T) {
	ctx := context.Background()
	svc, docs, _ := newAnalysisFixture(NewMockAnalyzer(0))

	t.Run("Creates pending job with all steps", func(t *testing.T) {
		doc := docs.put(&models.Document{Name: "lease.txt", DocumentType: extract.TypeRental})

		res, err := svc.StartAnalysis(ctx, StartAnalysisRequest{DocumentID: doc.ID})
		require.NoError(t, err)

		status, err := svc.GetJobStatus(ctx, GetJobStatusRequest{JobID: res.JobID})
		require.NoError(t, err)
		assert.Equal(t, models.JobStatusPending, status.Job.Status)
		require.Len(t, status.Job.Steps, 4)
		for i, name := range []string{StepReadingDocument, StepIdentifyingRisks, StepCrossReferencing, StepPreparingSummary} {
			assert.Equal(t, name, status.Job.Steps[i].Name)
			assert.Equal(t, models.StepPending, status.Job.Steps[i].Status)
		}
	})

	t.Run("Unknown document", func(t *testing.T) {
		_, err := svc.StartAnalysis(ctx, StartAnalysisRequest{DocumentID: uuid.New()})
		assert.ErrorIs(t, err, ErrDocumentNotFound)
	})

	t.Run("Unknown job", func(t *testing.T) {
		_, err := svc.GetJobStatus(ctx, GetJobStatusRequest{JobID: uuid.New()})
		assert.ErrorIs(t, err, ErrJobNotFound)
	})
}

func TestProcessAnalysis(t *testing.T) {
	ctx := context.Background()

	t.Run("Completes and stores analysis", func(t *testing.T) {
		svc, docs, jobs := newAnalysisFixture(NewMockAnalyzer(0))
		doc := docs.put(&models.Document{Name: "lease.txt", DocumentType: extract.TypeRental})

		res, err := svc.StartAnalysis(ctx, StartAnalysisRequest{DocumentID: doc.ID})
		require.NoError(t, err)
		require.NoError(t, svc.ProcessAnalysis(ctx, res.JobID))

		status, err := svc.GetJobStatus(ctx, GetJobStatusRequest{JobID: res.JobID})
		require.NoError(t, err)
		assert.Equal(t, models.JobStatusCompleted, status.Job.Status)
		assert.Nil(t, status.Job.CurrentStep)
		assert.NotNil(t, status.Job.CompletedAt)
		for _, step := range status.Job.Steps {
			assert.Equal(t, models.StepCompleted, step.Status, step.Name)
		}
		assert.Equal(t, "3 sections referenced", status.Job.Steps.Step(StepCrossReferencing).Description)

		// Steps run strictly in order
		assert.Equal(t, []string{
			StepReadingDocument + "=in_progress",
			StepReadingDocument + "=completed",
			StepIdentifyingRisks + "=in_progress",
			StepIdentifyingRisks + "=completed",
			StepCrossReferencing + "=in_progress",
			StepCrossReferencing + "=completed",
			StepPreparingSummary + "=in_progress",
			StepPreparingSummary + "=completed",
		}, jobs.progress)

		stored, err := docs.GetByID(ctx, doc.ID)
		require.NoError(t, err)
		require.True(t, stored.Analyzed())
		assert.Equal(t, models.RiskMedium, stored.Analysis.RiskLevel)
	})

	t.Run("Analyzer failure fails the job", func(t *testing.T) {
		svc, docs, _ := newAnalysisFixture(failingAnalyzer{err: errBoom})
		doc := docs.put(&models.Document{Name: "lease.txt"})

		res, err := svc.StartAnalysis(ctx, StartAnalysisRequest{DocumentID: doc.ID})
		require.NoError(t, err)

		err = svc.ProcessAnalysis(ctx, res.JobID)
		assert.ErrorIs(t, err, errBoom)

		status, err := svc.GetJobStatus(ctx, GetJobStatusRequest{JobID: res.JobID})
		require.NoError(t, err)
		assert.Equal(t, models.JobStatusFailed, status.Job.Status)
		require.NotNil(t, status.Job.ErrorMessage)
		assert.Contains(t, *status.Job.ErrorMessage, "boom")
		assert.Equal(t, models.StepCompleted, status.Job.Steps.Step(StepReadingDocument).Status)
		assert.Equal(t, models.StepFailed, status.Job.Steps.Step(StepIdentifyingRisks).Status)
		assert.Equal(t, models.StepPending, status.Job.Steps.Step(StepPreparingSummary).Status)

		stored, err := docs.GetByID(ctx, doc.ID)
		require.NoError(t, err)
		assert.False(t, stored.Analyzed())
	})

	t.Run("Cancelled context still records failure", func(t *testing.T) {
		svc, docs, _ := newAnalysisFixture(NewMockAnalyzer(time.Hour))
		doc := docs.put(&models.Document{Name: "lease.txt"})
		res, err := svc.StartAnalysis(ctx, StartAnalysisRequest{DocumentID: doc.ID})
		require.NoError(t, err)

		cctx, cancel := context.WithCancel(ctx)
		go func() {
			time.Sleep(20 * time.Millisecond)
			cancel()
		}()
		err = svc.ProcessAnalysis(cctx, res.JobID)
		assert.ErrorIs(t, err, context.Canceled)

		status, err := svc.GetJobStatus(ctx, GetJobStatusRequest{JobID: res.JobID})
		require.NoError(t, err)
		assert.Equal(t, models.JobStatusFailed, status.Job.Status)
	})
}

func TestLatestJob(t *testing.T) {
	ctx := context.Background()
	svc, docs, _ := newAnalysisFixture(NewMockAnalyzer(0))
	doc := docs.put(&models.Document{Name: "lease.txt"})

	_, err := svc.LatestJob(ctx, doc.ID)
	assert.ErrorIs(t, err, ErrJobNotFound)

	res, err := svc.StartAnalysis(ctx, StartAnalysisRequest{DocumentID: doc.ID})
	require.NoError(t, err)
	job, err := svc.LatestJob(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, res.JobID, job.ID)
}
