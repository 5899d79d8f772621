package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"screenerpro/screener/internal/engine"
	"screenerpro/screener/internal/models"
)

type fakeScreeningRepo struct {
	screening    *models.Screening
	docIDs       []uuid.UUID
	statuses     []models.ScreeningStatus
	failedReason string
	completed    bool
	mode         string
	records      []models.ScoreRecord
}

func (f *fakeScreeningRepo) Create(screening *models.Screening, documentIDs []uuid.UUID) error {
	return nil
}

func (f *fakeScreeningRepo) FindByID(id uuid.UUID) (*models.Screening, error) {
	if f.screening == nil {
		return nil, fmt.Errorf("screening not found")
	}
	return f.screening, nil
}

func (f *fakeScreeningRepo) FindDocumentIDs(screeningID uuid.UUID) ([]uuid.UUID, error) {
	return f.docIDs, nil
}

func (f *fakeScreeningRepo) UpdateStatus(id uuid.UUID, status models.ScreeningStatus) error {
	f.statuses = append(f.statuses, status)
	return nil
}

func (f *fakeScreeningRepo) MarkFailed(id uuid.UUID, reason string) error {
	f.failedReason = reason
	return nil
}

func (f *fakeScreeningRepo) Complete(id uuid.UUID, mode string, records []models.ScoreRecord) error {
	f.completed = true
	f.mode = mode
	f.records = records
	return nil
}

func (f *fakeScreeningRepo) FindPendingIDs(limit int) ([]uuid.UUID, error) {
	return nil, nil
}

func (f *fakeScreeningRepo) FindRecords(screeningID uuid.UUID) ([]models.ScoreRecord, error) {
	return f.records, nil
}

type fakeDocRepo struct {
	docs map[uuid.UUID]models.Document
}

func (f *fakeDocRepo) Create(document *models.Document) error { return nil }

func (f *fakeDocRepo) FindByID(id uuid.UUID) (*models.Document, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, fmt.Errorf("document not found")
	}
	return &doc, nil
}

func (f *fakeDocRepo) FindByIDs(ids []uuid.UUID) ([]models.Document, error) {
	var out []models.Document
	for _, id := range ids {
		if doc, ok := f.docs[id]; ok {
			out = append(out, doc)
		}
	}
	return out, nil
}

type fakeJobRepo struct {
	job *models.JobProfile
}

func (f *fakeJobRepo) Create(job *models.JobProfile) error { return nil }

func (f *fakeJobRepo) FindByID(id uuid.UUID) (*models.JobProfile, error) {
	if f.job == nil {
		return nil, fmt.Errorf("job profile not found")
	}
	return f.job, nil
}

func (f *fakeJobRepo) FindAll() ([]models.JobProfile, error) { return nil, nil }

func (f *fakeJobRepo) FindByTitle(title string) (*models.JobProfile, error) { return nil, nil }

type fakeParser struct {
	texts map[string]string
}

func (f *fakeParser) ExtractText(filePath string) (string, error) {
	text, ok := f.texts[filePath]
	if !ok {
		return "", fmt.Errorf("no text content found in PDF")
	}
	return text, nil
}

func testVocabulary() *engine.Vocabulary {
	return engine.NewVocabulary([]string{"go", "python", "docker", "kubernetes"}, nil)
}

func TestProcessScreening_RanksAndSkips(t *testing.T) {
	docStrong := models.Document{ID: uuid.New(), OriginalFileName: "strong.pdf", FilePath: "/tmp/strong.pdf"}
	docWeak := models.Document{ID: uuid.New(), OriginalFileName: "weak.pdf", FilePath: "/tmp/weak.pdf"}
	docBroken := models.Document{ID: uuid.New(), OriginalFileName: "broken.pdf", FilePath: "/tmp/broken.pdf"}

	screeningID := uuid.New()
	screeningRepo := &fakeScreeningRepo{
		screening: &models.Screening{ID: screeningID, JobProfileID: uuid.New()},
		docIDs:    []uuid.UUID{docWeak.ID, docBroken.ID, docStrong.ID},
	}
	docRepo := &fakeDocRepo{docs: map[uuid.UUID]models.Document{
		docStrong.ID: docStrong,
		docWeak.ID:   docWeak,
		docBroken.ID: docBroken,
	}}
	jobRepo := &fakeJobRepo{job: &models.JobProfile{
		Title:       "Backend Engineer",
		Description: "We need go python docker expertise",
	}}
	parser := &fakeParser{texts: map[string]string{
		"/tmp/strong.pdf": "JANE DOE\njane@example.com\nExpert in go, python and docker with 6+ years of experience",
		"/tmp/weak.pdf":   "JOHN SMITH\nSome exposure to python",
	}}

	// nil encoder and predictor keep scoring on the keyword fallback path
	scorer := engine.NewScorer(nil, nil, testVocabulary())
	svc := NewScreenerService(screeningRepo, docRepo, jobRepo, parser, scorer, nil, 2)

	err := svc.ProcessScreening(context.Background(), screeningID)
	require.NoError(t, err)

	assert.Contains(t, screeningRepo.statuses, models.StatusProcessing)
	assert.True(t, screeningRepo.completed)
	assert.Equal(t, string(engine.ScorePathFallback), screeningRepo.mode)

	records := screeningRepo.records
	require.Len(t, records, 3)

	// Scored records come first in descending score order, skipped last.
	assert.Equal(t, "strong.pdf", records[0].FileName)
	assert.Equal(t, 1, records[0].Rank)
	assert.Equal(t, "Jane Doe", records[0].CandidateName)
	assert.Equal(t, "jane@example.com", records[0].Email)
	assert.Greater(t, records[0].Score, records[1].Score)
	assert.Equal(t, string(engine.ScorePathFallback), records[0].ScorePath)

	assert.Equal(t, "weak.pdf", records[1].FileName)
	assert.Equal(t, 2, records[1].Rank)

	assert.Equal(t, "broken.pdf", records[2].FileName)
	assert.Equal(t, 3, records[2].Rank)
	require.NotNil(t, records[2].SkipReason)
	assert.Contains(t, *records[2].SkipReason, "text extraction failed")
	assert.Zero(t, records[2].Score)
}

func TestProcessScreening_MissingJobProfileFailsScreening(t *testing.T) {
	screeningID := uuid.New()
	screeningRepo := &fakeScreeningRepo{
		screening: &models.Screening{ID: screeningID, JobProfileID: uuid.New()},
	}

	scorer := engine.NewScorer(nil, nil, testVocabulary())
	svc := NewScreenerService(screeningRepo, &fakeDocRepo{}, &fakeJobRepo{}, &fakeParser{}, scorer, nil, 1)

	err := svc.ProcessScreening(context.Background(), screeningID)
	require.Error(t, err)
	assert.False(t, screeningRepo.completed)
	assert.Contains(t, screeningRepo.failedReason, "job profile not found")
}
