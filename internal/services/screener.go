package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"screenerpro/screener/internal/engine"
	"screenerpro/screener/internal/models"
	"screenerpro/screener/internal/repositories"
)

type ScreenerService interface {
	ProcessScreening(ctx context.Context, screeningID uuid.UUID) error
	ModelAvailable() bool
}

type screenerService struct {
	screeningRepo  repositories.ScreeningRepository
	docRepo        repositories.DocumentRepository
	jobRepo        repositories.JobRepository
	pdfParser      PDFParserService
	scorer         *engine.Scorer
	qdrantService  QdrantService
	docConcurrency int
}

func NewScreenerService(
	screeningRepo repositories.ScreeningRepository,
	docRepo repositories.DocumentRepository,
	jobRepo repositories.JobRepository,
	pdfParser PDFParserService,
	scorer *engine.Scorer,
	qdrantService QdrantService,
	docConcurrency int,
) ScreenerService {
	if docConcurrency < 1 {
		docConcurrency = 1
	}

	return &screenerService{
		screeningRepo:  screeningRepo,
		docRepo:        docRepo,
		jobRepo:        jobRepo,
		pdfParser:      pdfParser,
		scorer:         scorer,
		qdrantService:  qdrantService,
		docConcurrency: docConcurrency,
	}
}

// ModelAvailable implements ScreenerService.
func (s *screenerService) ModelAvailable() bool {
	return s.scorer.ModelAvailable()
}

// docOutcome is the per-document result of the scoring fan-out. Exactly one
// of result/skipReason is meaningful.
type docOutcome struct {
	doc        models.Document
	result     engine.ScoreResult
	name       string
	email      string
	yearsExp   float64
	skipReason string
}

// ProcessScreening implements ScreenerService. Documents are scored
// concurrently but a single unreadable resume never fails the batch; it is
// recorded as skipped and the rest proceed.
func (s *screenerService) ProcessScreening(ctx context.Context, screeningID uuid.UUID) error {
	if err := s.screeningRepo.UpdateStatus(screeningID, models.StatusProcessing); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	log.Printf("🔄 Starting screening %s\n", screeningID)

	screening, err := s.screeningRepo.FindByID(screeningID)
	if err != nil {
		s.screeningRepo.MarkFailed(screeningID, err.Error())
		return fmt.Errorf("failed to get screening: %w", err)
	}

	job, err := s.jobRepo.FindByID(screening.JobProfileID)
	if err != nil {
		s.screeningRepo.MarkFailed(screeningID, fmt.Sprintf("job profile not found: %v", err))
		return fmt.Errorf("failed to get job profile: %w", err)
	}

	docIDs, err := s.screeningRepo.FindDocumentIDs(screeningID)
	if err != nil {
		s.screeningRepo.MarkFailed(screeningID, err.Error())
		return fmt.Errorf("failed to get screening documents: %w", err)
	}

	docs, err := s.docRepo.FindByIDs(docIDs)
	if err != nil {
		s.screeningRepo.MarkFailed(screeningID, err.Error())
		return fmt.Errorf("failed to load documents: %w", err)
	}

	docsByID := make(map[uuid.UUID]models.Document, len(docs))
	for _, doc := range docs {
		docsByID[doc.ID] = doc
	}

	outcomes := make([]docOutcome, len(docIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.docConcurrency)

	for i, docID := range docIDs {
		i, docID := i, docID
		g.Go(func() error {
			doc, ok := docsByID[docID]
			if !ok {
				outcomes[i] = docOutcome{
					doc:        models.Document{ID: docID},
					skipReason: "document record not found",
				}
				return nil
			}

			outcomes[i] = s.scoreDocument(gctx, doc, job.Description)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.screeningRepo.MarkFailed(screeningID, err.Error())
		return fmt.Errorf("screening fan-out failed: %w", err)
	}

	records := s.assembleRecords(screeningID, outcomes)

	mode := string(engine.ScorePathModel)
	if !s.scorer.ModelAvailable() {
		mode = string(engine.ScorePathFallback)
	}
	for _, out := range outcomes {
		if out.skipReason == "" && out.result.Path == engine.ScorePathFallback {
			mode = string(engine.ScorePathFallback)
			break
		}
	}

	if err := s.screeningRepo.Complete(screeningID, mode, records); err != nil {
		s.screeningRepo.MarkFailed(screeningID, err.Error())
		return fmt.Errorf("failed to complete screening: %w", err)
	}

	s.indexResumes(ctx, outcomes)

	log.Printf("✅ Screening %s completed: %d documents, mode=%s\n", screeningID, len(records), mode)
	return nil
}

func (s *screenerService) scoreDocument(ctx context.Context, doc models.Document, jobDescription string) docOutcome {
	outcome := docOutcome{doc: doc}

	text, err := s.pdfParser.ExtractText(doc.FilePath)
	if err != nil {
		log.Printf("⚠️  Skipping %s: %v\n", doc.OriginalFileName, err)
		outcome.skipReason = fmt.Sprintf("text extraction failed: %v", err)
		return outcome
	}

	outcome.yearsExp = engine.EstimateYears(text)

	if name, ok := engine.ExtractName(text); ok {
		outcome.name = name
	} else {
		outcome.name = doc.OriginalFileName
	}
	if email, ok := engine.ExtractEmail(text); ok {
		outcome.email = email
	}

	outcome.result = s.scorer.Score(ctx, text, jobDescription, outcome.yearsExp)
	return outcome
}

// assembleRecords ranks the scored outcomes (stable, score descending) and
// appends skipped documents after them with zeroed scores.
func (s *screenerService) assembleRecords(screeningID uuid.UUID, outcomes []docOutcome) []models.ScoreRecord {
	scored := make([]docOutcome, 0, len(outcomes))
	skipped := make([]docOutcome, 0)
	for _, out := range outcomes {
		if out.skipReason != "" {
			skipped = append(skipped, out)
			continue
		}
		scored = append(scored, out)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].result.Score > scored[j].result.Score
	})

	records := make([]models.ScoreRecord, 0, len(outcomes))
	for i, out := range scored {
		tag := engine.TagFor(out.result.Score, out.yearsExp, out.result.Similarity)
		records = append(records, models.ScoreRecord{
			ScreeningID:     screeningID,
			DocumentID:      out.doc.ID,
			Rank:            i + 1,
			FileName:        out.doc.OriginalFileName,
			CandidateName:   out.name,
			Email:           out.email,
			Score:           out.result.Score,
			YearsExperience: out.yearsExp,
			Similarity:      out.result.Similarity,
			MatchedSkills:   strings.Join(out.result.Matched.Sorted(), ", "),
			MissingSkills:   strings.Join(out.result.Missing.Sorted(), ", "),
			Tag:             string(tag),
			ScorePath:       string(out.result.Path),
		})
	}

	for i, out := range skipped {
		reason := out.skipReason
		records = append(records, models.ScoreRecord{
			ScreeningID: screeningID,
			DocumentID:  out.doc.ID,
			Rank:        len(scored) + i + 1,
			FileName:    out.doc.OriginalFileName,
			SkipReason:  &reason,
		})
	}

	return records
}

// indexResumes pushes resume vectors into the similarity index. This is
// best effort: the screening is already complete, so an index failure only
// costs the similar-candidates feature for these documents.
func (s *screenerService) indexResumes(ctx context.Context, outcomes []docOutcome) {
	if s.qdrantService == nil {
		return
	}

	for _, out := range outcomes {
		if out.skipReason != "" || out.result.ResumeEmbedding == nil {
			continue
		}

		err := s.qdrantService.UpsertResume(ctx, out.doc.ID.String(), out.name, out.doc.OriginalFileName, out.result.ResumeEmbedding)
		if err != nil {
			log.Printf("⚠️  Failed to index resume %s: %v\n", out.doc.ID, err)
		}
	}
}
