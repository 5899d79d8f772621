package handlers

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"screenerpro/screener/internal/engine"
	"screenerpro/screener/internal/models"
	"screenerpro/screener/internal/repositories"
)

type ResultHandler struct {
	screeningRepo repositories.ScreeningRepository
}

func NewResultHandler(screeningRepo repositories.ScreeningRepository) *ResultHandler {
	return &ResultHandler{
		screeningRepo: screeningRepo,
	}
}

// HandleGetResult handles GET /screenings/:id
func (h *ResultHandler) HandleGetResult(c *fiber.Ctx) error {
	screening, records, err := h.loadScreening(c)
	if err != nil {
		return err
	}

	response := models.ScreeningResultResponse{
		ID:           screening.ID.String(),
		JobProfileID: screening.JobProfileID.String(),
		Status:       string(screening.Status),
		Mode:         screening.Mode,
		ErrorMessage: screening.ErrorMessage,
	}

	if screening.Status == models.StatusCompleted {
		for _, r := range records {
			if r.SkipReason != nil {
				response.Skipped = append(response.Skipped, models.SkippedItem{
					DocumentID: r.DocumentID.String(),
					FileName:   r.FileName,
					Reason:     *r.SkipReason,
				})
				continue
			}
			response.Records = append(response.Records, r)
		}
	}

	return c.JSON(response)
}

// HandleShortlist handles GET /screenings/:id/shortlist. The cutoff and
// min_experience query params override the thresholds stored on the
// screening, so recruiters can re-cut the same batch without re-scoring.
func (h *ResultHandler) HandleShortlist(c *fiber.Ctx) error {
	screening, records, err := h.loadScreening(c)
	if err != nil {
		return err
	}

	if screening.Status != models.StatusCompleted {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Screening is not completed yet",
		})
	}

	cutoff := c.QueryFloat("cutoff", screening.Cutoff)
	minExperience := c.QueryFloat("min_experience", screening.MinExperience)

	shortlisted := make([]models.ScoreRecord, 0, len(records))
	for _, r := range records {
		if r.SkipReason != nil {
			continue
		}
		if r.Score >= cutoff && r.YearsExperience >= minExperience {
			shortlisted = append(shortlisted, r)
		}
	}

	return c.JSON(fiber.Map{
		"screening_id":   screening.ID.String(),
		"cutoff":         cutoff,
		"min_experience": minExperience,
		"records":        shortlisted,
	})
}

// HandleExport handles GET /screenings/:id/export and streams the scored
// batch as CSV.
func (h *ResultHandler) HandleExport(c *fiber.Ctx) error {
	screening, records, err := h.loadScreening(c)
	if err != nil {
		return err
	}

	if screening.Status != models.StatusCompleted {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Screening is not completed yet",
		})
	}

	var buf bytes.Buffer
	if err := engine.WriteCSV(&buf, toEngineRecords(records)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to export screening",
		})
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="screening_%s.csv"`, screening.ID))
	return c.Send(buf.Bytes())
}

// HandleAnalytics handles GET /screenings/:id/analytics
func (h *ResultHandler) HandleAnalytics(c *fiber.Ctx) error {
	screening, records, err := h.loadScreening(c)
	if err != nil {
		return err
	}

	if screening.Status != models.StatusCompleted {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Screening is not completed yet",
		})
	}

	topN := c.QueryInt("top_skills", 10)
	summary := engine.Summarize(toEngineRecords(records), topN)

	return c.JSON(fiber.Map{
		"screening_id": screening.ID.String(),
		"summary":      summary,
	})
}

// loadScreening resolves the :id param. Errors are fiber errors so the
// app-level error handler renders them as JSON.
func (h *ResultHandler) loadScreening(c *fiber.Ctx) (*models.Screening, []models.ScoreRecord, error) {
	screeningID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "Invalid screening ID format")
	}

	screening, err := h.screeningRepo.FindByID(screeningID)
	if err != nil {
		return nil, nil, fiber.NewError(fiber.StatusNotFound, "Screening not found")
	}

	records, err := h.screeningRepo.FindRecords(screeningID)
	if err != nil {
		return nil, nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load screening records")
	}

	return screening, records, nil
}

// toEngineRecords converts stored rows back into scoring records, dropping
// skipped documents.
func toEngineRecords(records []models.ScoreRecord) []engine.ScoreRecord {
	out := make([]engine.ScoreRecord, 0, len(records))
	for _, r := range records {
		if r.SkipReason != nil {
			continue
		}
		out = append(out, engine.ScoreRecord{
			FileName:        r.FileName,
			CandidateName:   r.CandidateName,
			Email:           r.Email,
			Score:           r.Score,
			YearsExperience: r.YearsExperience,
			Similarity:      r.Similarity,
			Matched:         splitSkills(r.MatchedSkills),
			Missing:         splitSkills(r.MissingSkills),
			Tag:             engine.Tag(r.Tag),
			Path:            engine.ScorePath(r.ScorePath),
		})
	}
	return out
}

func splitSkills(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ", ")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
