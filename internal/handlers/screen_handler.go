package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"screenerpro/screener/internal/config"
	"screenerpro/screener/internal/models"
	"screenerpro/screener/internal/repositories"
	"screenerpro/screener/internal/services"
)

type ScreenHandler struct {
	screeningRepo repositories.ScreeningRepository
	docRepo       repositories.DocumentRepository
	jobRepo       repositories.JobRepository
	worker        services.Worker
	defaults      config.ScreeningConfig
}

func NewScreenHandler(
	screeningRepo repositories.ScreeningRepository,
	docRepo repositories.DocumentRepository,
	jobRepo repositories.JobRepository,
	worker services.Worker,
	defaults config.ScreeningConfig,
) *ScreenHandler {
	return &ScreenHandler{
		screeningRepo: screeningRepo,
		docRepo:       docRepo,
		jobRepo:       jobRepo,
		worker:        worker,
		defaults:      defaults,
	}
}

// HandleScreen handles POST /screenings. The batch is queued and processed
// asynchronously; the response carries the screening ID to poll.
func (h *ScreenHandler) HandleScreen(c *fiber.Ctx) error {
	var req models.ScreenRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.JobProfileID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_profile_id is required",
		})
	}

	if len(req.DocumentIDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "document_ids is required",
		})
	}

	jobID, err := uuid.Parse(req.JobProfileID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job_profile_id format",
		})
	}

	if _, err := h.jobRepo.FindByID(jobID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Job profile not found",
		})
	}

	docIDs := make([]uuid.UUID, 0, len(req.DocumentIDs))
	for _, raw := range req.DocumentIDs {
		docID, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid document ID format: " + raw,
			})
		}
		docIDs = append(docIDs, docID)
	}

	docs, err := h.docRepo.FindByIDs(docIDs)
	if err != nil || len(docs) != len(docIDs) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "One or more documents not found",
		})
	}

	cutoff := h.defaults.DefaultCutoff
	if req.Cutoff != nil {
		cutoff = *req.Cutoff
	}

	minExperience := h.defaults.DefaultMinExperience
	if req.MinExperience != nil {
		minExperience = *req.MinExperience
	}

	screening := &models.Screening{
		ID:            uuid.New(),
		JobProfileID:  jobID,
		Status:        models.StatusQueued,
		Cutoff:        cutoff,
		MinExperience: minExperience,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := h.screeningRepo.Create(screening, docIDs); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create screening",
		})
	}

	h.worker.EnqueueScreening(screening.ID)

	return c.Status(fiber.StatusAccepted).JSON(models.ScreenResponse{
		ID:     screening.ID.String(),
		Status: string(models.StatusQueued),
	})
}
