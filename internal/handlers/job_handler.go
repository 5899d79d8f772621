package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"screenerpro/screener/internal/models"
	"screenerpro/screener/internal/repositories"
)

type JobHandler struct {
	jobRepo repositories.JobRepository
}

func NewJobHandler(jobRepo repositories.JobRepository) *JobHandler {
	return &JobHandler{
		jobRepo: jobRepo,
	}
}

// HandleCreateJob handles POST /jobs
func (h *JobHandler) HandleCreateJob(c *fiber.Ctx) error {
	var req models.CreateJobRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "title is required",
		})
	}

	if req.Description == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "description is required",
		})
	}

	job := &models.JobProfile{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := h.jobRepo.Create(job); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create job profile",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(job)
}

// HandleListJobs handles GET /jobs
func (h *JobHandler) HandleListJobs(c *fiber.Ctx) error {
	jobs, err := h.jobRepo.FindAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list job profiles",
		})
	}

	return c.JSON(fiber.Map{
		"jobs": jobs,
	})
}

// HandleGetJob handles GET /jobs/:id
func (h *JobHandler) HandleGetJob(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job profile ID format",
		})
	}

	job, err := h.jobRepo.FindByID(jobID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Job profile not found",
		})
	}

	return c.JSON(job)
}
