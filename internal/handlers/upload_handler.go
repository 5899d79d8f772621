package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"screenerpro/screener/internal/models"
	"screenerpro/screener/internal/repositories"
	"screenerpro/screener/internal/services"
)

type UploadHandler struct {
	docRepo        repositories.DocumentRepository
	storageService services.StorageService
	maxFileSize    int64
}

func NewUploadHandler(
	docRepo repositories.DocumentRepository,
	storageService services.StorageService,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		docRepo:        docRepo,
		storageService: storageService,
		maxFileSize:    maxFileSize,
	}
}

// HandleUpload handles POST /resumes. A single multipart request may carry
// many resume PDFs under the "resumes" field; each becomes its own document
// record.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse multipart form",
		})
	}

	resumeFiles, exists := form.File["resumes"]
	if !exists || len(resumeFiles) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No resumes uploaded. Please upload one or more 'resumes' as PDF files.",
		})
	}

	var responses []models.UploadResponse

	for _, resumeFile := range resumeFiles {
		if resumeFile.Size > h.maxFileSize {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Resume %s too large. Max size: %d bytes", resumeFile.Filename, h.maxFileSize),
			})
		}

		filename, filePath, err := h.storageService.SaveResume(resumeFile)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("failed to save resume %s: %v", resumeFile.Filename, err),
			})
		}

		doc := models.Document{
			ID:               uuid.New(),
			Filename:         filename,
			OriginalFileName: resumeFile.Filename,
			FileType:         "resume",
			FilePath:         filePath,
			CreatedAt:        time.Now(),
			UpdatedAt:        time.Now(),
		}

		if err := h.docRepo.Create(&doc); err != nil {
			// Cleanup uploaded file if database insert fails
			h.storageService.DeleteFile(filename)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": fmt.Sprintf("failed to save resume record: %v", err),
			})
		}

		responses = append(responses, models.UploadResponse{
			ID:           doc.ID.String(),
			Filename:     doc.Filename,
			OriginalName: doc.OriginalFileName,
			FileType:     doc.FileType,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":   "Resumes uploaded successfully",
		"documents": responses,
	})
}
