package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"screenerpro/screener/internal/models"
)

type ScreeningRepository interface {
	Create(screening *models.Screening, documentIDs []uuid.UUID) error
	FindByID(id uuid.UUID) (*models.Screening, error)
	FindDocumentIDs(screeningID uuid.UUID) ([]uuid.UUID, error)
	UpdateStatus(id uuid.UUID, status models.ScreeningStatus) error
	MarkFailed(id uuid.UUID, reason string) error
	Complete(id uuid.UUID, mode string, records []models.ScoreRecord) error
	FindPendingIDs(limit int) ([]uuid.UUID, error)
	FindRecords(screeningID uuid.UUID) ([]models.ScoreRecord, error)
}

type screeningRepository struct {
	db *gorm.DB
}

func NewScreeningRepository(db *gorm.DB) ScreeningRepository {
	return &screeningRepository{db: db}
}

// Create implements ScreeningRepository. The screening row and its document
// links are written in one transaction so a crash never leaves a screening
// without its inputs.
func (s *screeningRepository) Create(screening *models.Screening, documentIDs []uuid.UUID) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&screening).Error; err != nil {
			return err
		}

		links := make([]models.ScreeningDocument, 0, len(documentIDs))
		for i, docID := range documentIDs {
			links = append(links, models.ScreeningDocument{
				ScreeningID: screening.ID,
				DocumentID:  docID,
				Position:    i,
			})
		}

		if len(links) > 0 {
			if err := tx.Create(&links).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create screening: %w", err)
	}

	return nil
}

// FindByID implements ScreeningRepository.
func (s *screeningRepository) FindByID(id uuid.UUID) (*models.Screening, error) {
	var screening models.Screening
	if err := s.db.Where("id = ?", id).First(&screening).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("screening not found: %w", err)
		}

		return nil, fmt.Errorf("failed to find screening: %w", err)
	}

	return &screening, nil
}

// FindDocumentIDs implements ScreeningRepository. IDs come back in upload
// order so the scoring pass sees documents the way the caller submitted
// them.
func (s *screeningRepository) FindDocumentIDs(screeningID uuid.UUID) ([]uuid.UUID, error) {
	var links []models.ScreeningDocument
	if err := s.db.Where("screening_id = ?", screeningID).
		Order("position ASC").
		Find(&links).Error; err != nil {
		return nil, fmt.Errorf("failed to find screening documents: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(links))
	for _, link := range links {
		ids = append(ids, link.DocumentID)
	}

	return ids, nil
}

// UpdateStatus implements ScreeningRepository.
func (s *screeningRepository) UpdateStatus(id uuid.UUID, status models.ScreeningStatus) error {
	if err := s.db.Model(&models.Screening{}).
		Where("id = ?", id).
		Update("status", status).Error; err != nil {
		return fmt.Errorf("failed to update screening status: %w", err)
	}

	return nil
}

// MarkFailed implements ScreeningRepository.
func (s *screeningRepository) MarkFailed(id uuid.UUID, reason string) error {
	if err := s.db.Model(&models.Screening{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        models.StatusFailed,
			"error_message": reason,
		}).Error; err != nil {
		return fmt.Errorf("failed to mark screening failed: %w", err)
	}

	return nil
}

// Complete implements ScreeningRepository. Records and the completed status
// land atomically so readers never observe a completed screening with a
// partial result set.
func (s *screeningRepository) Complete(id uuid.UUID, mode string, records []models.ScoreRecord) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if len(records) > 0 {
			if err := tx.Create(&records).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&models.Screening{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"status": models.StatusCompleted,
				"mode":   mode,
			}).Error; err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to complete screening: %w", err)
	}

	return nil
}

// FindPendingIDs implements ScreeningRepository.
func (s *screeningRepository) FindPendingIDs(limit int) ([]uuid.UUID, error) {
	var screenings []models.Screening
	if err := s.db.Where("status = ?", models.StatusQueued).
		Order("created_at ASC").
		Limit(limit).
		Find(&screenings).Error; err != nil {
		return nil, fmt.Errorf("failed to find pending screenings: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(screenings))
	for _, screening := range screenings {
		ids = append(ids, screening.ID)
	}

	return ids, nil
}

// FindRecords implements ScreeningRepository. Rows come back in rank order.
func (s *screeningRepository) FindRecords(screeningID uuid.UUID) ([]models.ScoreRecord, error) {
	var records []models.ScoreRecord
	if err := s.db.Where("screening_id = ?", screeningID).
		Order("rank ASC").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to find score records: %w", err)
	}

	return records, nil
}
