package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"screenerpro/screener/internal/models"
)

type JobRepository interface {
	Create(job *models.JobProfile) error
	FindByID(id uuid.UUID) (*models.JobProfile, error)
	FindAll() ([]models.JobProfile, error)
	FindByTitle(title string) (*models.JobProfile, error)
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

// Create implements JobRepository.
func (j *jobRepository) Create(job *models.JobProfile) error {
	if err := j.db.Create(&job).Error; err != nil {
		return fmt.Errorf("failed to create job profile: %w", err)
	}

	return nil
}

// FindByID implements JobRepository.
func (j *jobRepository) FindByID(id uuid.UUID) (*models.JobProfile, error) {
	var job models.JobProfile
	if err := j.db.Where("id = ?", id).First(&job).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("job profile not found: %w", err)
		}

		return nil, fmt.Errorf("failed to find job profile: %w", err)
	}

	return &job, nil
}

// FindAll implements JobRepository.
func (j *jobRepository) FindAll() ([]models.JobProfile, error) {
	var jobs []models.JobProfile
	if err := j.db.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("failed to list job profiles: %w", err)
	}

	return jobs, nil
}

// FindByTitle implements JobRepository.
func (j *jobRepository) FindByTitle(title string) (*models.JobProfile, error) {
	var job models.JobProfile
	if err := j.db.Where("title = ?", title).First(&job).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to find job profile by title: %w", err)
	}

	return &job, nil
}
