package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"screenerpro/screener/internal/config"
	"screenerpro/screener/internal/models"
	"screenerpro/screener/internal/repositories"
)

// Seeds job profiles from plain-text job description files in ./data/jobs.
// The file name (minus extension, underscores as spaces) becomes the job
// title. Already-seeded titles are skipped, so the script is idempotent.
func main() {
	log.Println("🚀 Starting job profile seeding...")

	cfg := config.Load()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	jobRepo := repositories.NewJobRepository(db)

	jobsDir := "./data/jobs"
	entries, err := os.ReadDir(jobsDir)
	if err != nil {
		log.Fatalf("❌ Failed to read jobs directory %s: %v", jobsDir, err)
	}

	successCount := 0
	skipCount := 0

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".txt" {
			continue
		}

		title := strings.ReplaceAll(strings.TrimSuffix(entry.Name(), ".txt"), "_", " ")

		log.Printf("📄 Processing: %s", title)

		existing, err := jobRepo.FindByTitle(title)
		if err != nil {
			log.Printf("   ❌ Failed to check existing job: %v", err)
			continue
		}
		if existing != nil {
			log.Printf("   ⚠️  Already seeded, skipping...")
			skipCount++
			continue
		}

		description, err := os.ReadFile(filepath.Join(jobsDir, entry.Name()))
		if err != nil {
			log.Printf("   ❌ Failed to read file: %v", err)
			continue
		}

		if strings.TrimSpace(string(description)) == "" {
			log.Printf("   ⚠️  Empty description, skipping...")
			skipCount++
			continue
		}

		job := &models.JobProfile{
			Title:       title,
			Description: string(description),
		}

		if err := jobRepo.Create(job); err != nil {
			log.Printf("   ❌ Failed to create job profile: %v", err)
			continue
		}

		log.Printf("   ✅ Seeded job profile %s", job.ID)
		successCount++
	}

	log.Printf("✅ Seeding complete: %d created, %d skipped", successCount, skipCount)
}
