package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"screenerpro/screener/internal/repositories"
)

type Worker interface {
	Start(ctx context.Context)
	Stop()
	EnqueueScreening(screeningID uuid.UUID)
}

type worker struct {
	screeningRepo   repositories.ScreeningRepository
	screenerService ScreenerService
	jobQueue        chan uuid.UUID
	concurrency     int
	pollInterval    time.Duration
	wg              sync.WaitGroup
	stopChan        chan struct{}
}

func NewWorker(
	screeningRepo repositories.ScreeningRepository,
	screenerService ScreenerService,
	concurrency int,
	pollInterval time.Duration,
) Worker {
	if pollInterval <= 0 {
		pollInterval = 10 * time.Second
	}

	return &worker{
		screeningRepo:   screeningRepo,
		screenerService: screenerService,
		jobQueue:        make(chan uuid.UUID, 100),
		concurrency:     concurrency,
		pollInterval:    pollInterval,
		stopChan:        make(chan struct{}),
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	log.Printf("🚀 Starting worker with %d concurrent workers\n", w.concurrency)

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processScreenings(ctx, i+1)
	}

	// Re-enqueue screenings that were queued before a restart
	w.wg.Add(1)
	go w.pollPendingScreenings(ctx)

	log.Println("✅ Worker started successfully")
}

// Stop implements Worker.
func (w *worker) Stop() {
	log.Println("🛑 Stopping worker...")
	close(w.stopChan)
	w.wg.Wait()
	log.Println("✅ Worker stopped")
}

// EnqueueScreening implements Worker.
func (w *worker) EnqueueScreening(screeningID uuid.UUID) {
	select {
	case w.jobQueue <- screeningID:
		log.Printf("📥 Screening %s enqueued\n", screeningID)
	case <-w.stopChan:
		log.Printf("⚠️  Worker stopped, cannot enqueue screening %s\n", screeningID)
	}
}

func (w *worker) processScreenings(ctx context.Context, workerID int) {
	defer w.wg.Done()
	log.Printf("🚀 Worker %d started processing screenings\n", workerID)

	for {
		select {
		case <-w.stopChan:
			log.Printf("👷 Worker #%d stopped\n", workerID)
			return
		case screeningID := <-w.jobQueue:
			log.Printf("👷 Worker #%d processing screening %s\n", workerID, screeningID)
			if err := w.screenerService.ProcessScreening(ctx, screeningID); err != nil {
				log.Printf("❌ Worker #%d failed to process screening %s: %v\n", workerID, screeningID, err)
			} else {
				log.Printf("✅ Worker #%d completed screening %s\n", workerID, screeningID)
			}
		}
	}
}

func (w *worker) pollPendingScreenings(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	log.Println("🔄 Starting pending screenings poller")

	for {
		select {
		case <-w.stopChan:
			log.Println("🔄 Pending screenings poller stopped")
			return
		case <-ticker.C:
			pendingIDs, err := w.screeningRepo.FindPendingIDs(10)
			if err != nil {
				log.Printf("⚠️  Failed to fetch pending screenings: %v\n", err)
				continue
			}

			if len(pendingIDs) > 0 {
				log.Printf("📋 Found %d pending screenings\n", len(pendingIDs))
			}

			for _, id := range pendingIDs {
				w.EnqueueScreening(id)
			}
		}
	}
}
