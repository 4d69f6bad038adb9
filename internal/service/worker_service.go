package service

import (
	"context"
	"log"
	"time"

	"hospital-bed-backend/internal/repository"
)

// WorkerService periodically purges expired and revoked refresh tokens so
// the table does not grow without bound.
type WorkerService struct {
	userRepo *repository.UserRepository
	interval time.Duration
}

func NewWorkerService(userRepo *repository.UserRepository) *WorkerService {
	return &WorkerService{
		userRepo: userRepo,
		interval: time.Hour,
	}
}

// Start begins the background cleanup loop. It returns when ctx is
// cancelled.
func (w *WorkerService) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.Printf("Background worker started - purging stale refresh tokens every %s", w.interval)

	for {
		select {
		case <-ctx.Done():
			log.Println("Background worker stopped")
			return
		case <-ticker.C:
			w.purgeStaleTokens()
		}
	}
}

func (w *WorkerService) purgeStaleTokens() {
	deleted, err := w.userRepo.DeleteStaleRefreshTokens(time.Now())
	if err != nil {
		log.Printf("Error purging stale refresh tokens: %v", err)
		return
	}
	if deleted > 0 {
		log.Printf("Purged %d stale refresh tokens", deleted)
	}
}
