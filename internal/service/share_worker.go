package service

import (
	"context"
	"log"
	"time"

	"github.com/johnsonDevMent/trustmebro/internal/repository"
)

// ShareJanitor periodically purges expired share tokens. Resolution already
// rejects expired tokens; the janitor just keeps the table from growing.
type ShareJanitor struct {
	shares   *repository.ShareRepo
	interval time.Duration
}

// NewShareJanitor creates a janitor with the given sweep interval.
func NewShareJanitor(shares *repository.ShareRepo, interval time.Duration) *ShareJanitor {
	if interval <= 0 {
		interval = time.Hour
	}
	return &ShareJanitor{shares: shares, interval: interval}
}

// Start sweeps until the context is cancelled, with a final sweep on exit.
func (j *ShareJanitor) Start(ctx context.Context) {
	log.Printf("share-janitor: starting (interval=%s)", j.interval)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.sweep(ctx)
	for {
		select {
		case <-ticker.C:
			j.sweep(ctx)
		case <-ctx.Done():
			log.Println("share-janitor: stopping (context cancelled)")
			sweepCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			j.sweep(sweepCtx)
			cancel()
			return
		}
	}
}

func (j *ShareJanitor) sweep(ctx context.Context) {
	n, err := j.shares.DeleteExpired(ctx, time.Now().UTC())
	if err != nil {
		log.Printf("share-janitor: purge error: %v", err)
		return
	}
	if n > 0 {
		log.Printf("share-janitor: purged %d expired tokens", n)
	}
}
