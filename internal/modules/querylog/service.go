// README: Query-log service; records handled queries and serves day stats.
package querylog

import (
	"context"
	"time"
)

// Service records handled assistant queries. Records feed operational stats
// only; nothing here is ever read back into the query pipeline.
type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Record persists the row and bumps the matching day counters. The row insert
// is the source of truth; counter bumps share its fate only when the insert
// succeeded.
func (s *Service) Record(ctx context.Context, rec Record) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	if err := s.store.Insert(ctx, rec); err != nil {
		return err
	}

	day := rec.CreatedAt.Format("2006-01-02")
	if rec.WantsWeather {
		if err := s.store.BumpCounter(ctx, day, "weather"); err != nil {
			return err
		}
	}
	if rec.WantsPlaces {
		if err := s.store.BumpCounter(ctx, day, "places"); err != nil {
			return err
		}
	}
	return nil
}

// TodayStats returns the intent counters for the current day.
func (s *Service) TodayStats(ctx context.Context) (Stats, error) {
	return s.store.Counters(ctx, time.Now().Format("2006-01-02"))
}
