package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/mama/internal/domain"
	"github.com/renato0307/mama/internal/logging"
	"github.com/renato0307/mama/internal/ports"
)

const (
	// statsCacheTTL is the duration to cache daily stats before refreshing
	statsCacheTTL = 30 * time.Second

	// streakLookbackDays bounds how far back the streak is computed
	streakLookbackDays = 366
)

// StatsService computes daily focus statistics with caching
type StatsService struct {
	cache       *domain.DailyStats
	cacheDay    time.Time
	cacheMu     sync.RWMutex
	clock       ports.Clock
	lastRefresh time.Time
	reader      ports.SessionStatsReader
}

// NewStatsService creates a new StatsService
func NewStatsService(reader ports.SessionStatsReader, clock ports.Clock) *StatsService {
	return &StatsService{
		clock:  clock,
		reader: reader,
	}
}

// Today returns the statistics of the current local day (cached). The day
// starts at local midnight, not UTC midnight.
func (s *StatsService) Today(ctx context.Context) (domain.DailyStats, error) {
	now := s.clock.Now()
	day := startOfDay(now)

	s.cacheMu.RLock()
	if s.cache != nil && s.cacheDay.Equal(day) && now.Sub(s.lastRefresh) < statsCacheTTL {
		stats := *s.cache
		s.cacheMu.RUnlock()
		return stats, nil
	}
	s.cacheMu.RUnlock()

	return s.refresh(ctx, now, day)
}

// Invalidate drops the cached statistics
func (s *StatsService) Invalidate() {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	s.cache = nil
}

func (s *StatsService) refresh(ctx context.Context, now, day time.Time) (domain.DailyStats, error) {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()

	// Double-check after acquiring write lock
	if s.cache != nil && s.cacheDay.Equal(day) && now.Sub(s.lastRefresh) < statsCacheTTL {
		return *s.cache, nil
	}

	logging.Logger.Debug("Refreshing daily stats cache")

	var stats domain.DailyStats
	var starts []time.Time
	since := day.UTC()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.reader.CountSessions(gctx, domain.StatusCompleted, since)
		stats.CompletedSessions = n
		return err
	})
	g.Go(func() error {
		n, err := s.reader.CountSessions(gctx, domain.StatusCancelled, since)
		stats.CancelledSessions = n
		return err
	})
	g.Go(func() error {
		n, err := s.reader.SumDuration(gctx, domain.StatusCompleted, since)
		stats.FocusedSeconds = n
		return err
	})
	g.Go(func() error {
		var err error
		starts, err = s.reader.CompletedStartTimes(gctx, day.AddDate(0, 0, -streakLookbackDays).UTC())
		return err
	})

	if err := g.Wait(); err != nil {
		logging.Logger.Warn("Failed to compute daily stats", "error", err)
		return domain.DailyStats{}, fmt.Errorf("failed to compute daily stats: %w", err)
	}

	stats.StreakDays = streak(starts, day, now.Location())

	s.cache = &stats
	s.cacheDay = day
	s.lastRefresh = now
	return stats, nil
}

// streak counts consecutive local days with a completed session, ending
// today, or yesterday when nothing was completed today yet
func streak(starts []time.Time, today time.Time, loc *time.Location) int {
	days := make(map[string]bool, len(starts))
	for _, t := range starts {
		days[t.In(loc).Format(time.DateOnly)] = true
	}

	day := today
	if !days[day.Format(time.DateOnly)] {
		day = day.AddDate(0, 0, -1)
	}

	count := 0
	for days[day.Format(time.DateOnly)] {
		count++
		day = day.AddDate(0, 0, -1)
	}
	return count
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
