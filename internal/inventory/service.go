package inventory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/logger"
	"github.com/osse101/GildedRose_Go/internal/metrics"
	"github.com/osse101/GildedRose_Go/internal/shop"
)

// Service owns the shop's live stock and the simulated calendar
type Service interface {
	Items(ctx context.Context) []domain.Item
	Day(ctx context.Context) int
	AddItem(ctx context.Context, item domain.Item) error
	AdvanceDay(ctx context.Context) (*domain.DayReport, error)
	History(ctx context.Context, day int) (*domain.DayReport, error)
}

type service struct {
	mu      sync.Mutex
	items   []*domain.Item
	day     int
	history *lru.Cache[int, *domain.DayReport]
	now     func() time.Time
}

// NewService takes ownership of items and records them as day 0.
// historySize bounds how many day reports are kept; the oldest are evicted first.
func NewService(ctx context.Context, items []*domain.Item, historySize int) (Service, error) {
	if _, err := shop.New(items); err != nil {
		return nil, err
	}
	for _, item := range items {
		if err := shop.Validate(item); err != nil {
			return nil, err
		}
	}

	history, err := lru.New[int, *domain.DayReport](historySize)
	if err != nil {
		return nil, fmt.Errorf("failed to create history cache: %w", err)
	}

	s := &service{
		items:   items,
		history: history,
		now:     time.Now,
	}

	opening := s.reportLocked(uuid.NewString())
	s.history.Add(opening.Day, opening)
	metrics.CurrentDay.Set(0)
	metrics.ObserveStock(opening.Items)

	logger.FromContext(ctx).Info(LogMsgStockLoaded, "items", len(items))
	return s, nil
}

// Items returns a copy of the current stock
func (s *service) Items(ctx context.Context) []domain.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Day returns the number of days advanced so far
func (s *service) Day(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.day
}

// AddItem stocks a new item. Items outside their category's quality range,
// or that the daily update would reject, are refused.
func (s *service) AddItem(ctx context.Context, item domain.Item) error {
	log := logger.FromContext(ctx)

	if err := shop.Validate(&item); err != nil {
		log.Warn(LogMsgItemRejected, "name", item.Name, "error", err)
		return err
	}
	category := shop.Classify(item.Name).Category

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, &item)
	// Gauges are written under the lock so they always match the stock
	metrics.ItemsAdded.WithLabelValues(string(category)).Inc()
	metrics.ObserveStock(s.snapshotLocked())

	log.Info(LogMsgItemAdded, "name", item.Name, "category", category, "sell_in", item.SellIn, "quality", item.Quality)
	return nil
}

// AdvanceDay applies one day's update to the whole stock.
// Ticks are serialised; a rejected tick leaves the stock and the day unchanged.
// The report's tick ID is the request ID carried by ctx, when there is one.
func (s *service) AdvanceDay(ctx context.Context) (*domain.DayReport, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	tickID := logger.GetRequestID(ctx)
	if tickID == "" {
		tickID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := shop.New(s.items)
	if err == nil {
		err = g.UpdateQuality()
	}
	if err != nil {
		metrics.TickFailures.WithLabelValues(failureReason(err)).Inc()
		log.Error(LogMsgTickRejected, "day", s.day, "error", err)
		return nil, err
	}

	s.day++
	report := s.reportLocked(tickID)
	s.history.Add(report.Day, report)
	metrics.RecordTick(report, time.Since(start).Seconds())

	log.Info(LogMsgDayAdvanced, "day", report.Day, "tick_id", report.TickID, "items", len(report.Items))
	return report, nil
}

// History returns the report recorded for day, if it is still retained
func (s *service) History(ctx context.Context, day int) (*domain.DayReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	report, ok := s.history.Peek(day)
	if !ok {
		return nil, fmt.Errorf(ErrFmtDayNotFound, domain.ErrDayNotFound, day)
	}
	return report, nil
}

func (s *service) snapshotLocked() []domain.Item {
	out := make([]domain.Item, len(s.items))
	for i, item := range s.items {
		out[i] = *item
	}
	return out
}

func (s *service) reportLocked(tickID string) *domain.DayReport {
	items := s.snapshotLocked()
	categories := make(map[domain.Category]int, len(domain.Categories))
	for _, item := range items {
		categories[shop.Classify(item.Name).Category]++
	}

	return &domain.DayReport{
		Day:         s.day,
		TickID:      tickID,
		CompletedAt: s.now().UTC(),
		Categories:  categories,
		Items:       items,
	}
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return ReasonInvalidInput
	case errors.Is(err, domain.ErrInvalidItem):
		return ReasonInvalidItem
	case errors.Is(err, domain.ErrInvalidQuality):
		return ReasonInvalidQuality
	default:
		return ReasonUnknown
	}
}
