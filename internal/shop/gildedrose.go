// Package shop implements the daily quality update for the shop's stock.
//
// The package is pure: it never performs I/O or logging and never creates
// or retains items. Callers own the item list and call UpdateQuality once
// per simulated day.
package shop

import (
	"fmt"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

// GildedRose applies the daily update to a caller-owned list of items
type GildedRose struct {
	items []*domain.Item
}

// New validates the item list and wraps it.
// A nil list fails with domain.ErrInvalidInput and a nil element with
// domain.ErrInvalidItem.
func New(items []*domain.Item) (*GildedRose, error) {
	if items == nil {
		return nil, fmt.Errorf(ErrFmtNilList, domain.ErrInvalidInput)
	}
	for i, item := range items {
		if item == nil {
			return nil, fmt.Errorf(ErrFmtNilItem, domain.ErrInvalidItem, i)
		}
	}
	return &GildedRose{items: items}, nil
}

// UpdateQuality advances every item by one day in place.
// Every item's rule is built before any item is touched, so a failing
// precondition leaves the whole list unchanged.
func (g *GildedRose) UpdateQuality() error {
	rules := make([]*rule, len(g.items))
	for i, item := range g.items {
		r, err := newRule(item)
		if err != nil {
			return err
		}
		rules[i] = r
	}

	for _, r := range rules {
		r.apply()
	}
	return nil
}

// UpdateQuality validates items and advances them by one day
func UpdateQuality(items []*domain.Item) error {
	g, err := New(items)
	if err != nil {
		return err
	}
	return g.UpdateQuality()
}

// Validate checks an item before it enters stock: the rule precondition
// UpdateQuality enforces, plus the [MinQuality, MaxQuality] range every
// non-legendary rule is defined over.
func Validate(item *domain.Item) error {
	r, err := newRule(item)
	if err != nil {
		return err
	}
	if r.category != domain.CategoryLegendary &&
		(item.Quality < domain.MinQuality || item.Quality > domain.MaxQuality) {
		return fmt.Errorf(ErrFmtQualityOutOfRange, domain.ErrInvalidQuality, item.Name, item.Quality, domain.MinQuality, domain.MaxQuality)
	}
	return nil
}
