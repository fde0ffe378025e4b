package shop

import (
	"fmt"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

// rule binds one item to the category update it receives each day
type rule struct {
	item     *domain.Item
	category domain.Category
	conjured bool
}

// newRule classifies the item and checks the legendary precondition.
// The check runs once per rule, not on every update.
func newRule(item *domain.Item) (*rule, error) {
	if item == nil {
		return nil, fmt.Errorf("%w: item is nil", domain.ErrInvalidItem)
	}

	c := Classify(item.Name)
	if c.Category == domain.CategoryLegendary && item.Quality != domain.LegendaryQuality {
		return nil, fmt.Errorf(ErrFmtLegendaryQuality, domain.ErrInvalidQuality, item.Name, item.Quality, domain.LegendaryQuality)
	}

	return &rule{
		item:     item,
		category: c.Category,
		conjured: c.Conjured,
	}, nil
}

func (r *rule) apply() {
	switch r.category {
	case domain.CategoryAged:
		r.updateAged()
	case domain.CategoryAdmission:
		r.updateAdmission()
	case domain.CategoryLegendary:
		// Quality and sell_in never change
	case domain.CategoryOrdinary:
		r.updateOrdinary()
	}
}

// updateOrdinary degrades quality, twice as fast once the sell-by date has passed
func (r *rule) updateOrdinary() {
	amount := 1
	if r.item.SellIn <= 0 {
		amount = 2
	}
	r.decreaseQuality(r.scale(amount))
	r.decreaseSellIn()
}

// updateAged improves quality, twice as fast once the sell-by date has passed
func (r *rule) updateAged() {
	r.increaseQuality(r.scale(1))
	r.decreaseSellIn()
	if r.item.SellIn < 0 {
		r.increaseQuality(r.scale(1))
	}
}

// updateAdmission improves quality faster as the event approaches and voids it afterwards
func (r *rule) updateAdmission() {
	var amount int
	switch {
	case r.item.SellIn < domain.AdmissionNearThreshold:
		amount = 3
	case r.item.SellIn < domain.AdmissionFarThreshold:
		amount = 2
	default:
		amount = 1
	}

	r.increaseQuality(r.scale(amount))
	r.decreaseSellIn()
	if r.item.SellIn < 0 {
		r.item.Quality = domain.MinQuality
	}
}

// scale doubles every quality change for conjured items
func (r *rule) scale(amount int) int {
	if r.conjured {
		return amount * 2
	}
	return amount
}

func (r *rule) decreaseSellIn() {
	r.item.SellIn--
}

func (r *rule) decreaseQuality(amount int) {
	r.item.Quality = max(r.item.Quality-amount, domain.MinQuality)
}

func (r *rule) increaseQuality(amount int) {
	r.item.Quality = min(r.item.Quality+amount, domain.MaxQuality)
}
