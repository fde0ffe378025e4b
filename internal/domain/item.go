package domain

import "fmt"

// Item represents a single line of the shop's stock.
// Items are owned by the caller; the update engine only ever changes
// SellIn and Quality in place.
type Item struct {
	Name    string `json:"name"`
	SellIn  int    `json:"sell_in"`
	Quality int    `json:"quality"`
}

// String renders the item the way the shop's daily listing prints it
func (i Item) String() string {
	return fmt.Sprintf("%s, %d, %d", i.Name, i.SellIn, i.Quality)
}

// Category selects which update rule governs an item
type Category string

const (
	CategoryOrdinary  Category = "ordinary"
	CategoryAged      Category = "aged"
	CategoryLegendary Category = "legendary"
	CategoryAdmission Category = "admission"
)

// Categories lists every category in classification priority order
var Categories = []Category{
	CategoryAged,
	CategoryAdmission,
	CategoryLegendary,
	CategoryOrdinary,
}

// Classification is derived from an item name and never stored on the item.
// BaseName is the name with any leading "Conjured" token removed.
type Classification struct {
	BaseName string   `json:"base_name"`
	Category Category `json:"category"`
	Conjured bool     `json:"conjured"`
}
