package item

// DefaultConfig returns the shop's standard opening stock
func DefaultConfig() *Config {
	return &Config{
		Version:     "1.0",
		Description: "Standard opening stock",
		Items: []Def{
			{Name: "+5 Dexterity Vest", SellIn: 10, Quality: 20},
			{Name: "Aged Brie", SellIn: 2, Quality: 0},
			{Name: "Elixir of the Mongoose", SellIn: 5, Quality: 7},
			{Name: "Sulfuras, Hand of Ragnaros", SellIn: 0, Quality: 80},
			{Name: "Sulfuras, Hand of Ragnaros", SellIn: -1, Quality: 80},
			{Name: "Backstage passes to a TAFKAL80ETC concert", SellIn: 15, Quality: 20},
			{Name: "Backstage passes to a TAFKAL80ETC concert", SellIn: 10, Quality: 49},
			{Name: "Backstage passes to a TAFKAL80ETC concert", SellIn: 5, Quality: 49},
			{Name: "Conjured Mana Cake", SellIn: 3, Quality: 6},
		},
	}
}
