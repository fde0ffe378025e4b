package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/shop"
)

type renderFunc func(w io.Writer, day int, items []*domain.Item) error

var renderers = map[string]renderFunc{
	formatPlain: renderPlain,
	formatTable: renderTable,
}

var titleCase = cases.Title(language.English)

func renderPlain(w io.Writer, day int, items []*domain.Item) error {
	if _, err := fmt.Fprintf(w, "-------- day %d --------\nname, sellIn, quality\n", day); err != nil {
		return err
	}
	for _, item := range items {
		if _, err := fmt.Fprintln(w, item.String()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

func renderTable(w io.Writer, day int, items []*domain.Item) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle("Day %d", day)
	tw.AppendHeader(table.Row{"Name", "Category", "Sell In", "Quality"})

	for _, item := range items {
		tw.AppendRow(table.Row{
			item.Name,
			categoryLabel(shop.Classify(item.Name)),
			strconv.Itoa(item.SellIn),
			strconv.Itoa(item.Quality),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	_, err := fmt.Fprintln(w, tw.Render())
	return err
}

// categoryLabel renders e.g. "Aged (Conjured)"
func categoryLabel(c domain.Classification) string {
	label := titleCase.String(string(c.Category))
	if c.Conjured {
		label += " (" + domain.ConjuredToken + ")"
	}
	return label
}
