package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/GildedRose_Go/internal/item"
	"github.com/osse101/GildedRose_Go/internal/shop"
)

const (
	formatPlain = "plain"
	formatTable = "table"

	defaultDays = 2
)

func newRootCommand() *cobra.Command {
	var days int
	var format string
	var file string

	cmd := &cobra.Command{
		Use:           "texttest",
		Short:         "Print the shop's stock for a number of days",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if days < 0 {
				return fmt.Errorf("--days must not be negative, got %d", days)
			}
			render, ok := renderers[format]
			if !ok {
				return fmt.Errorf("unknown --format %q (want %s or %s)", format, formatPlain, formatTable)
			}

			catalog, err := item.NewLoader().Load(cmd.Context(), file)
			if err != nil {
				return err
			}
			items := catalog.Stock()

			g, err := shop.New(items)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for day := 0; day < days; day++ {
				if err := render(out, day, items); err != nil {
					return err
				}
				if err := g.UpdateQuality(); err != nil {
					return fmt.Errorf("day %d: %w", day, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&days, "days", "d", defaultDays, "Number of days to print")
	cmd.Flags().StringVarP(&format, "format", "f", formatPlain, "Output format: plain or table")
	cmd.Flags().StringVar(&file, "file", "", "Inventory JSON file (default: built-in stock)")

	return cmd
}
