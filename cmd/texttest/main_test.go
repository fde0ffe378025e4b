package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

const twoDays = `-------- day 0 --------
name, sellIn, quality
+5 Dexterity Vest, 10, 20
Aged Brie, 2, 0
Elixir of the Mongoose, 5, 7
Sulfuras, Hand of Ragnaros, 0, 80
Sulfuras, Hand of Ragnaros, -1, 80
Backstage passes to a TAFKAL80ETC concert, 15, 20
Backstage passes to a TAFKAL80ETC concert, 10, 49
Backstage passes to a TAFKAL80ETC concert, 5, 49
Conjured Mana Cake, 3, 6

-------- day 1 --------
name, sellIn, quality
+5 Dexterity Vest, 9, 19
Aged Brie, 1, 1
Elixir of the Mongoose, 4, 6
Sulfuras, Hand of Ragnaros, 0, 80
Sulfuras, Hand of Ragnaros, -1, 80
Backstage passes to a TAFKAL80ETC concert, 14, 21
Backstage passes to a TAFKAL80ETC concert, 9, 50
Backstage passes to a TAFKAL80ETC concert, 4, 50
Conjured Mana Cake, 2, 4

`

func TestPlainOutput(t *testing.T) {
	out, err := runCLI(t)
	require.NoError(t, err)
	assert.Equal(t, twoDays, out)
}

func TestZeroDaysPrintsNothing(t *testing.T) {
	out, err := runCLI(t, "--days", "0")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestTableOutput(t *testing.T) {
	out, err := runCLI(t, "--days", "1", "--format", "table")
	require.NoError(t, err)

	assert.Contains(t, strings.ToLower(out), "day 0")
	assert.Contains(t, out, "Ordinary (Conjured)")
	assert.Contains(t, out, "Legendary")
	assert.Contains(t, out, "Admission")
	assert.Contains(t, out, "Aged Brie")
	assert.NotContains(t, strings.ToLower(out), "day 1")
}

func TestFileFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"version": "1.0",
		"items": [{"name": "Conjured Aged Brie", "sell_in": 0, "quality": 44}]
	}`), 0o644))

	out, err := runCLI(t, "--days", "3", "--file", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Contains(t, lines, "Conjured Aged Brie, 0, 44")
	assert.Contains(t, lines, "Conjured Aged Brie, -1, 48")
	assert.Contains(t, lines, "Conjured Aged Brie, -2, 50")
}

func TestInvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"negative days", []string{"--days", "-1"}, "must not be negative"},
		{"unknown format", []string{"--format", "yaml"}, "unknown --format"},
		{"missing file", []string{"--file", filepath.Join(t.TempDir(), "nope.json")}, "nope.json"},
		{"positional argument", []string{"extra"}, "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "Aged", categoryLabel(domain.Classification{Category: domain.CategoryAged}))
	assert.Equal(t, "Admission (Conjured)", categoryLabel(domain.Classification{Category: domain.CategoryAdmission, Conjured: true}))
}
