package shop

import (
	"strings"

	"github.com/osse101/GildedRose_Go/internal/domain"
)

// Classify derives an item's category and conjured flag from its name.
// A leading "Conjured" token is stripped before the category prefixes are
// matched; names matching no prefix are ordinary.
func Classify(name string) domain.Classification {
	baseName, conjured := stripConjured(name)
	return domain.Classification{
		BaseName: baseName,
		Category: categoryOf(baseName),
		Conjured: conjured,
	}
}

func stripConjured(name string) (string, bool) {
	fields := strings.Fields(name)
	if len(fields) > 0 && fields[0] == domain.ConjuredToken {
		return strings.Join(fields[1:], " "), true
	}
	return name, false
}

// categoryOf matches prefixes in fixed priority order
func categoryOf(name string) domain.Category {
	switch {
	case strings.HasPrefix(name, domain.PrefixAged):
		return domain.CategoryAged
	case strings.HasPrefix(name, domain.PrefixAdmission):
		return domain.CategoryAdmission
	case strings.HasPrefix(name, domain.PrefixLegendary):
		return domain.CategoryLegendary
	default:
		return domain.CategoryOrdinary
	}
}
