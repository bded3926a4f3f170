// Package describe renders the mechanical effect of an item as plain text.
// Output depends only on the item's fields.
package describe

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/geoquest/internal/catalog"
	"github.com/KirkDiggler/geoquest/internal/entities"
	"github.com/KirkDiggler/geoquest/internal/powers"
)

var qualities = []string{"crap", "shoddy", "plain", "fine", "superb", "legendary"}

// Quality returns the quality term for a generation level. Levels outside
// 1-6 are clamped.
func Quality(level int) string {
	switch {
	case level < 1:
		return qualities[0]
	case level > len(qualities):
		return qualities[len(qualities)-1]
	}
	return qualities[level-1]
}

// Describe renders a sentence-per-clause description of what item does
func Describe(item *entities.Item) string {
	if item == nil {
		return ""
	}

	quality := cases.Title(language.English).String(Quality(item.Level))

	power, ok := powers.Get(item.Power)
	if !ok {
		return fmt.Sprintf("%s item. Its power (%s) is unknown. %s", quality, item.Power, usesClause(item.Uses))
	}

	effect := power.Describe(Target(item), item)
	return fmt.Sprintf("%s item. %s. %s", quality, effect, usesClause(item.Uses))
}

// Target renders the victim phrase for an item's mode and filters, for
// example "a chosen elite/boss goblin monster".
func Target(item *entities.Item) string {
	var words []string
	if levels := levelPhrase(item.Filters.Levels); levels != "" {
		words = append(words, levels)
	}
	if len(item.Filters.Species) > 0 {
		words = append(words, strings.Join(item.Filters.Species, " or "))
	}
	qualifier := strings.Join(words, " ")
	if qualifier != "" {
		qualifier += " "
	}

	choice := "random"
	if item.TargetMode.Chosen() {
		choice = "chosen"
	}

	var phrase string
	if item.TargetMode.ByType() {
		phrase = fmt.Sprintf("all monsters of a %s %stype", choice, qualifier)
	} else {
		phrase = fmt.Sprintf("a %s %smonster", choice, qualifier)
	}

	if len(item.Filters.Flags) > 0 {
		phrase += fmt.Sprintf(" with the %s trait", strings.Join(item.Filters.Flags, " or "))
	}
	return phrase
}

// levelPhrase joins the allowed levels in ascending order. Allowing every
// level says nothing, so it renders empty.
func levelPhrase(levels []catalog.Level) string {
	filters := entities.TargetFilters{Levels: levels}

	var names []string
	for _, l := range catalog.Levels {
		if filters.HasLevel(l) {
			names = append(names, l.String())
		}
	}
	if len(names) == len(catalog.Levels) {
		return ""
	}
	return strings.Join(names, "/")
}

func usesClause(uses int) string {
	switch {
	case uses <= 0:
		return "No uses remaining."
	case uses == 1:
		return "1 use remaining."
	}
	return fmt.Sprintf("%d uses remaining.", uses)
}
