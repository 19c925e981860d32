package metroninfo

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Canonical Series/Format values from the MetronInfo schema.
const (
	FormatAnnual         = "Annual"
	FormatDigitalChapter = "Digital Chapter"
	FormatGraphicNovel   = "Graphic Novel"
	FormatHardcover      = "Hardcover"
	FormatLimitedSeries  = "Limited Series"
	FormatOmnibus        = "Omnibus"
	FormatOneShot        = "One-Shot"
	FormatSingleIssue    = "Single Issue"
	FormatTradePaperback = "Trade Paperback"
)

var formatByName = map[string]string{
	"annual":          FormatAnnual,
	"digital chapter": FormatDigitalChapter,
	"graphic novel":   FormatGraphicNovel,
	"hardcover":       FormatHardcover,
	"limited series":  FormatLimitedSeries,
	"omnibus":         FormatOmnibus,
	"one-shot":        FormatOneShot,
	"single issue":    FormatSingleIssue,
	"trade paperback": FormatTradePaperback,
}

var tradePaperbackAliases = []string{"trade paperback", "collected edition", "tpb", "anthology", "trade paper back"}

var oneShotAliases = []string{"oneshot", "one-shot", "one shot", "1-shot", "1 shot", "1shot"}

// NormalizeFormat maps arbitrary format strings onto the schema's Series
// Format enumeration. Unrecognized non-empty values become Single Issue.
func NormalizeFormat(raw string) string {
	folded := strings.ToLower(strings.TrimSpace(raw))
	if folded == "" {
		return ""
	}
	for _, alias := range tradePaperbackAliases {
		if folded == alias {
			return FormatTradePaperback
		}
	}
	for _, alias := range oneShotAliases {
		if folded == alias {
			return FormatOneShot
		}
	}
	if canonical, ok := formatByName[folded]; ok {
		return canonical
	}
	return FormatSingleIssue
}

// Canonical AgeRating values from the MetronInfo schema.
const (
	RatingUnknown  = "Unknown"
	RatingEveryone = "Everyone"
	RatingTeen     = "Teen"
	RatingTeenPlus = "Teen Plus"
	RatingMature   = "Mature"
	RatingExplicit = "Explicit"
	RatingAdult    = "Adult"
)

// Rating alias tables follow the published MetronInfo rating mappings.
// Order matters: the first table containing the folded input wins.
var ratingTables = []struct {
	rating  string
	aliases []string
}{
	{RatingEveryone, []string{"everyone", "g", "all", "all ages", "a", "t"}},
	{RatingTeen, []string{"teen", "teenager", "13+", "t+", "pg", "psr"}},
	{RatingTeenPlus, []string{"teen plus", "teenager plus", "15+", "parental advisory", "pg+", "psr+", "ma15+"}},
	{RatingMature, []string{"mature", "17+", "explicit content", "m", "mature 17+"}},
	{RatingExplicit, []string{"explicit", "r"}},
	{RatingAdult, []string{"adult", "adults only", "adults only 18+", "18+", "r18+", "r+"}},
}

// NormalizeAgeRating maps arbitrary maturity ratings onto the schema's
// AgeRating enumeration. Unrecognized non-empty values become Unknown.
func NormalizeAgeRating(raw string) string {
	folded := strings.ToLower(strings.TrimSpace(raw))
	if folded == "" {
		return ""
	}
	if folded == "unknown" {
		return RatingUnknown
	}
	for _, table := range ratingTables {
		for _, alias := range table.aliases {
			if folded == alias {
				return table.rating
			}
		}
	}
	return RatingUnknown
}

var genreTitleCaser = cases.Title(language.Und)

// titleCaseGenre normalizes genre casing on write so "science fiction" and
// "Science Fiction" collapse to one entry.
func titleCaseGenre(genre string) string {
	return genreTitleCaser.String(strings.TrimSpace(genre))
}
