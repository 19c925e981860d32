package comicmeta

import "strings"

// Canonical credit roles recognized across tag formats.
const (
	RoleWriter     = "Writer"
	RolePenciller  = "Penciller"
	RoleInker      = "Inker"
	RoleColorist   = "Colorist"
	RoleLetterer   = "Letterer"
	RoleCover      = "Cover"
	RoleEditor     = "Editor"
	RoleTranslator = "Translator"
	RoleOther      = "Other"
)

// Synonym tables for the canonical roles. Matching is case-insensitive; a raw
// role naming an artist ambiguously ("artist", "illustrator") maps to the
// first canonical role whose table lists it.
var (
	WriterSynonyms     = []string{"writer", "plotter", "scripter", "script", "story", "plot", "plot/script"}
	PencillerSynonyms  = []string{"penciller", "penciler", "artist", "breakdowns", "illustrator", "layouts"}
	InkerSynonyms      = []string{"inker", "artist", "embellisher", "finishes", "illustrator", "ink assists"}
	ColoristSynonyms   = []string{"colorist", "colourist", "colorer", "colourer", "color assists", "color flats"}
	LettererSynonyms   = []string{"letterer"}
	CoverSynonyms      = []string{"cover", "covers", "coverartist", "cover artist"}
	EditorSynonyms     = []string{"editor", "edits", "editing"}
	TranslatorSynonyms = []string{"translator"}
)

// ExtendedRoles lists roles beyond the canonical set that pass through a
// MetronInfo round trip verbatim.
var ExtendedRoles = []string{
	"plot",
	"story",
	"interviewer",
	"illustrator",
	"layouts",
	"embellisher",
	"ink assists",
	"color separations",
	"color assists",
	"color flats",
	"digital art technician",
	"gray tone",
	"consulting editor",
	"assistant editor",
	"associate editor",
	"group editor",
	"senior editor",
	"managing editor",
	"collection editor",
	"production",
	"designer",
	"logo design",
	"supervising editor",
	"executive editor",
	"editor in chief",
	"president",
	"publisher",
	"chief creative officer",
	"executive producer",
	"other",
}

var canonicalRoleTables = []struct {
	role     string
	synonyms []string
}{
	{RoleWriter, WriterSynonyms},
	{RolePenciller, PencillerSynonyms},
	{RoleInker, InkerSynonyms},
	{RoleColorist, ColoristSynonyms},
	{RoleLetterer, LettererSynonyms},
	{RoleCover, CoverSynonyms},
	{RoleEditor, EditorSynonyms},
	{RoleTranslator, TranslatorSynonyms},
}

// NormalizeRole maps a raw credit role onto its canonical spelling. Extended
// roles are returned unchanged; anything unrecognized becomes RoleOther.
func NormalizeRole(raw string) string {
	folded := strings.ToLower(strings.TrimSpace(raw))
	if folded == "" {
		return RoleOther
	}
	for _, table := range canonicalRoleTables {
		for _, synonym := range table.synonyms {
			if folded == synonym {
				return table.role
			}
		}
	}
	for _, extended := range ExtendedRoles {
		if folded == extended {
			return strings.TrimSpace(raw)
		}
	}
	return RoleOther
}

// SupportsRole reports whether a raw role maps to a known canonical or
// extended role rather than falling through to RoleOther.
func SupportsRole(raw string) bool {
	folded := strings.ToLower(strings.TrimSpace(raw))
	if folded == "" {
		return false
	}
	if folded == "other" {
		return true
	}
	for _, table := range canonicalRoleTables {
		for _, synonym := range table.synonyms {
			if folded == synonym {
				return true
			}
		}
	}
	for _, extended := range ExtendedRoles {
		if folded == extended {
			return true
		}
	}
	return false
}
