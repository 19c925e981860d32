package comicmeta

import "strings"

// KnownSources enumerates the metadata databases a MetronInfo ID element may
// reference.
var KnownSources = []string{
	"AniList",
	"Comic Vine",
	"Grand Comics Database",
	"Kitsu",
	"MangaDex",
	"MangaUpdates",
	"Metron",
	"MyAnimeList",
	"League of Comic Geeks",
}

// CanonicalSource returns the known spelling for a source name, matching
// case-insensitively. Unknown sources are returned trimmed but otherwise
// untouched so user-supplied origins survive.
func CanonicalSource(name string) string {
	trimmed := strings.TrimSpace(name)
	for _, known := range KnownSources {
		if strings.EqualFold(known, trimmed) {
			return known
		}
	}
	return trimmed
}

// IsKnownSource reports whether name matches one of KnownSources.
func IsKnownSource(name string) bool {
	trimmed := strings.TrimSpace(name)
	for _, known := range KnownSources {
		if strings.EqualFold(known, trimmed) {
			return true
		}
	}
	return false
}
