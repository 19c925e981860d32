package comicmeta

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// NormalizeLanguage canonicalizes a language hint (BCP 47 tag, ISO code, or
// English name) to its base tag string, e.g. "en" or "ja". Unparseable input
// is returned trimmed so nothing the user wrote is silently discarded.
func NormalizeLanguage(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	tag, err := language.Parse(trimmed)
	if err != nil {
		return trimmed
	}
	base, confidence := tag.Base()
	if confidence == language.No {
		return trimmed
	}
	return base.String()
}

// LanguageName returns the English display name for a language tag, or the
// input itself when the tag cannot be parsed.
func LanguageName(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}
	tag, err := language.Parse(trimmed)
	if err != nil {
		return trimmed
	}
	name := display.English.Tags().Name(tag)
	if name == "" {
		return trimmed
	}
	return name
}
