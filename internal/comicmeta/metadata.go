package comicmeta

import (
	"strings"
)

// Credit associates a creator with a single role. A person contributing in
// several capacities appears once per role.
type Credit struct {
	Person string
	Role   string
}

// Metadata is the canonical description of a single comic issue or volume.
// Zero values mean "not set"; codecs skip unset fields on write.
type Metadata struct {
	Series        string
	SeriesAliases []string
	SeriesID      string

	Issue      string
	IssueID    string
	IssueCount int

	Title       string
	Volume      int
	VolumeCount int

	Publisher string
	Imprint   string

	// Cover date. Year is required for a date to be emitted; missing day or
	// month default to 1 on write.
	Day   int
	Month int
	Year  int

	Genres      []string
	Description string
	Notes       string
	Format      string
	Language    string
	WebLinks    []string

	// Manga mirrors the ComicInfo convention: "", "Yes", "YesAndRightToLeft"
	// or "No".
	Manga string

	MaturityRating string

	Tags       []string
	StoryArcs  []string
	Characters []string
	Teams      []string
	Locations  []string

	Credits []Credit

	// DataOrigin names the metadata source the issue and series IDs refer to
	// (see KnownSources).
	DataOrigin string

	Price      string
	Identifier string
	PageCount  int
}

// IsEmpty reports whether no meaningful field has been set.
func (m *Metadata) IsEmpty() bool {
	if m == nil {
		return true
	}
	return m.Series == "" && m.Issue == "" && m.Title == "" && m.Publisher == "" &&
		m.Description == "" && m.Notes == "" && m.Year == 0 &&
		len(m.Genres) == 0 && len(m.Credits) == 0 && len(m.Tags) == 0 &&
		len(m.Characters) == 0 && len(m.Teams) == 0 && len(m.Locations) == 0 &&
		len(m.StoryArcs) == 0 && len(m.WebLinks) == 0 &&
		m.IssueID == "" && m.SeriesID == "" && m.Identifier == ""
}

// AddCredit records a credit, ignoring exact duplicates. Comparison is
// case-insensitive on both person and role.
func (m *Metadata) AddCredit(person, role string) {
	person = strings.TrimSpace(person)
	role = strings.TrimSpace(role)
	if person == "" {
		return
	}
	for _, c := range m.Credits {
		if strings.EqualFold(c.Person, person) && strings.EqualFold(c.Role, role) {
			return
		}
	}
	m.Credits = append(m.Credits, Credit{Person: person, Role: role})
}

// Overlay copies every set field from other onto m. List fields replace
// wholesale rather than merging so a re-read reflects the newer source.
func (m *Metadata) Overlay(other *Metadata) {
	if other == nil {
		return
	}
	setString(&m.Series, other.Series)
	setString(&m.SeriesID, other.SeriesID)
	setString(&m.Issue, other.Issue)
	setString(&m.IssueID, other.IssueID)
	setString(&m.Title, other.Title)
	setString(&m.Publisher, other.Publisher)
	setString(&m.Imprint, other.Imprint)
	setString(&m.Description, other.Description)
	setString(&m.Notes, other.Notes)
	setString(&m.Format, other.Format)
	setString(&m.Language, other.Language)
	setString(&m.Manga, other.Manga)
	setString(&m.MaturityRating, other.MaturityRating)
	setString(&m.DataOrigin, other.DataOrigin)
	setString(&m.Price, other.Price)
	setString(&m.Identifier, other.Identifier)
	setInt(&m.IssueCount, other.IssueCount)
	setInt(&m.Volume, other.Volume)
	setInt(&m.VolumeCount, other.VolumeCount)
	setInt(&m.Day, other.Day)
	setInt(&m.Month, other.Month)
	setInt(&m.Year, other.Year)
	setInt(&m.PageCount, other.PageCount)
	setList(&m.SeriesAliases, other.SeriesAliases)
	setList(&m.Genres, other.Genres)
	setList(&m.WebLinks, other.WebLinks)
	setList(&m.Tags, other.Tags)
	setList(&m.StoryArcs, other.StoryArcs)
	setList(&m.Characters, other.Characters)
	setList(&m.Teams, other.Teams)
	setList(&m.Locations, other.Locations)
	if len(other.Credits) > 0 {
		m.Credits = append([]Credit(nil), other.Credits...)
	}
}

func setString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

func setInt(dst *int, value int) {
	if value != 0 {
		*dst = value
	}
}

func setList(dst *[]string, value []string) {
	if len(value) > 0 {
		*dst = append([]string(nil), value...)
	}
}

// AppendUnique appends value to list unless an equal entry (ignoring case and
// surrounding whitespace) is already present.
func AppendUnique(list []string, value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return list
	}
	for _, existing := range list {
		if strings.EqualFold(strings.TrimSpace(existing), value) {
			return list
		}
	}
	return append(list, value)
}
