package main

import (
	"fmt"
	"strconv"
	"strings"

	"longbox/internal/comicmeta"
)

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

func joinList(values []string) string {
	return strings.Join(values, ", ")
}

// metadataRows flattens metadata into Field/Value pairs for table display,
// skipping unset fields.
func metadataRows(md *comicmeta.Metadata) [][]string {
	var rows [][]string
	add := func(field, value string) {
		if strings.TrimSpace(value) != "" {
			rows = append(rows, []string{field, value})
		}
	}

	add("Series", md.Series)
	add("Series aliases", joinList(md.SeriesAliases))
	add("Issue", md.Issue)
	if md.IssueCount > 0 {
		add("Issue count", strconv.Itoa(md.IssueCount))
	}
	add("Title", md.Title)
	if md.Volume > 0 {
		add("Volume", strconv.Itoa(md.Volume))
	}
	if md.VolumeCount > 0 {
		add("Volume count", strconv.Itoa(md.VolumeCount))
	}
	add("Publisher", md.Publisher)
	add("Imprint", md.Imprint)
	add("Cover date", coverDate(md))
	add("Format", md.Format)
	add("Genres", joinList(md.Genres))
	if md.Language != "" {
		add("Language", fmt.Sprintf("%s (%s)", comicmeta.LanguageName(md.Language), md.Language))
	}
	add("Age rating", md.MaturityRating)
	add("Manga", md.Manga)
	if md.PageCount > 0 {
		add("Pages", strconv.Itoa(md.PageCount))
	}
	add("Price", md.Price)
	add("Summary", md.Description)
	add("Notes", md.Notes)
	add("Story arcs", joinList(md.StoryArcs))
	add("Characters", joinList(md.Characters))
	add("Teams", joinList(md.Teams))
	add("Locations", joinList(md.Locations))
	add("Tags", joinList(md.Tags))
	add("Web links", joinList(md.WebLinks))
	for _, credit := range md.Credits {
		add(credit.Role, credit.Person)
	}
	add("Source", md.DataOrigin)
	add("Issue ID", md.IssueID)
	add("Series ID", md.SeriesID)
	add("GTIN", md.Identifier)

	return rows
}

func coverDate(md *comicmeta.Metadata) string {
	switch {
	case md.Year == 0:
		return ""
	case md.Month == 0:
		return fmt.Sprintf("%04d", md.Year)
	case md.Day == 0:
		return fmt.Sprintf("%04d-%02d", md.Year, md.Month)
	default:
		return fmt.Sprintf("%04d-%02d-%02d", md.Year, md.Month, md.Day)
	}
}

// parseCreditFlag splits a "Person:Role" or "Person" flag value.
func parseCreditFlag(value string) (person, role string, err error) {
	person, role, found := strings.Cut(value, ":")
	person = strings.TrimSpace(person)
	role = strings.TrimSpace(role)
	if person == "" {
		return "", "", fmt.Errorf("credit %q: person must not be empty", value)
	}
	if found && role == "" {
		return "", "", fmt.Errorf("credit %q: role after ':' must not be empty", value)
	}
	if !found {
		role = comicmeta.RoleOther
	}
	return person, role, nil
}
