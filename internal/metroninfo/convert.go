package metroninfo

import (
	"fmt"
	"strings"
	"time"

	"longbox/internal/comicmeta"
)

// ConvertOptions tune metadata-to-document conversion.
type ConvertOptions struct {
	// Now stamps LastModified. Zero means time.Now.
	Now time.Time
	// PriceCountry is the country attribute for the written price.
	// Defaults to "US".
	PriceCountry string
}

func (o ConvertOptions) now() time.Time {
	if o.Now.IsZero() {
		return time.Now()
	}
	return o.Now
}

func (o ConvertOptions) priceCountry() string {
	if strings.TrimSpace(o.PriceCountry) == "" {
		return "US"
	}
	return strings.TrimSpace(o.PriceCountry)
}

// ApplyMetadata overlays metadata onto a document. Fields the canonical model
// owns are rebuilt from md; schema elements the model does not carry
// (MangaVolume, StoreDate, Universes, Reprints) and IDs from other sources
// are preserved from the existing document.
func ApplyMetadata(doc *Document, md *comicmeta.Metadata, opts ConvertOptions) {
	applyCredits(doc, md)
	applySeries(doc, md)

	doc.Number = md.Issue

	// Trade paperbacks use CollectionTitle; everything else stores
	// semicolon-separated story titles.
	doc.CollectionTitle = ""
	doc.Stories = nil
	if md.Title != "" {
		if doc.Series != nil && doc.Series.Format == FormatTradePaperback {
			doc.CollectionTitle = md.Title
		} else {
			for _, story := range strings.Split(md.Title, ";") {
				if trimmed := strings.TrimSpace(story); trimmed != "" {
					doc.Stories = append(doc.Stories, trimmed)
				}
			}
		}
	}

	genres := md.Genres
	if strings.HasPrefix(strings.ToLower(md.Manga), "yes") {
		genres = comicmeta.AppendUnique(append([]string(nil), genres...), "Manga")
	}
	doc.Genres = nil
	for _, genre := range genres {
		doc.Genres = comicmeta.AppendUnique(doc.Genres, titleCaseGenre(genre))
	}

	doc.Summary = md.Description
	doc.Notes = md.Notes

	doc.URLs = nil
	for i, link := range md.WebLinks {
		doc.URLs = append(doc.URLs, URL{Primary: i == 0, Value: link})
	}

	doc.AgeRating = NormalizeAgeRating(md.MaturityRating)

	doc.Tags = append([]string(nil), md.Tags...)
	doc.Characters = append([]string(nil), md.Characters...)
	doc.Teams = append([]string(nil), md.Teams...)
	doc.Locations = append([]string(nil), md.Locations...)

	doc.Arcs = nil
	for _, arc := range md.StoryArcs {
		doc.Arcs = append(doc.Arcs, Arc{Name: arc})
	}

	applyIDs(doc, md)

	doc.Publisher = nil
	if md.Publisher != "" {
		publisher := &Publisher{Name: md.Publisher}
		if md.Imprint != "" {
			publisher.Imprint = &Imprint{Value: md.Imprint}
		}
		doc.Publisher = publisher
	}

	doc.GTIN = nil
	if md.Identifier != "" {
		// The canonical model does not distinguish ISBN from UPC; assume ISBN.
		doc.GTIN = &GTIN{ISBN: md.Identifier}
	}

	doc.CoverDate = ""
	if md.Year != 0 {
		doc.CoverDate = formatCoverDate(md.Year, md.Month, md.Day)
	}

	doc.PageCount = md.PageCount

	doc.Prices = nil
	if md.Price != "" {
		doc.Prices = []Price{{Country: opts.priceCountry(), Value: md.Price}}
	}

	doc.LastModified = opts.now().Format("2006-01-02T15:04:05")
}

func applyCredits(doc *Document, md *comicmeta.Metadata) {
	type grouped struct {
		person string
		roles  []string
	}
	var order []string
	byPerson := map[string]*grouped{}
	for _, credit := range md.Credits {
		if strings.TrimSpace(credit.Person) == "" {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(credit.Person))
		entry, ok := byPerson[key]
		if !ok {
			entry = &grouped{person: strings.TrimSpace(credit.Person)}
			byPerson[key] = entry
			order = append(order, key)
		}
		entry.roles = append(entry.roles, comicmeta.NormalizeRole(credit.Role))
	}

	doc.Credits = nil
	for _, key := range order {
		entry := byPerson[key]
		credit := Credit{Creator: Resource{Value: entry.person}}
		for _, role := range entry.roles {
			credit.Roles = append(credit.Roles, Resource{Value: role})
		}
		doc.Credits = append(doc.Credits, credit)
	}
}

func applySeries(doc *Document, md *comicmeta.Metadata) {
	if md.Series == "" {
		doc.Series = nil
		return
	}
	series := &Series{
		Name:        md.Series,
		Volume:      md.Volume,
		Format:      NormalizeFormat(md.Format),
		IssueCount:  md.IssueCount,
		VolumeCount: md.VolumeCount,
		Lang:        comicmeta.NormalizeLanguage(md.Language),
	}
	if md.SeriesID != "" {
		series.RefID = md.SeriesID
	}
	if existing := doc.Series; existing != nil {
		// Keep schema fields the canonical model does not carry.
		series.SortName = existing.SortName
		series.StartYear = existing.StartYear
		if series.RefID == "" {
			series.RefID = existing.RefID
		}
		if series.Lang == "" {
			series.Lang = existing.Lang
		}
	}
	for _, alias := range md.SeriesAliases {
		series.AlternativeNames = append(series.AlternativeNames, alias)
	}
	doc.Series = series
}

func applyIDs(doc *Document, md *comicmeta.Metadata) {
	if md.IssueID == "" {
		return
	}
	source := comicmeta.CanonicalSource(md.DataOrigin)
	if source == "" {
		// Without an origin there is no source attribute to write; leave the
		// existing IDs untouched rather than inventing one.
		return
	}
	for i := range doc.IDs {
		if strings.EqualFold(doc.IDs[i].Source, source) {
			doc.IDs[i].Value = md.IssueID
			doc.IDs[i].Primary = true
			return
		}
	}
	doc.IDs = append(doc.IDs, ID{Source: source, Primary: true, Value: md.IssueID})
}

func formatCoverDate(year, month, day int) string {
	if day == 0 {
		day = 1
	}
	if month == 0 {
		month = 1
	}
	switch {
	case year < 50:
		year += 2000
	case year < 100:
		year += 1900
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// ExtractMetadata converts a document into the canonical model.
func ExtractMetadata(doc *Document) *comicmeta.Metadata {
	md := &comicmeta.Metadata{}

	if series := doc.Series; series != nil {
		md.Series = series.Name
		md.SeriesID = series.RefID
		md.Volume = series.Volume
		md.IssueCount = series.IssueCount
		md.VolumeCount = series.VolumeCount
		md.Format = series.Format
		md.Language = series.Lang
		md.SeriesAliases = append([]string(nil), series.AlternativeNames...)
	}

	md.Issue = doc.Number
	md.Title = doc.CollectionTitle
	if md.Title == "" && len(doc.Stories) > 0 {
		md.Title = strings.Join(doc.Stories, "; ")
	}

	md.Genres = append([]string(nil), doc.Genres...)
	md.Description = doc.Summary
	md.Notes = doc.Notes

	for _, arc := range doc.Arcs {
		if arc.Name != "" {
			md.StoryArcs = append(md.StoryArcs, arc.Name)
		}
	}

	if publisher := doc.Publisher; publisher != nil {
		md.Publisher = publisher.Name
		if publisher.Imprint != nil {
			md.Imprint = publisher.Imprint.Value
		}
	}

	if year, month, day, ok := parseCoverDate(doc.CoverDate); ok {
		md.Year, md.Month, md.Day = year, month, day
	}

	if gtin := doc.GTIN; gtin != nil {
		// Prefer ISBN.
		md.Identifier = gtin.ISBN
		if md.Identifier == "" {
			md.Identifier = gtin.UPC
		}
	}

	md.Price = pickPrice(doc.Prices)

	for _, url := range doc.URLs {
		if trimmed := strings.TrimSpace(url.Value); trimmed != "" {
			md.WebLinks = append(md.WebLinks, trimmed)
		}
	}

	md.MaturityRating = doc.AgeRating
	md.PageCount = doc.PageCount

	md.Tags = append([]string(nil), doc.Tags...)
	md.Characters = append([]string(nil), doc.Characters...)
	md.Teams = append([]string(nil), doc.Teams...)
	md.Locations = append([]string(nil), doc.Locations...)

	for _, credit := range doc.Credits {
		creator := strings.TrimSpace(credit.Creator.Value)
		if creator == "" {
			continue
		}
		for _, role := range credit.Roles {
			md.AddCredit(creator, role.Value)
		}
	}

	if id, ok := primaryID(doc.IDs); ok {
		md.IssueID = id.Value
		md.DataOrigin = comicmeta.CanonicalSource(id.Source)
	}

	return md
}

// primaryID picks the ID flagged primary, or the sole ID when only one source
// is recorded.
func primaryID(ids []ID) (ID, bool) {
	for _, id := range ids {
		if id.Primary && id.Value != "" {
			return id, true
		}
	}
	if len(ids) == 1 && ids[0].Value != "" {
		return ids[0], true
	}
	return ID{}, false
}

// pickPrice prefers the US price when several are listed, otherwise a sole
// price regardless of country.
func pickPrice(prices []Price) string {
	if len(prices) == 0 {
		return ""
	}
	if len(prices) > 1 {
		for _, price := range prices {
			if strings.EqualFold(price.Country, "US") {
				return price.Value
			}
		}
		return ""
	}
	return prices[0].Value
}

func parseCoverDate(value string) (year, month, day int, ok bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, 0, 0, false
	}
	for _, layout := range []string{"2006-01-02", "2006-01", "2006"} {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			year = parsed.Year()
			if layout != "2006" {
				month = int(parsed.Month())
			}
			if layout == "2006-01-02" {
				day = parsed.Day()
			}
			return year, month, day, true
		}
	}
	return 0, 0, 0, false
}
