package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"longbox/internal/archive"
	"longbox/internal/comicmeta"
)

type setFlags struct {
	fromJSON string
	replace  bool

	series        string
	seriesAliases []string
	seriesID      string
	issue         string
	issueID       string
	issueCount    int
	title         string
	volume        int
	volumeCount   int
	publisher     string
	imprint       string
	year          int
	month         int
	day           int
	genres        []string
	summary       string
	notes         string
	seriesFormat  string
	language      string
	webLinks      []string
	manga         string
	rating        string
	tags          []string
	arcs          []string
	characters    []string
	teams         []string
	locations     []string
	credits       []string
	source        string
	price         string
	identifier    string
	pageCount     int
}

func newSetCommand(ctx *commandContext) *cobra.Command {
	var flags setFlags

	cmd := &cobra.Command{
		Use:   "set <archive>",
		Short: "Write tag metadata into an archive",
		Long: `Write tag metadata into an archive.

By default the existing tags are read first and the given fields merged over
them, so untouched fields survive. Use --replace to start from empty
metadata instead. Field flags override values from --from-json.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			format, err := ctx.format()
			if err != nil {
				return err
			}
			a, err := archive.Open(args[0])
			if err != nil {
				return err
			}

			md := &comicmeta.Metadata{}
			if !flags.replace {
				existing, err := format.ReadTags(a)
				if err != nil {
					return err
				}
				md = existing
			}

			if flags.fromJSON != "" {
				data, err := os.ReadFile(flags.fromJSON)
				if err != nil {
					return fmt.Errorf("read metadata file: %w", err)
				}
				var in jsonMetadata
				if err := json.Unmarshal(data, &in); err != nil {
					return fmt.Errorf("parse metadata file: %w", err)
				}
				md.Overlay(fromJSONMetadata(in))
			}

			overlay, err := flags.metadata()
			if err != nil {
				return err
			}
			md.Overlay(overlay)

			if md.Language == "" && cfg.Tags.FallbackLanguage != "" {
				md.Language = cfg.Tags.FallbackLanguage
			}
			if md.IssueID != "" && md.DataOrigin == "" {
				md.DataOrigin = cfg.Tags.PreferredSource
			}

			if md.IsEmpty() {
				return fmt.Errorf("refusing to write empty metadata; set at least one field")
			}
			if err := format.WriteTags(a, md); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s tags to %s\n", format.Name(), a.Path())
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.fromJSON, "from-json", "", "Read metadata from a JSON file (see `show --json`)")
	cmd.Flags().BoolVar(&flags.replace, "replace", false, "Start from empty metadata instead of merging")

	cmd.Flags().StringVar(&flags.series, "series", "", "Series name")
	cmd.Flags().StringArrayVar(&flags.seriesAliases, "series-alias", nil, "Alternative series name (repeatable)")
	cmd.Flags().StringVar(&flags.seriesID, "series-id", "", "Series ID at the metadata source")
	cmd.Flags().StringVar(&flags.issue, "issue", "", "Issue number")
	cmd.Flags().StringVar(&flags.issueID, "issue-id", "", "Issue ID at the metadata source")
	cmd.Flags().IntVar(&flags.issueCount, "issue-count", 0, "Number of issues in the series")
	cmd.Flags().StringVar(&flags.title, "title", "", "Issue or collection title")
	cmd.Flags().IntVar(&flags.volume, "volume", 0, "Series volume")
	cmd.Flags().IntVar(&flags.volumeCount, "volume-count", 0, "Number of volumes")
	cmd.Flags().StringVar(&flags.publisher, "publisher", "", "Publisher name")
	cmd.Flags().StringVar(&flags.imprint, "imprint", "", "Publisher imprint")
	cmd.Flags().IntVar(&flags.year, "year", 0, "Cover year")
	cmd.Flags().IntVar(&flags.month, "month", 0, "Cover month")
	cmd.Flags().IntVar(&flags.day, "day", 0, "Cover day")
	cmd.Flags().StringArrayVar(&flags.genres, "genre", nil, "Genre (repeatable)")
	cmd.Flags().StringVar(&flags.summary, "summary", "", "Issue summary")
	cmd.Flags().StringVar(&flags.notes, "notes", "", "Tagging notes")
	cmd.Flags().StringVar(&flags.seriesFormat, "series-format", "", "Series format (e.g. Single Issue, Trade Paperback)")
	cmd.Flags().StringVar(&flags.language, "language", "", "Series language (BCP 47)")
	cmd.Flags().StringArrayVar(&flags.webLinks, "web-link", nil, "Informational URL (repeatable)")
	cmd.Flags().StringVar(&flags.manga, "manga", "", `Manga flag ("Yes", "YesAndRightToLeft", "No")`)
	cmd.Flags().StringVar(&flags.rating, "age-rating", "", "Maturity rating")
	cmd.Flags().StringArrayVar(&flags.tags, "tag", nil, "Freeform tag (repeatable)")
	cmd.Flags().StringArrayVar(&flags.arcs, "arc", nil, "Story arc (repeatable)")
	cmd.Flags().StringArrayVar(&flags.characters, "character", nil, "Character (repeatable)")
	cmd.Flags().StringArrayVar(&flags.teams, "team", nil, "Team (repeatable)")
	cmd.Flags().StringArrayVar(&flags.locations, "location", nil, "Location (repeatable)")
	cmd.Flags().StringArrayVar(&flags.credits, "credit", nil, `Credit as "Person:Role" (repeatable)`)
	cmd.Flags().StringVar(&flags.source, "source", "", "Metadata source the IDs refer to")
	cmd.Flags().StringVar(&flags.price, "price", "", "Cover price")
	cmd.Flags().StringVar(&flags.identifier, "isbn", "", "GTIN identifier (ISBN)")
	cmd.Flags().IntVar(&flags.pageCount, "page-count", 0, "Page count")

	return cmd
}

// metadata converts the flag set into an overlay. Only explicitly provided
// values are non-zero, so Overlay leaves everything else alone.
func (f *setFlags) metadata() (*comicmeta.Metadata, error) {
	md := &comicmeta.Metadata{
		Series:         f.series,
		SeriesAliases:  f.seriesAliases,
		SeriesID:       f.seriesID,
		Issue:          f.issue,
		IssueID:        f.issueID,
		IssueCount:     f.issueCount,
		Title:          f.title,
		Volume:         f.volume,
		VolumeCount:    f.volumeCount,
		Publisher:      f.publisher,
		Imprint:        f.imprint,
		Year:           f.year,
		Month:          f.month,
		Day:            f.day,
		Genres:         f.genres,
		Description:    f.summary,
		Notes:          f.notes,
		Format:         f.seriesFormat,
		Language:       f.language,
		WebLinks:       f.webLinks,
		Manga:          f.manga,
		MaturityRating: f.rating,
		Tags:           f.tags,
		StoryArcs:      f.arcs,
		Characters:     f.characters,
		Teams:          f.teams,
		Locations:      f.locations,
		DataOrigin:     f.source,
		Price:          f.price,
		Identifier:     f.identifier,
		PageCount:      f.pageCount,
	}
	for _, value := range f.credits {
		person, role, err := parseCreditFlag(value)
		if err != nil {
			return nil, err
		}
		md.AddCredit(person, role)
	}
	return md, nil
}
