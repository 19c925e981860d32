package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"longbox/internal/archive"
	"longbox/internal/comicmeta"
)

// jsonMetadata is the stable JSON projection of the canonical model used by
// `show --json` and accepted by `set --from-json`.
type jsonMetadata struct {
	Series         string       `json:"series,omitempty"`
	SeriesAliases  []string     `json:"series_aliases,omitempty"`
	SeriesID       string       `json:"series_id,omitempty"`
	Issue          string       `json:"issue,omitempty"`
	IssueID        string       `json:"issue_id,omitempty"`
	IssueCount     int          `json:"issue_count,omitempty"`
	Title          string       `json:"title,omitempty"`
	Volume         int          `json:"volume,omitempty"`
	VolumeCount    int          `json:"volume_count,omitempty"`
	Publisher      string       `json:"publisher,omitempty"`
	Imprint        string       `json:"imprint,omitempty"`
	Day            int          `json:"day,omitempty"`
	Month          int          `json:"month,omitempty"`
	Year           int          `json:"year,omitempty"`
	Genres         []string     `json:"genres,omitempty"`
	Description    string       `json:"description,omitempty"`
	Notes          string       `json:"notes,omitempty"`
	Format         string       `json:"format,omitempty"`
	Language       string       `json:"language,omitempty"`
	WebLinks       []string     `json:"web_links,omitempty"`
	Manga          string       `json:"manga,omitempty"`
	MaturityRating string       `json:"maturity_rating,omitempty"`
	Tags           []string     `json:"tags,omitempty"`
	StoryArcs      []string     `json:"story_arcs,omitempty"`
	Characters     []string     `json:"characters,omitempty"`
	Teams          []string     `json:"teams,omitempty"`
	Locations      []string     `json:"locations,omitempty"`
	Credits        []jsonCredit `json:"credits,omitempty"`
	DataOrigin     string       `json:"data_origin,omitempty"`
	Price          string       `json:"price,omitempty"`
	Identifier     string       `json:"identifier,omitempty"`
	PageCount      int          `json:"page_count,omitempty"`
}

type jsonCredit struct {
	Person string `json:"person"`
	Role   string `json:"role"`
}

func toJSONMetadata(md *comicmeta.Metadata) jsonMetadata {
	out := jsonMetadata{
		Series:         md.Series,
		SeriesAliases:  md.SeriesAliases,
		SeriesID:       md.SeriesID,
		Issue:          md.Issue,
		IssueID:        md.IssueID,
		IssueCount:     md.IssueCount,
		Title:          md.Title,
		Volume:         md.Volume,
		VolumeCount:    md.VolumeCount,
		Publisher:      md.Publisher,
		Imprint:        md.Imprint,
		Day:            md.Day,
		Month:          md.Month,
		Year:           md.Year,
		Genres:         md.Genres,
		Description:    md.Description,
		Notes:          md.Notes,
		Format:         md.Format,
		Language:       md.Language,
		WebLinks:       md.WebLinks,
		Manga:          md.Manga,
		MaturityRating: md.MaturityRating,
		Tags:           md.Tags,
		StoryArcs:      md.StoryArcs,
		Characters:     md.Characters,
		Teams:          md.Teams,
		Locations:      md.Locations,
		DataOrigin:     md.DataOrigin,
		Price:          md.Price,
		Identifier:     md.Identifier,
		PageCount:      md.PageCount,
	}
	for _, credit := range md.Credits {
		out.Credits = append(out.Credits, jsonCredit{Person: credit.Person, Role: credit.Role})
	}
	return out
}

func fromJSONMetadata(in jsonMetadata) *comicmeta.Metadata {
	md := &comicmeta.Metadata{
		Series:         in.Series,
		SeriesAliases:  in.SeriesAliases,
		SeriesID:       in.SeriesID,
		Issue:          in.Issue,
		IssueID:        in.IssueID,
		IssueCount:     in.IssueCount,
		Title:          in.Title,
		Volume:         in.Volume,
		VolumeCount:    in.VolumeCount,
		Publisher:      in.Publisher,
		Imprint:        in.Imprint,
		Day:            in.Day,
		Month:          in.Month,
		Year:           in.Year,
		Genres:         in.Genres,
		Description:    in.Description,
		Notes:          in.Notes,
		Format:         in.Format,
		Language:       in.Language,
		WebLinks:       in.WebLinks,
		Manga:          in.Manga,
		MaturityRating: in.MaturityRating,
		Tags:           in.Tags,
		StoryArcs:      in.StoryArcs,
		Characters:     in.Characters,
		Teams:          in.Teams,
		Locations:      in.Locations,
		DataOrigin:     in.DataOrigin,
		Price:          in.Price,
		Identifier:     in.Identifier,
		PageCount:      in.PageCount,
	}
	for _, credit := range in.Credits {
		md.AddCredit(credit.Person, credit.Role)
	}
	return md
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "show <archive>",
		Short: "Display the tag metadata stored in an archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ctx.format()
			if err != nil {
				return err
			}
			a, err := archive.Open(args[0])
			if err != nil {
				return err
			}
			if !format.HasTags(a) {
				if jsonFlag {
					return writeJSON(cmd, jsonMetadata{})
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: no %s tags\n", a.Path(), format.Name())
				return nil
			}
			md, err := format.ReadTags(a)
			if err != nil {
				return err
			}
			if jsonFlag {
				return writeJSON(cmd, toJSONMetadata(md))
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Field", "Value"},
				metadataRows(md),
				[]columnAlignment{alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit metadata as JSON")
	return cmd
}

func newRawCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "raw <archive>",
		Short: "Dump the raw tag document stored in an archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ctx.format()
			if err != nil {
				return err
			}
			a, err := archive.Open(args[0])
			if err != nil {
				return err
			}
			raw, err := format.ReadRaw(a)
			if err != nil {
				return err
			}
			if raw == "" {
				return fmt.Errorf("%s: no %s tags", a.Path(), format.Name())
			}
			fmt.Fprint(cmd.OutOrStdout(), raw)
			return nil
		},
	}
}
