package comicmeta_test

import (
	"testing"

	"longbox/internal/comicmeta"
)

func TestIsEmpty(t *testing.T) {
	var nilMD *comicmeta.Metadata
	if !nilMD.IsEmpty() {
		t.Fatal("nil metadata should be empty")
	}
	if !(&comicmeta.Metadata{}).IsEmpty() {
		t.Fatal("zero metadata should be empty")
	}
	if (&comicmeta.Metadata{Series: "Saga"}).IsEmpty() {
		t.Fatal("metadata with a series should not be empty")
	}
	if (&comicmeta.Metadata{Year: 2012}).IsEmpty() {
		t.Fatal("metadata with a year should not be empty")
	}
}

func TestAddCreditDeduplicates(t *testing.T) {
	md := &comicmeta.Metadata{}
	md.AddCredit("Brian K. Vaughan", comicmeta.RoleWriter)
	md.AddCredit("brian k. vaughan", "writer")
	md.AddCredit("Brian K. Vaughan", comicmeta.RoleOther)
	md.AddCredit("   ", comicmeta.RoleWriter)

	if len(md.Credits) != 2 {
		t.Fatalf("expected 2 credits, got %d: %+v", len(md.Credits), md.Credits)
	}
	if md.Credits[0].Person != "Brian K. Vaughan" || md.Credits[0].Role != comicmeta.RoleWriter {
		t.Fatalf("unexpected first credit: %+v", md.Credits[0])
	}
}

func TestOverlayKeepsUnsetFields(t *testing.T) {
	base := &comicmeta.Metadata{
		Series:    "Saga",
		Issue:     "1",
		Publisher: "Image",
		Year:      2012,
		Genres:    []string{"Science Fiction"},
	}
	base.AddCredit("Fiona Staples", comicmeta.RolePenciller)

	base.Overlay(&comicmeta.Metadata{
		Issue:  "2",
		Genres: []string{"Fantasy"},
		Month:  4,
	})

	if base.Series != "Saga" {
		t.Fatalf("series lost: %q", base.Series)
	}
	if base.Issue != "2" {
		t.Fatalf("issue not overlaid: %q", base.Issue)
	}
	if base.Publisher != "Image" || base.Year != 2012 || base.Month != 4 {
		t.Fatalf("unexpected fields after overlay: %+v", base)
	}
	if len(base.Genres) != 1 || base.Genres[0] != "Fantasy" {
		t.Fatalf("genres should replace wholesale: %v", base.Genres)
	}
	if len(base.Credits) != 1 {
		t.Fatalf("credits should survive empty overlay: %v", base.Credits)
	}
}

func TestAppendUnique(t *testing.T) {
	list := comicmeta.AppendUnique(nil, "Hero")
	list = comicmeta.AppendUnique(list, " hero ")
	list = comicmeta.AppendUnique(list, "")
	list = comicmeta.AppendUnique(list, "Villain")

	if len(list) != 2 || list[0] != "Hero" || list[1] != "Villain" {
		t.Fatalf("unexpected list: %v", list)
	}
}
