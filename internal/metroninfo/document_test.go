package metroninfo_test

import (
	"errors"
	"strings"
	"testing"

	"longbox/internal/metroninfo"
)

const sampleDocument = `<?xml version="1.0" encoding="UTF-8"?>
<MetronInfo xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <IDS>
    <ID source="Metron" primary="true">12345</ID>
    <ID source="Comic Vine">67890</ID>
  </IDS>
  <Publisher>
    <Name>Marvel</Name>
    <Imprint>Epic</Imprint>
  </Publisher>
  <Series lang="en">
    <Name>Hellions</Name>
    <Volume>1</Volume>
    <Format>Limited Series</Format>
  </Series>
  <Number>3</Number>
  <Stories>
    <Story>A Story</Story>
    <Story>Another Story</Story>
  </Stories>
  <Prices>
    <Price country="US">3.99</Price>
  </Prices>
  <CoverDate>2020-09-01</CoverDate>
  <GTIN>
    <UPC>75960609575800311</UPC>
  </GTIN>
  <AgeRating>Teen</AgeRating>
  <Credits>
    <Credit>
      <Creator>Zeb Wells</Creator>
      <Roles>
        <Role>Writer</Role>
      </Roles>
    </Credit>
  </Credits>
</MetronInfo>
`

func TestDecodeSampleDocument(t *testing.T) {
	doc, err := metroninfo.Decode([]byte(sampleDocument))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(doc.IDs) != 2 || !doc.IDs[0].Primary || doc.IDs[0].Source != "Metron" {
		t.Fatalf("unexpected IDs: %+v", doc.IDs)
	}
	if doc.Series == nil || doc.Series.Name != "Hellions" || doc.Series.Lang != "en" {
		t.Fatalf("unexpected series: %+v", doc.Series)
	}
	if doc.Publisher == nil || doc.Publisher.Imprint == nil || doc.Publisher.Imprint.Value != "Epic" {
		t.Fatalf("unexpected publisher: %+v", doc.Publisher)
	}
	if len(doc.Stories) != 2 {
		t.Fatalf("unexpected stories: %v", doc.Stories)
	}
	if doc.GTIN == nil || doc.GTIN.UPC != "75960609575800311" {
		t.Fatalf("unexpected GTIN: %+v", doc.GTIN)
	}
	if len(doc.Credits) != 1 || doc.Credits[0].Creator.Value != "Zeb Wells" {
		t.Fatalf("unexpected credits: %+v", doc.Credits)
	}
}

func TestDecodeRejectsForeignRoot(t *testing.T) {
	_, err := metroninfo.Decode([]byte(`<?xml version="1.0"?><ComicInfo><Series>X</Series></ComicInfo>`))
	if !errors.Is(err, metroninfo.ErrNotMetronInfo) {
		t.Fatalf("expected ErrNotMetronInfo, got %v", err)
	}
}

func TestDecodeSkipsLeadingComments(t *testing.T) {
	data := "<?xml version=\"1.0\"?>\n<!-- exported -->\n<MetronInfo><Number>7</Number></MetronInfo>"
	doc, err := metroninfo.Decode([]byte(data))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if doc.Number != "7" {
		t.Fatalf("unexpected number: %q", doc.Number)
	}
}

func TestEncodeEmitsDeclarationAndSchemaAttrs(t *testing.T) {
	doc := metroninfo.NewDocument()
	doc.Number = "1"

	out, err := metroninfo.Encode(doc)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	text := string(out)
	if !strings.HasPrefix(text, "<?xml") {
		t.Fatalf("missing XML declaration:\n%s", text)
	}
	if !strings.Contains(text, `xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"`) {
		t.Fatalf("missing xsi namespace:\n%s", text)
	}
	if !strings.Contains(text, `xsi:noNamespaceSchemaLocation="MetronInfo.xsd"`) {
		t.Fatalf("missing schema location:\n%s", text)
	}
	if !strings.Contains(text, "<Number>1</Number>") {
		t.Fatalf("missing number:\n%s", text)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	doc, err := metroninfo.Decode([]byte(sampleDocument))
	if err != nil {
		t.Fatal(err)
	}
	out, err := metroninfo.Encode(doc)
	if err != nil {
		t.Fatal(err)
	}
	again, err := metroninfo.Decode(out)
	if err != nil {
		t.Fatalf("re-decode: %v", err)
	}
	if again.Series == nil || again.Series.Name != doc.Series.Name {
		t.Fatalf("series lost in round trip: %+v", again.Series)
	}
	if len(again.IDs) != len(doc.IDs) {
		t.Fatalf("IDs lost in round trip: %+v", again.IDs)
	}
}

func TestValidate(t *testing.T) {
	if !metroninfo.Validate([]byte(sampleDocument)) {
		t.Fatal("sample document should validate")
	}
	if metroninfo.Validate([]byte("not xml at all")) {
		t.Fatal("garbage should not validate")
	}
}
