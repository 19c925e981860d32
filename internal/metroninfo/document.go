package metroninfo

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
)

// FileName is the archive entry MetronInfo documents are stored under.
const FileName = "MetronInfo.xml"

const (
	xsiNamespace   = "http://www.w3.org/2001/XMLSchema-instance"
	schemaLocation = "MetronInfo.xsd"
)

// ErrNotMetronInfo indicates bytes that parse as XML but do not carry a
// MetronInfo root element.
var ErrNotMetronInfo = errors.New("not a MetronInfo document")

// Document models a MetronInfo.xml file. Field order follows the schema so
// encoded output matches documents produced by other writers.
type Document struct {
	XMLName        xml.Name `xml:"MetronInfo"`
	XsiNamespace   string   `xml:"xmlns:xsi,attr,omitempty"`
	SchemaLocation string   `xml:"xsi:noNamespaceSchemaLocation,attr,omitempty"`

	IDs             []ID       `xml:"IDS>ID,omitempty"`
	Publisher       *Publisher `xml:"Publisher,omitempty"`
	Series          *Series    `xml:"Series,omitempty"`
	MangaVolume     string     `xml:"MangaVolume,omitempty"`
	CollectionTitle string     `xml:"CollectionTitle,omitempty"`
	Number          string     `xml:"Number,omitempty"`
	Stories         []string   `xml:"Stories>Story,omitempty"`
	Summary         string     `xml:"Summary,omitempty"`
	Prices          []Price    `xml:"Prices>Price,omitempty"`
	CoverDate       string     `xml:"CoverDate,omitempty"`
	StoreDate       string     `xml:"StoreDate,omitempty"`
	PageCount       int        `xml:"PageCount,omitempty"`
	Notes           string     `xml:"Notes,omitempty"`
	Genres          []string   `xml:"Genres>Genre,omitempty"`
	Tags            []string   `xml:"Tags>Tag,omitempty"`
	Arcs            []Arc      `xml:"Arcs>Arc,omitempty"`
	Characters      []string   `xml:"Characters>Character,omitempty"`
	Teams           []string   `xml:"Teams>Team,omitempty"`
	Universes       []Universe `xml:"Universes>Universe,omitempty"`
	Locations       []string   `xml:"Locations>Location,omitempty"`
	Reprints        []Reprint  `xml:"Reprints>Reprint,omitempty"`
	GTIN            *GTIN      `xml:"GTIN,omitempty"`
	AgeRating       string     `xml:"AgeRating,omitempty"`
	URLs            []URL      `xml:"URLs>URL,omitempty"`
	Credits         []Credit   `xml:"Credits>Credit,omitempty"`
	LastModified    string     `xml:"LastModified,omitempty"`
}

// ID references the issue in an external metadata database.
type ID struct {
	Source  string `xml:"source,attr"`
	Primary bool   `xml:"primary,attr,omitempty"`
	Value   string `xml:",chardata"`
}

// Publisher names the publishing company and optional imprint.
type Publisher struct {
	RefID   string   `xml:"id,attr,omitempty"`
	Name    string   `xml:"Name,omitempty"`
	Imprint *Imprint `xml:"Imprint,omitempty"`
}

// Imprint is a publisher sub-label.
type Imprint struct {
	RefID string `xml:"id,attr,omitempty"`
	Value string `xml:",chardata"`
}

// Series describes the series the issue belongs to.
type Series struct {
	RefID            string   `xml:"id,attr,omitempty"`
	Lang             string   `xml:"lang,attr,omitempty"`
	Name             string   `xml:"Name,omitempty"`
	SortName         string   `xml:"SortName,omitempty"`
	Volume           int      `xml:"Volume,omitempty"`
	Format           string   `xml:"Format,omitempty"`
	StartYear        int      `xml:"StartYear,omitempty"`
	IssueCount       int      `xml:"IssueCount,omitempty"`
	VolumeCount      int      `xml:"VolumeCount,omitempty"`
	AlternativeNames []string `xml:"AlternativeNames>AlternativeName,omitempty"`
}

// Price is a cover price in a given country.
type Price struct {
	Country string `xml:"country,attr"`
	Value   string `xml:",chardata"`
}

// Arc is a story arc membership, optionally with the issue's position.
type Arc struct {
	RefID  string `xml:"id,attr,omitempty"`
	Name   string `xml:"Name"`
	Number int    `xml:"Number,omitempty"`
}

// Universe is a shared continuity the issue takes place in.
type Universe struct {
	RefID       string `xml:"id,attr,omitempty"`
	Name        string `xml:"Name"`
	Designation string `xml:"Designation,omitempty"`
}

// Reprint names an issue this one reprints.
type Reprint struct {
	RefID string `xml:"id,attr,omitempty"`
	Name  string `xml:",chardata"`
}

// GTIN carries global trade identifiers.
type GTIN struct {
	ISBN string `xml:"ISBN,omitempty"`
	UPC  string `xml:"UPC,omitempty"`
}

// URL is an informational link; at most one should be primary.
type URL struct {
	Primary bool   `xml:"primary,attr,omitempty"`
	Value   string `xml:",chardata"`
}

// Credit associates a creator with one or more roles.
type Credit struct {
	Creator Resource   `xml:"Creator"`
	Roles   []Resource `xml:"Roles>Role,omitempty"`
}

// Resource is a named schema entity with an optional database id.
type Resource struct {
	RefID string `xml:"id,attr,omitempty"`
	Value string `xml:",chardata"`
}

// NewDocument returns an empty document carrying the schema declaration
// attributes fresh files are written with.
func NewDocument() *Document {
	return &Document{
		XsiNamespace:   xsiNamespace,
		SchemaLocation: schemaLocation,
	}
}

// Decode parses a MetronInfo document from raw XML bytes. Well-formed XML
// under a different root element yields ErrNotMetronInfo.
func Decode(data []byte) (*Document, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode MetronInfo: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != "MetronInfo" {
			return nil, ErrNotMetronInfo
		}
		var doc Document
		if err := dec.DecodeElement(&doc, &start); err != nil {
			return nil, fmt.Errorf("decode MetronInfo: %w", err)
		}
		return &doc, nil
	}
}

// Encode serializes the document as indented UTF-8 XML with a declaration,
// restoring the schema attributes when the source document lacked them.
func Encode(doc *Document) ([]byte, error) {
	if doc.XsiNamespace == "" {
		doc.XsiNamespace = xsiNamespace
	}
	if doc.SchemaLocation == "" {
		doc.SchemaLocation = schemaLocation
	}
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode MetronInfo: %w", err)
	}
	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, xml.Header...)
	out = append(out, body...)
	out = append(out, '\n')
	return out, nil
}

// Validate reports whether data holds a well-formed MetronInfo document.
func Validate(data []byte) bool {
	_, err := Decode(data)
	return err == nil
}
