package sidecar

import (
	"encoding/xml"
	"strings"

	"sidecar/internal/record"
)

// documentVersion is written to every sidecar document so future readers
// can detect shape changes.
const documentVersion = "1.0"

// document is the on-disk shape of one record.
type document struct {
	XMLName   xml.Name     `xml:"Asset"`
	Version   string       `xml:"version,attr"`
	MediaType string       `xml:"MediaType"`
	Title     string       `xml:"Title"`
	MediaPath string       `xml:"MediaPath,omitempty"`
	Sections  []docSection `xml:"Section"`
}

type docSection struct {
	Name   string     `xml:"name,attr"`
	Color  string     `xml:"color,attr,omitempty"`
	Fields []docField `xml:"Field"`
}

// docField holds a field value as character data. Older documents split
// list values into Item children; those are joined on read.
type docField struct {
	Name  string   `xml:"name,attr"`
	Value string   `xml:",chardata"`
	Items []string `xml:"Item"`
}

func encodeRecord(rec *record.Record) document {
	doc := document{
		Version:   documentVersion,
		MediaType: rec.MediaType,
		Title:     rec.Title,
		MediaPath: rec.MediaPath,
	}
	for _, section := range rec.Sections {
		ds := docSection{Name: section.Name, Color: section.Color}
		for _, name := range section.FieldNames() {
			ds.Fields = append(ds.Fields, docField{Name: name, Value: section.Field(name)})
		}
		doc.Sections = append(doc.Sections, ds)
	}
	return doc
}

func decodeRecord(doc document) *record.Record {
	rec := &record.Record{
		Title:     strings.TrimSpace(doc.Title),
		MediaType: strings.TrimSpace(doc.MediaType),
		MediaPath: strings.TrimSpace(doc.MediaPath),
	}
	for _, ds := range doc.Sections {
		section := record.NewSection(ds.Name, ds.Color)
		for _, df := range ds.Fields {
			section.SetField(df.Name, fieldValue(df))
		}
		rec.Sections = append(rec.Sections, section)
	}
	if rec.Title == "" {
		if admin := rec.Section("Administrative"); admin != nil {
			rec.Title = admin.Field("Title")
		}
	}
	return rec
}

func fieldValue(df docField) string {
	if len(df.Items) > 0 {
		items := make([]string, 0, len(df.Items))
		for _, item := range df.Items {
			if trimmed := strings.TrimSpace(item); trimmed != "" {
				items = append(items, trimmed)
			}
		}
		return strings.Join(items, ", ")
	}
	return strings.TrimSpace(df.Value)
}
