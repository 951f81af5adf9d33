package record

import "sidecar/internal/schema"

// Normalize reconciles a record's shape against the current schema for its
// media type. The resulting section list matches the schema's section names
// and order exactly:
//
//   - Existing sections are kept by reference and gain any schema fields
//     they are missing, initialized to empty strings. Schema defaults apply
//     only at record creation, never here, so a deliberately blanked value
//     survives.
//   - Schema sections absent from the record are created fresh with every
//     field empty.
//   - Record sections unknown to the schema are dropped, but unknown fields
//     inside a known section are kept untouched. The normalizer adds fields;
//     it never deletes one.
//   - A kept section with no display color inherits the schema's color.
//
// Normalization is total and idempotent.
func Normalize(r *Record) {
	existing := make(map[string]*Section, len(r.Sections))
	for _, section := range r.Sections {
		if _, ok := existing[section.Name]; !ok {
			existing[section.Name] = section
		}
	}

	defs := schema.Sections(r.MediaType)
	normalized := make([]*Section, 0, len(defs))
	for _, def := range defs {
		section, ok := existing[def.Name]
		if !ok {
			section = NewSection(def.Name, def.Color)
			for _, f := range def.Fields {
				section.SetField(f.Name, "")
			}
			normalized = append(normalized, section)
			continue
		}
		for _, f := range def.Fields {
			if !section.Has(f.Name) {
				section.SetField(f.Name, "")
			}
		}
		if section.Color == "" {
			section.Color = def.Color
		}
		normalized = append(normalized, section)
	}
	r.Sections = normalized
}
