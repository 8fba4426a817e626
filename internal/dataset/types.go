// Package dataset provides the projection table and the operations over it:
// loading from CSV, filtering/sorting/paginating, and side-by-side comparison.
// This package has no UI dependencies and can be used by any frontend.
package dataset

import (
	"encoding/json"
	"strconv"

	"github.com/google/uuid"
)

// Field identifies one of the recognized projection columns.
type Field int

const (
	FieldPlayer Field = iota
	FieldTeam
	FieldPos
	FieldBaseProjection
	FieldTDPoints
	FieldTotalProjection
)

// canonicalFields lists every recognized column in output order.
var canonicalFields = []Field{
	FieldPlayer,
	FieldTeam,
	FieldPos,
	FieldBaseProjection,
	FieldTDPoints,
	FieldTotalProjection,
}

// headerNames maps each field to its canonical CSV header.
var headerNames = map[Field]string{
	FieldPlayer:          "Player",
	FieldTeam:            "Team",
	FieldPos:             "Pos",
	FieldBaseProjection:  "Base_Projection",
	FieldTDPoints:        "Proj TD PTS",
	FieldTotalProjection: "Total_Projection",
}

// headerAliases maps known alternate header spellings to the canonical field.
// This is a fixed alias table, not a fuzzy match.
var headerAliases = map[string]Field{
	"Proj TD Pts": FieldTDPoints,
}

// Header returns the canonical CSV header for the field.
func (f Field) Header() string {
	return headerNames[f]
}

// Numeric reports whether the field holds a numeric value.
func (f Field) Numeric() bool {
	switch f {
	case FieldBaseProjection, FieldTDPoints, FieldTotalProjection:
		return true
	}
	return false
}

// CanonicalFields returns all recognized fields in canonical column order.
func CanonicalFields() []Field {
	out := make([]Field, len(canonicalFields))
	copy(out, canonicalFields)
	return out
}

// FieldByHeader resolves a CSV header (canonical or aliased) to its field.
// Returns false for headers outside the recognized column set.
func FieldByHeader(h string) (Field, bool) {
	for f, name := range headerNames {
		if name == h {
			return f, true
		}
	}
	if f, ok := headerAliases[h]; ok {
		return f, true
	}
	return 0, false
}

// Float is an optional float64. Invalid means the source value was missing or
// unparseable; it is never treated as zero.
type Float struct {
	Value float64
	Valid bool
}

// MarshalJSON encodes an absent value as null.
func (f Float) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// UnmarshalJSON decodes null as absent.
func (f *Float) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = Float{}
		return nil
	}
	if err := json.Unmarshal(data, &f.Value); err != nil {
		return err
	}
	f.Valid = true
	return nil
}

// String formats the value for tabular export. Absent values render empty so
// a re-parse of the export yields absent again.
func (f Float) String() string {
	if !f.Valid {
		return ""
	}
	return strconv.FormatFloat(f.Value, 'g', -1, 64)
}

// Record is one player-week projection entry.
type Record struct {
	Player string `json:"player"`
	Team   string `json:"team"`
	Pos    string `json:"pos"`
	Base   Float  `json:"base_projection"`
	TD     Float  `json:"proj_td_pts"`
	Total  Float  `json:"total_projection"`
}

// Text returns the string value of a text field.
// Returns "" for numeric fields.
func (r Record) Text(f Field) string {
	switch f {
	case FieldPlayer:
		return r.Player
	case FieldTeam:
		return r.Team
	case FieldPos:
		return r.Pos
	}
	return ""
}

// Number returns the value of a numeric field.
// Returns an absent Float for text fields.
func (r Record) Number(f Field) Float {
	switch f {
	case FieldBaseProjection:
		return r.Base
	case FieldTDPoints:
		return r.TD
	case FieldTotalProjection:
		return r.Total
	}
	return Float{}
}

// Cell returns the export representation of any field.
func (r Record) Cell(f Field) string {
	if f.Numeric() {
		return r.Number(f).String()
	}
	return r.Text(f)
}

// Table is the full ordered set of records loaded from one source file.
// It is immutable after load; all queries derive new views from it.
type Table struct {
	// SnapshotID identifies this particular load. A re-load of the same path
	// after the file changed produces a new ID, so it doubles as an ETag.
	SnapshotID uuid.UUID

	// Path is the source file the table was loaded from.
	Path string

	// Columns holds the recognized columns that were present in the source,
	// in canonical order. Recognized columns absent from the source are
	// omitted here and absent from the schema.
	Columns []Field

	Records []Record
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.Records)
}

// HasColumn reports whether the field was present in the source schema.
func (t *Table) HasColumn(f Field) bool {
	for _, c := range t.Columns {
		if c == f {
			return true
		}
	}
	return false
}

// ColumnHeaders returns the canonical header names of the present columns.
func (t *Table) ColumnHeaders() []string {
	out := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		out[i] = c.Header()
	}
	return out
}

// Players returns the distinct non-empty player names in table order.
func (t *Table) Players() []string {
	seen := make(map[string]bool, len(t.Records))
	var out []string
	for _, r := range t.Records {
		if r.Player == "" || seen[r.Player] {
			continue
		}
		seen[r.Player] = true
		out = append(out, r.Player)
	}
	return out
}

// Positions returns the distinct non-empty position values in table order.
func (t *Table) Positions() []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range t.Records {
		if r.Pos == "" || seen[r.Pos] {
			continue
		}
		seen[r.Pos] = true
		out = append(out, r.Pos)
	}
	return out
}
