package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
)

// LoadError indicates the source file is missing or not parseable as
// delimited tabular text. It blocks every view that depends on the table;
// individual bad cell values never produce one.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load dataset %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads a CSV file into a Table.
//
// The first row is the header. Recognized columns (including the known alias
// spelling of the touchdown-points column) are projected into canonical
// order; every other column is dropped. Player/Team/Pos cells are trimmed,
// numeric cells are coerced with ToFloat, and unparseable numerics load as
// absent rather than failing the row.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	return parse(path, f)
}

// Parse reads CSV content from r into a Table attributed to path.
// Exposed so exports can be re-read without touching the filesystem.
func Parse(path string, r io.Reader) (*Table, error) {
	return parse(path, r)
}

func parse(path string, r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &LoadError{Path: path, Err: errors.New("empty file: header row required")}
	}
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	// Map each recognized column to its source position. First occurrence
	// wins, so a duplicated header cannot make a field ambiguous.
	colIndex := make(map[Field]int)
	for i, h := range header {
		f, ok := FieldByHeader(cleanHeader(h))
		if !ok {
			continue
		}
		if _, exists := colIndex[f]; exists {
			continue
		}
		colIndex[f] = i
	}

	var columns []Field
	for _, f := range canonicalFields {
		if _, ok := colIndex[f]; ok {
			columns = append(columns, f)
		}
	}

	t := &Table{
		SnapshotID: uuid.New(),
		Path:       path,
		Columns:    columns,
	}

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}

		cell := func(f Field) string {
			i, ok := colIndex[f]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}

		t.Records = append(t.Records, Record{
			Player: CleanCell(cell(FieldPlayer)),
			Team:   CleanCell(cell(FieldTeam)),
			Pos:    CleanCell(cell(FieldPos)),
			Base:   ToFloat(cell(FieldBaseProjection)),
			TD:     ToFloat(cell(FieldTDPoints)),
			Total:  ToFloat(cell(FieldTotalProjection)),
		})
	}

	return t, nil
}
