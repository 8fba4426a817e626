package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeCSVFile writes content to a temp file and returns its path.
func writeCSVFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "projections.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp csv: %v", err)
	}
	return path
}

const sampleCSV = `Player,Team,Pos,Base_Projection,Proj TD PTS,Total_Projection
Bijan Robinson,ATL,RB,16.2,4.1,20.3
Ja'Marr Chase ,CIN,WR,15.8,3.9,19.7
Travis Kelce,KC,TE,11.4,2.8,14.2
`

func TestLoad(t *testing.T) {
	table, err := Load(writeCSVFile(t, sampleCSV))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if table.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", table.Len())
	}
	if len(table.Columns) != 6 {
		t.Fatalf("len(Columns) = %d, want 6", len(table.Columns))
	}

	r := table.Records[1]
	if r.Player != "Ja'Marr Chase" {
		t.Errorf("Player = %q, want trimmed name", r.Player)
	}
	if !r.Total.Valid || r.Total.Value != 19.7 {
		t.Errorf("Total = %+v, want 19.7", r.Total)
	}
}

func TestLoad_HeaderAlias(t *testing.T) {
	content := "Player,Proj TD Pts\nBijan Robinson,4.1\n"
	table, err := Load(writeCSVFile(t, content))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !table.HasColumn(FieldTDPoints) {
		t.Fatal("alias header did not normalize to the TD points column")
	}
	if got := table.Records[0].TD; !got.Valid || got.Value != 4.1 {
		t.Errorf("TD = %+v, want 4.1", got)
	}
}

func TestLoad_UnparseableNumericIsAbsent(t *testing.T) {
	content := "Player,Total_Projection\nBijan Robinson,N/A\nTravis Kelce,14.2\n"
	table, err := Load(writeCSVFile(t, content))
	if err != nil {
		t.Fatalf("Load() error = %v, want nil (bad cell is not a load failure)", err)
	}

	if table.Records[0].Total.Valid {
		t.Error("unparseable numeric loaded as valid, want absent")
	}
	if table.Records[0].Total.Value != 0 {
		t.Error("absent value should not carry a number")
	}
	if !table.Records[1].Total.Valid {
		t.Error("parseable numeric loaded as absent")
	}
}

func TestLoad_DropsUnrecognizedColumns(t *testing.T) {
	content := "Player,Opponent,Total_Projection\nBijan Robinson,CAR,20.3\n"
	table, err := Load(writeCSVFile(t, content))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := []string{"Player", "Total_Projection"}
	got := table.ColumnHeaders()
	if len(got) != len(want) {
		t.Fatalf("ColumnHeaders() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ColumnHeaders()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLoad_ColumnOrderIsCanonical(t *testing.T) {
	// Source order differs from canonical order.
	content := "Total_Projection,Pos,Player\n20.3,RB,Bijan Robinson\n"
	table, err := Load(writeCSVFile(t, content))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := []string{"Player", "Pos", "Total_Projection"}
	got := table.ColumnHeaders()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ColumnHeaders() = %v, want %v", got, want)
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Fatal("Load() expected error for missing file")
	}

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Load() error = %T, want *LoadError", err)
	}
}

func TestLoad_RaggedRows(t *testing.T) {
	content := "Player,Team\nBijan Robinson,ATL,extra\n"
	_, err := Load(writeCSVFile(t, content))

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Load() error = %v, want *LoadError for ragged rows", err)
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	_, err := Load(writeCSVFile(t, ""))

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Load() error = %v, want *LoadError for empty file", err)
	}
	if !strings.Contains(err.Error(), "header row required") {
		t.Errorf("error = %q, want mention of missing header", err.Error())
	}
}

func TestLoad_DuplicateHeaderFirstWins(t *testing.T) {
	content := "Player,Player,Total_Projection\nfirst,second,20.3\n"
	table, err := Load(writeCSVFile(t, content))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := table.Records[0].Player; got != "first" {
		t.Errorf("Player = %q, want first occurrence to win", got)
	}
}

func TestCache(t *testing.T) {
	path := writeCSVFile(t, sampleCSV)
	cache := NewCache()

	first, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	second, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if first != second {
		t.Error("repeated load returned a different table, want cached instance")
	}
	if first.SnapshotID != second.SnapshotID {
		t.Error("cached load changed SnapshotID")
	}

	cache.Invalidate(path)
	third, err := cache.Load(path)
	if err != nil {
		t.Fatalf("Load() after Invalidate error = %v", err)
	}
	if third == second {
		t.Error("Invalidate did not force a re-read")
	}
	if third.SnapshotID == second.SnapshotID {
		t.Error("re-read kept the old SnapshotID")
	}
}

func TestCache_MissingFile(t *testing.T) {
	cache := NewCache()
	_, err := cache.Load(filepath.Join(t.TempDir(), "nope.csv"))

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Load() error = %T, want *LoadError", err)
	}
}
