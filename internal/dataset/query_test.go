package dataset

import (
	"reflect"
	"testing"
)

// testTable builds an in-memory table with the full canonical schema.
func testTable(records ...Record) *Table {
	return &Table{
		Columns: CanonicalFields(),
		Records: records,
	}
}

func rec(player, team, pos string, total Float) Record {
	return Record{Player: player, Team: team, Pos: pos, Total: total}
}

func val(v float64) Float { return Float{Value: v, Valid: true} }

func names(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Player
	}
	return out
}

func TestQuery_NoFiltersReturnsEverything(t *testing.T) {
	table := testTable(
		rec("A", "ATL", "RB", val(10)),
		rec("B", "CIN", "WR", val(8)),
		rec("C", "KC", "TE", val(6)),
	)

	opts := DefaultOptions()
	view := Query(table, opts)

	if view.TotalRows != table.Len() {
		t.Errorf("TotalRows = %d, want %d", view.TotalRows, table.Len())
	}
	if len(view.Records) != table.Len() {
		t.Errorf("len(Records) = %d, want %d", len(view.Records), table.Len())
	}
}

func TestQuery_PositionFilter(t *testing.T) {
	table := testTable(
		rec("A", "ATL", "RB", val(10)),
		rec("B", "CIN", "WR", val(8)),
		rec("C", "KC", "RB", val(6)),
	)

	opts := DefaultOptions()
	opts.Position = "RB"
	view := Query(table, opts)

	if view.TotalRows != 2 {
		t.Fatalf("TotalRows = %d, want 2", view.TotalRows)
	}
	for _, r := range view.Records {
		if r.Pos != "RB" {
			t.Errorf("record %q has Pos %q, want RB", r.Player, r.Pos)
		}
	}

	// "All" and empty both mean no filter.
	for _, pos := range []string{PositionAll, ""} {
		opts.Position = pos
		if got := Query(table, opts).TotalRows; got != 3 {
			t.Errorf("Position=%q TotalRows = %d, want 3", pos, got)
		}
	}
}

func TestQuery_NameQueryIsCaseInsensitiveSubstring(t *testing.T) {
	table := testTable(
		rec("Bijan Robinson", "ATL", "RB", val(10)),
		rec("Brian Robinson Jr.", "WAS", "RB", val(8)),
		rec("Travis Kelce", "KC", "TE", val(6)),
	)

	opts := DefaultOptions()
	opts.NameQuery = "ROBINSON"
	view := Query(table, opts)

	if view.TotalRows != 2 {
		t.Errorf("TotalRows = %d, want 2", view.TotalRows)
	}
}

func TestQuery_TeamFilter(t *testing.T) {
	table := testTable(
		rec("A", "ATL", "RB", val(10)),
		rec("B", "CIN", "WR", val(8)),
		rec("C", "KC", "TE", val(6)),
	)

	opts := DefaultOptions()
	opts.Teams = ParseTeams(" ATL, KC ,,")
	view := Query(table, opts)

	if view.TotalRows != 2 {
		t.Fatalf("TotalRows = %d, want 2", view.TotalRows)
	}
	want := []string{"A", "C"}
	if got := names(view.Records); !reflect.DeepEqual(got, want) {
		t.Errorf("records = %v, want %v", got, want)
	}
}

func TestParseTeams(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{input: "", want: nil},
		{input: " , ,", want: nil},
		{input: "ATL", want: []string{"ATL"}},
		{input: " ATL , KC ", want: []string{"ATL", "KC"}},
	}

	for _, tt := range tests {
		if got := ParseTeams(tt.input); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseTeams(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestQuery_SortAbsentValuesLast(t *testing.T) {
	table := testTable(
		rec("A", "", "", Float{}),
		rec("B", "", "", val(8)),
		rec("C", "", "", val(12)),
		rec("D", "", "", Float{}),
	)

	opts := DefaultOptions() // Total_Projection descending
	got := names(Query(table, opts).Records)
	want := []string{"C", "B", "A", "D"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("descending order = %v, want %v", got, want)
	}

	opts.SortDesc = false
	got = names(Query(table, opts).Records)
	want = []string{"B", "C", "A", "D"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ascending order = %v, want %v (absent still last)", got, want)
	}
}

func TestQuery_SortIsStable(t *testing.T) {
	table := testTable(
		rec("first", "", "", val(10)),
		rec("second", "", "", val(10)),
		rec("third", "", "", val(10)),
	)

	opts := DefaultOptions()
	got := names(Query(table, opts).Records)
	want := []string{"first", "second", "third"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("equal keys reordered: %v, want %v", got, want)
	}
}

func TestQuery_SortByTextField(t *testing.T) {
	table := testTable(
		rec("Charlie", "", "", val(1)),
		rec("Alice", "", "", val(2)),
		rec("Bob", "", "", val(3)),
	)

	opts := DefaultOptions()
	opts.SortField = FieldPlayer
	opts.SortDesc = false
	got := names(Query(table, opts).Records)
	want := []string{"Alice", "Bob", "Charlie"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestQuery_SortFieldAbsentFromSchema(t *testing.T) {
	table := &Table{
		Columns: []Field{FieldPlayer},
		Records: []Record{
			rec("B", "", "", Float{}),
			rec("A", "", "", Float{}),
		},
	}

	opts := DefaultOptions() // sort by Total_Projection, which is not present
	got := names(Query(table, opts).Records)
	want := []string{"B", "A"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want source order when sort field missing", got)
	}
}

func TestQuery_PageClamping(t *testing.T) {
	var records []Record
	for i := 0; i < 30; i++ {
		records = append(records, rec(string(rune('a'+i)), "", "", val(float64(i))))
	}
	table := testTable(records...)

	tests := []struct {
		name     string
		page     int
		pageSize int
		wantPage int
		wantLen  int
	}{
		{name: "zero page clamps to 1", page: 0, pageSize: 10, wantPage: 1, wantLen: 10},
		{name: "negative page clamps to 1", page: -3, pageSize: 10, wantPage: 1, wantLen: 10},
		{name: "past the end clamps to last", page: 99, pageSize: 10, wantPage: 3, wantLen: 10},
		{name: "last partial page", page: 2, pageSize: 25, wantPage: 2, wantLen: 5},
		{name: "invalid page size snaps to default", page: 1, pageSize: 7, wantPage: 1, wantLen: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Page = tt.page
			opts.PageSize = tt.pageSize
			view := Query(table, opts)

			if view.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", view.Page, tt.wantPage)
			}
			if len(view.Records) != tt.wantLen {
				t.Errorf("len(Records) = %d, want %d", len(view.Records), tt.wantLen)
			}
		})
	}
}

func TestQuery_EmptyResultIsNotAnError(t *testing.T) {
	table := testTable(rec("A", "ATL", "RB", val(10)))

	opts := DefaultOptions()
	opts.NameQuery = "nobody"
	opts.Page = 5
	view := Query(table, opts)

	if view.TotalRows != 0 {
		t.Errorf("TotalRows = %d, want 0", view.TotalRows)
	}
	if len(view.Records) != 0 {
		t.Errorf("len(Records) = %d, want 0", len(view.Records))
	}
	if view.Page != 1 {
		t.Errorf("Page = %d, want clamp to 1 even with zero rows", view.Page)
	}
	if view.TotalPages != 1 {
		t.Errorf("TotalPages = %d, want minimum 1", view.TotalPages)
	}
}

func TestQuery_WindowBookkeeping(t *testing.T) {
	var records []Record
	for i := 0; i < 26; i++ {
		records = append(records, rec(string(rune('a'+i)), "", "", val(float64(i))))
	}
	table := testTable(records...)

	opts := DefaultOptions()
	opts.PageSize = 10
	opts.Page = 3
	view := Query(table, opts)

	if view.Start != 20 || view.End != 26 {
		t.Errorf("window = [%d,%d), want [20,26)", view.Start, view.End)
	}
	if view.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", view.TotalPages)
	}
}

func TestNormalizePageSize(t *testing.T) {
	tests := []struct {
		input int
		want  int
	}{
		{input: 10, want: 10},
		{input: 25, want: 25},
		{input: 50, want: 50},
		{input: 100, want: 100},
		{input: 0, want: DefaultPageSize},
		{input: -1, want: DefaultPageSize},
		{input: 33, want: DefaultPageSize},
	}

	for _, tt := range tests {
		if got := NormalizePageSize(tt.input); got != tt.want {
			t.Errorf("NormalizePageSize(%d) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
