package dataset

import (
	"sort"
	"strings"
)

// PageSizes lists the accepted rows-per-page values.
var PageSizes = []int{10, 25, 50, 100}

// DefaultPageSize is used when no valid page size is requested.
const DefaultPageSize = 25

// PositionAll is the position filter value that matches every record.
const PositionAll = "All"

// Options configures one query over a table. The zero value is not useful;
// start from DefaultOptions and override.
type Options struct {
	// Position filters to an exact match unless empty or PositionAll.
	Position string

	// NameQuery keeps records whose player name contains the query,
	// case-insensitively. Empty means no filter.
	NameQuery string

	// Teams keeps records whose team is a member of the set when non-empty.
	Teams []string

	// SortField orders the filtered set. A field absent from the table
	// schema leaves the set in source order.
	SortField Field

	// SortDesc sorts descending when true. Absent numeric values sort
	// last either way.
	SortDesc bool

	// PageSize is snapped to the nearest accepted value (default 25).
	PageSize int

	// Page is 1-based and clamped to the available page range.
	Page int
}

// DefaultOptions returns the query configuration used when the caller
// specifies nothing: everything visible, total projection descending,
// first page of 25.
func DefaultOptions() Options {
	return Options{
		Position:  PositionAll,
		SortField: FieldTotalProjection,
		SortDesc:  true,
		PageSize:  DefaultPageSize,
		Page:      1,
	}
}

// ParseTeams splits a comma-separated team filter into a cleaned set.
// Entries are trimmed and empty entries discarded.
func ParseTeams(s string) []string {
	var teams []string
	for _, t := range strings.Split(s, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			teams = append(teams, t)
		}
	}
	return teams
}

// NormalizePageSize snaps n to an accepted page size.
func NormalizePageSize(n int) int {
	for _, s := range PageSizes {
		if n == s {
			return n
		}
	}
	return DefaultPageSize
}

// View is one page of a filtered and sorted table, plus enough bookkeeping
// to render pagination controls. An empty view with TotalRows == 0 is an
// informational empty state, not an error.
type View struct {
	Records    []Record `json:"records"`
	TotalRows  int      `json:"total_rows"`
	Page       int      `json:"page"`
	PageSize   int      `json:"page_size"`
	TotalPages int      `json:"total_pages"`

	// Start and End delimit the visible window within the filtered set,
	// half-open and zero-based ("showing End of TotalRows rows").
	Start int `json:"start"`
	End   int `json:"end"`
}

// Query applies filters, sort, and pagination to the table.
// It is a pure function of the table and options.
func Query(t *Table, opts Options) View {
	filtered := Filtered(t, opts)

	pageSize := NormalizePageSize(opts.PageSize)
	total := len(filtered)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	page := opts.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return View{
		Records:    filtered[start:end],
		TotalRows:  total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		Start:      start,
		End:        end,
	}
}

// Filtered returns the filtered and sorted record set without pagination.
// This is the set exports operate on.
func Filtered(t *Table, opts Options) []Record {
	records := make([]Record, 0, len(t.Records))

	teamSet := make(map[string]bool, len(opts.Teams))
	for _, team := range opts.Teams {
		teamSet[team] = true
	}
	query := strings.ToLower(opts.NameQuery)

	for _, r := range t.Records {
		if opts.Position != "" && opts.Position != PositionAll && r.Pos != opts.Position {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(r.Player), query) {
			continue
		}
		if len(teamSet) > 0 && !teamSet[r.Team] {
			continue
		}
		records = append(records, r)
	}

	if t.HasColumn(opts.SortField) {
		sortRecords(records, opts.SortField, opts.SortDesc)
	}

	return records
}

// sortRecords stably sorts records by field. Absent numeric values always
// sort after present ones; among themselves they keep source order.
func sortRecords(records []Record, field Field, desc bool) {
	if field.Numeric() {
		sort.SliceStable(records, func(i, j int) bool {
			a, b := records[i].Number(field), records[j].Number(field)
			if a.Valid != b.Valid {
				return a.Valid
			}
			if !a.Valid {
				return false
			}
			if desc {
				return a.Value > b.Value
			}
			return a.Value < b.Value
		})
		return
	}

	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i].Text(field), records[j].Text(field)
		if desc {
			return a > b
		}
		return a < b
	})
}
