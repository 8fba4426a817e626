package web

// handlers_common.go contains shared request-parsing helpers used across handlers.

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/mkearns/fantasyline/internal/dataset"
)

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}

// parseOptions extracts query pipeline options from URL query parameters.
//
// Recognized parameters:
//   - position: quick filter value ("All" or any position)
//   - q: player name substring (case-insensitive)
//   - teams: comma-separated team filter
//   - sort: canonical column header (default Total_Projection)
//   - dir: "asc" or "desc" (default desc)
//   - page_size: one of 10/25/50/100 (default 25)
//   - page: 1-based page number, clamped by the pipeline
func parseOptions(r *http.Request) (dataset.Options, error) {
	opts := dataset.DefaultOptions()
	q := r.URL.Query()

	if pos := strings.TrimSpace(q.Get("position")); pos != "" {
		opts.Position = pos
	}
	opts.NameQuery = strings.TrimSpace(q.Get("q"))
	opts.Teams = dataset.ParseTeams(q.Get("teams"))

	if sortParam := strings.TrimSpace(q.Get("sort")); sortParam != "" {
		field, ok := dataset.FieldByHeader(sortParam)
		if !ok {
			return opts, fmt.Errorf("unknown sort field %q", sortParam)
		}
		opts.SortField = field
	}

	switch strings.ToLower(q.Get("dir")) {
	case "asc":
		opts.SortDesc = false
	case "", "desc":
		// default descending
	default:
		// Unrecognized direction keeps the default rather than erroring.
	}

	opts.PageSize = dataset.NormalizePageSize(parseIntParam(r, "page_size", dataset.DefaultPageSize))
	opts.Page = parseIntParam(r, "page", 1)

	return opts, nil
}

// parsePlayers extracts the comparison selection from the players parameter.
// Accepts both repeated parameters and comma-separated values; entries are
// trimmed and empty entries discarded. Selection order is preserved.
func parsePlayers(r *http.Request) []string {
	var names []string
	for _, raw := range r.URL.Query()["players"] {
		for _, name := range strings.Split(raw, ",") {
			name = strings.TrimSpace(name)
			if name != "" {
				names = append(names, name)
			}
		}
	}
	return names
}
