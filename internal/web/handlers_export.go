package web

import (
	"fmt"
	"net/http"

	"github.com/mkearns/fantasyline/internal/dataset"
	"github.com/mkearns/fantasyline/internal/logging"
)

// logExportError records a mid-stream write failure. The status line and
// headers have already gone out, so the response cannot be changed.
func logExportError(r *http.Request, err error) {
	logging.FromContext(r.Context()).Error("export write failed",
		"error", err,
		"path", r.URL.Path,
	)
}

// handleExportCSV downloads the filtered-and-sorted (pre-pagination) set as CSV.
func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	table, err := s.table()
	if err != nil {
		s.respondError(w, r, err, http.StatusServiceUnavailable)
		return
	}

	opts, err := parseOptions(r)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	records := dataset.Filtered(table, opts)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="fantasyline_filtered.csv"`)
	w.Header().Set("X-Content-Type-Options", "nosniff")

	if err := dataset.WriteCSV(w, table.Columns, records); err != nil {
		// Headers are already sent; nothing to do beyond logging.
		logExportError(r, err)
	}
}

// handleExportXLSX downloads the same set as a single-sheet Excel workbook.
func (s *Server) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	table, err := s.table()
	if err != nil {
		s.respondError(w, r, err, http.StatusServiceUnavailable)
		return
	}

	opts, err := parseOptions(r)
	if err != nil {
		s.respondError(w, r, err, http.StatusBadRequest)
		return
	}

	records := dataset.Filtered(table, opts)

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="fantasyline_filtered.xlsx"`)
	w.Header().Set("X-Content-Type-Options", "nosniff")

	if err := dataset.WriteXLSX(w, "Projections", table.Columns, records); err != nil {
		logExportError(r, err)
	}
}

// handleCompareExport downloads the matched comparison subset as CSV,
// in canonical column order.
func (s *Server) handleCompareExport(w http.ResponseWriter, r *http.Request) {
	table, err := s.table()
	if err != nil {
		s.respondError(w, r, err, http.StatusServiceUnavailable)
		return
	}

	cmp := dataset.Compare(table, parsePlayers(r))
	if cmp.Outcome == dataset.OutcomeNoSelection {
		s.respondError(w, r, fmt.Errorf("no players selected"), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="fantasyline_compare.csv"`)
	w.Header().Set("X-Content-Type-Options", "nosniff")

	if err := dataset.WriteCSV(w, table.Columns, cmp.Records); err != nil {
		logExportError(r, err)
	}
}
