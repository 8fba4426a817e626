package web

import (
	"net/http"
	"path/filepath"

	"github.com/mkearns/fantasyline/internal/dataset"
	"github.com/mkearns/fantasyline/internal/logging"
)

// handleIndex serves the single-page UI.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data, err := staticFiles.ReadFile("static/index.html")
	if err != nil {
		s.respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(data)
}

// datasetInfo describes the loaded table for the UI header.
type datasetInfo struct {
	Label      string   `json:"label"`
	Source     string   `json:"source"`
	SnapshotID string   `json:"snapshot_id"`
	Rows       int      `json:"rows"`
	Columns    []string `json:"columns"`
}

// handleDatasetInfo returns metadata about the loaded projection table.
func (s *Server) handleDatasetInfo(w http.ResponseWriter, r *http.Request) {
	table, err := s.table()
	if err != nil {
		s.respondError(w, r, err, http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, datasetInfo{
		Label:      s.cfg.Dataset.Label,
		Source:     filepath.Base(table.Path),
		SnapshotID: table.SnapshotID.String(),
		Rows:       table.Len(),
		Columns:    table.ColumnHeaders(),
	})
}

// handleDatasetRefresh drops the cached table and re-reads the source file.
func (s *Server) handleDatasetRefresh(w http.ResponseWriter, r *http.Request) {
	s.cache.Invalidate(s.cfg.Dataset.Path)

	table, err := s.table()
	if err != nil {
		s.respondError(w, r, err, http.StatusServiceUnavailable)
		return
	}

	logging.FromContext(r.Context()).Info("dataset refreshed",
		"source", filepath.Base(table.Path),
		"rows", table.Len(),
		"snapshot_id", table.SnapshotID,
	)

	writeJSON(w, datasetInfo{
		Label:      s.cfg.Dataset.Label,
		Source:     filepath.Base(table.Path),
		SnapshotID: table.SnapshotID.String(),
		Rows:       table.Len(),
		Columns:    table.ColumnHeaders(),
	})
}

// projectionsResponse is one page of the filtered table plus the applied
// options, echoed back so the UI can keep its controls in sync.
type projectionsResponse struct {
	dataset.View
	Sort       string   `json:"sort"`
	Dir        string   `json:"dir"`
	Position   string   `json:"position"`
	Query      string   `json:"q"`
	Teams      []string `json:"teams"`
	SnapshotID string   `json:"snapshot_id"`
}

// handleProjections runs the filter/sort/paginate pipeline and returns one page.
func (s *Server) handleProjections(w http.ResponseWriter, r *http.Request) {
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

	dir := "desc"
	if !opts.SortDesc {
		dir = "asc"
	}

	writeJSON(w, projectionsResponse{
		View:       dataset.Query(table, opts),
		Sort:       opts.SortField.Header(),
		Dir:        dir,
		Position:   opts.Position,
		Query:      opts.NameQuery,
		Teams:      opts.Teams,
		SnapshotID: table.SnapshotID.String(),
	})
}

// handlePlayers returns the distinct player names for the compare picker.
func (s *Server) handlePlayers(w http.ResponseWriter, r *http.Request) {
	table, err := s.table()
	if err != nil {
		s.respondError(w, r, err, http.StatusServiceUnavailable)
		return
	}

	players := table.Players()
	if players == nil {
		players = []string{}
	}
	writeJSON(w, players)
}

// handlePositions returns the quick-filter values: "All" plus every distinct
// position present in the table.
func (s *Server) handlePositions(w http.ResponseWriter, r *http.Request) {
	table, err := s.table()
	if err != nil {
		s.respondError(w, r, err, http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, append([]string{dataset.PositionAll}, table.Positions()...))
}
