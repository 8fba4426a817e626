package web

import (
	"net/http"

	"github.com/mkearns/fantasyline/internal/dataset"
)

type compareResponse struct {
	dataset.Comparison
	Top        *dataset.Record `json:"top,omitempty"`
	SnapshotID string          `json:"snapshot_id"`
}

// handleCompare ranks a selection of players by total projection.
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	table, err := s.table()
	if err != nil {
		s.respondError(w, r, err, http.StatusServiceUnavailable)
		return
	}

	cmp := dataset.Compare(table, parsePlayers(r))

	resp := compareResponse{
		Comparison: cmp,
		SnapshotID: table.SnapshotID.String(),
	}
	if cmp.Outcome == dataset.OutcomeSingleWinner {
		if top, ok := cmp.Top(); ok {
			resp.Top = &top
		}
	}

	writeJSON(w, resp)
}
