package server

import (
	"net/http"
	"strconv"

	"github.com/matzehuels/deck/pkg/arrange"
	"github.com/matzehuels/deck/pkg/buildinfo"
	"github.com/matzehuels/deck/pkg/errors"
	"github.com/matzehuels/deck/pkg/geom"
	deckio "github.com/matzehuels/deck/pkg/io"
	"github.com/matzehuels/deck/pkg/snap"
	"github.com/matzehuels/deck/pkg/workspace"
)

// ArrangeResponse is the body of a successful arrange request.
type ArrangeResponse struct {
	Mode       arrange.Mode        `json:"mode"`
	Area       geom.Rect           `json:"area"`
	Focused    string              `json:"focused,omitempty"`
	Transforms []arrange.Transform `json:"transforms"`
}

// SnapResponse is the body of a successful snap request.
type SnapResponse struct {
	Card     string       `json:"card"`
	Proposed geom.Point   `json:"proposed"`
	Position geom.Point   `json:"position"`
	Snapped  bool         `json:"snapped"`
	Guides   []snap.Guide `json:"guides"`
	Edges    string       `json:"edges,omitempty"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "build": buildinfo.Read()})
}

func (s *Server) arrange(w http.ResponseWriter, r *http.Request) {
	ws, err := s.load(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	if name := r.URL.Query().Get("mode"); name != "" {
		m, err := arrange.ParseMode(name)
		if err != nil {
			writeError(w, errors.Wrap(errors.ErrCodeInvalidMode, err, "unknown mode %q", name))
			return
		}
		ws.SetArrangementMode(m)
	}

	writeJSON(w, http.StatusOK, Arrange(ws))
}

func (s *Server) snap(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	id := q.Get("card")
	if err := errors.ValidateCardID(id); err != nil {
		writeError(w, err)
		return
	}
	x, errX := strconv.ParseFloat(q.Get("x"), 64)
	y, errY := strconv.ParseFloat(q.Get("y"), 64)
	if errX != nil || errY != nil {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "x and y must be numbers"))
		return
	}

	ws, err := s.load(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	out, err := Snap(ws, id, x, y)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// Arrange computes the response for an arrange request against ws.
func Arrange(ws *workspace.Workspace) ArrangeResponse {
	transforms := ws.Layout()
	if transforms == nil {
		transforms = []arrange.Transform{}
	}
	return ArrangeResponse{
		Mode:       ws.Mode(),
		Area:       ws.Area(),
		Focused:    ws.Focused(),
		Transforms: transforms,
	}
}

// Snap computes the response for a snap request against ws. An unknown card
// yields CARD_NOT_FOUND.
func Snap(ws *workspace.Workspace, id string, x, y float64) (SnapResponse, error) {
	res, ok := ws.SnapAt(id, x, y)
	if !ok {
		return SnapResponse{}, errors.New(errors.ErrCodeCardNotFound, "card %q not in workspace", id)
	}
	out := SnapResponse{
		Card:     id,
		Proposed: geom.Point{X: x, Y: y},
		Position: res.Pos,
		Snapped:  res.Snapped(),
		Guides:   res.Guides,
	}
	if out.Guides == nil {
		out.Guides = []snap.Guide{}
	}
	if res.Edges != 0 {
		out.Edges = res.Edges.String()
	}
	return out, nil
}

// load decodes the request body into a fresh workspace.
func (s *Server) load(w http.ResponseWriter, r *http.Request) (*workspace.Workspace, error) {
	doc, err := deckio.ReadJSON(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}
	opts := s.cfg.Workspace
	opts.Logger = s.logger
	return doc.Load(opts)
}
