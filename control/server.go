// Package control exposes a running ddrx process's DDR registry over a
// small HTTP API, in the style of the example pack's nicerx/http and
// sdrproxy/http packages: stdlib net/http, one handler per resource, no
// framework. This is the mechanism behind the CLI's "list" and "tune"
// subcommands against a running "serve" process; it is not on the
// sample path and carries no decimated audio (spec.md's Non-goals
// exclude "network transport of decimated audio" — this is control
// only, never audio).
package control

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/kd9xyz/ddrx/ddr"
)

// DDRInfo is the JSON shape returned for each registered DDR.
type DDRInfo struct {
	Name       string `json:"name"`
	FQ         int64  `json:"fq"`
	Modulation string `json:"modulation"`
	Enabled    bool   `json:"enabled"`
}

// Server serves the DDR list and per-DDR retune endpoint against reg.
type Server struct {
	reg *ddr.Registry
}

// NewServer builds a control Server over reg.
func NewServer(reg *ddr.Registry) *Server { return &Server{reg: reg} }

// Handler returns the http.Handler to mount, routing GET /ddrs and
// POST /ddrs/{name}/tune.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ddrs", s.handleList)
	mux.HandleFunc("/ddrs/", s.handleTune)
	return mux
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	infos := make([]DDRInfo, 0, len(s.reg.Names()))
	for _, name := range s.reg.Names() {
		d, ok := s.reg.Find(name)
		if !ok {
			continue
		}
		infos = append(infos, DDRInfo{
			Name:       name,
			FQ:         d.FQ(),
			Modulation: d.Modulation().String(),
			Enabled:    d.Enabled(),
		})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(infos)
}

type tuneRequest struct {
	FQ int64 `json:"fq"`
}

func (s *Server) handleTune(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/ddrs/"), "/tune")
	if name == "" || !strings.HasSuffix(r.URL.Path, "/tune") {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	d, ok := s.reg.Find(name)
	if !ok {
		http.Error(w, fmt.Sprintf("unknown DDR %q", name), http.StatusNotFound)
		return
	}
	var req tuneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	d.Retune(req.FQ)
	w.WriteHeader(http.StatusNoContent)
}
