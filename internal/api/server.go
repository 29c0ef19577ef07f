// Package api exposes the complaint pipeline, history store and legal
// reference data over HTTP.
package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/equicourt/complaint-cli/internal/draft"
	"github.com/equicourt/complaint-cli/internal/fallback"
	"github.com/equicourt/complaint-cli/internal/metrics"
	"github.com/equicourt/complaint-cli/internal/model"
	"github.com/equicourt/complaint-cli/internal/store"
	"github.com/equicourt/complaint-cli/pkg/mlservice"
)

// Processor runs the complaint pipeline. Satisfied by pipeline.Orchestrator.
type Processor interface {
	Process(ctx context.Context, text string, lang model.LanguageCode) *model.Envelope
}

// Server holds the HTTP handler dependencies.
type Server struct {
	pipeline   Processor
	store      store.Store
	ml         mlservice.Client
	metrics    *metrics.Collector
	maxHistory int
	now        func() time.Time
}

// NewServer creates a Server. maxHistory bounds how many complaints the
// store retains after each save.
func NewServer(p Processor, st store.Store, ml mlservice.Client, mc *metrics.Collector, maxHistory int) *Server {
	return &Server{
		pipeline:   p,
		store:      st,
		ml:         ml,
		metrics:    mc,
		maxHistory: maxHistory,
		now:        time.Now,
	}
}

// Routes builds the request mux.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mux.HandleFunc("POST /v1/complaints", s.handleCreateComplaint)
	mux.HandleFunc("GET /v1/complaints", s.handleListComplaints)
	mux.HandleFunc("GET /v1/complaints/{id}", s.handleGetComplaint)
	mux.HandleFunc("POST /v1/complaints/{id}/draft", s.handleDraft)
	mux.HandleFunc("GET /v1/legal-acts", s.handleLegalActs)
	mux.HandleFunc("POST /v1/ipc-bns", s.handleIPCBNS)
	mux.HandleFunc("GET /v1/metrics", s.handleMetrics)

	return mux
}

func (s *Server) handleCreateComplaint(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text     string             `json:"text"`
		Language model.LanguageCode `json:"language"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}
	if req.Text == "" {
		http.Error(w, `{"error":"text is required"}`, http.StatusBadRequest)
		return
	}
	if req.Language == "" {
		req.Language = model.LangEnglish
	}

	env := s.pipeline.Process(r.Context(), req.Text, req.Language)

	saved, err := s.store.SaveComplaint(r.Context(), req.Text, req.Language, env)
	if err != nil {
		zap.L().Error("save complaint failed", zap.Error(err))
		http.Error(w, `{"error":"failed to save complaint"}`, http.StatusInternalServerError)
		return
	}

	if s.maxHistory > 0 {
		if _, err := s.store.Trim(r.Context(), s.maxHistory); err != nil {
			zap.L().Warn("trim history failed", zap.Error(err))
		}
	}

	writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleListComplaints(w http.ResponseWriter, r *http.Request) {
	filter := store.HistoryFilter{
		Category: model.Category(r.URL.Query().Get("category")),
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, `{"error":"invalid limit"}`, http.StatusBadRequest)
			return
		}
		filter.Limit = n
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, `{"error":"invalid offset"}`, http.StatusBadRequest)
			return
		}
		filter.Offset = n
	}

	complaints, err := s.store.ListComplaints(r.Context(), filter)
	if err != nil {
		zap.L().Error("list complaints failed", zap.Error(err))
		http.Error(w, `{"error":"failed to list complaints"}`, http.StatusInternalServerError)
		return
	}
	if complaints == nil {
		complaints = []model.Complaint{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"complaints": complaints,
		"count":      len(complaints),
	})
}

func (s *Server) handleGetComplaint(w http.ResponseWriter, r *http.Request) {
	c, err := s.store.GetComplaint(r.Context(), r.PathValue("id"))
	if err != nil {
		http.Error(w, `{"error":"complaint not found"}`, http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleDraft(w http.ResponseWriter, r *http.Request) {
	c, err := s.store.GetComplaint(r.Context(), r.PathValue("id"))
	if err != nil {
		http.Error(w, `{"error":"complaint not found"}`, http.StatusNotFound)
		return
	}

	// The complainant body is optional; an empty body falls back to the
	// template placeholders.
	var info model.ComplainantInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil && err != io.EOF {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}

	d, err := draft.Generate(c, info, s.now())
	if err != nil {
		zap.L().Error("draft generation failed", zap.String("id", c.ID), zap.Error(err))
		http.Error(w, `{"error":"failed to generate draft"}`, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Server) handleLegalActs(w http.ResponseWriter, r *http.Request) {
	acts, err := s.ml.LegalActs(r.Context())
	if err != nil {
		zap.L().Warn("remote legal acts unavailable, using local catalogue", zap.Error(err))
		acts = fallback.LegalActs()
	}

	if q := r.URL.Query().Get("q"); q != "" {
		acts = fallback.FilterLegalActs(acts, q)
	}
	if acts == nil {
		acts = []model.LegalAct{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"acts":  acts,
		"count": len(acts),
	})
}

func (s *Server) handleIPCBNS(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IPCSection string `json:"ipc_section"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}
	if req.IPCSection == "" {
		http.Error(w, `{"error":"ipc_section is required"}`, http.StatusBadRequest)
		return
	}

	cmp, err := s.ml.IPCBNSComparison(r.Context(), req.IPCSection)
	if err != nil {
		zap.L().Warn("remote comparison unavailable, using local mapping",
			zap.String("section", req.IPCSection), zap.Error(err))
		local := fallback.IPCBNSComparison(req.IPCSection)
		cmp = &local
	}
	writeJSON(w, http.StatusOK, cmp)
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.metrics.Snapshot())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("encode response failed", zap.Error(err))
	}
}
