// Package server exposes the QA pipeline over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Divas-Gupta30/doc-qa-agent/internal/cache"
	"github.com/Divas-Gupta30/doc-qa-agent/internal/pipeline"
)

// QAService answers one question; implemented by pipeline.Pipeline.
type QAService interface {
	Answer(ctx context.Context, question string) (*pipeline.Answer, error)
}

// Server wires the pipeline and answer cache behind a mux router.
type Server struct {
	qa     QAService
	cache  *cache.AnswerCache
	logger *zap.Logger
}

func New(qa QAService, answerCache *cache.AnswerCache, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{qa: qa, cache: answerCache, logger: logger}
}

// Router builds the HTTP routes.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/qa", s.handleQA).Methods("POST")
	router.HandleFunc("/health", s.handleHealth).Methods("GET")
	router.Handle("/metrics", promhttp.Handler())
	return router
}

type qaRequest struct {
	Question string `json:"question"`
}

func (s *Server) handleQA(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() {
		qaRequestDuration.Observe(time.Since(start).Seconds())
	}()

	var req qaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		qaRequestsTotal.WithLabelValues("error").Inc()
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	question := strings.TrimSpace(req.Question)
	if question == "" {
		qaRequestsTotal.WithLabelValues("error").Inc()
		http.Error(w, "question is required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()

	if s.cache != nil {
		if ans, ok := s.cache.Get(ctx, question); ok {
			cacheHitsTotal.Inc()
			qaRequestsTotal.WithLabelValues("success").Inc()
			writeJSON(w, http.StatusOK, ans)
			return
		}
		cacheMissesTotal.Inc()
	}

	ans, err := s.qa.Answer(ctx, question)
	if err != nil {
		qaRequestsTotal.WithLabelValues("error").Inc()
		var stageErr *pipeline.StageError
		if errors.As(err, &stageErr) {
			s.logger.Error("pipeline failure",
				zap.String("stage", string(stageErr.Stage)), zap.Error(err))
			writeJSON(w, http.StatusBadGateway, map[string]string{
				"error": "generation failed",
				"stage": string(stageErr.Stage),
			})
			return
		}
		s.logger.Error("qa request failed", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if ans.Degraded {
		qaDegradedTotal.Inc()
	}
	if s.cache != nil {
		s.cache.Set(ctx, question, ans)
	}
	qaRequestsTotal.WithLabelValues("success").Inc()
	writeJSON(w, http.StatusOK, ans)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
