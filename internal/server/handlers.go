package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/agbru/armcalc/internal/armstrong"
	"github.com/agbru/armcalc/internal/config"
	apperrors "github.com/agbru/armcalc/internal/errors"
	"github.com/agbru/armcalc/internal/orchestration"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	s.writeJSONResponse(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
		"runs":      s.session.Len(),
	})
}

func (s *Server) handleVariants(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	variants := make([]VariantInfo, 0)
	for _, name := range s.factory.List() {
		v, err := s.factory.Get(name)
		if err != nil {
			continue
		}
		variants = append(variants, VariantInfo{Name: v.Name(), Description: v.Description()})
	}
	s.writeJSONResponse(w, http.StatusOK, map[string]any{"variants": variants})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	history := s.session.History()
	resp := HistoryResponse{Count: len(history), Runs: make([]RunResponse, 0, len(history))}
	for _, run := range history {
		resp.Runs = append(resp.Runs, newRunResponse(run))
	}
	s.writeJSONResponse(w, http.StatusOK, resp)
}

// handleEvaluate runs one evaluation and appends it to the server session.
// Query parameters: n (required) and repeat (defaults to the configured
// repeat count).
func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	query := r.URL.Query()
	if query.Get("n") == "" {
		s.writeErrorResponse(w, http.StatusBadRequest, "Missing 'n' parameter")
		return
	}
	req, err := orchestration.ParseRequest(query.Get("n"), s.repeatParam(r))
	if err != nil {
		s.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg, ok := s.checkRepeat(req.Repeat); !ok {
		s.writeErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeouts.RequestTimeout)
	defer cancel()

	start := time.Now()
	release, err := s.acquireMeasurement(ctx)
	if err != nil {
		s.writeRunError(w, err)
		return
	}
	presenter := &responsePresenter{}
	_, err = s.orchestrator.Run(ctx, s.session, req, presenter,
		orchestration.RunOptions{Reporter: orchestration.NullProgressReporter{}}, io.Discard)
	release()
	if presenter.invalid != nil {
		s.writeErrorResponse(w, http.StatusBadRequest, presenter.invalid.Error())
		return
	}
	if err != nil {
		s.writeRunError(w, err)
		return
	}

	s.writeJSONResponse(w, http.StatusOK, EvaluateResponse{
		RunResponse: newRunResponse(presenter.result),
		Run:         presenter.runs,
		Duration:    time.Since(start).String(),
	})
}

// handleReference times both variants over a reference set. Query
// parameters: set (defaults to the configured set) and repeat.
func (s *Server) handleReference(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	set := r.URL.Query().Get("set")
	if set == "" {
		set = s.cfg.Reference
	}
	if set == "" {
		set = armstrong.ReferenceCanonical
	}
	entries, err := armstrong.ReferenceSetByName(set)
	if err != nil {
		s.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	repeat, err := strconv.Atoi(s.repeatParam(r))
	if err != nil || repeat <= 0 {
		s.writeErrorResponse(w, http.StatusBadRequest, apperrors.NewInvalidInput("repeat").Error())
		return
	}
	if msg, ok := s.checkRepeat(repeat); !ok {
		s.writeErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeouts.RequestTimeout)
	defer cancel()

	start := time.Now()
	release, err := s.acquireMeasurement(ctx)
	if err != nil {
		s.writeRunError(w, err)
		return
	}
	timings, err := s.orchestrator.RunReferenceBatch(ctx, entries, repeat)
	release()
	if err != nil {
		s.writeRunError(w, err)
		return
	}
	s.writeJSONResponse(w, http.StatusOK, ReferenceResponse{
		Set:      set,
		Repeat:   repeat,
		Timings:  newTimingResponses(timings),
		Duration: time.Since(start).String(),
	})
}

// acquireMeasurement waits until no other request is timing the checkers.
// The returned func releases the slot. Waiting ends early with ctx's error.
func (s *Server) acquireMeasurement(ctx context.Context) (func(), error) {
	select {
	case s.measuring <- struct{}{}:
		return func() { <-s.measuring }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *Server) repeatParam(r *http.Request) string {
	if v := r.URL.Query().Get("repeat"); v != "" {
		return v
	}
	if s.cfg.Repeat > 0 {
		return strconv.Itoa(s.cfg.Repeat)
	}
	return strconv.Itoa(config.DefaultRepeat)
}

func (s *Server) checkRepeat(repeat int) (string, bool) {
	if s.securityConfig.MaxRepeat > 0 && repeat > s.securityConfig.MaxRepeat {
		return fmt.Sprintf("Value of 'repeat' exceeds maximum allowed (%d). This limit prevents resource exhaustion.",
			s.securityConfig.MaxRepeat), false
	}
	return "", true
}

// writeRunError maps an orchestration failure to a status code.
func (s *Server) writeRunError(w http.ResponseWriter, err error) {
	var mismatch apperrors.MismatchError
	switch {
	case apperrors.IsValidationError(err):
		s.writeErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		s.writeErrorResponse(w, http.StatusGatewayTimeout, err.Error())
	case errors.Is(err, context.Canceled):
		s.writeErrorResponse(w, http.StatusServiceUnavailable, err.Error())
	case errors.As(err, &mismatch):
		s.logger.Error("verification mismatch", err)
		s.writeErrorResponse(w, http.StatusInternalServerError, err.Error())
	default:
		s.logger.Error("evaluation failed", err)
		s.writeErrorResponse(w, http.StatusInternalServerError, err.Error())
	}
}

func (s *Server) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Printf("Error encoding JSON response: %v", err)
	}
}

func (s *Server) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	s.writeJSONResponse(w, statusCode, ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}
