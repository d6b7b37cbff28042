package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/jonathan/resume-matcher/internal/analysis"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/report"
	"github.com/jonathan/resume-matcher/internal/session"
	"github.com/jonathan/resume-matcher/internal/types"
)

// keepAliveInterval spaces SSE comments that hold idle connections open.
const keepAliveInterval = 15 * time.Second

// AnalyzeRequest is the body of POST /session/analyze. JobURL is fetched
// server-side when JobDescription is blank.
type AnalyzeRequest struct {
	ResumeText     string `json:"resumeText"`
	JobDescription string `json:"jobDescription"`
	JobURL         string `json:"jobUrl,omitempty"`
}

// SessionResponse is a snapshot plus chart data once the analysis is complete.
type SessionResponse struct {
	session.Snapshot
	Dashboard *report.Dashboard `json:"dashboard,omitempty"`
}

func newSessionResponse(snap session.Snapshot) SessionResponse {
	resp := SessionResponse{Snapshot: snap}
	if snap.State == session.StateComplete && snap.Result != nil {
		d := report.BuildDashboard(snap.Result)
		resp.Dashboard = &d
	}
	return resp
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status": "ok",
		"model":  s.cfg.Model,
		"state":  s.session.Snapshot().State.String(),
	})
}

func (s *Server) handleExample(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, ingestion.ExampleInput())
}

func (s *Server) handleSchema(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, analysis.ResultSchema().JSONSchema())
}

func (s *Server) handleGetSession(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, newSessionResponse(s.session.Snapshot()))
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, &RequestError{Message: "invalid JSON body", Cause: err})
		return
	}

	input := types.InputState{ResumeText: req.ResumeText, JobDescription: req.JobDescription}
	if strings.TrimSpace(input.JobDescription) == "" && strings.TrimSpace(req.JobURL) != "" {
		// Reject early so a busy session does not trigger a fetch.
		if s.session.Snapshot().State == session.StateAnalyzing {
			s.writeError(w, session.ErrAnalysisInProgress)
			return
		}
		text, _, err := ingestion.LoadURL(r.Context(), strings.TrimSpace(req.JobURL), s.cfg.URLOptions)
		if err != nil {
			s.writeError(w, err)
			return
		}
		input.JobDescription = text
	}

	if err := s.session.Start(r.Context(), input); err != nil {
		s.writeError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusAccepted, newSessionResponse(s.session.Snapshot()))
}

func (s *Server) handleReset(w http.ResponseWriter, _ *http.Request) {
	s.session.Reset()
	s.jsonResponse(w, http.StatusOK, newSessionResponse(s.session.Snapshot()))
}

// handleEvents streams a "snapshot" event on every session transition until
// the client disconnects.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	events, cancel := s.session.Subscribe()
	defer cancel()

	ticker := time.NewTicker(keepAliveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			if err := sse.WriteComment("keep-alive"); err != nil {
				return
			}
		case snap, ok := <-events:
			if !ok {
				return
			}
			if err := sse.WriteEvent("snapshot", newSessionResponse(snap)); err != nil {
				return
			}
		}
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	s.errorResponse(w, HTTPStatus(err), PublicMessage(err))
}
