package api

import (
	"fmt"
	"net/http"

	"github.com/thumbsim/core/core"
)

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req SessionCreateRequest
	if err := readJSON(r, &req); err != nil && r.ContentLength != 0 {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := s.sessions.CreateSession(req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to create session: %v", err))
		return
	}

	writeJSON(w, http.StatusCreated, SessionCreateResponse{
		SessionID: session.ID,
		CreatedAt: session.CreatedAt,
	})
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	ids := s.sessions.ListSessions()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"sessions": ids,
		"count":    len(ids),
	})
}

func (s *Server) handleGetSessionStatus(w http.ResponseWriter, r *http.Request, sessionID string) {
	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	d := session.Debugger
	writeJSON(w, http.StatusOK, SessionStatusResponse{
		SessionID: sessionID,
		Halted:    d.Halted != nil,
		PC:        d.Core.R[core.PC],
		Cycles:    d.Core.Cycles,
		Registers: d.RegisterDump(),
	})
}

func (s *Server) handleDestroySession(w http.ResponseWriter, r *http.Request, sessionID string) {
	if err := s.sessions.DestroySession(sessionID); err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true, Message: "session destroyed"})
}

// handleLoadProgram loads a raw Thumb-1 binary image into the
// session's memory at req.LoadAddr. Callers arm registers separately
// via the session create request; loading doesn't reset the core.
func (s *Server) handleLoadProgram(w http.ResponseWriter, r *http.Request, sessionID string) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	var req LoadProgramRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := session.Memory.LoadBytes(req.LoadAddr, req.Bytes); err != nil {
		writeJSON(w, http.StatusBadRequest, LoadProgramResponse{Success: false, Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, LoadProgramResponse{Success: true})
}

func (s *Server) handleStep(w http.ResponseWriter, r *http.Request, sessionID string) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	stepErr := session.Debugger.Step()
	resp := StepResponse{Halted: session.Debugger.Halted != nil, PC: session.Debugger.Core.R[core.PC]}
	if stepErr != nil {
		resp.Error = stepErr.Error()
	}
	s.broadcastState(session)
	if resp.Halted {
		s.broadcaster.BroadcastExecutionEvent(sessionID, "halt", map[string]interface{}{"error": resp.Error})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleContinue(w http.ResponseWriter, r *http.Request, sessionID string) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	var req ContinueRequest
	_ = readJSON(r, &req)
	maxSteps := req.MaxSteps
	if maxSteps <= 0 {
		maxSteps = 1_000_000
	}

	bp, contErr := session.Debugger.Continue(maxSteps)
	resp := ContinueResponse{Halted: session.Debugger.Halted != nil, PC: session.Debugger.Core.R[core.PC]}
	if contErr != nil {
		resp.Error = contErr.Error()
	}
	if bp != nil {
		resp.BreakpointHitID = bp.ID
		s.broadcaster.BroadcastExecutionEvent(sessionID, "breakpoint", map[string]interface{}{"id": bp.ID, "address": bp.Address})
	}
	s.broadcastState(session)
	if resp.Halted {
		s.broadcaster.BroadcastExecutionEvent(sessionID, "halt", map[string]interface{}{"error": resp.Error})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBreakpoint(w http.ResponseWriter, r *http.Request, sessionID string) {
	session, err := s.sessions.GetSession(sessionID)
	if err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	switch r.Method {
	case http.MethodPost:
		var req BreakpointRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		bp := session.Debugger.Breakpoints.Add(req.Address, req.Temporary)
		writeJSON(w, http.StatusCreated, BreakpointResponse{ID: bp.ID, Address: bp.Address})
	case http.MethodGet:
		writeJSON(w, http.StatusOK, session.Debugger.Breakpoints.All())
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) broadcastState(session *Session) {
	if s.broadcaster == nil {
		return
	}
	d := session.Debugger
	s.broadcaster.BroadcastState(session.ID, map[string]interface{}{
		"pc":     d.Core.R[core.PC],
		"cycles": d.Core.Cycles,
	})
}
