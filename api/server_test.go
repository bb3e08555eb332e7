package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/thumbsim/core/config"
)

func newTestServer() *Server {
	return NewServer("127.0.0.1:0", config.DefaultConfig())
}

func TestHandleHealth_ReportsSessionCount(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("status field = %v, want ok", body["status"])
	}
}

func TestCreateLoadStepSession_FullRoundTrip(t *testing.T) {
	s := newTestServer()

	createReq := httptest.NewRequest(http.MethodPost, "/api/v1/session", bytes.NewReader([]byte(`{}`)))
	createRec := httptest.NewRecorder()
	s.Handler().ServeHTTP(createRec, createReq)
	if createRec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want 201: %s", createRec.Code, createRec.Body.String())
	}
	var created SessionCreateResponse
	if err := json.Unmarshal(createRec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.SessionID == "" {
		t.Fatal("expected a non-empty session ID")
	}

	// movs r0, #1 (0x2001) at address 0.
	loadBody, _ := json.Marshal(LoadProgramRequest{LoadAddr: 0, Bytes: []byte{0x01, 0x20}})
	loadReq := httptest.NewRequest(http.MethodPost, "/api/v1/session/"+created.SessionID+"/load", bytes.NewReader(loadBody))
	loadRec := httptest.NewRecorder()
	s.Handler().ServeHTTP(loadRec, loadReq)
	if loadRec.Code != http.StatusOK {
		t.Fatalf("load status = %d, want 200: %s", loadRec.Code, loadRec.Body.String())
	}

	stepReq := httptest.NewRequest(http.MethodPost, "/api/v1/session/"+created.SessionID+"/step", nil)
	stepRec := httptest.NewRecorder()
	s.Handler().ServeHTTP(stepRec, stepReq)
	if stepRec.Code != http.StatusOK {
		t.Fatalf("step status = %d, want 200: %s", stepRec.Code, stepRec.Body.String())
	}
	var stepResp StepResponse
	if err := json.Unmarshal(stepRec.Body.Bytes(), &stepResp); err != nil {
		t.Fatalf("decode step response: %v", err)
	}
	if stepResp.Halted {
		t.Fatalf("did not expect a halt, got error %q", stepResp.Error)
	}
	if stepResp.PC != 2 {
		t.Fatalf("PC = %d, want 2", stepResp.PC)
	}
}

func TestHandleGetSessionStatus_UnknownSessionIs404(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/session/does-not-exist", nil)
	rec := httptest.NewRecorder()

	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestHandleBreakpoint_CreateThenList(t *testing.T) {
	s := newTestServer()
	createRec := httptest.NewRecorder()
	s.Handler().ServeHTTP(createRec, httptest.NewRequest(http.MethodPost, "/api/v1/session", bytes.NewReader([]byte(`{}`))))
	var created SessionCreateResponse
	json.Unmarshal(createRec.Body.Bytes(), &created)

	bpBody, _ := json.Marshal(BreakpointRequest{Address: 0x100})
	bpReq := httptest.NewRequest(http.MethodPost, "/api/v1/session/"+created.SessionID+"/breakpoint", bytes.NewReader(bpBody))
	bpRec := httptest.NewRecorder()
	s.Handler().ServeHTTP(bpRec, bpReq)
	if bpRec.Code != http.StatusCreated {
		t.Fatalf("breakpoint create status = %d, want 201: %s", bpRec.Code, bpRec.Body.String())
	}

	listReq := httptest.NewRequest(http.MethodGet, "/api/v1/session/"+created.SessionID+"/breakpoint", nil)
	listRec := httptest.NewRecorder()
	s.Handler().ServeHTTP(listRec, listReq)
	if listRec.Code != http.StatusOK {
		t.Fatalf("breakpoint list status = %d, want 200", listRec.Code)
	}
}
