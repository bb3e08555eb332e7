package api

import "time"

// SessionCreateRequest carries the entry point and stack top a new
// session should be armed with. EntryPoint and StackTop default to
// config.DefaultConfig's values when left at zero.
type SessionCreateRequest struct {
	EntryPoint uint32 `json:"entryPoint"`
	StackTop   uint32 `json:"stackTop"`
}

type SessionCreateResponse struct {
	SessionID string    `json:"sessionId"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoadProgramRequest carries a flat Thumb-1 binary image as raw bytes
// (callers send it base64-encoded, which encoding/json handles for a
// []byte field automatically) plus the address it should be loaded at.
type LoadProgramRequest struct {
	LoadAddr uint32 `json:"loadAddr"`
	Bytes    []byte `json:"bytes"`
}

type LoadProgramResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type SessionStatusResponse struct {
	SessionID string `json:"sessionId"`
	Halted    bool   `json:"halted"`
	PC        uint32 `json:"pc"`
	Cycles    uint64 `json:"cycles"`
	Registers string `json:"registers"`
}

type StepResponse struct {
	Halted bool   `json:"halted"`
	Error  string `json:"error,omitempty"`
	PC     uint32 `json:"pc"`
}

type ContinueRequest struct {
	MaxSteps int `json:"maxSteps"`
}

type ContinueResponse struct {
	Halted          bool   `json:"halted"`
	Error           string `json:"error,omitempty"`
	BreakpointHitID int    `json:"breakpointHitId,omitempty"`
	PC              uint32 `json:"pc"`
}

type BreakpointRequest struct {
	Address   uint32 `json:"address"`
	Temporary bool   `json:"temporary"`
}

type BreakpointResponse struct {
	ID      int    `json:"id"`
	Address uint32 `json:"address"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
