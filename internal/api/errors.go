package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// StatusError is a non-2xx backend response. Views render it as a
// user-visible message; nothing retries automatically.
type StatusError struct {
	Op      string
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: backend returned %d: %s", e.Op, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: backend returned %d", e.Op, e.Code)
}

func newStatusError(method, path string, resp *http.Response) *StatusError {
	e := &StatusError{Op: method + " " + path, Code: resp.StatusCode}

	// Best effort: the backend usually ships {"error": "..."} or
	// {"message": "..."} bodies.
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	if err != nil {
		return e
	}
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil {
		if payload.Error != "" {
			e.Message = payload.Error
		} else {
			e.Message = payload.Message
		}
	}
	return e
}
