package tutor

import (
	"encoding/json"
	"strings"
)

// ChatRequest mirrors the body accepted by POST /chat.
type ChatRequest struct {
	Question string `json:"question"`
}

// ChatReply mirrors the body returned by POST /chat. Both fields are kept raw
// so an odd type in either one never turns a usable reply into a decode
// failure.
type ChatReply struct {
	Response json.RawMessage `json:"response"`
	Error    json.RawMessage `json:"error"`
}

// Text returns the response field when it is a non-empty string.
func (r ChatReply) Text() (string, bool) {
	if len(r.Response) == 0 {
		return "", false
	}
	var text string
	if err := json.Unmarshal(r.Response, &text); err != nil {
		return "", false
	}
	if text == "" {
		return "", false
	}
	return text, true
}

// Detail returns the trimmed error field, or "" when it is absent or not a
// string.
func (r ChatReply) Detail() string {
	if len(r.Error) == 0 {
		return ""
	}
	var detail string
	if err := json.Unmarshal(r.Error, &detail); err != nil {
		return ""
	}
	return strings.TrimSpace(detail)
}
