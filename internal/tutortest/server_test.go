package tutortest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
)

func post(t *testing.T, url, body string) (int, map[string]string) {
	t.Helper()
	resp, err := http.Post(url+"/chat", "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatalf("POST /chat: %v", err)
	}
	defer resp.Body.Close()
	var out map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp.StatusCode, out
}

func TestServer_Chat(t *testing.T) {
	s := New(t, nil)

	status, body := post(t, s.URL, `{"question":"What is 2+2?"}`)
	if status != http.StatusOK || body["response"] != "4" {
		t.Fatalf("reply = %d %v, want 200 response 4", status, body)
	}
	if got := s.Questions(); len(got) != 1 || got[0] != "What is 2+2?" {
		t.Fatalf("Questions() = %v", got)
	}
}

func TestServer_RejectsBadRequests(t *testing.T) {
	s := New(t, nil)

	if status, body := post(t, s.URL, `not json`); status != http.StatusBadRequest || body["error"] == "" {
		t.Fatalf("bad json reply = %d %v", status, body)
	}
	if status, body := post(t, s.URL, `{"question":""}`); status != http.StatusBadRequest || body["error"] != "Question is required." {
		t.Fatalf("empty question reply = %d %v", status, body)
	}
	if len(s.Questions()) != 0 {
		t.Fatalf("rejected questions were recorded")
	}
}

func TestServer_Fail(t *testing.T) {
	s := New(t, Fail(http.StatusServiceUnavailable, "AI model is not loaded. Please check server logs."))

	status, body := post(t, s.URL, `{"question":"q"}`)
	if status != http.StatusServiceUnavailable || body["error"] == "" {
		t.Fatalf("reply = %d %v, want 503 with error", status, body)
	}
}

func TestServer_Health(t *testing.T) {
	s := New(t, nil)

	resp, err := http.Get(s.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	s.SetHealth(http.StatusInternalServerError)
	resp, err = http.Get(s.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusInternalServerError || s.Probes() != 2 {
		t.Fatalf("status = %d probes = %d", resp.StatusCode, s.Probes())
	}
}

func TestDeadURL(t *testing.T) {
	if _, err := http.Get(DeadURL(t)); err == nil {
		t.Fatalf("expected connection error")
	}
}
