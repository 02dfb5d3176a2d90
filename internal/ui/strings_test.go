package ui

import (
	"errors"
	"testing"
)

func TestTruncate(t *testing.T) {
	if got := truncate("hello world", 8); got != "hello..." {
		t.Fatalf("truncate = %q, want hello...", got)
	}
	if got := truncate(" short ", 10); got != "short" {
		t.Fatalf("truncate = %q, want short", got)
	}
}

func TestTruncateMiddle(t *testing.T) {
	if got := truncateMiddle("  ", 10); got != "" {
		t.Fatalf("truncateMiddle blank = %q, want empty", got)
	}
	if got := truncateMiddle("abcd", 2); got != "ab" {
		t.Fatalf("truncateMiddle limit<=3 = %q, want ab", got)
	}
	got := truncateMiddle("http://tutor.example.internal:8000", 16)
	if len([]rune(got)) > 16 {
		t.Fatalf("got %q (%d runes), want <=16", got, len([]rune(got)))
	}
	if got[:7] != "http://" {
		t.Fatalf("got %q, want scheme preserved", got)
	}
}

func TestClassifyConnectionError(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{errors.New("dial tcp 127.0.0.1:8000: connect: connection refused"), "OFFLINE"},
		{errors.New("dial tcp: lookup tutor: no such host"), "HOST NOT FOUND"},
		{errors.New("connection timeout: context deadline exceeded"), "TIMEOUT"},
		{errors.New("Server responded with status 503"), "BAD STATUS"},
		{errors.New("boom"), "ERROR"},
	}
	for _, tc := range cases {
		if got := classifyConnectionError(tc.err); got != tc.want {
			t.Fatalf("classifyConnectionError(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}

func TestStatusLabel(t *testing.T) {
	if got := statusLabel(99); got != "Server status unknown" {
		t.Fatalf("statusLabel(99) = %q", got)
	}
}
