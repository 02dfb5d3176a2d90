package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/tutor/internal/logtail"
	"github.com/five82/tutor/internal/session"
	"github.com/five82/tutor/internal/state"
)

// Messages

// probeRequestMsg asks the model to probe the selected address.
type probeRequestMsg struct{}

// probeResultMsg carries ProbeSucceeded or ProbeFailed.
type probeResultMsg struct{ event state.Event }

type submitResultMsg state.SubmitFinished

type diagnosticsMsg struct {
	lines []string
	err   error
}

// Commands

func requestProbeCmd() tea.Msg {
	return probeRequestMsg{}
}

func probeCmd(ctx context.Context, sess *session.Session, index int, address string) tea.Cmd {
	return func() tea.Msg {
		return probeResultMsg{event: sess.Probe(ctx, index, address)}
	}
}

func submitCmd(ctx context.Context, sess *session.Session, address, question string) tea.Cmd {
	return func() tea.Msg {
		return submitResultMsg(sess.Submit(ctx, address, question))
	}
}

func readLogCmd(path string) tea.Cmd {
	return func() tea.Msg {
		lines, err := logtail.Read(path, DiagnosticsLineLimit)
		return diagnosticsMsg{lines: lines, err: err}
	}
}
