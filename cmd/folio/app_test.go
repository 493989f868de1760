package main

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/folio/internal/config"
	"github.com/stretchr/testify/require"
)

type fakeUI struct {
	received chan tea.Msg
	err      error
}

func (f *fakeUI) Send(msg tea.Msg) {
	f.received <- msg
}

// Run returns immediately with the configured error.
func (f *fakeUI) Run() error {
	return f.err
}

func TestAppForwardsConfig(t *testing.T) {
	updates := make(chan config.Config)
	received := make(chan tea.Msg, 1)
	blocking := &blockingUI{fakeUI: fakeUI{received: received}, quit: make(chan struct{})}
	app := NewApp(blocking, updates)

	done := make(chan error, 1)
	go func() { done <- app.Start(context.Background()) }()

	updates <- config.Config{Mode: config.ModeScroll}

	select {
	case msg := <-received:
		conf, ok := msg.(config.Config)
		require.True(t, ok)
		require.Equal(t, config.ModeScroll, conf.Mode)
	case <-time.After(time.Second):
		t.Fatal("config was not forwarded")
	}

	close(blocking.quit)
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("app did not stop with the ui")
	}
}

func TestAppReturnsUIError(t *testing.T) {
	errBoom := errors.New("boom")
	app := NewApp(&fakeUI{err: errBoom}, make(chan config.Config))

	require.ErrorIs(t, app.Start(context.Background()), errBoom)
}

type blockingUI struct {
	fakeUI
	quit chan struct{}
}

func (b *blockingUI) Run() error {
	<-b.quit

	return nil
}
