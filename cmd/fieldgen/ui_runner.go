package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"fieldgen/internal/driver"
	"fieldgen/internal/ui"
)

type generateOutcome struct {
	results []driver.FileResult
	err     error
}

// runGenerateWithUI runs a batch while a Bubble Tea view renders its
// progress events.
func runGenerateWithUI(ctx context.Context, title string, files []string, opts driver.Options) ([]driver.FileResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan generateOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		res, err := driver.GenerateFiles(ctx, files, optsCopy)
		outcomeCh <- generateOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	// a failed view must not block the workers
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
