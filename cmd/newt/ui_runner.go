package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"newt/internal/buildpipeline"
	"newt/internal/ui"
)

type outcome[T any] struct {
	result T
	err    error
}

// runWithUI runs work in the background and renders its progress events
// until work returns.
func runWithUI[T any](title string, files []string, work func(sink buildpipeline.ProgressSink) (T, error)) (T, error) {
	events := make(chan buildpipeline.Event, 256)
	outcomeCh := make(chan outcome[T], 1)

	go func() {
		res, err := work(buildpipeline.ChannelSink{Ch: events})
		outcomeCh <- outcome[T]{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	if uiErr != nil {
		// модель больше не читает канал, дочитываем сами
		for range events {
		}
	}
	out := <-outcomeCh
	if uiErr != nil {
		return out.result, uiErr
	}
	return out.result, out.err
}
