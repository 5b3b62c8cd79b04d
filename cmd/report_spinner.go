package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type spinnerResultMsg[T any] struct {
	value T
	err   error
}

// spinnerModel runs one background call and animates until it returns.
type spinnerModel[T any] struct {
	spinner spinner.Model
	label   string
	started time.Time
	call    tea.Cmd

	value T
	err   error
	done  bool
}

func newSpinnerModel[T any](label string, call tea.Cmd) spinnerModel[T] {
	return spinnerModel[T]{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
		),
		label:   label,
		started: time.Now(),
		call:    call,
	}
}

func (m spinnerModel[T]) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.call)
}

func (m spinnerModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerResultMsg[T]:
		m.value, m.err, m.done = msg.value, msg.err, true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m spinnerModel[T]) View() string {
	if m.done {
		return ""
	}

	elapsed := time.Since(m.started).Truncate(time.Second)
	return fmt.Sprintf("%s %s (%s)", m.spinner.View(), m.label, elapsed)
}

// withSpinner animates a spinner on output while call runs and hands back
// call's result.
func withSpinner[T any](ctx context.Context, output io.Writer, label string, call func(context.Context) (T, error)) (T, error) {
	var zero T

	p := tea.NewProgram(
		newSpinnerModel[T](label, func() tea.Msg {
			value, err := call(ctx)
			return spinnerResultMsg[T]{value: value, err: err}
		}),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		return zero, err
	}

	result, ok := final.(spinnerModel[T])
	if !ok {
		return zero, fmt.Errorf("unexpected final spinner model type %T", final)
	}
	if !result.done {
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		return zero, errors.New("fetch interrupted")
	}

	return result.value, result.err
}
