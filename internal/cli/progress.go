package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
)

const progressBarWidth = 30

// progress reports batch progress, as a bar on a terminal or as log lines.
type progress struct {
	update func(done, total int, file string)
	stop   func()
}

// startProgress picks the bar for multi-file batches on a terminal, unless
// debug logging would interleave with it.
func startProgress(ctx context.Context, logger *log.Logger, title string, total int) *progress {
	if total > 1 && isTerminal(os.Stderr) && logger.GetLevel() > log.DebugLevel {
		return startProgressBar(ctx, os.Stderr, title, total)
	}
	return logProgress(logger, title)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func logProgress(logger *log.Logger, title string) *progress {
	return &progress{
		update: func(done, total int, file string) {
			logger.Info(title, "file", file, "done", fmt.Sprintf("%d/%d", done, total))
		},
		stop: func() {},
	}
}

func startProgressBar(ctx context.Context, w io.Writer, title string, total int) *progress {
	p := tea.NewProgram(newProgressModel(title, total),
		tea.WithContext(ctx),
		tea.WithOutput(w),
		tea.WithInput(nil),
		tea.WithoutSignalHandler())

	finished := make(chan struct{})
	go func() {
		defer close(finished)
		_, _ = p.Run()
	}()

	return &progress{
		update: func(done, total int, file string) {
			p.Send(progressMsg{done: done, total: total, file: file})
		},
		stop: func() {
			p.Send(progressDoneMsg{})
			<-finished
		},
	}
}

// =============================================================================
// progressModel - bubbletea batch progress bar
// =============================================================================

type progressMsg struct {
	done, total int
	file        string
}

type progressDoneMsg struct{}

type progressModel struct {
	title    string
	done     int
	total    int
	file     string
	width    int
	finished bool
}

func newProgressModel(title string, total int) progressModel {
	return progressModel{title: title, total: total, width: progressBarWidth}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		m.done, m.total, m.file = msg.done, msg.total, msg.file
	case progressDoneMsg:
		m.finished = true
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.width = min(progressBarWidth, max(10, msg.Width-40))
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.finished {
		return ""
	}
	filled := 0
	if m.total > 0 {
		filled = m.width * m.done / m.total
	}
	bar := styleBarFilled.Render(strings.Repeat("█", filled)) +
		styleBarEmpty.Render(strings.Repeat("░", m.width-filled))

	var b strings.Builder
	b.WriteString(StyleTitle.Render(m.title))
	b.WriteString(" ")
	b.WriteString(bar)
	b.WriteString(" ")
	b.WriteString(StyleNumber.Render(fmt.Sprintf("%d/%d", m.done, m.total)))
	if m.file != "" {
		b.WriteString(" ")
		b.WriteString(StyleDim.Render(filepath.Base(m.file)))
	}
	b.WriteString("\n")
	return b.String()
}
