// Copyright 2026 The ueinspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ueinspect/progress"
)

const barWidth = 40

var barStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

// progressMsg carries one progress.Event into the bubbletea Update
// loop.
type progressMsg progress.Event

type doneMsg struct {
	count int
	err   error
}

type progressModel struct {
	label string
	ev    progress.Event
	done  bool
	err   error
	count int
}

func (m progressModel) Init() tea.Cmd { return nil }

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		m.ev = progress.Event(msg)
		return m, nil
	case doneMsg:
		m.done = true
		m.err = msg.err
		m.count = msg.count
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.done {
		return ""
	}
	total := m.ev.Total
	if total == 0 {
		total = 1
	}
	filled := int(float64(barWidth) * float64(m.ev.Done) / float64(total))
	if filled > barWidth {
		filled = barWidth
	}
	bar := barStyle.Render(strings.Repeat("#", filled)) + strings.Repeat("-", barWidth-filled)
	return fmt.Sprintf("%s [%s] %d/%d (found %d)\n", m.label, bar, m.ev.Done, m.ev.Total, m.ev.Count)
}

// runWithProgress drives run on its own goroutine, rendering a
// lipgloss progress bar fed by run's progress.Sink callbacks until
// run returns.
func runWithProgress(label string, run func(sink progress.Sink) (int, error)) (int, error) {
	p := tea.NewProgram(progressModel{label: label})

	emitter := progress.NewEmitter(func(ev progress.Event) {
		p.Send(progressMsg(ev))
	})
	defer emitter.Close()

	go func() {
		count, err := run(emitter.Emit)
		p.Send(doneMsg{count: count, err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return 0, err
	}
	m := final.(progressModel)
	return m.count, m.err
}
