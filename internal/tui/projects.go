package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/pomo/internal/store"
)

const nameWidth = 14

// projectsModel is the ledger overview: one row per project plus a
// focus-hours bar chart. It never mutates the ledger.
type projectsModel struct {
	store  *store.Store
	width  int
	height int

	// active is the session's working copy; its counters shadow the stored
	// row, which lags behind until the shutdown flush.
	active *store.Project

	projects []store.Project
	chart    barchart.Model
}

func newProjectsModel(s *store.Store, active *store.Project) projectsModel {
	return projectsModel{
		store:  s,
		active: active,
		chart:  barchart.New(50, 8),
	}
}

func (p *projectsModel) setSize(w, h int) {
	p.width = w
	p.height = h
}

func (p projectsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		projects, _ := p.store.ListProjects()
		for i := range projects {
			if projects[i].Name == p.active.Name {
				projects[i] = *p.active
			}
		}
		return projectsDataMsg{projects: projects}
	}
}

func (p projectsModel) update(msg tea.Msg) (projectsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case projectsDataMsg:
		p.projects = msg.projects
		p.buildChart()
		return p, nil
	case tickMsg:
		_ = msg // ledger rows are static while this view is up; the timer is paused
	}
	return p, nil
}

func (p *projectsModel) buildChart() {
	chartWidth := p.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	p.chart = barchart.New(chartWidth, 8)

	var bars []barchart.BarData
	for i, proj := range p.projects {
		style := lipgloss.NewStyle().Foreground(chartColors[i%len(chartColors)])
		bars = append(bars, barchart.BarData{
			Label: truncateName(proj.Name),
			Values: []barchart.BarValue{{
				Name:  proj.Name,
				Value: float64(proj.FocusSeconds) / 3600.0,
				Style: style,
			}},
		})
	}

	p.chart.PushAll(bars)
	p.chart.Draw()
}

func (p projectsModel) view() string {
	title := titleStyle.Render("PROJECT PROGRESS")

	var rows []string
	rows = append(rows, mutedStyle.Render(fmt.Sprintf(
		"  %-*s %-14s %-14s", nameWidth, "project", "focus time", "total time",
	)))
	rows = append(rows, mutedStyle.Render("  "+strings.Repeat("─", nameWidth+30)))

	for _, proj := range p.projects {
		name := highlightStyle.Render(fmt.Sprintf("%-*s", nameWidth, truncateName(proj.Name)))
		rows = append(rows, fmt.Sprintf("  %s %-14s %-14s",
			name,
			formatLedgerSeconds(proj.FocusSeconds),
			formatLedgerSeconds(proj.TotalSeconds),
		))
	}
	table := strings.Join(rows, "\n")

	footer := mutedStyle.Render("press [p] to return...")

	center := lipgloss.NewStyle().Width(p.width).Align(lipgloss.Center)
	return lipgloss.JoinVertical(lipgloss.Left,
		center.Render(title),
		"",
		center.Render(table),
		"",
		center.Render(p.chart.View()),
		"",
		center.Render(footer),
	)
}

func truncateName(name string) string {
	// Slice runes, not bytes: a multibyte name must not be cut mid-rune.
	runes := []rune(name)
	if len(runes) > nameWidth {
		return string(runes[:nameWidth-3]) + "..."
	}
	return name
}
