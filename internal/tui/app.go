// Package tui is the terminal frontend: a Bubble Tea program that drives
// the session state machine from a one-second tick and renders the timer,
// the project ledger and the config form.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/pomo/internal/export"
	"github.com/sadopc/pomo/internal/session"
	"github.com/sadopc/pomo/internal/store"
)

// App is the root Bubble Tea model. It owns the session; every mutation of
// session state happens on the program's update loop, so no locking is
// needed around the project counters.
type App struct {
	store  *store.Store
	sess   *session.Session
	width  int
	height int

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int

	projects projectsModel
	config   configModel

	help   help.Model
	status string
}

func NewApp(s *store.Store, sess *session.Session) App {
	h := help.New()
	h.ShowAll = false

	return App{
		store:      s,
		sess:       sess,
		activeView: viewTimer,
		projects:   newProjectsModel(s, sess.Project),
		config:     newConfigModel(s),
		help:       h,
	}
}

func (a App) Init() tea.Cmd {
	return tickCmd()
}

// tickCmd is the fixed-rate scheduler: it re-arms itself every second, so
// the session sees exactly one Tick per elapsed wall-clock second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 2 // footer
		a.projects.setSize(a.width, contentHeight)
		a.config.setSize(a.width, contentHeight)
		return a, nil

	case tickMsg:
		a.sess.Tick()
		return a, tickCmd()

	case tea.KeyMsg:
		// Export picker overlay
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		// Config form captures all input until done or cancelled.
		if a.activeView == viewConfig {
			var cmd tea.Cmd
			a.config, cmd = a.config.update(msg)
			if !a.config.formActive {
				a.activeView = viewTimer
			}
			return a, cmd
		}

		return a.dispatchKey(msg)

	case statusMsg:
		a.status = msg.text
		if msg.isError {
			a.status = errorStyle.Render(msg.text)
		}
		return a, nil

	case configSavedMsg:
		a.activeView = viewTimer
		a.status = "config saved, applies to the next run"
		return a, nil

	case exportDoneMsg:
		a.status = "exported to " + msg.path
		a.exportPicking = false
		return a, nil

	case projectsDataMsg:
		var cmd tea.Cmd
		a.projects, cmd = a.projects.update(msg)
		return a, cmd
	}

	return a, nil
}

func (a App) dispatchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.activeView {
	case viewTimer:
		switch {
		case key.Matches(msg, keys.Toggle):
			a.sess.Toggle()
			return a, nil
		case key.Matches(msg, keys.Reset):
			a.sess.Reset()
			return a, nil
		case key.Matches(msg, keys.Skip):
			a.sess.Skip()
			return a, nil
		case key.Matches(msg, keys.Projects):
			a.sess.Pause()
			a.activeView = viewProjects
			return a, a.projects.refresh()
		case key.Matches(msg, keys.Config):
			a.sess.Pause()
			a.activeView = viewConfig
			var cmd tea.Cmd
			a.config, cmd = a.config.showForm()
			return a, cmd
		case key.Matches(msg, keys.Export):
			a.sess.Pause()
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		}

	case viewProjects:
		// Only p returns to the timer; quit still works, everything else
		// is inert.
		switch {
		case key.Matches(msg, keys.Projects):
			a.activeView = viewTimer
			return a, nil
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		}
	}
	return a, nil
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	var content string
	switch a.activeView {
	case viewTimer:
		content = renderTimer(a.sess, a.width)
	case viewProjects:
		content = a.projects.view()
	case viewConfig:
		content = a.config.view()
	}

	footer := a.renderFooter()

	contentHeight := a.height - lipgloss.Height(footer)
	if contentHeight < 1 {
		contentHeight = 1
	}

	if a.exportPicking {
		content = a.renderExportPicker()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, content, footer)
}

func (a App) renderFooter() string {
	left := footerStyle.Render(a.help.View(keys))

	status := ""
	if a.status != "" {
		status = mutedStyle.Render(a.status + " ")
	}

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(status) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, status)
}

func (a App) renderExportPicker() string {
	title := titleStyle.Render("Export Format")
	formats := []string{"CSV", "JSON"}
	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	for i, f := range formats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < 1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(a.exportCursor)
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(format int) tea.Cmd {
	active := a.sess.Project
	return func() tea.Msg {
		projects, err := a.store.ListProjects()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("export error: %v", err), isError: true}
		}

		// The working copy is ahead of the stored row until shutdown.
		for i := range projects {
			if projects[i].Name == active.Name {
				projects[i] = *active
			}
		}

		home, _ := os.UserHomeDir()
		dateStr := time.Now().Format("2006-01-02")

		var path string
		if format == 0 {
			path = filepath.Join(home, fmt.Sprintf("pomo-export-%s.csv", dateStr))
			if err := export.ToCSV(projects, path); err != nil {
				return statusMsg{text: fmt.Sprintf("csv error: %v", err), isError: true}
			}
		} else {
			path = filepath.Join(home, fmt.Sprintf("pomo-export-%s.json", dateStr))
			if err := export.ToJSON(projects, path); err != nil {
				return statusMsg{text: fmt.Sprintf("json error: %v", err), isError: true}
			}
		}

		return exportDoneMsg{path: path}
	}
}
