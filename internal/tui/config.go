package tui

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/pomo/internal/store"
)

// configModel edits the persisted config row. Changes apply to the next
// run; the live session keeps the durations it was built with.
type configModel struct {
	store  *store.Store
	width  int
	height int

	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	focus     *string
	breakTime *string
	longBreak *string
	cycles    *string
}

func newConfigModel(s *store.Store) configModel {
	f, b, l, c := "", "", "", ""
	return configModel{
		store:     s,
		focus:     &f,
		breakTime: &b,
		longBreak: &l,
		cycles:    &c,
	}
}

func (c *configModel) setSize(w, h int) {
	c.width = w
	c.height = h
}

func (c configModel) showForm() (configModel, tea.Cmd) {
	cfg, err := c.store.Config()
	if err != nil {
		cfg = store.DefaultConfig()
	}
	*c.focus = strconv.Itoa(cfg.Focus)
	*c.breakTime = strconv.Itoa(cfg.Break)
	*c.longBreak = strconv.Itoa(cfg.LongBreak)
	*c.cycles = strconv.Itoa(cfg.Cycles)

	c.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Focus (min)").Value(c.focus).Validate(validatePositive),
			huh.NewInput().Title("Break (min)").Value(c.breakTime).Validate(validatePositive),
			huh.NewInput().Title("Long break (min)").Value(c.longBreak).Validate(validatePositive),
			huh.NewInput().Title("Cycles before long break").Value(c.cycles).Validate(validatePositive),
		).Title("Config"),
	).WithShowHelp(true).WithShowErrors(true)

	c.formActive = true
	return c, c.form.Init()
}

func (c configModel) update(msg tea.Msg) (configModel, tea.Cmd) {
	if !c.formActive || c.form == nil {
		return c, nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			c.formActive = false
			c.form = nil
			return c, nil
		}
	}

	form, cmd := c.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		c.form = f
	}

	if c.form.State == huh.StateCompleted {
		c.formActive = false
		if err := c.saveConfig(); err != nil {
			return c, func() tea.Msg {
				return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
			}
		}
		return c, func() tea.Msg { return configSavedMsg{} }
	}

	return c, cmd
}

func (c configModel) saveConfig() error {
	cfg := store.Config{
		Focus:     atoiOr(*c.focus, 25),
		Break:     atoiOr(*c.breakTime, 5),
		LongBreak: atoiOr(*c.longBreak, 15),
		Cycles:    atoiOr(*c.cycles, 4),
	}
	return c.store.SaveConfig(cfg)
}

func (c configModel) view() string {
	title := titleStyle.Render("Config")

	var body string
	if c.formActive && c.form != nil {
		body = c.form.View()
	} else {
		body = mutedStyle.Render("saved")
	}

	w := c.width - 4
	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, title, "", body),
	)
}

func validatePositive(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("not a number")
	}
	if n <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}

func atoiOr(s string, fallback int) int {
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return fallback
}
