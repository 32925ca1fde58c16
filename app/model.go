package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/philtim/zoneclock/handoff"
	"github.com/philtim/zoneclock/route"
	"github.com/philtim/zoneclock/schedule"
	"github.com/philtim/zoneclock/theme"
	"github.com/philtim/zoneclock/zones"
	"go.uber.org/zap"
)

// view is a screen owning its scheduled tasks. Teardown must release them.
type view interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	Render(width, height int) string
	Bindings() []key.Binding
	Teardown()
}

// navigateMsg asks the model to switch views
type navigateMsg struct {
	route route.Route
}

func navigate(r route.Route) tea.Cmd {
	return func() tea.Msg {
		return navigateMsg{route: r}
	}
}

// systemThemeMsg carries a fresh OS appearance reading
type systemThemeMsg struct {
	theme theme.Theme
}

// Model is the bubbletea model hosting the current view
type Model struct {
	ctx   *Context
	keys  keyMap
	help  help.Model
	route route.Route
	view  view
	probe *schedule.Task

	viewport viewport.Model
	ready    bool
	width    int
	height   int
	status   error
	quitting bool
}

// New creates the model showing r first
func New(ctx *Context, r route.Route) (Model, error) {
	m := Model{
		ctx:   ctx,
		keys:  newKeyMap(ctx.Localizer),
		help:  help.New(),
		probe: schedule.Every(ctx.Config.SystemThemePoll),
	}
	v, err := m.buildView(r)
	if err != nil {
		return Model{}, err
	}
	m.route = r
	m.view = v
	return m, nil
}

// Route returns the route of the current view
func (m Model) Route() route.Route {
	return m.route
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.view.Init(), m.probe.Start())
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd, handled := m.handleGlobalKeys(msg); handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		if !m.ready {
			// Reserve space for command bar (1 newline + 1 bar line)
			m.viewport = viewport.New(msg.Width, msg.Height-2)
			m.viewport.KeyMap = viewport.KeyMap{
				PageDown: key.NewBinding(key.WithKeys("pgdown")),
				PageUp:   key.NewBinding(key.WithKeys("pgup")),
			}
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 2
		}

	case navigateMsg:
		return m, m.navigate(msg.route)

	case systemThemeMsg:
		changed, err := m.ctx.Theme.SystemChanged(msg.theme)
		if err != nil {
			m.ctx.Logger.Warn("failed to follow system theme", zap.Error(err))
			m.status = err
		} else if changed {
			m.ctx.Logger.Info("following system theme", zap.String("theme", string(msg.theme)))
		}
		return m, nil
	}

	if fired, cmd := m.probe.Handle(msg); fired {
		return m, tea.Batch(cmd, probeCmd(m.ctx.Probe))
	}

	if cmd := m.view.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleGlobalKeys handles keys available in every view
func (m *Model) handleGlobalKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.view.Teardown()
		m.probe.Stop()
		return tea.Quit, true

	case key.Matches(msg, m.keys.Theme):
		m.status = m.ctx.Theme.Toggle()
		return nil, true

	case key.Matches(msg, m.keys.Restore):
		if m.ctx.Theme.CanRestore() {
			m.status = m.ctx.Theme.RestoreSystem()
		}
		return nil, true

	case key.Matches(msg, m.keys.Back):
		if m.route.View != route.Overview {
			return m.navigate(route.Home()), true
		}
	}
	return nil, false
}

// navigate tears the current view down and starts the one for r. An
// unusable route keeps the current view and reports in the status bar.
func (m *Model) navigate(r route.Route) tea.Cmd {
	v, err := m.buildView(r)
	if err != nil {
		m.ctx.Logger.Warn("navigation refused", zap.String("route", r.String()), zap.Error(err))
		m.status = err
		return nil
	}
	m.view.Teardown()
	m.view = v
	m.route = r
	m.status = nil
	m.viewport.GotoTop()
	m.ctx.Logger.Debug("navigated", zap.String("route", r.String()))
	return v.Init()
}

func (m *Model) buildView(r route.Route) (view, error) {
	switch r.View {
	case route.Overview:
		return newOverview(m.ctx, m.keys)
	case route.Brasilia:
		city, _ := zones.FeaturedCity(zones.Brasilia)
		return newFeatured(m.ctx, m.keys, city)
	case route.StLouis:
		city, _ := zones.FeaturedCity(zones.StLouis)
		return newFeatured(m.ctx, m.keys, city)
	case route.Zone:
		p, ok := m.ctx.Handoff.Take(r.Handoff)
		if ok && zones.Segment(p.ZoneID) != r.Segment {
			ok = false
		}
		if !ok && r.Handoff != "" {
			m.ctx.Logger.Debug("hand-off payload unavailable, deriving from route",
				zap.String("segment", r.Segment))
		}
		return newZoneView(m.ctx, m.keys, handoff.Resolve(r.Segment, p, ok))
	}
	return nil, fmt.Errorf("unknown view %d", r.View)
}

func probeCmd(p theme.Probe) tea.Cmd {
	return func() tea.Msg {
		return systemThemeMsg{theme: p.Detect(context.Background())}
	}
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.ready {
		return "Initializing..."
	}

	m.viewport.SetContent(m.view.Render(m.width, m.viewport.Height))
	return fmt.Sprintf("%s\n%s", m.viewport.View(), m.renderCommandBar())
}

// bindings returns the key help for the current view and theme state
func (m Model) bindings() []key.Binding {
	b := m.view.Bindings()
	b = append(b, m.keys.Theme)
	if m.ctx.Theme.CanRestore() {
		b = append(b, m.keys.Restore)
	}
	return append(b, m.keys.Quit)
}

// renderCommandBar renders the command bar at the bottom
func (m Model) renderCommandBar() string {
	leftStyle := lipgloss.NewStyle().
		Foreground(colorBarText).
		Background(colorBar).
		Padding(0, 1)

	rightStyle := lipgloss.NewStyle().
		Foreground(colorBarText).
		Background(colorBar).
		Padding(0, 1)

	leftContent := leftStyle.Render(m.help.ShortHelpView(m.bindings()))

	var status string
	if m.status != nil {
		status = lipgloss.NewStyle().Foreground(colorError).Background(colorBar).Render(m.status.Error())
	} else {
		l := m.ctx.Localizer
		status = fmt.Sprintf("%s · %s", l.T("theme_"+string(m.ctx.Theme.Current())), m.route)
	}
	rightContent := rightStyle.Render(status)

	// Calculate spacing to push right content to the right
	spacingWidth := m.width - lipgloss.Width(leftContent) - lipgloss.Width(rightContent)
	if spacingWidth < 0 {
		spacingWidth = 0
	}
	spacing := strings.Repeat(" ", spacingWidth)

	barStyle := lipgloss.NewStyle().Background(colorBar)
	return barStyle.Render(leftContent + spacing + rightContent)
}
