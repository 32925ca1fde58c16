package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/philtim/zoneclock/clock"
	"github.com/philtim/zoneclock/grouping"
	"github.com/philtim/zoneclock/route"
	"github.com/philtim/zoneclock/schedule"
	"github.com/philtim/zoneclock/zones"
	"go.uber.org/zap"
)

// regroupSpec fires on every minute boundary
const regroupSpec = "* * * * *"

// overview shows the featured clocks and the grouped zone cards
type overview struct {
	ctx     *Context
	keys    keyMap
	now     time.Time
	groups  []grouping.Group
	cursor  int
	tick    *schedule.Task
	regroup *schedule.Task
}

func newOverview(ctx *Context, keys keyMap) (*overview, error) {
	regroup, err := schedule.Cron(regroupSpec)
	if err != nil {
		return nil, err
	}
	return &overview{
		ctx:     ctx,
		keys:    keys,
		tick:    schedule.Every(time.Second),
		regroup: regroup,
	}, nil
}

func (o *overview) Init() tea.Cmd {
	o.now = clock.Now()
	o.refreshGroups()
	return tea.Batch(o.tick.Start(), o.regroup.Start())
}

func (o *overview) Teardown() {
	o.tick.Stop()
	o.regroup.Stop()
}

func (o *overview) Update(msg tea.Msg) tea.Cmd {
	if fired, cmd := o.tick.Handle(msg); fired {
		o.now = clock.Now()
		return cmd
	}
	if fired, cmd := o.regroup.Handle(msg); fired {
		o.now = clock.Now()
		o.refreshGroups()
		return cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, o.keys.Left), key.Matches(keyMsg, o.keys.Up):
		if o.cursor > 0 {
			o.cursor--
		}
	case key.Matches(keyMsg, o.keys.Right), key.Matches(keyMsg, o.keys.Down):
		if o.cursor < len(o.groups)-1 {
			o.cursor++
		}
	case key.Matches(keyMsg, o.keys.Open):
		return o.openSelected()
	case key.Matches(keyMsg, o.keys.First):
		return navigate(route.Route{View: route.Brasilia})
	case key.Matches(keyMsg, o.keys.Second):
		return navigate(route.Route{View: route.StLouis})
	}
	return nil
}

// refreshGroups recomputes the grouping from scratch
func (o *overview) refreshGroups() {
	groups, err := grouping.Compute(o.ctx.Clocks, o.now)
	if err != nil {
		o.ctx.Logger.Error("failed to group zones", zap.Error(err))
		return
	}
	o.groups = groups
	if o.cursor >= len(o.groups) {
		o.cursor = len(o.groups) - 1
	}
	if o.cursor < 0 {
		o.cursor = 0
	}
	o.ctx.Logger.Debug("zones regrouped", zap.Int("groups", len(groups)))
}

// openSelected hands the selected group off to the dynamic view
func (o *overview) openSelected() tea.Cmd {
	if len(o.groups) == 0 {
		return nil
	}
	g := o.groups[o.cursor]
	id, err := o.ctx.Handoff.Put(g.Payload())
	if err != nil {
		// The dynamic view derives the group from the route instead.
		o.ctx.Logger.Warn("failed to hand off group", zap.Error(err))
		id = ""
	}
	return navigate(route.ForZone(g.ZoneID(), id))
}

func (o *overview) Bindings() []key.Binding {
	return []key.Binding{o.keys.Left, o.keys.Open, o.keys.First, o.keys.Second}
}

func (o *overview) Render(width, height int) string {
	l := o.ctx.Localizer

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorAccent).
		Align(lipgloss.Center).
		Width(width).
		Padding(1, 0)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorTitle).
		Align(lipgloss.Center).
		Width(width).
		PaddingTop(1)

	hintStyle := lipgloss.NewStyle().
		Foreground(colorMuted).
		Align(lipgloss.Center).
		Width(width).
		Padding(1, 0)

	var featured []string
	for _, city := range zones.Featured() {
		clk, ok := o.ctx.Featured[city.ID]
		if !ok {
			continue
		}
		featured = append(featured, o.renderFeaturedCard(city, clk, 30))
	}

	var cards []string
	for i, g := range o.groups {
		cards = append(cards, o.renderGroupCard(g, i == o.cursor, 27))
	}

	sections := []string{
		titleStyle.Render(l.T("title")),
		lipgloss.PlaceHorizontal(width, lipgloss.Center, lipgloss.JoinHorizontal(lipgloss.Top, featured...)),
		sectionStyle.Render(l.T("south_american_time_zones")),
		renderGrid(cards, width, 27),
		hintStyle.Render(l.T("overview_hint")),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (o *overview) renderFeaturedCard(city zones.City, clk *clock.Clock, width int) string {
	reading := clk.Reading(o.now, o.ctx.Localizer)

	nameStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorTitle).
		Align(lipgloss.Center).
		Width(width).
		PaddingTop(1)

	timeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorAccent).
		Align(lipgloss.Center).
		Width(width).
		Padding(1, 0)

	dateStyle := lipgloss.NewStyle().
		Foreground(colorMuted).
		Align(lipgloss.Center).
		Width(width).
		PaddingBottom(1)

	content := lipgloss.JoinVertical(lipgloss.Left,
		nameStyle.Render(o.ctx.Localizer.City(city.ID, strings.ToUpper(city.Name))),
		timeStyle.Render(formatParts(reading.Parts)),
		dateStyle.Render(reading.Date),
	)
	return cardStyle(false).Render(content)
}

func (o *overview) renderGroupCard(g grouping.Group, selected bool, width int) string {
	l := o.ctx.Localizer
	lead := g.Clocks[0]

	timeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorAccent).
		Align(lipgloss.Center).
		Width(width).
		Padding(1, 0, 0, 0)

	offsetStyle := lipgloss.NewStyle().
		Foreground(colorMuted).
		Align(lipgloss.Center).
		Width(width).
		PaddingBottom(1)

	countryStyle := lipgloss.NewStyle().
		Foreground(colorHours).
		Width(width)

	lines := []string{
		timeStyle.Render(formatParts(lead.Parts(o.now))),
		offsetStyle.Render(fmt.Sprintf("%s · %s", g.Key, lead.FormatUTCOffset(o.now))),
	}
	for _, clk := range g.Clocks {
		e := clk.Entry
		lines = append(lines, countryStyle.Render(fmt.Sprintf("%s  %s", e.Code, l.Country(e.Code, e.Country))))
	}
	lines = append(lines, "")

	return cardStyle(selected).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func formatParts(p clock.Parts) string {
	return fmt.Sprintf("%s:%s:%s", p.Hours, p.Minutes, p.Seconds)
}

func cardStyle(selected bool) lipgloss.Style {
	border := colorBorder
	if selected {
		border = colorAccent
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 2).
		Margin(1, 1, 0, 1) // Top, Right, Bottom, Left margins
}

// renderGrid arranges cards in rows of 4, 2 or 1 depending on width
func renderGrid(cards []string, width, contentWidth int) string {
	if len(cards) == 0 {
		return ""
	}

	cols := calculateColumns(width, contentWidth)
	var rows []string
	for start := 0; start < len(cards); start += cols {
		end := start + cols
		if end > len(cards) {
			end = len(cards)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[start:end]...))
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(rows, "\n"))
}

// calculateColumns determines the number of columns that fit width
func calculateColumns(width, contentWidth int) int {
	// Each card adds border (2), padding left/right (4) and margins (2)
	minCardWidth := contentWidth + 8

	if width >= minCardWidth*4 {
		return 4
	}
	if width >= minCardWidth*2 {
		return 2
	}
	return 1
}
