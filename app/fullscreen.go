package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/philtim/zoneclock/clock"
	"github.com/philtim/zoneclock/handoff"
	"github.com/philtim/zoneclock/schedule"
	"github.com/philtim/zoneclock/zones"
)

// fullscreen shows one large clock. Fixed views carry a city label, the
// dynamic view lists the countries sharing the zone.
type fullscreen struct {
	ctx       *Context
	keys      keyMap
	clk       *clock.Clock
	label     string
	countries []zones.Entry
	now       time.Time
	tick      *schedule.Task
}

func newFeatured(ctx *Context, keys keyMap, city zones.City) (*fullscreen, error) {
	clk, ok := ctx.Featured[city.ID]
	if !ok {
		return nil, fmt.Errorf("no clock for %s", city.ID)
	}
	return &fullscreen{
		ctx:   ctx,
		keys:  keys,
		clk:   clk,
		label: ctx.Localizer.City(city.ID, strings.ToUpper(city.Name)),
		tick:  schedule.Every(time.Second),
	}, nil
}

func newZoneView(ctx *Context, keys keyMap, p handoff.Payload) (*fullscreen, error) {
	if p.ZoneID == "" || len(p.Countries) == 0 {
		return nil, fmt.Errorf("empty zone group")
	}
	lead := p.Countries[0]
	lead.ZoneID = p.ZoneID
	clk, err := clock.New(lead)
	if err != nil {
		return nil, err
	}
	return &fullscreen{
		ctx:       ctx,
		keys:      keys,
		clk:       clk,
		countries: p.Countries,
		tick:      schedule.Every(time.Second),
	}, nil
}

func (f *fullscreen) Init() tea.Cmd {
	f.now = clock.Now()
	return f.tick.Start()
}

func (f *fullscreen) Teardown() {
	f.tick.Stop()
}

func (f *fullscreen) Update(msg tea.Msg) tea.Cmd {
	if fired, cmd := f.tick.Handle(msg); fired {
		f.now = clock.Now()
		return cmd
	}
	return nil
}

func (f *fullscreen) Bindings() []key.Binding {
	return []key.Binding{f.keys.Back}
}

func (f *fullscreen) Render(width, height int) string {
	reading := f.clk.Reading(f.now, f.ctx.Localizer)

	part := func(s string, c lipgloss.AdaptiveColor) string {
		return lipgloss.NewStyle().Bold(true).Foreground(c).Render(bigText(s))
	}
	sep := lipgloss.NewStyle().Foreground(colorSeparator).Padding(0, 1).Render(bigText(":"))
	digits := lipgloss.JoinHorizontal(lipgloss.Top,
		part(reading.Hours, colorHours),
		sep,
		part(reading.Minutes, colorMinutes),
		sep,
		part(reading.Seconds, colorSeconds),
	)

	dateStyle := lipgloss.NewStyle().
		Foreground(colorMuted).
		PaddingTop(1)

	blocks := []string{}
	if f.label != "" {
		blocks = append(blocks, lipgloss.NewStyle().
			Bold(true).
			Foreground(colorTitle).
			PaddingBottom(1).
			Render(f.label))
	}
	blocks = append(blocks, digits, dateStyle.Render(reading.Date))
	if len(f.countries) > 0 {
		blocks = append(blocks, f.renderCountries(width))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, blocks...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (f *fullscreen) renderCountries(width int) string {
	l := f.ctx.Localizer

	headingStyle := lipgloss.NewStyle().
		Foreground(colorMinutes).
		PaddingTop(2).
		PaddingBottom(1)

	chipStyle := lipgloss.NewStyle().
		Foreground(colorHours).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 1).
		MarginRight(1)

	var chips []string
	for _, e := range f.countries {
		chips = append(chips, chipStyle.Render(fmt.Sprintf("%s - %s", e.Code, l.Country(e.Code, e.Country))))
	}

	// Wrap chips so a row never exceeds the screen width
	var rows []string
	var row []string
	rowWidth := 0
	for _, c := range chips {
		w := lipgloss.Width(c)
		if len(row) > 0 && rowWidth+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		row = append(row, c)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		headingStyle.Render("◍ "+l.T("countries_in_zone")),
		lipgloss.JoinVertical(lipgloss.Center, rows...),
	)
}
