// Package app composes clocks, groups, theme and language into the
// terminal views.
package app

import (
	"context"

	"github.com/charmbracelet/lipgloss"
	"github.com/philtim/zoneclock/clock"
	"github.com/philtim/zoneclock/config"
	"github.com/philtim/zoneclock/handoff"
	"github.com/philtim/zoneclock/locale"
	"github.com/philtim/zoneclock/theme"
	"github.com/philtim/zoneclock/zones"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Context is the state shared by every view. It is built once at startup
// and passed explicitly.
type Context struct {
	Config    *config.Config
	Clocks    []*clock.Clock
	Featured  map[string]*clock.Clock
	Localizer *locale.Localizer
	Theme     *theme.State
	Probe     theme.Probe
	Handoff   *handoff.Cache
	Logger    *zap.Logger
}

// TableClocks validates the overview table and returns its clocks in
// table order
func TableClocks() ([]*clock.Clock, error) {
	table := zones.SouthAmerica()
	if err := zones.Validate(table); err != nil {
		return nil, errors.Wrap(err, "validate zone table")
	}
	return clock.NewAll(table)
}

// Options are the collaborators Bootstrap cannot build from config alone
type Options struct {
	Config   *config.Config
	Logger   *zap.Logger
	Language locale.Language
	Probe    theme.Probe
	Store    theme.Store
}

// Bootstrap validates the zone tables, detects the OS theme and loads the
// translations, then reconciles the theme preference.
func Bootstrap(ctx context.Context, opts Options) (*Context, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var (
		clocks   []*clock.Clock
		featured = make(map[string]*clock.Clock)
		system   theme.Theme
		lz       *locale.Localizer
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		all, err := TableClocks()
		if err != nil {
			return err
		}
		clocks = all
		for _, city := range zones.Featured() {
			clk, err := clock.New(zones.Entry{Country: city.Name, ZoneID: city.ZoneID})
			if err != nil {
				return errors.Wrapf(err, "featured clock %s", city.ID)
			}
			featured[city.ID] = clk
		}
		return nil
	})
	g.Go(func() error {
		system = opts.Probe.Detect(gctx)
		return nil
	})
	g.Go(func() error {
		bundle, err := locale.NewBundle()
		if err != nil {
			return err
		}
		lz = locale.NewLocalizer(bundle, opts.Language)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	state, err := theme.New(opts.Store, system, func(t theme.Theme) {
		// Adaptive colors follow this flag across every style.
		lipgloss.SetHasDarkBackground(t.IsDark())
		logger.Debug("theme applied", zap.String("theme", string(t)))
	})
	if err != nil {
		return nil, err
	}

	logger.Info("started",
		zap.String("language", string(opts.Language)),
		zap.String("theme", string(state.Current())),
		zap.String("system_theme", string(system)),
		zap.Bool("explicit_theme", state.Explicit()),
		zap.Int("zones", len(clocks)),
	)

	return &Context{
		Config:    opts.Config,
		Clocks:    clocks,
		Featured:  featured,
		Localizer: lz,
		Theme:     state,
		Probe:     opts.Probe,
		Handoff:   handoff.New(opts.Config.HandoffTTL),
		Logger:    logger,
	}, nil
}
