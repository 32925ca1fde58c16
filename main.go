package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/philtim/zoneclock/app"
	"github.com/philtim/zoneclock/clock"
	"github.com/philtim/zoneclock/config"
	"github.com/philtim/zoneclock/grouping"
	"github.com/philtim/zoneclock/locale"
	"github.com/philtim/zoneclock/logging"
	"github.com/philtim/zoneclock/route"
	"github.com/philtim/zoneclock/store"
	"github.com/philtim/zoneclock/theme"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type flags struct {
	configPath string
	view       string
	lang       string
	debug      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags

	root := &cobra.Command{
		Use:           "zoneclock",
		Short:         "Live clocks for South American time zones",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUI(cmd.Context(), f)
		},
	}
	root.PersistentFlags().StringVar(&f.configPath, "config", "", "config file (default ~/.config/zoneclock.yaml)")
	root.PersistentFlags().StringVar(&f.lang, "lang", "", "locale to use instead of the environment's (e.g. pt_BR.UTF-8)")
	root.PersistentFlags().BoolVar(&f.debug, "debug", false, "write debug logs")
	root.Flags().StringVar(&f.view, "view", "", "view to open: /, /brasilia, /stlouis or /zone/<zone>")

	root.AddCommand(newGroupsCmd(&f))
	return root
}

func newGroupsCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "Print the zones grouped by their current local time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(f.configPath)
			if err != nil {
				return err
			}
			bundle, err := locale.NewBundle()
			if err != nil {
				return err
			}
			lz := locale.NewLocalizer(bundle, detectLanguage(cfg, f))
			clocks, err := app.TableClocks()
			if err != nil {
				return err
			}

			now := clock.Now()
			groups, err := grouping.Compute(clocks, now)
			if err != nil {
				return err
			}

			timeColor := color.New(color.FgMagenta, color.Bold)
			offsetColor := color.New(color.FgHiBlack)
			codeColor := color.New(color.FgCyan)
			out := cmd.OutOrStdout()
			for _, g := range groups {
				timeColor.Fprint(out, g.Key)
				offsetColor.Fprintf(out, "  %s\n", g.Clocks[0].FormatUTCOffset(now))
				for _, clk := range g.Clocks {
					e := clk.Entry
					codeColor.Fprintf(out, "  %s", e.Code)
					fmt.Fprintf(out, "  %s\n", lz.Country(e.Code, e.Country))
				}
			}
			return nil
		},
	}
}

// detectLanguage applies the --lang flag, then the config, then the
// environment's reported locale
func detectLanguage(cfg *config.Config, f *flags) locale.Language {
	switch {
	case f.lang != "":
		return locale.Detect(f.lang)
	case cfg.Language != "":
		return locale.Detect(cfg.Language)
	}
	return locale.Detect(locale.Reported())
}

func runUI(ctx context.Context, f flags) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logPath := cfg.LogFile
	if logPath == "" && f.debug {
		if logPath, err = config.DefaultLogFile(); err != nil {
			return err
		}
	}
	logger, err := logging.New(logPath, f.debug)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	start := cfg.StartView
	if f.view != "" {
		start = f.view
	}
	r, err := route.Parse(start)
	if err != nil {
		return err
	}

	st, err := store.NewFile(cfg.StateDir)
	if err != nil {
		return err
	}

	appCtx, err := app.Bootstrap(ctx, app.Options{
		Config:   cfg,
		Logger:   logger,
		Language: detectLanguage(cfg, &f),
		Probe:    theme.NewOSProbe(),
		Store:    st,
	})
	if err != nil {
		logger.Error("startup failed", zap.Error(err))
		return err
	}

	m, err := app.New(appCtx, r)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
