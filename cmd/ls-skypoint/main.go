// Command ls-skypoint is a terminal UI that guides a handheld pointer to
// celestial bodies and reports sunrise/sunset observance windows.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/litescript/ls-skypoint/internal/astro"
	"github.com/litescript/ls-skypoint/internal/calibration"
	"github.com/litescript/ls-skypoint/internal/config"
	"github.com/litescript/ls-skypoint/internal/ephem"
	"github.com/litescript/ls-skypoint/internal/geo"
	"github.com/litescript/ls-skypoint/internal/haptic"
	"github.com/litescript/ls-skypoint/internal/logger"
	"github.com/litescript/ls-skypoint/internal/muhurta"
	"github.com/litescript/ls-skypoint/internal/orientation"
	"github.com/litescript/ls-skypoint/internal/sensor"
	"github.com/litescript/ls-skypoint/internal/track"
	"github.com/litescript/ls-skypoint/internal/ui"
	"github.com/litescript/ls-skypoint/internal/version"
)

// CLI flags
var (
	configPath string
	logLevel   string

	latFlag  float64
	lonFlag  float64
	nameFlag string

	positionsMode bool
	muhurtaMode   bool
	dateFlag      string

	targetFlag string
)

var rootCmd = &cobra.Command{
	Use:   "ls-skypoint",
	Short: "Point-to-sky alignment guidance for the Sun, Moon, and naked-eye planets.",
	Long: `ls-skypoint fuses device orientation with a built-in ephemeris and guides
the pointer onto a chosen celestial body, with lock feedback and
sunrise/sunset observance windows (muhurta) for the observer's location.

Without flags it starts the interactive TUI. The --positions and
--muhurta flags print one-shot reports and exit.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "skypoint.yaml", "path to configuration file")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error); overrides config")

	rootCmd.Flags().Float64Var(&latFlag, "lat", 0, "observer latitude in degrees; overrides config")
	rootCmd.Flags().Float64Var(&lonFlag, "lon", 0, "observer longitude in degrees; overrides config")
	rootCmd.Flags().StringVar(&nameFlag, "place", "", "observer display name")

	rootCmd.Flags().BoolVar(&positionsMode, "positions", false, "print current body positions and exit")
	rootCmd.Flags().BoolVar(&muhurtaMode, "muhurta", false, "print today's observance windows and exit")
	rootCmd.Flags().StringVar(&dateFlag, "date", "", "date for --muhurta in YYYY-MM-DD (default today)")

	rootCmd.Flags().StringVar(&targetFlag, "target", "", "body to track on startup (e.g. moon, jupiter)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}

	log := logger.New(logger.ParseLevel(level), os.Stderr)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	observer := resolveObserver(ctx, cmd, cfg, log)
	provider := ephem.NewBuiltinProvider()

	// Headless one-shot reports
	if positionsMode {
		return writePositions(os.Stdout, provider, observer)
	}
	if muhurtaMode {
		date, err := muhurtaDate()
		if err != nil {
			return err
		}
		return writeMuhurta(os.Stdout, observer, date)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal; use --positions or --muhurta for headless output")
	}

	conv, err := orientation.ParseConvention(cfg.Tracking.Convention)
	if err != nil {
		return err
	}

	source := buildSource(cfg)
	sink := buildSink(cfg, log)
	defer func() { _ = sink.Close() }()

	calib := calibration.NewStore(calibration.NewFileStorage(cfg.CalibrationPath), log)

	session, err := track.NewSession(track.Config{
		Observer:        observer,
		RefreshInterval: cfg.Tracking.RefreshInterval,
		SmoothingFactor: cfg.Tracking.SmoothingFactor,
		Tolerances: track.Tolerances{
			AlignDeg: cfg.Tracking.AlignToleranceDeg,
			FineDeg:  cfg.Tracking.FineToleranceDeg,
		},
		Convention: conv,
	}, provider, source, calib, sink, log)
	if err != nil {
		return err
	}

	if targetFlag != "" {
		body, err := ephem.ParseBody(targetFlag)
		if err != nil {
			return err
		}
		if err := session.SelectTarget(body); err != nil {
			return err
		}
	}

	if err := session.Start(ctx); err != nil {
		return err
	}
	defer session.Stop()

	p := tea.NewProgram(ui.New(session), tea.WithAltScreen())

	// Forward lock/unlock events into the UI.
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-session.Events():
				if !ok {
					return
				}
				p.Send(ui.TrackEventMsg{Event: ev})
			}
		}
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}

// resolveObserver layers CLI flags over the config file, falling back to
// the default observer when neither sets a location.
func resolveObserver(ctx context.Context, cmd *cobra.Command, cfg config.Config, log *zap.SugaredLogger) astro.Observer {
	var loc geo.Locator

	switch {
	case cmd.Flags().Changed("lat") || cmd.Flags().Changed("lon"):
		name := nameFlag
		if name == "" {
			name = fmt.Sprintf("%.2f°, %.2f°", latFlag, lonFlag)
		}
		loc = geo.Static{Observer: astro.Observer{LatDeg: latFlag, LonDeg: lonFlag, Name: name}}
	case cfg.Observer.Set:
		name := cfg.Observer.Name
		if name == "" {
			name = fmt.Sprintf("%.2f°, %.2f°", cfg.Observer.LatDeg, cfg.Observer.LonDeg)
		}
		loc = geo.Static{Observer: astro.Observer{LatDeg: cfg.Observer.LatDeg, LonDeg: cfg.Observer.LonDeg, Name: name}}
	}

	return geo.Resolve(ctx, loc, log)
}

func buildSource(cfg config.Config) sensor.Source {
	simCfg := sensor.DefaultSimConfig()
	if cfg.Sim.Interval > 0 {
		simCfg.Interval = cfg.Sim.Interval
	}
	if cfg.Sim.JitterDeg > 0 {
		simCfg.JitterDeg = cfg.Sim.JitterDeg
	}
	if cfg.Sim.HeadingRateDeg != 0 {
		simCfg.HeadingRateDeg = cfg.Sim.HeadingRateDeg
	}
	if cfg.Sim.PitchRateDeg != 0 {
		simCfg.PitchRateDeg = cfg.Sim.PitchRateDeg
	}
	simCfg.StartHeadingDeg = cfg.Sim.StartHeadingDeg
	simCfg.StartPitchDeg = cfg.Sim.StartPitchDeg
	return sensor.NewSimSource(simCfg)
}

func buildSink(cfg config.Config, log *zap.SugaredLogger) haptic.Sink {
	if !cfg.Haptic.Enable {
		return haptic.Noop{}
	}
	sink, err := haptic.NewGPIO(cfg.Haptic.GPIOPin)
	if err != nil {
		log.Warnw("haptic disabled, GPIO unavailable", "pin", cfg.Haptic.GPIOPin, "error", err)
		return haptic.Noop{}
	}
	return sink
}

func muhurtaDate() (time.Time, error) {
	if dateFlag == "" {
		return time.Now(), nil
	}
	d, err := time.ParseInLocation("2006-01-02", dateFlag, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse --date: %w", err)
	}
	return d, nil
}

func writePositions(w io.Writer, provider ephem.Provider, obs astro.Observer) error {
	positions, err := provider.Positions(obs, time.Now())
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Positions for %s at %s\n\n", obs.Name, time.Now().Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(w, "%-10s %9s %9s  %s\n", "BODY", "AZ", "ALT", "")
	for _, p := range positions {
		note := ""
		if p.AltDeg < 0 {
			note = "below horizon"
		}
		fmt.Fprintf(w, "%-10s %8.1f° %8.1f°  %s\n", p.Body, p.AzDeg, p.AltDeg, note)
	}
	return nil
}

func writeMuhurta(w io.Writer, obs astro.Observer, date time.Time) error {
	day := muhurta.ComputeDay(date, obs)

	fmt.Fprintf(w, "Observance windows for %s on %s\n\n", obs.Name, date.Format("2006-01-02"))

	switch day.Condition {
	case astro.PolarDay:
		fmt.Fprintln(w, "Polar day: the sun does not set; no windows.")
		return nil
	case astro.PolarNight:
		fmt.Fprintln(w, "Polar night: the sun does not rise; no windows.")
		return nil
	}

	fmt.Fprintf(w, "Sunrise    %s\n", day.Sunrise.Format("15:04"))
	fmt.Fprintf(w, "Solar noon %s\n", day.SolarNoon.Format("15:04"))
	fmt.Fprintf(w, "Sunset     %s\n\n", day.Sunset.Format("15:04"))

	for _, win := range day.Windows() {
		fmt.Fprintf(w, "%-16s %s – %s\n", win.Name, win.Start.Format("15:04"), win.End.Format("15:04"))
	}
	return nil
}
