package cli

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/bmi/internal/bmi"
	"github.com/Makepad-fr/bmi/internal/config"
	"github.com/Makepad-fr/bmi/internal/locale"
	"github.com/Makepad-fr/bmi/internal/logger"
	"github.com/Makepad-fr/bmi/internal/model"
	"github.com/Makepad-fr/bmi/internal/session"
	"github.com/Makepad-fr/bmi/internal/store/jsonstore"
	"github.com/Makepad-fr/bmi/internal/tui"
	"github.com/Makepad-fr/bmi/internal/ui"
)

// Exit codes: 0 ok, 1 error, 2 usage or rejected input.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// exitErr carries an exit code through cobra's RunE. The message has
// already been printed when quiet is set.
type exitErr struct {
	code  int
	err   error
	quiet bool
}

func (e *exitErr) Error() string { return e.err.Error() }
func (e *exitErr) Unwrap() error { return e.err }

// flags shared by every subcommand.
type rootFlags struct {
	configPath string
	units      string
	locale     string
	theme      string
}

// Execute runs the command line and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return exitOK
	}
	var ee *exitErr
	if errors.As(err, &ee) {
		if !ee.quiet {
			ui.Fail(stderr, ee.Error())
		}
		return ee.code
	}
	ui.Fail(stderr, err.Error())
	// cobra reports bad flags and arg counts as plain errors
	return exitUsage
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var f rootFlags

	root := &cobra.Command{
		Use:   "bmi",
		Short: "Body Mass Index calculator",
		Long: `bmi computes Body Mass Index from height and weight in metric or
imperial units. Without a subcommand it opens an interactive screen that
keeps a history of the calculations made during the session.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScreen(cmd, f)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "path to config.yml")
	pf.StringVar(&f.units, "units", "", "starting unit system: metric or imperial")
	pf.StringVar(&f.locale, "locale", "", "message language: en or sq")
	pf.StringVar(&f.theme, "theme", "", "output theme: classic, neon or mono")

	root.AddCommand(newCalcCmd(&f), newClassifyCmd(), newLegendCmd())
	return root
}

// resolve loads the config file and applies flag overrides.
func resolve(cmd *cobra.Command, f rootFlags) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return config.Config{}, &exitErr{code: exitError, err: err}
	}
	flags := cmd.Flags()
	if flags.Changed("units") {
		u, err := model.ParseUnitMode(f.units)
		if err != nil {
			return config.Config{}, &exitErr{code: exitUsage, err: err}
		}
		cfg.Units = u
	}
	if flags.Changed("locale") {
		cfg.Locale = strings.ToLower(f.locale)
	}
	if flags.Changed("theme") {
		cfg.Theme = strings.ToLower(f.theme)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, &exitErr{code: exitUsage, err: err}
	}
	ui.SetTheme(cfg.Theme)
	return cfg, nil
}

func runScreen(cmd *cobra.Command, f rootFlags) error {
	cfg, err := resolve(cmd, f)
	if err != nil {
		return err
	}
	log, closeLog, err := logger.Open(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return &exitErr{code: exitError, err: err}
	}
	defer closeLog()
	defer log.Sync()

	ctrl := session.New(session.WithLogger(log), session.WithUnitMode(cfg.Units))
	err = tui.Run(ctrl, tui.Options{
		Messages:      locale.MustLookup(cfg.Locale),
		FlashDuration: cfg.FlashDuration,
		ExportPath:    cfg.ExportPath,
	})
	if err != nil {
		return &exitErr{code: exitError, err: fmt.Errorf("tui: %w", err)}
	}
	return nil
}

func newCalcCmd(f *rootFlags) *cobra.Command {
	var (
		imperial   bool
		exportPath string
	)
	cmd := &cobra.Command{
		Use:   "calc HEIGHT WEIGHT",
		Short: "Compute BMI once and print the result",
		Example: `  bmi calc 180 80
  bmi calc --imperial 70 150
  bmi calc --export result.json 180 80`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolve(cmd, *f)
			if err != nil {
				return err
			}
			log, closeLog, err := logger.Open(cfg.LogLevel, cfg.LogFile)
			if err != nil {
				return &exitErr{code: exitError, err: err}
			}
			defer closeLog()

			mode := cfg.Units
			if imperial {
				mode = model.Imperial
			}
			ctrl := session.New(session.WithLogger(log), session.WithUnitMode(mode))
			ctrl.SetHeight(args[0])
			ctrl.SetWeight(args[1])
			if err := ctrl.Calculate(); err != nil {
				msg := locale.MustLookup(cfg.Locale).Message(err)
				ui.Fail(cmd.ErrOrStderr(), msg)
				return &exitErr{code: exitUsage, err: err, quiet: true}
			}
			res, _ := ctrl.Result()
			printResult(cmd.OutOrStdout(), ctrl, res)

			if exportPath == "" {
				return nil
			}
			p, err := jsonstore.Export(exportPath, ctrl.Snapshot())
			if err != nil {
				log.Errorw("export failed", "path", exportPath, "err", err)
				return &exitErr{code: exitError, err: err}
			}
			ui.OK(cmd.OutOrStdout(), "exported to "+p)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&imperial, "imperial", "i", false, "read height in inches and weight in pounds")
	cmd.Flags().StringVarP(&exportPath, "export", "e", "", "also write the result as a JSON snapshot to this path")
	return cmd
}

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify BMI",
		Short: "Print the category of a BMI value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
				return &exitErr{code: exitUsage, err: fmt.Errorf("classify: not a positive number: %s", args[0])}
			}
			fmt.Fprintln(cmd.OutOrStdout(), bmi.Classify(v).String())
			return nil
		},
	}
}

func newLegendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "legend",
		Short: "Print the BMI reference ranges",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, line := range bmi.Legend() {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
		},
	}
}

// -------------- rendering helpers --------------

func printResult(w io.Writer, ctrl *session.Controller, res bmi.Result) {
	mode := ctrl.Mode()
	lines := []string{
		ui.TitleStyle().Render("BMI") + "  " + ui.AccentStyle().Render(res.Text) + "  " + ui.Badge(res.Category()),
		ui.Gauge(res.Value, 28),
		"",
		ui.MutedStyle().Render(fmt.Sprintf("Height %s %s  Weight %s %s", ctrl.Height(), mode.HeightUnit(), ctrl.Weight(), mode.WeightUnit())),
		"",
		ui.TitleStyle().Render("BMI Reference:"),
	}
	lines = append(lines, bmi.Legend()...)
	ui.Panel(w, lines)
}
