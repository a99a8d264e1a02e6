package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/zhubert/gantt/internal/app"
	"github.com/zhubert/gantt/internal/config"
	"github.com/zhubert/gantt/internal/layout"
	"github.com/zhubert/gantt/internal/logger"
	"github.com/zhubert/gantt/internal/schedule"
	"github.com/zhubert/gantt/internal/ui"
)

// noDataMessage is printed instead of opening the chart when no row survives
// loading.
const noDataMessage = "No valid data to create chart."

var (
	debugMode             bool
	quietMode             bool
	textWidth             int
	configPath            string
	version, commit, date string
)

// runProgram runs the interactive chart until the user quits. Tests replace
// it to avoid taking over the terminal.
var runProgram = func(m tea.Model) error {
	_, err := tea.NewProgram(m).Run()
	return err
}

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "gantt <file>",
	Short: "Interactive Gantt chart for a CSV schedule",
	Long: `Gantt reads a CSV of resource,project,start,end rows (after a header line)
and draws each row as a horizontal bar colored by project. Click a bar to
expand the details of every row in its project; click it again to collapse.

Rows whose start or end date cannot be parsed are skipped.`,
	Args:          cobra.ExactArgs(1),
	RunE:          runChart,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.Flags().IntVar(&textWidth, "text_width", layout.DefaultTextWidth, "Wrap width for resource labels")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML config file (default ~/.config/gantt/config.yaml)")
	rootCmd.Flags().SetNormalizeFunc(underscoreFlags)
}

// underscoreFlags lets --text-width stand in for --text_width.
func underscoreFlags(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "-", "_"))
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("gantt %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("gantt %s\n", version)
}

func runChart(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if cmd.Flags().Changed("text_width") {
		cfg.TextWidth = &textWidth
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid --text_width: %w", err)
		}
	}
	width := cfg.GetTextWidth()

	path := args[0]
	entries, stats := schedule.LoadWithStats(path, schedule.MergeLayouts(cfg.DateLayouts))
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), noDataMessage)
		return nil
	}

	defer logger.Close()

	l := layout.Build(entries, width)
	m := app.New(l, app.Options{
		FileName: filepath.Base(path),
		Dropped:  stats.Dropped,
		Theme:    cfg.GetTheme(),
		Chart: ui.ChartOptions{
			RowHeight:      cfg.GetRowHeight(),
			XLabelRotation: cfg.GetXLabelRotation(),
			BarAlpha:       cfg.GetBarAlpha(),
		},
	})

	if err := runProgram(m); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
