package commands

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/balkashynov/tally/internal/config"
	"github.com/balkashynov/tally/internal/db"
	"github.com/balkashynov/tally/internal/logging"
	"github.com/balkashynov/tally/internal/tracker"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"

	configDir string
)

var rootCmd = &cobra.Command{
	Use:   "tally",
	Short: "A CLI stopwatch and time log",
	Long: `tally runs any number of stopwatches side by side. Stopped stopwatches land
in an inbox; organizing a record names it, files it and moves it to the archive,
which feeds the stats, goals and calendar views.`,
}

// app is everything a command needs once config and storage are up.
type app struct {
	cfg     config.Config
	logger  *log.Logger
	store   *db.Store
	tracker *tracker.Tracker
}

func openApp() (*app, error) {
	dir := configDir
	if dir == "" {
		var err error
		if dir, err = config.DefaultConfigDir(); err != nil {
			return nil, fmt.Errorf("failed to locate config dir: %w", err)
		}
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return nil, err
	}

	logger := logging.New(os.Stderr, cfg.LogLevel)
	logger.Debug("config loaded", "dir", dir, "db", cfg.DBPath())

	store, err := db.Open(cfg.DBPath(), logger)
	if err != nil {
		return nil, err
	}

	tr := tracker.New(tracker.Options{
		Store:   store,
		Logger:  logger,
		Palette: cfg.FolderPalette,
	})
	return &app{cfg: cfg, logger: logger, store: store, tracker: tr}, nil
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		a.logger.Warn("failed to close database", "err", err)
	}
}

// withApp wraps a command function to open config, storage and the tracker first
func withApp(fn func(*cobra.Command, []string, *app) error) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		a, err := openApp()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer a.close()

		if err := fn(cmd, args, a); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tally %s (commit %s, built %s)\n", version, commit, date)
	},
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "",
		"Directory holding config.yaml (default: $TALLY_CONFIG_DIR or the OS config dir)")

	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(discardCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(inboxCmd)
	rootCmd.AddCommand(organizeCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(folderCmd)
	rootCmd.AddCommand(goalCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.SetHelpCommand(helpCmd)
	rootCmd.AddCommand(versionCmd)
}
