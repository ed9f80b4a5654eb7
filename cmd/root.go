package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gmacs/internal/config"
	"gmacs/internal/editor"
	"gmacs/internal/infrastructure/sqlite"
	"gmacs/internal/log"
	"gmacs/internal/ui"
	"gmacs/internal/watcher"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version  = "dev"
	cfgFile  string
	debugLog string
	cfg      config.Config
)

var rootCmd = &cobra.Command{
	Use:     "gmacs [file...]",
	Short:   "A modal terminal text editor",
	Long:    `A terminal text editor in the Emacs tradition: buffers, point and mark, a kill ring, and multi-stroke keychords dispatched through a keymap.`,
	Version: version,
	RunE:    runEditor,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/gmacs/config.yaml)")
	rootCmd.Flags().StringVar(&debugLog, "debug", "",
		"write a debug log to the given file")
	rootCmd.Flags().Bool("no-save-place", false,
		"do not restore point positions from previous sessions")
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("auto_revert_notify", defaults.AutoRevertNotify)
	viper.SetDefault("auto_revert_delay", defaults.AutoRevertDelay)
	viper.SetDefault("save_place", defaults.SavePlace)
	viper.SetDefault("places_path", defaults.PlacesPath)
	viper.SetDefault("theme.modeline_fg", defaults.Theme.ModelineFg)
	viper.SetDefault("theme.modeline_bg", defaults.Theme.ModelineBg)
	viper.SetDefault("theme.echo_fg", defaults.Theme.EchoFg)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, _ := os.UserHomeDir()
		viper.AddConfigPath(filepath.Join(home, ".config", "gmacs"))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Missing config files are fine; the defaults carry the session.
	_ = viper.ReadInConfig()
	_ = viper.Unmarshal(&cfg)
}

func runEditor(cmd *cobra.Command, args []string) error {
	if debugLog == "" {
		debugLog = os.Getenv("GMACS_DEBUG")
	}
	if debugLog != "" {
		cleanup, err := log.InitWithTeaLog(debugLog, "gmacs")
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer cleanup()
	}

	if noSavePlace, _ := cmd.Flags().GetBool("no-save-place"); noSavePlace {
		cfg.SavePlace = false
	}
	log.Debug(log.CatConfig, "configuration loaded",
		"file", viper.ConfigFileUsed(),
		"save_place", cfg.SavePlace,
		"auto_revert", cfg.AutoRevertNotify)

	ed, err := editor.New()
	if err != nil {
		return fmt.Errorf("initializing editor: %w", err)
	}

	var places *sqlite.PlaceRepository
	if cfg.SavePlace {
		db, err := sqlite.NewDB(cfg.PlacesPath)
		if err != nil {
			log.ErrorErr(log.CatStore, "opening place store", err, "path", cfg.PlacesPath)
		} else {
			defer db.Close()
			places = sqlite.NewPlaceRepository(db)
		}
	}

	if err := openFiles(ed, places, args); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var w *watcher.Watcher
	if cfg.AutoRevertNotify {
		w, err = watcher.New(watcher.Config{DebounceDur: cfg.AutoRevertDelay})
		if err != nil {
			log.ErrorErr(log.CatWatcher, "starting file watcher", err)
		} else {
			defer w.Stop() //nolint:errcheck
			for _, buff := range ed.Buffers() {
				if buff.Path() != "" {
					if err := w.Watch(buff.Path()); err != nil {
						log.ErrorErr(log.CatWatcher, "watching file", err, "path", buff.Path())
					}
				}
			}
			w.Start()
		}
	}

	model := ui.New(ctx, ed, cfg, w)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}

	savePlaces(ed, places)
	return nil
}

// openFiles creates one buffer per argument, loading its contents and, when a
// place store is available, restoring point. The first file becomes the
// active buffer.
func openFiles(ed *editor.Editor, places *sqlite.PlaceRepository, args []string) error {
	for _, path := range args {
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", path, err)
		}
		buff := ed.CreateBuffer(filepath.Base(abs), abs)
		if err := buff.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		if places != nil {
			if point, ok, err := places.Find(abs); err == nil && ok {
				buff.SetPoint(point)
			}
		}
		ed.EnsureVisible()
	}
	if len(args) > 0 {
		ed.SwitchBuffer(1)
	}
	return nil
}

// savePlaces records point for every file-backed buffer.
func savePlaces(ed *editor.Editor, places *sqlite.PlaceRepository) {
	if places == nil {
		return
	}
	for _, buff := range ed.Buffers() {
		if buff.Path() == "" {
			continue
		}
		if err := places.Save(buff.Path(), buff.Point()); err != nil {
			log.ErrorErr(log.CatStore, "saving place", err, "path", buff.Path())
		}
	}
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
