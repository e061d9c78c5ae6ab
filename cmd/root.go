package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathlab/internal/config"
	"github.com/abhisek/mathlab/internal/content"
	"github.com/abhisek/mathlab/internal/logging"
	"github.com/abhisek/mathlab/internal/progress"
	"github.com/abhisek/mathlab/internal/store"
	"github.com/abhisek/mathlab/internal/topics"
)

var rootCmd = &cobra.Command{
	Use:   "mathlab",
	Short: "Math practice in the terminal",
	Long:  "MathLab: level-based practice of progressions, inequalities and intervals with hints and saved progress.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "", 0)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MATHLAB_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default ./config.yaml or $HOME/.config/mathlab/config.yaml)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the configuration named by --config.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	loader, err := config.NewLoader(path)
	if err != nil {
		return nil, err
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the configured path, then MATHLAB_DB and the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.Database.Path != "" {
		return cfg.Database.Path, store.EnsureDir(cfg.Database.Path)
	}
	return store.DefaultDBPath()
}

// env is what every command that touches saved progress runs on.
type env struct {
	cfg    *config.Config
	dbPath string
	log    *logrus.Logger
	// store is nil when the database could not be opened; storage then
	// keeps progress in memory for this run only.
	store   *store.Store
	storage progress.Storage
	topics  *topics.Registry
	format *content.Formatter

	logCloser io.Closer
}

func newRegistry(cfg *config.Config) *topics.Registry {
	return topics.New(topics.WithStreakThreshold(cfg.Inequalities.StreakThreshold))
}

// openEnv loads the configuration, the log and the database.
func openEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}

	logCfg := cfg.Log
	if logCfg.File == "" {
		logCfg.File = logging.DefaultFile(dbPath)
	}
	log, closer, err := logging.New(logCfg)
	if err != nil {
		return nil, fmt.Errorf("set up logging: %w", err)
	}

	format, err := content.New(cfg.Display.Locale, log)
	if err != nil {
		closer.Close()
		return nil, err
	}

	st, storage := openStorage(dbPath, log)
	return &env{
		cfg:       cfg,
		dbPath:    dbPath,
		log:       log,
		store:     st,
		storage:   storage,
		topics:    newRegistry(cfg),
		format:    format,
		logCloser: closer,
	}, nil
}

// errNoStore is returned by commands that read the database directly when
// it could not be opened.
var errNoStore = errors.New("saved progress is unavailable")

// openStorage opens the database at dbPath. When that fails the app still
// runs: progress is kept in memory and lost on exit.
func openStorage(dbPath string, log *logrus.Logger) (*store.Store, progress.Storage) {
	st, err := store.Open(dbPath)
	if err != nil {
		log.WithError(err).WithField("db", dbPath).Warn("store unavailable, progress will not be saved")
		return nil, progress.NewMemoryStorage()
	}
	log.WithField("db", dbPath).Debug("store opened")
	return st, store.NewProgressStore(st, log)
}

// db returns the open database for commands that cannot work in memory.
func (e *env) db() (*store.Store, error) {
	if e.store == nil {
		return nil, fmt.Errorf("%w: cannot open %s", errNoStore, e.dbPath)
	}
	return e.store, nil
}

func (e *env) Close() {
	if e.store != nil {
		if err := e.store.Close(); err != nil {
			e.log.WithError(err).Warn("close store")
		}
	}
	e.logCloser.Close()
}
