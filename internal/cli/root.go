// Package cli implements the dashboard command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/olirobz31/dashboard-analytics-pro/internal/paths"
	"github.com/olirobz31/dashboard-analytics-pro/internal/store"
	"github.com/olirobz31/dashboard-analytics-pro/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// exitError carries the exit code a failed command should terminate with.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(format string, args ...any) error {
	return &exitError{code: exitUserError, err: fmt.Errorf(format, args...)}
}

func sysError(format string, args ...any) error {
	return &exitError{code: exitSysError, err: fmt.Errorf(format, args...)}
}

// userErrors are the failures caused by bad input rather than the system.
var userErrors = []error{
	types.ErrNotFound,
	types.ErrInvalidID,
	types.ErrDuplicateID,
	types.ErrInvalidData,
	types.ErrInvalidStatus,
	types.ErrInvalidAmount,
	types.ErrInvalidDate,
	types.ErrInvalidBackup,
	types.ErrInvalidWidget,
	types.ErrUnknownCollection,
	types.ErrBackendUnknown,
	types.ErrRedisAddrMissing,
}

// exitCode maps an error returned by a command to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	for _, target := range userErrors {
		if errors.Is(err, target) {
			return exitUserError
		}
	}
	return exitSysError
}

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
	logLevel  string
}

// app is the state shared by the commands of one invocation.
type app struct {
	flags rootFlags
	cfg   *viper.Viper
	store *store.Store
}

// NewRootCmd creates the top-level "dashboard" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{})
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "dashboard",
		Short: "Orders, users, and revenue analytics for the dashboard",
		Long: "Dashboard manages the orders, users, products, and notifications behind\n" +
			"the analytics dashboard: paginated tables, CSV exports, and stat summaries.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/dashboard)")
	pf.StringVar(&a.flags.dataDir, "data-dir", "", "data directory (default: $(CWD)/"+paths.DefaultDataDirName+")")
	pf.BoolVar(&a.flags.jsonMode, "json", false, "output as JSON")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(
		newVersionCmd(),
		newInitCmd(a),
		newListCmd(a),
		newExportCmd(a),
		newGetCmd(a),
		newAddCmd(a),
		newUpdateCmd(a),
		newDeleteCmd(a),
		newStatsCmd(a),
		newNotificationsCmd(a),
		newSettingsCmd(a),
		newLayoutCmd(a),
		newBackupCmd(a),
	)
	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	a := &app{}
	defer a.close()
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
	}
	return exitCode(err)
}

// setup configures logging, loads config.yaml, and opens the store. The
// version command needs none of it.
func (a *app) setup(cmd *cobra.Command) error {
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError("resolve config dir: %w", err)
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return sysError("%w", err)
	}
	a.cfg = cfg
	setupLogging(cmd.ErrOrStderr(), a.flags.logLevel, cfg.GetString(cfgKeyLogLevel))

	storeCfg, err := a.storeConfig()
	if err != nil {
		return err
	}
	s, err := store.Open(storeCfg)
	if err != nil {
		return sysError("open %s store: %w", storeCfg.Backend, err)
	}
	a.store = s
	return nil
}

// storeConfig builds the store configuration from flags and config.yaml.
func (a *app) storeConfig() (types.Config, error) {
	dataDir, err := paths.ResolveDataDir(a.flags.dataDir, a.cfg.GetString(cfgKeyDataDir))
	if err != nil {
		return types.Config{}, sysError("resolve data dir: %w", err)
	}
	c := types.Config{
		Backend:   a.cfg.GetString(cfgKeyBackend),
		DataDir:   dataDir,
		RedisAddr: a.cfg.GetString(cfgKeyRedisAddr),
		RedisDB:   a.cfg.GetInt(cfgKeyRedisDB),
	}
	if err := c.Validate(); err != nil {
		return c, userError("config: %w", err)
	}
	return c, nil
}

func (a *app) close() error {
	if a.store == nil {
		return nil
	}
	err := a.store.Close()
	a.store = nil
	return err
}
