package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gorm.io/gorm"

	"trip-reconciliation/internal/config"
	"trip-reconciliation/internal/gateway"
	"trip-reconciliation/internal/logging"
	"trip-reconciliation/internal/mapping"
)

// app carries what every subcommand needs once flags and config are resolved.
type app struct {
	v     *viper.Viper
	cfg   *config.Config
	log   zerolog.Logger
	table *mapping.Table

	logOutput io.Writer
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logOutput: os.Stderr}

	root := &cobra.Command{
		Use:   "reconciler",
		Short: "Ingest ECU trip reports and reconcile them with tablet entries",
		Long: `reconciler reads the trip reports that Cummins and Detroit diagnostic
tools export as XML, stores them in one canonical form, and pairs each
report with the fuel entry captured on the yard tablets for the same unit
and day.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "YAML configuration file")
	flags.String("mapping", "", "YAML metric mapping table (default: built-in table)")
	flags.String("log-level", "", "log level: trace, debug, info, warn, error")

	a.bind(root, "", "config", "mapping", "log-level")
	a.v.SetEnvPrefix("TRIPREC")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(newIngestCmd(a), newReconcileCmd(a), newMappingCmd(a))
	return root
}

// bind registers flags of cmd with viper under prefix, so that a flag named
// "store" on "ingest" also reads TRIPREC_INGEST_STORE.
func (a *app) bind(cmd *cobra.Command, prefix string, names ...string) {
	for _, name := range names {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			flag = cmd.PersistentFlags().Lookup(name)
		}
		key := name
		if prefix != "" {
			key = prefix + "." + name
		}
		if err := a.v.BindPFlag(key, flag); err != nil {
			panic(fmt.Sprintf("failed to bind %s flag: %v", name, err))
		}
	}
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v.GetString("config"))
	if err != nil {
		return err
	}
	if level := a.v.GetString("log-level"); level != "" {
		cfg.Log.Level = level
	}
	if path := a.v.GetString("mapping"); path != "" {
		cfg.MappingFile = path
	}
	a.cfg = cfg
	a.log = logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: a.logOutput})

	a.table = mapping.Default()
	if cfg.MappingFile != "" {
		if a.table, err = mapping.Load(cfg.MappingFile); err != nil {
			return err
		}
		a.log.Debug().Str("path", cfg.MappingFile).Int("metrics", a.table.Len()).Msg("loaded mapping table")
	}
	return nil
}

// openDB connects to one of the configured schemas.
func (a *app) openDB(name string, db config.DatabaseConfig) (*gorm.DB, error) {
	if !db.Configured() {
		return nil, fmt.Errorf("%s database is not configured (set DB_HOST and the schema name)", name)
	}
	conn, err := gateway.OpenMySQL(db.DSN(), a.log)
	if err != nil {
		return nil, fmt.Errorf("%s database: %w", name, err)
	}
	return conn, nil
}
