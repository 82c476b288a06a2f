/*
Copyright © 2026 The remapdb Authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/remaplab/remapdb/internal/iofs"
	"github.com/remaplab/remapdb/internal/iologger"
	"github.com/remaplab/remapdb/pkg/config"
	"github.com/remaplab/remapdb/pkg/remapdb"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Version: fmt.Sprintf("version: %s\nbuild:   %s",
		remapdb.Version, remapdb.Build),
	Use:   "remapdb",
	Short: "remapdb replaces legacy fixed-width identifiers in SQL dumps",
	Long: `remapdb manages the identifier-remapping phase of a legacy data
migration: legacy fixed-width textual identifiers are replaced with new
64-bit numeric identifiers across SQL dump files.

The pipeline has four stages, each a subcommand:

  generate   populate the id_mappings table from the legacy database
  schema     rewrite identifier column declarations in schema dumps
  transform  rewrite identifier occurrences in data dumps
  reconcile  re-run matchers in place over transformed artifacts

'remapdb run' executes all stages in order. 'remapdb snapshot' exports
the mapping table to a local SQLite file so transform and reconcile can
run without a live database connection.`,
	PersistentPreRunE: bootstrap,
	RunE:              runRoot,
	SilenceErrors:     true,
	SilenceUsage:      true,
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureKnownIDsFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info(
		"Configuration files are available at <em>%s</em>",
		config.ConfigDir(homeDir),
	)

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings and proper log file location
	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir))

	return nil
}

// reconfigureLogging reinitializes the logger with the loaded configuration.
// Creates log file in the proper location now that we know HomeDir.
func reconfigureLogging(cfg *config.Config) error {
	logDir := config.LogDir(cfg.HomeDir)
	return iologger.Init(logDir, cfg.Log)
}

func runRoot(cmd *cobra.Command, args []string) error {
	versionFlag(cmd)
	return cmd.Help()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Remove the automatic "remapdb version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.Flags().BoolP("version", "V", false, "version for remapdb")

	rootCmd.AddCommand(getGenerateCmd())
	rootCmd.AddCommand(getSchemaCmd())
	rootCmd.AddCommand(getTransformCmd())
	rootCmd.AddCommand(getReconcileCmd())
	rootCmd.AddCommand(getRunCmd())
	rootCmd.AddCommand(getSnapshotCmd())
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions() - i.e., persistent
	// configuration that can be stored in config.yaml.
	v.SetEnvPrefix("REMAPDB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Database configuration
	v.BindEnv("database.host", "DATABASE_HOST")
	v.BindEnv("database.port", "DATABASE_PORT")
	v.BindEnv("database.user", "DATABASE_USER")
	v.BindEnv("database.password", "DATABASE_PASSWORD")
	v.BindEnv("database.database", "DATABASE_DATABASE")
	v.BindEnv("database.ssl_mode", "DATABASE_SSL_MODE")
	v.BindEnv("database.batch_size", "DATABASE_BATCH_SIZE")

	// Identifier configuration
	v.BindEnv("identifier.width", "IDENTIFIER_WIDTH")
	v.BindEnv("identifier.alphabet", "IDENTIFIER_ALPHABET")
	v.BindEnv("identifier.path_marker", "IDENTIFIER_PATH_MARKER")
	v.BindEnv("identifier.query_params", "IDENTIFIER_QUERY_PARAMS")

	// Dump configuration
	v.BindEnv("dump.dir", "DUMP_DIR")

	// Log configuration
	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("log.format", "LOG_FORMAT")
	v.BindEnv("log.destination", "LOG_DESTINATION")

	// General configuration
	v.BindEnv("jobs_number", "JOBS_NUMBER")

	v.AutomaticEnv()
}
