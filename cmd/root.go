package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/oshokin/clean-folder/internal/app"
	"github.com/oshokin/clean-folder/internal/config"
	"github.com/oshokin/clean-folder/internal/logger"
	"github.com/oshokin/clean-folder/internal/normalizer"
	"github.com/oshokin/clean-folder/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
var rootCmd = &cobra.Command{
	Use:   "clean-folder [flags] {path}",
	Short: "Sort a folder into Images, Videos, Music, Archives, Documents and Other.",
	Long: `Clean Folder sorts every file of a folder tree by extension into category folders
created under the given folder:
- Images, Videos, Music and Documents receive their known extensions
- Archives are expanded into Archives/<name> and the archive itself is deleted
- everything else goes to Other

File names are transliterated from Cyrillic and reduced to [A-Za-z0-9.],
empty folders are removed, and the known and unknown extensions are printed at the end.
The given folder itself is always kept, even when it ends up empty.

Every flag can also be set with a CLEAN_FOLDER_* environment variable,
for example CLEAN_FOLDER_ON_CONFLICT=overwrite.`,
	Args:    cobra.ExactArgs(1),
	Version: version.Short(),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		cfg, err := loadConfig(cmd.Flags(), args[0])
		if err != nil {
			logger.Fatalf(ctx, "Failed to load configuration: %v", err)
		}

		logger.SetLevel(cfg.ParsedLogLevel)

		err = app.ExecuteRootCommand(ctx, cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		if err != nil {
			logger.Fatalf(ctx, "Failed to organize '%s': %v", cfg.ParsedRootPath, err)
		}
	},
}

// Execute executes the root command.
// SIGHUP, SIGINT and SIGTERM cancel the run; it still prints what it processed before exiting.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	cobra.CheckErr(err)
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	registerRootFlags(rootCmd.Flags())

	rootCmd.AddCommand(versionCmd, categoriesCmd)
}

func registerRootFlags(flags *pflag.FlagSet) {
	flags.StringP(
		config.FlagName(config.KeyLogLevel),
		"l",
		config.DefaultLogLevel,
		"log level: debug, info, warn, error, dpanic, panic, fatal.")

	flags.String(
		config.FlagName(config.KeyOnConflict),
		config.DefaultOnConflict,
		"what to do when the destination file exists: rename (append _1, _2, ...), overwrite or fail.")

	flags.BoolP(
		config.FlagName(config.KeyProgress),
		"p",
		true,
		"show a progress bar when stderr is a terminal.")

	flags.BoolP(
		config.FlagName(config.KeyStats),
		"s",
		false,
		"print a per-category table to stderr after the run.")

	flags.StringP(
		config.FlagName(config.KeyReport),
		"r",
		"",
		"write a YAML report of the run to this path.")

	flags.Int(
		config.FlagName(config.KeyNameCacheSize),
		normalizer.DefaultCacheSize,
		"number of normalized file names kept in memory.")

	flags.Bool(
		config.FlagName(config.KeyNoLock),
		false,
		"do not take the per-folder run lock.")
}

// loadConfig builds and validates the configuration of a run on rootPath.
func loadConfig(flags *pflag.FlagSet, rootPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(flags)
	if err != nil {
		return nil, err
	}

	cfg.RootPath = rootPath

	if err = config.ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
