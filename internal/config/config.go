package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/clean-folder/internal/logger"
	"github.com/oshokin/clean-folder/internal/normalizer"
)

// Config holds all configuration settings.
type Config struct {
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// OnConflict chooses what happens when the destination file already exists (rename, overwrite, fail).
	OnConflict string `mapstructure:"on_conflict"`
	// ShowProgress enables the progress bar when stderr is a terminal.
	ShowProgress bool `mapstructure:"progress"`
	// ShowStats prints a per-category table after the run.
	ShowStats bool `mapstructure:"stats"`
	// ReportPath is where a YAML report of the run is written. Empty disables the report.
	ReportPath string `mapstructure:"report"`
	// NameCacheSize is the number of normalized names kept in memory.
	NameCacheSize int `mapstructure:"name_cache_size"`
	// NoLock disables the per-root run lock.
	NoLock bool `mapstructure:"no_lock"`
	// RootPath is the folder to organize, as given on the command line.
	RootPath string `mapstructure:"-"`
	// ParsedRootPath is the absolute form of RootPath.
	ParsedRootPath string `mapstructure:"-"`
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level `mapstructure:"-"`
	// ParsedConflictPolicy is the parsed conflict policy.
	ParsedConflictPolicy ConflictPolicy `mapstructure:"-"`
}

// ConflictPolicy tells the organizer what to do when a destination already exists.
type ConflictPolicy uint8

const (
	// ConflictPolicyRename appends "_N" before the extension until the name is free.
	ConflictPolicyRename ConflictPolicy = iota
	// ConflictPolicyOverwrite replaces the existing file.
	ConflictPolicyOverwrite
	// ConflictPolicyFail aborts the run.
	ConflictPolicyFail
)

// String returns a human-readable representation of the ConflictPolicy.
func (p ConflictPolicy) String() string {
	switch p {
	case ConflictPolicyRename:
		return "rename"
	case ConflictPolicyOverwrite:
		return "overwrite"
	case ConflictPolicyFail:
		return "fail"
	default:
		return fmt.Sprintf("unknown: %d", p)
	}
}

// ParseConflictPolicy converts a textual policy into a ConflictPolicy.
func ParseConflictPolicy(s string) (ConflictPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rename", "":
		return ConflictPolicyRename, nil
	case "overwrite":
		return ConflictPolicyOverwrite, nil
	case "fail":
		return ConflictPolicyFail, nil
	default:
		return ConflictPolicyRename, fmt.Errorf("%w: '%s'", ErrInvalidConflictPolicy, s)
	}
}

const (
	// EnvPrefix is the prefix of environment variables overriding settings, e.g. CLEAN_FOLDER_LOG_LEVEL.
	EnvPrefix = "CLEAN_FOLDER"

	// DefaultLogLevel is the default logging level.
	DefaultLogLevel = "info"

	// DefaultOnConflict is the default conflict policy.
	DefaultOnConflict = "rename"
)

// Setting keys.
const (
	KeyLogLevel      = "log_level"
	KeyOnConflict    = "on_conflict"
	KeyProgress      = "progress"
	KeyStats         = "stats"
	KeyReport        = "report"
	KeyNameCacheSize = "name_cache_size"
	KeyNoLock        = "no_lock"
)

// Static error definitions for better error handling.
var (
	// ErrEmptyRootPath indicates that no folder to organize was given.
	ErrEmptyRootPath = errors.New("root path cannot be empty")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidConflictPolicy indicates that the conflict policy is not recognized.
	ErrInvalidConflictPolicy = errors.New("invalid conflict policy, expected rename, overwrite or fail")
)

// FlagName returns the command-line flag name of a setting key.
func FlagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// LoadConfig builds the configuration from defaults, CLEAN_FOLDER_* environment
// variables and the given flags, in increasing order of precedence.
func LoadConfig(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyOnConflict, DefaultOnConflict)
	v.SetDefault(KeyProgress, true)
	v.SetDefault(KeyStats, false)
	v.SetDefault(KeyReport, "")
	v.SetDefault(KeyNameCacheSize, normalizer.DefaultCacheSize)
	v.SetDefault(KeyNoLock, false)

	if flags != nil {
		for _, key := range []string{
			KeyLogLevel, KeyOnConflict, KeyProgress, KeyStats, KeyReport, KeyNameCacheSize, KeyNoLock,
		} {
			flag := flags.Lookup(FlagName(key))
			if flag == nil {
				continue
			}

			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag '%s': %w", flag.Name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	rootPath := strings.TrimSpace(cfg.RootPath)
	if rootPath == "" {
		return ErrEmptyRootPath
	}

	absRootPath, err := filepath.Abs(rootPath)
	if err != nil {
		return fmt.Errorf("failed to resolve root path: %w", err)
	}

	cfg.ParsedRootPath = absRootPath

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	cfg.ParsedConflictPolicy, err = ParseConflictPolicy(cfg.OnConflict)
	if err != nil {
		return err
	}

	if cfg.NameCacheSize <= 0 {
		return fmt.Errorf("%w: %d", normalizer.ErrInvalidCacheSize, cfg.NameCacheSize)
	}

	if cfg.ReportPath != "" {
		cfg.ReportPath, err = filepath.Abs(cfg.ReportPath)
		if err != nil {
			return fmt.Errorf("failed to resolve report path: %w", err)
		}
	}

	return nil
}
