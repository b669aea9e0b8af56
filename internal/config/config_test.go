package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/clean-folder/internal/normalizer"
)

func newTestFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)

	flags.String(FlagName(KeyLogLevel), DefaultLogLevel, "")
	flags.String(FlagName(KeyOnConflict), DefaultOnConflict, "")
	flags.Bool(FlagName(KeyProgress), true, "")
	flags.Bool(FlagName(KeyStats), false, "")
	flags.String(FlagName(KeyReport), "", "")
	flags.Int(FlagName(KeyNameCacheSize), normalizer.DefaultCacheSize, "")
	flags.Bool(FlagName(KeyNoLock), false, "")

	return flags
}

func validConfig() *Config {
	return &Config{
		RootPath:      "/tmp/inbox",
		LogLevel:      "info",
		OnConflict:    "rename",
		NameCacheSize: 16,
	}
}

// TestFlagName tests the FlagName function.
func TestFlagName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "log-level", FlagName(KeyLogLevel))
	assert.Equal(t, "name-cache-size", FlagName(KeyNameCacheSize))
	assert.Equal(t, "stats", FlagName(KeyStats))
}

// TestLoadConfigDefaults tests that defaults apply without flags or environment.
func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultOnConflict, cfg.OnConflict)
	assert.True(t, cfg.ShowProgress)
	assert.False(t, cfg.ShowStats)
	assert.Empty(t, cfg.ReportPath)
	assert.Equal(t, normalizer.DefaultCacheSize, cfg.NameCacheSize)
	assert.False(t, cfg.NoLock)
}

// TestLoadConfigFlags tests that changed flags override defaults.
func TestLoadConfigFlags(t *testing.T) {
	t.Parallel()

	flags := newTestFlagSet()
	require.NoError(t, flags.Parse([]string{
		"--log-level", "debug",
		"--on-conflict", "overwrite",
		"--progress=false",
		"--stats",
		"--report", "run.yaml",
		"--name-cache-size", "64",
		"--no-lock",
	}))

	cfg, err := LoadConfig(flags)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "overwrite", cfg.OnConflict)
	assert.False(t, cfg.ShowProgress)
	assert.True(t, cfg.ShowStats)
	assert.Equal(t, "run.yaml", cfg.ReportPath)
	assert.Equal(t, 64, cfg.NameCacheSize)
	assert.True(t, cfg.NoLock)
}

// TestLoadConfigEnvironment tests environment overrides and their precedence against flags.
func TestLoadConfigEnvironment(t *testing.T) {
	// Not parallel: t.Setenv.
	t.Setenv("CLEAN_FOLDER_LOG_LEVEL", "warn")
	t.Setenv("CLEAN_FOLDER_ON_CONFLICT", "fail")
	t.Setenv("CLEAN_FOLDER_NAME_CACHE_SIZE", "8")

	flags := newTestFlagSet()
	require.NoError(t, flags.Parse([]string{"--on-conflict", "rename"}))

	cfg, err := LoadConfig(flags)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel, "environment beats default")
	assert.Equal(t, "rename", cfg.OnConflict, "changed flag beats environment")
	assert.Equal(t, 8, cfg.NameCacheSize)
}

// TestValidateConfig tests the ValidateConfig function.
func TestValidateConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		modify      func(*Config)
		expectedErr error
	}{
		{name: "valid config", modify: func(*Config) {}},
		{name: "empty root", modify: func(c *Config) { c.RootPath = "  " }, expectedErr: ErrEmptyRootPath},
		{name: "bad log level", modify: func(c *Config) { c.LogLevel = "loud" }, expectedErr: ErrUnknownLogLevel},
		{name: "bad policy", modify: func(c *Config) { c.OnConflict = "merge" }, expectedErr: ErrInvalidConflictPolicy},
		{name: "zero cache", modify: func(c *Config) { c.NameCacheSize = 0 }, expectedErr: normalizer.ErrInvalidCacheSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.modify(cfg)

			err := ValidateConfig(cfg)
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)

				return
			}

			require.NoError(t, err)
		})
	}
}

// TestValidateConfigDerivedFields tests the Parsed* fields.
func TestValidateConfigDerivedFields(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.RootPath = "relative/inbox"
	cfg.LogLevel = "error"
	cfg.OnConflict = "FAIL"
	cfg.ReportPath = "report.yaml"

	require.NoError(t, ValidateConfig(cfg))

	assert.True(t, filepath.IsAbs(cfg.ParsedRootPath))
	assert.Equal(t, "inbox", filepath.Base(cfg.ParsedRootPath))
	assert.Equal(t, zapcore.ErrorLevel, cfg.ParsedLogLevel)
	assert.Equal(t, ConflictPolicyFail, cfg.ParsedConflictPolicy)
	assert.True(t, filepath.IsAbs(cfg.ReportPath))
}

// TestParseConflictPolicy tests the ParseConflictPolicy function.
func TestParseConflictPolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected ConflictPolicy
		valid    bool
	}{
		{input: "rename", expected: ConflictPolicyRename, valid: true},
		{input: "", expected: ConflictPolicyRename, valid: true},
		{input: " Overwrite ", expected: ConflictPolicyOverwrite, valid: true},
		{input: "fail", expected: ConflictPolicyFail, valid: true},
		{input: "skip", expected: ConflictPolicyRename, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			policy, err := ParseConflictPolicy(tt.input)
			assert.Equal(t, tt.expected, policy)

			if tt.valid {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrInvalidConflictPolicy)
			}
		})
	}
}

// TestConflictPolicyString tests the ConflictPolicy String method.
func TestConflictPolicyString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "rename", ConflictPolicyRename.String())
	assert.Equal(t, "overwrite", ConflictPolicyOverwrite.String())
	assert.Equal(t, "fail", ConflictPolicyFail.String())
	assert.Equal(t, "unknown: 9", ConflictPolicy(9).String())
}
