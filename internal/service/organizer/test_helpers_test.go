package organizer

import (
	"archive/zip"
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oshokin/clean-folder/internal/archive"
	mock_archive "github.com/oshokin/clean-folder/internal/archive/mocks"
	"github.com/oshokin/clean-folder/internal/config"
	"github.com/oshokin/clean-folder/internal/constants"
	"github.com/oshokin/clean-folder/internal/normalizer"
)

const testRoot = "/inbox"

// testOrganizerSetup encapsulates common test dependencies and configuration.
type testOrganizerSetup struct {
	fs      afero.Fs
	config  *config.Config
	service Service
}

// newTestOrganizerSetup creates an organizer over an in-memory filesystem with the real extractor.
func newTestOrganizerSetup(t *testing.T, configOverrides ...func(*config.Config)) *testOrganizerSetup {
	t.Helper()

	fs := afero.NewMemMapFs()

	return newTestOrganizerSetupWith(t, fs, archive.NewExtractor(fs), configOverrides...)
}

// newTestOrganizerSetupWithMock creates an organizer whose extractor is a gomock mock.
func newTestOrganizerSetupWithMock(
	t *testing.T,
	configOverrides ...func(*config.Config),
) (*testOrganizerSetup, *mock_archive.MockExtractor) {
	t.Helper()

	ctrl := gomock.NewController(t)
	extractor := mock_archive.NewMockExtractor(ctrl)

	return newTestOrganizerSetupWith(t, afero.NewMemMapFs(), extractor, configOverrides...), extractor
}

func newTestOrganizerSetupWith(
	t *testing.T,
	fs afero.Fs,
	extractor archive.Extractor,
	configOverrides ...func(*config.Config),
) *testOrganizerSetup {
	t.Helper()

	cfg := &config.Config{
		RootPath:             testRoot,
		ParsedRootPath:       testRoot,
		ParsedConflictPolicy: config.ConflictPolicyRename,
		NameCacheSize:        normalizer.DefaultCacheSize,
	}

	// Apply overrides.
	for _, override := range configOverrides {
		override(cfg)
	}

	nameNormalizer, err := normalizer.NewNormalizer(cfg.NameCacheSize)
	require.NoError(t, err)

	require.NoError(t, fs.MkdirAll(cfg.ParsedRootPath, constants.DefaultFolderPermissions))

	return &testOrganizerSetup{
		fs:      fs,
		config:  cfg,
		service: NewService(cfg, fs, nameNormalizer, extractor),
	}
}

// writeFiles creates files (relative to the root) with the given contents.
func (s *testOrganizerSetup) writeFiles(t *testing.T, files map[string]string) {
	t.Helper()

	for name, content := range files {
		path := s.path(name)

		require.NoError(t, s.fs.MkdirAll(filepath.Dir(path), constants.DefaultFolderPermissions))
		require.NoError(t, afero.WriteFile(s.fs, path, []byte(content), constants.DefaultFilePermissions))
	}
}

// mkdirs creates folders relative to the root.
func (s *testOrganizerSetup) mkdirs(t *testing.T, dirs ...string) {
	t.Helper()

	for _, dir := range dirs {
		require.NoError(t, s.fs.MkdirAll(s.path(dir), constants.DefaultFolderPermissions))
	}
}

func (s *testOrganizerSetup) path(name string) string {
	return filepath.Join(s.config.ParsedRootPath, filepath.FromSlash(name))
}

func (s *testOrganizerSetup) exists(t *testing.T, name string) bool {
	t.Helper()

	exists, err := afero.Exists(s.fs, s.path(name))
	require.NoError(t, err)

	return exists
}

func (s *testOrganizerSetup) read(t *testing.T, name string) string {
	t.Helper()

	data, err := afero.ReadFile(s.fs, s.path(name))
	require.NoError(t, err)

	return string(data)
}

// zipBytes builds a zip archive of name/content pairs.
func zipBytes(t *testing.T, files map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer

	zw := zip.NewWriter(&buf)

	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)

		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}

	require.NoError(t, zw.Close())

	return buf.Bytes()
}
