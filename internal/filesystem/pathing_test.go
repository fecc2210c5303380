//go:build !windows

package filesystem_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/desertwitch/fsprobe/internal/filesystem"
	"github.com/desertwitch/fsprobe/internal/filesystem/mocks"
	"github.com/desertwitch/fsprobe/internal/schema"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPathHandler() *filesystem.Handler {
	return filesystem.NewHandler(&schema.OS{}, &schema.Unix{}, afero.NewMemMapFs(), "")
}

func TestStartsWith_Lexical(t *testing.T) {
	t.Parallel()

	handler := newPathHandler()

	tests := []struct {
		name   string
		path   string
		prefix string
		want   bool
	}{
		{"ancestor", "/nonexistent/data/abc/file", "/nonexistent/data", true},
		{"equal", "/nonexistent/data", "/nonexistent/data", true},
		{"root prefix", "/nonexistent/data", "/", true},
		{"root on root", "/", "/", true},
		{"string prefix only", "/nonexistent/data/abcdef", "/nonexistent/data/abc", false},
		{"string prefix only short", "/nonexistent/data/abc", "/nonexistent/data/ab", false},
		{"descendant is not prefix", "/nonexistent/data", "/nonexistent/data/abc", false},
		{"sibling", "/nonexistent/data/a", "/nonexistent/data/b", false},
		{"dot segments", "/nonexistent/data/./x/../abc", "/nonexistent/data/abc", true},
		{"dotdot escapes prefix", "/nonexistent/data/abc/../../other", "/nonexistent/data", false},
		{"trailing slashes", "/nonexistent/data/abc/", "/nonexistent/data/", true},
		{"double slashes", "/nonexistent//data//abc", "/nonexistent/data", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, handler.StartsWith(tt.path, tt.prefix))
		})
	}
}

func TestStartsWith_Reflexive(t *testing.T) {
	t.Parallel()

	handler := newPathHandler()
	dir := t.TempDir()

	for _, p := range []string{"/", dir, filepath.Join(dir, "missing", "deeper"), "relative/path", ".", ""} {
		assert.True(t, handler.StartsWith(p, p), "path %q", p)
	}
}

// TestStartsWith_Symlinks resolves symbolic links of existing leading
// portions before comparing.
func TestStartsWith_Symlinks(t *testing.T) {
	t.Parallel()

	handler := newPathHandler()
	dir := t.TempDir()

	target := filepath.Join(dir, "target")
	require.NoError(t, os.MkdirAll(filepath.Join(target, "sub"), 0o755))

	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(target, link))

	assert.True(t, handler.StartsWith(filepath.Join(link, "sub"), target))
	assert.True(t, handler.StartsWith(filepath.Join(link, "sub", "not", "there"), target))
	assert.True(t, handler.StartsWith(filepath.Join(target, "sub"), link))
	assert.False(t, handler.StartsWith(link, filepath.Join(dir, "lin")))
}

// TestStartsWith_Relative makes relative paths absolute against the working
// directory.
func TestStartsWith_Relative(t *testing.T) {
	t.Parallel()

	osMock := mocks.NewOsProvider(t)
	handler := filesystem.NewHandler(osMock, nil, afero.NewMemMapFs(), "")

	osMock.On("Getwd").Return("/work", nil)
	osMock.On("EvalSymlinks", mock.Anything).Return("", os.ErrNotExist)

	assert.True(t, handler.StartsWith("project/file", "/work"))
	assert.True(t, handler.StartsWith("/work/project/file", "project"))
	assert.False(t, handler.StartsWith("../elsewhere", "/work"))
}

// TestStartsWith_SymlinkDotDot resolves ".." after a symbolic link against the
// link's target, so a path leaving its prefix through a link is not contained.
func TestStartsWith_SymlinkDotDot(t *testing.T) {
	t.Parallel()

	handler := newPathHandler()
	dir := t.TempDir()

	jail := filepath.Join(dir, "jail")
	outside := filepath.Join(dir, "outside")
	require.NoError(t, os.MkdirAll(jail, 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(outside, "deep"), 0o755))
	require.NoError(t, os.Symlink(filepath.Join(outside, "deep"), filepath.Join(jail, "link")))

	escaping := filepath.Join(jail, "link") + "/../secret"

	assert.False(t, handler.StartsWith(escaping, jail))
	assert.True(t, handler.StartsWith(escaping, outside))
	assert.False(t, handler.StartsWith(jail+"/link/../../jail/../outside", jail))
	assert.True(t, handler.StartsWith(jail+"/link/./x/..", filepath.Join(outside, "deep")))
}

// TestStartsWith_UncleanedHeads hands the unresolved heads to the symlink
// resolver as given, then cleans only the resolved result.
func TestStartsWith_UncleanedHeads(t *testing.T) {
	t.Parallel()

	osMock := mocks.NewOsProvider(t)
	handler := filesystem.NewHandler(osMock, nil, afero.NewMemMapFs(), "")

	osMock.On("EvalSymlinks", "/jail/link/../secret").Return("", os.ErrNotExist).Once()
	osMock.On("EvalSymlinks", "/jail/link/..").Return("/outside", nil).Once()
	osMock.On("EvalSymlinks", "/jail").Return("/jail", nil).Once()

	assert.False(t, handler.StartsWith("/jail/link/../secret", "/jail"))
}

func TestStartsWith_Package(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	target := filepath.Join(dir, "target")
	require.NoError(t, os.MkdirAll(target, 0o755))
	require.NoError(t, os.Symlink(target, filepath.Join(dir, "link")))

	assert.True(t, filesystem.StartsWith(filepath.Join(dir, "link", "file"), target))
	assert.True(t, filesystem.StartsWith("/nonexistent/data/abc", "/nonexistent/data"))
	assert.False(t, filesystem.StartsWith("/nonexistent/data/abcdef", "/nonexistent/data/abc"))
	assert.False(t, filesystem.StartsWith(filepath.Join(dir, "link")+"/../other", target))
}
