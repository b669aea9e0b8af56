package category

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestClassifyKnownExtensions tests that every configured extension maps to its own category.
func TestClassifyKnownExtensions(t *testing.T) {
	t.Parallel()

	for _, c := range Table() {
		for _, ext := range c.Extensions {
			for _, variant := range []string{ext, strings.ToUpper(ext)} {
				name, ok := Classify(variant)
				assert.True(t, ok, "extension %q", variant)
				assert.Equal(t, c.Name, name, "extension %q", variant)
			}
		}
	}
}

// TestClassifyUnknownExtensions tests the fallback to Other.
func TestClassifyUnknownExtensions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ext  string
	}{
		{name: "unknown extension", ext: ".xyz"},
		{name: "empty extension", ext: ""},
		{name: "extension without dot", ext: "txt"},
		{name: "only a dot", ext: "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			name, ok := Classify(tt.ext)
			assert.False(t, ok)
			assert.Equal(t, Other, name)
		})
	}
}

// TestTableOrder tests the classification order.
func TestTableOrder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []Name{Images, Videos, Music, Archives, Documents, Other}, Names())

	table := Table()
	assert.Empty(t, table[len(table)-1].Extensions, "Other has no extensions")
}

// TestTableReturnsCopy tests that callers cannot mutate the static table.
func TestTableReturnsCopy(t *testing.T) {
	t.Parallel()

	copied := Table()
	copied[0].Extensions[0] = ".bmp"

	_, ok := Classify(".bmp")
	assert.False(t, ok)
}

// TestIsReserved tests the IsReserved function.
func TestIsReserved(t *testing.T) {
	t.Parallel()

	for _, name := range Names() {
		assert.True(t, IsReserved(string(name)))
	}

	assert.False(t, IsReserved("images"), "folder names are case-sensitive")
	assert.False(t, IsReserved("Downloads"))
}
