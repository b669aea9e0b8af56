// Package normalizer turns arbitrary filenames into a portable ASCII form:
// Cyrillic letters are transliterated to Latin, then every character outside
// [A-Za-z0-9.] is replaced with an underscore.
package normalizer

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/unicode/norm"
)

const (
	// DefaultCacheSize is the default number of memoized names.
	DefaultCacheSize = 1024

	// replacementChar substitutes every disallowed character.
	replacementChar = '_'
)

// ErrInvalidCacheSize indicates that the memo size is not positive.
var ErrInvalidCacheSize = errors.New("name cache size must be a positive integer")

//nolint:gochecknoglobals // Immutable lookup table built once at startup.
var transliterationTable = buildTransliterationTable()

// Normalizer converts filenames to their normalized form.
type Normalizer interface {
	// Normalize returns the normalized form of name.
	Normalize(name string) string
}

// NormalizerImpl memoizes normalized names in an LRU cache.
type NormalizerImpl struct {
	cache *lru.Cache[string, string]
}

// NewNormalizer creates a normalizer remembering up to cacheSize names.
func NewNormalizer(cacheSize int) (*NormalizerImpl, error) {
	if cacheSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCacheSize, cacheSize)
	}

	cache, err := lru.New[string, string](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create names cache: %w", err)
	}

	return &NormalizerImpl{cache: cache}, nil
}

// Normalize returns the normalized form of name.
func (n *NormalizerImpl) Normalize(name string) string {
	if normalized, ok := n.cache.Get(name); ok {
		return normalized
	}

	normalized := Normalize(name)
	n.cache.Add(name, normalized)

	return normalized
}

// Normalize transliterates Cyrillic letters and replaces every character
// outside [A-Za-z0-9.] with an underscore.
// Results that do not name a file ("", "." and "..") become a single underscore.
func Normalize(name string) string {
	normalized := ReplaceDisallowed(Transliterate(name))

	switch normalized {
	case "", ".", "..":
		return string(replacementChar)
	default:
		return normalized
	}
}

// Transliterate maps every Cyrillic letter of the table to its Latin spelling.
// Other characters pass through unchanged.
func Transliterate(name string) string {
	var sb strings.Builder

	// Composed form keeps "й" and "ї" as single runes.
	name = norm.NFC.String(name)
	sb.Grow(len(name))

	for _, r := range name {
		if latin, ok := transliterationTable[r]; ok {
			sb.WriteString(latin)

			continue
		}

		sb.WriteRune(r)
	}

	return sb.String()
}

// ReplaceDisallowed replaces each character outside [A-Za-z0-9.] with an underscore.
func ReplaceDisallowed(name string) string {
	return strings.Map(func(r rune) rune {
		if isAllowed(r) {
			return r
		}

		return replacementChar
	}, name)
}

func isAllowed(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z',
		r >= 'A' && r <= 'Z',
		r >= '0' && r <= '9',
		r == '.':
		return true
	default:
		return false
	}
}

// buildTransliterationTable fills the lookup table with lowercase letters
// and their uppercase pairs. Uppercase letters map to the lowercase spelling
// with only the first character capitalized: "Щ" becomes "Sch".
func buildTransliterationTable() map[rune]string {
	lowercase := []struct {
		cyrillic rune
		latin    string
	}{
		{'а', "a"}, {'б', "b"}, {'в', "v"}, {'г', "g"}, {'д', "d"},
		{'е', "e"}, {'ё', "e"}, {'ж', "j"}, {'з', "z"}, {'и', "i"},
		{'й', "j"}, {'к', "k"}, {'л', "l"}, {'м', "m"}, {'н', "n"},
		{'о', "o"}, {'п', "p"}, {'р', "r"}, {'с', "s"}, {'т', "t"},
		{'у', "u"}, {'ф', "f"}, {'х', "h"}, {'ц', "ts"}, {'ч', "ch"},
		{'ш', "sh"}, {'щ', "sch"}, {'ъ', ""}, {'ы', "y"}, {'ь', ""},
		{'э', "e"}, {'ю', "yu"}, {'я', "ja"},
		// Ukrainian letters.
		{'є', "je"}, {'і', "i"}, {'ї', "ji"}, {'ґ', "g"},
	}

	table := make(map[rune]string, len(lowercase)*2)

	for _, letter := range lowercase {
		table[letter.cyrillic] = letter.latin
		table[unicode.ToUpper(letter.cyrillic)] = capitalizeFirst(letter.latin)
	}

	return table
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
