// Package category holds the static table of file categories and classifies
// files into them by extension.
package category

import (
	"slices"
	"strings"
)

// Name is the name of a category, also used as its folder name.
type Name string

// Category names in classification order.
const (
	Images    Name = "Images"
	Videos    Name = "Videos"
	Music     Name = "Music"
	Archives  Name = "Archives"
	Documents Name = "Documents"
	Other     Name = "Other"
)

// String returns the category name.
func (n Name) String() string {
	return string(n)
}

// Category maps a name to the lowercase extensions it recognizes.
type Category struct {
	// Name is the category name and its folder name.
	Name Name
	// Extensions lists the recognized lowercase extensions, with the leading dot.
	Extensions []string
}

// Contains reports whether ext, compared case-insensitively, belongs to the category.
func (c Category) Contains(ext string) bool {
	return slices.Contains(c.Extensions, strings.ToLower(ext))
}

//nolint:gochecknoglobals // Static configuration, fixed for the process lifetime.
var table = []Category{
	{Name: Images, Extensions: []string{".jpeg", ".png", ".jpg", ".svg"}},
	{Name: Videos, Extensions: []string{".avi", ".mp4", ".mov", ".mkv"}},
	{Name: Music, Extensions: []string{".mp3", ".ogg", ".wav", ".amr"}},
	{Name: Archives, Extensions: []string{".zip", ".tar", ".rar", ".gz"}},
	{Name: Documents, Extensions: []string{".doc", ".docx", ".txt", ".pdf", ".xlsx", ".pptx", ".xls"}},
	{Name: Other},
}

// Table returns a copy of the category table in classification order.
func Table() []Category {
	result := make([]Category, len(table))
	for i, c := range table {
		result[i] = Category{Name: c.Name, Extensions: slices.Clone(c.Extensions)}
	}

	return result
}

// Names returns every category name in classification order.
func Names() []Name {
	names := make([]Name, len(table))
	for i, c := range table {
		names[i] = c.Name
	}

	return names
}

// Classify returns the first category in table order that contains ext.
// When nothing matches it returns Other and false.
func Classify(ext string) (Name, bool) {
	for _, c := range table {
		if c.Contains(ext) {
			return c.Name, true
		}
	}

	return Other, false
}

// IsReserved reports whether a directory name is one of the category folder names.
func IsReserved(dirName string) bool {
	for _, c := range table {
		if string(c.Name) == dirName {
			return true
		}
	}

	return false
}
