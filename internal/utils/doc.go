// Package utils provides small helpers shared across the application:
// filesystem checks on top of afero, extension handling, safe numeric conversions
// and generic slice helpers.
package utils
