// Package app wires the organizer together: it takes the per-root run lock,
// builds the filesystem, name normalizer and archive extractor, runs the organizer
// and writes the summary, statistics and report.
package app
