// Package archive expands zip, tar, tar.gz, gz and rar archives into a folder.
// Every entry is checked to stay inside the target folder; an archive that tries
// to escape it is treated as corrupt.
package archive
