// Package organizer sorts the files of a folder tree into category folders under its root.
// Each file is classified by extension, renamed to its normalized form and moved;
// archives are expanded into a subfolder of Archives and then deleted; folders left
// empty are removed. The run collects known and unknown extensions along the way.
package organizer
