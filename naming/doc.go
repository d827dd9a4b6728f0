// Package naming derives output paths: auto-generated names for single
// files, mirrored paths for directory trees, the default output directory,
// and in-run collision handling when two sources map to the same output.
package naming
