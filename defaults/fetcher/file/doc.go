// Package file provides a file-based implementation of the
// defaults.DataFetcher interface. The specification file is read once at
// construction time and cached, so a missing or unreadable file surfaces
// immediately rather than on first use.
package file
