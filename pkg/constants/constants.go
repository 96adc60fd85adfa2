// Package constants provides shared constants used throughout the bookshelf
// codebase. This includes the default backing file, file permissions, and
// other configuration values that should be consistent across the application.
package constants

// File constants identify the backing file and related configuration
const (
	// DefaultLibraryFile is the default backing file for the catalog.
	// The name is kept for compatibility with data written by earlier
	// versions of the library system.
	DefaultLibraryFile = "library.csv"

	// ConfigName is the basename of the CLI config file (without extension)
	ConfigName = ".bookshelf"
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)
