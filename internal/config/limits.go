package config

const (
	// MaxFolderNameLength is the maximum length for folder names accepted over HTTP.
	// The store itself accepts any name, including empty ones.
	MaxFolderNameLength = 255

	// MaxFileNameLength is the maximum length for file names.
	// Same as folder names for consistency.
	MaxFileNameLength = 255

	// MaxIDLength bounds caller-supplied file IDs and folder references.
	MaxIDLength = 128

	// MaxRequestBodyBytes limits JSON request bodies.
	MaxRequestBodyBytes = 1 << 20
)
