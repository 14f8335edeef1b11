package core

import "os"

// File permission presets.
const (
	// PermOwnerRW is used for files that may carry secrets (config, credentials).
	PermOwnerRW os.FileMode = 0o600

	// PermFile is used for generated manifests and description files.
	PermFile os.FileMode = 0o644

	// PermDir is used when creating output directories.
	PermDir os.FileMode = 0o755
)

// MaxDiscoveryDepth bounds recursive archive searches.
const MaxDiscoveryDepth = 5
