package domain

import "path/filepath"

const (
	// StateDirName is the name of the directory holding analysis state.
	StateDirName = ".chunkgraph"

	// ReportsFileName is the name of the file holding the previous chunk reports.
	ReportsFileName = "reports.json"

	// ConfigFileName is the name of the default bundle description.
	ConfigFileName = "chunkgraph.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultReportsPath returns the default path of the report store.
// It joins .chunkgraph and reports.json.
func DefaultReportsPath() string {
	return filepath.Join(StateDirName, ReportsFileName)
}
