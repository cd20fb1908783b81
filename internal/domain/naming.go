package domain

import "path/filepath"

// GlobalLogPath returns the path to the log file inside the data directory.
func GlobalLogPath(dataDir string) string {
	return filepath.Join(dataDir, "logs", "kanban.log")
}
