package storage

import "strings"

// ForPath selects a backend from the config path: a ".db" path opens the
// SQLite store, anything else is treated as a directory of JSON slot files.
func ForPath(path string) Provider {
	if strings.HasSuffix(path, ".db") {
		return NewSQLiteStore(path)
	}
	return NewFileStore(path)
}
