package builder

import (
	"aocbuilder/lib/telemetry"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

const (
	report_folder_create = "folder.create"
	report_folder_exists = "folder.exists"
)

// EnsureDir creates a directory, a directory that already exists is not an error.
// any other failure (missing parent, permissions, ...) is returned.
func EnsureDir(path string, tel telemetry.API) error {
	tel.ReportDebug(report_folder_create, path)
	err := os.Mkdir(path, 0755)
	if errors.Is(err, fs.ErrExist) {
		tel.ReportDebug(report_folder_exists, fmt.Sprintf("%s exists, skip creation", path))
		return nil
	}
	if err != nil {
		return fmt.Errorf("create folder %s: %w", path, err)
	}
	return nil
}
