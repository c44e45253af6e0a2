package report

import (
	"encoding/json"
	"fmt"

	"github.com/harrison/personacheck/internal/filelock"
	"github.com/harrison/personacheck/internal/models"
)

// MarshalJSON renders run as indented JSON with a trailing newline
func MarshalJSON(run *models.ValidationRun) ([]byte, error) {
	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}
	return append(data, '\n'), nil
}

// WriteJSON writes run to path under a file lock, replacing any previous report atomically
func WriteJSON(path string, run *models.ValidationRun) error {
	data, err := MarshalJSON(run)
	if err != nil {
		return err
	}
	if err := filelock.LockAndWrite(path, data); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}
