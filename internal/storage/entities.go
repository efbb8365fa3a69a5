package storage

import "time"

// Setting is one persisted key/value row of the settings table.
type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
