package models

import "fmt"

type Volume struct {
	ID           int64  `json:"id" db:"id"`
	VolumeNumber int    `json:"volume_number" db:"volume_number"`
	RanobeID     int64  `json:"ranobe_id" db:"ranobe_id"`
	Title        string `json:"title" db:"title"`
}

// DisplayTitle falls back to a numbered label when the volume has no title.
func (v Volume) DisplayTitle() string {
	if v.Title != "" {
		return v.Title
	}
	return fmt.Sprintf("Volume %d", v.VolumeNumber)
}
