package services

import "github.com/google/uuid"

// NewID returns a time-ordered UUID (version 7). Ids created in the same
// millisecond still differ, unlike the timestamp ids of older data files.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
