package usecase

import "github.com/google/uuid"

// newID mints the string ids used across cycles, rooms, slots, interviews
// and reviews
func newID() string {
	return uuid.NewString()
}
