package domain

import "github.com/google/uuid"

// generateID creates a new unique identifier. V7 UUIDs are time-ordered,
// so ids compare consistently with creation order.
func generateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
