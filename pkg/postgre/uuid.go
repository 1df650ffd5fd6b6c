package postgre

import (
	"fmt"

	"github.com/google/uuid"
)

// NewUUID generates a new random UUID string for primary keys.
func NewUUID() string {
	return uuid.NewString()
}

// IsUUID validates that s is a well-formed UUID.
func IsUUID(s string) error {
	if _, err := uuid.Parse(s); err != nil {
		return fmt.Errorf("invalid uuid %q: %w", s, err)
	}
	return nil
}

// ValidateUUIDs validates every element of ids.
func ValidateUUIDs(ids []string) error {
	for _, id := range ids {
		if err := IsUUID(id); err != nil {
			return err
		}
	}
	return nil
}
