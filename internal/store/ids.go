package store

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// newProjectID generates a fresh opaque project identifier.
func newProjectID() (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("failed to generate project ID: %w", err)
	}
	return id, nil
}
