package registry

import (
	"fmt"
	"regexp"

	"github.com/Fuabioo/mcpd/internal/errors"
)

// Capability name constraints
const (
	maxNameLength = 64
	namePattern   = `^[a-zA-Z0-9_-]+$`
)

var nameRegex = regexp.MustCompile(namePattern)

// ValidateName checks if a capability name meets requirements:
// - Only alphanumeric characters, hyphens, and underscores
// - Maximum 64 characters
// - Not empty
func ValidateName(name string) error {
	if name == "" {
		return errors.InvalidName(name, "name cannot be empty")
	}

	if len(name) > maxNameLength {
		return errors.InvalidName(name, fmt.Sprintf("name exceeds maximum length of %d characters", maxNameLength))
	}

	if !nameRegex.MatchString(name) {
		return errors.InvalidName(name, "name must contain only alphanumeric characters, hyphens, and underscores")
	}

	return nil
}
