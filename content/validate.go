package content

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the structural invariants of the literal data: a named
// profile, non-empty interests and titles, plausible publication years.
// Email addresses, links and citation text are not checked.
func Validate(s *Site) error {
	if s == nil {
		return fmt.Errorf("content: nil site")
	}
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("content: %w", err)
	}
	return nil
}
