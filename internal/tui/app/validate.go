package app

// FieldState is the validation result for a single form field.
type FieldState struct {
	Valid   bool
	Message string
}

// validFieldState is the reset state every field starts in.
func validFieldState() FieldState {
	return FieldState{Valid: true}
}

// validateName runs the name rule: the name must be non-empty. Validation
// informs the view only; it never blocks a commit.
func validateName(name string) FieldState {
	if name == "" {
		return FieldState{Valid: false, Message: "Name is required"}
	}
	return validFieldState()
}
