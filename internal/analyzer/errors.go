package analyzer

import "fmt"

// InvalidInputError reports a job description that cannot be analyzed.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Message)
}

// errEmptyInput is the single cause the deterministic analyzer can reject on.
func errEmptyInput() error {
	return &InvalidInputError{Message: "job description cannot be empty"}
}
