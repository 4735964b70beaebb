package validation

import (
	"fmt"
	"strings"
)

// Problem classifies why a field failed validation.
type Problem string

const (
	ProblemMissing       Problem = "missing"
	ProblemMalformed     Problem = "malformed"
	ProblemNotAfterStart Problem = "not_after_start"
)

// Issue names one field that failed validation.
type Issue struct {
	Field   string  `json:"field"`
	Problem Problem `json:"problem"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s (%s)", i.Field, i.Problem)
}

// Error is returned by Validate when the candidate is not a valid event.
type Error struct {
	Issues []Issue
}

func (e *Error) Error() string {
	var missing, other []string
	for _, is := range e.Issues {
		if is.Problem == ProblemMissing {
			missing = append(missing, is.Field)
			continue
		}
		other = append(other, is.String())
	}

	var parts []string
	if len(missing) > 0 {
		parts = append(parts, "Missing required fields: "+strings.Join(missing, ", "))
	}
	if len(other) > 0 {
		parts = append(parts, "Invalid fields: "+strings.Join(other, ", "))
	}
	return strings.Join(parts, "; ")
}

// Fields returns the names of all fields with issues, in report order.
func (e *Error) Fields() []string {
	fields := make([]string, len(e.Issues))
	for i, is := range e.Issues {
		fields[i] = is.Field
	}
	return fields
}

// Has reports whether field failed with the given problem.
func (e *Error) Has(field string, problem Problem) bool {
	for _, is := range e.Issues {
		if is.Field == field && is.Problem == problem {
			return true
		}
	}
	return false
}
