package feedback

import "fmt"

// ExerciseType is the closed set of exercise kinds the scorer handles.
// Adding a type means extending the switch in scoreExercise, which the
// compiler cannot check for string tags but the tests pin down.
type ExerciseType string

const (
	TypeMultipleChoice ExerciseType = "multiple_choice"
	TypeCoding         ExerciseType = "coding"
	TypeConceptual     ExerciseType = "conceptual"
)

// Valid reports whether t is one of the known exercise types.
func (t ExerciseType) Valid() bool {
	switch t {
	case TypeMultipleChoice, TypeCoding, TypeConceptual:
		return true
	}
	return false
}

// Exercise is one submitted exercise attempt.
type Exercise struct {
	ID            string
	Type          ExerciseType
	Topic         string
	Question      string
	UserAnswer    string
	CorrectAnswer string
}

// ValidationError reports malformed input to a scoring call along with
// the offending field. It must surface to the caller, never be
// swallowed into a generic failure.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
