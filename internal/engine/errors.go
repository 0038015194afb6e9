package engine

import (
	"errors"
	"fmt"
)

// ErrStructural matches every *StructuralError via errors.Is.
var ErrStructural = errors.New("structural error")

// ErrTemplateNotFound is returned when a requested template ID is not in the catalog.
var ErrTemplateNotFound = errors.New("template not found")

// StructuralError reports a required input that is missing. It is never
// defaulted away.
type StructuralError struct {
	Field  string
	Reason string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *StructuralError) Is(target error) bool {
	return target == ErrStructural
}
