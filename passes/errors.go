package passes

import (
	"errors"
	"fmt"
)

// ErrIndentUnderflow reports a documentation line indented less than the common indentation
var ErrIndentUnderflow = errors.New("documentation line shorter than common indentation")

// IndentError describes the offending documentation line
type IndentError struct {
	Line      int    // 1-based line number within the documentation text
	Text      string // offending line
	MinIndent int    // computed common indentation
}

func (e *IndentError) Error() string {
	return fmt.Sprintf("line %d %q: cannot remove %d leading spaces: %v", e.Line, e.Text, e.MinIndent, ErrIndentUnderflow)
}

func (e *IndentError) Unwrap() error {
	return ErrIndentUnderflow
}
