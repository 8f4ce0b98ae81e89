package describe

import (
	"errors"
	"fmt"
)

var (
	// ErrTemplateIndex means a placeholder points past the end of its field.
	ErrTemplateIndex = errors.New("template index out of range")

	// ErrTemplateSyntax means a placeholder could not be parsed.
	ErrTemplateSyntax = errors.New("template syntax error")
)

// TemplateIndexError names the template line and the offending index.
type TemplateIndexError struct {
	Line  int // Zero-based template line
	Field Field
	Index int
	Len   int // Length of the referenced field
}

func (e *TemplateIndexError) Error() string {
	return fmt.Sprintf("template line %d: %s[%d] out of range (len %d)", e.Line, e.Field, e.Index, e.Len)
}

func (e *TemplateIndexError) Unwrap() error {
	return ErrTemplateIndex
}

// TemplateSyntaxError reports a malformed placeholder.
type TemplateSyntaxError struct {
	Line int
	Pos  int // Byte offset of the opening brace
	Msg  string
}

func (e *TemplateSyntaxError) Error() string {
	return fmt.Sprintf("template line %d, offset %d: %s", e.Line, e.Pos, e.Msg)
}

func (e *TemplateSyntaxError) Unwrap() error {
	return ErrTemplateSyntax
}
