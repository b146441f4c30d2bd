// errors.go defines the error kinds surfaced by macro resolution.
package macro

import "fmt"

// MalformedError reports an invocation that could not be tokenized:
// an unterminated delimiter pair, a nested open delimiter, an empty
// macro name, or a broken argument list. Offset is the byte offset of
// the invocation's opening delimiter in the input.
type MalformedError struct {
	Offset int
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed macro invocation at offset %d: %s", e.Offset, e.Reason)
}

// UnknownMacroError reports an invocation naming a macro that is not
// in the registry. Name preserves the original case from the source.
type UnknownMacroError struct {
	Name   string
	Offset int
}

func (e *UnknownMacroError) Error() string {
	return fmt.Sprintf("unknown macro %q at offset %d", e.Name, e.Offset)
}

// HandlerError reports a handler that failed to produce replacement
// text. The handler's own error is wrapped and available via Unwrap.
type HandlerError struct {
	Name   string
	Offset int
	Err    error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("macro %q at offset %d: %v", e.Name, e.Offset, e.Err)
}

func (e *HandlerError) Unwrap() error { return e.Err }

// LineCol converts a byte offset into a 1-based line and column for
// error reporting. Offsets past the end of input map to the final
// position.
func LineCol(input string, offset int) (line, col int) {
	if offset > len(input) {
		offset = len(input)
	}
	line, col = 1, 1
	for i := 0; i < offset; i++ {
		if input[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
