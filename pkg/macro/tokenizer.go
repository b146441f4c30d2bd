// tokenizer.go implements tokenization for {{name(args)}} invocation syntax.
package macro

import (
	"strings"
	"unicode"
)

// TokenType distinguishes plain text from macro invocations.
type TokenType int

const (
	TokenText       TokenType = iota // text between invocations
	TokenInvocation                  // a complete {{...}} span
)

// Token represents a single token from invocation scanning.
type Token struct {
	Type   TokenType
	Text   string   // set for Text tokens
	Name   string   // set for Invocation tokens, original case
	Args   []string // set for Invocation tokens
	Offset int      // byte offset of the token in the input
	End    int      // byte offset just past the token
}

const (
	openDelim  = "{{"
	closeDelim = "}}"
)

// Tokenize scans input for {{...}} invocations and returns a token
// stream. Recognized forms:
//   - {{name}} - invocation with no arguments
//   - {{name(arg, ...)}} - invocation with comma-separated arguments
//
// Arguments are quoted strings ('...' or "...", with backslash-escaped
// quotes) or bare literals such as identifiers and numbers. Text between
// invocations is returned as TokenText tokens. Invocations do not nest:
// a second open delimiter before the closing one is a malformed-input
// condition, as is an unterminated invocation. A stray single brace or
// an unmatched close delimiter is ordinary text.
func Tokenize(input string) ([]Token, error) {
	var tokens []Token
	pos := 0
	textStart := 0

	for pos < len(input) {
		if !strings.HasPrefix(input[pos:], openDelim) {
			pos++
			continue
		}

		if pos > textStart {
			tokens = append(tokens, Token{
				Type:   TokenText,
				Text:   input[textStart:pos],
				Offset: textStart,
				End:    pos,
			})
		}

		token, endPos, err := parseInvocation(input, pos)
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, token)
		pos = endPos
		textStart = pos
	}

	if textStart < len(input) {
		tokens = append(tokens, Token{
			Type:   TokenText,
			Text:   input[textStart:],
			Offset: textStart,
			End:    len(input),
		})
	}

	return tokens, nil
}

// parseInvocation parses one {{...}} span starting at pos.
// Returns the token, the position just past the closing delimiter, and
// any error.
func parseInvocation(input string, pos int) (Token, int, error) {
	startPos := pos
	pos += len(openDelim)

	pos = skipSpace(input, pos)

	// Macro name (letters, digits, '-', '_').
	nameStart := pos
	for pos < len(input) && isNameChar(rune(input[pos])) {
		pos++
	}
	if pos == nameStart {
		return Token{}, pos, &MalformedError{Offset: startPos, Reason: "empty macro name"}
	}
	name := input[nameStart:pos]

	pos = skipSpace(input, pos)

	var args []string
	if pos < len(input) && input[pos] == '(' {
		var err error
		args, pos, err = parseArguments(input, pos+1, startPos)
		if err != nil {
			return Token{}, pos, err
		}
		pos = skipSpace(input, pos)
	}

	if strings.HasPrefix(input[pos:], openDelim) {
		return Token{}, pos, &MalformedError{Offset: startPos, Reason: "nested open delimiter"}
	}
	if !strings.HasPrefix(input[pos:], closeDelim) {
		if pos >= len(input) {
			return Token{}, pos, &MalformedError{Offset: startPos, Reason: "unterminated invocation"}
		}
		return Token{}, pos, &MalformedError{Offset: startPos, Reason: "expected '}}' after macro name"}
	}
	pos += len(closeDelim)

	return Token{
		Type:   TokenInvocation,
		Name:   name,
		Args:   args,
		Offset: startPos,
		End:    pos,
	}, pos, nil
}

// parseArguments parses a comma-separated argument list up to the
// closing parenthesis. pos points just past '('. invocStart is the
// offset of the enclosing invocation, used for error reporting.
func parseArguments(input string, pos, invocStart int) ([]string, int, error) {
	args := []string{}

	pos = skipSpace(input, pos)
	if pos < len(input) && input[pos] == ')' {
		return args, pos + 1, nil
	}

	for {
		pos = skipSpace(input, pos)
		if pos >= len(input) {
			return nil, pos, &MalformedError{Offset: invocStart, Reason: "unterminated argument list"}
		}

		value, newPos, err := parseArgValue(input, pos, invocStart)
		if err != nil {
			return nil, newPos, err
		}
		args = append(args, value)
		pos = skipSpace(input, newPos)

		if pos >= len(input) {
			return nil, pos, &MalformedError{Offset: invocStart, Reason: "unterminated argument list"}
		}
		switch input[pos] {
		case ',':
			pos++
		case ')':
			return args, pos + 1, nil
		default:
			return nil, pos, &MalformedError{Offset: invocStart, Reason: "expected ',' or ')' in argument list"}
		}
	}
}

// parseArgValue parses one argument value, handling quoted strings.
// Escaped quotes (\' or \") and backslashes are unescaped in the
// returned value. Braces inside a quoted string are ordinary content.
func parseArgValue(input string, pos, invocStart int) (string, int, error) {
	if input[pos] == '"' || input[pos] == '\'' {
		quoteChar := input[pos]
		pos++
		var value strings.Builder
		for pos < len(input) {
			switch {
			case input[pos] == quoteChar:
				return value.String(), pos + 1, nil
			case input[pos] == '\\' && pos+1 < len(input) &&
				(input[pos+1] == quoteChar || input[pos+1] == '\\'):
				value.WriteByte(input[pos+1])
				pos += 2
			default:
				value.WriteByte(input[pos])
				pos++
			}
		}
		return "", pos, &MalformedError{Offset: invocStart, Reason: "unclosed quoted argument"}
	}

	if strings.HasPrefix(input[pos:], openDelim) {
		return "", pos, &MalformedError{Offset: invocStart, Reason: "nested open delimiter"}
	}

	// Bare literal: read until ',' or ')' or whitespace.
	valueStart := pos
	for pos < len(input) && input[pos] != ',' && input[pos] != ')' &&
		!unicode.IsSpace(rune(input[pos])) {
		if strings.HasPrefix(input[pos:], openDelim) {
			return "", pos, &MalformedError{Offset: invocStart, Reason: "nested open delimiter"}
		}
		pos++
	}
	if pos == valueStart {
		return "", pos, &MalformedError{Offset: invocStart, Reason: "empty argument"}
	}
	return input[valueStart:pos], pos, nil
}

func skipSpace(input string, pos int) int {
	for pos < len(input) && unicode.IsSpace(rune(input[pos])) {
		pos++
	}
	return pos
}

// isNameChar returns true if r is valid in a macro name.
func isNameChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_'
}
