package macro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize_EmptyInput(t *testing.T) {
	tokens, err := Tokenize("")
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestTokenize_PlainText(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"simple text", "Hello world"},
		{"single brace", "a { b } c"},
		{"stray close delimiter", "oops }} here"},
		{"markdown syntax", "# Title\n\nSome *emphasis* and `code`."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			require.NoError(t, err)
			require.Len(t, tokens, 1)
			assert.Equal(t, TokenText, tokens[0].Type)
			assert.Equal(t, tt.input, tokens[0].Text)
			assert.Equal(t, 0, tokens[0].Offset)
		})
	}
}

func TestTokenize_SimpleInvocation(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantName string
	}{
		{"no arguments", "{{Compat}}", "Compat"},
		{"empty argument list", "{{Compat()}}", "Compat"},
		{"inner whitespace", "{{ Compat }}", "Compat"},
		{"hyphenated name", "{{Non-standard_Header}}", "Non-standard_Header"},
		{"digits in name", "{{h2o}}", "h2o"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			require.NoError(t, err)
			require.Len(t, tokens, 1)
			assert.Equal(t, TokenInvocation, tokens[0].Type)
			assert.Equal(t, tt.wantName, tokens[0].Name)
			assert.Empty(t, tokens[0].Args)
		})
	}
}

func TestTokenize_Arguments(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantArgs []string
	}{
		{
			"double quoted",
			`{{domxref("Element.ariaLevel")}}`,
			[]string{"Element.ariaLevel"},
		},
		{
			"single quoted",
			`{{domxref('Element')}}`,
			[]string{"Element"},
		},
		{
			"two strings",
			`{{domxref("Element.ariaLevel", "ariaLevel")}}`,
			[]string{"Element.ariaLevel", "ariaLevel"},
		},
		{
			"bare literals",
			`{{EmbedLiveSample("Examples", 640, 160)}}`,
			[]string{"Examples", "640", "160"},
		},
		{
			"whitespace around commas",
			`{{f( "a" ,  b , "c" )}}`,
			[]string{"a", "b", "c"},
		},
		{
			"escaped quote",
			`{{f("say \"hi\"")}}`,
			[]string{`say "hi"`},
		},
		{
			"escaped backslash",
			`{{f("a\\b")}}`,
			[]string{`a\b`},
		},
		{
			"braces inside quoted string",
			`{{f("{{literal}}")}}`,
			[]string{"{{literal}}"},
		},
		{
			"empty string argument",
			`{{f("")}}`,
			[]string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			require.NoError(t, err)
			require.Len(t, tokens, 1)
			assert.Equal(t, TokenInvocation, tokens[0].Type)
			assert.Equal(t, tt.wantArgs, tokens[0].Args)
		})
	}
}

func TestTokenize_TextAroundInvocations(t *testing.T) {
	tokens, err := Tokenize(`before {{a}} middle {{b("x")}} after`)
	require.NoError(t, err)
	require.Len(t, tokens, 5)

	assert.Equal(t, TokenText, tokens[0].Type)
	assert.Equal(t, "before ", tokens[0].Text)

	assert.Equal(t, TokenInvocation, tokens[1].Type)
	assert.Equal(t, "a", tokens[1].Name)
	assert.Equal(t, 7, tokens[1].Offset)

	assert.Equal(t, TokenText, tokens[2].Type)
	assert.Equal(t, " middle ", tokens[2].Text)

	assert.Equal(t, TokenInvocation, tokens[3].Type)
	assert.Equal(t, "b", tokens[3].Name)
	assert.Equal(t, []string{"x"}, tokens[3].Args)

	assert.Equal(t, TokenText, tokens[4].Type)
	assert.Equal(t, " after", tokens[4].Text)
}

func TestTokenize_Offsets(t *testing.T) {
	input := "ab{{cd}}ef"
	tokens, err := Tokenize(input)
	require.NoError(t, err)
	require.Len(t, tokens, 3)

	assert.Equal(t, 0, tokens[0].Offset)
	assert.Equal(t, 2, tokens[1].Offset)
	assert.Equal(t, 8, tokens[1].End)
	assert.Equal(t, 8, tokens[2].Offset)
	assert.Equal(t, input[tokens[1].Offset:tokens[1].End], "{{cd}}")
}

func TestTokenize_Malformed(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantOffset int
	}{
		{"unterminated invocation", "{{domxref", 0},
		{"unterminated after text", "text {{domxref", 5},
		{"empty macro name", "{{}}", 0},
		{"nested open delimiter", "{{outer {{inner}} }}", 0},
		{"nested in arguments", "{{f({{g}})}}", 0},
		{"unclosed quoted argument", `{{f("abc)}}`, 0},
		{"unterminated argument list", `{{f("a", "b"`, 0},
		{"garbage after name", "{{name oops}}", 0},
		{"missing comma", `{{f("a" "b")}}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.input)
			require.Error(t, err)

			var malformed *MalformedError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, tt.wantOffset, malformed.Offset)
		})
	}
}
