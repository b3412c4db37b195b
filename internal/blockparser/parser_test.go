package blockparser

import (
	"math"
	"strings"
	"testing"
	"time"

	jerrors "github.com/KimNorgaard/go-jasn/errors"
	"github.com/KimNorgaard/go-jasn/internal/indent"
	"github.com/KimNorgaard/go-jasn/internal/scalar"
	"github.com/KimNorgaard/go-jasn/value"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var valueComparer = cmp.Comparer(value.Equal)

func parse(input string, opts ...Option) (value.Value, error) {
	return New(indent.New([]byte(input)), opts...).Parse()
}

func entry(k string, v value.Value) value.Entry {
	return value.Entry{Key: k, Value: v}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected value.Value
	}{
		{"root scalar", "42\n", value.Int(42)},
		{"root string with comments", "# c\n'hi' # trailing\n", value.String("hi")},
		{"root compact list", "[1, 2,]", value.NewList(value.Int(1), value.Int(2))},
		{"root empty map", "{}\n", value.MustMap()},
		{
			"flat map",
			"name: \"Alice\"\nage: 30\nactive: true\nnothing: null\n",
			value.MustMap(
				entry("active", value.Bool(true)),
				entry("age", value.Int(30)),
				entry("name", value.String("Alice")),
				entry("nothing", value.Null{}),
			),
		},
		{
			"root list",
			"- 1\n- 'two'\n-\n  - 3\n",
			value.NewList(value.Int(1), value.String("two"), value.NewList(value.Int(3))),
		},
		{
			"nested",
			"server:\n" +
				"  host: 'localhost'\n" +
				"  ports:\n" +
				"    - 80\n" +
				"    - 443\n" +
				"  tls:\n" +
				"    cert: b64\"SGk=\"\n" +
				"at: ts\"2024-01-15T10:30:00Z\"\n",
			value.MustMap(
				entry("at", value.NewTimestamp(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC))),
				entry("server", value.MustMap(
					entry("host", value.String("localhost")),
					entry("ports", value.NewList(value.Int(80), value.Int(443))),
					entry("tls", value.MustMap(entry("cert", value.NewBinary([]byte("Hi"))))),
				)),
			),
		},
		{
			"list of maps",
			"items:\n  -\n    id: 1\n  -\n    id: 2\n",
			value.MustMap(entry("items", value.NewList(
				value.MustMap(entry("id", value.Int(1))),
				value.MustMap(entry("id", value.Int(2))),
			))),
		},
		{
			"compact forms",
			"point: {x: 1, y: -2}\ntags: []\n",
			value.MustMap(
				entry("point", value.MustMap(entry("x", value.Int(1)), entry("y", value.Int(-2)))),
				entry("tags", value.NewList()),
			),
		},
		{
			"value on its own line",
			"a:\n  'nested scalar'\nb: 1\n",
			value.MustMap(entry("a", value.String("nested scalar")), entry("b", value.Int(1))),
		},
		{
			"tabs",
			"a:\n\tb:\n\t\tc: 1\n\td: 2\n",
			value.MustMap(entry("a", value.MustMap(
				entry("b", value.MustMap(entry("c", value.Int(1)))),
				entry("d", value.Int(2)),
			))),
		},
		{
			"dedent several levels",
			"a:\n  b:\n    c:\n      d: 1\ne: 2",
			value.MustMap(
				entry("a", value.MustMap(entry("b", value.MustMap(entry("c", value.MustMap(entry("d", value.Int(1)))))))),
				entry("e", value.Int(2)),
			),
		},
		{
			"level jump",
			"a:\n  b:\n      c: 1\n  d: 2\n",
			value.MustMap(entry("a", value.MustMap(
				entry("b", value.MustMap(entry("c", value.Int(1)))),
				entry("d", value.Int(2)),
			))),
		},
		{
			"colon then tab or comment",
			"a:\t1\nb:# note\n  2\nc: {x:1}\n",
			value.MustMap(
				entry("a", value.Int(1)),
				entry("b", value.Int(2)),
				entry("c", value.MustMap(entry("x", value.Int(1)))),
			),
		},
		{
			"keyword keys and crlf",
			"null: 1\r\n'quoted key': inf\r\n",
			value.MustMap(entry("null", value.Int(1)), entry("quoted key", value.Float(math.Inf(1)))),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := parse(tt.input)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.expected, v, valueComparer); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_CompactEquivalence(t *testing.T) {
	compact, err := parse("a: [1, 2, 3]\n")
	require.NoError(t, err)
	block, err := parse("a:\n  - 1\n  - 2\n  - 3\n")
	require.NoError(t, err)
	require.True(t, value.Equal(compact, block))
}

func TestParse_IndentUnitInference(t *testing.T) {
	_, err := parse("a:\n    b:\n        c: 1\n    d: 2\n")
	require.NoError(t, err)

	_, err = parse("a:\n    b:\n      c: 1\n")
	require.ErrorIs(t, err, jerrors.ErrIndent)
	require.ErrorIs(t, err, jerrors.ErrIndentMismatch)
}

func TestParse_HexPrefix(t *testing.T) {
	v, err := New(indent.New([]byte(`data: h"4869"`), indent.WithHexPrefix(scalar.HexShort))).Parse()
	require.NoError(t, err)
	require.True(t, value.Equal(value.MustMap(entry("data", value.NewBinary([]byte("Hi")))), v))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		kind   jerrors.Kind
		cause  error
		line   int
		column int
	}{
		{"empty", "", jerrors.SyntaxError, jerrors.ErrEmptyDocument, 1, 1},
		{"comments only", "# a\n\n# b\n", jerrors.SyntaxError, jerrors.ErrEmptyDocument, 4, 1},
		{"indented root", "  a: 1\n", jerrors.IndentError, jerrors.ErrUnexpectedIndent, 1, 3},
		{"duplicate key", "a: 1\nb: 2\na: 3\n", jerrors.DuplicateKeyError, jerrors.ErrDuplicateKey, 3, 1},
		{"duplicate compact key", "m: {x: 1, x: 2}\n", jerrors.DuplicateKeyError, jerrors.ErrDuplicateKey, 1, 11},
		{"missing value", "a:\nb: 1\n", jerrors.SyntaxError, jerrors.ErrMissingValue, 1, 1},
		{"missing item", "-\n", jerrors.SyntaxError, jerrors.ErrMissingValue, 1, 1},
		{"unexpected indent", "a: 1\n  b: 2\n", jerrors.IndentError, jerrors.ErrUnexpectedIndent, 2, 3},
		{"trailing content", "a: 1 2\n", jerrors.SyntaxError, jerrors.ErrTrailingContent, 1, 6},
		{"two root scalars", "1\n2\n", jerrors.SyntaxError, jerrors.ErrTrailingContent, 2, 1},
		{"list then map", "- 1\na: 2\n", jerrors.SyntaxError, jerrors.ErrUnexpectedToken, 2, 1},
		{"map then list", "a: 2\n- 1\n", jerrors.SyntaxError, jerrors.ErrUnexpectedToken, 2, 1},
		{"multi-line compact", "a: [1,\n  2]\n", jerrors.SyntaxError, jerrors.ErrUnexpectedToken, 1, 7},
		{"bare word", "a: hello\n", jerrors.SyntaxError, jerrors.ErrUnexpectedToken, 1, 4},
		{"missing colon", "a 1\n", jerrors.SyntaxError, jerrors.ErrUnexpectedToken, 1, 1},
		{"no space after colon", "a:1\n", jerrors.SyntaxError, jerrors.ErrUnexpectedToken, 1, 3},
		{"no space after nested colon", "a:\n  b:'x'\n", jerrors.SyntaxError, jerrors.ErrUnexpectedToken, 2, 5},
		{"range", "n: 9223372036854775808\n", jerrors.LexError, jerrors.ErrIntegerRange, 1, 4},
		{"bad dedent", "a:\n  b:\n      c: 1\n    d: 2\n", jerrors.IndentError, jerrors.ErrInvalidDedent, 4, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(tt.input)
			require.Error(t, err)
			require.ErrorIs(t, err, tt.cause)
			var pe *jerrors.ParseError
			require.ErrorAs(t, err, &pe)
			require.Equal(t, tt.kind, pe.Kind, pe.Error())
			require.Equal(t, tt.line, pe.Line, "line")
			require.Equal(t, tt.column, pe.Column, "column")
		})
	}
}

func TestParse_MaxDepth(t *testing.T) {
	var b strings.Builder
	for i := range 4 {
		b.WriteString(strings.Repeat("  ", i))
		b.WriteString("k:\n")
	}
	b.WriteString(strings.Repeat("  ", 4) + "v: 1\n")

	_, err := parse(b.String(), WithMaxDepth(5))
	require.NoError(t, err)

	_, err = parse(b.String(), WithMaxDepth(4))
	require.ErrorIs(t, err, jerrors.ErrMaxDepth)

	_, err = parse("a: [[[1]]]", WithMaxDepth(3))
	require.ErrorIs(t, err, jerrors.ErrMaxDepth)
}
