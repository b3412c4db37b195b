package formatter_test

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/KimNorgaard/go-jasn/internal/blockparser"
	"github.com/KimNorgaard/go-jasn/internal/formatter"
	"github.com/KimNorgaard/go-jasn/internal/indent"
	"github.com/KimNorgaard/go-jasn/internal/lexer"
	"github.com/KimNorgaard/go-jasn/internal/parser"
	"github.com/KimNorgaard/go-jasn/internal/scalar"
	"github.com/KimNorgaard/go-jasn/value"
	"github.com/stretchr/testify/require"
)

func entry(k string, v value.Value) value.Entry {
	return value.Entry{Key: k, Value: v}
}

// Centralized test cases to be used across different format settings.
var testCases = []struct {
	name             string
	value            value.Value
	expectedCompact  string
	expectedIndented string // 2 spaces
	expectedJAML     string
}{
	{
		name:             "String",
		value:            value.String("hello world"),
		expectedCompact:  `"hello world"`,
		expectedIndented: `"hello world"`,
		expectedJAML:     "\"hello world\"\n",
	},
	{
		name:             "Integer",
		value:            value.Int(123),
		expectedCompact:  "123",
		expectedIndented: "123",
		expectedJAML:     "123\n",
	},
	{
		name:             "Empty List",
		value:            value.NewList(),
		expectedCompact:  "[]",
		expectedIndented: "[]",
		expectedJAML:     "[]\n",
	},
	{
		name:             "List with scalars",
		value:            value.NewList(value.Int(1), value.String("two")),
		expectedCompact:  `[1,"two"]`,
		expectedIndented: "[\n  1,\n  \"two\",\n]",
		expectedJAML:     "- 1\n- \"two\"\n",
	},
	{
		name:             "Empty Map",
		value:            value.MustMap(),
		expectedCompact:  "{}",
		expectedIndented: "{}",
		expectedJAML:     "{}\n",
	},
	{
		name:             "Map with entries",
		value:            value.MustMap(entry("key2", value.Int(123)), entry("key1", value.String("value1"))),
		expectedCompact:  `{key1:"value1",key2:123}`,
		expectedIndented: "{\n  key1: \"value1\",\n  key2: 123,\n}",
		expectedJAML:     "key1: \"value1\"\nkey2: 123\n",
	},
	{
		name: "Nested Map and List",
		value: value.MustMap(entry("data", value.NewList(
			value.MustMap(entry("id", value.Int(1)), entry("status", value.String("ok"))),
			value.Int(2),
			value.NewList(),
		))),
		expectedCompact:  `{data:[{id:1,status:"ok"},2,[]]}`,
		expectedIndented: "{\n  data: [\n    {\n      id: 1,\n      status: \"ok\",\n    },\n    2,\n    [],\n  ],\n}",
		expectedJAML:     "data:\n  -\n    id: 1\n    status: \"ok\"\n  - 2\n  - []\n",
	},
}

func TestFormatter_Indentation(t *testing.T) {
	t.Run("Default Indent (2 spaces)", func(t *testing.T) {
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				require.Equal(t, tc.expectedIndented, formatter.JASN(tc.value, formatter.DefaultOptions()))
			})
		}
	})

	t.Run("Compact Output (indent 0)", func(t *testing.T) {
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				require.Equal(t, tc.expectedCompact, formatter.JASN(tc.value, formatter.CompactOptions()))
			})
		}
	})

	t.Run("Custom Indent (4 spaces)", func(t *testing.T) {
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				opts := formatter.DefaultOptions()
				opts.Indent = 4
				expected := strings.ReplaceAll(tc.expectedIndented, "  ", "    ")
				require.Equal(t, expected, formatter.JASN(tc.value, opts))
			})
		}
	})

	t.Run("JAML", func(t *testing.T) {
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				require.Equal(t, tc.expectedJAML, formatter.JAML(tc.value, formatter.DefaultOptions()))
			})
		}
	})

	t.Run("JAML Custom Indent (4 spaces)", func(t *testing.T) {
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				opts := formatter.DefaultOptions()
				opts.Indent = 4
				expected := strings.ReplaceAll(tc.expectedJAML, "  ", "    ")
				require.Equal(t, expected, formatter.JAML(tc.value, opts))
			})
		}
	})
}

func TestFormatter_Scalars(t *testing.T) {
	hi := value.NewBinary([]byte("Hello"))
	ts := value.NewTimestamp(time.Date(2024, 1, 15, 10, 30, 0, 500000000, time.UTC))
	tsOffset := value.NewTimestamp(time.Date(2024, 1, 15, 10, 30, 0, 0, time.FixedZone("", 5*3600+30*60)))
	tsFine := value.NewTimestamp(time.Date(2024, 1, 15, 10, 30, 0, 123456789, time.UTC))

	tests := []struct {
		name     string
		value    value.Value
		opts     func(*formatter.Options)
		expected string
	}{
		{"integral float", value.Float(3), nil, "3.0"},
		{"negative zero", value.Float(math.Copysign(0, -1)), nil, "-0.0"},
		{"fraction", value.Float(2.5), nil, "2.5"},
		{"large float", value.Float(1e21), nil, "1e+21"},
		{"big integral float", value.Float(1e20), nil, "100000000000000000000.0"},
		{"tiny float", value.Float(1e-7), nil, "1e-07"},
		{"inf", value.Float(math.Inf(1)), nil, "inf"},
		{"negative inf", value.Float(math.Inf(-1)), nil, "-inf"},
		{"nan", value.Float(math.NaN()), nil, "nan"},
		{"leading plus int", value.Int(5), func(o *formatter.Options) { o.LeadingPlus = true }, "+5"},
		{"leading plus negative", value.Int(-5), func(o *formatter.Options) { o.LeadingPlus = true }, "-5"},
		{"leading plus float", value.Float(1.5), func(o *formatter.Options) { o.LeadingPlus = true }, "+1.5"},
		{"leading plus inf", value.Float(math.Inf(1)), func(o *formatter.Options) { o.LeadingPlus = true }, "+inf"},
		{"base64", hi, nil, `b64"SGVsbG8="`},
		{"hex", hi, func(o *formatter.Options) { o.BinaryEncoding = formatter.Hex }, `hex"48656c6c6f"`},
		{"legacy hex", hi, func(o *formatter.Options) {
			o.BinaryEncoding = formatter.Hex
			o.HexPrefix = scalar.HexShort
		}, `h"48656c6c6f"`},
		{"timestamp", ts, nil, `ts"2024-01-15T10:30:00.5Z"`},
		{"timestamp no zulu", ts, func(o *formatter.Options) { o.UseZulu = false }, `ts"2024-01-15T10:30:00.5+00:00"`},
		{"timestamp offset", tsOffset, nil, `ts"2024-01-15T10:30:00+05:30"`},
		{"timestamp seconds", tsFine, func(o *formatter.Options) { o.TimestampPrecision = formatter.PrecisionSeconds }, `ts"2024-01-15T10:30:00Z"`},
		{"timestamp millis", tsFine, func(o *formatter.Options) { o.TimestampPrecision = formatter.PrecisionMillis }, `ts"2024-01-15T10:30:00.123Z"`},
		{"timestamp micros", tsFine, func(o *formatter.Options) { o.TimestampPrecision = formatter.PrecisionMicros }, `ts"2024-01-15T10:30:00.123456Z"`},
		{"timestamp nanos", tsFine, func(o *formatter.Options) { o.TimestampPrecision = formatter.PrecisionNanos }, `ts"2024-01-15T10:30:00.123456789Z"`},
		{"timestamp millis pads", ts, func(o *formatter.Options) { o.TimestampPrecision = formatter.PrecisionMillis }, `ts"2024-01-15T10:30:00.500Z"`},
		{"timestamp millis offset", tsOffset, func(o *formatter.Options) { o.TimestampPrecision = formatter.PrecisionMillis }, `ts"2024-01-15T10:30:00.000+05:30"`},
		{"timestamp seconds no zulu", tsFine, func(o *formatter.Options) {
			o.TimestampPrecision = formatter.PrecisionSeconds
			o.UseZulu = false
		}, `ts"2024-01-15T10:30:00+00:00"`},
		{"escapes", value.String("a\"b\\c/d\n\t\x01"), nil, `"a\"b\\c\/d\n\t\u0001"`},
		{"single quotes", value.String(`it's "x"`), func(o *formatter.Options) { o.QuoteStyle = formatter.Single }, `'it\'s "x"'`},
		{"prefer double picks single", value.String(`say "hi"`), func(o *formatter.Options) { o.QuoteStyle = formatter.PreferDouble }, `'say "hi"'`},
		{"prefer double keeps double", value.String(`it's "x"`), func(o *formatter.Options) { o.QuoteStyle = formatter.PreferDouble }, `"it's \"x\""`},
		{"unicode", value.String("é😀"), nil, `"é😀"`},
		{"escaped unicode", value.String("é😀"), func(o *formatter.Options) { o.EscapeUnicode = true }, `"\u00e9\ud83d\ude00"`},
		{"keyword key", value.MustMap(entry("null", value.Int(1))), func(o *formatter.Options) { o.Indent = 0 }, `{"null":1}`},
		{"odd key", value.MustMap(entry("a b", value.Int(1))), func(o *formatter.Options) { o.Indent = 0 }, `{"a b":1}`},
		{"quote keys", value.MustMap(entry("a", value.Int(1))), func(o *formatter.Options) {
			o.Indent = 0
			o.QuoteKeys = true
		}, `{"a":1}`},
		{"no trailing commas", value.NewList(value.Int(1), value.Int(2)), func(o *formatter.Options) { o.TrailingCommas = false }, "[\n  1,\n  2\n]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := formatter.DefaultOptions()
			if tt.opts != nil {
				tt.opts(&opts)
			}
			require.Equal(t, tt.expected, formatter.JASN(tt.value, opts))
		})
	}
}

func TestJAML_InlineLimit(t *testing.T) {
	v := value.MustMap(
		entry("point", value.MustMap(entry("x", value.Int(1)), entry("y", value.Int(2)))),
		entry("tags", value.NewList(value.String("a"), value.String("b"), value.String("c"))),
		entry("nested", value.NewList(value.NewList(value.Int(1)))),
	)
	opts := formatter.DefaultOptions()
	opts.InlineLimit = 2

	expected := "nested:\n" +
		"  - [1]\n" +
		"point: {x: 1, y: 2}\n" +
		"tags:\n" +
		"  - \"a\"\n" +
		"  - \"b\"\n" +
		"  - \"c\"\n"
	require.Equal(t, expected, formatter.JAML(v, opts))
}

func roundTripValues() []value.Value {
	return []value.Value{
		value.Null{},
		value.Bool(false),
		value.Int(math.MinInt64),
		value.Int(math.MaxInt64),
		value.Float(0.1),
		value.Float(-1e-300),
		value.Float(math.MaxFloat64),
		value.Float(math.NaN()),
		value.Float(math.Inf(-1)),
		value.String(""),
		value.String("quotes ' \" and \\ slashes / # not a comment"),
		value.String("control \x00\x1f\x7f\u0085 and 😀"),
		value.NewBinary(nil),
		value.NewBinary([]byte{0, 1, 2, 0xff}),
		value.NewTimestamp(time.Date(1999, 12, 31, 23, 59, 59, 123456789, time.FixedZone("", -8*3600))),
		value.NewList(),
		value.MustMap(),
		value.MustMap(
			entry("", value.Int(0)),
			entry("true", value.Bool(true)),
			entry("list", value.NewList(value.NewList(), value.MustMap(), value.NewList(value.Int(1), value.NewList(value.Int(2))))),
			entry("map", value.MustMap(entry("a b", value.MustMap(entry("c", value.Null{}))))),
		),
		value.NewList(value.MustMap(entry("k", value.NewList(value.String("v")))), value.Int(7)),
	}
}

func optionVariants() map[string]formatter.Options {
	variants := map[string]formatter.Options{
		"default": formatter.DefaultOptions(),
		"compact": formatter.CompactOptions(),
	}
	o := formatter.DefaultOptions()
	o.Indent = 3
	o.QuoteStyle = formatter.Single
	o.BinaryEncoding = formatter.Hex
	o.QuoteKeys = true
	o.LeadingPlus = true
	o.EscapeUnicode = true
	o.UseZulu = false
	o.InlineLimit = 3
	o.TrailingCommas = false
	variants["everything"] = o

	o = formatter.DefaultOptions()
	o.QuoteStyle = formatter.PreferDouble
	o.InlineLimit = 100
	variants["prefer double inline"] = o
	return variants
}

func TestRoundTrip(t *testing.T) {
	for name, opts := range optionVariants() {
		t.Run(name, func(t *testing.T) {
			for _, v := range roundTripValues() {
				jasn := formatter.JASN(v, opts)
				got, err := parser.New(lexer.New([]byte(jasn))).Parse()
				require.NoError(t, err, jasn)
				require.True(t, value.Equal(v, got), "JASN round trip of %s", jasn)

				jaml := formatter.JAML(v, opts)
				got, err = blockparser.New(indent.New([]byte(jaml))).Parse()
				require.NoError(t, err, jaml)
				require.True(t, value.Equal(v, got), "JAML round trip of %s", jaml)
			}
		})
	}
}

func TestFormat_SortedKeys(t *testing.T) {
	v := value.MustMap(entry("c", value.Int(3)), entry("a", value.Int(1)), entry("b", value.Int(2)))
	require.Equal(t, "{a:1,b:2,c:3}", formatter.JASN(v, formatter.CompactOptions()))
	require.Equal(t, "a: 1\nb: 2\nc: 3\n", formatter.JAML(v, formatter.DefaultOptions()))
}
