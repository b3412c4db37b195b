package jasn_test

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/KimNorgaard/go-jasn"
	"github.com/KimNorgaard/go-jasn/value"
)

var benchmarkData = buildBenchmarkData(200)

// buildBenchmarkData returns a list of n records mixing every value kind.
func buildBenchmarkData(n int) value.Value {
	items := make([]value.Value, n)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range n {
		items[i] = value.MustMap(
			value.Entry{Key: "id", Value: value.Int(i)},
			value.Entry{Key: "name", Value: value.String(fmt.Sprintf("item \"%d\" é", i))},
			value.Entry{Key: "score", Value: value.Float(float64(i) / 7)},
			value.Entry{Key: "active", Value: value.Bool(i%2 == 0)},
			value.Entry{Key: "blob", Value: value.NewBinary([]byte(fmt.Sprintf("payload-%d", i)))},
			value.Entry{Key: "seen", Value: value.NewTimestamp(base.Add(time.Duration(i) * time.Minute))},
			value.Entry{Key: "tags", Value: value.NewList(value.String("a"), value.String("b"), value.Null{})},
		)
	}
	return value.MustMap(value.Entry{Key: "items", Value: value.NewList(items...)})
}

func benchmarkEncode(b *testing.B, s jasn.Syntax) {
	b.ReportAllocs()
	// Bytes per op is the size of the output, as a proxy for data complexity.
	b.SetBytes(int64(len(jasn.Format(benchmarkData, s))))

	var buf bytes.Buffer
	enc := jasn.NewEncoder(&buf, s)

	b.ResetTimer()

	for b.Loop() {
		if err := enc.Encode(benchmarkData); err != nil {
			b.Fatalf("Encode failed during benchmark: %v", err)
		}
		buf.Reset()
	}
}

func BenchmarkEncodeJASN(b *testing.B) { benchmarkEncode(b, jasn.JASN) }
func BenchmarkEncodeJAML(b *testing.B) { benchmarkEncode(b, jasn.JAML) }

func benchmarkParse(b *testing.B, s jasn.Syntax) {
	input := []byte(jasn.Format(benchmarkData, s))
	b.ReportAllocs()
	b.SetBytes(int64(len(input)))

	b.ResetTimer()

	for b.Loop() {
		if _, err := jasn.Parse(input, s); err != nil {
			b.Fatalf("Parse failed during benchmark: %v", err)
		}
	}
}

func BenchmarkParseJASN(b *testing.B) { benchmarkParse(b, jasn.JASN) }
func BenchmarkParseJAML(b *testing.B) { benchmarkParse(b, jasn.JAML) }
