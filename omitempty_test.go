package jasn_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-jasn"
	"github.com/KimNorgaard/go-jasn/bind"
	"github.com/KimNorgaard/go-jasn/value"
)

// TestMarshal_OmitEmpty tests fields declared with OptionalOmitEmpty.
func TestMarshal_OmitEmpty(t *testing.T) {
	type OmitStruct struct {
		String  string
		Int     int64
		Float   float64
		Bool    bool
		Slice   []string
		Map     map[string]int64
		Pointer *int64
		Bytes   []byte
		Time    time.Time
		Any     value.Value
	}
	codec := bind.Record(
		bind.OptionalOmitEmpty("string", bind.String, func(s *OmitStruct) *string { return &s.String }),
		bind.OptionalOmitEmpty("int", bind.Int, func(s *OmitStruct) *int64 { return &s.Int }),
		bind.OptionalOmitEmpty("float", bind.Float, func(s *OmitStruct) *float64 { return &s.Float }),
		bind.OptionalOmitEmpty("bool", bind.Bool, func(s *OmitStruct) *bool { return &s.Bool }),
		bind.OptionalOmitEmpty("slice", bind.ListOf(bind.String), func(s *OmitStruct) *[]string { return &s.Slice }),
		bind.OptionalOmitEmpty("map", bind.MapOf(bind.Int), func(s *OmitStruct) *map[string]int64 { return &s.Map }),
		bind.OptionalOmitEmpty("pointer", bind.Nullable(bind.Int), func(s *OmitStruct) **int64 { return &s.Pointer }),
		bind.OptionalOmitEmpty("bytes", bind.Bytes, func(s *OmitStruct) *[]byte { return &s.Bytes }),
		bind.OptionalOmitEmpty("time", bind.Time, func(s *OmitStruct) *time.Time { return &s.Time }),
		bind.OptionalOmitEmpty("any", bind.Any, func(s *OmitStruct) *value.Value { return &s.Any }),
	)

	t.Run("All fields are zero-valued and should be omitted", func(t *testing.T) {
		b := jasn.Marshal(OmitStruct{}, jasn.JASN, codec, jasn.Compact())
		require.Equal(t, "{}", string(b))
	})

	t.Run("All fields have non-zero values and should be included", func(t *testing.T) {
		pointerVal := int64(123)
		v := OmitStruct{
			String:  "hello",
			Int:     1,
			Float:   3.14,
			Bool:    true,
			Slice:   []string{"a"},
			Map:     map[string]int64{"a": 1},
			Pointer: &pointerVal,
			Bytes:   []byte{0},
			Time:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
			Any:     value.String("x"),
		}
		b := jasn.Marshal(v, jasn.JASN, codec, jasn.Compact())
		expected := `{any:"x",bool:true,bytes:b64"AA==",float:3.14,int:1,map:{a:1},pointer:123,slice:["a"],string:"hello",time:ts"2024-01-02T03:04:05Z"}`
		require.Equal(t, expected, string(b))

		back, err := jasn.Unmarshal(b, jasn.JASN, codec)
		require.NoError(t, err)
		require.Equal(t, v, back)
	})

	t.Run("Empty but non-nil collections are omitted", func(t *testing.T) {
		v := OmitStruct{Slice: []string{}, Map: map[string]int64{}, Bytes: []byte{}, Any: value.NewList()}
		b := jasn.Marshal(v, jasn.JAML, codec)
		require.Equal(t, "{}\n", string(b))
	})
}
