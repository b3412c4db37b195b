package main

import (
	"encoding/base64"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/KimNorgaard/go-jasn/value"
)

// toYAML exports v as YAML. The export is lossy: binary values become base64
// strings and timestamps become RFC 3339 strings. Map order is kept.
func toYAML(v value.Value) (string, error) {
	b, err := yaml.Marshal(yamlValue(v))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func yamlValue(v value.Value) any {
	switch n := v.(type) {
	case nil, value.Null:
		return nil
	case value.Bool:
		return bool(n)
	case value.Int:
		return int64(n)
	case value.Float:
		return float64(n)
	case value.String:
		return string(n)
	case value.Binary:
		return base64.StdEncoding.EncodeToString(n.Bytes())
	case value.Timestamp:
		return n.Time().Format(time.RFC3339Nano)
	case *value.List:
		items := make([]any, n.Len())
		for i, item := range n.Items() {
			items[i] = yamlValue(item)
		}
		return items
	case *value.Map:
		ms := make(yaml.MapSlice, 0, n.Len())
		for _, e := range n.Entries() {
			ms = append(ms, yaml.MapItem{Key: e.Key, Value: yamlValue(e.Value)})
		}
		return ms
	}
	return nil
}
