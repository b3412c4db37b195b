// Package testutil gives tests access to the shared document corpus.
package testutil

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
)

// TestdataFS holds the embedded test data files.
//
//go:embed testdata
var TestdataFS embed.FS

// Dir is the corpus directory relative to the module root, for tests that
// rewrite golden files on disk.
const Dir = "internal/testutil/testdata"

// ReadTestData reads and returns the content of an embedded test file.
func ReadTestData(name string) ([]byte, error) {
	data, err := fs.ReadFile(TestdataFS, "testdata/"+name)
	if err != nil {
		return nil, fmt.Errorf("failed to read test data file '%s': %w", name, err)
	}
	return data, nil
}

// Documents returns the names of the embedded .jasn and .jaml documents.
func Documents() ([]string, error) {
	var names []string
	for _, pattern := range []string{"testdata/*.jasn", "testdata/*.jaml"} {
		matches, err := fs.Glob(TestdataFS, pattern)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			names = append(names, path.Base(m))
		}
	}
	return names, nil
}

// GoldenName returns the golden file name paired with a document.
func GoldenName(doc string) string {
	return strings.TrimSuffix(doc, filepath.Ext(doc)) + ".golden"
}
