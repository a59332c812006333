package schema

import (
	"encoding/json"
	"io/fs"
	"slices"
	"strings"
	"testing"
)

func readSchema(t *testing.T, name string) map[string]any {
	t.Helper()

	data, err := FS.ReadFile(name)
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("%s is not a JSON object: %v", name, err)
	}
	return doc
}

func TestEmbeddedSchemas(t *testing.T) {
	t.Parallel()

	names, err := fs.Glob(FS, "*.schema.json")
	if err != nil {
		t.Fatalf("glob embedded FS: %v", err)
	}
	slices.Sort(names)
	want := []string{"config.schema.json", "tree.schema.json"}
	if !slices.Equal(names, want) {
		t.Fatalf("embedded schemas = %v, want %v", names, want)
	}

	for _, name := range names {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			doc := readSchema(t, name)
			for _, key := range []string{"$schema", "$id", "type"} {
				if _, ok := doc[key]; !ok {
					t.Errorf("%s missing %s", name, key)
				}
			}
			if id, _ := doc["$id"].(string); !strings.HasSuffix(id, "/"+name) {
				t.Errorf("$id = %q, want suffix /%s", id, name)
			}
		})
	}
}
