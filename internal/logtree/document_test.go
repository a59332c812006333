package logtree

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const sampleYAML = `
kind: build
name: Build
children:
  - kind: task
    name: ResolveAssemblyReference
    duration: 250ms
    children:
      - kind: folder
        name: Parameters
        children:
          - kind: parameter
            name: SearchPaths
            children:
              - {kind: item, text: 'C:\libs'}
              - {kind: item, text: '{HintPathFromItem}'}
      - kind: folder
        name: Results
        children:
          - kind: parameter
            name: Dependency System.Memory
            children:
              - kind: item
                text: 'Required by "Foo".'
                children:
                  - {kind: metadata, name: Private, value: "true"}
`

func TestDecode_YAML(t *testing.T) {
	t.Parallel()

	root, err := Decode([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if root.Kind != KindBuild || root.Name != "Build" {
		t.Errorf("root = %v %q, want build Build", root.Kind, root.Name)
	}

	task := root.FindFirstOfKind(KindTask, nil)
	if task == nil {
		t.Fatal("task not found")
	}
	if task.Duration != 250*time.Millisecond {
		t.Errorf("Duration = %v, want 250ms", task.Duration)
	}

	sp := task.FindFirstNamed(KindParameter, "SearchPaths")
	if sp == nil {
		t.Fatal("SearchPaths not found")
	}
	if got := names(sp.Children()); len(got) != 2 || got[0] != `C:\libs` || got[1] != "{HintPathFromItem}" {
		t.Errorf("SearchPaths = %v", got)
	}

	md := root.FindFirstOfKind(KindMetadata, nil)
	if md == nil || md.String() != "Private = true" {
		t.Errorf("metadata = %v, want Private = true", md)
	}
	if md.Parent().Text != `Required by "Foo".` {
		t.Errorf("metadata parent = %q", md.Parent().Text)
	}
}

func TestDecode_JSON(t *testing.T) {
	t.Parallel()

	data := `{"kind": "build", "children": [{"kind": "task", "name": "T", "duration": "1s"}]}`
	root, err := Decode([]byte(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	task := root.FindChild(KindTask, "T")
	if task == nil || task.Duration != time.Second {
		t.Errorf("task = %+v, want T with 1s", task)
	}
}

func TestDecode_JSONEscapes(t *testing.T) {
	t.Parallel()

	data := `  {"kind": "build", "name": "bin\/Debug", "children": [
		{"kind": "message", "text": "caf\u00e9 \ud83d\ude00"}
	]}`
	root, err := Decode([]byte(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if root.Name != "bin/Debug" {
		t.Errorf("Name = %q, want %q", root.Name, "bin/Debug")
	}
	children := root.Children()
	if len(children) != 1 {
		t.Fatalf("len(Children()) = %d, want 1", len(children))
	}
	if want := "café 😀"; children[0].Text != want {
		t.Errorf("Text = %q, want %q", children[0].Text, want)
	}
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"empty", "", "empty"},
		{"malformed", "kind: [", "failed to parse"},
		{"unknown kind", "kind: widget", "tree validation failed"},
		{"missing kind", "name: Build", "tree validation failed"},
		{"unquoted boolean value", "kind: metadata\nname: Private\nvalue: true", "tree validation failed"},
		{"unparsable duration", "kind: build\nchildren:\n  - kind: task\n    duration: 1.2.3s", "$.children[0]: invalid duration"},
		{"truncated json", `{"kind": "build", "children": [`, "failed to parse"},
		{"json unknown kind", `{"kind": "widget"}`, "tree validation failed"},
		{"json numeric value", `{"kind": "metadata", "name": "Private", "value": 1}`, "tree validation failed"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Decode([]byte(tt.data))
			if err == nil {
				t.Fatal("Decode() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestDecode_DurationErrorIsDocumentError(t *testing.T) {
	t.Parallel()

	_, err := Decode([]byte("kind: task\nduration: 1.2.3s"))
	var docErr *DocumentError
	if !errors.As(err, &docErr) {
		t.Fatalf("error = %v, want *DocumentError", err)
	}
	if docErr.Path != "$" {
		t.Errorf("Path = %q, want $", docErr.Path)
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, format := range []string{FormatYAML, FormatJSON} {
		format := format
		t.Run(format, func(t *testing.T) {
			t.Parallel()

			root, err := Decode([]byte(sampleYAML))
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			data, err := Encode(root, format)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			again, err := Decode(data)
			if err != nil {
				t.Fatalf("Decode(Encode()) error = %v\n%s", err, data)
			}

			var before, after []string
			collect := func(dst *[]string) func(*Node) bool {
				return func(n *Node) bool {
					*dst = append(*dst, n.Kind.String()+"|"+n.Name+"|"+n.Text+"|"+n.Value+"|"+n.Duration.String())
					return true
				}
			}
			root.Walk(collect(&before))
			again.Walk(collect(&after))

			if strings.Join(before, "\n") != strings.Join(after, "\n") {
				t.Errorf("round trip mismatch:\nbefore:\n%s\nafter:\n%s", strings.Join(before, "\n"), strings.Join(after, "\n"))
			}
		})
	}
}

func TestEncode_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	if _, err := Encode(New(KindBuild, "Build"), "xml"); err == nil {
		t.Error("Encode(xml) expected error")
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "build.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0644); err != nil {
		t.Fatal(err)
	}

	root, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if root.Name != "Build" {
		t.Errorf("root.Name = %q, want Build", root.Name)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load(missing) expected error")
	}
}

func TestDecodeReader(t *testing.T) {
	t.Parallel()

	root, err := DecodeReader(strings.NewReader(`{"kind": "build", "name": "B"}`))
	if err != nil {
		t.Fatalf("DecodeReader() error = %v", err)
	}
	if root.Name != "B" {
		t.Errorf("root.Name = %q, want B", root.Name)
	}
}
