package integration

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/AndreyAkinshin/rarlens/internal/analysis"
	"github.com/AndreyAkinshin/rarlens/internal/logtree"
	"github.com/AndreyAkinshin/rarlens/internal/rar"
)

// analysisCase is a tree document paired with the expected analysis result.
type analysisCase struct {
	Name        string    `yaml:"-"`
	Description string    `yaml:"description"`
	Tree        yaml.Node `yaml:"tree"`
	Expect      struct {
		Used              []string `yaml:"used"`
		Unused            []string `yaml:"unused"`
		PrivateCopied     int      `yaml:"private_copied"`
		InvocationFolders bool     `yaml:"invocation_folders"`
	} `yaml:"expect"`
}

// loadCases loads every case from test/fixtures/cases/*.yaml.
func loadCases(t *testing.T) []analysisCase {
	t.Helper()
	files, err := filepath.Glob(filepath.Join(fixturesDir(), "cases", "*.yaml"))
	if err != nil {
		t.Fatalf("glob cases: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("no analysis cases found")
	}

	cases := make([]analysisCase, 0, len(files))
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		var c analysisCase
		if err := yaml.Unmarshal(data, &c); err != nil {
			t.Fatalf("parse %s: %v", f, err)
		}
		c.Name = strings.TrimSuffix(filepath.Base(f), ".yaml")
		cases = append(cases, c)
	}
	return cases
}

func TestAnalysisCases(t *testing.T) {
	t.Parallel()

	for _, tc := range loadCases(t) {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()

			data, err := yaml.Marshal(&tc.Tree)
			if err != nil {
				t.Fatalf("re-encode tree: %v", err)
			}
			root, err := logtree.Decode(data)
			if err != nil {
				t.Fatalf("decode tree: %v", err)
			}

			summary := analysis.Run(root, analysis.Options{})

			if !sameStrings(summary.UsedLocations, tc.Expect.Used) {
				t.Errorf("used = %v, want %v (%s)", summary.UsedLocations, tc.Expect.Used, tc.Description)
			}
			if !sameStrings(summary.UnusedLocations, tc.Expect.Unused) {
				t.Errorf("unused = %v, want %v (%s)", summary.UnusedLocations, tc.Expect.Unused, tc.Description)
			}
			if summary.PrivateCopied != tc.Expect.PrivateCopied {
				t.Errorf("private copied = %d, want %d", summary.PrivateCopied, tc.Expect.PrivateCopied)
			}

			hasFolders := root.FindFirst(func(n *logtree.Node) bool {
				return n.Kind == logtree.KindFolder &&
					(n.Name == rar.UsedLocationsFolder || n.Name == rar.UnusedLocationsFolder)
			}) != nil
			if hasFolders != tc.Expect.InvocationFolders {
				t.Errorf("invocation folders present = %v, want %v", hasFolders, tc.Expect.InvocationFolders)
			}
		})
	}
}

// sameStrings treats nil and empty slices as equal.
func sameStrings(got, want []string) bool {
	if len(got) == 0 && len(want) == 0 {
		return true
	}
	return reflect.DeepEqual(got, want)
}
