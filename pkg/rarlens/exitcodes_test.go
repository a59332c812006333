package rarlens_test

import (
	"testing"

	"github.com/AndreyAkinshin/rarlens/internal/errors"
	"github.com/AndreyAkinshin/rarlens/pkg/rarlens"
)

// TestExitCodeConsistency verifies that public exit code constants match
// the internal errors package constants.
func TestExitCodeConsistency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		public   int
		internal int
		expected int
	}{
		{"Success", rarlens.ExitSuccess, errors.ExitSuccess, 0},
		{"Failure/RuntimeError", rarlens.ExitFailure, errors.ExitRuntimeError, 1},
		{"ConfigError", rarlens.ExitConfigError, errors.ExitConfigError, 2},
		{"InputError", rarlens.ExitInputError, errors.ExitInputError, 3},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.public != tt.expected {
				t.Errorf("rarlens constant = %d, want %d", tt.public, tt.expected)
			}
			if tt.public != tt.internal {
				t.Errorf("exit code mismatch: rarlens constant = %d, errors constant = %d", tt.public, tt.internal)
			}
		})
	}
}
