// Package model provides shared data types used across multiple internal packages.
// This package exists so that the analysis driver and the output writer can
// share result types without importing each other.
package model

import "time"

// InvocationResult describes one analyzed ResolveAssemblyReference invocation.
type InvocationResult struct {
	Project  string // Enclosing project name, empty if the task is not under a project
	Task     string
	Duration time.Duration
	Used     []string // Search paths used by this invocation, in declaration order
	Unused   []string // Search paths not used by this invocation, in declaration order
}

// Summary contains aggregated results of analyzing one build.
type Summary struct {
	Invocations     []InvocationResult
	TotalDuration   time.Duration
	UsedLocations   []string // Build-wide used search paths, sorted
	UnusedLocations []string // Build-wide unused search paths, sorted
	PrivateCopied   int      // Private metadata entries copied onto dependency messages
}

// HasLocations reports whether any search path was classified.
func (s *Summary) HasLocations() bool {
	return len(s.UsedLocations) > 0 || len(s.UnusedLocations) > 0
}
