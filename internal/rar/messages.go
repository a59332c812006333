package rar

import "strings"

// TaskName is the name of the MSBuild task whose invocations are analyzed.
const TaskName = "ResolveAssemblyReference"

// Node names the resolution task writes into its subtree.
const (
	ParametersFolder = "Parameters"
	ResultsFolder    = "Results"
	SearchPathsParam = "SearchPaths"
	AssembliesParam  = "Assemblies"
	PrivateMetadata  = "Private"
)

// Folders the analyzer adds to each invocation and to the build root.
const (
	UsedLocationsFolder   = "Used locations"
	UnusedLocationsFolder = "Unused locations"
	UsedReportFolder      = "Used search-path locations"
	UnusedReportFolder    = "Unused search-path locations"
)

// Message prefixes emitted by the resolution task. Each is followed by a
// quoted value running to the end of the line.
const (
	resolvedFilePathPrefix = `Resolved file path is "`
	foundAtLocationPrefix  = `Reference found at search path location "`
	requiredByPrefix       = `Required by "`
)

// Reference record name prefixes for transitively resolved references.
const (
	dependencyPrefix        = "Dependency "
	unifiedDependencyPrefix = "Unified Dependency "
)

// notCopyLocalPrivateMixed is the exact sentence the task logs when a dependency
// is not copied because its source items disagree on Private.
const notCopyLocalPrivateMixed = `This reference is not "CopyLocal" because at least one source item had "Private" set to "false" and no source items had "Private" set to "true".`

// quotedValue strips prefix and the closing quote from a message line.
// The task terminates some sentences with a period after the closing quote,
// so a trailing `".` is removed as well. ok is false if text does not start with prefix.
func quotedValue(text, prefix string) (value string, ok bool) {
	rest, ok := strings.CutPrefix(text, prefix)
	if !ok {
		return "", false
	}
	if v, found := strings.CutSuffix(rest, `".`); found {
		return v, true
	}
	return strings.TrimSuffix(rest, `"`), true
}

func isDependencyRecord(name string) bool {
	return strings.HasPrefix(name, dependencyPrefix) || strings.HasPrefix(name, unifiedDependencyPrefix)
}
