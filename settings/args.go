package settings

// NewTerminalArgs carries the per-invocation overrides of a "new terminal"
// request. Every field is optional; the zero value (and a nil pointer)
// overrides nothing.
type NewTerminalArgs struct {
	// Commandline replaces the profile's command line when non-empty.
	Commandline string

	// StartingDirectory replaces the starting directory when non-empty.
	// It is applied as given; no environment expansion happens here.
	StartingDirectory string

	// TabTitle replaces the starting title when non-empty.
	TabTitle string

	// Profile selects the profile to resolve: a GUID string or an exact
	// profile name. Empty selects the configured default profile.
	Profile string
}
