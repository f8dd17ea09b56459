package diagfmt

// PrettyOpts configures the human-readable diagnostic renderer.
type PrettyOpts struct {
	// Color enables ANSI colors for severities and codes.
	Color bool
	// Context is the number of source lines shown before the offending line.
	Context int
}
