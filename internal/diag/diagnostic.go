package diag

// Diagnostic is one finding about a listing.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Path     string // listing path
	Index    int    // function position in the stream, -1 when not tied to one
	Function string
}
