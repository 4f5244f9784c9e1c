// Package diag defines the diagnostics reported for function listings.
//
// A Diagnostic names the function (by position and name) that broke the
// stream contract: unparsable metadata, entity containers that would nest
// incorrectly, or I/O failures around a listing. Producers push diagnostics
// through a Reporter; the CLI renders a Bag with FormatShort.
package diag
