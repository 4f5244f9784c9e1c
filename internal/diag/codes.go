package diag

import "fmt"

// Code identifies a class of diagnostic.
type Code uint16

const (
	UnknownCode Code = 0

	// Metadata records.
	MetaBadRecord    Code = 1001
	MetaBadCharacter Code = 1002

	// Entity nesting.
	GenEntityAlreadyOpen Code = 2001
	GenNoEntityOpen      Code = 2002
	GenEntityMismatch    Code = 2003
	GenEmptyEntity       Code = 2004
	GenUnclosedEntity    Code = 2005

	// I/O.
	IOLoadFile  Code = 3001
	IOWriteFile Code = 3002
)

var codeDescription = map[Code]string{
	UnknownCode:          "Unknown error",
	MetaBadRecord:        "Malformed metadata record",
	MetaBadCharacter:     "Invalid character id",
	GenEntityAlreadyOpen: "Entity starts while another entity is open",
	GenNoEntityOpen:      "Entity member or end without an open entity",
	GenEntityMismatch:    "Function does not belong to the open entity",
	GenEmptyEntity:       "Entity boundary without an entity name",
	GenUnclosedEntity:    "Entity is never closed",
	IOLoadFile:           "Failed to load listing",
	IOWriteFile:          "Failed to write output",
}

// ID returns the stable textual code, e.g. "GEN2001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("META%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("GEN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) String() string {
	return c.ID()
}

// Title returns a short human description of the code.
func (c Code) Title() string {
	if d, ok := codeDescription[c]; ok {
		return d
	}
	return codeDescription[UnknownCode]
}
