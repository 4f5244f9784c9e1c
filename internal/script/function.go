package script

// Function is one decompiled routine as handed over by the analyzer.
// Body holds the already rendered statement lines of the routine.
type Function struct {
	Name     string
	Metadata string
	Body     []string
}

// Meta parses the function's metadata record. A malformed record yields the
// zero view together with the parse error.
func (f *Function) Meta() (MetaData, error) {
	if f == nil {
		return MetaData{characterID: NoCharacter}, nil
	}
	return ParseMetaData(f.Metadata)
}
