package diag

// Reporter receives diagnostics from producers.
type Reporter interface {
	Report(d Diagnostic)
}

// BagReporter adds every report to a Bag.
type BagReporter struct {
	Bag *Bag
}

func (r *BagReporter) Report(d Diagnostic) {
	if r == nil || r.Bag == nil {
		return
	}
	r.Bag.Add(d)
}
