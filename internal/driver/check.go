package driver

import (
	"fieldgen/internal/diag"
	"fieldgen/internal/listing"
	"fieldgen/internal/script"
)

func checkFile(path string, opts Options) CheckResult {
	res := CheckResult{Path: path, Bag: diag.NewBag(opts.MaxDiagnostics)}
	reporter := &diag.BagReporter{Bag: res.Bag}

	lst, _, err := listing.Load(path)
	if err != nil {
		reportIO(reporter, diag.IOLoadFile, path, err)
		return res
	}
	funcs := lst.Funcs()
	res.Functions = len(funcs)
	res.Entities = countEntities(funcs)
	reportViolations(reporter, path, funcs)
	res.Bag.Sort()
	return res
}

func countEntities(funcs []*script.Function) int {
	n := 0
	for _, fn := range funcs {
		if md, err := fn.Meta(); err == nil && md.IsStart() {
			n++
		}
	}
	return n
}

// HasErrors reports whether any result carries an error diagnostic.
func HasErrors(results []CheckResult) bool {
	for _, r := range results {
		if r.Bag != nil && r.Bag.HasErrors() {
			return true
		}
	}
	return false
}
