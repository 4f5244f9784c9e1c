package driver

import (
	"errors"

	"fieldgen/internal/codegen"
	"fieldgen/internal/diag"
	"fieldgen/internal/script"
)

// codeFor maps a stream violation onto its diagnostic code.
func codeFor(err *codegen.Error) diag.Code {
	switch err.Kind {
	case codegen.KindBadMetadata:
		if errors.Is(err.Err, script.ErrBadCharacter) {
			return diag.MetaBadCharacter
		}
		return diag.MetaBadRecord
	case codegen.KindEntityAlreadyOpen:
		return diag.GenEntityAlreadyOpen
	case codegen.KindNoEntityOpen:
		return diag.GenNoEntityOpen
	case codegen.KindEntityMismatch:
		return diag.GenEntityMismatch
	case codegen.KindEmptyEntity:
		return diag.GenEmptyEntity
	case codegen.KindUnclosedEntity:
		return diag.GenUnclosedEntity
	default:
		return diag.UnknownCode
	}
}

// reportViolations validates funcs and reports every violation found.
func reportViolations(r diag.Reporter, path string, funcs []*script.Function) int {
	violations := codegen.Validate(funcs)
	for _, v := range violations {
		r.Report(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     codeFor(v.Err),
			Message:  v.Err.Error(),
			Path:     path,
			Index:    v.Index,
			Function: v.Err.Function,
		})
	}
	return len(violations)
}

func reportIO(r diag.Reporter, code diag.Code, path string, err error) {
	r.Report(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     code,
		Message:  err.Error(),
		Path:     path,
		Index:    -1,
	})
}
