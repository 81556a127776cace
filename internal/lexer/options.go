package lexer

import (
	"newt/internal/diag"
	"newt/internal/source"
)

type Options struct {
	Reporter diag.Reporter // может быть nil; ошибки всё равно возвращаются из Next
}

func (lx *Lexer) fail(code diag.Code, sp source.Span, err error, msg string) error {
	e := &Error{Code: code, Span: sp, Msg: msg, Err: err}
	if lx.opts.Reporter != nil {
		text := err.Error()
		if msg != "" {
			text += ": " + msg
		}
		diag.ReportError(lx.opts.Reporter, code, sp, text).Emit()
	}
	return e
}
