package codefmt

import (
	"errors"
	"go/token"
)

// Poser is anything with a source position, such as a declaration or an
// object.
type Poser interface{ Pos() token.Pos }

// CodeError is a diagnostic about user source code. It spans the identifier
// it points at when the identifier is known.
type CodeError struct {
	msg      string
	pos, end token.Pos
	position token.Position
}

// Pos returns the start of the diagnosed code. It may be invalid.
func (e *CodeError) Pos() token.Pos { return e.pos }

// End returns the end of the diagnosed code. It may be invalid.
func (e *CodeError) End() token.Pos { return e.end }

// Message returns the diagnostic without its position.
func (e *CodeError) Message() string { return e.msg }

// Unwrap returns the diagnostic without its position as an error.
func (e *CodeError) Unwrap() error { return errors.New(e.msg) }

// Error prefixes the message with "file:line:column" if the position is
// known.
func (e *CodeError) Error() string {
	if !e.position.IsValid() {
		return e.msg
	}
	return FormatPosition(e.position) + ": " + e.msg
}

// Errorf creates a [CodeError] at poser, which may be nil. Objects and types
// in args are formatted by the enumjson verbs (see [Formatter.Sprintf]).
//
// Panics if any of args is an error. Diagnostics do not wrap errors, so pass
// err.Error() instead.
func (f Formatter) Errorf(poser Poser, format string, args ...any) error {
	for _, arg := range args {
		if _, ok := arg.(error); ok {
			panic("codefmt: diagnostic cannot wrap an error")
		}
	}

	e := &CodeError{msg: f.Sprintf(format, args...)}
	if poser != nil {
		e.pos = poser.Pos()
		if named, ok := poser.(interface{ Name() string }); ok && e.pos.IsValid() {
			e.end = e.pos + token.Pos(len(named.Name()))
		}
		e.position = f.Position(e.pos)
	}
	return e
}

type pos token.Pos

func (p pos) Pos() token.Pos { return token.Pos(p) }

// Pos wraps a bare position as a [Poser].
func Pos(p token.Pos) Poser { return pos(p) }
