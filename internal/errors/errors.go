// Package errors is the single import for error handling: matching comes
// from the standard library, wrapping from pkg/errors so causes keep a stack.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

var (
	New  = stderrors.New
	Is   = stderrors.Is
	As   = stderrors.As
	Join = stderrors.Join
)

// Wrap and Wrapf return nil for a nil err.
var (
	Wrap      = pkgerrors.Wrap
	Wrapf     = pkgerrors.Wrapf
	WithStack = pkgerrors.WithStack
	Errorf    = pkgerrors.Errorf
	Cause     = pkgerrors.Cause
)
