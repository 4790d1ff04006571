// File: disposex.go
// Title: Closer Helpers
// Description: Adapters and defer helpers around io.Closer: nil-safe close,
//              idempotent close, error joining and scoped use.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package disposex

import (
	"io"
	"sync"

	"github.com/msto63/toolkit/core/log"
	"github.com/msto63/toolkit/utils/reflectx"

	tkerror "github.com/msto63/toolkit/core/error"
	tkerrors "github.com/msto63/toolkit/core/errors"
)

// CloserFunc adapts a function to io.Closer
type CloserFunc func() error

// Close calls f
func (f CloserFunc) Close() error {
	return f()
}

// NopCloser returns a closer that does nothing
func NopCloser() io.Closer {
	return CloserFunc(func() error { return nil })
}

type onceCloser struct {
	once   sync.Once
	closer io.Closer
	err    error
}

func (o *onceCloser) Close() error {
	o.once.Do(func() {
		o.err = Close(o.closer)
	})
	return o.err
}

// Once wraps c so that only the first Close reaches it. Later calls
// return the first result.
func Once(c io.Closer) io.Closer {
	if o, ok := c.(*onceCloser); ok {
		return o
	}
	return &onceCloser{closer: c}
}

// Close closes c and wraps a failure as DISPOSEX_CLOSE_FAILED. A nil
// closer, or an interface holding a nil pointer or func, is a no-op.
func Close(c io.Closer) error {
	if c == nil || reflectx.IsNil(c) {
		return nil
	}
	if err := c.Close(); err != nil {
		return closeError(c, err)
	}
	return nil
}

// CloseQuietly closes c and logs a failure at warn level instead of
// returning it. A nil logger uses the package default logger.
func CloseQuietly(c io.Closer, logger *log.Logger) {
	err := Close(c)
	if err == nil {
		return
	}
	if logger == nil {
		logger = log.GetDefault()
	}
	logger.WarnWithErr("close failed", err, log.Field("closer", reflectx.TypeName(c)))
}

// CloseOnError closes c only when *errp is non-nil, joining the close
// error into it. Meant for defer in constructors that hand c to the
// caller on success:
//
//	f, err := os.Open(path)
//	if err != nil { return nil, err }
//	defer disposex.CloseOnError(&err, f)
func CloseOnError(errp *error, c io.Closer) {
	if errp == nil || *errp == nil {
		return
	}
	if err := Close(c); err != nil {
		*errp = tkerrors.Join(*errp, err)
	}
}

// CloseAndJoin always closes c and joins a close failure into *errp
func CloseAndJoin(errp *error, c io.Closer) {
	err := Close(c)
	if err == nil || errp == nil {
		return
	}
	if *errp == nil {
		*errp = err
		return
	}
	*errp = tkerrors.Join(*errp, err)
}

// Using runs fn with c and closes c afterwards, also when fn panics.
// Errors from fn and Close are joined.
func Using[C io.Closer](c C, fn func(C) error) (err error) {
	defer CloseAndJoin(&err, c)
	return fn(c)
}

func closeError(c io.Closer, cause error) error {
	return tkerrors.NewErrorBuilder(tkerrors.ModuleDisposex).
		Operation("close").
		Cause(cause).
		Messagef("closing %s failed", reflectx.TypeName(c)).
		Detail("closer", reflectx.TypeName(c)).
		Severity(tkerror.SeverityLow).
		Build()
}
