package infra

import (
	"errors"
	"log/slog"

	"loginflow/internal/pkg/errs"
)

type BackendErrorKind string

// BackendError carries the low-level cause of a failed backend call. It stays in
// logs; callers only ever see the generic AuthError built on top of it.
type BackendError struct {
	Kind BackendErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e BackendError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e BackendError) Unwrap() error {
	return e.err
}

func WrapBackendErr(slogger *slog.Logger, kind BackendErrorKind, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("cause", err.Error()))
	}

	slogger.Warn("Authentication backend error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return BackendError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind BackendErrorKind) bool {
	var e BackendError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

const (
	KindTransport BackendErrorKind = "TRANSPORT"
	KindTimeout   BackendErrorKind = "TIMEOUT"
	KindDecode    BackendErrorKind = "DECODE"
	KindRejected  BackendErrorKind = "REJECTED"
)
