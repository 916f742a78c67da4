package sip

import (
	"fmt"

	"github.com/ghettovoice/sipmsg/header"
	"github.com/ghettovoice/sipmsg/internal/errorutil"
)

// Error is a sentinel error of the package.
// See [errorutil.Error].
type Error = errorutil.Error

const (
	// ErrInvalidStartLine is returned for a malformed request or status line.
	ErrInvalidStartLine errorutil.GrammarError = "invalid start line"
	// ErrInvalidMessage is returned for a message that fails validation
	// or is rejected due to an invalid header.
	ErrInvalidMessage errorutil.GrammarError = "invalid message"
	// ErrMessageTooLarge is returned when the message exceeds [ParseOptions.MaxMessageSize].
	ErrMessageTooLarge Error = "message too large"
	// ErrInvalidArgument is returned for nil or malformed arguments.
	ErrInvalidArgument = errorutil.ErrInvalidArgument

	errMissHdr Error = "missing mandatory header"
)

func newStartLineErr(format string, args ...any) error {
	return errorutil.NewWrapperError(ErrInvalidStartLine, fmt.Sprintf("invalid "+format, args...)) //errtrace:skip
}

func newMissHdrErr(name header.Name) error {
	return fmt.Errorf("%w %q", errMissHdr, name) //errtrace:skip
}

// NewInvalidArgumentError creates a new error with [ErrInvalidArgument] or
// wraps provided error with [ErrInvalidArgument].
func NewInvalidArgumentError(args ...any) error {
	return errorutil.NewInvalidArgumentError(args...) //errtrace:skip
}
