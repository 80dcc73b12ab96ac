package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
)

type FailureReason string

const (
	ReasonTimeout       FailureReason = "timeout"
	ReasonConfiguration FailureReason = "configuration"
	ReasonNetwork       FailureReason = "network"
	ReasonEmptyResponse FailureReason = "empty_response"
	ReasonUpstream      FailureReason = "upstream"
)

var (
	ErrMissingAPIKey = errors.New("llm: api key is not configured")
	ErrNoCandidates  = errors.New("llm: no response candidates")
)

// GenerationError is the typed failure returned by every provider.
type GenerationError struct {
	Reason FailureReason
	Err    error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("llm %s: %v", e.Reason, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func NewError(reason FailureReason, err error) *GenerationError {
	return &GenerationError{Reason: reason, Err: err}
}

// ReasonOf classifies any error coming out of a provider call. Errors that
// are not *GenerationError are classified by shape.
func ReasonOf(err error) FailureReason {
	if err == nil {
		return ""
	}
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr.Reason
	}
	return Classify(err).Reason
}

// Classify wraps a raw transport error with the matching reason.
func Classify(err error) *GenerationError {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return NewError(ReasonTimeout, err)
	}
	if errors.Is(err, context.Canceled) {
		return NewError(ReasonNetwork, err)
	}
	if errors.Is(err, ErrMissingAPIKey) {
		return NewError(ReasonConfiguration, err)
	}
	if errors.Is(err, ErrNoCandidates) {
		return NewError(ReasonEmptyResponse, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return NewError(ReasonTimeout, err)
		}
		return NewError(ReasonNetwork, err)
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return NewError(ReasonNetwork, err)
	}
	return NewError(ReasonUpstream, err)
}

// FromContext reports why ctx ended, or nil while it is live. A missed
// deadline is a timeout; a cancelled caller is a dropped connection.
func FromContext(ctx context.Context, err error) *GenerationError {
	ctxErr := ctx.Err()
	if ctxErr == nil {
		return nil
	}
	if err == nil {
		err = ctxErr
	}
	if errors.Is(ctxErr, context.DeadlineExceeded) {
		return NewError(ReasonTimeout, err)
	}
	return NewError(ReasonNetwork, err)
}

// ReasonForStatus maps a non-200 HTTP status from a generative endpoint.
func ReasonForStatus(status int) FailureReason {
	switch {
	case status == 400 || status == 401 || status == 403:
		return ReasonConfiguration
	case status == 408 || status == 504:
		return ReasonTimeout
	default:
		return ReasonUpstream
	}
}
