package http

import (
	"context"
	"errors"
	"fmt"

	"github.com/resumebase/visitcount/constants"
	"github.com/resumebase/visitcount/counter"
)

// Handler dispatches one request to the counter service by HTTP method and
// wraps the result in the JSON envelope. It holds no per-request state.
type Handler struct {
	svc *counter.Service
}

func NewHandler(svc *counter.Service) *Handler {
	return &Handler{svc: svc}
}

// Response is the transport-independent result of a dispatch: a status code
// and the envelope body. Both adapters (Lambda and net/http) serialize it.
type Response struct {
	Status int
	Body   map[string]any
}

// ValidationError marks a request rejected before any store access.
type ValidationError struct {
	Method string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("method not allowed: %q", e.Method)
}

// CORSHeaders returns the fixed cross-origin headers carried on every
// response, preflight and error responses included.
func CORSHeaders() map[string]string {
	return map[string]string{
		constants.HeaderCORSAllowOrigin:  constants.CORSAllowOrigin,
		constants.HeaderCORSAllowHeaders: constants.CORSAllowHeaders,
		constants.HeaderCORSAllowMethods: constants.CORSAllowMethods,
	}
}

// Dispatch routes a single request. Errors never escape: they are mapped to
// the 405/500 envelopes here, at the one outer boundary.
func (h *Handler) Dispatch(ctx context.Context, method string) Response {
	body, err := h.do(ctx, method)
	if err != nil {
		return errorResponse(err)
	}
	return Response{Status: 200, Body: body}
}

func (h *Handler) do(ctx context.Context, method string) (map[string]any, error) {
	switch method {
	case constants.HTTPMethodOPTIONS:
		// Preflight never touches the store.
		return map[string]any{"message": constants.MsgPreflightOK}, nil
	case constants.HTTPMethodGET:
		n, err := h.svc.Get(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"count":   n,
			"message": constants.MsgCountRetrieved,
		}, nil
	case constants.HTTPMethodPOST:
		n, err := h.svc.Increment(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"count":   n,
			"message": constants.MsgCountIncremented,
		}, nil
	default:
		return nil, &ValidationError{Method: method}
	}
}

func errorResponse(err error) Response {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return Response{
			Status: 405,
			Body:   map[string]any{"error": constants.ResponseMethodNotAllowed},
		}
	}
	return internalErrorResponse()
}

func internalErrorResponse() Response {
	return Response{
		Status: 500,
		Body: map[string]any{
			"error":   constants.ResponseInternalError,
			"message": constants.MsgUnexpectedError,
		},
	}
}
