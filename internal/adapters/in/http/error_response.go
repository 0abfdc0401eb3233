package http

import (
	"errors"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/pkg/errs"
)

// ErrorResponse is the deterministic JSON shape for failed deliveries.
// Type is always "error"; Kind classifies the failure; Stage and Cause are
// present for upstream provider failures.
type ErrorResponse struct {
	Type    string `json:"type"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Stage   string `json:"stage,omitempty"`
	Cause   string `json:"cause,omitempty"`
}

// NewErrorResponse classifies err into the tagged error shape.
func NewErrorResponse(err error) ErrorResponse {
	resp := ErrorResponse{
		Type:    "error",
		Kind:    "internal",
		Message: err.Error(),
	}

	var upstream *errs.UpstreamError
	var required *errs.ValueIsRequiredError
	var invalid *errs.ValueIsInvalidError
	var notFound *errs.ObjectNotFoundError

	switch {
	case errors.As(err, &upstream):
		resp.Kind = "upstream"
		resp.Stage = upstream.Stage
		if upstream.Cause != nil {
			resp.Cause = upstream.Cause.Error()
		}
	case errors.Is(err, commands.ErrMissingLabelID):
		resp.Kind = "missing_label"
	case errors.As(err, &required):
		resp.Kind = "value_required"
	case errors.As(err, &invalid):
		resp.Kind = "value_invalid"
	case errors.As(err, &notFound):
		resp.Kind = "not_found"
	}

	return resp
}
