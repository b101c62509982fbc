package feedback

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/medgate/medgate/internal/platform/gateway"
)

// FromError maps a failed operation to a response status and envelope.
// Backend rejections keep their status and flattened message; transport
// failures become a 502 with the generic message; anything else is a local
// validation failure reported as a 400.
func FromError(err error) (int, Envelope) {
	var apiErr *gateway.APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.StatusCode, Error(apiErr.Message())
	case isTransport(err):
		return http.StatusBadGateway, Error(gateway.GenericFailure)
	default:
		return http.StatusBadRequest, Error(err.Error())
	}
}

func isTransport(err error) bool {
	var urlErr *url.Error
	return errors.As(err, &urlErr) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled)
}
