package feedback

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/medgate/medgate/internal/platform/gateway"
)

func TestSuccessEnvelope(t *testing.T) {
	env := Success([]int{1, 2}, "Saved")
	if env.Severity != SeveritySuccess {
		t.Errorf("unexpected severity: %q", env.Severity)
	}
	if env.ExpiresInMS != DisplayMS {
		t.Errorf("unexpected expiry: %d", env.ExpiresInMS)
	}
	if env.Message != "Saved" {
		t.Errorf("unexpected message: %q", env.Message)
	}
}

func TestFromErrorBackendRejection(t *testing.T) {
	err := fmt.Errorf("save: %w", &gateway.APIError{
		StatusCode: http.StatusBadRequest,
		Body:       []byte(`{"chief_complaint":["This field is required."]}`),
	})
	status, env := FromError(err)
	if status != http.StatusBadRequest {
		t.Errorf("unexpected status: %d", status)
	}
	if env.Message != "chief_complaint: This field is required." {
		t.Errorf("unexpected message: %q", env.Message)
	}
	if env.Severity != SeverityError {
		t.Errorf("unexpected severity: %q", env.Severity)
	}
}

func TestFromErrorTransport(t *testing.T) {
	err := fmt.Errorf("GET http://x: %w", &url.Error{Op: "Get", URL: "http://x", Err: context.DeadlineExceeded})
	status, env := FromError(err)
	if status != http.StatusBadGateway {
		t.Errorf("unexpected status: %d", status)
	}
	if env.Message != gateway.GenericFailure {
		t.Errorf("unexpected message: %q", env.Message)
	}
}

func TestFromErrorLocalValidation(t *testing.T) {
	status, env := FromError(fmt.Errorf("user_id is required"))
	if status != http.StatusBadRequest {
		t.Errorf("unexpected status: %d", status)
	}
	if env.Message != "user_id is required" {
		t.Errorf("unexpected message: %q", env.Message)
	}
}
