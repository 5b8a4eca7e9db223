package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	log "github.com/carousell/ct-go/pkg/logger/log_context"

	"github.com/jmvillota/product-console/internal/models"
)

// User-facing messages for each failure class. The UI contract is
// exact: these strings render as-is.
const (
	msgNoConnection   = "cannot reach server, check your connection"
	msgInvalidRequest = "invalid request"
	msgNotFound       = "product not found"
	msgConflict       = "a product with this id already exists"
	msgServerError    = "server error, try later"
	msgUnavailable    = "service temporarily unavailable"
)

// errorBody is the failure payload shape the API uses.
type errorBody struct {
	Message string                   `json:"message"`
	Errors  []models.ValidationError `json:"errors"`
}

// normalizeNetworkError handles failures with no HTTP response at all.
func normalizeNetworkError(ctx context.Context, err error) *models.APIError {
	log.Errorw(ctx, "network error calling product API", "error", err)
	return &models.APIError{
		Kind:    models.KindNetwork,
		Message: msgNoConnection,
	}
}

// normalizeHTTPError maps a non-2xx response to a single APIError.
// A 400 short-circuits with the body's message and validation list;
// it never falls through to the generic handling below.
func normalizeHTTPError(ctx context.Context, resp *http.Response) *models.APIError {
	raw, _ := io.ReadAll(resp.Body)
	log.Errorw(ctx, "product API returned error",
		"status", resp.StatusCode,
		"body", string(raw),
	)

	var body errorBody
	_ = json.Unmarshal(raw, &body)

	apiErr := &models.APIError{Status: resp.StatusCode}
	switch resp.StatusCode {
	case http.StatusBadRequest:
		apiErr.Kind = models.KindValidation
		apiErr.Message = body.Message
		if apiErr.Message == "" {
			apiErr.Message = msgInvalidRequest
		}
		apiErr.ValidationErrors = body.Errors
		return apiErr
	case http.StatusNotFound:
		apiErr.Kind = models.KindNotFound
		apiErr.Message = msgNotFound
	case http.StatusConflict:
		apiErr.Kind = models.KindConflict
		apiErr.Message = msgConflict
	case http.StatusInternalServerError:
		apiErr.Kind = models.KindServer
		apiErr.Message = msgServerError
	case http.StatusServiceUnavailable:
		apiErr.Kind = models.KindServer
		apiErr.Message = msgUnavailable
	default:
		apiErr.Kind = models.KindUnknown
		if body.Message != "" {
			apiErr.Message = body.Message
		} else {
			statusText := http.StatusText(resp.StatusCode)
			if statusText == "" {
				statusText = "unknown error"
			}
			apiErr.Message = fmt.Sprintf("%d: %s", resp.StatusCode, statusText)
		}
	}
	return apiErr
}
