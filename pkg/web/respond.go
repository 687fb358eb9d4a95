package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Encoder defines behavior that can encode a data model and provide the
// content type for that encoding.
type Encoder interface {
	Encode() (data []byte, contentType string, err error)
}

// HTTPStatusSetter is implemented by responses that carry their own HTTP
// status code. Responses without it default to 200, or 204 when empty.
type HTTPStatusSetter interface {
	HTTPStatus() int
}

// NoResponse tells the framework the handler wrote nothing and the response
// should be 204 with an empty body.
type NoResponse struct{}

// NewNoResponse constructs a no-response value.
func NewNoResponse() NoResponse {
	return NoResponse{}
}

// Encode implements the Encoder interface.
func (NoResponse) Encode() ([]byte, string, error) {
	return nil, "", nil
}

// Respond encodes the data model and writes it as the HTTP response.
func Respond(ctx context.Context, w http.ResponseWriter, resp Encoder) error {
	// If the context has been canceled, the client is gone.
	if err := ctx.Err(); err != nil {
		if errors.Is(err, context.Canceled) {
			return errors.New("client disconnected, do not send response")
		}
	}

	if resp == nil {
		w.WriteHeader(http.StatusNoContent)
		return nil
	}

	var statusCode = http.StatusOK

	switch v := resp.(type) {
	case HTTPStatusSetter:
		statusCode = v.HTTPStatus()

	case error:
		statusCode = http.StatusInternalServerError
	}

	data, contentType, err := resp.Encode()
	if err != nil {
		return fmt.Errorf("web.respond: encode: %w", err)
	}

	if len(data) == 0 {
		statusCode = http.StatusNoContent
	}

	if statusCode == http.StatusNoContent {
		w.WriteHeader(statusCode)
		return nil
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(statusCode)

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("web.respond: write: %w", err)
	}

	return nil
}
