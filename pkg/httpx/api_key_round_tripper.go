package httpx

import (
	"fmt"
	"net/http"
)

// APIKeyRoundTripper puts a static API key into a request header. The request
// is cloned so callers can reuse theirs.
type APIKeyRoundTripper struct {
	next   http.RoundTripper
	header string
	key    string
}

func NewAPIKeyRoundTripper(
	next http.RoundTripper,
	header string,
	key string,
) APIKeyRoundTripper {
	return APIKeyRoundTripper{
		next:   next,
		header: header,
		key:    key,
	}
}

func (rt APIKeyRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set(rt.header, rt.key)

	resp, err := rt.next.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	return resp, nil
}
