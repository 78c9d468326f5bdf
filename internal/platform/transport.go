package platform

import "net/http"

// TokenSource provides the bearer token attached to every platform request.
type TokenSource interface {
	Token() (string, bool)
}

// authTransport attaches the session token to outgoing requests and
// observes every response exactly once: a 401 triggers the registered
// hook before the response is handed back to the caller unchanged.
type authTransport struct {
	base http.RoundTripper
	tokens TokenSource
	onUnauthorized func()
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.tokens != nil {
		if token, ok := t.tokens.Token(); ok {
			req = req.Clone(req.Context())
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized && t.onUnauthorized != nil {
		t.onUnauthorized()
	}

	return resp, nil
}
