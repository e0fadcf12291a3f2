package turbo

import (
	"fmt"
	"net/http"
	"net/url"
)

// DeferParam is the query parameter that carries a deferred stream token.
const DeferParam = "p"

// DeferURL returns path with the stream for a encoded into its query
// string, ready to be rendered later by a handler built with Deferred.
//
// Signed tokens (sensitive == false) are readable but tamper-proof; use
// sensitive for streams whose attributes or content must stay opaque.
//
//	href, err := turbo.DeferURL(enc, "/_s", action.Reload{}, false)
//	// <a href={ href } data-turbo-stream>Reload</a>
func DeferURL(enc *Encoder, path string, a Action, sensitive bool) (string, error) {
	token, err := enc.Encode(a.Stream(), sensitive)
	if err != nil {
		return "", fmt.Errorf("encode deferred stream: %w", err)
	}

	u, err := url.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse deferred path: %w", err)
	}
	q := u.Query()
	q.Set(DeferParam, token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Deferred serves the streams produced by DeferURL.
//
// A missing token is ErrNotFound; a token that fails verification or
// decryption is reported through the handler's OnError as a decode error.
func Deferred(enc *Encoder, sensitive bool) *Handler {
	return Handle(func(r *http.Request) (Response, error) {
		token := r.URL.Query().Get(DeferParam)
		if token == "" {
			return Response{}, ErrNotFound
		}
		s, err := enc.Decode(token, sensitive)
		if err != nil {
			return Response{}, fmt.Errorf("decode deferred stream: %w", err)
		}
		return NewResponse(s.String()), nil
	})
}
