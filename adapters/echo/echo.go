// Package turboecho provides Echo framework integration for Turbo Streams.
//
// Send fragments from an Echo handler:
//
//	func deleteMessage(c echo.Context) error {
//	    id := c.Param("id")
//	    if !turboecho.Accepts(c) {
//	        return c.Redirect(http.StatusSeeOther, "/messages")
//	    }
//	    return turboecho.Respond(c, http.StatusOK, turbo.Remove("message_"+id))
//	}
//
// Mount the deferred stream endpoint on an Echo instance or group:
//
//	e := echo.New()
//	d := turboecho.Mount(e, turboecho.WithKey(key))
//	href, err := d.URL(action.Reload{})
package turboecho

import (
	"crypto/rand"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/pthm/turbo"
)

// Option configures the Mount and MountGroup functions.
type Option func(*options)

type options struct {
	key       []byte
	path      string
	sensitive bool
}

// WithKey sets the token key for deferred streams.
// The key should be at least 32 bytes of cryptographically random data.
// If not provided, a random key is generated (suitable for development only).
func WithKey(key []byte) Option {
	return func(o *options) {
		o.key = key
	}
}

// WithPath sets the route deferred streams are served from.
// Defaults to "/_s".
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// WithSensitive encrypts deferred stream tokens instead of signing them.
func WithSensitive() Option {
	return func(o *options) {
		o.sensitive = true
	}
}

// Deferrer builds URLs for the deferred stream route it was mounted with.
type Deferrer struct {
	enc       *turbo.Encoder
	path      string
	sensitive bool
}

// URL returns the mounted path with a encoded into its query string.
func (d *Deferrer) URL(a turbo.Action) (string, error) {
	return turbo.DeferURL(d.enc, d.path, a, d.sensitive)
}

// Path returns the route the deferred handler is mounted on.
func (d *Deferrer) Path() string {
	return d.path
}

// Mount serves deferred streams on an Echo instance.
//
//	e := echo.New()
//	d := turboecho.Mount(e)
//
//	// With options:
//	d := turboecho.Mount(e, turboecho.WithKey(key), turboecho.WithSensitive())
func Mount(e *echo.Echo, opts ...Option) *Deferrer {
	d := newDeferrer(opts)
	e.GET(d.path, echo.WrapHandler(turbo.Deferred(d.enc, d.sensitive)))
	return d
}

// MountGroup serves deferred streams on an Echo group.
// This allows deferred streams to share middleware with the group (auth, logging, etc.).
//
//	g := e.Group("/app", authMiddleware)
//	d := turboecho.MountGroup(g)
//
// URLs built by the returned Deferrer are relative to the group prefix.
func MountGroup(g *echo.Group, opts ...Option) *Deferrer {
	d := newDeferrer(opts)
	g.GET(d.path, echo.WrapHandler(turbo.Deferred(d.enc, d.sensitive)))
	return d
}

func newDeferrer(opts []Option) *Deferrer {
	o := &options{path: "/_s"}
	for _, opt := range opts {
		opt(o)
	}

	key := o.key
	if key == nil {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			panic(fmt.Sprintf("turboecho: failed to generate random key: %v", err))
		}
	}

	enc, err := turbo.NewEncoder(key)
	if err != nil {
		panic(fmt.Sprintf("turboecho: invalid key: %v", err))
	}

	return &Deferrer{enc: enc, path: o.path, sensitive: o.sensitive}
}

// Accepts reports whether the client asked for a Turbo Stream response.
func Accepts(c echo.Context) bool {
	return turbo.Accepts(c.Request())
}

// Respond writes fragments as a Turbo Stream response with the given status.
//
//	return turboecho.Respond(c, http.StatusOK, turbo.Append("messages", html))
func Respond(c echo.Context, status int, fragments ...string) error {
	c.Response().Header().Set(echo.HeaderContentType, turbo.MediaType)
	c.Response().WriteHeader(status)
	for _, f := range fragments {
		if _, err := io.WriteString(c.Response(), f); err != nil {
			return err
		}
	}
	return nil
}

// Send writes a turbo.Response, including its flashes, headers and status.
//
//	return turboecho.Send(c, turbo.NewResponse(frag).Flash(turbo.FlashSuccess, "Saved"))
func Send(c echo.Context, resp turbo.Response) error {
	return resp.Send(c.Response())
}

// RequireStreams rejects requests that do not accept Turbo Streams with 406.
//
//	g := e.Group("/streams", turboecho.RequireStreams())
func RequireStreams() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !Accepts(c) {
				return echo.NewHTTPError(http.StatusNotAcceptable, turbo.ErrNotAcceptable.Error())
			}
			return next(c)
		}
	}
}

// Render writes a templ component to the Echo response.
//
//	func handler(c echo.Context) error {
//	    return turboecho.Render(c, myTemplate())
//	}
func Render(c echo.Context, component templ.Component) error {
	c.Response().Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(c.Request().Context(), c.Response())
}
