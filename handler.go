package turbo

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

// HandlerFunc produces the stream response for a request.
type HandlerFunc func(r *http.Request) (Response, error)

// Handler adapts a HandlerFunc to http.Handler.
//
// Errors returned by the function go through OnError, so applications decide
// in one place how failures look. Write failures after the status line is
// sent cannot be reported to the client and are only logged.
//
//	h := turbo.Handle(func(r *http.Request) (turbo.Response, error) {
//	    msg, err := store.Create(r.Context(), r.FormValue("body"))
//	    if err != nil {
//	        return turbo.Response{}, err
//	    }
//	    return turbo.NewResponse(turbo.Append("messages", render(msg))), nil
//	})
//	h.RequireAccept = true
//	mux.Handle("POST /messages", h)
type Handler struct {
	fn HandlerFunc

	// OnError is called when the function returns an error.
	// Defaults to DefaultErrorHandler.
	OnError func(http.ResponseWriter, *http.Request, error)

	// RequireAccept rejects requests whose Accept header does not list
	// the Turbo Stream media type with ErrNotAcceptable.
	RequireAccept bool

	// Logger receives handler failures. Defaults to the logrus standard
	// logger.
	Logger logrus.FieldLogger
}

// Handle creates a Handler with the default error handling.
func Handle(fn HandlerFunc) *Handler {
	return &Handler{
		fn:      fn,
		OnError: DefaultErrorHandler,
	}
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.RequireAccept && !Accepts(r) {
		h.fail(w, r, ErrNotAcceptable)
		return
	}

	resp, err := h.fn(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if err := resp.Send(w); err != nil {
		h.logger().WithError(err).WithFields(logrus.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		}).Warn("turbo: write stream response")
	}
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	entry := h.logger().WithError(err).WithFields(logrus.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	})
	if IsNotFound(err) || IsNotAcceptable(err) || IsDecodeError(err) {
		entry.Debug("turbo: request rejected")
	} else {
		entry.Error("turbo: handler failed")
	}

	onError := h.OnError
	if onError == nil {
		onError = DefaultErrorHandler
	}
	onError(w, r, err)
}

func (h *Handler) logger() logrus.FieldLogger {
	if h.Logger != nil {
		return h.Logger
	}
	return logrus.StandardLogger()
}

// DefaultErrorHandler maps sentinel errors to status codes: ErrNotFound to
// 404, ErrNotAcceptable to 406, token decode errors to 400 and anything else
// to 500.
func DefaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case IsNotFound(err):
		http.Error(w, "Not found", http.StatusNotFound)
	case IsNotAcceptable(err):
		http.Error(w, "Not acceptable", http.StatusNotAcceptable)
	case IsDecodeError(err):
		http.Error(w, "Bad request", http.StatusBadRequest)
	default:
		http.Error(w, "Internal error", http.StatusInternalServerError)
	}
}
