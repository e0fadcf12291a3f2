package turbo

import (
	"net/http"
	"slices"
	"strings"

	"github.com/pthm/turbo/action"
)

// Response collects the fragments of one Turbo Stream HTTP response.
//
// Response is an immutable builder: every method returns a modified copy, so
// a partially built Response can be shared as a base. Handlers build one and
// let Handler (or ServeHTTP) write it:
//
//	return turbo.NewResponse(turbo.Append("messages", html)).
//	    Action(action.ResetForm{Targets: "#new_message"}).
//	    Flash(turbo.FlashSuccess, "Message sent")
//
// Flashes are rendered after all other fragments as one append to #toasts.
type Response struct {
	fragments []string
	flashes   []Flash
	headers   map[string]string
	status    int
}

// NewResponse creates a response holding the given fragments.
func NewResponse(fragments ...string) Response {
	return Response{fragments: slices.Clone(fragments)}
}

// Add appends fragments to the response.
func (r Response) Add(fragments ...string) Response {
	r.fragments = slices.Concat(r.fragments, fragments)
	return r
}

// Action renders actions and appends them to the response.
func (r Response) Action(actions ...Action) Response {
	rendered := make([]string, len(actions))
	for i, a := range actions {
		rendered[i] = action.Render(a)
	}
	return r.Add(rendered...)
}

// Flash adds a toast notification.
//
//	return turbo.NewResponse().
//	    Flash(turbo.FlashSuccess, "Primary action completed").
//	    Flash(turbo.FlashInfo, "Notification sent")
func (r Response) Flash(level, message string) Response {
	r.flashes = slices.Concat(r.flashes, []Flash{{Level: level, Message: message}})
	return r
}

// Header sets a custom response header.
//
//	return turbo.NewResponse(frag).Header("Cache-Control", "no-store")
func (r Response) Header(key, value string) Response {
	headers := make(map[string]string, len(r.headers)+1)
	for k, v := range r.headers {
		headers[k] = v
	}
	headers[key] = value
	r.headers = headers
	return r
}

// Status sets the HTTP status code. The default is 200.
//
// Turbo applies stream responses to form submissions only when the status
// is 2xx; use http.StatusUnprocessableEntity for validation failures that
// re-render the form.
func (r Response) Status(code int) Response {
	r.status = code
	return r
}

// Fragments returns the fragments added so far, flashes excluded.
func (r Response) Fragments() []string {
	return slices.Clone(r.fragments)
}

// Flashes returns the toast notifications.
func (r Response) Flashes() []Flash {
	return slices.Clone(r.flashes)
}

// Headers returns the custom response headers.
func (r Response) Headers() map[string]string {
	headers := make(map[string]string, len(r.headers))
	for k, v := range r.headers {
		headers[k] = v
	}
	return headers
}

// StatusCode returns the HTTP status code (0 means not set, use default 200).
func (r Response) StatusCode() int {
	return r.status
}

// Empty reports whether the response has nothing to render.
func (r Response) Empty() bool {
	return len(r.fragments) == 0 && len(r.flashes) == 0
}

// Body returns the concatenated fragments followed by the flash toasts.
func (r Response) Body() string {
	var sb strings.Builder
	for _, f := range r.fragments {
		sb.WriteString(f)
	}
	sb.WriteString(RenderFlashes(r.flashes))
	return sb.String()
}

// Send writes the headers, status code and body to w.
// Content-Type is always the Turbo Stream media type.
func (r Response) Send(w http.ResponseWriter) error {
	h := w.Header()
	for k, v := range r.headers {
		h.Set(k, v)
	}
	h.Set("Content-Type", MediaType)

	status := r.status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)

	_, err := w.Write([]byte(r.Body()))
	return err
}

// ServeHTTP makes a Response usable as a fixed http.Handler.
func (r Response) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	_ = r.Send(w)
}
