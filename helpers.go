package turbo

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/pthm/turbo/action"
)

// Accepts reports whether the client asked for Turbo Stream responses.
//
// Turbo adds text/vnd.turbo-stream.html to the Accept header of form
// submissions and of links marked data-turbo-stream. Use it to serve a
// stream to Turbo and a redirect or full page to everyone else:
//
//	if turbo.Accepts(r) {
//	    turbo.Write(w, turbo.Remove(id))
//	    return
//	}
//	http.Redirect(w, r, "/messages", http.StatusSeeOther)
func Accepts(r *http.Request) bool {
	for _, v := range r.Header.Values("Accept") {
		if strings.Contains(v, MediaType) {
			return true
		}
	}
	return false
}

// FrameID returns the id of the turbo-frame that issued the request.
//
// Returns empty string if the request did not come from a frame.
func FrameID(r *http.Request) string {
	return r.Header.Get("Turbo-Frame")
}

// RequestID returns the X-Turbo-Request-Id Turbo attaches to its fetches.
//
// Streams broadcast in reaction to a request can carry it so the
// originating page can ignore its own echo.
func RequestID(r *http.Request) string {
	return r.Header.Get("X-Turbo-Request-Id")
}

// IsPrefetch reports whether the request is an InstantClick prefetch.
//
// Prefetches should not have side effects or be counted as visits.
func IsPrefetch(r *http.Request) bool {
	return r.Header.Get("X-Sec-Purpose") == "prefetch" || r.Header.Get("Sec-Purpose") == "prefetch"
}

// StreamAttrs marks a link or GET form to request a stream response.
//
//	<a href="/messages/1" { turbo.StreamAttrs()... }>Delete</a>
func StreamAttrs() templ.Attributes {
	return templ.Attributes{"data-turbo-stream": "true"}
}

// FrameAttrs directs a link or form at a turbo-frame and optionally sets
// the visit action used when the frame navigation is promoted to a page
// visit. Empty values are omitted.
//
//	<a href="/users/1" { turbo.FrameAttrs("user_1", action.VisitAdvance)... }>Show</a>
func FrameAttrs(frame string, visit action.Visit) templ.Attributes {
	attrs := templ.Attributes{}
	if frame != "" {
		attrs["data-turbo-frame"] = frame
	}
	if visit != "" {
		attrs["data-turbo-action"] = string(visit)
	}
	return attrs
}
