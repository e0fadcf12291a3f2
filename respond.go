package turbo

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/pthm/turbo/action"
)

// Respond writes body as a Turbo Stream response.
//
// Content-Type is set to text/vnd.turbo-stream.html and body is written
// without modification. Supported bodies are string, []byte, Action,
// Response, templ.Component, io.Reader and fmt.Stringer. Any other type
// returns ErrUnsupportedBody before anything is written.
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    turbo.Respond(w, r, turbo.Remove("message_1"))
//	}
func Respond(w http.ResponseWriter, r *http.Request, body any) error {
	switch b := body.(type) {
	case Response:
		return b.Send(w)
	case string:
		w.Header().Set("Content-Type", MediaType)
		_, err := io.WriteString(w, b)
		return err
	case []byte:
		w.Header().Set("Content-Type", MediaType)
		_, err := w.Write(b)
		return err
	case Action:
		w.Header().Set("Content-Type", MediaType)
		_, err := io.WriteString(w, action.Render(b))
		return err
	case templ.Component:
		w.Header().Set("Content-Type", MediaType)
		return b.Render(r.Context(), w)
	case io.Reader:
		w.Header().Set("Content-Type", MediaType)
		_, err := io.Copy(w, b)
		return err
	case fmt.Stringer:
		w.Header().Set("Content-Type", MediaType)
		_, err := io.WriteString(w, b.String())
		return err
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedBody, body)
	}
}

// Write sends fragments as one Turbo Stream response body.
//
//	turbo.Write(w, turbo.Append("messages", html), turbo.Update("count", "3"))
func Write(w http.ResponseWriter, fragments ...string) error {
	w.Header().Set("Content-Type", MediaType)
	_, err := io.WriteString(w, strings.Join(fragments, ""))
	return err
}
