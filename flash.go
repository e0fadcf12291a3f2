package turbo

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/pthm/turbo/lib/tag"
)

// Flash levels for toast notifications.
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashWarning = "warning"
	FlashInfo    = "info"
)

// ToastsID is the id of the element flashes are appended to.
const ToastsID = "toasts"

// Flash represents a one-time notification message.
//
// Flashes are delivered as an append stream into the #toasts container
// rendered by ToastContainer. A data-auto-dismiss attribute tells client
// code when to remove the toast (milliseconds).
type Flash struct {
	Level   string // success, error, warning, info
	Message string
}

// RenderFlashes renders flashes as a single append stream targeting #toasts.
//
// Level and message are escaped; unlike stream content in general, flash
// text is never treated as HTML.
func RenderFlashes(flashes []Flash) string {
	if len(flashes) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, f := range flashes {
		sb.WriteString(`<div class="toast toast-`)
		sb.WriteString(tag.Escape(f.Level))
		sb.WriteString(`" data-auto-dismiss="3000">`)
		sb.WriteString(tag.Escape(f.Message))
		sb.WriteString(`</div>`)
	}

	return Append(ToastsID, sb.String())
}

// ToastContainer returns a templ component for the toast container.
//
// Add this to your layout template (typically near the end of <body>):
//
//	@turbo.ToastContainer()
func ToastContainer() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div id="`+ToastsID+`" class="toast-container"></div>`)
		return err
	})
}
