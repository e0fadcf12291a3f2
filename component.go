package turbo

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Component wraps rendered fragments as a templ component, so streams can
// be embedded in a page (Turbo applies <turbo-stream> elements found in the
// document too) or passed to anything that renders templ.
//
//	@turbo.Component(turbo.Update("cart_count", "3"))
func Component(fragments ...string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, f := range fragments {
			if _, err := io.WriteString(w, f); err != nil {
				return err
			}
		}
		return nil
	})
}

// Content renders a templ component to a string for use as stream content.
//
// templ escapes interpolated values, which makes it the safe way to build
// content from user input:
//
//	html, err := turbo.Content(ctx, messageView(msg))
//	if err != nil {
//	    return err
//	}
//	frag := turbo.Append("messages", html)
func Content(ctx context.Context, c templ.Component) (string, error) {
	var sb strings.Builder
	if err := c.Render(ctx, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
