package turbo

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// ParsedStream is a <turbo-stream> element read back from a response.
//
// Attribute values are decoded; Content is the exact text between <template>
// and its closing tag.
type ParsedStream struct {
	Action     string
	Target     string
	Targets    string
	Attributes map[string]string // all attributes except action, target and targets
	Content    string
}

// ParseStreams reads every top-level <turbo-stream> element in body.
//
// Text between elements is ignored. An element without a <template> child,
// or one that is not closed, returns ErrMalformedStream.
func ParseStreams(body string) ([]ParsedStream, error) {
	z := html.NewTokenizer(strings.NewReader(body))
	var streams []ParsedStream

	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				return streams, nil
			}
			return nil, z.Err()
		case html.StartTagToken:
			tok := z.Token()
			if tok.Data != "turbo-stream" {
				continue
			}
			s := ParsedStream{Attributes: make(map[string]string)}
			for _, a := range tok.Attr {
				switch a.Key {
				case "action":
					s.Action = a.Val
				case "target":
					s.Target = a.Val
				case "targets":
					s.Targets = a.Val
				default:
					s.Attributes[a.Key] = a.Val
				}
			}
			content, err := readTemplate(z)
			if err != nil {
				return nil, fmt.Errorf("%w: action %q: %v", ErrMalformedStream, s.Action, err)
			}
			s.Content = content
			streams = append(streams, s)
		}
	}
}

// readTemplate consumes <template>...</template></turbo-stream> and returns
// the raw template body.
func readTemplate(z *html.Tokenizer) (string, error) {
	if err := skipTo(z, html.StartTagToken, "template"); err != nil {
		return "", err
	}

	var content bytes.Buffer
	depth := 0
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return "", fmt.Errorf("unterminated template")
		}
		// TagName lower-cases the tokenizer buffer in place, so copy first.
		raw := bytes.Clone(z.Raw())
		name, _ := z.TagName()
		switch {
		case tt == html.StartTagToken && string(name) == "template":
			depth++
		case tt == html.EndTagToken && string(name) == "template":
			if depth == 0 {
				if err := skipTo(z, html.EndTagToken, "turbo-stream"); err != nil {
					return "", err
				}
				return content.String(), nil
			}
			depth--
		}
		content.Write(raw)
	}
}

// skipTo advances past whitespace to the wanted tag.
func skipTo(z *html.Tokenizer, want html.TokenType, tagName string) error {
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return fmt.Errorf("missing <%s>", tagName)
		case html.TextToken:
			if strings.TrimSpace(string(z.Text())) != "" {
				return fmt.Errorf("unexpected text before <%s>", tagName)
			}
		default:
			name, _ := z.TagName()
			if tt != want || string(name) != tagName {
				return fmt.Errorf("unexpected <%s> before <%s>", name, tagName)
			}
			return nil
		}
	}
}

// TestResult holds a recorded handler response for assertions.
type TestResult struct {
	Body       string
	StatusCode int
	Headers    http.Header
	Streams    []ParsedStream
	Flashes    []Flash
}

// TestHandler sends a request to h and parses the streams it returns.
//
// The request advertises text/vnd.turbo-stream.html in Accept the way
// Turbo does for form submissions. formData is sent url-encoded.
//
//	result, err := turbo.TestHandler(h, http.MethodPost, "/messages", map[string]string{
//	    "body": "hello",
//	})
//	if !result.HasStream("append", "messages") {
//	    t.Fatal("message was not appended")
//	}
func TestHandler(h http.Handler, method, target string, formData map[string]string) (*TestResult, error) {
	form := url.Values{}
	for k, v := range formData {
		form.Set(k, v)
	}

	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	if len(formData) > 0 {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req.Header.Set("Accept", MediaType+", text/html, application/xhtml+xml")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	result := &TestResult{
		Body:       rec.Body.String(),
		StatusCode: rec.Code,
		Headers:    rec.Header(),
	}

	if result.IsStream() {
		streams, err := ParseStreams(result.Body)
		if err != nil {
			return nil, err
		}
		result.Streams = streams
		result.Flashes = parseFlashes(streams)
	}

	return result, nil
}

// parseFlashes reads toasts out of append streams targeting #toasts.
func parseFlashes(streams []ParsedStream) []Flash {
	var flashes []Flash
	for _, s := range streams {
		if s.Action != "append" || s.Target != ToastsID {
			continue
		}
		z := html.NewTokenizer(strings.NewReader(s.Content))
		var current *Flash
		for tt := z.Next(); tt != html.ErrorToken; tt = z.Next() {
			tok := z.Token()
			switch tt {
			case html.StartTagToken:
				for _, a := range tok.Attr {
					if a.Key == "class" && strings.HasPrefix(a.Val, "toast toast-") {
						current = &Flash{Level: strings.TrimPrefix(a.Val, "toast toast-")}
					}
				}
			case html.TextToken:
				if current != nil {
					current.Message += tok.Data
				}
			case html.EndTagToken:
				if current != nil {
					flashes = append(flashes, *current)
					current = nil
				}
			}
		}
	}
	return flashes
}

// IsStream checks if the response was served as a Turbo Stream.
func (r *TestResult) IsStream() bool {
	return strings.HasPrefix(r.Headers.Get("Content-Type"), MediaType)
}

// HasAction checks if any stream carries the given action.
func (r *TestResult) HasAction(name string) bool {
	for _, s := range r.Streams {
		if s.Action == name {
			return true
		}
	}
	return false
}

// HasStream checks if a stream with the action addresses target (either
// as target or as targets).
func (r *TestResult) HasStream(name, target string) bool {
	_, ok := r.Find(name, target)
	return ok
}

// Find returns the first stream with the action addressing target.
func (r *TestResult) Find(name, target string) (ParsedStream, bool) {
	for _, s := range r.Streams {
		if s.Action == name && (s.Target == target || s.Targets == target) {
			return s, true
		}
	}
	return ParsedStream{}, false
}

// BodyContains checks if the raw body contains a substring.
func (r *TestResult) BodyContains(substr string) bool {
	return strings.Contains(r.Body, substr)
}

// HasFlash checks if a flash message was set with the given level and message.
func (r *TestResult) HasFlash(level, message string) bool {
	for _, f := range r.Flashes {
		if f.Level == level && f.Message == message {
			return true
		}
	}
	return false
}

// IsOK checks if the status code is 200.
func (r *TestResult) IsOK() bool {
	return r.StatusCode == http.StatusOK
}

// HasStatus checks if the status code matches.
func (r *TestResult) HasStatus(code int) bool {
	return r.StatusCode == code
}

// HasHeader checks if a header is set with the given value.
func (r *TestResult) HasHeader(key, value string) bool {
	return r.Headers.Get(key) == value
}
