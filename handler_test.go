package turbo

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestHandlerWritesResponse(t *testing.T) {
	h := Handle(func(r *http.Request) (Response, error) {
		return NewResponse(Append("messages", r.FormValue("body"))), nil
	})

	result, err := TestHandler(h, http.MethodPost, "/messages", map[string]string{"body": "hello"})
	if err != nil {
		t.Fatalf("TestHandler() error = %v", err)
	}
	if !result.IsOK() {
		t.Errorf("status = %d, want 200", result.StatusCode)
	}
	s, ok := result.Find("append", "messages")
	if !ok {
		t.Fatalf("append to messages not found in %s", result.Body)
	}
	if s.Content != "hello" {
		t.Errorf("content = %q, want %q", s.Content, "hello")
	}
}

func TestHandlerErrorStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", fmt.Errorf("load: %w", ErrNotFound), http.StatusNotFound},
		{"not acceptable", ErrNotAcceptable, http.StatusNotAcceptable},
		{"bad token", ErrSignatureInvalid, http.StatusBadRequest},
		{"other", errors.New("database down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Handle(func(*http.Request) (Response, error) {
				return Response{}, tt.err
			})
			h.Logger = quietLogger()

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d", rec.Code, tt.status)
			}
		})
	}
}

func TestHandlerRequireAccept(t *testing.T) {
	called := false
	h := Handle(func(*http.Request) (Response, error) {
		called = true
		return NewResponse(Remove("x")), nil
	})
	h.RequireAccept = true
	h.Logger = quietLogger()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("POST", "/", nil))
	if rec.Code != http.StatusNotAcceptable {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotAcceptable)
	}
	if called {
		t.Error("handler func should not run when Accept is missing")
	}

	result, err := TestHandler(h, http.MethodPost, "/", nil)
	if err != nil {
		t.Fatalf("TestHandler() error = %v", err)
	}
	if !result.HasStream("remove", "x") {
		t.Errorf("expected remove stream, got %s", result.Body)
	}
}

func TestHandlerCustomOnError(t *testing.T) {
	h := Handle(func(*http.Request) (Response, error) {
		return Response{}, errors.New("validation failed")
	})
	h.Logger = quietLogger()
	h.OnError = func(w http.ResponseWriter, r *http.Request, err error) {
		_ = NewResponse(Update("errors", err.Error())).
			Status(http.StatusUnprocessableEntity).
			Send(w)
	}

	result, err := TestHandler(h, http.MethodPost, "/", nil)
	if err != nil {
		t.Fatalf("TestHandler() error = %v", err)
	}
	if !result.HasStatus(http.StatusUnprocessableEntity) {
		t.Errorf("status = %d, want 422", result.StatusCode)
	}
	if !result.HasStream("update", "errors") {
		t.Errorf("expected update to errors, got %s", result.Body)
	}
}

func TestHandlerLogsLevels(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	h := Handle(func(*http.Request) (Response, error) {
		return Response{}, ErrNotFound
	})
	h.Logger = logger
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/missing", nil))

	if len(hook.Entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(hook.Entries))
	}
	if hook.LastEntry().Level != logrus.DebugLevel {
		t.Errorf("not found logged at %v, want debug", hook.LastEntry().Level)
	}
	if hook.LastEntry().Data["path"] != "/missing" {
		t.Errorf("path field = %v, want /missing", hook.LastEntry().Data["path"])
	}

	hook.Reset()
	h = Handle(func(*http.Request) (Response, error) {
		return Response{}, errors.New("boom")
	})
	h.Logger = logger
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

	if hook.LastEntry() == nil || hook.LastEntry().Level != logrus.ErrorLevel {
		t.Errorf("unexpected error should be logged at error level")
	}
}
