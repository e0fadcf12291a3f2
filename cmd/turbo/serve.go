package main

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"
	"github.com/pthm/turbo"
	"github.com/pthm/turbo/action"
	"github.com/pthm/turbo/power"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the Turbo Stream demo server",
		Long: `Serve runs a message board that answers Turbo form submissions with
streams: posting appends a message and resets the form, deleting removes it,
and both flash a toast. Deferred stream tokens are served from /_s.

Without a configured key a random one is generated, so deferred links stop
working after a restart.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := a.encoder()
			if err != nil {
				key := make([]byte, 32)
				if _, err := rand.Read(key); err != nil {
					return fmt.Errorf("generate key: %w", err)
				}
				a.log.Warn("no key configured, using a random key")
				enc, err = turbo.NewEncoder(key)
				if err != nil {
					return err
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := &http.Server{
				Addr:              a.cfg.Addr,
				Handler:           newDemoRouter(newBoard(), enc, a.cfg.Sensitive, a.log),
				ReadHeaderTimeout: 10 * time.Second,
			}
			return runServer(ctx, srv, a.log)
		},
	}
	cmd.Flags().String("addr", ":8080", "listen address")
	_ = a.v.BindPFlag("addr", cmd.Flags().Lookup("addr"))
	return cmd
}

func runServer(ctx context.Context, srv *http.Server, log logrus.FieldLogger) error {
	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", srv.Addr).Info("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// board is the demo's in-memory message list.
type board struct {
	mu       sync.Mutex
	nextID   int
	messages []message
}

type message struct {
	ID   int
	Body string
}

func newBoard() *board {
	return &board{nextID: 1}
}

func (b *board) add(body string) message {
	b.mu.Lock()
	defer b.mu.Unlock()
	m := message{ID: b.nextID, Body: body}
	b.nextID++
	b.messages = append(b.messages, m)
	return m
}

func (b *board) remove(id int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, m := range b.messages {
		if m.ID == id {
			b.messages = append(b.messages[:i], b.messages[i+1:]...)
			return true
		}
	}
	return false
}

func (b *board) list() []message {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]message(nil), b.messages...)
}

func (b *board) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.messages)
}

func messageDOMID(id int) string {
	return "message_" + strconv.Itoa(id)
}

func renderMessage(m message) string {
	id := strconv.Itoa(m.ID)
	return `<li id="` + messageDOMID(m.ID) + `">` + templ.EscapeString(m.Body) +
		` <form method="post" action="/messages/` + id + `/delete" style="display:inline">` +
		`<button>Delete</button></form></li>`
}

func newDemoRouter(b *board, enc *turbo.Encoder, sensitive bool, log *logrus.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestLogger(log))

	r.Handle("/", pageHandler(b, enc, sensitive, log)).Methods(http.MethodGet)

	create := turbo.Handle(func(r *http.Request) (turbo.Response, error) {
		body := strings.TrimSpace(r.FormValue("body"))
		if body == "" {
			return turbo.NewResponse(turbo.Update("form_errors", "Message can't be blank")).
				Status(http.StatusUnprocessableEntity), nil
		}
		m := b.add(body)
		return turbo.NewResponse(
			turbo.Append("messages", renderMessage(m)),
			turbo.Update("message_count", strconv.Itoa(b.count())),
			turbo.Update("form_errors", ""),
		).Action(
			action.ResetForm{Targets: "#new_message"},
			action.SetTitle{Title: fmt.Sprintf("Messages (%d)", b.count())},
		).Flash(turbo.FlashSuccess, "Message posted"), nil
	})
	create.RequireAccept = true
	create.Logger = log
	r.Handle("/messages", create).Methods(http.MethodPost)

	del := turbo.Handle(func(r *http.Request) (turbo.Response, error) {
		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil || !b.remove(id) {
			return turbo.Response{}, fmt.Errorf("message %q: %w", mux.Vars(r)["id"], turbo.ErrNotFound)
		}
		return turbo.NewResponse(
			turbo.Remove(messageDOMID(id)),
			turbo.Update("message_count", strconv.Itoa(b.count())),
			power.SetTitle(fmt.Sprintf("Messages (%d)", b.count())),
		).Flash(turbo.FlashInfo, "Message deleted"), nil
	})
	del.RequireAccept = true
	del.Logger = log
	r.Handle("/messages/{id:[0-9]+}/delete", del).Methods(http.MethodPost)

	deferred := turbo.Deferred(enc, sensitive)
	deferred.Logger = log
	r.Handle("/_s", deferred).Methods(http.MethodGet)

	return r
}

func pageHandler(b *board, enc *turbo.Encoder, sensitive bool, log logrus.FieldLogger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clock, err := turbo.DeferURL(enc, "/_s", action.Update{
			Target:  action.ID("server_time"),
			Content: templ.EscapeString(time.Now().Format(time.RFC1123)),
		}, sensitive)
		if err != nil {
			log.WithError(err).Error("build deferred url")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		var items strings.Builder
		for _, m := range b.list() {
			items.WriteString(renderMessage(m))
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		page := `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Messages</title>
<script type="module" src="https://cdn.jsdelivr.net/npm/@hotwired/turbo@8/dist/turbo.es2017-esm.js"></script>
</head>
<body>
<h1>Messages (<span id="message_count">` + strconv.Itoa(b.count()) + `</span>)</h1>
<ul id="messages">` + items.String() + `</ul>
<form id="new_message" method="post" action="/messages">
<input name="body" autocomplete="off" autofocus>
<button>Post</button>
<div id="form_errors"></div>
</form>
<p><a href="` + templ.EscapeString(clock) + `" data-turbo-stream="true">Page rendered at</a> <span id="server_time"></span></p>
<div id="` + turbo.ToastsID + `" class="toast-container"></div>
</body>
</html>`
		if _, err := w.Write([]byte(page)); err != nil {
			log.WithError(err).Warn("write page")
		}
	})
}

// requestLogger logs each request with its method, path, status and duration.
func requestLogger(log logrus.FieldLogger) mux.MiddlewareFunc {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			h.ServeHTTP(rec, r)
			log.WithFields(logrus.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   rec.status,
				"duration": time.Since(start),
				"stream":   turbo.Accepts(r),
			}).Info("request")
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
