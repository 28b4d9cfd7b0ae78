package internal

import (
	"context"
	"embed"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"dinger/observability"
	"dinger/projection"
	"dinger/repositories"
	"dinger/sink"

	"github.com/dgraph-io/badger/v4"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:embed inspect.html
var templatesFS embed.FS

// StateProvider returns the current view state.
type StateProvider func() projection.State

type PageData struct {
	Prefix string
	Items  []repositories.KeyInfo
	Stats  map[string]any
}

// DebugServer exposes the node storage, view state and live snapshots
// over HTTP for local debugging.
type DebugServer struct {
	log        *slog.Logger
	db         *badger.DB
	state      StateProvider
	monitoring *observability.Monitoring
	hub        *sink.Hub
	tmpl       *template.Template
}

func NewDebugServer(log *slog.Logger, db *badger.DB, state StateProvider,
	monitoring *observability.Monitoring, hub *sink.Hub) *DebugServer {
	return &DebugServer{
		log:        log,
		db:         db,
		state:      state,
		monitoring: monitoring,
		hub:        hub,
		tmpl:       template.Must(template.ParseFS(templatesFS, "inspect.html")),
	}
}

func (d *DebugServer) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/inspect", d.inspect)
	r.Route("/api", func(r chi.Router) {
		r.Get("/state", d.currentState)
		r.Get("/stats", d.stats)
		r.Get("/conversations/{did}", d.conversation)
	})
	if d.hub != nil {
		r.Handle("/ws", d.hub)
	}
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down.
func (d *DebugServer) ListenAndServe(ctx context.Context, port int) error {
	server := &http.Server{
		Addr:              fmt.Sprintf("localhost:%d", port),
		Handler:           d.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errChan := make(chan error, 1)
	go func() {
		d.log.Info("Starting debug server", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errChan:
		return err
	}
}

func (d *DebugServer) inspect(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")
	if prefix == "" {
		prefix = "rec:"
	}
	data := PageData{Prefix: prefix, Stats: map[string]any{}}
	if d.monitoring != nil {
		latest := d.monitoring.Latest()
		data.Stats["polls"] = latest.Polls
		data.Stats["poll_errors"] = latest.PollErrors
		data.Stats["dings"] = latest.DingsSeen
		data.Stats["submits"] = latest.Submits
	}

	err := d.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				data.Items = append(data.Items, repositories.DescribeKey(string(item.Key()), val))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err = d.tmpl.Execute(w, data); err != nil {
		d.log.Warn("Inspect page not rendered", "error", err)
	}
}

func (d *DebugServer) currentState(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, sink.NewSnapshot(d.state()))
}

func (d *DebugServer) stats(w http.ResponseWriter, _ *http.Request) {
	if d.monitoring == nil {
		writeJSON(w, http.StatusOK, observability.Stats{})
		return
	}
	writeJSON(w, http.StatusOK, d.monitoring.Latest())
}

func (d *DebugServer) conversation(w http.ResponseWriter, r *http.Request) {
	did := chi.URLParam(r, "did")
	state := d.state()
	dings, ok := state.Groups[did]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no conversation with " + did})
		return
	}
	writeJSON(w, http.StatusOK, sink.Conversation{Partner: did, Dings: dings})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
