package internal

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"wordmole/repositories"

	"github.com/samber/lo"
)

//go:embed inspect.html
var templatesFS embed.FS

type InspectRow struct {
	Timestamp  string
	Kind       string
	EntryID    string
	Message    string
	Attributes string
}

type RowMapper func(entry repositories.JournalEntry) InspectRow
type StatsProvider func() map[string]any

type PageData struct {
	Kind  string
	Items []InspectRow
	Stats map[string]any
}

// InspectHandler renders the most recent journal entries, optionally filtered
// with the "kind" query parameter.
func InspectHandler(log *slog.Logger, journal repositories.IJournalRepository, limit *int, mapper RowMapper, statsProvider StatsProvider) http.Handler {
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))
	if mapper == nil {
		mapper = DefaultMapper
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		kind := r.URL.Query().Get("kind")
		data := PageData{Kind: kind, Stats: make(map[string]any)}
		if statsProvider != nil {
			data.Stats = statsProvider()
		}

		entries, err := journal.Entries(limit)
		if err != nil {
			log.Error("Cannot read journal", "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if kind != "" {
			entries = lo.Filter(entries, func(e repositories.JournalEntry, _ int) bool { return e.Kind == kind })
		}
		data.Items = lo.Map(entries, func(e repositories.JournalEntry, _ int) InspectRow { return mapper(e) })

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.Execute(w, data); err != nil {
			log.Error("Cannot render journal", "error", err)
		}
	})
}

// StartDebugServer serves the journal inspector on port until the returned
// server is shut down.
func StartDebugServer(log *slog.Logger, port int, endpoint string, handler http.Handler) *http.Server {
	mux := http.NewServeMux()
	mux.Handle(endpoint, handler)
	server := &http.Server{Addr: fmt.Sprintf("0.0.0.0:%d", port), Handler: mux}

	go func() {
		log.Info("Starting debug server", "address", server.Addr, "endpoint", endpoint)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("Debug server stopped", "error", err)
		}
	}()
	return server
}

func DefaultMapper(entry repositories.JournalEntry) InspectRow {
	id := entry.ID.String()
	if len(id) > 8 {
		id = id[:8]
	}
	keys := lo.Keys(entry.Attributes)
	sort.Strings(keys)
	attributes := lo.Map(keys, func(k string, _ int) string {
		return k + "=" + entry.Attributes[k]
	})
	return InspectRow{
		Timestamp:  entry.At.Format("15:04:05.000"),
		Kind:       entry.Kind,
		EntryID:    id,
		Message:    entry.Message,
		Attributes: strings.Join(attributes, " "),
	}
}
