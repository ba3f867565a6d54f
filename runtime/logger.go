package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"wordmole/contract"
	"wordmole/repositories"
	"wordmole/runtime/workers"
)

const (
	KindEvent   = "event"
	KindMessage = "message"
)

var _ contract.Callback = (*Logger)(nil)

// Logger writes server log lines asynchronously. It owns a pool of a single
// notifier at the lowest priority, so entries are serialized and the caller
// never waits on I/O.
type Logger struct {
	log     *slog.Logger
	pool    *workers.AsyncCallback
	journal repositories.IJournalRepository
}

func NewLogger(log *slog.Logger, journal repositories.IJournalRepository) (*Logger, error) {
	pool, err := workers.NewAsyncCallback(log, workers.PoolConfig{Size: 1, Priority: workers.MinPriority})
	if err != nil {
		return nil, err
	}
	return &Logger{log: log, pool: pool, journal: journal}, nil
}

func (l *Logger) Start() { l.pool.Start() }

func (l *Logger) Stop() { l.pool.Stop() }

func (l *Logger) Log(msg string) {
	l.pool.Submit(l, repositories.JournalEntry{At: time.Now().UTC(), Kind: KindEvent, Message: msg})
}

// LogMessage journals a lobby chat line with its detected language.
func (l *Logger) LogMessage(sender, text, lang string, censored []string) {
	attributes := map[string]string{"sender": sender, "lang": lang}
	if len(censored) > 0 {
		attributes["censored"] = fmt.Sprint(len(censored))
	}
	l.pool.Submit(l, repositories.JournalEntry{
		At:         time.Now().UTC(),
		Kind:       KindMessage,
		Message:    text,
		Attributes: attributes,
	})
}

func (l *Logger) ExecuteCallback(_ context.Context, arg any) {
	entry, ok := arg.(repositories.JournalEntry)
	if !ok {
		return
	}
	l.log.Info(entry.Message, "kind", entry.Kind)
	if err := l.journal.Append(entry); err != nil {
		l.log.Error("Journal append failed", "error", err)
	}
}

func (l *Logger) Stats() workers.Stats { return l.pool.Stats() }
