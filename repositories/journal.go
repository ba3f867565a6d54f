//go:generate go run go.uber.org/mock/mockgen -source=journal.go -destination=../mocks/mock_journal_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"slices"
	"time"
	"wordmole/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const journalPrefix = "log:"

type IJournalRepository interface {
	Append(entry JournalEntry) error
	Entries(limit *int) ([]JournalEntry, error)
}

// JournalEntry is one line of the server log.
type JournalEntry struct {
	ID         uuid.UUID
	At         time.Time
	Kind       string
	Message    string
	Attributes map[string]string
}

type JournalRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewJournalRepository(db *badger.DB, log *slog.Logger) JournalRepository {
	return JournalRepository{db: db, log: log}
}

// OpenJournal opens the badger store backing the journal. An empty path keeps
// the journal in memory.
func OpenJournal(path string) (*badger.DB, error) {
	options := badger.DefaultOptions(path).WithLoggingLevel(badger.WARNING)
	if path == "" {
		options = options.WithInMemory(true)
	}
	return badger.Open(options)
}

// OpenJournalReadOnly opens the journal of a running server without taking
// its lock.
func OpenJournalReadOnly(path string) (*badger.DB, error) {
	return badger.Open(badger.DefaultOptions(path).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING))
}

// Append persists an entry under "log:{timestamp_padded}:{uuid}" so that a
// prefix scan returns entries in chronological order.
func (j JournalRepository) Append(entry JournalEntry) error {
	if j.db.IsClosed() {
		return errors.ErrJournalClosed
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.At.IsZero() {
		entry.At = time.Now().UTC()
	}
	key := fmt.Sprintf("%s%019d:%s", journalPrefix, entry.At.UnixNano(), entry.ID)

	value, err := toStruct(entry)
	if err != nil {
		return err
	}
	bytes, err := proto.Marshal(value)
	if err != nil {
		return err
	}
	err = j.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
	if err != nil {
		return err
	}
	j.log.Debug("Journal entry stored", "key", key)
	return nil
}

// Entries returns the most recent entries, oldest first. A nil limit returns
// the whole journal.
func (j JournalRepository) Entries(limit *int) ([]JournalEntry, error) {
	if j.db.IsClosed() {
		return nil, errors.ErrJournalClosed
	}
	var raw [][]byte
	err := j.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := []byte(journalPrefix)
		// Seek past the greatest possible timestamp to iterate backwards.
		for it.Seek(append(prefix, []byte("9999999999999999999")...)); it.ValidForPrefix(prefix); it.Next() {
			if limit != nil && len(raw) == *limit {
				break
			}
			value, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			raw = append(raw, value)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Reverse(raw)
	entries := make([]JournalEntry, 0, len(raw))
	for _, b := range raw {
		var value structpb.Struct
		if err := proto.Unmarshal(b, &value); err != nil {
			return nil, err
		}
		entry, err := fromStruct(&value)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func toStruct(entry JournalEntry) (*structpb.Struct, error) {
	attributes := lo.MapValues(entry.Attributes, func(v string, _ string) any { return v })
	return structpb.NewStruct(map[string]any{
		"id":         entry.ID.String(),
		"at":         entry.At.UTC().Format(time.RFC3339Nano),
		"kind":       entry.Kind,
		"message":    entry.Message,
		"attributes": attributes,
	})
}

func fromStruct(value *structpb.Struct) (JournalEntry, error) {
	fields := value.GetFields()
	id, err := uuid.Parse(fields["id"].GetStringValue())
	if err != nil {
		return JournalEntry{}, err
	}
	at, err := time.Parse(time.RFC3339Nano, fields["at"].GetStringValue())
	if err != nil {
		return JournalEntry{}, err
	}
	var attributes map[string]string
	if nested := fields["attributes"].GetStructValue(); nested != nil && len(nested.GetFields()) > 0 {
		attributes = lo.MapValues(nested.GetFields(), func(v *structpb.Value, _ string) string {
			return v.GetStringValue()
		})
	}
	return JournalEntry{
		ID:         id,
		At:         at,
		Kind:       fields["kind"].GetStringValue(),
		Message:    fields["message"].GetStringValue(),
		Attributes: attributes,
	}, nil
}
