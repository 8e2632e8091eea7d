package attendance

import (
	"time"

	"library-ledger/internal/pkg/patch"
	"library-ledger/internal/pkg/validation"
)

const (
	DefaultStatus = "Guest"
	DefaultAction = "Time In"
)

type Fields struct {
	Name   string `validate:"required,max=200"`
	Status string `validate:"max=50"`
	Action string `validate:"max=50"`
	Note   string `validate:"max=500"`
}

// Entry is one line of the visitor attendance log.
type Entry struct {
	id        int64
	fields    Fields
	timestamp time.Time
}

func New(id int64, f Fields, now time.Time) (*Entry, error) {
	f.Status = patch.OrDefault(f.Status, DefaultStatus)
	f.Action = patch.OrDefault(f.Action, DefaultAction)
	if err := validation.Struct(f); err != nil {
		return nil, err
	}
	return &Entry{id: id, fields: f, timestamp: now}, nil
}

func Reconstruct(id int64, f Fields, timestamp time.Time) *Entry {
	return &Entry{id: id, fields: f, timestamp: timestamp}
}

func (e *Entry) ID() int64            { return e.id }
func (e *Entry) Name() string         { return e.fields.Name }
func (e *Entry) Status() string       { return e.fields.Status }
func (e *Entry) Action() string       { return e.fields.Action }
func (e *Entry) Note() string         { return e.fields.Note }
func (e *Entry) Timestamp() time.Time { return e.timestamp }
