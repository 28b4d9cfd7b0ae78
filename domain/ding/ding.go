// Package ding defines the message exchanged between two identities.
// A ding is immutable once written to a node.
package ding

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"dinger/domain/record"
	"dinger/errors"

	"github.com/go-playground/validator/v10"
)

// DisplayLayout mirrors the en-US "date time" rendering used by the
// browser client (toLocaleDateString + " " + toLocaleTimeString).
const DisplayLayout = "1/2/2006 3:04:05 PM"

var validate = validator.New()

var timestampLayouts = []string{
	DisplayLayout,
	"1/2/2006, 3:04:05 PM",
	"1/2/2006 15:04:05",
	"1/2/2006, 15:04:05",
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

type Ding struct {
	Sender           string    `json:"sender" validate:"required"`
	Recipient        string    `json:"recipient" validate:"required"`
	Note             string    `json:"note" validate:"required"`
	TimestampWritten string    `json:"timestampWritten"`
	CreatedAt        time.Time `json:"createdAt,omitzero"`
}

// New builds a ding stamped at now. The display timestamp is kept for
// older clients, CreatedAt is the sort key.
func New(sender, recipient, note string, now time.Time) Ding {
	return Ding{
		Sender:           sender,
		Recipient:        recipient,
		Note:             note,
		TimestampWritten: now.Format(DisplayLayout),
		CreatedAt:        now.UTC(),
	}
}

// Instant returns the moment the ding was written.
// Dings without CreatedAt fall back to parsing TimestampWritten.
func (d Ding) Instant() (time.Time, bool) {
	if !d.CreatedAt.IsZero() {
		return d.CreatedAt, true
	}
	return ParseTimestamp(d.TimestampWritten)
}

func (d Ding) Validate() error {
	if strings.TrimSpace(d.Note) == "" {
		return errors.ErrEmptyNote
	}
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidDing, err)
	}
	return nil
}

// ParseTimestamp parses a locale formatted timestamp. Local time is assumed
// for layouts without a zone.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func Encode(d Ding) ([]byte, error) {
	return json.Marshal(d)
}

// FromRecord reads the ding carried by a node record.
func FromRecord(rec record.Record) (Ding, error) {
	var d Ding
	if err := rec.JSON(&d); err != nil {
		return Ding{}, fmt.Errorf("%w: record %s: %v", errors.ErrInvalidDing, rec.ID, err)
	}
	return d, nil
}
