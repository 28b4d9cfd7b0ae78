package repositories

import (
	"context"
	"log/slog"

	"dinger/contract"

	"github.com/abadojack/whatlanggo"
	"github.com/blugelabs/bluge"
)

const (
	noteField    = "note"
	partnerField = "partner"
	langField    = "lang"
)

// NoteIndex is a full-text index over ding notes backed by bluge.
// Documents are keyed by record ID so indexing the same ding twice, as the
// poller does on every fetch, replaces the previous document.
type NoteIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewNoteIndex(writer *bluge.Writer, log *slog.Logger) *NoteIndex {
	return &NoteIndex{writer: writer, log: log}
}

func (n *NoteIndex) Index(_ context.Context, entries ...contract.IndexEntry) error {
	if len(entries) == 0 {
		return nil
	}
	batch := bluge.NewBatch()
	for _, entry := range entries {
		doc := bluge.NewDocument(entry.RecordID).
			AddField(bluge.NewTextField(noteField, entry.Note).StoreValue()).
			AddField(bluge.NewKeywordField(partnerField, entry.Partner).StoreValue()).
			AddField(bluge.NewKeywordField(langField, whatlanggo.DetectLang(entry.Note).Iso6391()).StoreValue())
		batch.Update(doc.ID(), doc)
	}
	return n.writer.Batch(batch)
}

// Search returns the record IDs of the notes best matching terms.
func (n *NoteIndex) Search(ctx context.Context, terms string, limit int) ([]string, error) {
	reader, err := n.writer.Reader()
	if err != nil {
		return nil, err
	}
	defer func() { _ = reader.Close() }()

	query := bluge.NewMatchQuery(terms).SetField(noteField)
	matches, err := reader.Search(ctx, bluge.NewTopNSearch(limit, query))
	if err != nil {
		return nil, err
	}

	var ids []string
	match, err := matches.Next()
	for err == nil && match != nil {
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "_id" {
				ids = append(ids, string(value))
				return false
			}
			return true
		})
		if err != nil {
			break
		}
		match, err = matches.Next()
	}
	if err != nil {
		return nil, err
	}
	n.log.Debug("Note search", "terms", terms, "hits", len(ids))
	return ids, nil
}
