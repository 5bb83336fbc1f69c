package session

import (
	"fjacquet/event-budget/internal/store"
)

// Document snapshots the session for saving.
func (s *Session) Document() *store.Document {
	return &store.Document{
		Version:  store.DocumentVersion,
		Currency: s.currency,
		Project:  s.project,
		DriverID: s.driverID,
		Items:    store.RecordsFromItems(s.items.Items()),
	}
}

// FromDocument builds a session from a loaded document. The document's
// currency wins over any WithCurrency option.
func FromDocument(doc *store.Document, source string, opts ...Option) (*Session, error) {
	items, err := doc.ToItems(source)
	if err != nil {
		return nil, err
	}
	if doc.Currency != "" {
		opts = append(opts, WithCurrency(doc.Currency))
	}
	s := New(opts...)
	s.Restore(doc.Project, items, doc.DriverID)
	return s, nil
}
