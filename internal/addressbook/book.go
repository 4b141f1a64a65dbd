package addressbook

import (
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// EmptyBook is the rendering of a book without records.
const EmptyBook = "No contacts found."

// Book maps contact names to records, remembering insertion order.
// It is not safe for concurrent use; a session owns exactly one Book.
type Book struct {
	records     *orderedmap.OrderedMap[string, *Record]
	strictEdits bool
}

// Option configures a Book.
type Option func(*Book)

// WithStrictEdits makes EditPhoneInRecord validate the new phone instead of
// storing it unchecked.
func WithStrictEdits(strict bool) Option {
	return func(b *Book) {
		b.strictEdits = strict
	}
}

// New creates an empty Book.
func New(opts ...Option) *Book {
	b := &Book{records: orderedmap.New[string, *Record]()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AddRecord creates a record and stores it under name, replacing any existing
// record with that name. A replaced name keeps its position in the order.
// If any phone is invalid the book is left untouched.
func (b *Book) AddRecord(name string, phones ...string) error {
	r, err := NewRecord(name, phones...)
	if err != nil {
		return err
	}
	b.records.Set(name, r)
	return nil
}

// DeleteRecord removes the record for name, if any.
func (b *Book) DeleteRecord(name string) {
	b.records.Delete(name)
}

// SearchRecord renders the record for name, or a not-found line.
func (b *Book) SearchRecord(name string) string {
	r, ok := b.records.Get(name)
	if !ok {
		return fmt.Sprintf("%s not found in contacts.", name)
	}
	return r.String()
}

// get returns a copy of the record for name.
func (b *Book) get(name string) (Record, bool) {
	r, ok := b.records.Get(name)
	if !ok {
		return Record{}, false
	}
	return r.clone(), true
}

// AddPhoneToRecord appends phone to the record for name.
// Unknown names are ignored.
func (b *Book) AddPhoneToRecord(name, phone string) error {
	r, ok := b.records.Get(name)
	if !ok {
		return nil
	}
	return r.AddPhone(phone)
}

// DeletePhoneFromRecord removes phone from the record for name.
// Unknown names are ignored.
func (b *Book) DeletePhoneFromRecord(name, phone string) {
	if r, ok := b.records.Get(name); ok {
		r.DeletePhone(phone)
	}
}

// EditPhoneInRecord replaces oldPhone with newPhone in the record for name.
// Unknown names are ignored. Only a book built WithStrictEdits(true) can fail.
func (b *Book) EditPhoneInRecord(name, oldPhone, newPhone string) error {
	r, ok := b.records.Get(name)
	if !ok {
		return nil
	}
	if b.strictEdits {
		return r.ReplacePhone(oldPhone, newPhone)
	}
	r.EditPhone(oldPhone, newPhone)
	return nil
}

// FindRecordByPhone returns a copy of the first record, in insertion order,
// that holds phone.
func (b *Book) FindRecordByPhone(phone string) (Record, bool) {
	for pair := b.records.Oldest(); pair != nil; pair = pair.Next() {
		if _, ok := pair.Value.FindPhone(phone); ok {
			return pair.Value.clone(), true
		}
	}
	return Record{}, false
}

// Len returns the number of records.
func (b *Book) Len() int {
	return b.records.Len()
}

// names returns record names in insertion order.
func (b *Book) names() []string {
	out := make([]string, 0, b.records.Len())
	for pair := b.records.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

func (b *Book) String() string {
	if b.records.Len() == 0 {
		return EmptyBook
	}
	lines := make([]string, 0, b.records.Len())
	for pair := b.records.Oldest(); pair != nil; pair = pair.Next() {
		lines = append(lines, pair.Value.String())
	}
	return strings.Join(lines, "\n")
}
