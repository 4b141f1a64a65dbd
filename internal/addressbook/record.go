package addressbook

import (
	"fmt"
	"slices"
	"strings"

	"go.uber.org/multierr"
)

// Record is one contact: a name and its phones in insertion order.
// Duplicate phones are allowed.
type Record struct {
	name   Name
	phones []Phone
}

// NewRecord builds a record named name holding the given phones.
// Every phone is validated; if any fails, no record is returned and the
// error combines every failure.
func NewRecord(name string, phones ...string) (*Record, error) {
	r := &Record{name: newName(name)}
	var errs error
	for _, p := range phones {
		errs = multierr.Append(errs, r.AddPhone(p))
	}
	if errs != nil {
		return nil, errs
	}
	return r, nil
}

// Name returns the contact name.
func (r *Record) Name() string {
	return r.name.Value()
}

// Phones returns the phone numbers in insertion order.
func (r *Record) Phones() []string {
	out := make([]string, len(r.phones))
	for i, p := range r.phones {
		out[i] = p.String()
	}
	return out
}

// AddPhone validates value and appends it. On failure the record is unchanged.
func (r *Record) AddPhone(value string) error {
	p, err := NewPhone(value)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// DeletePhone removes the first phone equal to value. Missing values are ignored.
func (r *Record) DeletePhone(value string) {
	i := r.indexOf(value)
	if i < 0 {
		return
	}
	r.phones = append(r.phones[:i], r.phones[i+1:]...)
}

// EditPhone overwrites the first phone equal to oldValue with newValue.
// newValue is stored as given, without the checks NewPhone applies.
// Missing oldValue is ignored.
func (r *Record) EditPhone(oldValue, newValue string) {
	if i := r.indexOf(oldValue); i >= 0 {
		r.phones[i].set(newValue)
	}
}

// ReplacePhone is EditPhone with newValue validated first. An invalid
// newValue leaves the record unchanged.
func (r *Record) ReplacePhone(oldValue, newValue string) error {
	i := r.indexOf(oldValue)
	if i < 0 {
		return nil
	}
	p, err := NewPhone(newValue)
	if err != nil {
		return err
	}
	r.phones[i] = p
	return nil
}

// FindPhone returns the first phone equal to value.
func (r *Record) FindPhone(value string) (Phone, bool) {
	i := r.indexOf(value)
	if i < 0 {
		return Phone{}, false
	}
	return r.phones[i], true
}

func (r *Record) indexOf(value string) int {
	return slices.IndexFunc(r.phones, func(p Phone) bool { return p.Value() == value })
}

// clone returns a deep copy so callers never share phones with the book.
func (r *Record) clone() Record {
	return Record{
		name:   r.name,
		phones: append([]Phone(nil), r.phones...),
	}
}

func (r *Record) String() string {
	return fmt.Sprintf("Contact name: %s, phones: %s", r.name, strings.Join(r.Phones(), "; "))
}
