// Package addressbook implements the in-memory contact model: validated phone
// values, contact records and the name-keyed address book that owns them.
package addressbook

// Field is a named scalar value. Two fields are equal when their values are.
type Field struct {
	value string
}

// Value returns the stored string.
func (f Field) Value() string {
	return f.value
}

func (f Field) String() string {
	return f.value
}

// Name is a contact's name. It is set once when the record is created.
type Name struct {
	Field
}

func newName(s string) Name {
	return Name{Field{value: s}}
}
