package addressbook

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func mustRecord(t *testing.T, name string, phones ...string) *Record {
	t.Helper()
	r, err := NewRecord(name, phones...)
	if err != nil {
		t.Fatalf("NewRecord(%q, %q) error = %v", name, phones, err)
	}
	return r
}

func checkPhones(t *testing.T, r *Record, want ...string) {
	t.Helper()
	if got := r.Phones(); !slices.Equal(got, want) {
		t.Errorf("phones = %q, want %q", got, want)
	}
}

func TestNewRecord(t *testing.T) {
	r := mustRecord(t, "Bob", "123", "456")

	if r.Name() != "Bob" {
		t.Errorf("Name() = %q, want %q", r.Name(), "Bob")
	}
	checkPhones(t, r, "123", "456")
}

func TestNewRecord_NoPhones(t *testing.T) {
	r := mustRecord(t, "Bob")

	checkPhones(t, r)
	if got, want := r.String(), "Contact name: Bob, phones: "; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNewRecord_InvalidPhoneDiscardsRecord(t *testing.T) {
	// When: two of three phones are invalid
	r, err := NewRecord("Bob", "123", "abc", "99999999999999")

	// Then: no record and both failures are reported
	if r != nil {
		t.Errorf("record = %v, want nil", r)
	}
	var ve *ValidationError
	if !errors.As(err, &ve) || !errors.Is(err, ErrInvalidPhone) {
		t.Fatalf("error = %v, want a phone ValidationError", err)
	}
	for _, bad := range []string{`"abc"`, `"99999999999999"`} {
		if !strings.Contains(err.Error(), bad) {
			t.Errorf("error %q should mention %s", err, bad)
		}
	}
}

func TestRecord_AddPhone(t *testing.T) {
	r := mustRecord(t, "Bob", "123")

	if err := r.AddPhone("123"); err != nil {
		t.Fatalf("AddPhone(123) error = %v", err)
	}
	checkPhones(t, r, "123", "123") // duplicates are kept

	if err := r.AddPhone("12-3"); !errors.Is(err, ErrInvalidPhone) {
		t.Errorf("AddPhone(12-3) error = %v, want ErrInvalidPhone", err)
	}
	checkPhones(t, r, "123", "123")
}

func TestRecord_DeletePhone(t *testing.T) {
	tests := []struct {
		name   string
		phones []string
		delete string
		want   []string
	}{
		{name: "removes match", phones: []string{"1", "2", "3"}, delete: "2", want: []string{"1", "3"}},
		{name: "removes first of duplicates", phones: []string{"1", "2", "1"}, delete: "1", want: []string{"2", "1"}},
		{name: "missing is no-op", phones: []string{"1"}, delete: "9", want: []string{"1"}},
		{name: "empty record", phones: nil, delete: "1", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mustRecord(t, "A", tt.phones...)

			r.DeletePhone(tt.delete)

			checkPhones(t, r, tt.want...)
		})
	}
}

func TestRecord_EditPhone(t *testing.T) {
	r := mustRecord(t, "A", "1", "2", "1")

	r.EditPhone("1", "7")
	checkPhones(t, r, "7", "2", "1") // only the first match changes

	r.EditPhone("404", "8")
	checkPhones(t, r, "7", "2", "1")
}

func TestRecord_EditPhoneSkipsValidation(t *testing.T) {
	r := mustRecord(t, "A", "1")

	r.EditPhone("1", "not a phone")

	checkPhones(t, r, "not a phone")
}

func TestRecord_ReplacePhone(t *testing.T) {
	r := mustRecord(t, "A", "1", "2")

	if err := r.ReplacePhone("2", "22"); err != nil {
		t.Fatalf("ReplacePhone(2, 22) error = %v", err)
	}
	checkPhones(t, r, "1", "22")

	if err := r.ReplacePhone("1", "99999999999999"); !errors.Is(err, ErrInvalidPhone) {
		t.Errorf("ReplacePhone(too long) error = %v, want ErrInvalidPhone", err)
	}
	checkPhones(t, r, "1", "22")

	if err := r.ReplacePhone("404", "bad"); err != nil {
		t.Errorf("ReplacePhone(missing) error = %v, want nil", err)
	}
}

func TestRecord_FindPhone(t *testing.T) {
	r := mustRecord(t, "A", "1", "2")

	if p, ok := r.FindPhone("2"); !ok || p.String() != "2" {
		t.Errorf("FindPhone(2) = %q, %v, want 2, true", p.String(), ok)
	}
	if _, ok := r.FindPhone("3"); ok {
		t.Error("FindPhone(3) should miss")
	}
}

func TestRecord_String(t *testing.T) {
	r := mustRecord(t, "Alice", "111", "222", "333")

	if got, want := r.String(), "Contact name: Alice, phones: 111; 222; 333"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
