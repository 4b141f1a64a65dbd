package addressbook

import (
	"errors"
	"slices"
	"testing"
)

func mustAdd(t *testing.T, b *Book, name string, phones ...string) {
	t.Helper()
	if err := b.AddRecord(name, phones...); err != nil {
		t.Fatalf("AddRecord(%q, %q) error = %v", name, phones, err)
	}
}

func TestBook_AddAndSearch(t *testing.T) {
	b := New()
	mustAdd(t, b, "Bob", "123")

	if got, want := b.SearchRecord("Bob"), "Contact name: Bob, phones: 123"; got != want {
		t.Errorf("SearchRecord() = %q, want %q", got, want)
	}
}

func TestBook_SearchMissing(t *testing.T) {
	if got, want := New().SearchRecord("Ghost"), "Ghost not found in contacts."; got != want {
		t.Errorf("SearchRecord() = %q, want %q", got, want)
	}
}

func TestBook_AddRecordOverwrites(t *testing.T) {
	// Given: a book with A then B
	b := New()
	mustAdd(t, b, "A", "1")
	mustAdd(t, b, "B", "5")

	// When: A is added again
	mustAdd(t, b, "A", "2")

	// Then: A's phones are replaced and A keeps its position
	if b.Len() != 2 {
		t.Errorf("Len() = %d, want 2", b.Len())
	}
	rec, ok := b.get("A")
	if !ok {
		t.Fatal("A should exist")
	}
	if got := rec.Phones(); !slices.Equal(got, []string{"2"}) {
		t.Errorf("phones = %q, want [2]", got)
	}
	if got := b.names(); !slices.Equal(got, []string{"A", "B"}) {
		t.Errorf("names = %q, want [A B]", got)
	}
}

func TestBook_AddRecordInvalidLeavesBookUntouched(t *testing.T) {
	b := New()
	mustAdd(t, b, "A", "1")

	if err := b.AddRecord("A", "x"); !errors.Is(err, ErrInvalidPhone) {
		t.Errorf("AddRecord(A, x) error = %v, want ErrInvalidPhone", err)
	}
	if err := b.AddRecord("C", "1", "1234567890123"); !errors.Is(err, ErrInvalidPhone) {
		t.Errorf("AddRecord(C, ...) error = %v, want ErrInvalidPhone", err)
	}

	if got, want := b.String(), "Contact name: A, phones: 1"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBook_DeleteRecord(t *testing.T) {
	b := New()
	mustAdd(t, b, "A", "1")
	mustAdd(t, b, "B", "2")

	b.DeleteRecord("A")

	if got := b.names(); !slices.Equal(got, []string{"B"}) {
		t.Errorf("names = %q, want [B]", got)
	}
	if _, ok := b.get("A"); ok {
		t.Error("A should be gone")
	}
}

func TestBook_DeleteThenReAddGoesLast(t *testing.T) {
	b := New()
	mustAdd(t, b, "A", "1")
	mustAdd(t, b, "B", "2")

	b.DeleteRecord("A")
	mustAdd(t, b, "A", "3")

	if got := b.names(); !slices.Equal(got, []string{"B", "A"}) {
		t.Errorf("names = %q, want [B A]", got)
	}
}

func TestBook_DeleteMissingOnEmptyBook(t *testing.T) {
	b := New()

	b.DeleteRecord("Ghost")

	if got := b.String(); got != EmptyBook {
		t.Errorf("String() = %q, want %q", got, EmptyBook)
	}
	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0", b.Len())
	}
}

func TestBook_EditPhoneInRecord(t *testing.T) {
	tests := []struct {
		name    string
		strict  bool
		newNum  string
		wantErr error
		want    string
	}{
		{name: "default stores unchecked", newNum: "99999999999999", want: "Contact name: Bob, phones: 99999999999999"},
		{name: "strict rejects invalid", strict: true, newNum: "99999999999999", wantErr: ErrInvalidPhone, want: "Contact name: Bob, phones: 123"},
		{name: "strict accepts valid", strict: true, newNum: "456", want: "Contact name: Bob, phones: 456"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: Bob with one phone
			b := New(WithStrictEdits(tt.strict))
			mustAdd(t, b, "Bob", "123")

			// When: the phone is edited
			err := b.EditPhoneInRecord("Bob", "123", tt.newNum)

			// Then: the error and stored phone match the mode
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("EditPhoneInRecord() error = %v, want %v", err, tt.wantErr)
			}
			if got := b.SearchRecord("Bob"); got != tt.want {
				t.Errorf("SearchRecord() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBook_PhoneOpsOnMissingNameAreNoOps(t *testing.T) {
	b := New(WithStrictEdits(true))

	if err := b.AddPhoneToRecord("Ghost", "not-validated"); err != nil {
		t.Errorf("AddPhoneToRecord() error = %v, want nil", err)
	}
	b.DeletePhoneFromRecord("Ghost", "1")
	if err := b.EditPhoneInRecord("Ghost", "1", "bad"); err != nil {
		t.Errorf("EditPhoneInRecord() error = %v, want nil", err)
	}

	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0", b.Len())
	}
}

func TestBook_AddAndDeletePhoneInRecord(t *testing.T) {
	b := New()
	mustAdd(t, b, "A", "1")

	if err := b.AddPhoneToRecord("A", "2"); err != nil {
		t.Fatalf("AddPhoneToRecord(2) error = %v", err)
	}
	if err := b.AddPhoneToRecord("A", "two"); !errors.Is(err, ErrInvalidPhone) {
		t.Errorf("AddPhoneToRecord(two) error = %v, want ErrInvalidPhone", err)
	}
	b.DeletePhoneFromRecord("A", "1")

	rec, _ := b.get("A")
	if got := rec.Phones(); !slices.Equal(got, []string{"2"}) {
		t.Errorf("phones = %q, want [2]", got)
	}
}

func TestBook_FindRecordByPhone(t *testing.T) {
	b := New()
	mustAdd(t, b, "A", "1", "2")
	mustAdd(t, b, "B", "2", "3")

	tests := []struct {
		phone  string
		want   string
		wantOK bool
	}{
		{phone: "2", want: "A", wantOK: true}, // first in insertion order
		{phone: "3", want: "B", wantOK: true},
		{phone: "4"},
	}
	for _, tt := range tests {
		rec, ok := b.FindRecordByPhone(tt.phone)
		if ok != tt.wantOK {
			t.Errorf("FindRecordByPhone(%q) ok = %v, want %v", tt.phone, ok, tt.wantOK)
			continue
		}
		if ok && rec.Name() != tt.want {
			t.Errorf("FindRecordByPhone(%q) = %q, want %q", tt.phone, rec.Name(), tt.want)
		}
	}
}

func TestBook_ReturnedRecordsAreCopies(t *testing.T) {
	// Given: a book with A
	b := New()
	mustAdd(t, b, "A", "1")

	// When: the returned record is mutated
	rec, _ := b.get("A")
	if err := rec.AddPhone("2"); err != nil {
		t.Fatal(err)
	}
	rec.EditPhone("1", "9")

	// Then: the stored record is unchanged
	if got, want := b.SearchRecord("A"), "Contact name: A, phones: 1"; got != want {
		t.Errorf("SearchRecord() = %q, want %q", got, want)
	}
}

func TestBook_String(t *testing.T) {
	b := New()
	mustAdd(t, b, "A", "1")
	mustAdd(t, b, "B", "2", "3")

	want := "Contact name: A, phones: 1\nContact name: B, phones: 2; 3"
	if got := b.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
