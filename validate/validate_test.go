package validate

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Ilya-36/planbot/core"
)

func TestDate(t *testing.T) {
	d, err := Date("2024-03-15")
	if err != nil {
		t.Fatalf("valid date rejected: %v", err)
	}
	if d.Year() != 2024 || d.Month() != 3 || d.Day() != 15 {
		t.Fatalf("wrong date parsed: %v", d)
	}

	for _, raw := range []string{
		"2024-13-01", // impossible month
		"2024-02-30", // impossible day
		"15-03-2024", // wrong field order
		"2024-3-15",  // unpadded month
		"2024-03-15 ",
		"tomorrow",
		"",
	} {
		if _, err := Date(raw); !errors.Is(err, ErrInvalidDateFormat) {
			t.Errorf("Date(%q): expected ErrInvalidDateFormat, got %v", raw, err)
		}
	}
}

func TestTimeRange(t *testing.T) {
	r, err := TimeRange("10:00-11:30")
	if err != nil {
		t.Fatalf("valid range rejected: %v", err)
	}
	want := core.TimeRange{Start: core.TimeOfDay{Hour: 10}, End: core.TimeOfDay{Hour: 11, Minute: 30}}
	if r != want {
		t.Fatalf("wrong range parsed: %+v", r)
	}

	// Ordering is not enforced: an inverted range passes validation.
	if _, err := TimeRange("11:00-10:00"); err != nil {
		t.Errorf("inverted range should be accepted: %v", err)
	}

	for _, raw := range []string{
		"10:00",       // missing half
		"24:00-01:00", // hour out of range
		"10:60-11:00", // minute out of range
		"10:00-11:00-12:00",
		"10.00-11.00",
		"",
	} {
		if _, err := TimeRange(raw); !errors.Is(err, ErrInvalidTimeFormat) {
			t.Errorf("TimeRange(%q): expected ErrInvalidTimeFormat, got %v", raw, err)
		}
	}
}

func TestParticipants(t *testing.T) {
	got, err := Participants(" alice , bob,carol")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"alice", "bob", "carol"}) {
		t.Fatalf("unexpected list: %#v", got)
	}

	// Empty entries survive the split; this layer does not reject them.
	got, _ = Participants("alice,,bob")
	if !reflect.DeepEqual(got, []string{"alice", "", "bob"}) {
		t.Fatalf("empty entries should be kept: %#v", got)
	}
}

func TestID(t *testing.T) {
	if id, err := ID(" 42 "); err != nil || id != 42 {
		t.Fatalf("expected 42, got %d (%v)", id, err)
	}
	for _, raw := range []string{"", "abc", "4.2", "7x"} {
		if _, err := ID(raw); !errors.Is(err, ErrInvalidIDFormat) {
			t.Errorf("ID(%q): expected ErrInvalidIDFormat, got %v", raw, err)
		}
	}
}

func TestText(t *testing.T) {
	if _, err := Text("   "); !errors.Is(err, ErrEmptyText) {
		t.Errorf("whitespace-only text should be rejected, got %v", err)
	}
	if v, err := Text("ship it"); err != nil || v != "ship it" {
		t.Errorf("expected text kept verbatim, got %q (%v)", v, err)
	}
	if v, _ := OptionalText("  bob  "); v != "bob" {
		t.Errorf("expected trimmed optional text, got %q", v)
	}
}
