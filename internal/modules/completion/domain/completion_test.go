package domain_test

import (
	"errors"
	"testing"
	"time"

	"sabibi/internal/modules/completion/domain"
	apperrors "sabibi/internal/platform/errors"
)

func TestNewCompletionStampsLocalDate(t *testing.T) {
	t.Parallel()
	loc := time.FixedZone("UTC+9", 9*60*60)
	// 23:30 UTC on the 15th is already the 16th at UTC+9.
	at := time.Date(2026, 2, 15, 23, 30, 0, 0, time.UTC).In(loc)
	c, err := domain.NewCompletion(at, 25)
	if err != nil {
		t.Fatalf("new completion: %v", err)
	}
	if c.Date != "2026-02-16" || c.StudyMinutes != 25 {
		t.Fatalf("unexpected completion: %+v", c)
	}
}

func TestNewCompletionRejectsNonPositiveMinutes(t *testing.T) {
	t.Parallel()
	for _, minutes := range []int{0, -5} {
		if _, err := domain.NewCompletion(time.Now(), minutes); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("minutes %d: expected invalid input, got %v", minutes, err)
		}
	}
}

func TestDecodeCollection(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name    string
		raw     string
		want    int
		corrupt bool
	}{
		{name: "empty", raw: "", want: 0},
		{name: "whitespace", raw: "  \n", want: 0},
		{name: "empty array", raw: "[]", want: 0},
		{name: "two records", raw: `[{"date":"2026-02-14","studyMinutes":25},{"date":"2026-02-15","studyMinutes":50}]`, want: 2},
		{name: "not json", raw: "not json at all", corrupt: true},
		{name: "object", raw: `{"date":"2026-02-14","studyMinutes":25}`, corrupt: true},
		{name: "number", raw: "42", corrupt: true},
		{name: "null", raw: "null", corrupt: true},
		{name: "truncated array", raw: `[{"date":"2026-02-14"`, corrupt: true},
		{name: "wrong element type", raw: `[1, 2, 3]`, corrupt: true},
		{name: "null and empty elements", raw: `[null, {}, {"date":"2026-02-16","studyMinutes":25}]`, corrupt: true},
		{name: "negative minutes", raw: `[{"date":"2026-02-16","studyMinutes":-3}]`, corrupt: true},
		{name: "unparsable date", raw: `[{"date":"16/02/2026","studyMinutes":25}]`, corrupt: true},
		{name: "one bad element among good", raw: `[{"date":"2026-02-15","studyMinutes":25},{"studyMinutes":50}]`, corrupt: true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := domain.DecodeCollection([]byte(tc.raw))
			if tc.corrupt {
				if !errors.Is(err, apperrors.ErrCorruptCollection) {
					t.Fatalf("expected corrupt collection error, got %v", err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got == nil || len(got) != tc.want {
				t.Fatalf("expected %d records, got %#v", tc.want, got)
			}
		})
	}
}

func TestEncodeCollectionUsesPersistedFieldNames(t *testing.T) {
	t.Parallel()
	payload, err := domain.EncodeCollection(nil)
	if err != nil {
		t.Fatalf("encode nil: %v", err)
	}
	if string(payload) != "[]" {
		t.Fatalf("expected empty array, got %s", payload)
	}
	payload, err = domain.EncodeCollection([]domain.StudyCompletion{{Date: "2026-02-16", StudyMinutes: 25}})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if string(payload) != `[{"date":"2026-02-16","studyMinutes":25}]` {
		t.Fatalf("unexpected layout: %s", payload)
	}
}
