package i18n

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"eventcal/internal/domain"
	"eventcal/internal/domain/entities"
)

var domainErrors = []error{
	domain.ErrInvalidDateOrder,
	domain.ErrSpanTooLong,
	domain.ErrUnsupportedChunkForDailyRepeat,
	domain.ErrUnknownRepeat,
	domain.ErrEventNotFound,
	domain.ErrLocationNotFound,
	domain.ErrCategoryNotFound,
	domain.ErrNotOwner,
	domain.ErrDateTimeInvalid,
	domain.ErrInvalidMonth,
	domain.ErrEmptyName,
}

func TestEveryDomainErrorIsTranslated(t *testing.T) {
	tr := NewTranslator("fr")

	for _, locale := range []string{"fr", "en"} {
		generic := tr.T(locale, genericErrorKey, nil)
		for _, err := range domainErrors {
			key := "errors." + domain.Code(err)
			if got := tr.T(locale, key, nil); got == key {
				t.Fatalf("%s: missing translation for %s", locale, key)
			}
			wrapped := fmt.Errorf("update event 3: %w", err)
			if got := tr.Err(locale, wrapped); got == generic {
				t.Fatalf("%s: expected specific message for %s, got generic", locale, key)
			}
		}
	}
}

func TestEveryRepeatHasLabel(t *testing.T) {
	tr := NewTranslator("fr")
	for _, r := range entities.AllRepeats() {
		key := "repeat." + r.String()
		if got := tr.T("en", key, nil); got != r.Label() {
			t.Fatalf("expected %q for %s, got %q", r.Label(), key, got)
		}
		if got := tr.T("fr", key, nil); got == key {
			t.Fatalf("missing french label for %s", key)
		}
	}
}

func TestErrFallsBackToGeneric(t *testing.T) {
	tr := NewTranslator("fr")
	got := tr.Err("fr", errors.New("connection refused"))
	if got != tr.T("fr", genericErrorKey, nil) {
		t.Fatalf("expected generic message, got %q", got)
	}
	if got := tr.Err("fr", nil); got != "" {
		t.Fatalf("expected empty string for nil error, got %q", got)
	}
}

func TestMissingKeyReturnsKey(t *testing.T) {
	tr := NewTranslator("fr")
	if got := tr.T("fr", "ui.does_not_exist", nil); got != "ui.does_not_exist" {
		t.Fatalf("expected key back, got %q", got)
	}
}

func TestTemplateDataAndLocaleFallback(t *testing.T) {
	tr := NewTranslator("fr")
	got := tr.T("en", "info.event_created", map[string]any{"Title": "Yoga", "ID": 4})
	if !strings.Contains(got, "Yoga") || !strings.Contains(got, "#4") {
		t.Fatalf("unexpected message %q", got)
	}
	// Unknown locales fall back to the default language.
	got = tr.T("de", "info.event_deleted", nil)
	if got != tr.T("fr", "info.event_deleted", nil) {
		t.Fatalf("expected french fallback, got %q", got)
	}
}

func TestMonthNames(t *testing.T) {
	tr := NewTranslator("fr")
	for m := time.January; m <= time.December; m++ {
		key := fmt.Sprintf("month.%d", int(m))
		if got := tr.T("en", key, nil); got != m.String() {
			t.Fatalf("expected %s, got %q", m, got)
		}
	}
	if got := tr.T("fr", "month.3", nil); got != "mars" {
		t.Fatalf("expected mars, got %q", got)
	}
}
