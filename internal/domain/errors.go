package domain

import "errors"

// Error is a domain error carrying a stable code used to look up the
// user-facing translation (key "errors.<code>").
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Validation errors. All are user-correctable.
var (
	ErrInvalidDateOrder               = newError("invalid_date_order", "la date de début doit précéder la date de fin")
	ErrSpanTooLong                    = newError("span_too_long", "seuls les événements de 7 jours ou moins sont supportés")
	ErrUnsupportedChunkForDailyRepeat = newError("unsupported_chunk_for_daily_repeat", "la répétition quotidienne ou en semaine n'est pas supportée pour un événement sur plusieurs jours")
)

// ErrUnknownRepeat is returned at the boundaries (storage, Discord input)
// when a repeat value is outside the enumeration. Reaching the evaluator
// with such a value is a broken invariant and panics instead.
var ErrUnknownRepeat = newError("unknown_repeat", "type de répétition inconnu")

// Application errors.
var (
	ErrEventNotFound    = newError("event_not_found", "événement non trouvé")
	ErrLocationNotFound = newError("location_not_found", "lieu non trouvé")
	ErrCategoryNotFound = newError("category_not_found", "catégorie non trouvée")
	ErrNotOwner         = newError("not_owner", "seul le créateur peut effectuer cette action")
	ErrDateTimeInvalid  = newError("datetime_invalid", "date invalide (attendu JJ/MM/AAAA HH:MM)")
	ErrInvalidMonth     = newError("invalid_month", "mois invalide")
	ErrEmptyName        = newError("empty_name", "le nom ne peut pas être vide")
)

// Code returns the domain code carried by err, or "" when err is not a
// domain error.
func Code(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// IsValidation reports whether err is one of the user-correctable
// validation errors.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidDateOrder) ||
		errors.Is(err, ErrSpanTooLong) ||
		errors.Is(err, ErrUnsupportedChunkForDailyRepeat) ||
		errors.Is(err, ErrUnknownRepeat)
}
