package output

// T exposes a minimal i18n contract for user-facing messages.
type T interface {
	// T renders the message identified by key for the given locale.
	// data is an optional map used for template placeholders (may be nil).
	T(locale, key string, data map[string]any) string
	// Err renders err for users: domain errors resolve to "errors.<code>",
	// anything else to "errors.generic".
	Err(locale string, err error) string
}
