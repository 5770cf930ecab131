package output

// Translator renders user-facing text: notification titles and messages and
// the descriptions of domain error codes.
type Translator interface {
	// T renders the message identified by key for the given locale. data
	// fills template placeholders and may be nil. Unknown keys render as the
	// key itself.
	T(locale, key string, data map[string]any) string
	// Match returns the supported locale closest to an Accept-Language
	// value, or the default locale when nothing matches.
	Match(acceptLanguage string) string
}
