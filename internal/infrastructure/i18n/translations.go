// Package i18n renders notification and error text from embedded TOML
// message bundles.
package i18n

import (
	"embed"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"

	"ircportal/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

var _ output.Translator = (*Translator)(nil)

// Translator renders bundle messages in the closest supported language.
type Translator struct {
	bundle     *i18n.Bundle
	supported  []language.Tag
	matcher    language.Matcher
	localizers sync.Map // supported locale -> *i18n.Localizer
}

// NewTranslator loads the embedded bundles. defaultLocale (e.g. "en") is
// used when a request names nothing the bundles cover.
func NewTranslator(defaultLocale string) *Translator {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range []string{"active.en.toml", "active.fr.toml"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			logrus.WithField("file", file).WithError(err).Error("i18n: load message file")
		}
	}

	// The matcher falls back to the first tag.
	supported := []language.Tag{tag}
	for _, t := range bundle.LanguageTags() {
		if t != tag {
			supported = append(supported, t)
		}
	}
	return &Translator{bundle: bundle, supported: supported, matcher: language.NewMatcher(supported)}
}

// Match picks the supported locale for an Accept-Language value such as
// "fr-CA,fr;q=0.9,en;q=0.8". Regional variants resolve to their base
// bundle. Empty or unparsable values give the default locale.
func (t *Translator) Match(acceptLanguage string) string {
	wanted, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(wanted) == 0 {
		return t.supported[0].String()
	}
	_, index, confidence := t.matcher.Match(wanted...)
	if confidence == language.No {
		index = 0
	}
	return t.supported[index].String()
}

// T renders key in the locale matched from locale, which may be a bare tag or
// a full Accept-Language value.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	matched := t.Match(locale)
	msg, err := t.localizer(matched).Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "locale": matched}).WithError(err).Debug("i18n: localize failed")
		return key
	}
	return msg
}

func (t *Translator) localizer(locale string) *i18n.Localizer {
	if l, ok := t.localizers.Load(locale); ok {
		return l.(*i18n.Localizer)
	}
	l, _ := t.localizers.LoadOrStore(locale, i18n.NewLocalizer(t.bundle, locale, t.supported[0].String()))
	return l.(*i18n.Localizer)
}
