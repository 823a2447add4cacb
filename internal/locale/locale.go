// Package locale loads the embedded translation files and exposes
// localizers used by the GUI, the CLI and the calculation engine.
package locale

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/age-calculator/internal/config"
	"github.com/tartampluch/age-calculator/internal/engine"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed locales/*.json
var localeFS embed.FS

const (
	localeDir    = "locales"
	localePrefix = "active."
	localeSuffix = ".json"
)

// Bundle holds every embedded translation.
type Bundle struct {
	bundle    *i18n.Bundle
	languages []string
	matcher   language.Matcher
}

// NewBundle loads locales/active.<lang>.json files.
// Malformed file names are skipped; an unreadable locale is an error.
func NewBundle() (*Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir(localeDir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrLocalesAccess, err)
	}

	var detected []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, localePrefix) || !strings.HasSuffix(name, localeSuffix) {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, localePrefix), localeSuffix)
		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, localeDir+"/"+name); err != nil {
			return nil, fmt.Errorf("%s %s: %w", config.ErrLocaleLoad, name, err)
		}
		detected = append(detected, langCode)

		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, langCode,
			config.LogKeyFile, name,
		)
	}

	return &Bundle{
		bundle:    bundle,
		languages: detected,
		matcher:   language.NewMatcher(bundle.LanguageTags()),
	}, nil
}

// Languages returns the codes of the loaded locales, in file order.
func (b *Bundle) Languages() []string {
	return append([]string(nil), b.languages...)
}

// Localizer returns a translator for lang. Unknown languages fall back to English.
func (b *Bundle) Localizer(lang string) *Localizer {
	tag, _ := language.MatchStrings(b.matcher, lang)
	base, _ := tag.Base()

	return &Localizer{
		localizer: i18n.NewLocalizer(b.bundle, lang),
		lang:      base.String(),
		printer:   message.NewPrinter(tag),
	}
}

// Localizer translates keys for one language.
type Localizer struct {
	localizer *i18n.Localizer
	lang      string
	printer   *message.Printer
}

// Language returns the ISO 639-1 code actually used.
func (l *Localizer) Language() string {
	return l.lang
}

// Msg translates a key, returning the key itself when it is missing.
func (l *Localizer) Msg(key string) string {
	return l.Format(key, nil)
}

// Format translates a key with template data, returning the key when it is missing.
func (l *Localizer) Format(key string, data map[string]any) string {
	if msg := l.Translate(key, data); msg != "" {
		return msg
	}
	return key
}

// Translate returns "" for missing keys. It satisfies engine.TranslateFunc.
func (l *Localizer) Translate(key string, data map[string]any) string {
	if l == nil || l.localizer == nil {
		return ""
	}
	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{MessageID: key, TemplateData: data})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return ""
	}
	return msg
}

// Issue localizes a validation issue; its Rule is the translation key.
func (l *Localizer) Issue(issue engine.Issue) string {
	if msg := l.Translate(string(issue.Rule), issue.Data); msg != "" {
		return msg
	}
	return issue.Message
}

// Issues localizes every issue of a validation result, in order.
func (l *Localizer) Issues(res engine.Result) []string {
	msgs := make([]string, 0, len(res))
	for _, issue := range res {
		msgs = append(msgs, l.Issue(issue))
	}
	return msgs
}

// Number formats an integer with the language's digit grouping (8,766 / 8 766).
func (l *Localizer) Number(n int64) string {
	return l.printer.Sprintf("%d", n)
}

// Decimal formats a float with two decimals and the language's separators.
func (l *Localizer) Decimal(f float64) string {
	return l.printer.Sprintf("%.2f", f)
}

// Calculator builds an engine calculator whose texts are translated by l.
func (l *Localizer) Calculator(birth engine.CalendarDate, clock engine.Clock) *engine.Calculator {
	c := engine.NewCalculator(birth, clock)
	c.Translate = l.Translate
	return c
}
