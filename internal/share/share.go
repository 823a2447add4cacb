// Package share turns a calculation report into text, JSON, iCalendar and vCard payloads.
package share

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/tartampluch/age-calculator/internal/config"
	"github.com/tartampluch/age-calculator/internal/engine"
)

// ErrUnknownFormat is returned for share formats other than text, json, ics and vcard.
var ErrUnknownFormat = errors.New(config.ErrUnknownFormat)

// Options tunes the generated payloads.
type Options struct {
	// Name is the vCard display name. Empty means config.DefaultCardName.
	Name string

	// Translate localizes event summaries and the share text. Nil means English.
	Translate engine.TranslateFunc

	// Now stamps iCalendar events. Zero means the report's CalculatedAt.
	Now time.Time
}

func (o Options) stamp(r engine.Report) time.Time {
	if o.Now.IsZero() {
		return r.CalculatedAt
	}
	return o.Now
}

func (o Options) name() string {
	if strings.TrimSpace(o.Name) == "" {
		return config.DefaultCardName
	}
	return strings.TrimSpace(o.Name)
}

// Text returns the one-line share message.
func Text(r engine.Report, translate engine.TranslateFunc) string {
	return text(translate, config.TKeyShareText,
		fmt.Sprintf(config.FallbackShareText, r.Age.Years, r.Age.Months, r.Age.Days),
		map[string]any{"Years": r.Age.Years, "Months": r.Age.Months, "Days": r.Age.Days})
}

// Encode writes r in the given share format.
func Encode(w io.Writer, format string, r engine.Report, opts Options) error {
	switch format {
	case config.ShareText:
		_, err := fmt.Fprintln(w, Text(r, opts.Translate))
		return err
	case config.ShareJSON:
		return EncodeJSON(w, r)
	case config.ShareICS:
		return EncodeICS(w, r, opts)
	case config.ShareVCard:
		return EncodeVCard(w, r, opts)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// FileName returns the default export file name for format.
func FileName(format string) string {
	switch format {
	case config.ShareJSON:
		return config.ExportJSONFile
	case config.ShareICS:
		return config.ExportICSFile
	case config.ShareVCard:
		return config.ExportVCardFile
	default:
		return config.ExportTextFile
	}
}

// FormatFromPath guesses the share format from a file extension.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case config.ExtTXT:
		return config.ShareText, nil
	case config.ExtJSON:
		return config.ShareJSON, nil
	case config.ExtICS:
		return config.ShareICS, nil
	case config.ExtVCF, config.ExtVCard:
		return config.ShareVCard, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

func text(translate engine.TranslateFunc, key, fallback string, data map[string]any) string {
	if translate != nil {
		if msg := translate(key, data); msg != "" && msg != key {
			return msg
		}
	}
	return fallback
}
