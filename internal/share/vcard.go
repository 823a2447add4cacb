package share

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/age-calculator/internal/config"
	"github.com/tartampluch/age-calculator/internal/engine"
)

var (
	// ErrNoBirthday is returned when no card in the stream carries a BDAY.
	ErrNoBirthday = errors.New(config.ErrNoBirthday)

	// ErrYearUnknown is returned when birthdays were found but none has a year.
	ErrYearUnknown = errors.New(config.ErrYearUnknown)
)

// Contact is the first usable birthday read from a vCard stream.
type Contact struct {
	Name  string
	Birth engine.CalendarDate
}

// EncodeVCard writes a single vCard 4.0 carrying the birth date and the share text.
func EncodeVCard(w io.Writer, r engine.Report, opts Options) error {
	card := make(vcard.Card)
	card.SetValue(config.VCardVer, config.VCardVersion)
	card.SetValue(config.VCardFN, opts.name())
	card.SetValue(config.VCardBDAY, r.BirthDate.Format(config.DateFormatBasic))
	card.SetValue(config.VCardNote, Text(r, opts.Translate))

	if err := vcard.NewEncoder(w).Encode(card); err != nil {
		return fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
	}
	return nil
}

// DecodeVCardBirthday returns the first card whose BDAY includes a year.
// Malformed cards and unparsable dates are skipped.
func DecodeVCardBirthday(r io.Reader) (Contact, error) {
	decoder := vcard.NewDecoder(r)
	yearless := false

	for {
		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompShare,
				config.LogKeyError, err)
			continue
		}

		bday := card.Get(config.VCardBDAY)
		if bday == nil || bday.Value == "" {
			continue
		}

		birth, yearKnown, err := parseDate(bday.Value)
		if err != nil {
			slog.Debug(config.MsgSkippedDate,
				config.LogKeyComponent, config.CompShare,
				config.LogKeyValue, bday.Value)
			continue
		}
		if !yearKnown {
			yearless = true
			continue
		}

		// Name Strategy: FN (Formatted) > N (Structured) > Fallback
		name := config.DefaultCardName
		if fn := card.Get(config.VCardFN); fn != nil && fn.Value != "" {
			name = fn.Value
		} else if n := card.Get(config.VCardN); n != nil && n.Value != "" {
			name = n.Value
		}
		return Contact{Name: name, Birth: birth}, nil
	}

	if yearless {
		return Contact{}, ErrYearUnknown
	}
	return Contact{}, ErrNoBirthday
}

// parseDate handles the vCard date forms. Dates without a year are placed
// in config.DefaultLeapYear so that --02-29 stays valid.
func parseDate(value string) (engine.CalendarDate, bool, error) {
	formatsWithYear := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		config.DateFormatRFC3339,
		config.DateFormatFullT,
	}
	for _, f := range formatsWithYear {
		if t, err := time.Parse(f, value); err == nil {
			return engine.DateOf(t), true, nil
		}
	}

	formatsWithoutYear := []string{config.DateFormatNoYearD, config.DateFormatNoYearB}
	for _, f := range formatsWithoutYear {
		if t, err := time.Parse(f, value); err == nil {
			safe := time.Date(config.DefaultLeapYear, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return engine.DateOf(safe), false, nil
		}
	}

	return engine.CalendarDate{}, false, errors.New(config.ErrDateParse)
}
