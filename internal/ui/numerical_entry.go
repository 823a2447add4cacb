package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// NumericalEntry is an Entry that only accepts digits, up to MaxDigits of them.
type NumericalEntry struct {
	widget.Entry

	// MaxDigits caps the text length; zero means unlimited.
	MaxDigits int
}

// NewNumericalEntry creates an entry limited to maxDigits digits.
func NewNumericalEntry(maxDigits int) *NumericalEntry {
	entry := &NumericalEntry{MaxDigits: maxDigits}
	entry.ExtendBaseWidget(entry)
	return entry
}

func (e *NumericalEntry) full() bool {
	return e.MaxDigits > 0 && len(e.Text) >= e.MaxDigits
}

// TypedRune drops anything but digits and stops at MaxDigits.
func (e *NumericalEntry) TypedRune(r rune) {
	if r < '0' || r > '9' || e.full() {
		return
	}
	e.Entry.TypedRune(r)
}

// TypedShortcut keeps only the digits of pasted text.
func (e *NumericalEntry) TypedShortcut(s fyne.Shortcut) {
	paste, ok := s.(*fyne.ShortcutPaste)
	if !ok || paste.Clipboard == nil {
		e.Entry.TypedShortcut(s)
		return
	}
	for _, r := range paste.Clipboard.Content() {
		e.TypedRune(r)
	}
}

// Keyboard shows the numeric keypad on mobile devices.
func (e *NumericalEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}
