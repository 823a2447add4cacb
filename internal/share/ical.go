package share

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"
	"github.com/tartampluch/age-calculator/internal/config"
	"github.com/tartampluch/age-calculator/internal/engine"
)

var uidNamespace = uuid.NewSHA1(uuid.NameSpaceDNS, []byte(config.ICalDomain))

// EncodeICS writes an iCalendar with a yearly birthday event and one
// all-day event per upcoming milestone. UIDs are derived from the birth
// date so re-exports update the same events.
func EncodeICS(w io.Writer, r engine.Report, opts Options) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	dtStamp := ical.NewProp(config.PropDTStamp)
	dtStamp.SetDateTime(opts.stamp(r).UTC())

	birthday := newEvent(eventUID(r.BirthDate, "birthday", 0), r.BirthDate.Time(), dtStamp,
		text(opts.Translate, config.TKeyEventBirthday, config.FallbackEvent, nil), config.ICalCatBday)
	// Set RRULE manually to avoid the "VALUE=TEXT" param
	rrule := ical.NewProp(config.PropRRule)
	rrule.Value = config.ICalRRuleYear
	birthday.Props.Set(rrule)
	birthday.Props.SetText(config.PropDescription, Text(r, opts.Translate))
	cal.Children = append(cal.Children, birthday.Component)

	for _, m := range r.Milestones {
		ev := newEvent(eventUID(r.BirthDate, string(m.Type), m.TargetAge), anniversary(r.BirthDate, m.TargetAge),
			dtStamp, m.Description, config.ICalCatMile)
		cal.Children = append(cal.Children, ev.Component)
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	return nil
}

func newEvent(uid string, date time.Time, dtStamp *ical.Prop, summary, category string) *ical.Event {
	event := ical.NewEvent()
	event.Props.SetText(config.PropUID, uid)
	event.Props.Set(dtStamp)
	event.Props.SetText(config.PropSummary, summary)
	event.Props.SetText(config.PropCategories, category)

	dtStart := ical.NewProp(config.PropDTStart)
	dtStart.SetDate(date)
	event.Props.Set(dtStart)
	return event
}

// anniversary returns the date the person turns age. Feb 29 becomes Mar 1
// in non-leap years (time.Date normalization).
func anniversary(birth engine.CalendarDate, age int) time.Time {
	return time.Date(birth.Year+age, time.Month(birth.Month), birth.Day, 0, 0, 0, 0, time.UTC)
}

func eventUID(birth engine.CalendarDate, kind string, age int) string {
	id := uuid.NewSHA1(uidNamespace, []byte(birth.String()+"/"+kind+"/"+strconv.Itoa(age)))
	return fmt.Sprintf(config.FormatUID, id, config.ICalDomain)
}
