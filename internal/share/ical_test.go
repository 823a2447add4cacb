package share_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/age-calculator/internal/config"
	"github.com/tartampluch/age-calculator/internal/share"
)

func decodeICS(t *testing.T, data []byte) *ical.Calendar {
	t.Helper()
	cal, err := ical.NewDecoder(bytes.NewReader(data)).Decode()
	require.NoError(t, err)
	return cal
}

func TestEncodeICS(t *testing.T) {
	r := report(t)
	require.Len(t, r.Milestones, 3, "34th birthday, 40 and 50")

	var buf bytes.Buffer
	require.NoError(t, share.EncodeICS(&buf, r, share.Options{}))

	cal := decodeICS(t, buf.Bytes())
	assert.Equal(t, config.ICalProdid, cal.Props.Get(config.PropProdid).Value)

	events := cal.Events()
	require.Len(t, events, 1+len(r.Milestones))

	birthday := events[0]
	assert.Equal(t, config.ICalRRuleYear, birthday.Props.Get(config.PropRRule).Value)
	assert.Equal(t, "19900810", birthday.Props.Get(config.PropDTStart).Value)
	assert.Equal(t, config.FallbackEvent, birthday.Props.Get(config.PropSummary).Value)
	assert.Equal(t, "20240615T100000Z", birthday.Props.Get(config.PropDTStamp).Value)

	wantStarts := []string{"20240810", "20300810", "20400810"}
	for i, m := range r.Milestones {
		ev := events[i+1]
		assert.Nil(t, ev.Props.Get(config.PropRRule), "Milestones do not repeat")
		assert.Equal(t, wantStarts[i], ev.Props.Get(config.PropDTStart).Value)
		assert.Equal(t, m.Description, ev.Props.Get(config.PropSummary).Value)
	}
}

func TestEncodeICS_StableUIDs(t *testing.T) {
	r := report(t)

	uids := func(opts share.Options) []string {
		var buf bytes.Buffer
		require.NoError(t, share.EncodeICS(&buf, r, opts))
		var out []string
		for _, ev := range decodeICS(t, buf.Bytes()).Events() {
			out = append(out, ev.Props.Get(config.PropUID).Value)
		}
		return out
	}

	first := uids(share.Options{})
	second := uids(share.Options{Now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)})
	assert.Equal(t, first, second, "UIDs depend on the birth date only")

	seen := map[string]bool{}
	for _, uid := range first {
		assert.False(t, seen[uid], "duplicate UID %s", uid)
		seen[uid] = true
		assert.Contains(t, uid, "@"+config.ICalDomain)
	}
}

func TestEncodeICS_Translated(t *testing.T) {
	translate := func(key string, _ map[string]any) string {
		if key == config.TKeyEventBirthday {
			return "Mon anniversaire"
		}
		return ""
	}

	var buf bytes.Buffer
	require.NoError(t, share.EncodeICS(&buf, report(t), share.Options{Translate: translate}))
	events := decodeICS(t, buf.Bytes()).Events()
	assert.Equal(t, "Mon anniversaire", events[0].Props.Get(config.PropSummary).Value)
}
