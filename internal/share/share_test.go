package share_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/age-calculator/internal/config"
	"github.com/tartampluch/age-calculator/internal/engine"
	"github.com/tartampluch/age-calculator/internal/share"
)

var referenceNow = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

// report builds the report for a person born on 10/08/1990: 33 years, 10 months, 5 days.
func report(t *testing.T) engine.Report {
	t.Helper()
	calc := engine.NewCalculator(engine.CalendarDate{Day: 10, Month: 8, Year: 1990}, engine.FixedClock{Time: referenceNow})
	r, err := calc.Report()
	require.NoError(t, err)
	return r
}

func TestText(t *testing.T) {
	r := report(t)
	assert.Equal(t, "I'm 33 years, 10 months, and 5 days old!", share.Text(r, nil))

	var gotData map[string]any
	translate := func(key string, data map[string]any) string {
		gotData = data
		if key == config.TKeyShareText {
			return "J'ai 33 ans"
		}
		return ""
	}
	assert.Equal(t, "J'ai 33 ans", share.Text(r, translate))
	assert.Equal(t, map[string]any{"Years": 33, "Months": 10, "Days": 5}, gotData)

	missing := func(key string, _ map[string]any) string { return key }
	assert.Equal(t, "I'm 33 years, 10 months, and 5 days old!", share.Text(r, missing), "A key echoed back counts as missing")
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"out.json", config.ShareJSON, false},
		{"/tmp/cal.ICS", config.ShareICS, false},
		{"me.vcf", config.ShareVCard, false},
		{"me.vcard", config.ShareVCard, false},
		{"share.txt", config.ShareText, false},
		{"picture.png", "", true},
		{"no-extension", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := share.FormatFromPath(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, share.ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, config.ExportJSONFile, share.FileName(config.ShareJSON))
	assert.Equal(t, config.ExportICSFile, share.FileName(config.ShareICS))
	assert.Equal(t, config.ExportVCardFile, share.FileName(config.ShareVCard))
	assert.Equal(t, config.ExportTextFile, share.FileName(config.ShareText))
}

func TestEncode_Dispatch(t *testing.T) {
	r := report(t)

	tests := []struct {
		format string
		prefix string
	}{
		{config.ShareText, "I'm 33 years"},
		{config.ShareJSON, "{"},
		{config.ShareICS, "BEGIN:VCALENDAR"},
		{config.ShareVCard, "BEGIN:VCARD"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, share.Encode(&buf, tt.format, r, share.Options{}))
			assert.True(t, strings.HasPrefix(buf.String(), tt.prefix), "got %q", buf.String())
		})
	}

	assert.ErrorIs(t, share.Encode(&bytes.Buffer{}, "pdf", r, share.Options{}), share.ErrUnknownFormat)
}

func TestEncodeJSON(t *testing.T) {
	r := report(t)

	var buf bytes.Buffer
	require.NoError(t, share.EncodeJSON(&buf, r))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	id, ok := doc["id"].(string)
	require.True(t, ok)
	_, err := uuid.Parse(id)
	assert.NoError(t, err, "id must be a UUID")

	assert.Equal(t, config.Version, doc["appVersion"])
	assert.Equal(t, "2024-06-15T10:00:00Z", doc["calculatedAt"])
	assert.Equal(t, float64(33), doc["age"].(map[string]any)["years"])
	assert.Equal(t, map[string]any{"day": float64(10), "month": float64(8), "year": float64(1990)}, doc["birthDate"])
	assert.Len(t, doc["stats"], 6)

	var again bytes.Buffer
	require.NoError(t, share.EncodeJSON(&again, r))
	var other share.Export
	require.NoError(t, json.Unmarshal(again.Bytes(), &other))
	assert.NotEqual(t, id, other.ID, "Each export gets its own id")
	assert.Equal(t, r.Age, other.Age)
}
