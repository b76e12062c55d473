package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildValid(t *testing.T) ProblemSubmission {
	t.Helper()
	sub, err := Build(validRaw())
	require.NoError(t, err)
	return sub
}

func TestNewReport(t *testing.T) {
	fixedTime := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(fixedTime))
	defer SetClock(nil)

	sub := buildValid(t)
	report := NewReport(sub)

	assert.True(t, strings.HasPrefix(report.ID, "infrastructure-"))
	assert.Equal(t, StatusPending, report.Status)
	assert.Equal(t, fixedTime, report.ReceivedAt)
	assert.Equal(t, sub, report.Submission)
	assert.Empty(t, report.GeoSource)
}

func TestGenerateID(t *testing.T) {
	sub := buildValid(t)

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, generateID(sub), generateID(sub))
	})

	t.Run("different content produces different IDs", func(t *testing.T) {
		other := sub
		other.Description = "Outro texto"
		assert.NotEqual(t, generateID(sub), generateID(other))
	})

	t.Run("empty category", func(t *testing.T) {
		id := generateID(ProblemSubmission{Title: "x"})
		assert.NotEmpty(t, id)
		assert.NotContains(t, id, "-")
	})
}

func TestSerializeReport(t *testing.T) {
	receivedAt := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	report := Report{
		ID:         "infrastructure-abc",
		Submission: buildValid(t),
		Status:     StatusPending,
		ReceivedAt: receivedAt,
	}

	out, err := SerializeReport(report)
	require.NoError(t, err)

	assert.Equal(t, []byte("infrastructure-abc"), out.Key)
	assert.Equal(t, "infrastructure", out.Headers["category"])
	assert.Equal(t, "high", out.Headers["severity"])
	assert.Equal(t, "2025-03-14T09:30:00Z", out.Headers["received_at"])
	assert.Contains(t, string(out.Value), `"coordinates":[-46.6,-23.5]`)
	assert.NotContains(t, string(out.Value), "geo_source")

	var roundtrip Report
	require.NoError(t, json.Unmarshal(out.Value, &roundtrip))
	if diff := cmp.Diff(report, roundtrip); diff != "" {
		t.Fatalf("roundtrip mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRawEvent(t *testing.T) {
	t.Run("form fields", func(t *testing.T) {
		data := []byte(`{"title":"Buraco","description":"Grande","category":"infrastructure","subtype":"potholes","location":"-23.5,-46.6","severity":"low","media":["ref-1"]}`)
		in, err := ParseRawEvent(RawEvent{Value: data})

		require.NoError(t, err)
		assert.Equal(t, RawSubmission{
			Title:       "Buraco",
			Description: "Grande",
			Category:    "infrastructure",
			Subtype:     "potholes",
			Location:    "-23.5,-46.6",
			Severity:    "low",
			Media:       []string{"ref-1"},
		}, in)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		_, err := ParseRawEvent(RawEvent{Value: []byte("{invalid json")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse raw event")
	})

	t.Run("empty JSON decodes to empty submission", func(t *testing.T) {
		in, err := ParseRawEvent(RawEvent{Value: []byte("{}")})
		require.NoError(t, err)
		assert.Equal(t, RawSubmission{}, in)
	})
}
