package listing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenresRoundTrip(t *testing.T) {
	assert.Equal(t, "Jazz,Rock", EncodeGenres([]string{"Jazz", "Rock"}))
	assert.Equal(t, []string{"Jazz", "Rock"}, DecodeGenres(EncodeGenres([]string{"Jazz", "Rock"})))
}

func TestDecodeGenres(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "empty", raw: "", want: []string{}},
		{name: "blank", raw: "   ", want: []string{}},
		{name: "single", raw: "Jazz", want: []string{"Jazz"}},
		{name: "stray separators", raw: ",Jazz,,Folk,", want: []string{"Jazz", "Folk"}},
		{name: "spaces", raw: "R&B , Hip-Hop", want: []string{"R&B", "Hip-Hop"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DecodeGenres(tc.raw))
		})
	}
}

func TestEncodeGenres_DropsBlank(t *testing.T) {
	assert.Equal(t, "", EncodeGenres(nil))
	assert.Equal(t, "Jazz", EncodeGenres([]string{"", " Jazz "}))
}

func TestParseStartTime(t *testing.T) {
	want := time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)
	for _, value := range []string{
		"2019-05-21T21:30:00.000Z",
		"2019-05-21T21:30:00Z",
		"2019-05-21 21:30:00",
		"2019-05-21 21:30",
		"2019-05-21T21:30",
		" 2019-05-21T21:30:00 ",
	} {
		got, err := ParseStartTime(value)
		require.NoError(t, err, value)
		assert.True(t, want.Equal(got), "%s parsed as %s", value, got)
	}
}

func TestParseStartTime_Malformed(t *testing.T) {
	for _, value := range []string{"", "tomorrow", "2019-13-45 99:99"} {
		_, err := ParseStartTime(value)
		require.Error(t, err)

		var perr *ParseError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, value, perr.Value)
		assert.Contains(t, err.Error(), "invalid start time")
	}
}

func TestFormatStartTime_RoundTripsAcrossZones(t *testing.T) {
	parsed, err := ParseStartTime("2035-04-01 20:00")
	require.NoError(t, err)

	// The driver hands TIMESTAMPTZ back in the server's local zone.
	stored := parsed.In(time.FixedZone("PDT", -7*60*60))

	assert.Equal(t, "2035-04-01 20:00:00", FormatStartTime(stored))
}
