package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate_Empty(t *testing.T) {
	d, err := ParseDate("")
	require.NoError(t, err)
	assert.True(t, d.IsZero())
	assert.Equal(t, "", d.String())
}

func TestParseDate_Malformed(t *testing.T) {
	for _, s := range []string{"2024-13-01", "01/02/2024", "2024-1-5", "not a date"} {
		_, err := ParseDate(s)
		assert.ErrorIs(t, err, ErrMalformedDate, "input %q", s)
	}
}

func TestDate_DaysSince(t *testing.T) {
	plan := MustDate("2024-01-01")
	assert.Equal(t, 0, MustDate("2024-01-01").DaysSince(plan))
	assert.Equal(t, 19, MustDate("2024-01-20").DaysSince(plan))
	assert.Equal(t, -5, MustDate("2023-12-27").DaysSince(plan))
}

func TestLaterOf(t *testing.T) {
	a := MustDate("2024-01-10")
	b := MustDate("2024-01-15")
	assert.Equal(t, b, LaterOf(a, b))
	assert.Equal(t, b, LaterOf(b, a))
	// An absent date never wins.
	assert.Equal(t, a, LaterOf(a, Date{}))
}

func TestDate_JSONRoundTrip(t *testing.T) {
	type wrapper struct {
		D Date `json:"d"`
	}

	out, err := json.Marshal(wrapper{D: MustDate("2024-02-10")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"d":"2024-02-10"}`, string(out))

	var back wrapper
	require.NoError(t, json.Unmarshal([]byte(`{"d":""}`), &back))
	assert.True(t, back.D.IsZero())

	err = json.Unmarshal([]byte(`{"d":"02-10-2024"}`), &back)
	assert.ErrorIs(t, err, ErrMalformedDate)
}
