package slot_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sssom/sssom-core/slot"
)

func TestParseDatePlainForm(t *testing.T) {
	t.Parallel()

	d, err := slot.ParseDate("2023-11-02")
	require.NoError(t, err)
	assert.Equal(t, slot.Date{Year: 2023, Month: 11, Day: 2}, d)
	assert.Equal(t, "2023-11-02", d.String())
}

func TestParseDateRFC3339TruncatesTime(t *testing.T) {
	t.Parallel()

	d, err := slot.ParseDate("2023-11-02T08:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, slot.Date{Year: 2023, Month: 11, Day: 2}, d)
}

func TestParseDateEmptyIsZero(t *testing.T) {
	t.Parallel()

	d, err := slot.ParseDate("")
	require.NoError(t, err)
	assert.True(t, d.IsZero())
	assert.Equal(t, "", d.String())
}

func TestParseDateRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := slot.ParseDate("not-a-date")
	require.Error(t, err)
}

func TestFromTimeDropsTimeOfDay(t *testing.T) {
	t.Parallel()

	tm := time.Date(2022, time.January, 5, 23, 59, 59, 0, time.UTC)
	d := slot.FromTime(tm)

	assert.Equal(t, slot.Date{Year: 2022, Month: 1, Day: 5}, d)
}
