//go:build unit

package calendar_test

import (
	"testing"
	"time"

	"rentloop/internal/domain/booking"
	"rentloop/internal/domain/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRange(t *testing.T) {
	today := day(5)

	testCases := []struct {
		name      string
		text      string
		wantStart booking.Date
		wantEnd   booking.Date
		errIs     error
	}{
		{
			name:      "hyphen separated",
			text:      "10.06-12.06",
			wantStart: day(10),
			wantEnd:   day(12),
		},
		{
			name:      "en dash separated",
			text:      "10.06–12.06",
			wantStart: day(10),
			wantEnd:   day(12),
		},
		{
			name:      "spaces around the separator",
			text:      " 10.06 - 12.06 ",
			wantStart: day(10),
			wantEnd:   day(12),
		},
		{
			name:      "single token books one day",
			text:      "10.06",
			wantStart: day(10),
			wantEnd:   day(10),
		},
		{
			name:      "reversed range is swapped",
			text:      "12.06-10.06",
			wantStart: day(10),
			wantEnd:   day(12),
		},
		{
			name:      "single digit day and month",
			text:      "1.6-3.6",
			wantStart: day(1),
			wantEnd:   day(3),
		},
		{
			name:      "crossing months",
			text:      "28.06-2.07",
			wantStart: day(28),
			wantEnd:   booking.NewDate(2026, time.July, 2),
		},
		{
			name:  "garbage text",
			text:  "next weekend please",
			errIs: calendar.ErrUnparsableRange,
		},
		{
			name:  "empty text",
			text:  "",
			errIs: calendar.ErrUnparsableRange,
		},
		{
			name:  "ISO dates are not the expected shape",
			text:  "2026-06-10",
			errIs: calendar.ErrUnparsableRange,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := calendar.ParseRange(tc.text, today)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.True(t, r.Start().Equal(tc.wantStart), "start %s", r.Start())
			assert.True(t, r.End().Equal(tc.wantEnd), "end %s", r.End())
		})
	}

	t.Run("year defaults to the current one", func(t *testing.T) {
		r, err := calendar.ParseRange("10.06-12.06", booking.NewDate(2027, time.January, 1))
		require.NoError(t, err)
		assert.Equal(t, 2027, r.Start().Year())
	})
}
