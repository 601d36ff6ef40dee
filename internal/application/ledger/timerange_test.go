package ledger_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NikoNepomuceno/AcadKeeper/internal/application/ledger"
	"github.com/NikoNepomuceno/AcadKeeper/internal/domain"
)

func TestRangeStart_Day(t *testing.T) {
	now := time.Date(2025, 3, 12, 15, 30, 45, 0, time.UTC) // Wednesday
	start, err := ledger.RangeStart(ledger.RangeDay, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), start)
}

func TestRangeStart_WeekStartsMonday(t *testing.T) {
	wednesday := time.Date(2025, 3, 12, 15, 30, 0, 0, time.UTC)
	start, err := ledger.RangeStart(ledger.RangeWeek, wednesday)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), start)

	// Sunday belongs to the week that started the previous Monday.
	sunday := time.Date(2025, 3, 16, 9, 0, 0, 0, time.UTC)
	start, err = ledger.RangeStart(ledger.RangeWeek, sunday)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), start)

	// Monday is its own week start.
	monday := time.Date(2025, 3, 10, 0, 30, 0, 0, time.UTC)
	start, err = ledger.RangeStart(ledger.RangeWeek, monday)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), start)
}

func TestRangeStart_MonthAndYear(t *testing.T) {
	now := time.Date(2025, 3, 12, 15, 30, 0, 0, time.UTC)

	start, err := ledger.RangeStart(ledger.RangeMonth, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), start)

	start, err = ledger.RangeStart(ledger.RangeYear, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), start)
}

func TestRangeStart_UnknownKey(t *testing.T) {
	_, err := ledger.RangeStart("decade", time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
