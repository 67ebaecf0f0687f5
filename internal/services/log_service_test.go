package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilter_Empty(t *testing.T) {
	filter := ParseFilter(RawLogFilter{})

	assert.Empty(t, filter.Actor)
	assert.Empty(t, filter.Action)
	assert.Nil(t, filter.TaskID)
	assert.Nil(t, filter.Start)
	assert.Nil(t, filter.End)
}

func TestParseFilter_TaskID(t *testing.T) {
	filter := ParseFilter(RawLogFilter{TaskID: "42"})
	require.NotNil(t, filter.TaskID)
	assert.EqualValues(t, 42, *filter.TaskID)
}

// An unparseable task_id is dropped silently, not surfaced as an error.
func TestParseFilter_BadTaskIDDropped(t *testing.T) {
	for _, raw := range []string{"abc", "1.5", "-3", ""} {
		filter := ParseFilter(RawLogFilter{TaskID: raw})
		assert.Nil(t, filter.TaskID, "task_id=%q", raw)
	}
}

func TestParseFilter_DateRange(t *testing.T) {
	filter := ParseFilter(RawLogFilter{
		StartDate: "2025-03-01",
		EndDate:   "2025-03-10",
	})

	require.NotNil(t, filter.Start)
	require.NotNil(t, filter.End)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), *filter.Start)
	// The end bound is the start of the day after end_date, so the whole of
	// end_date is covered.
	assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), *filter.End)
}

func TestParseFilter_BadDatesDropped(t *testing.T) {
	filter := ParseFilter(RawLogFilter{
		StartDate: "notadate",
		EndDate:   "2025-13-40",
	})

	assert.Nil(t, filter.Start)
	assert.Nil(t, filter.End)
}

func TestParseFilter_SubstringFiltersPassThrough(t *testing.T) {
	filter := ParseFilter(RawLogFilter{Actor: "Ali", Action: "task"})
	assert.Equal(t, "Ali", filter.Actor)
	assert.Equal(t, "task", filter.Action)
}
