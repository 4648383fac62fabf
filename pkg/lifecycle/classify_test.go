package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RolandGoud/bikescaper/pkg/catalog"
	"github.com/RolandGoud/bikescaper/pkg/dates"
)

const today = "01-06-2024"

func masterEntry(firstSeen, lastSeen string) *catalog.Entry {
	e := catalog.NewEntry("Aeroad")
	e.Status = catalog.StatusAvailable
	e.FirstSeen = firstSeen
	e.LastSeen = lastSeen
	return e
}

func TestClassifyNew(t *testing.T) {
	c := Classify("Aeroad", true, false, nil, today)

	assert.Equal(t, catalog.StatusNew, c.Status)
	assert.Equal(t, today, c.FirstSeen)
	assert.Equal(t, today, c.LastSeen)
}

func TestClassifyAvailable(t *testing.T) {
	existing := masterEntry("15-01-2024", "30-05-2024")
	c := Classify("Aeroad", true, true, existing, today)

	assert.Equal(t, catalog.StatusAvailable, c.Status)
	assert.Equal(t, "15-01-2024", c.FirstSeen, "first seen never moves")
	assert.Equal(t, today, c.LastSeen, "last seen advances to today")
}

func TestClassifyDiscontinued(t *testing.T) {
	existing := masterEntry("15-01-2024", "30-05-2024")
	c := Classify("Aeroad", false, true, existing, today)

	assert.Equal(t, catalog.StatusDiscontinued, c.Status)
	assert.Equal(t, "15-01-2024", c.FirstSeen)
	assert.Equal(t, "30-05-2024", c.LastSeen, "last seen frozen, not advanced")
}

func TestClassifyUnreachableQuadrant(t *testing.T) {
	c := Classify("Ghost", false, false, nil, today)

	assert.Equal(t, catalog.StatusNew, c.Status)
	assert.Equal(t, today, c.FirstSeen)
	assert.Equal(t, today, c.LastSeen)
}

func TestClassifyNormalizesLegacyDates(t *testing.T) {
	// Year-month-day dates from before the day-month-year convention
	existing := masterEntry("2024-01-15", "2024-05-30")

	c := Classify("Aeroad", true, true, existing, today)
	assert.Equal(t, "15-01-2024", c.FirstSeen)

	c = Classify("Aeroad", false, true, existing, today)
	assert.Equal(t, "15-01-2024", c.FirstSeen)
	assert.Equal(t, "30-05-2024", c.LastSeen)
}

func TestClassifyDiscontinuedWithoutDates(t *testing.T) {
	existing := masterEntry("", "")
	c := Classify("Aeroad", false, true, existing, today)

	assert.Equal(t, catalog.StatusDiscontinued, c.Status)
	assert.Equal(t, dates.Unknown, c.FirstSeen)
	assert.Equal(t, dates.Unknown, c.LastSeen)
}
