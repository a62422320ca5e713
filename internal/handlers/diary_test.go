package handlers

import (
	"testing"

	"github.com/softcare/softcare-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestDiaryViewDerivesWellness(t *testing.T) {
	entry := models.DiaryEntry{
		MoodLevel:    models.MoodGood,
		EnergyLevel:  intPtr(4),
		StressLevel:  intPtr(2),
		SleepQuality: intPtr(4),
	}

	view := diaryView(entry)
	require.NotNil(t, view.WellnessScore)
	assert.InDelta(t, 4.0, *view.WellnessScore, 1e-9)
	assert.False(t, view.IndicatesConcern)
}

func TestDiaryViewFlagsConcern(t *testing.T) {
	entry := models.DiaryEntry{
		MoodLevel:   models.MoodNeutral,
		StressLevel: intPtr(5),
	}

	view := diaryView(entry)
	assert.True(t, view.IndicatesConcern)
}

func TestDiaryViewNoMetrics(t *testing.T) {
	view := diaryView(models.DiaryEntry{MoodLevel: models.MoodLevel("")})
	assert.Nil(t, view.WellnessScore)
	assert.False(t, view.IndicatesConcern)
}

func TestDiaryViewsPreservesOrder(t *testing.T) {
	entries := []models.DiaryEntry{
		{MoodLevel: models.MoodVeryGood},
		{MoodLevel: models.MoodVeryLow},
	}

	views := diaryViews(entries)
	require.Len(t, views, 2)
	assert.Equal(t, models.MoodVeryGood, views[0].MoodLevel)
	assert.True(t, views[1].IndicatesConcern)
}
