package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoodLevelValues(t *testing.T) {
	assert.Equal(t, 1, MoodVeryLow.Value())
	assert.Equal(t, 3, MoodNeutral.Value())
	assert.Equal(t, 5, MoodVeryGood.Value())
	assert.Equal(t, 0, MoodLevel("ANGRY").Value())
}

func TestMoodLevelValid(t *testing.T) {
	assert.True(t, MoodGood.Valid())
	assert.False(t, MoodLevel("").Valid())
	assert.False(t, MoodLevel("good").Valid())
}

func TestMoodLevelFromValue(t *testing.T) {
	for value := 1; value <= 5; value++ {
		level, ok := MoodLevelFromValue(value)
		assert.True(t, ok)
		assert.Equal(t, value, level.Value())
	}

	_, ok := MoodLevelFromValue(0)
	assert.False(t, ok)
	_, ok = MoodLevelFromValue(6)
	assert.False(t, ok)
}

func TestRiskLevelValid(t *testing.T) {
	assert.True(t, RiskLow.Valid())
	assert.True(t, RiskCritical.Valid())
	assert.False(t, RiskLevel("SEVERE").Valid())
}

func TestRiskLevelFromCode(t *testing.T) {
	level, ok := RiskLevelFromCode("HIGH")
	assert.True(t, ok)
	assert.Equal(t, RiskHigh, level)

	_, ok = RiskLevelFromCode("high")
	assert.False(t, ok)
}
