package scoring

import (
	"testing"

	"github.com/softcare/softcare-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func TestWellnessScore_AllFieldsPresent(t *testing.T) {
	entry := &models.DiaryEntry{
		MoodLevel:    models.MoodGood, // 4
		EnergyLevel:  intPtr(4),
		StressLevel:  intPtr(2), // inverted -> 4
		SleepQuality: intPtr(4),
	}

	score, ok := WellnessScore(entry)
	require.True(t, ok)
	assert.Equal(t, 4.0, score)
	assert.False(t, IndicatesConcern(entry))
}

func TestWellnessScore_StressInverted(t *testing.T) {
	entry := &models.DiaryEntry{
		MoodLevel:   models.MoodNeutral, // 3
		StressLevel: intPtr(5),          // inverted -> 1
	}

	score, ok := WellnessScore(entry)
	require.True(t, ok)
	assert.Equal(t, 2.0, score)
}

func TestWellnessScore_PartialFields(t *testing.T) {
	entry := &models.DiaryEntry{
		MoodLevel:   models.MoodVeryGood, // 5
		EnergyLevel: intPtr(3),
	}

	score, ok := WellnessScore(entry)
	require.True(t, ok)
	assert.Equal(t, 4.0, score)
}

func TestWellnessScore_SingleField(t *testing.T) {
	entry := &models.DiaryEntry{SleepQuality: intPtr(2)}

	score, ok := WellnessScore(entry)
	require.True(t, ok)
	assert.Equal(t, 2.0, score)
}

func TestWellnessScore_NoFields(t *testing.T) {
	entry := &models.DiaryEntry{}

	_, ok := WellnessScore(entry)
	assert.False(t, ok)
}

func TestIndicatesConcern_Thresholds(t *testing.T) {
	tests := []struct {
		name    string
		entry   models.DiaryEntry
		concern bool
	}{
		{"very low mood", models.DiaryEntry{MoodLevel: models.MoodVeryLow}, true},
		{"low mood", models.DiaryEntry{MoodLevel: models.MoodLow}, true},
		{"neutral mood only", models.DiaryEntry{MoodLevel: models.MoodNeutral}, false},
		{"high stress", models.DiaryEntry{MoodLevel: models.MoodGood, StressLevel: intPtr(4)}, true},
		{"max stress", models.DiaryEntry{MoodLevel: models.MoodGood, StressLevel: intPtr(5)}, true},
		{"moderate stress", models.DiaryEntry{MoodLevel: models.MoodGood, StressLevel: intPtr(3)}, false},
		{"low energy", models.DiaryEntry{MoodLevel: models.MoodGood, EnergyLevel: intPtr(2)}, true},
		{"poor sleep", models.DiaryEntry{MoodLevel: models.MoodGood, SleepQuality: intPtr(1)}, true},
		{"all safe", models.DiaryEntry{
			MoodLevel:    models.MoodGood,
			EnergyLevel:  intPtr(3),
			StressLevel:  intPtr(3),
			SleepQuality: intPtr(3),
		}, false},
		{"absent fields ignored", models.DiaryEntry{MoodLevel: models.MoodVeryGood}, false},
		{"empty entry", models.DiaryEntry{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.concern, IndicatesConcern(&tt.entry))
		})
	}
}

func TestOverallScore_Complete(t *testing.T) {
	a := &models.Assessment{
		WorkStressLevel:            intPtr(2), // inverted -> 4
		WorkLifeBalance:            intPtr(4),
		JobSatisfaction:            intPtr(4),
		RelationshipWithColleagues: intPtr(4),
		PersonalWellbeing:          intPtr(4),
	}

	score, ok := OverallScore(a)
	require.True(t, ok)
	assert.Equal(t, 4.0, score)
}

func TestOverallScore_WorstInputs(t *testing.T) {
	a := &models.Assessment{
		WorkStressLevel:            intPtr(5), // inverted -> 1
		WorkLifeBalance:            intPtr(1),
		JobSatisfaction:            intPtr(1),
		RelationshipWithColleagues: intPtr(2),
		PersonalWellbeing:          intPtr(1),
	}

	score, ok := OverallScore(a)
	require.True(t, ok)
	assert.InDelta(t, 1.2, score, 1e-9)
	assert.Equal(t, models.RiskCritical, ClassifyRisk(score))
}

func TestOverallScore_MissingField(t *testing.T) {
	a := &models.Assessment{
		WorkStressLevel:            intPtr(3),
		WorkLifeBalance:            intPtr(3),
		JobSatisfaction:            intPtr(3),
		RelationshipWithColleagues: intPtr(3),
		// PersonalWellbeing missing
	}

	_, ok := OverallScore(a)
	assert.False(t, ok)
}

func TestClassifyRisk_BandBoundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  models.RiskLevel
	}{
		{5.0, models.RiskLow},
		{4.0, models.RiskLow},
		{3.99, models.RiskModerate},
		{3.0, models.RiskModerate},
		{2.99, models.RiskHigh},
		{2.0, models.RiskHigh},
		{1.99, models.RiskCritical},
		{1.0, models.RiskCritical},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.want, ClassifyRisk(tt.score), "score %v", tt.score)
	}
}

func TestApply_SetsDerivedFieldsTogether(t *testing.T) {
	a := &models.Assessment{
		WorkStressLevel:            intPtr(1), // inverted -> 5
		WorkLifeBalance:            intPtr(5),
		JobSatisfaction:            intPtr(5),
		RelationshipWithColleagues: intPtr(5),
		PersonalWellbeing:          intPtr(5),
	}

	Apply(a)

	require.NotNil(t, a.OverallScore)
	assert.Equal(t, 5.0, *a.OverallScore)
	assert.Equal(t, models.RiskLow, a.RiskLevel)
	assert.True(t, a.IsComplete)
}

func TestApply_ClearsDerivedFieldsWhenIncomplete(t *testing.T) {
	score := 4.2
	a := &models.Assessment{
		WorkStressLevel: intPtr(3),
		OverallScore:    &score,
		RiskLevel:       models.RiskLow,
		IsComplete:      true,
	}

	Apply(a)

	assert.Nil(t, a.OverallScore)
	assert.Empty(t, a.RiskLevel)
	assert.False(t, a.IsComplete)
}

func TestApply_Deterministic(t *testing.T) {
	a := &models.Assessment{
		WorkStressLevel:            intPtr(4),
		WorkLifeBalance:            intPtr(2),
		JobSatisfaction:            intPtr(3),
		RelationshipWithColleagues: intPtr(3),
		PersonalWellbeing:          intPtr(2),
	}

	Apply(a)
	first := *a.OverallScore
	firstRisk := a.RiskLevel

	Apply(a)
	assert.Equal(t, first, *a.OverallScore)
	assert.Equal(t, firstRisk, a.RiskLevel)
}
