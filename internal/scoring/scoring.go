// Package scoring computes composite wellness and psychosocial risk scores.
// All functions are pure: identical inputs always produce identical outputs,
// and nothing here touches the database or the clock. Inputs are assumed to
// be validated (1-5 range) before they reach this package.
package scoring

import "github.com/softcare/softcare-backend/internal/models"

// Risk band lower bounds, evaluated top-down; first match wins.
const (
	lowRiskThreshold      = 4.0
	moderateRiskThreshold = 3.0
	highRiskThreshold     = 2.0
)

// WellnessScore computes the composite wellness score of a diary entry:
// the average of mood, energy, inverted stress and sleep quality over
// whichever of those fields are present. Stress is inverted so that lower
// stress contributes a higher score. Returns ok=false when no field is set.
func WellnessScore(entry *models.DiaryEntry) (float64, bool) {
	sum := 0
	factors := 0

	if entry.MoodLevel.Valid() {
		sum += entry.MoodLevel.Value()
		factors++
	}
	if entry.EnergyLevel != nil {
		sum += *entry.EnergyLevel
		factors++
	}
	if entry.StressLevel != nil {
		sum += 6 - *entry.StressLevel
		factors++
	}
	if entry.SleepQuality != nil {
		sum += *entry.SleepQuality
		factors++
	}

	if factors == 0 {
		return 0, false
	}
	return float64(sum) / float64(factors), true
}

// IndicatesConcern reports whether a diary entry is an early-warning signal:
// very low or low mood, stress at 4 or above, or energy or sleep at 2 or
// below. Absent fields never trigger. Evaluated independently of the
// wellness score.
func IndicatesConcern(entry *models.DiaryEntry) bool {
	if entry.MoodLevel.Valid() && entry.MoodLevel.Value() <= 2 {
		return true
	}
	if entry.StressLevel != nil && *entry.StressLevel >= 4 {
		return true
	}
	if entry.EnergyLevel != nil && *entry.EnergyLevel <= 2 {
		return true
	}
	if entry.SleepQuality != nil && *entry.SleepQuality <= 2 {
		return true
	}
	return false
}

// OverallScore computes the composite psychosocial score of an assessment.
// Work stress is inverted; the other four inputs are used as-is. The score
// is only defined when all five inputs are present (ok=false otherwise) so
// a partial assessment never yields a misleading composite.
func OverallScore(a *models.Assessment) (float64, bool) {
	if a.WorkStressLevel == nil || a.WorkLifeBalance == nil || a.JobSatisfaction == nil ||
		a.RelationshipWithColleagues == nil || a.PersonalWellbeing == nil {
		return 0, false
	}

	adjustedWorkStress := float64(6 - *a.WorkStressLevel)
	score := (adjustedWorkStress + float64(*a.WorkLifeBalance) + float64(*a.JobSatisfaction) +
		float64(*a.RelationshipWithColleagues) + float64(*a.PersonalWellbeing)) / 5.0
	return score, true
}

// ClassifyRisk maps an overall score to a risk level using half-open bands:
// >=4.0 LOW, [3.0,4.0) MODERATE, [2.0,3.0) HIGH, <2.0 CRITICAL.
func ClassifyRisk(score float64) models.RiskLevel {
	switch {
	case score >= lowRiskThreshold:
		return models.RiskLow
	case score >= moderateRiskThreshold:
		return models.RiskModerate
	case score >= highRiskThreshold:
		return models.RiskHigh
	default:
		return models.RiskCritical
	}
}

// Apply recomputes the derived fields of an assessment in place. OverallScore,
// RiskLevel and IsComplete always change together: either all five inputs are
// present and all three derived fields are set, or all three are cleared.
func Apply(a *models.Assessment) {
	score, ok := OverallScore(a)
	if !ok {
		a.OverallScore = nil
		a.RiskLevel = ""
		a.IsComplete = false
		return
	}
	a.OverallScore = &score
	a.RiskLevel = ClassifyRisk(score)
	a.IsComplete = true
}
