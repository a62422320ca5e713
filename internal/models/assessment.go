package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Assessment represents one psychosocial risk evaluation for a user.
// OverallScore, RiskLevel and IsComplete are derived fields; they are always
// recomputed together from the five 1-5 inputs and never set independently.
type Assessment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`

	UserID string `bson:"user_id" json:"user_id"`

	// Assessment inputs on a 1-5 scale.
	WorkStressLevel            *int `bson:"work_stress_level,omitempty" json:"work_stress_level,omitempty"`
	WorkLifeBalance            *int `bson:"work_life_balance,omitempty" json:"work_life_balance,omitempty"`
	JobSatisfaction            *int `bson:"job_satisfaction,omitempty" json:"job_satisfaction,omitempty"`
	RelationshipWithColleagues *int `bson:"relationship_with_colleagues,omitempty" json:"relationship_with_colleagues,omitempty"`
	PersonalWellbeing          *int `bson:"personal_wellbeing,omitempty" json:"personal_wellbeing,omitempty"`

	// Derived fields.
	OverallScore *float64  `bson:"overall_score,omitempty" json:"overall_score,omitempty"`
	RiskLevel    RiskLevel `bson:"risk_level,omitempty" json:"risk_level,omitempty"`
	IsComplete   bool      `bson:"is_complete" json:"is_complete"`
}

// AssessmentStatistics aggregates assessments by risk level.
type AssessmentStatistics struct {
	TotalAssessments int64 `json:"total_assessments"`
	LowRisk          int64 `json:"low_risk"`
	ModerateRisk     int64 `json:"moderate_risk"`
	HighRisk         int64 `json:"high_risk"`
	CriticalRisk     int64 `json:"critical_risk"`
}
