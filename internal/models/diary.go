package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DiaryEntry represents one daily emotional check-in.
// At most one entry exists per (user_id, entry_date); the unique index on
// emotional_diaries enforces this, not the application-level pre-check.
type DiaryEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`

	UserID    string    `bson:"user_id" json:"user_id"`
	EntryDate time.Time `bson:"entry_date" json:"entry_date"`

	MoodLevel MoodLevel `bson:"mood_level" json:"mood_level"`

	// Optional metrics on a 1-5 scale.
	EnergyLevel  *int `bson:"energy_level,omitempty" json:"energy_level,omitempty"`
	StressLevel  *int `bson:"stress_level,omitempty" json:"stress_level,omitempty"`
	SleepQuality *int `bson:"sleep_quality,omitempty" json:"sleep_quality,omitempty"`
}

// DiaryStatistics aggregates a user's diary history.
type DiaryStatistics struct {
	TotalEntries   int64 `json:"total_entries"`
	ConcernEntries int64 `json:"concern_entries"`
	VeryLowMood    int64 `json:"very_low_mood"`
	LowMood        int64 `json:"low_mood"`
	NeutralMood    int64 `json:"neutral_mood"`
	GoodMood       int64 `json:"good_mood"`
	VeryGoodMood   int64 `json:"very_good_mood"`
}
