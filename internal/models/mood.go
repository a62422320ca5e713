package models

// MoodLevel is the ordinal mood scale used by emotional diary entries.
type MoodLevel string

const (
	MoodVeryLow  MoodLevel = "VERY_LOW"
	MoodLow      MoodLevel = "LOW"
	MoodNeutral  MoodLevel = "NEUTRAL"
	MoodGood     MoodLevel = "GOOD"
	MoodVeryGood MoodLevel = "VERY_GOOD"
)

type moodInfo struct {
	value       int
	description string
	emoji       string
}

var moodLevels = map[MoodLevel]moodInfo{
	MoodVeryLow:  {1, "Muito Baixo", "😞"},
	MoodLow:      {2, "Baixo", "😔"},
	MoodNeutral:  {3, "Neutro", "😐"},
	MoodGood:     {4, "Bom", "🙂"},
	MoodVeryGood: {5, "Muito Bom", "😊"},
}

// Value returns the 1-5 ordinal value of the mood level, or 0 for an unknown level.
func (m MoodLevel) Value() int {
	return moodLevels[m].value
}

func (m MoodLevel) Description() string {
	return moodLevels[m].description
}

func (m MoodLevel) Emoji() string {
	return moodLevels[m].emoji
}

// Valid reports whether m is one of the defined mood levels.
func (m MoodLevel) Valid() bool {
	_, ok := moodLevels[m]
	return ok
}

// MoodLevelFromValue maps a 1-5 ordinal value back to its mood level.
func MoodLevelFromValue(value int) (MoodLevel, bool) {
	for level, info := range moodLevels {
		if info.value == value {
			return level, true
		}
	}
	return "", false
}
