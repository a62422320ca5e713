package models

// RiskLevel classifies a psychosocial assessment's overall score.
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskModerate RiskLevel = "MODERATE"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

type riskInfo struct {
	description string
	color       string
}

var riskLevels = map[RiskLevel]riskInfo{
	RiskLow:      {"Baixo", "#4CAF50"},
	RiskModerate: {"Moderado", "#FF9800"},
	RiskHigh:     {"Alto", "#F44336"},
	RiskCritical: {"Crítico", "#9C27B0"},
}

func (r RiskLevel) Description() string {
	return riskLevels[r].description
}

func (r RiskLevel) Color() string {
	return riskLevels[r].color
}

// Valid reports whether r is one of the defined risk levels.
func (r RiskLevel) Valid() bool {
	_, ok := riskLevels[r]
	return ok
}

// RiskLevelFromCode maps a code string (e.g. "HIGH") to its risk level.
func RiskLevelFromCode(code string) (RiskLevel, bool) {
	level := RiskLevel(code)
	if level.Valid() {
		return level, true
	}
	return "", false
}
