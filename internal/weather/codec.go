package weather

import "time"

// DecodeWeatherCode maps an Open-Meteo weather code to a Condition.
// Ranges are inclusive and disjoint; anything outside them is Unknown.
func DecodeWeatherCode(code int) Condition {
	switch {
	case code == 0:
		return ConditionSunny
	case code >= 1 && code <= 3:
		return ConditionCloudy
	case code >= 45 && code <= 48:
		return ConditionFoggy
	case code >= 51 && code <= 67:
		return ConditionRainy
	case code >= 71 && code <= 77:
		return ConditionSnow
	case code >= 80 && code <= 99:
		return ConditionStormy
	default:
		return ConditionUnknown
	}
}

// DayName returns the weekday name for a "YYYY-MM-DD" date string.
// The time of day is pinned to noon so DST shifts cannot move the date.
// Input that does not match the pattern is returned unchanged.
func DayName(dateStr string) string {
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return dateStr
	}
	noon := time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC)
	return noon.Weekday().String()
}
