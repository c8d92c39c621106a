package weather

import (
	"strings"

	"cityweather/internal/common"
)

// Advisory colors attached to activity verdicts.
const (
	colorDanger  = "#ef4444"
	colorCaution = "#fbbf24"
	colorOK      = "#4ade80"
	colorNeutral = "#94a3b8"
)

// DeriveAlerts evaluates the warning triggers against the current snapshot.
// Triggers are independent; every matching one fires.
func DeriveAlerts(c City) []string {
	var alerts []string
	if c.Temp > 40 {
		alerts = append(alerts, "Extreme Heat Warning: Temperatures exceeding 40°C.")
	}
	if c.Wind > 30 {
		alerts = append(alerts, "High Wind Alert: Batten down the hatches.")
	}
	if c.Condition == ConditionStormy {
		alerts = append(alerts, "Severe Thunderstorm Warning active.")
	}
	if c.Condition == ConditionRainy && c.Humidity > 90 {
		alerts = append(alerts, "Flash Flood Watch: Heavy saturation detected.")
	}
	if c.Temp < 0 {
		alerts = append(alerts, "Freeze Warning: Pipe bursting conditions.")
	}
	return alerts
}

// RankedAlerts runs the same triggers as DeriveAlerts but attaches
// severities so the store can serve alerts most-urgent first.
func RankedAlerts(c City) []AlertRecord {
	var records []AlertRecord
	if c.Temp > 40 {
		records = append(records, AlertRecord{Severity: 3, Message: "Extreme Heat Warning: Temperatures exceeding 40°C.", City: c.Name})
	}
	if c.Wind > 30 {
		records = append(records, AlertRecord{Severity: 2, Message: "High Wind Alert: Batten down the hatches.", City: c.Name})
	}
	if c.Condition == ConditionStormy {
		records = append(records, AlertRecord{Severity: 3, Message: "Severe Thunderstorm Warning active.", City: c.Name})
	}
	if c.Condition == ConditionRainy && c.Humidity > 90 {
		records = append(records, AlertRecord{Severity: 2, Message: "Flash Flood Watch: Heavy saturation detected.", City: c.Name})
	}
	if c.Temp < 0 {
		records = append(records, AlertRecord{Severity: 1, Message: "Freeze Warning: Pipe bursting conditions.", City: c.Name})
	}
	return records
}

// DeriveNews builds the headline feed for a city. Exactly one primary branch
// is selected from the condition; a wind addendum may fire independently.
// The result is never empty.
func DeriveNews(c City) []string {
	var news []string

	switch {
	case c.Condition == ConditionRainy:
		news = append(news, "Heavy Rain expected to continue throughout the evening in "+c.Name+".")
		news = append(news, "Urban flooding risk increases as rain intensifies.")
	case c.Condition == ConditionStormy:
		news = append(news, "Severe Thunderstorms approaching "+c.Name+" region.")
	case c.Condition == ConditionCloudy:
		news = append(news, "Overcast skies dominate "+c.Name+" skyline today.")
	case c.Condition == ConditionSunny || c.Condition == "Clear":
		news = append(news, "Beautiful Clear Sky attracts tourists to "+c.Name+" parks.")
		if c.Temp > 35 {
			news = append(news, "Heatwave alert: Sun intensity reaches peak levels.")
		}
	case c.Condition == ConditionFoggy:
		news = append(news, "Dense Fog lowers visibility on "+c.Name+" highways.")
	case c.Condition == ConditionSnow:
		news = append(news, "Snowfall transforms "+c.Name+" into a winter wonderland.")
	}

	if c.Wind > 20 {
		news = append(news, "Strong Winds reported: Trees and power lines at risk.")
	}

	if len(news) == 0 {
		news = append(news, "Stable weather conditions expected for the next 24 hours in "+c.Name+".")
	}
	return news
}

// LifestyleIndices evaluates the three lifestyle verdicts from the snapshot.
func LifestyleIndices(c City) map[string]string {
	indices := make(map[string]string, 3)

	switch {
	case c.Wind > 25 || c.Condition == ConditionRainy:
		indices["Drone"] = "Unsafe"
	case c.Wind > 15:
		indices["Drone"] = "Caution"
	default:
		indices["Drone"] = "Excellent"
	}

	switch {
	case c.Temp > 35 || c.Condition == ConditionStormy:
		indices["Running"] = "Avoid"
	case c.Temp > 28:
		indices["Running"] = "Hydrate"
	default:
		indices["Running"] = "Perfect"
	}

	switch {
	case c.Condition == ConditionRainy || c.Condition == ConditionStormy:
		indices["BBQ"] = "Indoors"
	case c.Wind > 20:
		indices["BBQ"] = "Too Windy"
	default:
		indices["BBQ"] = "Fire it up!"
	}

	return indices
}

// PredictActivity matches a free-text query against the known activity
// categories, in order; the first category with a keyword hit wins.
func PredictActivity(c City, query string) ActivityResult {
	q := strings.ToLower(query)
	res := ActivityResult{Color: colorOK}

	switch {
	case common.HasAny(q, "fly", "drone"):
		if c.Wind > 30 {
			res = ActivityResult{Score: "Unsafe", Message: "Wind too high for drones.", Color: colorDanger}
		} else if c.Condition == ConditionRainy {
			res = ActivityResult{Score: "Risky", Message: "Rain might damage electronics.", Color: colorCaution}
		} else {
			res.Score = "Excellent"
			res.Message = "Calm winds, go ahead!"
		}
	case common.HasAny(q, "bbq", "grill", "picnic"):
		if c.Condition == ConditionRainy || c.Condition == ConditionStormy {
			res = ActivityResult{Score: "Bad Idea", Message: "Rain/Storm expected.", Color: colorDanger}
		} else if c.Wind > 25 {
			res = ActivityResult{Score: "Difficult", Message: "Too windy for fire/plates.", Color: colorCaution}
		} else {
			res.Score = "Perfect"
			res.Message = "Great conditions."
		}
	case common.HasAny(q, "run", "jog", "walk"):
		if c.Temp > 35 {
			res = ActivityResult{Score: "Caution", Message: "Risk of heatstroke.", Color: colorCaution}
		} else if c.Condition == ConditionStormy {
			res = ActivityResult{Score: "Unsafe", Message: "Lightning risk.", Color: colorDanger}
		} else {
			res.Score = "Good to Go"
			res.Message = "Enjoy your exercise."
		}
	case common.HasAny(q, "cricket", "football"):
		if c.Condition == ConditionRainy {
			res = ActivityResult{Score: "Washout", Message: "Ground will be wet.", Color: colorDanger}
		} else {
			res.Score = "Play Ball!"
			res.Message = "Conditions look dry."
		}
	case common.HasAny(q, "construction", "cement"):
		if c.Condition == ConditionRainy {
			res = ActivityResult{Score: "Delay", Message: "Cement won't set.", Color: colorDanger}
		} else {
			res.Score = "Proceed"
			res.Message = "Conditions stable."
		}
	default:
		res = ActivityResult{
			Score:   "Unknown",
			Message: "Activity not recognized, but weather is " + string(c.Condition),
			Color:   colorNeutral,
		}
	}
	return res
}
