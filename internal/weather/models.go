package weather

// Condition represents a normalized high-level weather condition.
type Condition string

const (
	ConditionUnknown Condition = "Unknown"
	ConditionSunny   Condition = "Sunny"
	ConditionCloudy  Condition = "Cloudy"
	ConditionFoggy   Condition = "Foggy"
	ConditionRainy   Condition = "Rainy"
	ConditionSnow    Condition = "Snow"
	ConditionStormy  Condition = "Stormy"

	// ConditionPending is the placeholder shown before the first refresh.
	ConditionPending Condition = "Loading..."
)

// City is the full per-city record: identity, the current snapshot, and
// everything derived from it on the last successful refresh.
type City struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`

	Temp      int       `json:"temp"`
	Humidity  int       `json:"humidity"`
	Wind      int       `json:"wind"`
	WindDir   int       `json:"windDir"`
	Condition Condition `json:"condition"`

	Hourly  []int `json:"hourly"`
	Weekly  []int `json:"weekly"`
	Monthly []int `json:"monthly"`
	Yearly  []int `json:"yearly"`

	Forecast []DailyForecast `json:"forecast"`
	Alerts   []string        `json:"alerts"`
	News     []string        `json:"news"`
}

// DailyForecast is one day of the multi-day outlook, soonest first.
type DailyForecast struct {
	Day      string    `json:"day"`
	High     int       `json:"high"`
	Low      int       `json:"low"`
	RainProb int       `json:"rain_prob"`
	Cond     Condition `json:"cond"`
}

// AlertRecord is a severity-ranked warning produced during a refresh.
// Higher severity means more urgent.
type AlertRecord struct {
	Severity int    `json:"severity"`
	Message  string `json:"message"`
	City     string `json:"city"`
}

// NewsItem is a categorized headline for a city.
type NewsItem struct {
	City     string `json:"city"`
	Headline string `json:"headline"`
	Category string `json:"category"`
}

// ActivityResult is the verdict for an activity-suitability query.
type ActivityResult struct {
	Score   string `json:"score"`
	Message string `json:"message"`
	Color   string `json:"color"`
}
