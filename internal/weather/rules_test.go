package weather

import (
	"strings"
	"testing"
)

func TestDeriveAlertsSingleTrigger(t *testing.T) {
	c := City{Name: "Multan", Temp: 45, Wind: 10, Humidity: 10, Condition: ConditionSunny}
	alerts := DeriveAlerts(c)
	if len(alerts) != 1 {
		t.Fatalf("expected exactly 1 alert, got %d: %v", len(alerts), alerts)
	}
	if !strings.Contains(alerts[0], "Heat") {
		t.Fatalf("expected a heat warning, got %q", alerts[0])
	}
}

func TestDeriveAlertsCoFiring(t *testing.T) {
	// Flash flood requires Rainy, not Stormy, so it must not fire here.
	c := City{Name: "Karachi", Temp: 45, Wind: 35, Humidity: 95, Condition: ConditionStormy}
	alerts := DeriveAlerts(c)
	if len(alerts) != 3 {
		t.Fatalf("expected 3 alerts, got %d: %v", len(alerts), alerts)
	}
	for _, a := range alerts {
		if strings.Contains(a, "Flood") {
			t.Fatalf("flash flood must not fire for Stormy: %v", alerts)
		}
	}
}

func TestDeriveAlertsFlashFloodAndFreeze(t *testing.T) {
	c := City{Name: "Murree", Temp: -5, Wind: 5, Humidity: 95, Condition: ConditionRainy}
	alerts := DeriveAlerts(c)
	if len(alerts) != 2 {
		t.Fatalf("expected 2 alerts, got %d: %v", len(alerts), alerts)
	}
	if !strings.Contains(alerts[0], "Flash Flood") {
		t.Fatalf("expected flash flood first, got %q", alerts[0])
	}
	if !strings.Contains(alerts[1], "Freeze") {
		t.Fatalf("expected freeze warning second, got %q", alerts[1])
	}
}

func TestDeriveAlertsQuietWeather(t *testing.T) {
	c := City{Name: "Lahore", Temp: 22, Wind: 5, Humidity: 40, Condition: ConditionSunny}
	if alerts := DeriveAlerts(c); len(alerts) != 0 {
		t.Fatalf("expected no alerts, got %v", alerts)
	}
}

func TestRankedAlertsSeverities(t *testing.T) {
	c := City{Name: "Karachi", Temp: 45, Wind: 35, Humidity: 95, Condition: ConditionStormy}
	records := RankedAlerts(c)
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for _, r := range records {
		if r.City != "Karachi" {
			t.Fatalf("record not tagged with city: %+v", r)
		}
		if r.Severity < 1 || r.Severity > 3 {
			t.Fatalf("severity out of range: %+v", r)
		}
	}
}

func TestDeriveNewsRainy(t *testing.T) {
	c := City{Name: "Sialkot", Condition: ConditionRainy}
	news := DeriveNews(c)
	if len(news) != 2 {
		t.Fatalf("expected 2 rainy headlines, got %v", news)
	}
}

func TestDeriveNewsSunnyHeatwaveAndWind(t *testing.T) {
	c := City{Name: "Multan", Temp: 38, Wind: 25, Condition: ConditionSunny}
	news := DeriveNews(c)
	if len(news) != 3 {
		t.Fatalf("expected clear-sky, heatwave, and wind headlines, got %v", news)
	}
}

func TestDeriveNewsNeverEmpty(t *testing.T) {
	c := City{Name: "Quetta", Condition: ConditionUnknown}
	news := DeriveNews(c)
	if len(news) != 1 {
		t.Fatalf("expected the single stable-conditions line, got %v", news)
	}
	if !strings.Contains(news[0], "Stable weather conditions") {
		t.Fatalf("unexpected fallback headline: %q", news[0])
	}
}

func TestDeriveNewsWindOnlyAddendum(t *testing.T) {
	c := City{Name: "Quetta", Wind: 25, Condition: ConditionUnknown}
	news := DeriveNews(c)
	if len(news) != 1 || !strings.Contains(news[0], "Strong Winds") {
		t.Fatalf("expected only the wind addendum, got %v", news)
	}
}

func TestLifestyleIndices(t *testing.T) {
	cases := []struct {
		name string
		city City
		want map[string]string
	}{
		{
			name: "calm and mild",
			city: City{Temp: 22, Wind: 10, Condition: ConditionSunny},
			want: map[string]string{"Drone": "Excellent", "Running": "Perfect", "BBQ": "Fire it up!"},
		},
		{
			name: "hot and breezy",
			city: City{Temp: 30, Wind: 18, Condition: ConditionSunny},
			want: map[string]string{"Drone": "Caution", "Running": "Hydrate", "BBQ": "Fire it up!"},
		},
		{
			name: "rainy",
			city: City{Temp: 20, Wind: 10, Condition: ConditionRainy},
			want: map[string]string{"Drone": "Unsafe", "Running": "Perfect", "BBQ": "Indoors"},
		},
		{
			name: "stormy gale",
			city: City{Temp: 38, Wind: 40, Condition: ConditionStormy},
			want: map[string]string{"Drone": "Unsafe", "Running": "Avoid", "BBQ": "Indoors"},
		},
		{
			name: "windy but dry",
			city: City{Temp: 25, Wind: 22, Condition: ConditionCloudy},
			want: map[string]string{"Drone": "Caution", "Running": "Perfect", "BBQ": "Too Windy"},
		},
	}

	for _, tc := range cases {
		got := LifestyleIndices(tc.city)
		for k, want := range tc.want {
			if got[k] != want {
				t.Errorf("%s: %s = %q, want %q", tc.name, k, got[k], want)
			}
		}
	}
}

func TestPredictActivityDrone(t *testing.T) {
	windy := City{Wind: 35, Condition: ConditionSunny}
	res := PredictActivity(windy, "drone")
	if res.Score != "Unsafe" || res.Color != "#ef4444" {
		t.Fatalf("high wind must be Unsafe regardless of condition, got %+v", res)
	}

	rainy := City{Wind: 10, Condition: ConditionRainy}
	res = PredictActivity(rainy, "fly my drone")
	if res.Score != "Risky" || res.Color != "#fbbf24" {
		t.Fatalf("rain should be Risky, got %+v", res)
	}

	calm := City{Wind: 5, Condition: ConditionSunny}
	res = PredictActivity(calm, "Fly")
	if res.Score != "Excellent" || res.Color != "#4ade80" {
		t.Fatalf("calm weather should be Excellent, got %+v", res)
	}
}

func TestPredictActivityCategoryOrder(t *testing.T) {
	// bbq keywords are tested before run keywords; a query containing both
	// resolves to the bbq category.
	c := City{Wind: 5, Condition: ConditionSunny}
	res := PredictActivity(c, "run to the bbq")
	if res.Score != "Perfect" {
		t.Fatalf("expected the bbq verdict, got %+v", res)
	}
}

func TestPredictActivityRunning(t *testing.T) {
	hot := City{Temp: 40, Condition: ConditionSunny}
	if res := PredictActivity(hot, "morning jog"); res.Score != "Caution" {
		t.Fatalf("expected Caution in heat, got %+v", res)
	}
	stormy := City{Temp: 20, Condition: ConditionStormy}
	if res := PredictActivity(stormy, "walk"); res.Score != "Unsafe" {
		t.Fatalf("expected Unsafe in storm, got %+v", res)
	}
}

func TestPredictActivitySports(t *testing.T) {
	rainy := City{Condition: ConditionRainy}
	if res := PredictActivity(rainy, "cricket"); res.Score != "Washout" {
		t.Fatalf("expected Washout, got %+v", res)
	}
	dry := City{Condition: ConditionCloudy}
	if res := PredictActivity(dry, "football match"); res.Score != "Play Ball!" {
		t.Fatalf("expected Play Ball!, got %+v", res)
	}
}

func TestPredictActivityConstruction(t *testing.T) {
	rainy := City{Condition: ConditionRainy}
	if res := PredictActivity(rainy, "pour cement"); res.Score != "Delay" {
		t.Fatalf("expected Delay, got %+v", res)
	}
}

func TestPredictActivityUnknownEchoesCondition(t *testing.T) {
	c := City{Condition: ConditionFoggy}
	res := PredictActivity(c, "knitting")
	if res.Score != "Unknown" || res.Color != "#94a3b8" {
		t.Fatalf("expected neutral Unknown verdict, got %+v", res)
	}
	if !strings.Contains(res.Message, "Foggy") {
		t.Fatalf("message should echo the condition, got %q", res.Message)
	}
}
