// Package store owns the mutable city registry, the route graph, and the
// derived alert/news state. All access is serialized through one lock; the
// only thing that ever happens outside it is the upstream fetch.
package store

import (
	"container/heap"
	"context"
	"log"
	"sort"
	"strings"
	"sync"

	"cityweather/internal/fetch"
	"cityweather/internal/routegraph"
	"cityweather/internal/scan"
	"cityweather/internal/weather"
)

const maxRequestLog = 50

// WeatherStore is the concurrency-guarded aggregate behind the API surface.
type WeatherStore struct {
	mu sync.RWMutex

	cities map[string]*weather.City
	graph  *routegraph.Graph

	// latest severity-ranked alerts per city, replaced on each refresh
	ranked map[string][]weather.AlertRecord

	requestLog []string

	fetcher fetch.Fetcher
}

// New creates an empty WeatherStore using the given fetcher for refreshes.
func New(fetcher fetch.Fetcher) *WeatherStore {
	return &WeatherStore{
		cities:  make(map[string]*weather.City),
		graph:   routegraph.New(),
		ranked:  make(map[string][]weather.AlertRecord),
		fetcher: fetcher,
	}
}

// Register upserts a city. Registering an existing name overwrites the whole
// record, resetting the snapshot to its defaults.
func (s *WeatherStore) Register(name string, lat, lon float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cities[name] = &weather.City{
		Name:      name,
		Lat:       lat,
		Lon:       lon,
		Condition: weather.ConditionPending,
	}
	delete(s.ranked, name)
}

// Refresh fetches fresh data for name and atomically replaces the city's
// snapshot and everything derived from it. Unknown names are a no-op. A
// failed fetch (empty document) leaves the previous snapshot intact; fetch
// failures are never surfaced as store errors.
func (s *WeatherStore) Refresh(ctx context.Context, name string) {
	var lat, lon float64

	s.mu.RLock()
	c, ok := s.cities[name]
	if ok {
		lat, lon = c.Lat, c.Lon
	}
	s.mu.RUnlock()
	if !ok {
		return
	}

	// The fetch runs without the lock so a slow upstream call never blocks
	// other callers.
	doc := s.fetcher.Fetch(ctx, fetch.ForecastURL(lat, lon))
	if doc == "" {
		log.Printf("store: refresh of %s got no data; keeping last snapshot", name)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok = s.cities[name]
	if !ok {
		return
	}
	applyDocument(c, doc)
	s.ranked[name] = weather.RankedAlerts(*c)
}

// applyDocument parses the raw document into the city record and reruns the
// derivations. Scoped offsets keep current/hourly/daily keys from colliding.
func applyDocument(c *weather.City, doc string) {
	if currentBlock := strings.Index(doc, `"current":`); currentBlock >= 0 {
		c.Temp = int(scan.Number(doc, "temperature_2m", currentBlock))
		c.Humidity = int(scan.Number(doc, "relative_humidity_2m", currentBlock))
		c.Wind = int(scan.Number(doc, "wind_speed_10m", currentBlock))
		c.WindDir = int(scan.Number(doc, "wind_direction_10m", currentBlock))
		c.Condition = weather.DecodeWeatherCode(int(scan.Number(doc, "weather_code", currentBlock)))
	}

	hourlyBlock := strings.Index(doc, `"hourly":`)
	if hourlyBlock < 0 {
		hourlyBlock = 0
	}
	c.Hourly = nil
	for _, v := range scan.NumberArray(doc, "temperature_2m", hourlyBlock, 24) {
		c.Hourly = append(c.Hourly, int(v))
	}

	// Weekly/monthly/yearly series are synthetic projections of the current
	// temperature, not stored history.
	c.Weekly = nil
	c.Monthly = nil
	c.Yearly = nil
	for i := 0; i < 7; i++ {
		c.Weekly = append(c.Weekly, c.Temp+(i%3)-1)
	}
	for i := 0; i < 30; i++ {
		c.Monthly = append(c.Monthly, c.Temp+(i%5)-2)
	}
	for i := 0; i < 12; i++ {
		c.Yearly = append(c.Yearly, c.Temp+(i%4)*2)
	}

	c.Forecast = nil
	if dailyBlock := strings.Index(doc, `"daily":`); dailyBlock >= 0 {
		dates := scan.StringArray(doc, "time", dailyBlock, 10)
		maxTemps := scan.NumberArray(doc, "temperature_2m_max", dailyBlock, 10)
		minTemps := scan.NumberArray(doc, "temperature_2m_min", dailyBlock, 10)
		rainProbs := scan.NumberArray(doc, "precipitation_probability_max", dailyBlock, 10)
		codes := scan.NumberArray(doc, "weather_code", dailyBlock, 10)

		count := len(dates)
		if len(maxTemps) < count {
			count = len(maxTemps)
		}
		if len(minTemps) < count {
			count = len(minTemps)
		}
		for i := 0; i < count; i++ {
			df := weather.DailyForecast{
				Day:  weather.DayName(dates[i]),
				High: int(maxTemps[i]),
				Low:  int(minTemps[i]),
				Cond: weather.ConditionSunny,
			}
			if i < len(rainProbs) {
				df.RainProb = int(rainProbs[i])
			}
			if i < len(codes) {
				df.Cond = weather.DecodeWeatherCode(int(codes[i]))
			}
			c.Forecast = append(c.Forecast, df)
		}
	}

	c.Alerts = weather.DeriveAlerts(*c)
	c.News = weather.DeriveNews(*c)
}

// Lookup returns a copy of the city record.
func (s *WeatherStore) Lookup(name string) (weather.City, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.cities[name]
	if !ok {
		return weather.City{}, false
	}
	return *c, true
}

// ListNames returns all registered city names, sorted.
func (s *WeatherStore) ListNames() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.cities))
	for name := range s.cities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TopK returns the k cities with the highest current temperature. Ties break
// by name so output is reproducible for a fixed store state.
func (s *WeatherStore) TopK(k int) []weather.City {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]weather.City, 0, len(s.cities))
	for _, c := range s.cities {
		all = append(all, *c)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Temp != all[j].Temp {
			return all[i].Temp > all[j].Temp
		}
		return all[i].Name < all[j].Name
	})
	if k > len(all) {
		k = len(all)
	}
	if k < 0 {
		k = 0
	}
	return all[:k]
}

// NewsFor re-tags the stored news strings into coarse categories by keyword,
// defaulting to the city's current condition.
func (s *WeatherStore) NewsFor(name string) []weather.NewsItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.cities[name]
	if !ok {
		return nil
	}

	feed := make([]weather.NewsItem, 0, len(c.News))
	for _, msg := range c.News {
		item := weather.NewsItem{
			City:     c.Name,
			Headline: msg,
			Category: string(c.Condition),
		}
		switch {
		case strings.Contains(msg, "Wind"):
			item.Category = "Wind"
		case strings.Contains(msg, "Rain"):
			item.Category = "Rain"
		case strings.Contains(msg, "Heat"):
			item.Category = "Heat"
		case strings.Contains(msg, "Cold"):
			item.Category = "Cold"
		}
		feed = append(feed, item)
	}
	return feed
}

// AddRoute connects two cities in the route graph, both directions.
func (s *WeatherStore) AddRoute(a, b string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.graph.AddEdge(a, b)
}

// RouteNeighbors returns the direct connections of a city.
func (s *WeatherStore) RouteNeighbors(name string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.graph.Neighbors(name)...)
}

// ShortestPath returns the fewest-hop route between two cities, or empty if
// either is unknown to the graph or no route exists.
func (s *WeatherStore) ShortestPath(start, end string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	known := make([]string, 0, len(s.cities))
	for name := range s.cities {
		known = append(known, name)
	}
	return s.graph.ShortestPath(start, end, known)
}

// alertHeap orders AlertRecords most-severe first.
type alertHeap []weather.AlertRecord

func (h alertHeap) Len() int            { return len(h) }
func (h alertHeap) Less(i, j int) bool  { return h[i].Severity > h[j].Severity }
func (h alertHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *alertHeap) Push(x interface{}) { *h = append(*h, x.(weather.AlertRecord)) }
func (h *alertHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// TopAlerts drains the latest ranked alerts of every city, most severe
// first, returning at most k records.
func (s *WeatherStore) TopAlerts(k int) []weather.AlertRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h := &alertHeap{}
	for _, records := range s.ranked {
		*h = append(*h, records...)
	}
	heap.Init(h)

	if k < 0 {
		k = 0
	}
	var out []weather.AlertRecord
	for h.Len() > 0 && len(out) < k {
		out = append(out, heap.Pop(h).(weather.AlertRecord))
	}
	return out
}

// LogRequest records a diagnostic entry, keeping only the newest entries.
func (s *WeatherStore) LogRequest(entry string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requestLog = append(s.requestLog, entry)
	if len(s.requestLog) > maxRequestLog {
		s.requestLog = s.requestLog[len(s.requestLog)-maxRequestLog:]
	}
}

// RecentRequests returns a copy of the request log, oldest first.
func (s *WeatherStore) RecentRequests() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.requestLog...)
}
