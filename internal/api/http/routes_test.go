package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"cityweather/internal/geo"
	"cityweather/internal/store"
)

type staticFetcher struct{ doc string }

func (f staticFetcher) Fetch(ctx context.Context, url string) string { return f.doc }

func newTestApp(st *store.WeatherStore) *fiber.App {
	app := fiber.New()
	RegisterRoutes(app, st, geo.New(""))
	return app
}

func TestListCities(t *testing.T) {
	st := store.New(staticFetcher{})
	st.Register("Lahore", 31.55, 74.34)
	st.Register("Karachi", 24.86, 67.01)
	app := newTestApp(st)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cities", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var names []string
	if err := json.NewDecoder(resp.Body).Decode(&names); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(names) != 2 || names[0] != "Karachi" || names[1] != "Lahore" {
		t.Fatalf("names = %v", names)
	}
}

func TestRegisterCityRequiresCoordinatesWithoutGeocoder(t *testing.T) {
	st := store.New(staticFetcher{})
	app := newTestApp(st)

	body := strings.NewReader(`{"name":"Gilgit"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cities", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
}

func TestRegisterCityWithCoordinates(t *testing.T) {
	st := store.New(staticFetcher{})
	app := newTestApp(st)

	body := strings.NewReader(`{"name":"Gilgit","lat":35.92,"lon":74.31}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/cities", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusCreated)
	}

	c, ok := st.Lookup("Gilgit")
	if !ok || c.Lat != 35.92 {
		t.Fatalf("city not registered: %+v", c)
	}
}

func TestDataUnknownCity(t *testing.T) {
	st := store.New(staticFetcher{})
	app := newTestApp(st)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/data?city=Atlantis", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}
}

func TestDataMissingCityParam(t *testing.T) {
	st := store.New(staticFetcher{})
	app := newTestApp(st)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/data", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
}

func TestPredictValidation(t *testing.T) {
	st := store.New(staticFetcher{})
	app := newTestApp(st)

	// Missing activity parameter should return 400.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/predict?city=Lahore", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
}

func TestPredictUnknownCity(t *testing.T) {
	st := store.New(staticFetcher{})
	app := newTestApp(st)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/predict?city=Atlantis&activity=drone", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var res struct {
		Score   string `json:"score"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Score != "Unknown" || res.Message != "City not found." {
		t.Fatalf("result = %+v", res)
	}
}

func TestRouteEndpoint(t *testing.T) {
	st := store.New(staticFetcher{})
	st.AddRoute("X", "Y")
	st.AddRoute("Y", "Z")
	app := newTestApp(st)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/route?start=X&end=Z", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var body struct {
		Path []string `json:"path"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Path) != 3 || body.Path[0] != "X" || body.Path[2] != "Z" {
		t.Fatalf("path = %v", body.Path)
	}
}

func TestRouteValidation(t *testing.T) {
	st := store.New(staticFetcher{})
	app := newTestApp(st)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/route?start=X", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
}

func TestRequestsLogged(t *testing.T) {
	st := store.New(staticFetcher{})
	app := newTestApp(st)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cities", nil)
	if _, err := app.Test(req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := st.RecentRequests()
	if len(entries) != 1 {
		t.Fatalf("expected one logged request, got %v", entries)
	}
	if !strings.Contains(entries[0], "GET /api/v1/cities") {
		t.Fatalf("entry = %q", entries[0])
	}
}
