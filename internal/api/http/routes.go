package httpapi

import (
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"cityweather/internal/geo"
	"cityweather/internal/store"
	"cityweather/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, st *store.WeatherStore, resolver *geo.Resolver) {
	v1 := app.Group("/api/v1")

	// Every API request leaves a diagnostic trace in the store.
	v1.Use(func(c *fiber.Ctx) error {
		st.LogRequest(fmt.Sprintf("%s %s %s", uuid.NewString()[:8], c.Method(), c.OriginalURL()))
		return c.Next()
	})

	v1.Get("/cities", func(c *fiber.Ctx) error {
		return c.JSON(st.ListNames())
	})

	v1.Post("/cities", func(c *fiber.Ctx) error {
		var req registerRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		lat, lon := req.Lat, req.Lon
		if lat == nil || lon == nil {
			gLat, gLon, err := resolver.Resolve(req.Name, req.Country)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "lat/lon required: "+err.Error())
			}
			lat, lon = &gLat, &gLon
		}

		st.Register(req.Name, *lat, *lon)
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"name": req.Name,
			"lat":  *lat,
			"lon":  *lon,
		})
	})

	v1.Get("/data", func(c *fiber.Ctx) error {
		name, err := cityParam(c)
		if err != nil {
			return err
		}

		st.Refresh(c.Context(), name)
		city, ok := st.Lookup(name)
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "city not registered")
		}

		return c.JSON(fiber.Map{
			"city":           city,
			"lifestyle":      weather.LifestyleIndices(city),
			"neighbors":      st.RouteNeighbors(name),
			"hottest_cities": st.TopK(5),
		})
	})

	v1.Get("/news", func(c *fiber.Ctx) error {
		name, err := cityParam(c)
		if err != nil {
			return err
		}
		feed := st.NewsFor(name)
		if feed == nil {
			feed = []weather.NewsItem{}
		}
		return c.JSON(feed)
	})

	v1.Get("/predict", func(c *fiber.Ctx) error {
		var req predictQuery
		req.City = c.Query("city")
		req.Activity = c.Query("activity")
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		st.Refresh(c.Context(), req.City)
		city, ok := st.Lookup(req.City)
		if !ok {
			return c.JSON(weather.ActivityResult{
				Score:   "Unknown",
				Message: "City not found.",
				Color:   "#94a3b8",
			})
		}
		return c.JSON(weather.PredictActivity(city, req.Activity))
	})

	v1.Get("/route", func(c *fiber.Ctx) error {
		var req routeQuery
		req.Start = c.Query("start")
		req.End = c.Query("end")
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		st.Refresh(c.Context(), req.Start)
		st.Refresh(c.Context(), req.End)

		path := st.ShortestPath(req.Start, req.End)
		if path == nil {
			path = []string{}
		}
		return c.JSON(fiber.Map{"path": path})
	})

	v1.Get("/hottest", func(c *fiber.Ctx) error {
		k := 5
		if v := c.Query("k"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				return fiber.NewError(fiber.StatusBadRequest, "k must be a positive integer")
			}
			k = n
		}
		return c.JSON(st.TopK(k))
	})

	v1.Get("/alerts", func(c *fiber.Ctx) error {
		limit := 10
		if v := c.Query("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				return fiber.NewError(fiber.StatusBadRequest, "limit must be a positive integer")
			}
			limit = n
		}
		alerts := st.TopAlerts(limit)
		if alerts == nil {
			alerts = []weather.AlertRecord{}
		}
		return c.JSON(alerts)
	})

	v1.Get("/requests", func(c *fiber.Ctx) error {
		return c.JSON(st.RecentRequests())
	})
}

// registerRequest is the body of POST /cities. Coordinates may be omitted
// when geocoding is configured.
type registerRequest struct {
	Name    string   `json:"name" validate:"required"`
	Country string   `json:"country"`
	Lat     *float64 `json:"lat"`
	Lon     *float64 `json:"lon"`
}

type predictQuery struct {
	City     string `validate:"required"`
	Activity string `validate:"required"`
}

type routeQuery struct {
	Start string `validate:"required"`
	End   string `validate:"required"`
}

func cityParam(c *fiber.Ctx) (string, error) {
	name := c.Query("city")
	if name == "" {
		return "", fiber.NewError(fiber.StatusBadRequest, "city query parameter is required")
	}
	return name, nil
}
