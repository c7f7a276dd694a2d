// Package http exposes the marketplace API over HTTP. Every marketplace
// operation is a POST of a JSON payload; the server forwards the raw payload
// to the transport adapter and serializes the outcome envelope it gets back,
// so remote and local mode produce identical responses.
package http

import (
	"io"
	"net/http"
	"strconv"

	"baleconnect/internal/adapters/out/geo"
	"baleconnect/internal/core/domain/model/kernel"
	"baleconnect/internal/transport"

	"github.com/labstack/echo/v4"
)

// maxRequestBytes caps operation payload size.
const maxRequestBytes = 1 << 20

// Server handles HTTP requests for the marketplace API.
type Server struct {
	adapter *transport.Adapter
	geo     *geo.Client
}

// NewServer creates an HTTP server over the transport adapter. The geo
// client is optional; without it the geocoding endpoints answer 503.
func NewServer(adapter *transport.Adapter, geoClient *geo.Client) *Server {
	return &Server{adapter: adapter, geo: geoClient}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	for _, op := range []string{
		transport.OpAuth,
		transport.OpRegister,
		transport.OpCreateOrder,
		transport.OpGetOrders,
		transport.OpGetOrder,
		transport.OpAcceptOrder,
		transport.OpAssignBaler,
		transport.OpUpdateStatus,
		transport.OpGetUsers,
		transport.OpSubmitRating,
		transport.OpGetUserRatings,
		transport.OpGetOrderRatings,
	} {
		e.POST(op, s.operation(op))
	}

	e.GET("/health", s.health)
	e.GET("/geocode/search", s.geocodeSearch)
	e.GET("/geocode/reverse", s.geocodeReverse)
}

// operation builds the forwarding handler for one operation path.
func (s *Server) operation(op string) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		payload, err := io.ReadAll(io.LimitReader(ctx.Request().Body, maxRequestBytes))
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, transport.Outcome{
				Error: "ไม่สามารถอ่านคำขอได้ / Could not read request body",
			})
		}

		outcome := s.adapter.Send(ctx.Request().Context(), op, payload)
		return ctx.JSON(outcome.Status, outcome)
	}
}

func (s *Server) health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{
		"status": "ok",
		"mode":   string(s.adapter.Mode()),
	})
}

func (s *Server) geocodeSearch(ctx echo.Context) error {
	if s.geo == nil {
		return ctx.JSON(http.StatusServiceUnavailable, transport.Outcome{
			Error: "บริการค้นหาที่อยู่ไม่พร้อมใช้งาน / Geocoding service unavailable",
		})
	}

	places, err := s.geo.Search(ctx.Request().Context(), ctx.QueryParam("q"))
	if err != nil {
		return ctx.JSON(http.StatusBadGateway, transport.Outcome{
			Error: "ค้นหาที่อยู่ไม่สำเร็จ / Address lookup failed",
		})
	}

	type place struct {
		DisplayName string  `json:"display_name"`
		Lat         float64 `json:"lat"`
		Lng         float64 `json:"lng"`
	}
	results := make([]place, 0, len(places))
	for _, p := range places {
		results = append(results, place{
			DisplayName: p.DisplayName,
			Lat:         p.Location.Lat(),
			Lng:         p.Location.Lng(),
		})
	}
	return ctx.JSON(http.StatusOK, results)
}

func (s *Server) geocodeReverse(ctx echo.Context) error {
	if s.geo == nil {
		return ctx.JSON(http.StatusServiceUnavailable, transport.Outcome{
			Error: "บริการค้นหาที่อยู่ไม่พร้อมใช้งาน / Geocoding service unavailable",
		})
	}

	lat, latErr := strconv.ParseFloat(ctx.QueryParam("lat"), 64)
	lng, lngErr := strconv.ParseFloat(ctx.QueryParam("lng"), 64)
	if latErr != nil || lngErr != nil {
		return ctx.JSON(http.StatusBadRequest, transport.Outcome{
			Error: "พิกัดไม่ถูกต้อง / Invalid coordinates",
		})
	}

	point, err := kernel.NewGeoPoint(lat, lng)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, transport.Outcome{
			Error: "พิกัดไม่ถูกต้อง / Invalid coordinates",
		})
	}

	address, err := s.geo.Reverse(ctx.Request().Context(), point)
	if err != nil {
		return ctx.JSON(http.StatusBadGateway, transport.Outcome{
			Error: "ค้นหาที่อยู่ไม่สำเร็จ / Address lookup failed",
		})
	}

	return ctx.JSON(http.StatusOK, map[string]string{"display_name": address})
}
