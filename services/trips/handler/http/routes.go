package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the trip routes on an authenticated group
func (h *TripsHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/trips", h.CreateTrip)
	g.GET("/trips/search", h.SearchTrips)
	g.GET("/trips/my-trips", h.GetMyTrips)
	g.POST("/trips/:tripID/join", h.RequestToJoin)
	g.PUT("/trips/:tripID/requests/:requestID", h.HandleTripRequest)
	g.GET("/trips/:tripID/settlement", h.GetSettlement)
	g.POST("/trips/:tripID/settlement", h.SubmitSettlement)
}
