package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Haseem12/ArewaRide/internal/services"
)

// GET /api/cities?origin=&destination=
// Returns the selectable cities for each side of the route picker, with the
// opposite selection excluded so a city cannot be both origin and destination.
func GetCities(c *gin.Context) {
	svc := services.RouteService{}

	origins, err := svc.AvailableOrigins(c.Query("destination"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	destinations, err := svc.AvailableDestinations(c.Query("origin"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"origins":      origins,
		"destinations": destinations,
	})
}

// GET /api/schedules?origin=&destination=
func GetSchedules(c *gin.Context) {
	svc := services.RouteService{}

	schedules, err := svc.FindSchedules(c.Query("origin"), c.Query("destination"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"schedules": schedules})
}
