package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Haseem12/ArewaRide/internal/domain"
	"github.com/Haseem12/ArewaRide/internal/http/middleware"
	"github.com/Haseem12/ArewaRide/internal/services"
	"github.com/Haseem12/ArewaRide/internal/utils"
)

type createBookingRequest struct {
	ScheduleID    string `json:"schedule_id"`
	PassengerName string `json:"passenger_name"`
}

// POST /api/bookings
// The passenger name defaults to the authenticated user; an explicit
// passenger_name books on someone else's behalf.
func CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	passengerName := utils.NormalizeSpace(req.PassengerName)
	if passengerName == "" {
		passengerName = middleware.GetUserName(c)
	}

	svc := services.ReservationService{RequestID: middleware.GetRequestID(c)}
	booking, err := svc.Book(req.ScheduleID, passengerName)
	if err != nil {
		if domain.IsPersistence(err) {
			// The seat is committed but the receipt may be missing. Tell the
			// user in so many words; retrying blindly would burn another seat.
			c.JSON(http.StatusInternalServerError, gin.H{
				"code":       "persistence_error",
				"error":      "your seat is reserved, but the booking record could not be saved; verify your bookings before retrying",
				"booking":    booking,
				"request_id": middleware.GetRequestID(c),
			})
			return
		}
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("Your seat on %s from %s to %s has been booked.",
			booking.TripDetails.Operator, booking.TripDetails.Origin, booking.TripDetails.Destination),
		"booking": booking,
	})
}

// GET /api/bookings
func GetBookings(c *gin.Context) {
	svc := services.ReservationService{}
	records, err := svc.ListBookings()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": records})
}

// GET /api/bookings/:id
func GetBookingByID(c *gin.Context) {
	svc := services.ReservationService{}
	booking, err := svc.FindBooking(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// GET /api/bookings/:id/e-ticket
func GetBookingETicketPDF(c *gin.Context) {
	svc := services.DocsService{RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := svc.GenerateETicket(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
