package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/Haseem12/ArewaRide/internal/domain/models"
	"github.com/Haseem12/ArewaRide/internal/repositories"
	"github.com/Haseem12/ArewaRide/internal/utils"
)

// DocsService renders booking receipts (e-tickets) as PDFs.
type DocsService struct {
	BookingRepo repositories.BookingRepository
	RequestID   string
	Loader      func(bookingID string) (models.BookedTrip, error)
}

func (s DocsService) load(bookingID string) (models.BookedTrip, error) {
	if s.Loader != nil {
		return s.Loader(bookingID)
	}
	return s.BookingRepo.FindByBookingID(bookingID)
}

func (s DocsService) GenerateETicket(bookingID string) ([]byte, string, error) {
	booking, err := s.load(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_eticket", fmt.Sprintf("booking_id=%s", bookingID))
	return buildETicketPDF(booking)
}

func buildETicketPDF(b models.BookedTrip) ([]byte, string, error) {
	trip := b.TripDetails

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "ArewaRide E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking ID   : %s", b.BookingID),
		fmt.Sprintf("Passenger    : %s", b.PassengerName),
		fmt.Sprintf("Seat         : %s", b.SeatNumber),
		fmt.Sprintf("Route        : %s -> %s", trip.Origin, trip.Destination),
		fmt.Sprintf("Operator     : %s (%s)", trip.Operator, trip.VehicleType),
		fmt.Sprintf("Departs      : %s", trip.DepartureDateTime.Format("Mon, 02 Jan 2006 15:04 MST")),
		fmt.Sprintf("Arrives      : %s", trip.ArrivalDateTime.Format("Mon, 02 Jan 2006 15:04 MST")),
		fmt.Sprintf("Fare         : %s", utils.FormatNaira(trip.Price)),
		fmt.Sprintf("Booked on    : %s", b.BookingDate.Format("2006-01-02 15:04")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This e-ticket is valid for 1 passenger (1 seat). Please present it at departure. All times are local; arrival times are estimates.", "", "", false)

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 6, "Generated "+time.Now().UTC().Format("2006-01-02 15:04")+" UTC")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ETICKET_%s.pdf", utils.SafeFilenamePart(b.BookingID))
	return buf.Bytes(), filename, nil
}
