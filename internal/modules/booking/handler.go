package booking

import (
	"errors"
	"net/http"
	"strconv"

	"talentbook/internal/domain"
	"talentbook/internal/pkg/response"
	"talentbook/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for the booking lifecycle.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterTalentRoutes mounts the talent-facing lifecycle endpoints; the
// group must already be guarded by Authenticate + RequireRole(talent).
func (h *Handler) RegisterTalentRoutes(talent *gin.RouterGroup) {
	talent.GET("/bookings", h.ListTalentBookings)
	talent.POST("/accept_booking/:bookingId", h.transition(domain.RoleTalent, domain.BookingAccepted, "Booking accepted successfully"))
	talent.POST("/reject_booking/:bookingId", h.transition(domain.RoleTalent, domain.BookingRejected, "Booking rejected successfully"))
	talent.POST("/completed_booking/:bookingId", h.transition(domain.RoleTalent, domain.BookingCompleted, "Booking marked as completed"))
	talent.POST("/cancelled_booking/:bookingId", h.transition(domain.RoleTalent, domain.BookingCancelled, "Booking cancelled successfully"))
}

// RegisterClientRoutes mounts the client-facing lifecycle endpoints.
func (h *Handler) RegisterClientRoutes(client *gin.RouterGroup) {
	client.POST("/book_talent", h.BookTalent)
	client.GET("/get_bookings", h.ListClientBookings)
	client.POST("/completed_booking/:bookingId", h.transition(domain.RoleClient, domain.BookingCompleted, "Booking marked as completed"))
	client.POST("/cancelled_booking/:bookingId", h.transition(domain.RoleClient, domain.BookingCancelled, "Booking cancelled successfully"))
}

func (h *Handler) BookTalent(c *gin.Context) {
	clientID := c.GetInt64("user_id")

	var req BookTalentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, map[string]string{"body": "invalid"})
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationErrors(c, errs)
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), clientID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrTalentNotFound):
			response.Error(c, http.StatusNotFound, "Talent not found")
		case errors.Is(err, ErrServiceNotFound):
			response.Error(c, http.StatusNotFound, "Service not found")
		case errors.Is(err, ErrValidation):
			response.ValidationErrors(c, map[string]string{"booking_date": "date"})
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to create booking")
		}
		return
	}

	response.JSON(c, http.StatusCreated, gin.H{
		"message": "Booking requested successfully.",
		"booking": b,
	})
}

func (h *Handler) ListTalentBookings(c *gin.Context) {
	talentID := c.GetInt64("user_id")

	bookings, err := h.service.ListForTalent(c.Request.Context(), talentID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list bookings")
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) ListClientBookings(c *gin.Context) {
	clientID := c.GetInt64("user_id")

	bookings, err := h.service.ListForClient(c.Request.Context(), clientID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to list bookings")
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"bookings": bookings})
}

// transition builds a handler that moves the booking in the path param to a
// fixed target status on behalf of the authenticated actor.
func (h *Handler) transition(role domain.UserRole, target domain.BookingStatus, okMessage string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID := c.GetInt64("user_id")

		bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
		if err != nil {
			response.Error(c, http.StatusNotFound, "Booking not found")
			return
		}

		b, err := h.service.Transition(c.Request.Context(), actorID, role, bookingID, target)
		if err != nil {
			switch {
			case errors.Is(err, ErrBookingNotFound):
				response.Error(c, http.StatusNotFound, "Booking not found")
			case errors.Is(err, ErrForbidden):
				response.Error(c, http.StatusForbidden, "Access denied: insufficient permissions")
			case errors.Is(err, ErrInvalidTransition):
				response.Error(c, http.StatusConflict, "Booking status can no longer change")
			default:
				response.Error(c, http.StatusInternalServerError, "Failed to update booking")
			}
			return
		}

		response.JSON(c, http.StatusOK, gin.H{
			"status":  true,
			"message": okMessage,
			"booking": b,
		})
	}
}
