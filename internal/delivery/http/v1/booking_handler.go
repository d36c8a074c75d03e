package v1

import (
	"net/http"

	"lab-recruitment-backend/internal/delivery/http/response"
	"lab-recruitment-backend/internal/domain"
	"lab-recruitment-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingUC domain.BookingUsecase
}

// NewBookingHandler registers the applicant-facing booking routes
func NewBookingHandler(r *gin.RouterGroup, bookRL gin.HandlerFunc, bookingUC domain.BookingUsecase) {
	handler := &BookingHandler{bookingUC: bookingUC}

	interviews := r.Group("/interviews")
	{
		interviews.GET("/booking-open/:recruitId", handler.BookingOpen)
		interviews.GET("/mine/:recruitId", handler.MyBookings)
	}

	slots := r.Group("/slots")
	{
		slots.GET("/available/:submitId", handler.AvailableSlots)
		slots.POST("/book", bookRL, handler.Book)
	}
}

// BookingOpen godoc
// @Summary      Check booking availability
// @Description  Report whether interview booking is currently open for the caller in a recruitment cycle
// @Tags         booking
// @Produce      json
// @Param        recruitId  path      string  true  "Recruitment cycle ID"
// @Success      200        {object}  response.Response{data=domain.BookingWindow}
// @Failure      401        {object}  response.Response
// @Router       /interviews/booking-open/{recruitId} [get]
// @Security     BearerAuth
func (h *BookingHandler) BookingOpen(c *gin.Context) {
	uid := c.GetString(string(domain.KeyUserID))

	window, err := h.bookingUC.BookingOpen(c.Request.Context(), c.Param("recruitId"), uid)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Booking availability retrieved", window)
}

// AvailableSlots godoc
// @Summary      List available interview slots
// @Description  List the free slots the caller may book for a resume submission
// @Tags         booking
// @Produce      json
// @Param        submitId  path      string  true  "Submission ID"
// @Success      200       {object}  response.Response{data=[]domain.AvailableSlot}
// @Failure      403       {object}  response.Response
// @Router       /slots/available/{submitId} [get]
// @Security     BearerAuth
func (h *BookingHandler) AvailableSlots(c *gin.Context) {
	uid := c.GetString(string(domain.KeyUserID))

	slots, err := h.bookingUC.AvailableSlots(c.Request.Context(), c.Param("submitId"), uid)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Available slots retrieved", slots)
}

// BookRequest is the request payload for booking a slot
type BookRequest struct {
	SubmitID string `json:"submit_id" binding:"required"`
	SlotID   string `json:"slot_id" binding:"required"`
}

// Book godoc
// @Summary      Book an interview slot
// @Description  Atomically claim a slot for a submission; exactly one concurrent caller wins a contested slot
// @Tags         booking
// @Accept       json
// @Produce      json
// @Param        body  body      BookRequest  true  "Booking data"
// @Success      201   {object}  response.Response{data=domain.Interview}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /slots/book [post]
// @Security     BearerAuth
func (h *BookingHandler) Book(c *gin.Context) {
	uid := c.GetString(string(domain.KeyUserID))

	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	interview, err := h.bookingUC.Book(c.Request.Context(), req.SubmitID, req.SlotID, uid)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Interview booked successfully", interview)
}

// MyBookings godoc
// @Summary      List my booked interviews
// @Description  List the caller's booked interviews within a recruitment cycle
// @Tags         booking
// @Produce      json
// @Param        recruitId  path      string  true  "Recruitment cycle ID"
// @Success      200        {object}  response.Response{data=[]domain.MyBooking}
// @Failure      401        {object}  response.Response
// @Router       /interviews/mine/{recruitId} [get]
// @Security     BearerAuth
func (h *BookingHandler) MyBookings(c *gin.Context) {
	uid := c.GetString(string(domain.KeyUserID))

	bookings, err := h.bookingUC.MyBookings(c.Request.Context(), uid, c.Param("recruitId"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Bookings retrieved", bookings)
}
