package v1

import (
	"net/http"
	"time"

	"lab-recruitment-backend/internal/delivery/http/response"
	"lab-recruitment-backend/internal/domain"
	"lab-recruitment-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type InterviewAdminHandler struct {
	interviewAdminUC domain.InterviewAdminUsecase
	bookingUC        domain.BookingUsecase
}

// NewInterviewAdminHandler registers the admin interview routes
func NewInterviewAdminHandler(r *gin.RouterGroup, interviewAdminUC domain.InterviewAdminUsecase, bookingUC domain.BookingUsecase) {
	handler := &InterviewAdminHandler{interviewAdminUC: interviewAdminUC, bookingUC: bookingUC}

	r.GET("/recruits/:recruitId/interviews", handler.ListInterviews)

	interviews := r.Group("/interviews")
	{
		interviews.PUT("/:interviewId", handler.Reschedule)
		interviews.POST("/:interviewId/cancel", handler.Cancel)
		interviews.POST("/:interviewId/result", handler.RecordResult)
	}
}

// ListInterviews godoc
// @Summary      List interviews
// @Description  List all booked interviews of a cycle with applicant, room and review data (Admin only)
// @Tags         interview-admin
// @Produce      json
// @Param        recruitId  path      string  true  "Recruitment cycle ID"
// @Success      200        {object}  response.Response{data=[]domain.InterviewDetail}
// @Router       /admin/recruits/{recruitId}/interviews [get]
// @Security     BearerAuth
func (h *InterviewAdminHandler) ListInterviews(c *gin.Context) {
	details, err := h.interviewAdminUC.ListByRecruit(c.Request.Context(), c.Param("recruitId"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interviews retrieved", details)
}

// RescheduleRequest is the request payload for rescheduling an interview
type RescheduleRequest struct {
	InterviewTime *string `json:"interview_time"`
	Location      *string `json:"location"`
	Notes         *string `json:"notes"`
}

// Reschedule godoc
// @Summary      Reschedule an interview
// @Description  Patch an interview's time, location or notes (Admin only)
// @Tags         interview-admin
// @Accept       json
// @Produce      json
// @Param        interviewId  path      string             true  "Interview ID"
// @Param        body         body      RescheduleRequest  true  "Fields to update"
// @Success      200          {object}  response.Response
// @Failure      400          {object}  response.Response
// @Failure      404          {object}  response.Response
// @Router       /admin/interviews/{interviewId} [put]
// @Security     BearerAuth
func (h *InterviewAdminHandler) Reschedule(c *gin.Context) {
	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	var update domain.InterviewUpdate
	if req.InterviewTime != nil {
		parsed, err := time.Parse(timeLayout, *req.InterviewTime)
		if err != nil {
			c.Error(apperror.BadRequest("Invalid interview_time, expected format 'YYYY-MM-DD HH:MM:SS'"))
			return
		}
		update.Time = &parsed
	}
	update.Location = req.Location
	update.Notes = req.Notes

	if err := h.interviewAdminUC.Reschedule(c.Request.Context(), c.Param("interviewId"), update); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview updated", nil)
}

// Cancel godoc
// @Summary      Cancel an interview
// @Description  Cancel a booked interview, release its slot and allow rebooking (Admin only)
// @Tags         interview-admin
// @Produce      json
// @Param        interviewId  path      string  true  "Interview ID"
// @Success      200          {object}  response.Response
// @Failure      404          {object}  response.Response
// @Router       /admin/interviews/{interviewId}/cancel [post]
// @Security     BearerAuth
func (h *InterviewAdminHandler) Cancel(c *gin.Context) {
	if err := h.bookingUC.Cancel(c.Request.Context(), c.Param("interviewId")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview cancelled, its slot (if any) released", nil)
}

// RecordResultRequest is the request payload for recording an interview result
type RecordResultRequest struct {
	Passed   bool   `json:"passed"`
	Score    int    `json:"score"`
	Comments string `json:"comments"`
}

// RecordResult godoc
// @Summary      Record an interview result
// @Description  Store the reviewer's verdict for an interview (Admin only)
// @Tags         interview-admin
// @Accept       json
// @Produce      json
// @Param        interviewId  path      string               true  "Interview ID"
// @Param        body         body      RecordResultRequest  true  "Result data"
// @Success      200          {object}  response.Response
// @Failure      404          {object}  response.Response
// @Router       /admin/interviews/{interviewId}/result [post]
// @Security     BearerAuth
func (h *InterviewAdminHandler) RecordResult(c *gin.Context) {
	reviewerUID := c.GetString(string(domain.KeyUserID))

	var req RecordResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	err := h.interviewAdminUC.RecordResult(c.Request.Context(),
		c.Param("interviewId"), reviewerUID, req.Passed, req.Score, req.Comments)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview result recorded", nil)
}
