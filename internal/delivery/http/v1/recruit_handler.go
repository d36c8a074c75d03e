package v1

import (
	"net/http"
	"time"

	"lab-recruitment-backend/internal/delivery/http/response"
	"lab-recruitment-backend/internal/domain"
	"lab-recruitment-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type RecruitHandler struct {
	recruitUC domain.RecruitUsecase
}

// NewRecruitHandler registers the recruitment cycle routes
func NewRecruitHandler(r, admin *gin.RouterGroup, recruitUC domain.RecruitUsecase) {
	handler := &RecruitHandler{recruitUC: recruitUC}

	recruits := r.Group("/recruits")
	{
		recruits.GET("", handler.List)
		recruits.GET("/:recruitId", handler.Get)
	}

	adminRecruits := admin.Group("/recruits")
	{
		adminRecruits.POST("", handler.Create)
		adminRecruits.PUT("/:recruitId", handler.Update)
		adminRecruits.POST("/:recruitId/booking-window", handler.SetBookingWindow)
	}
}

func isAdmin(c *gin.Context) bool {
	return c.GetString(string(domain.KeyUserRole)) == domain.RoleAdmin
}

// List godoc
// @Summary      List recruitment cycles
// @Description  List recruitment cycles; inactive cycles are only visible to admins
// @Tags         recruits
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Recruit}
// @Router       /recruits [get]
// @Security     BearerAuth
func (h *RecruitHandler) List(c *gin.Context) {
	recruits, err := h.recruitUC.List(c.Request.Context(), isAdmin(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Recruitment cycles retrieved", recruits)
}

// Get godoc
// @Summary      Get a recruitment cycle
// @Description  Get one recruitment cycle; closed or inactive cycles are hidden from applicants
// @Tags         recruits
// @Produce      json
// @Param        recruitId  path      string  true  "Recruitment cycle ID"
// @Success      200        {object}  response.Response{data=domain.Recruit}
// @Failure      404        {object}  response.Response
// @Router       /recruits/{recruitId} [get]
// @Security     BearerAuth
func (h *RecruitHandler) Get(c *gin.Context) {
	recruit, err := h.recruitUC.Get(c.Request.Context(), c.Param("recruitId"), isAdmin(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Recruitment cycle retrieved", recruit)
}

// RecruitRequest is the request payload for creating or updating a cycle
type RecruitRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Active      bool   `json:"is_active"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
}

func (req *RecruitRequest) toDomain(id string) (*domain.Recruit, error) {
	start, err := time.Parse(timeLayout, req.StartTime)
	if err != nil {
		return nil, apperror.BadRequest("Invalid start_time, expected format 'YYYY-MM-DD HH:MM:SS'")
	}
	end, err := time.Parse(timeLayout, req.EndTime)
	if err != nil {
		return nil, apperror.BadRequest("Invalid end_time, expected format 'YYYY-MM-DD HH:MM:SS'")
	}

	return &domain.Recruit{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Active:      req.Active,
		StartTime:   start,
		EndTime:     end,
	}, nil
}

// Create godoc
// @Summary      Create a recruitment cycle
// @Description  Create a new recruitment cycle (Admin only)
// @Tags         recruits
// @Accept       json
// @Produce      json
// @Param        body  body      RecruitRequest  true  "Cycle data"
// @Success      201   {object}  response.Response{data=domain.Recruit}
// @Failure      400   {object}  response.Response
// @Router       /admin/recruits [post]
// @Security     BearerAuth
func (h *RecruitHandler) Create(c *gin.Context) {
	var req RecruitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	recruit, err := req.toDomain("")
	if err != nil {
		c.Error(err)
		return
	}

	created, err := h.recruitUC.Create(c.Request.Context(), recruit)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Recruitment cycle created", created)
}

// Update godoc
// @Summary      Update a recruitment cycle
// @Description  Update a recruitment cycle (Admin only)
// @Tags         recruits
// @Accept       json
// @Produce      json
// @Param        recruitId  path      string          true  "Recruitment cycle ID"
// @Param        body       body      RecruitRequest  true  "Cycle data"
// @Success      200        {object}  response.Response
// @Failure      400        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Router       /admin/recruits/{recruitId} [put]
// @Security     BearerAuth
func (h *RecruitHandler) Update(c *gin.Context) {
	var req RecruitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	recruit, err := req.toDomain(c.Param("recruitId"))
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.recruitUC.Update(c.Request.Context(), recruit); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Recruitment cycle updated", nil)
}

// BookingWindowRequest is the request payload for setting the booking window
type BookingWindowRequest struct {
	BookStartTime string `json:"book_start_time" binding:"required"`
	BookEndTime   string `json:"book_end_time" binding:"required"`
}

// SetBookingWindow godoc
// @Summary      Set the interview booking window
// @Description  Create or replace the booking window of a cycle (Admin only)
// @Tags         recruits
// @Accept       json
// @Produce      json
// @Param        recruitId  path      string                true  "Recruitment cycle ID"
// @Param        body       body      BookingWindowRequest  true  "Booking window"
// @Success      200        {object}  response.Response
// @Failure      400        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Router       /admin/recruits/{recruitId}/booking-window [post]
// @Security     BearerAuth
func (h *RecruitHandler) SetBookingWindow(c *gin.Context) {
	var req BookingWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	start, err := time.Parse(timeLayout, req.BookStartTime)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid book_start_time, expected format 'YYYY-MM-DD HH:MM:SS'"))
		return
	}
	end, err := time.Parse(timeLayout, req.BookEndTime)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid book_end_time, expected format 'YYYY-MM-DD HH:MM:SS'"))
		return
	}

	if err := h.recruitUC.SetBookingWindow(c.Request.Context(), c.Param("recruitId"), start, end); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Booking window saved", nil)
}
