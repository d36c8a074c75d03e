package v1

import (
	"net/http"
	"time"

	"lab-recruitment-backend/internal/delivery/http/response"
	"lab-recruitment-backend/internal/domain"
	"lab-recruitment-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// timeLayout is the wire format for all schedule timestamps
const timeLayout = time.DateTime

type ScheduleAdminHandler struct {
	scheduleUC domain.ScheduleUsecase
}

// NewScheduleAdminHandler registers the admin room and slot routes
func NewScheduleAdminHandler(r *gin.RouterGroup, scheduleUC domain.ScheduleUsecase) {
	handler := &ScheduleAdminHandler{scheduleUC: scheduleUC}

	rooms := r.Group("/rooms")
	{
		rooms.POST("", handler.CreateRoom)
		rooms.PUT("/:roomId", handler.UpdateRoom)
		rooms.DELETE("/:roomId", handler.DeleteRoom)
		rooms.POST("/:roomId/slots", handler.GenerateSlots)
		rooms.GET("/:roomId/slots", handler.ListSlots)
	}

	r.GET("/recruits/:recruitId/rooms", handler.ListRooms)
	r.DELETE("/slots/:slotId", handler.DeleteSlot)
}

// CreateRoomRequest is the request payload for adding a room
type CreateRoomRequest struct {
	RecruitID string `json:"recruit_id" binding:"required"`
	RoomName  string `json:"room_name" binding:"required"`
	Location  string `json:"location" binding:"required"`
	Choice    string `json:"applicable_to_choice" binding:"required"`
}

// CreateRoom godoc
// @Summary      Add an interview room
// @Description  Add a room serving one applicant choice within a recruitment cycle (Admin only)
// @Tags         schedule-admin
// @Accept       json
// @Produce      json
// @Param        body  body      CreateRoomRequest  true  "Room data"
// @Success      201   {object}  response.Response{data=domain.InterviewRoom}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /admin/rooms [post]
// @Security     BearerAuth
func (h *ScheduleAdminHandler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	room, err := h.scheduleUC.CreateRoom(c.Request.Context(), &domain.InterviewRoom{
		RecruitID: req.RecruitID,
		Name:      req.RoomName,
		Location:  req.Location,
		Choice:    req.Choice,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Interview room added", room)
}

// UpdateRoomRequest is the request payload for updating a room
type UpdateRoomRequest struct {
	RoomName string `json:"room_name"`
	Location string `json:"location"`
	Choice   string `json:"applicable_to_choice"`
}

// UpdateRoom godoc
// @Summary      Update an interview room
// @Description  Update a room's name, location or served choice (Admin only)
// @Tags         schedule-admin
// @Accept       json
// @Produce      json
// @Param        roomId  path      string             true  "Room ID"
// @Param        body    body      UpdateRoomRequest  true  "Fields to update"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /admin/rooms/{roomId} [put]
// @Security     BearerAuth
func (h *ScheduleAdminHandler) UpdateRoom(c *gin.Context) {
	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	if req.RoomName == "" && req.Location == "" && req.Choice == "" {
		c.Error(apperror.BadRequest("No updatable fields provided"))
		return
	}

	err := h.scheduleUC.UpdateRoom(c.Request.Context(), &domain.InterviewRoom{
		ID:       c.Param("roomId"),
		Name:     req.RoomName,
		Location: req.Location,
		Choice:   req.Choice,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview room updated", nil)
}

// DeleteRoom godoc
// @Summary      Delete an interview room
// @Description  Delete a room and its free slots; refused while any slot is booked (Admin only)
// @Tags         schedule-admin
// @Produce      json
// @Param        roomId  path      string  true  "Room ID"
// @Success      200     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Router       /admin/rooms/{roomId} [delete]
// @Security     BearerAuth
func (h *ScheduleAdminHandler) DeleteRoom(c *gin.Context) {
	if err := h.scheduleUC.DeleteRoom(c.Request.Context(), c.Param("roomId")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview room and its free slots deleted", nil)
}

// ListRooms godoc
// @Summary      List interview rooms
// @Description  List all rooms of a recruitment cycle (Admin only)
// @Tags         schedule-admin
// @Produce      json
// @Param        recruitId  path      string  true  "Recruitment cycle ID"
// @Success      200        {object}  response.Response{data=[]domain.InterviewRoom}
// @Router       /admin/recruits/{recruitId}/rooms [get]
// @Security     BearerAuth
func (h *ScheduleAdminHandler) ListRooms(c *gin.Context) {
	rooms, err := h.scheduleUC.ListRooms(c.Request.Context(), c.Param("recruitId"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Rooms retrieved", rooms)
}

// GenerateSlotsRequest is the request payload for batch slot creation
type GenerateSlotsRequest struct {
	StartTime       string `json:"start_time" binding:"required"`
	EndTime         string `json:"end_time" binding:"required"`
	DurationMinutes int    `json:"duration_minutes" binding:"required"`
}

// GenerateSlots godoc
// @Summary      Generate interview slots
// @Description  Fill a room with consecutive fixed-duration slots over a time window (Admin only)
// @Tags         schedule-admin
// @Accept       json
// @Produce      json
// @Param        roomId  path      string                true  "Room ID"
// @Param        body    body      GenerateSlotsRequest  true  "Generation window"
// @Success      201     {object}  response.Response{data=[]string}
// @Failure      400     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /admin/rooms/{roomId}/slots [post]
// @Security     BearerAuth
func (h *ScheduleAdminHandler) GenerateSlots(c *gin.Context) {
	var req GenerateSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	start, err := time.Parse(timeLayout, req.StartTime)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid start_time, expected format 'YYYY-MM-DD HH:MM:SS'"))
		return
	}
	end, err := time.Parse(timeLayout, req.EndTime)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid end_time, expected format 'YYYY-MM-DD HH:MM:SS'"))
		return
	}

	ids, err := h.scheduleUC.GenerateSlots(c.Request.Context(), c.Param("roomId"), domain.SlotGeneration{
		WindowStart: start,
		WindowEnd:   end,
		Duration:    time.Duration(req.DurationMinutes) * time.Minute,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Interview slots generated", ids)
}

// ListSlots godoc
// @Summary      List interview slots
// @Description  List all slots of a room with their booking state, time-ordered (Admin only)
// @Tags         schedule-admin
// @Produce      json
// @Param        roomId  path      string  true  "Room ID"
// @Success      200     {object}  response.Response{data=[]domain.InterviewSlot}
// @Failure      404     {object}  response.Response
// @Router       /admin/rooms/{roomId}/slots [get]
// @Security     BearerAuth
func (h *ScheduleAdminHandler) ListSlots(c *gin.Context) {
	slots, err := h.scheduleUC.ListSlots(c.Request.Context(), c.Param("roomId"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Slots retrieved", slots)
}

// DeleteSlot godoc
// @Summary      Delete an interview slot
// @Description  Delete a single unbooked slot (Admin only)
// @Tags         schedule-admin
// @Produce      json
// @Param        slotId  path      string  true  "Slot ID"
// @Success      200     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Router       /admin/slots/{slotId} [delete]
// @Security     BearerAuth
func (h *ScheduleAdminHandler) DeleteSlot(c *gin.Context) {
	if err := h.scheduleUC.DeleteSlot(c.Request.Context(), c.Param("slotId")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview slot deleted", nil)
}
