package v1

import (
	"net/http"

	"lab-recruitment-backend/internal/delivery/http/response"
	"lab-recruitment-backend/internal/domain"
	"lab-recruitment-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationAdminHandler struct {
	applicationAdminUC domain.ApplicationAdminUsecase
}

// NewApplicationAdminHandler registers the resume review routes.
// The status-names catalog is registered on the non-admin group so
// applicants can render their own status.
func NewApplicationAdminHandler(r, admin *gin.RouterGroup, applicationAdminUC domain.ApplicationAdminUsecase) {
	handler := &ApplicationAdminHandler{applicationAdminUC: applicationAdminUC}

	r.GET("/applications/status-names", handler.StatusNames)

	admin.GET("/recruits/:recruitId/applications", handler.ListApplications)
	admin.POST("/applications/batch-status", handler.BatchUpdateStatus)
}

// StatusName pairs a status id with its display name
type StatusName struct {
	StatusID   int16  `json:"status_id"`
	StatusName string `json:"status_name"`
}

// StatusNames godoc
// @Summary      List submission status names
// @Description  List the catalog of submission status ids and display names
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]StatusName}
// @Router       /applications/status-names [get]
// @Security     BearerAuth
func (h *ApplicationAdminHandler) StatusNames(c *gin.Context) {
	names := make([]StatusName, 0, len(domain.StatusNames))
	for id := domain.StatusUnprocessed; id <= domain.StatusNoShow; id++ {
		names = append(names, StatusName{StatusID: int16(id), StatusName: id.Name()})
	}

	response.Success(c, http.StatusOK, "Status names retrieved", names)
}

// ListApplications godoc
// @Summary      List resume submissions
// @Description  List all submissions of a recruitment cycle for review (Admin only)
// @Tags         applications
// @Produce      json
// @Param        recruitId  path      string  true  "Recruitment cycle ID"
// @Success      200        {object}  response.Response{data=[]domain.Application}
// @Router       /admin/recruits/{recruitId}/applications [get]
// @Security     BearerAuth
func (h *ApplicationAdminHandler) ListApplications(c *gin.Context) {
	apps, err := h.applicationAdminUC.ListByRecruit(c.Request.Context(), c.Param("recruitId"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Submissions retrieved", apps)
}

// BatchStatusRequest is the request payload for batch status updates
type BatchStatusRequest struct {
	SubmitIDs []string `json:"submit_ids" binding:"required,min=1"`
	NewStatus int16    `json:"new_status"`
}

// BatchUpdateStatus godoc
// @Summary      Batch update submission statuses
// @Description  Set the status of several submissions and notify each applicant (Admin only)
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body      BatchStatusRequest  true  "Submission ids and new status"
// @Success      200   {object}  response.Response{data=int}
// @Failure      400   {object}  response.Response
// @Router       /admin/applications/batch-status [post]
// @Security     BearerAuth
func (h *ApplicationAdminHandler) BatchUpdateStatus(c *gin.Context) {
	var req BatchStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	updated, err := h.applicationAdminUC.BatchUpdateStatus(c.Request.Context(),
		req.SubmitIDs, domain.ApplicationStatus(req.NewStatus))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Submission statuses updated", updated)
}
