package v1

import (
	"net/http"

	"go-hiring-backend/internal/delivery/http/response"
	"go-hiring-backend/internal/domain"
	"go-hiring-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	applications := protected.Group("/applications")
	{
		applications.POST("", handler.ApplyForJob)
		applications.GET("/job/:jobId", handler.GetApplicantsByJob)
		applications.GET("/me", handler.GetAppliedJobsByUser)
		applications.PATCH("/:id/status", handler.UpdateApplicantStatus)
	}
}

type ApplyRequest struct {
	JobID          string `json:"job_id" binding:"required"`
	ResumeRef      string `json:"resume_ref"`
	CoverLetterRef string `json:"cover_letter_ref"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ApplyForJob godoc
// @Summary      Apply for a job
// @Description  Create an application carrying a snapshot of the caller's candidate profile. One application per job per account.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        application  body      ApplyRequest  true  "Application details"
// @Success      201          {object}  response.Response
// @Failure      400          {object}  response.Response
// @Failure      404          {object}  response.Response
// @Failure      409          {object}  response.Response
// @Router       /applications [post]
func (h *ApplicationHandler) ApplyForJob(c *gin.Context) {
	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(err.Error()))
		return
	}

	userEmail := c.GetString(string(domain.KeyUserEmail))
	app, err := h.applicationUC.ApplyForJob(c.Request.Context(), userEmail, req.JobID, req.ResumeRef, req.CoverLetterRef)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", app)
}

// GetApplicantsByJob godoc
// @Summary      List applicants for a job
// @Description  Applicants projected from the profile snapshot taken at apply time.
// @Tags         applications
// @Produce      json
// @Param        jobId  path      string  true  "Job id"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Router       /applications/job/{jobId} [get]
func (h *ApplicationHandler) GetApplicantsByJob(c *gin.Context) {
	applicants, err := h.applicationUC.GetApplicantsByJob(c.Request.Context(), c.Param("jobId"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applicants", applicants)
}

// GetAppliedJobsByUser godoc
// @Summary      List the caller's applied jobs
// @Description  Job postings the caller applied to, each with its application status.
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /applications/me [get]
func (h *ApplicationHandler) GetAppliedJobsByUser(c *gin.Context) {
	userEmail := c.GetString(string(domain.KeyUserEmail))

	jobs, err := h.applicationUC.GetAppliedJobsByUser(c.Request.Context(), userEmail)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applied jobs", jobs)
}

// UpdateApplicantStatus godoc
// @Summary      Decide an application
// @Description  Move a pending application to Accepted or Rejected. Decided applications cannot change again.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id      path      string               true  "Application id"
// @Param        status  body      UpdateStatusRequest  true  "New status"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Router       /applications/{id}/status [patch]
func (h *ApplicationHandler) UpdateApplicantStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(err.Error()))
		return
	}

	app, err := h.applicationUC.UpdateApplicantStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status updated", app)
}
