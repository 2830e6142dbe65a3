package v1

import (
	"net/http"

	"go-hiring-backend/internal/delivery/http/response"
	"go-hiring-backend/internal/domain"
	"go-hiring-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	// Browsing the catalog needs no session.
	publicJobs := public.Group("/jobs")
	{
		publicJobs.GET("", handler.GetAllJobs)
		publicJobs.GET("/:id", handler.GetJobByID)
	}

	protectedJobs := protected.Group("/jobs")
	{
		protectedJobs.POST("", handler.CreateJob)
		protectedJobs.PUT("/:id", handler.UpdateJob)
		protectedJobs.DELETE("/:id", handler.DeleteJob)
	}
}

// CreateJob godoc
// @Summary      Create job posting
// @Description  Create a posting owned by the company behind the given email. The company name is snapshotted at creation.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      domain.JobPosting  true  "Job posting"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req domain.JobPosting
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(err.Error()))
		return
	}

	created, err := h.jobUC.CreateJob(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", created)
}

// UpdateJob godoc
// @Summary      Update job posting
// @Description  Replace the mutable fields of a posting. Identity, ownership and the company-name snapshot stay fixed.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path      string             true  "Job id"
// @Param        job  body      domain.JobPosting  true  "Updated fields"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [put]
func (h *JobHandler) UpdateJob(c *gin.Context) {
	var req domain.JobPosting
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(err.Error()))
		return
	}

	updated, err := h.jobUC.UpdateJob(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated", updated)
}

// DeleteJob godoc
// @Summary      Delete job posting
// @Description  Remove a posting. Deleting an id twice reports deleted=false the second time.
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /jobs/{id} [delete]
func (h *JobHandler) DeleteJob(c *gin.Context) {
	deleted, err := h.jobUC.DeleteJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job delete processed", gin.H{"deleted": deleted})
}

// GetAllJobs godoc
// @Summary      List job postings
// @Description  All postings, newest first.
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) GetAllJobs(c *gin.Context) {
	jobs, err := h.jobUC.GetAllJobs(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs", jobs)
}

// GetJobByID godoc
// @Summary      Get job posting
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetJobByID(c *gin.Context) {
	job, err := h.jobUC.GetJobByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job", job)
}
