package v1

import (
	"net/http"

	"go-hiring-backend/internal/delivery/http/response"
	"go-hiring-backend/internal/domain"
	"go-hiring-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SavedJobHandler struct {
	savedJobUC domain.SavedJobUsecase
}

func NewSavedJobHandler(protected *gin.RouterGroup, savedJobUC domain.SavedJobUsecase) {
	handler := &SavedJobHandler{savedJobUC: savedJobUC}

	saved := protected.Group("/saved-jobs")
	{
		saved.POST("", handler.SaveJob)
		saved.DELETE("/:jobId", handler.DeleteSavedJob)
		saved.GET("", handler.GetSavedJobsByUser)
	}
}

type SaveJobRequest struct {
	JobID string `json:"job_id" binding:"required"`
}

// SaveJob godoc
// @Summary      Bookmark a job
// @Description  Save a job for later. Saving the same job twice returns success=false, not an error.
// @Tags         saved-jobs
// @Accept       json
// @Produce      json
// @Param        request  body      SaveJobRequest  true  "Job to save"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /saved-jobs [post]
func (h *SavedJobHandler) SaveJob(c *gin.Context) {
	var req SaveJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(err.Error()))
		return
	}

	userEmail := c.GetString(string(domain.KeyUserEmail))
	result, err := h.savedJobUC.SaveJob(c.Request.Context(), userEmail, req.JobID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Save processed", result)
}

// DeleteSavedJob godoc
// @Summary      Remove a bookmark
// @Tags         saved-jobs
// @Produce      json
// @Param        jobId  path      string  true  "Job id"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Router       /saved-jobs/{jobId} [delete]
func (h *SavedJobHandler) DeleteSavedJob(c *gin.Context) {
	userEmail := c.GetString(string(domain.KeyUserEmail))

	deleted, err := h.savedJobUC.DeleteSavedJob(c.Request.Context(), userEmail, c.Param("jobId"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Bookmark delete processed", gin.H{"deleted": deleted})
}

// GetSavedJobsByUser godoc
// @Summary      List the caller's saved jobs
// @Description  The job postings behind the caller's bookmarks. Bookmarks pointing at deleted jobs are skipped.
// @Tags         saved-jobs
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /saved-jobs [get]
func (h *SavedJobHandler) GetSavedJobsByUser(c *gin.Context) {
	userEmail := c.GetString(string(domain.KeyUserEmail))

	jobs, err := h.savedJobUC.GetSavedJobsByUser(c.Request.Context(), userEmail)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Saved jobs", jobs)
}
