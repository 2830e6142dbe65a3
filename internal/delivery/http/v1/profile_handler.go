package v1

import (
	"net/http"

	"go-hiring-backend/internal/delivery/http/response"
	"go-hiring-backend/internal/domain"
	"go-hiring-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(protected *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	company := protected.Group("/company-profile")
	{
		company.PUT("", handler.SaveCompanyProfile)
		company.GET("/:email", handler.GetCompanyProfile)
	}

	candidate := protected.Group("/candidate-profile")
	{
		candidate.PUT("", handler.SaveCandidateProfile)
		candidate.GET("/:email", handler.GetCandidateProfile)
	}
}

// SaveCompanyProfile godoc
// @Summary      Save company profile
// @Description  Full-replace upsert of the company profile keyed by email.
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        profile  body      domain.CompanyProfile  true  "Company profile"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /company-profile [put]
func (h *ProfileHandler) SaveCompanyProfile(c *gin.Context) {
	var req domain.CompanyProfile
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(err.Error()))
		return
	}

	saved, err := h.profileUC.SaveCompanyProfile(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company profile saved", saved)
}

// GetCompanyProfile godoc
// @Summary      Get company profile
// @Tags         profiles
// @Produce      json
// @Param        email  path      string  true  "Company email"
// @Success      200    {object}  response.Response
// @Router       /company-profile/{email} [get]
func (h *ProfileHandler) GetCompanyProfile(c *gin.Context) {
	email := c.Param("email")

	profile, err := h.profileUC.GetCompanyProfile(c.Request.Context(), email)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company profile", profile)
}

// SaveCandidateProfile godoc
// @Summary      Save candidate profile
// @Description  Full-replace upsert of the candidate profile keyed by email.
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        profile  body      domain.CandidateProfile  true  "Candidate profile"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /candidate-profile [put]
func (h *ProfileHandler) SaveCandidateProfile(c *gin.Context) {
	var req domain.CandidateProfile
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(err.Error()))
		return
	}

	saved, err := h.profileUC.SaveCandidateProfile(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate profile saved", saved)
}

// GetCandidateProfile godoc
// @Summary      Get candidate profile
// @Tags         profiles
// @Produce      json
// @Param        email  path      string  true  "Candidate email"
// @Success      200    {object}  response.Response
// @Router       /candidate-profile/{email} [get]
func (h *ProfileHandler) GetCandidateProfile(c *gin.Context) {
	email := c.Param("email")

	profile, err := h.profileUC.GetCandidateProfile(c.Request.Context(), email)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate profile", profile)
}
