package v1

import (
	"net/http"

	"go-hiring-backend/internal/delivery/http/response"
	"go-hiring-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsUC domain.StatsUsecase
}

func NewStatsHandler(protected *gin.RouterGroup, statsUC domain.StatsUsecase) {
	handler := &StatsHandler{statsUC: statsUC}

	protected.GET("/stats/dashboard", handler.GetDashboardStats)
}

// GetDashboardStats godoc
// @Summary      Dashboard statistics
// @Description  Totals across jobs, accounts and pending applications.
// @Tags         stats
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /stats/dashboard [get]
func (h *StatsHandler) GetDashboardStats(c *gin.Context) {
	stats, err := h.statsUC.GetDashboardStats(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Dashboard statistics", stats)
}
