package v1

import (
	"net/http"

	"github.com/centavo/backend/internal/httputil"
	"github.com/centavo/backend/internal/models"
	"github.com/centavo/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterStatsRoutes registers the routes for stats with the
// RouterGroup that is passed.
func RegisterStatsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsStats)
	r.GET("", GetStats)
}

type StatsResponse struct {
	Data  *models.MonthDelta `json:"data"`
	Error *string            `json:"error" example:"the month query parameter must be set"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Stats
// @Success		204
// @Router			/v1/stats [options]
func OptionsStats(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get spending delta
// @Description	Returns the expense totals of the requested and the preceding month and how they compare
// @Tags			Stats
// @Produce		json
// @Success		200		{object}	StatsResponse
// @Failure		400		{object}	StatsResponse
// @Failure		500		{object}	StatsResponse
// @Param			month	query		string	true	"The month in YYYY-MM format"
// @Router			/v1/stats [get]
func GetStats(c *gin.Context) {
	var query QueryMonth
	if err := c.ShouldBindQuery(&query); err != nil || query.Month == "" {
		e := errMonthNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, StatsResponse{Error: &e})
		return
	}

	month, err := types.ParseMonth(query.Month)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, StatsResponse{Error: &e})
		return
	}

	delta, err := models.ComputeDelta(models.DB, currentUser(c).ID, month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), StatsResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{Data: &delta})
}
