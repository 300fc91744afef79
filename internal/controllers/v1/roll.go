package v1

import (
	"net/http"

	"github.com/centavo/backend/internal/httputil"
	"github.com/centavo/backend/internal/models"
	"github.com/centavo/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterRollRoutes registers the route for rolling recurring
// transactions forward with the RouterGroup that is passed.
func RegisterRollRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/roll", OptionsRoll)
	r.POST("/roll", RollTransactions)
}

type RollData struct {
	Count int `json:"count" example:"3"` // The number of transactions that were created
}

type RollResponse struct {
	Data  *RollData `json:"data"`
	Error *string   `json:"error" example:"the month query parameter must be set"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions/roll [options]
func OptionsRoll(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Roll recurring transactions
// @Description	Clones the recurring transactions of the month before the target month into the target month
// @Tags			Transactions
// @Produce		json
// @Success		201		{object}	RollResponse
// @Failure		400		{object}	RollResponse
// @Failure		500		{object}	RollResponse
// @Param			month	query		string	true	"The target month in YYYY-MM format"
// @Router			/v1/transactions/roll [post]
func RollTransactions(c *gin.Context) {
	var query QueryMonth
	if err := c.ShouldBindQuery(&query); err != nil || query.Month == "" {
		e := errMonthNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, RollResponse{Error: &e})
		return
	}

	month, err := types.ParseMonth(query.Month)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, RollResponse{Error: &e})
		return
	}

	count, err := models.RollForward(models.DB, currentUser(c).ID, month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), RollResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, RollResponse{Data: &RollData{Count: count}})
}
