package controllers

import (
	"strconv"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/errs"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/gin-gonic/gin"
)

// respondError writes err using the body shape of its kind.
// Not-found errors use {"error": msg}, everything else {"errors": [msg]}.
func respondError(ctx *gin.Context, err error) {
	status := errs.HTTPStatus(err)
	message := errs.Message(err)

	// Recorded for the request logger
	_ = ctx.Error(err)

	if errs.KindOf(err) == errs.KindNotFound {
		ctx.JSON(status, models.ErrorResponse{Error: message})
		return
	}
	ctx.JSON(status, models.NewErrorsResponse(message))
}

// pathID reads a positive integer id from the path parameter name
func pathID(ctx *gin.Context, name string) (uint, bool) {
	raw, exists := ctx.Params.Get(name)
	if !exists {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
