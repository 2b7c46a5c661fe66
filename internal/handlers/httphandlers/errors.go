package httphandlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gitlab.com/TitanInd/crowdfunding/internal/session"
)

var ErrCampaignNotFound = errors.New("campaign not found")

func errorStatus(err error) int {
	switch {
	case errors.Is(err, session.ErrWalletNotConnected):
		return http.StatusUnauthorized
	case errors.Is(err, session.ErrNotReady),
		errors.Is(err, session.ErrInconsistentState):
		return http.StatusConflict
	case errors.Is(err, session.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrCampaignNotFound):
		return http.StatusNotFound
	case errors.Is(err, session.ErrChain):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func (h *HTTPHandler) abort(ctx *gin.Context, err error) {
	status := errorStatus(err)
	if status >= http.StatusInternalServerError {
		h.log.Errorf("%s %s failed: %s", ctx.Request.Method, ctx.Request.URL.Path, err)
	} else {
		h.log.Debugf("%s %s rejected: %s", ctx.Request.Method, ctx.Request.URL.Path, err)
	}
	ctx.AbortWithStatusJSON(status, ErrorResponse{Error: err.Error()})
}
