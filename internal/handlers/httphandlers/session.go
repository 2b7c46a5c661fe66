package httphandlers

import (
	"github.com/gin-gonic/gin"
)

func (h *HTTPHandler) GetSession(ctx *gin.Context) {
	ctx.JSON(200, h.session.Snapshot())
}

// Connect unlocks the wallet and re-derives the session right away instead of
// waiting for the next sync tick
func (h *HTTPHandler) Connect(ctx *gin.Context) {
	err := h.wallet.Connect(ctx)
	if err != nil {
		h.log.Warnf("wallet connect failed: %s", err)
		ctx.AbortWithStatusJSON(400, ErrorResponse{Error: err.Error()})
		return
	}

	h.syncer.Sync(ctx)

	ctx.JSON(200, h.session.Snapshot())
}

// Disconnect drops the wallet signer, the next sync moves the session back to loading
func (h *HTTPHandler) Disconnect(ctx *gin.Context) {
	h.wallet.Disconnect()
	h.syncer.Sync(ctx)

	ctx.JSON(200, h.session.Snapshot())
}

// GetSubmissions lists the recent contract writes, most recent first
func (h *HTTPHandler) GetSubmissions(ctx *gin.Context) {
	items := h.session.Submissions()
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	ctx.JSON(200, SubmissionsResponse{Submissions: items})
}
