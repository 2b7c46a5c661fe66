package httphandlers

import (
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"gitlab.com/TitanInd/crowdfunding/internal/lib"
	"gitlab.com/TitanInd/crowdfunding/internal/session"
	"golang.org/x/exp/slices"
)

func (h *HTTPHandler) GetCampaigns(ctx *gin.Context) {
	campaigns, err := h.session.ListCampaigns(ctx)
	if err != nil {
		h.abort(ctx, err)
		return
	}
	ctx.JSON(200, CampaignsResponse{Campaigns: campaigns})
}

func (h *HTTPHandler) GetOwnerCampaigns(ctx *gin.Context) {
	address := ctx.Param("address")
	if !common.IsHexAddress(address) {
		h.abort(ctx, lib.WrapError(session.ErrInvalidInput, fmt.Errorf("invalid owner address %s", address)))
		return
	}

	campaigns, err := h.session.ListCampaignsForOwner(ctx, common.HexToAddress(address).Hex())
	if err != nil {
		h.abort(ctx, err)
		return
	}
	ctx.JSON(200, CampaignsResponse{Campaigns: campaigns})
}

// GetMyCampaigns lists the campaigns of the connected wallet
func (h *HTTPHandler) GetMyCampaigns(ctx *gin.Context) {
	address := h.session.Address()
	if address == "" {
		h.abort(ctx, session.ErrWalletNotConnected)
		return
	}

	campaigns, err := h.session.ListCampaignsForOwner(ctx, address)
	if err != nil {
		h.abort(ctx, err)
		return
	}
	ctx.JSON(200, CampaignsResponse{Campaigns: campaigns})
}

func (h *HTTPHandler) GetCampaign(ctx *gin.Context) {
	index, err := parseIndex(ctx)
	if err != nil {
		h.abort(ctx, err)
		return
	}

	campaigns, err := h.session.ListCampaigns(ctx)
	if err != nil {
		h.abort(ctx, err)
		return
	}

	i := slices.IndexFunc(campaigns, func(c session.Campaign) bool {
		return c.Index == index
	})
	if i < 0 {
		h.abort(ctx, lib.WrapError(ErrCampaignNotFound, fmt.Errorf("index %d", index)))
		return
	}
	ctx.JSON(200, campaigns[i])
}

func (h *HTTPHandler) GetDonations(ctx *gin.Context) {
	index, err := parseIndex(ctx)
	if err != nil {
		h.abort(ctx, err)
		return
	}

	donations, err := h.session.ListDonations(ctx, index)
	if err != nil {
		h.abort(ctx, err)
		return
	}
	ctx.JSON(200, DonationsResponse{Donations: donations})
}

func (h *HTTPHandler) CreateCampaign(ctx *gin.Context) {
	var req CreateCampaignRequest
	err := ctx.ShouldBindJSON(&req)
	if err != nil {
		h.abort(ctx, lib.WrapError(session.ErrInvalidInput, err))
		return
	}

	form, err := req.ToForm()
	if err != nil {
		h.abort(ctx, lib.WrapError(session.ErrInvalidInput, err))
		return
	}

	res, err := h.session.SubmitCampaign(ctx, form)
	if err != nil {
		h.abort(ctx, err)
		return
	}
	ctx.JSON(201, res)
}

func (h *HTTPHandler) Donate(ctx *gin.Context) {
	index, err := parseIndex(ctx)
	if err != nil {
		h.abort(ctx, err)
		return
	}

	var req DonateRequest
	err = ctx.ShouldBindJSON(&req)
	if err != nil {
		h.abort(ctx, lib.WrapError(session.ErrInvalidInput, err))
		return
	}

	res, err := h.session.Donate(ctx, index, req.Amount)
	if err != nil {
		h.abort(ctx, err)
		return
	}
	ctx.JSON(200, res)
}

func parseIndex(ctx *gin.Context) (int, error) {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil || index < 0 {
		return 0, lib.WrapError(session.ErrInvalidInput, fmt.Errorf("invalid campaign index %s", ctx.Param("index")))
	}
	return index, nil
}
