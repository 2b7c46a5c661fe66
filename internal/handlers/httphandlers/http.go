package httphandlers

import (
	"context"
	"net/http/pprof"

	"github.com/gin-gonic/gin"
	"gitlab.com/TitanInd/crowdfunding/internal/config"
	"gitlab.com/TitanInd/crowdfunding/internal/interfaces"
	"gitlab.com/TitanInd/crowdfunding/internal/session"
)

type Session interface {
	Address() string
	Snapshot() session.Snapshot
	SubmitCampaign(ctx context.Context, form session.CampaignForm) (*session.SubmitResult, error)
	Donate(ctx context.Context, index int, amount string) (*session.SubmitResult, error)
	ListCampaigns(ctx context.Context) ([]session.Campaign, error)
	ListCampaignsForOwner(ctx context.Context, address string) ([]session.Campaign, error)
	ListDonations(ctx context.Context, index int) ([]session.Donation, error)
	Submissions() []session.Submission
}

type Wallet interface {
	Connect(ctx context.Context) error
	Disconnect()
}

type Syncer interface {
	Sync(ctx context.Context)
}

type Sanitizer interface {
	GetSanitized() interface{}
}

type HTTPHandler struct {
	session Session
	wallet  Wallet
	syncer  Syncer
	config  Sanitizer
	log     interfaces.ILogger
}

func NewHTTPHandler(sess Session, wallet Wallet, syncer Syncer, cfg Sanitizer, log interfaces.ILogger) *gin.Engine {
	handl := &HTTPHandler{
		session: sess,
		wallet:  wallet,
		syncer:  syncer,
		config:  cfg,
		log:     log,
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthcheck", handl.HealthCheck)
	r.GET("/config", handl.GetConfig)

	r.GET("/session", handl.GetSession)
	r.POST("/session/connect", handl.Connect)
	r.POST("/session/disconnect", handl.Disconnect)
	r.GET("/submissions", handl.GetSubmissions)

	r.GET("/campaigns", handl.GetCampaigns)
	r.GET("/campaigns/mine", handl.GetMyCampaigns)
	r.GET("/campaigns/owner/:address", handl.GetOwnerCampaigns)
	r.GET("/campaigns/:index", handl.GetCampaign)
	r.GET("/campaigns/:index/donations", handl.GetDonations)

	r.POST("/campaigns", handl.CreateCampaign)
	r.POST("/campaigns/:index/donate", handl.Donate)

	r.Any("/debug/pprof/*action", gin.WrapF(pprof.Index))

	err := r.SetTrustedProxies(nil)
	if err != nil {
		panic(err)
	}

	return r
}

func (h *HTTPHandler) HealthCheck(ctx *gin.Context) {
	ctx.JSON(200, gin.H{
		"status":  "healthy",
		"version": config.BuildVersion,
	})
}
