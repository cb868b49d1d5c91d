package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/369Dsharma/Notes-backend/internal/container"
	handlers "github.com/369Dsharma/Notes-backend/internal/interface/http"
	"github.com/369Dsharma/Notes-backend/internal/interface/middleware"
	"github.com/369Dsharma/Notes-backend/pkg/helpers"
)

type OTPModule struct {
	Handler *handlers.OTPHandler
	JWT     *helpers.JWTManager
}

func NewOTPModule(h *handlers.OTPHandler, jwt *helpers.JWTManager) *OTPModule {
	return &OTPModule{Handler: h, JWT: jwt}
}

func (m *OTPModule) Register(rg *gin.RouterGroup) {
	// Tight IP-based limit on code issuance, looser one on verification
	sendLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath())
	verifyLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath())

	rg.POST("/send-otp", sendLimiter, m.Handler.SendOtp)
	rg.POST("/verify-otp", verifyLimiter, m.Handler.VerifyOtp)
}
