package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/369Dsharma/Notes-backend/internal/container"
	handlers "github.com/369Dsharma/Notes-backend/internal/interface/http"
	"github.com/369Dsharma/Notes-backend/internal/interface/middleware"
	"github.com/369Dsharma/Notes-backend/pkg/helpers"
)

type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Public endpoints with IP-based rate limits
	signupLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())
	loginLimiter := middleware.RateLimit(container.GetRedis(), 20, time.Minute, middleware.KeyByIPAndPath())

	rg.POST("/create-account", signupLimiter, m.Handler.CreateAccount)
	rg.POST("/login", loginLimiter, m.Handler.Login)
	rg.POST("/auth/google", loginLimiter, m.Handler.LoginGoogle)

	// Protected profile endpoints with user-based rate limit
	auth := rg.Group("/")
	auth.Use(middleware.JWTAuth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()))
	{
		auth.GET("/get-user", m.Handler.GetUser)
		auth.POST("/profile/avatar", m.Handler.UploadAvatar)
	}
}
