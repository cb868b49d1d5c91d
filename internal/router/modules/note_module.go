package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/369Dsharma/Notes-backend/internal/container"
	handlers "github.com/369Dsharma/Notes-backend/internal/interface/http"
	"github.com/369Dsharma/Notes-backend/internal/interface/middleware"
	"github.com/369Dsharma/Notes-backend/pkg/helpers"
)

type NoteModule struct {
	Handler *handlers.NoteHandler
	JWT     *helpers.JWTManager
}

func NewNoteModule(h *handlers.NoteHandler, jwt *helpers.JWTManager) *NoteModule {
	return &NoteModule{Handler: h, JWT: jwt}
}

func (m *NoteModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.JWTAuth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 240, time.Minute, middleware.KeyByUserID()))
	{
		auth.POST("/add-note", m.Handler.Add)
		auth.PUT("/edit-note/:noteId", m.Handler.Edit)
		auth.GET("/get-all-notes", m.Handler.List)
		auth.DELETE("/delete-note/:noteId", m.Handler.Delete)
		auth.PUT("/update-note-pinned/:noteId", m.Handler.Pin)
		auth.GET("/search-notes", m.Handler.Search)
	}
}
