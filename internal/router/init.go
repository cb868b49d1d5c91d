package router

import (
	"github.com/369Dsharma/Notes-backend/internal/application"
	"github.com/369Dsharma/Notes-backend/internal/container"
	"github.com/369Dsharma/Notes-backend/internal/infrastructure/googleauth"
	pginfra "github.com/369Dsharma/Notes-backend/internal/infrastructure/postgres"
	"github.com/369Dsharma/Notes-backend/internal/infrastructure/redisotp"
	handlers "github.com/369Dsharma/Notes-backend/internal/interface/http"
	"github.com/369Dsharma/Notes-backend/internal/router/modules"
	"github.com/369Dsharma/Notes-backend/pkg/helpers"
)

func buildAuthHandler() *handlers.AuthHandler {
	cfg := container.GetConfig()

	users := pginfra.NewUserRepository(container.GetPGPool())
	audit := pginfra.NewAuditRepository(container.GetPGPool())

	svc := application.NewAuthService(
		users,
		audit,
		container.GetJWT(),
		helpers.BcryptHasher{},
		googleauth.NewVerifier(cfg.GoogleClientID),
		container.GetGCS(),
		cfg.GCSBucket,
		container.GetLogger(),
	)

	return handlers.NewAuthHandler(svc, container.GetLogger())
}

func buildOTPHandler() *handlers.OTPHandler {
	cfg := container.GetConfig()

	users := pginfra.NewUserRepository(container.GetPGPool())
	audit := pginfra.NewAuditRepository(container.GetPGPool())
	store := redisotp.NewStore(container.GetRedis())

	svc := application.NewOTPService(
		users,
		audit,
		store,
		container.GetOtpMailer(),
		container.GetJWT(),
		helpers.BcryptHasher{},
		container.GetLogger(),
		cfg.OTPCodeTTL,
	)

	return handlers.NewOTPHandler(svc, container.GetLogger())
}

func buildNoteHandler() *handlers.NoteHandler {
	cfg := container.GetConfig()

	notes := pginfra.NewNoteRepository(container.GetPGPool())

	svc := application.NewNoteService(
		notes,
		container.GetLogger(),
		container.GetES(),
		cfg.ESNotesIndex,
	)

	return handlers.NewNoteHandler(svc, container.GetLogger())
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	jwt := container.GetJWT()

	r.Add(modules.NewAuthModule(buildAuthHandler(), jwt))
	r.Add(modules.NewOTPModule(buildOTPHandler(), jwt))
	r.Add(modules.NewNoteModule(buildNoteHandler(), jwt))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
