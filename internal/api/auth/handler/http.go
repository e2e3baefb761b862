package authHandler

import (
	authService "AssistantGolang/internal/api/auth/service"
	"AssistantGolang/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	authService authService.IAuthService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	as authService.IAuthService,
) *AuthHandler {
	return &AuthHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		authService: as,
	}
}

func (h *AuthHandler) Start(srv fiber.Router) {
	auth := srv.Group("/auth")

	auth.Post("/signup", h.RegisterUser)
	auth.Post("/login", h.Login)

	auth.Post("/logout", h.middleware.NewTokenMiddleware, h.Logout)
	auth.Get("/check", h.middleware.NewTokenMiddleware, h.CheckSession)
}
