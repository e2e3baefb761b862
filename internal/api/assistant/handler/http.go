package assistantHandler

import (
	assistantService "AssistantGolang/internal/api/assistant/service"
	"AssistantGolang/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AssistantHandler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	assistantService assistantService.IAssistantService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	as assistantService.IAssistantService,
) *AssistantHandler {
	return &AssistantHandler{
		log:              log,
		validator:        validate,
		middleware:       middleware,
		assistantService: as,
	}
}

func (h *AssistantHandler) Start(srv fiber.Router) {
	user := srv.Group("/user")

	// All assistant endpoints require authentication
	user.Use(h.middleware.NewTokenMiddleware)

	// Command dispatch
	user.Post("/ask", h.Ask)

	// Profile and assistant customization
	user.Get("/current", h.GetCurrentUser)
	user.Put("/assistant", h.UpdateAssistant)

	// History and stats
	user.Get("/history", h.GetHistory)
	user.Delete("/history", h.ClearHistory)
	user.Get("/stats", h.GetUsageStats)

	// Custom shortcuts
	user.Get("/shortcuts", h.GetShortcuts)
	user.Post("/shortcuts", h.AddShortcut)
}
