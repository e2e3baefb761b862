package assistantService

import (
	"AssistantGolang/internal/api/assistant"
	assistantRepository "AssistantGolang/internal/api/assistant/repository"
	"AssistantGolang/internal/entity"
	"AssistantGolang/pkg/enrich"
	"AssistantGolang/pkg/intent"
	"AssistantGolang/pkg/s3"
	"AssistantGolang/pkg/utils"
	"context"
	"mime/multipart"
	"os"

	"github.com/sirupsen/logrus"
)

type IAssistantService interface {
	// Ask dispatches one raw command through classification, enrichment and
	// action resolution. When it returns a typed error alongside a non-nil
	// response, the response body is still well-formed and should be sent
	// with the error's status code.
	Ask(ctx context.Context, userID, command string) (*assistant.FinalResponse, error)

	GetCurrentUser(ctx context.Context, userID string) (entity.User, error)
	UpdateAssistant(ctx context.Context, userID string, req assistant.UpdateAssistantRequest, image *multipart.FileHeader) (entity.User, error)

	GetHistory(ctx context.Context, userID string, page, limit int) ([]entity.HistoryEntry, int, error)
	ClearHistory(ctx context.Context, userID string) error
	GetUsageStats(ctx context.Context, userID string) (entity.UsageStats, error)

	AddShortcut(ctx context.Context, userID string, req assistant.AddShortcutRequest) error
	GetShortcuts(ctx context.Context, userID string) ([]entity.Shortcut, error)
}

// Config holds dispatch policy knobs.
//
// LogDegradedHistory decides whether commands answered with a generic
// fallback phrase (classifier returned nothing) are still written to history.
// The behaviour is deliberately configurable; neither choice is authoritative.
type Config struct {
	HistoryLimit       int
	LogDegradedHistory bool
}

func ConfigFromEnv() Config {
	return Config{
		HistoryLimit:       50,
		LogDegradedHistory: os.Getenv("ASSISTANT_LOG_DEGRADED_HISTORY") == "true",
	}
}

type assistantService struct {
	log           *logrus.Logger
	assistantRepo assistantRepository.Repository
	classifier    intent.IClassifier
	enrichers     *enrich.Registry
	s3Client      s3.ItfS3
	utils         utils.IUtils
	config        Config
}

func New(
	log *logrus.Logger,
	assistantRepo assistantRepository.Repository,
	classifier intent.IClassifier,
	enrichers *enrich.Registry,
	s3Client s3.ItfS3,
	utilsPkg utils.IUtils,
	config Config,
) IAssistantService {
	return &assistantService{
		log:           log,
		assistantRepo: assistantRepo,
		classifier:    classifier,
		enrichers:     enrichers,
		s3Client:      s3Client,
		utils:         utilsPkg,
		config:        config,
	}
}
