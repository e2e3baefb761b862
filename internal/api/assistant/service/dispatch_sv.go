package assistantService

import (
	"AssistantGolang/internal/api/assistant"
	"AssistantGolang/internal/entity"
	"AssistantGolang/pkg/action"
	contextPkg "AssistantGolang/pkg/context"
	"AssistantGolang/pkg/enrich"
	"AssistantGolang/pkg/gemini"
	"AssistantGolang/pkg/intent"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Ask runs the full dispatch pipeline for one command. Every exit produces a
// well-formed FinalResponse; failure branches additionally return the typed
// error carrying the HTTP status the handler should use.
func (s *assistantService) Ask(ctx context.Context, userID, command string) (resp *assistant.FinalResponse, err error) {
	requestID := contextPkg.GetRequestID(ctx)

	defer func() {
		if r := recover(); r != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"panic":      r,
			}).Error("Dispatch pipeline panicked")
			resp = s.errorBody(command, intent.TypeError, "An unexpected error occurred. Please try again.")
			err = assistant.ErrUnexpected
		}
	}()

	command = strings.TrimSpace(command)
	if command == "" {
		return s.errorBody(command, intent.TypeError, "Please provide a command."), assistant.ErrEmptyCommand
	}

	client, err := s.assistantRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return s.errorBody(command, intent.TypeError, "An unexpected error occurred. Please try again."), assistant.ErrUnexpected
	}

	user, err := client.Users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, assistant.ErrUserNotFound) {
			return s.errorBody(command, intent.TypeAuthError, "User not found. Please log in again."), assistant.ErrUserNotFound
		}
		return s.errorBody(command, intent.TypeError, "An unexpected error occurred. Please try again."), assistant.ErrUnexpected
	}

	// Best effort, a stale last_active never blocks the command.
	if err := client.Users.UpdateLastActive(ctx, userID); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
		}).Warn("Failed to update last active timestamp")
	}

	record, err := s.classifier.Classify(ctx, command, user.AssistantName, user.Name)
	if err != nil {
		if errors.Is(err, gemini.ErrQuotaExceeded) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"user_id":    userID,
			}).Warn("Classifier quota exhausted")
			return s.errorBody(command, intent.TypeQuotaError, "I'm experiencing high demand right now. Please try again in a moment."), assistant.ErrQuotaExceeded
		}
		return s.errorBody(command, intent.TypeError, "An unexpected error occurred. Please try again."), assistant.ErrUnexpected
	}

	if record == nil {
		return s.degradedResponse(ctx, user, command)
	}

	s.enrichers.Apply(ctx, record, command, enrich.UserContext{
		UserName:      user.Name,
		AssistantName: user.AssistantName,
	})

	resolution := action.Resolve(record.Type, record.SearchQuery, record.Parameters)
	if resolution.ResponseOverride != "" {
		record.Response = resolution.ResponseOverride
	}

	if err := s.appendHistory(ctx, entity.HistoryEntry{
		UserID:      userID,
		Command:     command,
		Response:    record.Response,
		Type:        record.Type,
		ActionTaken: resolution.RequiresAction(),
		SearchQuery: record.SearchQuery,
	}); err != nil {
		return s.errorBody(command, intent.TypeError, "An unexpected error occurred. Please try again."), assistant.ErrUnexpected
	}

	return &assistant.FinalResponse{
		Type:           record.Type,
		UserInput:      record.UserInput,
		Response:       record.Response,
		SearchQuery:    record.SearchQuery,
		Action:         record.Action,
		Parameters:     record.Parameters,
		ActionURL:      resolution.URL,
		RequiresAction: resolution.RequiresAction(),
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
		AssistantName:  user.AssistantName,
	}, nil
}

// degradedResponse covers the branch where the classifier yielded nothing at
// all: answer with a generic phrase and, only when configured, still record
// the exchange.
func (s *assistantService) degradedResponse(ctx context.Context, user entity.User, command string) (*assistant.FinalResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)
	phrase := s.enrichers.FallbackPhrase()

	if s.config.LogDegradedHistory {
		if err := s.appendHistory(ctx, entity.HistoryEntry{
			UserID:   user.ID,
			Command:  command,
			Response: phrase,
			Type:     intent.TypeGeneral,
		}); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"user_id":    user.ID,
			}).Warn("Failed to record degraded exchange")
		}
	}

	return &assistant.FinalResponse{
		Type:           intent.TypeGeneral,
		UserInput:      command,
		Response:       phrase,
		Parameters:     map[string]interface{}{},
		RequiresAction: false,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
		AssistantName:  user.AssistantName,
	}, nil
}

// appendHistory writes one history entry and trims to the retention limit
// inside a single transaction.
func (s *assistantService) appendHistory(ctx context.Context, entry entity.HistoryEntry) error {
	requestID := contextPkg.GetRequestID(ctx)

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate history entry id")
		return err
	}
	entry.ID = id
	entry.CreatedAt = time.Now().UTC()

	txClient, err := s.assistantRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to begin history transaction")
		return err
	}

	if err := txClient.History.AppendHistory(ctx, entry, s.config.HistoryLimit); err != nil {
		txClient.Rollback()
		return err
	}

	if err := txClient.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit history transaction")
		return err
	}

	return nil
}

func (s *assistantService) errorBody(command, intentType, message string) *assistant.FinalResponse {
	return &assistant.FinalResponse{
		Type:       intentType,
		UserInput:  s.utils.TruncateCommand(command, 100),
		Response:   message,
		Parameters: map[string]interface{}{},
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
}
