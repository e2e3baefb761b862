package assistantService

import (
	"AssistantGolang/internal/api/assistant"
	"AssistantGolang/internal/entity"
	contextPkg "AssistantGolang/pkg/context"
	"context"
	"mime/multipart"
	"time"

	"github.com/sirupsen/logrus"
)

func (s *assistantService) GetCurrentUser(ctx context.Context, userID string) (entity.User, error) {
	client, err := s.assistantRepo.NewClient(false)
	if err != nil {
		return entity.User{}, err
	}

	user, err := client.Users.GetUserByID(ctx, userID)
	if err != nil {
		return entity.User{}, err
	}

	user.Password = ""
	return user, nil
}

func (s *assistantService) UpdateAssistant(ctx context.Context, userID string, req assistant.UpdateAssistantRequest, image *multipart.FileHeader) (entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)

	imageURL := req.ImageURL
	if image != nil {
		if err := s.utils.ValidateImageFile(image); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"user_id":    userID,
				"error":      err.Error(),
			}).Warn("Rejected assistant image upload")
			return entity.User{}, assistant.ErrInvalidImage
		}

		uploadedURL, err := s.s3Client.UploadFile(image)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"user_id":    userID,
				"error":      err.Error(),
			}).Error("Failed to upload assistant image")
			return entity.User{}, assistant.ErrUploadFailed
		}
		imageURL = uploadedURL
	}

	client, err := s.assistantRepo.NewClient(false)
	if err != nil {
		return entity.User{}, err
	}

	if err := client.Users.UpdateAssistant(ctx, userID, req.AssistantName, imageURL, req.Preferences); err != nil {
		return entity.User{}, err
	}

	user, err := client.Users.GetUserByID(ctx, userID)
	if err != nil {
		return entity.User{}, err
	}

	user.Password = ""
	return user, nil
}

func (s *assistantService) GetHistory(ctx context.Context, userID string, page, limit int) ([]entity.HistoryEntry, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > s.config.HistoryLimit {
		limit = s.config.HistoryLimit
	}
	offset := (page - 1) * limit

	client, err := s.assistantRepo.NewClient(false)
	if err != nil {
		return nil, 0, err
	}

	return client.History.GetHistoryByUserID(ctx, userID, limit, offset)
}

func (s *assistantService) ClearHistory(ctx context.Context, userID string) error {
	client, err := s.assistantRepo.NewClient(false)
	if err != nil {
		return err
	}

	return client.History.ClearHistory(ctx, userID)
}

func (s *assistantService) GetUsageStats(ctx context.Context, userID string) (entity.UsageStats, error) {
	client, err := s.assistantRepo.NewClient(false)
	if err != nil {
		return entity.UsageStats{}, err
	}

	user, err := client.Users.GetUserByID(ctx, userID)
	if err != nil {
		return entity.UsageStats{}, err
	}

	stats, err := client.History.GetUsageStats(ctx, userID)
	if err != nil {
		return entity.UsageStats{}, err
	}

	stats.LastActive = user.LastActive
	return stats, nil
}

func (s *assistantService) AddShortcut(ctx context.Context, userID string, req assistant.AddShortcutRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	id, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate shortcut id")
		return err
	}

	client, err := s.assistantRepo.NewClient(false)
	if err != nil {
		return err
	}

	return client.Shortcuts.CreateShortcut(ctx, entity.Shortcut{
		ID:        id,
		UserID:    userID,
		Keyword:   req.Keyword,
		Action:    req.Action,
		URL:       req.URL,
		CreatedAt: time.Now().UTC(),
	})
}

func (s *assistantService) GetShortcuts(ctx context.Context, userID string) ([]entity.Shortcut, error) {
	client, err := s.assistantRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	return client.Shortcuts.GetShortcutsByUserID(ctx, userID)
}
