package service

import (
	"context"

	"savannacars-backend/internal/domain"
	"savannacars-backend/internal/repository"
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationService(notificationRepo repository.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

func (s *notificationService) ListNotifications(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.notificationRepo.List(ctx, userID, limit, offset)
}

func (s *notificationService) MarkNotificationRead(ctx context.Context, id, userID int32) error {
	return s.notificationRepo.MarkAsRead(ctx, id, userID)
}
