package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/lifeway/lms-backend/internal/app/models"
	"github.com/lifeway/lms-backend/internal/app/models/dto"
	"github.com/lifeway/lms-backend/internal/app/repositories"
)

// NoticeService defines the interface for notice operations
type NoticeService interface {
	Publish(ctx context.Context, req dto.CreateNoticeRequest) (*models.Notice, error)
	GetActiveNotices(ctx context.Context) ([]*models.Notice, error)
}

// noticeServiceImpl implements the NoticeService interface
type noticeServiceImpl struct {
	noticeRepo *repositories.NoticeRepository
}

// NewNoticeService creates a new notice service instance
func NewNoticeService(noticeRepo *repositories.NoticeRepository) NoticeService {
	return &noticeServiceImpl{
		noticeRepo: noticeRepo,
	}
}

// Publish stores a new notice
func (s *noticeServiceImpl) Publish(ctx context.Context, req dto.CreateNoticeRequest) (*models.Notice, error) {
	notice := &models.Notice{
		Title: strings.TrimSpace(req.Title),
		Body:  req.Body,
	}

	if _, err := s.noticeRepo.Create(ctx, notice); err != nil {
		return nil, fmt.Errorf("error publishing notice: %w", err)
	}

	return notice, nil
}

// GetActiveNotices retrieves active notices, newest first
func (s *noticeServiceImpl) GetActiveNotices(ctx context.Context) ([]*models.Notice, error) {
	notices, err := s.noticeRepo.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving notices: %w", err)
	}
	return notices, nil
}
