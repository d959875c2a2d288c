package status

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/quizforge-lambda/internal/config"
)

var ErrClientNameRequired = errors.New("client_name is required")

type Service interface {
	Create(ctx context.Context, dto CreateStatusCheckDTO) (*StatusCheck, error)
	List(ctx context.Context) ([]StatusCheck, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Create(ctx context.Context, dto CreateStatusCheckDTO) (*StatusCheck, error) {
	log := config.WithContext(ctx)

	if dto.ClientName == nil {
		return nil, ErrClientNameRequired
	}

	sc := &StatusCheck{
		ID:         uuid.New(),
		ClientName: *dto.ClientName,
		Timestamp:  s.now().UTC(),
	}

	if err := s.repo.Create(ctx, sc); err != nil {
		log.WithError(err).Error("Failed to store status check")
		return nil, err
	}

	log.WithField("status_check_id", sc.ID).Info("Status check created")
	return sc, nil
}

func (s *service) List(ctx context.Context) ([]StatusCheck, error) {
	checks, err := s.repo.List(ctx, ListLimit)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list status checks")
		return nil, err
	}
	if checks == nil {
		checks = []StatusCheck{}
	}
	return checks, nil
}
