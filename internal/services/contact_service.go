package services

import (
	"context"

	"bents-gateway/internal/domain/contact"
	"bents-gateway/internal/repository"
	"bents-gateway/pkg/events"
	"bents-gateway/pkg/logger"
)

type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

type ContactService struct {
	repo      repository.ContactRepository
	publisher events.Publisher
	channel   string
	logger    *logger.Logger
}

func NewContactService(repo repository.ContactRepository, publisher events.Publisher, channel string, l *logger.Logger) *ContactService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if l == nil {
		l = logger.NewNop()
	}
	return &ContactService{repo: repo, publisher: publisher, channel: channel, logger: l}
}

// Submit stores the submission and announces it on the contact events channel.
// A failed announcement is logged only; the stored row is still returned.
func (s *ContactService) Submit(ctx context.Context, in ContactInput) (*contact.Message, error) {
	msg, err := s.repo.Insert(ctx, in.Name, in.Email, in.Subject, in.Message)
	if err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, s.channel, events.New(events.ContactReceived, msg)); err != nil {
		s.logger.WithContext(ctx).Warnf("failed to publish %s for contact %d: %v", events.ContactReceived, msg.ID, err)
	}
	return msg, nil
}
