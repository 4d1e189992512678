package repository

import (
	"context"

	"bents-gateway/internal/domain/contact"
)

type ContactRepository interface {
	Insert(ctx context.Context, name, email, subject, message string) (*contact.Message, error)
}
