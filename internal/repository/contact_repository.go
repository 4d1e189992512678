package repository

import (
	"context"
	"errors"

	"bents-gateway/internal/domain/contact"
)

const insertContactSQL = `
	INSERT INTO contacts (name, email, subject, message)
	VALUES ($1, $2, $3, $4)
	RETURNING id, name, email, subject, message, created_at`

type PostgresContactRepository struct {
	db Querier
}

func NewContactRepository(db Querier) ContactRepository {
	return &PostgresContactRepository{db: db}
}

// Insert stores one contact submission and returns the row as written,
// including the store-assigned id and timestamp.
func (r *PostgresContactRepository) Insert(ctx context.Context, name, email, subject, message string) (*contact.Message, error) {
	if r.db == nil {
		return nil, storeError("insert_contact", errors.New("database not initialized"))
	}

	var m contact.Message
	err := r.db.QueryRow(ctx, insertContactSQL, name, email, subject, message).
		Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.CreatedAt)
	if err != nil {
		return nil, storeError("insert_contact", err)
	}
	return &m, nil
}
