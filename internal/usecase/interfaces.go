package usecase

import (
	"context"

	"smartethnic/internal/domain/entity"
)

// SessionStore keeps the logged-in identity snapshot behind an opaque token.
type SessionStore interface {
	Create(ctx context.Context, user *entity.User) (*entity.Session, error)
	Get(ctx context.Context, token string) (*entity.Session, error)
	Update(ctx context.Context, token string, user *entity.User) error
	Delete(ctx context.Context, token string) error
}

// CodeVerifier decides whether a one-time code is accepted for an email.
// Issuance and delivery of codes is an external collaborator; this interface
// keeps the acceptance policy pluggable.
type CodeVerifier interface {
	Verify(ctx context.Context, email, code string) (bool, error)
}
