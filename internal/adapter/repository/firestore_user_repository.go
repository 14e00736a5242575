package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"smartethnic/internal/domain/entity"
	"smartethnic/internal/domain/repository"
	"smartethnic/pkg/errors"
)

type firestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) repository.UserRepository {
	return &firestoreUserRepository{
		client: client,
	}
}

func (r *firestoreUserRepository) Create(ctx context.Context, user *entity.User) error {
	// Conditional create: the email is the document ID, so a concurrent
	// signup for the same address fails here instead of overwriting.
	_, err := r.client.Collection("users").Doc(user.Email).Create(ctx, user)
	if err != nil {
		if isAlreadyExists(err) {
			return errors.Conflict("An account with this email already exists")
		}
		return errors.Internal("Failed to create user record", err)
	}
	return nil
}

func (r *firestoreUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	doc, err := r.client.Collection("users").Doc(email).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, errors.NotFound("User", err)
		}
		return nil, errors.Internal("Failed to load user record", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Internal("Failed to parse user record", err)
	}

	return &user, nil
}

func (r *firestoreUserRepository) Update(ctx context.Context, user *entity.User) error {
	_, err := r.client.Collection("users").Doc(user.Email).Set(ctx, user)
	if err != nil {
		return errors.Internal("Failed to update user record", err)
	}
	return nil
}

func (r *firestoreUserRepository) PhoneExists(ctx context.Context, phone string) (bool, error) {
	query := r.client.Collection("users").Where("phone", "==", phone).Limit(1)
	iter := query.Documents(ctx)
	defer iter.Stop()

	_, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, errors.Internal("Failed to check phone number", err)
	}
	return true, nil
}
