package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"regexp"
	"time"

	"github.com/google/uuid"

	"smartethnic/internal/domain/entity"
	"smartethnic/internal/domain/repository"
	"smartethnic/pkg/errors"
	"smartethnic/pkg/logger"
)

const otpRetention = 24 * time.Hour

var codePattern = regexp.MustCompile(`^\d{6}$`)

// AuthUseCase is the identity session manager: it owns the OTP login flow,
// signup, profile updates and session lifecycle.
type AuthUseCase struct {
	userRepo repository.UserRepository
	otpLog   repository.OTPLogRepository
	sessions SessionStore
	verifier CodeVerifier
}

func NewAuthUseCase(
	userRepo repository.UserRepository,
	otpLog repository.OTPLogRepository,
	sessions SessionStore,
	verifier CodeVerifier,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		otpLog:   otpLog,
		sessions: sessions,
		verifier: verifier,
	}
}

type SignupInput struct {
	FirstName string
	LastName  string
	Phone     string
	Address   string
	PinCode   string
}

type UpdateProfileInput struct {
	FirstName string
	LastName  string
	Phone     string
	Address   string
	PinCode   string
}

type VerifyResult struct {
	User        *entity.User
	Session     *entity.Session
	NeedsSignup bool
}

type AuthResult struct {
	User    *entity.User
	Session *entity.Session
}

// SendCode issues a fresh 6-digit code, appends it to the OTP log and reports
// whether the email belongs to an existing account. Delivering the code to
// the user's inbox is an external collaborator.
func (uc *AuthUseCase) SendCode(ctx context.Context, email string) (bool, error) {
	code := generateCode()

	record := &entity.OTPRecord{
		Email:     email,
		Code:      code,
		CreatedAt: time.Now(),
	}
	if err := uc.otpLog.Append(ctx, record); err != nil {
		return false, errors.Internal("Failed to store OTP", err)
	}

	_, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// VerifyCode checks the code and either opens a session for an existing user
// or signals that signup must follow. No user record is created here.
func (uc *AuthUseCase) VerifyCode(ctx context.Context, email, code string) (*VerifyResult, error) {
	if !codePattern.MatchString(code) {
		return nil, errors.BadRequest("Invalid code format", nil)
	}

	ok, err := uc.verifier.Verify(ctx, email, code)
	if err != nil {
		return nil, errors.Internal("Failed to verify code", err)
	}
	if !ok {
		return nil, errors.Unauthorized("Invalid one-time code", nil)
	}

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return &VerifyResult{NeedsSignup: true}, nil
		}
		return nil, err
	}

	sess, err := uc.sessions.Create(ctx, user)
	if err != nil {
		return nil, errors.Internal("Failed to create session", err)
	}

	return &VerifyResult{User: user, Session: sess}, nil
}

// CompleteSignup creates the user record and opens a session. The write is a
// conditional create, so a concurrent signup for the same email fails with a
// conflict rather than overwriting.
func (uc *AuthUseCase) CompleteSignup(ctx context.Context, email string, input SignupInput) (*AuthResult, error) {
	if input.FirstName == "" || input.Phone == "" || input.Address == "" {
		return nil, errors.BadRequest("First name, phone and address are required", nil)
	}

	exists, err := uc.userRepo.PhoneExists(ctx, input.Phone)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.Conflict("This phone number is already registered with another account")
	}

	now := time.Now()
	user := &entity.User{
		ID:        uuid.NewString(),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     email,
		Phone:     input.Phone,
		Address:   input.Address,
		PinCode:   input.PinCode,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	sess, err := uc.sessions.Create(ctx, user)
	if err != nil {
		return nil, errors.Internal("Failed to create session", err)
	}

	return &AuthResult{User: user, Session: sess}, nil
}

// Current restores the session behind a bearer token without re-reading the
// user record from the document store.
func (uc *AuthUseCase) Current(ctx context.Context, token string) (*entity.Session, error) {
	sess, err := uc.sessions.Get(ctx, token)
	if err != nil {
		return nil, errors.Unauthorized("Invalid or expired session", err)
	}
	return sess, nil
}

// UpdateProfile merges the provided fields over the current snapshot,
// overwrites the full user document and refreshes the session record.
func (uc *AuthUseCase) UpdateProfile(ctx context.Context, sess *entity.Session, input UpdateProfileInput) (*entity.User, error) {
	if sess == nil {
		return nil, errors.Unauthorized("No active session", nil)
	}

	user := sess.User
	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}
	if input.Address != "" {
		user.Address = input.Address
	}
	if input.PinCode != "" {
		user.PinCode = input.PinCode
	}
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, &user); err != nil {
		return nil, err
	}

	if err := uc.sessions.Update(ctx, sess.Token, &user); err != nil {
		return nil, errors.Internal("Failed to refresh session", err)
	}

	return &user, nil
}

// Logout drops the session only; the user document is untouched.
func (uc *AuthUseCase) Logout(ctx context.Context, token string) error {
	return uc.sessions.Delete(ctx, token)
}

// StartOTPCleanupJob periodically prunes old rows from the OTP log.
func (uc *AuthUseCase) StartOTPCleanupJob(ctx context.Context) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := uc.otpLog.DeleteOlderThan(ctx, otpRetention)
			if err != nil {
				logger.Warn("OTP cleanup failed: %v", err)
				continue
			}
			if deleted > 0 {
				logger.Info("OTP cleanup removed %d records", deleted)
			}
		}
	}
}

func generateCode() string {
	return fmt.Sprintf("%06d", 100000+rand.Intn(900000))
}
