package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/MKhiriev/volunteer-keeper/internal/config"
	"github.com/MKhiriev/volunteer-keeper/internal/logger"
	"github.com/MKhiriev/volunteer-keeper/internal/store"
	"github.com/MKhiriev/volunteer-keeper/internal/utils"
	"github.com/MKhiriev/volunteer-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles account registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// adminInviteCode gates the privileged admin signup path.
	adminInviteCode string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  userRepository,
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		tokenDuration:   cfg.TokenDuration,
		adminInviteCode: cfg.AdminInviteCode,
		logger:          logger,
	}
}

// RegisterUser creates a new volunteer account.
//
// The plaintext password is hashed with bcrypt before persistence and the
// IsAdmin flag is forced off: regular signup can never mint an administrator.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if Email or the password is empty.
//   - A storage error if the repository call fails (e.g. email or badge
//     number already taken — see store.ErrDuplicateUser).
func (a *authService) RegisterUser(ctx context.Context, user models.User, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Email == "" || password == "" {
		log.Error().Str("email", user.Email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.PasswordHash = hash
	user.IsAdmin = false

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// RegisterAdmin creates a new administrator account.
//
// The flow matches RegisterUser except that the caller must present the
// configured invite code; a mismatch yields ErrInvalidInviteCode before
// anything touches the database.
func (a *authService) RegisterAdmin(ctx context.Context, user models.User, password, inviteCode string) (models.User, error) {
	log := logger.FromContext(ctx)

	if a.adminInviteCode == "" ||
		subtle.ConstantTimeCompare([]byte(inviteCode), []byte(a.adminInviteCode)) != 1 {
		log.Warn().Str("email", user.Email).Msg("admin signup rejected: wrong invite code")
		return models.User{}, ErrInvalidInviteCode
	}

	if user.Email == "" || password == "" {
		log.Error().Str("email", user.Email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.PasswordHash = hash
	user.IsAdmin = true

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("admin creation ended with error")
		return models.User{}, fmt.Errorf("admin creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user by email and password.
//
// An unknown email and a wrong password both map to ErrInvalidCredentials
// so that the response does not leak which accounts exist.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid credentials provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, ErrInvalidCredentials
	}

	if !utils.CheckPassword(password, foundUser.PasswordHash) {
		log.Warn().
			Int64("id", foundUser.ID).
			Str("email", foundUser.Email).
			Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// UserFromToken resolves the token subject to a live user account.
//
// A token whose subject no longer exists in the database is as good as
// invalid, so the lookup failure is normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) UserFromToken(ctx context.Context, token models.Token) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.GetUserByID(ctx, token.UserID)
	if err != nil {
		log.Err(err).Int64("user_id", token.UserID).Msg("token subject lookup failed")
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	return foundUser, nil
}
