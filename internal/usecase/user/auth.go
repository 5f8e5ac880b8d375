package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/alanfo18/stcd/internal/audit"
	"github.com/alanfo18/stcd/internal/auth"
	"github.com/alanfo18/stcd/internal/domain"
	domainuser "github.com/alanfo18/stcd/internal/domain/user"
	"github.com/alanfo18/stcd/internal/httperr"
	"github.com/alanfo18/stcd/internal/models"
	"github.com/alanfo18/stcd/internal/session"
)

const minPasswordLen = 6

// Limiter limita tentativas de login por chave.
type Limiter interface {
	Allow(key string) bool
}

// SuspiciousReporter registra bloqueio de login para o dono da conta.
type SuspiciousReporter func(ctx context.Context, userID uint, ip string) error

type Session struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

type Auth struct {
	repo    domainuser.Repository
	issuer  *auth.Issuer
	revoker session.Revoker
	audit   audit.Sink
	limiter Limiter
	report  SuspiciousReporter

	// CheckEmailDomain é opcional: valida o domínio do e-mail no cadastro.
	CheckEmailDomain func(ctx context.Context, email string) bool

	now func() time.Time
}

func NewAuth(
	repo domainuser.Repository,
	issuer *auth.Issuer,
	revoker session.Revoker,
	auditSink audit.Sink,
	limiter Limiter,
	report SuspiciousReporter,
) *Auth {
	return &Auth{
		repo:    repo,
		issuer:  issuer,
		revoker: revoker,
		audit:   auditSink,
		limiter: limiter,
		report:  report,
		now:     time.Now,
	}
}

// ======================================================
// REGISTER
// ======================================================

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	IP       string
}

// Register cria a conta. O primeiro usuário do sistema vira admin.
func (a *Auth) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, httperr.ErrValidation("invalid_name")
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if len(in.Password) < minPasswordLen || !strings.Contains(email, "@") {
		return nil, httperr.ErrValidation("invalid_request")
	}
	if a.CheckEmailDomain != nil && !a.CheckEmailDomain(ctx, email) {
		return nil, httperr.ErrValidation("invalid_email_domain")
	}

	if _, err := a.repo.GetUserByEmail(ctx, email); err == nil {
		return nil, httperr.ErrConflict("email_already_exists")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	count, err := a.repo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	role := models.RoleUser
	if count == 0 {
		role = models.RoleAdmin
	}

	now := a.now()
	u := &models.User{
		OpenID:       uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		LoginMethod:  "password",
		Role:         role,
		LastSignedIn: &now,
	}
	if err := a.repo.CreateUser(ctx, u); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrConflict("email_already_exists")
		}
		return nil, err
	}

	a.audit.Dispatch(audit.Event{
		UserID:    &u.ID,
		Action:    "user_registered",
		Entity:    "user",
		EntityID:  &u.ID,
		IPAddress: in.IP,
		Metadata:  map[string]any{"role": role},
	})

	return a.session(u)
}

// ======================================================
// LOGIN / LOGOUT
// ======================================================

type LoginInput struct {
	Email     string
	Password  string
	IP        string
	UserAgent string
}

func (a *Auth) Login(ctx context.Context, in LoginInput) (*Session, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if a.limiter != nil && !a.limiter.Allow(email) {
		a.reportBlocked(ctx, email, in.IP)
		return nil, httperr.ErrRateLimited("too_many_attempts")
	}

	u, err := a.repo.GetUserByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, httperr.ErrUnauthorized("invalid_credentials")
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		a.audit.Dispatch(audit.Event{
			UserID:    &u.ID,
			Action:    "login_failed",
			Entity:    "user",
			EntityID:  &u.ID,
			IPAddress: in.IP,
			UserAgent: in.UserAgent,
			Err:       errors.New("invalid_credentials"),
		})
		return nil, httperr.ErrUnauthorized("invalid_credentials")
	}

	now := a.now()
	u.LastSignedIn = &now
	if err := a.repo.UpdateUser(ctx, u); err != nil {
		log.Warn().Err(err).Uint("user_id", u.ID).Msg("failed to update last sign in")
	}

	a.audit.Dispatch(audit.Event{
		UserID:    &u.ID,
		Action:    "login",
		Entity:    "user",
		EntityID:  &u.ID,
		IPAddress: in.IP,
		UserAgent: in.UserAgent,
	})

	return a.session(u)
}

func (a *Auth) reportBlocked(ctx context.Context, email, ip string) {
	log.Warn().Str("email", email).Str("ip", ip).Msg("login rate limited")

	if a.report == nil {
		return
	}
	u, err := a.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return
	}
	if err := a.report(ctx, u.ID, ip); err != nil {
		log.Error().Err(err).Uint("user_id", u.ID).Msg("failed to record suspicious access")
	}
}

// Logout revoga o jti até o fim da validade do token.
func (a *Auth) Logout(ctx context.Context, claims *auth.Claims) error {
	if err := a.revoker.Revoke(ctx, claims.ID, claims.Remaining(a.now())); err != nil {
		return err
	}

	if id, err := claims.UserID(); err == nil {
		a.audit.Dispatch(audit.Event{
			UserID: &id,
			Action: "logout",
			Entity: "user",
		})
	}
	return nil
}

func (a *Auth) session(u *models.User) (*Session, error) {
	token, err := a.issuer.Issue(u)
	if err != nil {
		return nil, err
	}
	return &Session{User: u, Token: token}, nil
}
