package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/alanfo18/stcd/internal/access"
	"github.com/alanfo18/stcd/internal/auth"
	"github.com/alanfo18/stcd/internal/domain"
	"github.com/alanfo18/stcd/internal/httperr"
	"github.com/alanfo18/stcd/internal/models"
	"github.com/alanfo18/stcd/internal/session"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
	ContextClaims   = "claims"
)

// UserLookup carrega o usuário do token a cada requisição.
type UserLookup interface {
	GetUser(ctx context.Context, id uint) (*models.User, error)
}

// AuthMiddleware valida o token e carrega o papel atual do usuário no banco.
// O papel gravado no token não vale: rebaixar um admin tem efeito imediato.
func AuthMiddleware(issuer *auth.Issuer, revoker session.Revoker, users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.HTTPError{Code: "missing_authorization_header", Message: "Não autenticado."})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.HTTPError{Code: "invalid_authorization_header", Message: "Não autenticado."})
			return
		}

		claims, err := issuer.Parse(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.HTTPError{Code: "invalid_token", Message: "Sessão inválida."})
			return
		}

		revoked, err := revoker.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			// Redis fora do ar não derruba a API
			log.Warn().Err(err).Msg("revocation check failed")
		}
		if revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.HTTPError{Code: "token_revoked", Message: "Sessão encerrada."})
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.HTTPError{Code: "invalid_token", Message: "Sessão inválida."})
			return
		}

		user, err := users.GetUser(c.Request.Context(), userID)
		if errors.Is(err, domain.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperr.HTTPError{Code: "invalid_token", Message: "Sessão inválida."})
			return
		}
		if err != nil {
			log.Error().Err(err).Uint("user_id", userID).Msg("failed to load session user")
			c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.HTTPError{Code: "internal_error", Message: "Erro interno."})
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextUserRole, user.Role)
		c.Set(ContextClaims, claims)

		c.Next()
	}
}

// RequireAdmin deve vir depois de AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := access.RequireAdmin(c.GetString(ContextUserRole)); err != nil {
			httperr.FromError(c, err, "forbidden")
			c.Abort()
			return
		}
		c.Next()
	}
}

// Actor lê o usuário autenticado do contexto.
func Actor(c *gin.Context) access.Actor {
	return access.Actor{
		ID:   c.GetUint(ContextUserID),
		Role: c.GetString(ContextUserRole),
	}
}

func Claims(c *gin.Context) *auth.Claims {
	v, ok := c.Get(ContextClaims)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}
