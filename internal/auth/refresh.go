package auth

import (
	"context"
	"errors"
	"time"

	pkgAuth "github.com/marcusvales/shoplane-backend/pkg/auth"
	"github.com/marcusvales/shoplane-backend/pkg/auth/session"
	"github.com/marcusvales/shoplane-backend/pkg/config"
	pkgerrors "github.com/marcusvales/shoplane-backend/pkg/errors"
)

// RefreshRequest carries the prior token pair for rotation.
type RefreshRequest struct {
	Access  string `json:"access" validate:"required"`
	Refresh string `json:"refresh" validate:"required"`
}

// RefreshService rotates token pairs.
type RefreshService interface {
	Refresh(ctx context.Context, req RefreshRequest) (*TokenPairResponse, error)
}

type sessionRotator interface {
	Rotate(ctx context.Context, oldAccessID, provided string) (string, string, error)
}

// RefreshServiceParams packages the dependencies for token rotation.
type RefreshServiceParams struct {
	SessionManager sessionRotator
	JWTConfig      config.JWTConfig
}

type refreshService struct {
	session sessionRotator
	jwtCfg  config.JWTConfig
}

// NewRefreshService builds a refresh service with the provided dependencies.
func NewRefreshService(params RefreshServiceParams) (RefreshService, error) {
	if params.SessionManager == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "session manager required")
	}
	return &refreshService{
		session: params.SessionManager,
		jwtCfg:  params.JWTConfig,
	}, nil
}

// Refresh validates the presented pair and issues a replacement. The access
// token may be expired; only its signature and jti are checked here, the
// refresh token itself is verified against the stored session.
func (s *refreshService) Refresh(ctx context.Context, req RefreshRequest) (*TokenPairResponse, error) {
	claims, err := pkgAuth.ParseAccessTokenAllowExpired(s.jwtCfg, req.Access)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid token")
	}
	if claims.ID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid token")
	}

	newAccessID, newRefresh, err := s.session.Rotate(ctx, claims.ID, req.Refresh)
	if err != nil {
		if errors.Is(err, session.ErrInvalidRefreshToken) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid refresh token")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "rotate session")
	}

	accessToken, err := pkgAuth.MintAccessToken(s.jwtCfg, time.Now().UTC(), pkgAuth.AccessTokenPayload{
		UserID: claims.UserID,
		Role:   claims.Role,
		JTI:    newAccessID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint jwt")
	}

	return &TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: newRefresh,
	}, nil
}
