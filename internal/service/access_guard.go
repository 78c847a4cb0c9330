package service

import (
	"context"

	"github.com/ManelMostefaoui/E-Doc-sub002/internal/domain/entity"
	"github.com/ManelMostefaoui/E-Doc-sub002/internal/domain/repository"
	"github.com/ManelMostefaoui/E-Doc-sub002/pkg/apperror"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAccountUnavailable = apperror.New(apperror.ErrUnauthenticated, "account is not available")
	ErrRoleNotAllowed     = apperror.New(apperror.ErrForbidden, "you don't have permission to access this resource")
)

// AccessGuard admits a request when its token resolves to an active user whose
// role is one of required. An empty required set admits any authenticated user.
type AccessGuard interface {
	Authorize(ctx context.Context, token string, required ...entity.Role) (*entity.User, error)
}

type accessGuard struct {
	db       *gorm.DB
	log      *logrus.Logger
	tokens   TokenIssuer
	userRepo repository.UserRepository
}

func NewAccessGuard(db *gorm.DB, log *logrus.Logger, tokens TokenIssuer, userRepo repository.UserRepository) AccessGuard {
	return &accessGuard{
		db:       db,
		log:      log,
		tokens:   tokens,
		userRepo: userRepo,
	}
}

func (g *accessGuard) Authorize(ctx context.Context, token string, required ...entity.Role) (*entity.User, error) {
	claims, err := g.tokens.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := g.userRepo.FindByID(g.db.WithContext(ctx), claims.UserID)
	if err != nil {
		g.log.Warnf("Failed to load user %s: %+v", claims.UserID, err)
		return nil, err
	}
	// Token outlived its user (deleted or deactivated).
	if user == nil || !user.Active() {
		return nil, ErrAccountUnavailable
	}

	if len(required) > 0 && !user.RoleID.In(required...) {
		return nil, ErrRoleNotAllowed
	}

	return user, nil
}
