package service

import (
	"context"
	"errors"

	"github.com/ManelMostefaoui/E-Doc-sub002/pkg/apperror"
	"github.com/ManelMostefaoui/E-Doc-sub002/pkg/jwt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var ErrTokenInvalid = apperror.New(apperror.ErrUnauthenticated, "invalid or revoked token")

// AccessTokenKeyPrefix + user id holds the id of the user's single live token.
const AccessTokenKeyPrefix = "access_token:"

// revokeTokenScript deletes the live-token record only if it still names the
// presented token, so a stale logout cannot kill a newer session.
var revokeTokenScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`)

// TokenIssuer manages bearer session tokens. A user has at most one live token:
// issuing a new one supersedes the previous one.
type TokenIssuer interface {
	Issue(ctx context.Context, userID uuid.UUID) (string, error)
	Resolve(ctx context.Context, token string) (*jwt.Claims, error)
	Revoke(ctx context.Context, token string) error
	RevokeAll(ctx context.Context, userID uuid.UUID) error
}

type tokenIssuer struct {
	log         *logrus.Logger
	jwtService  *jwt.JWTService
	redisClient *redis.Client
}

func NewTokenIssuer(log *logrus.Logger, jwtService *jwt.JWTService, redisClient *redis.Client) TokenIssuer {
	return &tokenIssuer{
		log:         log,
		jwtService:  jwtService,
		redisClient: redisClient,
	}
}

func accessTokenKey(userID uuid.UUID) string {
	return AccessTokenKeyPrefix + userID.String()
}

// Issue overwrites the live-token record in a single SET, which revokes every
// earlier token for the user. The record has no TTL.
func (s *tokenIssuer) Issue(ctx context.Context, userID uuid.UUID) (string, error) {
	token, tokenID, err := s.jwtService.GenerateToken(userID)
	if err != nil {
		s.log.Warnf("Failed to generate token: %+v", err)
		return "", err
	}

	if err := s.redisClient.Set(ctx, accessTokenKey(userID), tokenID, 0).Err(); err != nil {
		s.log.Warnf("Failed to store token in Redis: %+v", err)
		return "", err
	}

	return token, nil
}

func (s *tokenIssuer) Resolve(ctx context.Context, token string) (*jwt.Claims, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return nil, ErrTokenInvalid
	}

	liveID, err := s.redisClient.Get(ctx, accessTokenKey(claims.UserID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrTokenInvalid
		}
		s.log.Warnf("Failed to read token from Redis: %+v", err)
		return nil, err
	}
	if liveID != claims.TokenID {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

// Revoke deletes exactly the presented token. Revoking a superseded or
// already revoked token fails with ErrTokenInvalid.
func (s *tokenIssuer) Revoke(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return ErrTokenInvalid
	}

	deleted, err := revokeTokenScript.Run(ctx, s.redisClient, []string{accessTokenKey(claims.UserID)}, claims.TokenID).Int64()
	if err != nil {
		s.log.Warnf("Failed to revoke token: %+v", err)
		return err
	}
	if deleted == 0 {
		return ErrTokenInvalid
	}

	return nil
}

func (s *tokenIssuer) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	if err := s.redisClient.Del(ctx, accessTokenKey(userID)).Err(); err != nil {
		s.log.Warnf("Failed to revoke tokens for user %s: %+v", userID, err)
		return err
	}
	return nil
}
