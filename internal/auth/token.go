package auth

import (
    "context"
    "errors"
    "time"

    "github.com/golang-jwt/jwt/v5"
    "github.com/google/uuid"
    "github.com/redis/go-redis/v9"

    "github.com/d60-Lab/simple-twitter/internal/model"
)

var (
    ErrInvalidToken = errors.New("invalid token")
    ErrTokenRevoked = errors.New("token has been revoked")
)

const revokedKeyPrefix = "auth:revoked:"

// Claims JWT 载荷，携带观察者身份
type Claims struct {
    UserID  string `json:"user_id"`
    Account string `json:"account"`
    Role    string `json:"role"`
    jwt.RegisteredClaims
}

// TokenMaker 签发 / 校验 JWT；注销的 token 记入 redis 黑名单，
// TTL 为其剩余有效期。
type TokenMaker struct {
    secret []byte
    expire time.Duration
    cache  *redis.Client
}

func NewTokenMaker(secret string, expire time.Duration, cache *redis.Client) *TokenMaker {
    if expire <= 0 {
        expire = 30 * 24 * time.Hour
    }
    return &TokenMaker{secret: []byte(secret), expire: expire, cache: cache}
}

func (m *TokenMaker) Generate(user *model.User) (string, error) {
    now := time.Now()
    claims := &Claims{
        UserID:  user.ID,
        Account: user.Account,
        Role:    user.Role,
        RegisteredClaims: jwt.RegisteredClaims{
            ID:        uuid.New().String(),
            IssuedAt:  jwt.NewNumericDate(now),
            ExpiresAt: jwt.NewNumericDate(now.Add(m.expire)),
        },
    }
    return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *TokenMaker) Parse(ctx context.Context, tokenString string) (*Claims, error) {
    claims := &Claims{}
    token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrInvalidToken
        }
        return m.secret, nil
    })
    if err != nil || !token.Valid {
        return nil, ErrInvalidToken
    }
    if m.cache != nil && claims.ID != "" {
        n, err := m.cache.Exists(ctx, revokedKeyPrefix+claims.ID).Result()
        if err != nil {
            return nil, err
        }
        if n > 0 {
            return nil, ErrTokenRevoked
        }
    }
    return claims, nil
}

// Revoke 将 token 加入黑名单；已过期的直接忽略。
func (m *TokenMaker) Revoke(ctx context.Context, tokenString string) error {
    claims, err := m.Parse(ctx, tokenString)
    if err != nil {
        if errors.Is(err, ErrTokenRevoked) {
            return nil
        }
        return err
    }
    if m.cache == nil || claims.ID == "" {
        return nil
    }
    ttl := time.Until(claims.ExpiresAt.Time)
    if ttl <= 0 {
        return nil
    }
    return m.cache.Set(ctx, revokedKeyPrefix+claims.ID, "1", ttl).Err()
}
