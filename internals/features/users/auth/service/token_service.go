// internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	userModel "harmonia_backend/internals/features/users/user/model"
)

var ErrInvalidToken = errors.New("token inválido")

// AccessClaims é o conjunto de fatos de identidade embutido no token:
// id, nome e papel. Nada disso é persistido; a vida útil é o exp do JWT.
type AccessClaims struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken assina um HS256 com validade ttl (1h em produção).
func IssueToken(secret string, ttl time.Duration, user *userModel.UserModel) (string, error) {
	now := time.Now().UTC()
	claims := AccessClaims{
		UserID:   user.ID.String(),
		UserName: user.UserName,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyToken valida assinatura, formato e expiração. Qualquer falha é
// ErrInvalidToken — o chamador responde 401 antes de qualquer handler.
func VerifyToken(secret, tokenString string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
