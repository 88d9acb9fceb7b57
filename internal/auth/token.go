package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tokens signs and verifies the HMAC session tokens the API hands out
// at login.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed token for the user.
func (t *Tokens) Issue(userID, name, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID,
		"name": name,
		"role": role,
		"exp":  time.Now().Add(t.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Parse validates the token and returns the principal it carries.
func (t *Tokens) Parse(tokenString string) (RealUser, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return t.secret, nil
	})
	if err != nil {
		return RealUser{}, err
	}
	if !token.Valid {
		return RealUser{}, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return RealUser{}, fmt.Errorf("invalid token payload")
	}

	user := RealUser{}
	user.ID, _ = claims["sub"].(string)
	user.Name, _ = claims["name"].(string)
	user.Role, _ = claims["role"].(string)
	if user.ID == "" {
		return RealUser{}, fmt.Errorf("token missing subject")
	}
	return user, nil
}
