package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const (
	// authCookie cookie с токеном пользователя
	authCookie = "jwt"

	// tokenTTL столько живет сессия пользователя без нового входа
	tokenTTL = 12 * time.Hour
)

var errNoUser = errors.New("в токене нет пользователя")

// issueToken токен пользователя userID, подписанный secret. пользователь хранится в поле sub
func issueToken(userID uuid.UUID, secret string, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("подпись токена. %w", err)
	}
	return token, nil
}

// parseToken проверяет подпись и срок действия токена и возвращает пользователя
func parseToken(token, secret string) (uuid.UUID, error) {
	claims := jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(
		token,
		&claims,
		func(*jwt.Token) (interface{}, error) { return []byte(secret), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("разбор токена. %w", err)
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil || userID == uuid.Nil {
		return uuid.Nil, errNoUser
	}
	return userID, nil
}

// userFromRequest пользователь из cookie запроса
func userFromRequest(r *http.Request, secret string) (uuid.UUID, error) {
	c, err := r.Cookie(authCookie)
	if err != nil {
		return uuid.Nil, fmt.Errorf("cookie %s. %w", authCookie, err)
	}
	return parseToken(c.Value, secret)
}

func setUserCookie(w http.ResponseWriter, token string, now time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     authCookie,
		Value:    token,
		Path:     "/",
		Expires:  now.Add(tokenTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
