package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenExpiry читает exp из JWT без проверки подписи
// Подпись проверяет API маркетплейса, здесь нужен только срок жизни токена
func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}

	return exp.Time, true
}
