package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/luxemods/economy-backend/internal/config"
)

// ClaimDateLayout is the calendar-date format used for daily claim records.
const ClaimDateLayout = "2006-01-02"

// UTCDateString reduces a timestamp to its UTC calendar date.
func UTCDateString(t time.Time) string {
	return t.UTC().Format(ClaimDateLayout)
}

// PreviousUTCDateString returns the UTC calendar date one day before t.
func PreviousUTCDateString(t time.Time) string {
	return t.UTC().AddDate(0, 0, -1).Format(ClaimDateLayout)
}

// NextUTCMidnight returns the first instant of the UTC day after t.
func NextUTCMidnight(t time.Time) time.Time {
	u := t.UTC()
	midnight := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	return midnight.AddDate(0, 0, 1)
}

// GenerateJWT generates a signed admin token
func GenerateJWT(userID string, role string, cfg *config.Config) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(time.Second * time.Duration(cfg.JWT.ExpiresIn)).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}

// ValidateJWT validates a token and returns its claims
func ValidateJWT(tokenString string, cfg *config.Config) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}
