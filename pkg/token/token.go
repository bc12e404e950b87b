package token

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the payload carried inside the console's authToken cookie. It
// wraps the bearer token the core backend issued at login so every upstream
// call can reuse it.
type Session struct {
	AdminID      string    `json:"admin_id"`
	Email        string    `json:"email"`
	BackendToken string    `json:"backend_token"`
	Expired      time.Time `json:"expired"`
}

type TokenManager struct {
	secret string
	expiry time.Duration
}

func NewTokenManager(secret string, expiryHours int) *TokenManager {
	return &TokenManager{
		secret: secret,
		expiry: time.Duration(expiryHours) * time.Hour,
	}
}

func (tm *TokenManager) GenerateToken(adminID, email, backendToken string) (string, error) {
	payload := Session{
		AdminID:      adminID,
		Email:        email,
		BackendToken: backendToken,
		Expired:      time.Now().Add(tm.expiry),
	}
	claims := jwt.MapClaims{
		"payload": payload,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString([]byte(tm.secret))
	if err != nil {
		return "", err
	}
	return tokenStr, nil
}

func (tm *TokenManager) ValidateToken(tokenString string) (*Session, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(tm.secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		payloadInterface := claims["payload"]

		payloadSession := Session{}
		payloadByte, err := json.Marshal(payloadInterface)
		if err != nil {
			return nil, err
		}
		err = json.Unmarshal(payloadByte, &payloadSession)
		if err != nil {
			return nil, err
		}
		if time.Now().After(payloadSession.Expired) {
			return nil, errors.New("session expired")
		}
		return &payloadSession, nil
	}
	return nil, errors.New("unauthorized")
}
