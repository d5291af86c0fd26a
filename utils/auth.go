package utils

import (
	"time"

	"github.com/dgrijalva/jwt-go"
)

// JWT secret key, loaded from the environment at startup.
var JwtKey = []byte("your_secret_key")

// TokenExpiry is how long issued admin tokens stay valid.
var TokenExpiry = 24 * time.Hour

// Claims represents the JWT claims for the admin identity
type Claims struct {
	Username string `json:"username"`
	jwt.StandardClaims
}

// GenerateJWT issues a bearer token bound to the admin username
func GenerateJWT(username string) (string, error) {
	expirationTime := time.Now().Add(TokenExpiry)
	claims := &Claims{
		Username: username,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(JwtKey)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}
