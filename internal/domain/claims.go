package domain

import "github.com/golang-jwt/jwt/v5"

// Claims are carried by the service tokens accepted by the API.
type Claims struct {
	Client string `json:"client"`
	jwt.RegisteredClaims
}
