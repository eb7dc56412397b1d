package domain

import (
	jwt "github.com/golang-jwt/jwt/v4"
)

type JwtCustomClaims struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}
