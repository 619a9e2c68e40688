package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Subject datos de la sesión que viajan firmados en la cookie.
type Subject struct {
	UserID       int
	Nombre       string
	Role         string // "admin" | "vendedor"
	PuntoVentaID int    // 0 = sin punto de venta (admin)
}

// Claims incluye los claims estándar JWT más los campos de la sesión de consola.
type Claims struct {
	jwt.RegisteredClaims
	UserID       int    `json:"user_id"`
	Nombre       string `json:"nombre,omitempty"`
	Role         string `json:"role"`
	PuntoVentaID int    `json:"punto_venta_id,omitempty"`
}

// Generate genera un token JWT firmado con los datos de la sesión.
func Generate(secret string, sub Subject, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   fmt.Sprintf("%d", sub.UserID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:       sub.UserID,
		Nombre:       sub.Nombre,
		Role:         sub.Role,
		PuntoVentaID: sub.PuntoVentaID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve los datos de la sesión.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (Subject, error) {
	if secret == "" {
		return Subject{}, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Subject{}, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Subject{}, fmt.Errorf("claims inválidos")
	}
	return Subject{
		UserID:       claims.UserID,
		Nombre:       claims.Nombre,
		Role:         claims.Role,
		PuntoVentaID: claims.PuntoVentaID,
	}, nil
}
