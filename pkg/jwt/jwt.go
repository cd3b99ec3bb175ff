package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Propósitos válidos para un token.
const (
	PurposeAccess = "access" // sesión normal de la API
	PurposeReset  = "reset"  // reseteo de contraseña tras verificar OTP
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Se añade Role para que el middleware RBAC pueda tomar decisiones sin consultar la DB,
// y Purpose para distinguir tokens de sesión de tokens de reseteo de contraseña.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	CompanyID string `json:"company_id"`
	Role      string `json:"role"`    // "admin" | "manager" | "operator"
	Purpose   string `json:"purpose"` // "access" | "reset"
}

// Generate genera un token de sesión firmado que incluye userID, companyID y role.
func Generate(secret, userID, companyID, role, issuer string, expMinutes int) (string, error) {
	return generate(secret, userID, companyID, role, issuer, PurposeAccess, expMinutes)
}

// GenerateReset genera un token de corta vida para completar el reseteo de contraseña.
// No sirve como token de sesión: Purpose="reset".
func GenerateReset(secret, userID, companyID, issuer string, expMinutes int) (string, error) {
	return generate(secret, userID, companyID, "", issuer, PurposeReset, expMinutes)
}

func generate(secret, userID, companyID, role, issuer, purpose string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:    userID,
		CompanyID: companyID,
		Role:      role,
		Purpose:   purpose,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve sus claims.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	if claims.Purpose == "" {
		// Tokens antiguos sin purpose se tratan como tokens de sesión.
		claims.Purpose = PurposeAccess
	}
	return claims, nil
}
