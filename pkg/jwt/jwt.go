package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Roles de acceso válidos en la plataforma.
const (
	RoleTenantOwner = "tenantowner"
	RoleAdmin       = "admin"
	RoleExecutive   = "executive"
)

// DefaultExpMinutes ventana de validez por defecto del token: 24 horas.
const DefaultExpMinutes = 1440

// rootPaths mapea rol → pantalla raíz del frontend tras el login.
// Roles no reconocidos caen en "bms/default" (ver DESIGN.md).
var rootPaths = map[string]string{
	RoleTenantOwner: "bms/tenant",
	RoleAdmin:       "bms/company",
	RoleExecutive:   "bms/company",
}

// Claims incluye los claims estándar JWT más los campos propios del BMS.
// TenantID viaja en el token para que el middleware pueda acotar cada
// consulta al tenant del usuario sin tocar la DB; es vacío para tenantowner.
type Claims struct {
	jwt.RegisteredClaims
	UserID     string `json:"id"`
	UserName   string `json:"userName"`
	AccessType string `json:"accessType"`
	TenantID   string `json:"tenantId"`
	RootPath   string `json:"rootpath"`
}

// RootPathFor devuelve la ruta raíz asociada al rol, o "bms/default" si el rol no se reconoce.
func RootPathFor(accessType string) string {
	if p, ok := rootPaths[accessType]; ok {
		return p
	}
	return "bms/default"
}

// Generate genera un token JWT firmado con los datos de sesión del usuario.
// tenantID puede ser vacío (tenantowner no pertenece a ningún tenant).
func Generate(secret, userID, userName, accessType, tenantID, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	if expMinutes == 0 {
		expMinutes = DefaultExpMinutes
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:     userID,
		UserName:   userName,
		AccessType: accessType,
		TenantID:   tenantID,
		RootPath:   RootPathFor(accessType),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma y expiración del token y devuelve los claims.
// Retorna jwt.ErrTokenExpired (envuelto) si el token venció, para que el
// caller distinga "expirado" de "inválido".
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
	return claims, nil
}

// IsExpired informa si el error de Parse corresponde a un token vencido.
func IsExpired(err error) bool {
	return errors.Is(err, jwt.ErrTokenExpired)
}
