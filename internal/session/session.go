// Package session emite y valida los tokens de sesión del portal. La
// sesión vive en un JWT dentro de la cookie; cuando hay Redis, además se
// registra por su jti para poder revocarla en el logout.
package session

import (
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/Gomsss16/ArtemisaProyectFrontend/config"
	"github.com/Gomsss16/ArtemisaProyectFrontend/models"
)

// CookieName es la cookie donde viaja el token de sesión.
const CookieName = "artemisa_token"

// Claims son los datos de sesión dentro del token.
type Claims struct {
	Usuario string `json:"usuario"`
	Rol     string `json:"rol"`
	jwt.RegisteredClaims
}

// Issue crea el token de sesión del usuario. El registro en Redis es el
// mejor esfuerzo: si falla, la sesión sigue siendo válida por el token.
func Issue(usuario string, rol models.Role) (string, error) {
	now := time.Now()
	claims := Claims{
		Usuario: usuario,
		Rol:     string(rol),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(config.SessionTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(config.JwtKey)
	if err != nil {
		return "", errors.Wrap(err, "firmando el token de sesión")
	}

	if config.RDB != nil {
		key := "sesion:" + claims.ID
		if err := config.RDB.Set(config.Ctx, key, usuario, config.SessionTTL).Err(); err != nil {
			slog.Warn("No se pudo registrar la sesión en Redis", "error", err, "usuario", usuario)
		}
	}
	return token, nil
}

// Parse valida el token y devuelve sus claims. Con Redis presente, una
// sesión revocada (logout) deja de ser válida aunque el token no expire.
func Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return config.JwtKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("token de sesión inválido o expirado")
	}

	if config.RDB != nil {
		_, err := config.RDB.Get(config.Ctx, "sesion:"+claims.ID).Result()
		if err == redis.Nil {
			return nil, errors.New("la sesión fue cerrada")
		}
		if err != nil {
			// Una falla de Redis no tumba la autenticación: el token firmado
			// sigue siendo la fuente de verdad.
			slog.Error("Redis falló al validar la sesión", "error", err)
		}
	}
	return claims, nil
}

// Revoke elimina el registro de la sesión en Redis, si existe.
func Revoke(jti string) {
	if config.RDB == nil || jti == "" {
		return
	}
	if err := config.RDB.Del(config.Ctx, "sesion:"+jti).Err(); err != nil {
		slog.Warn("No se pudo eliminar el registro de la sesión", "error", err, "jti", jti)
	}
}
