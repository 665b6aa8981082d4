package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Gomsss16/ArtemisaProyectFrontend/internal/session"
	"github.com/Gomsss16/ArtemisaProyectFrontend/models"
)

// Sesion es el guardia de acceso de las vistas protegidas. Lee el token de
// la cookie (o del encabezado Authorization como alternativa), lo valida y
// deja usuario y rol en el contexto de la petición.
func Sesion() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(session.CookieName)
		if err != nil || tokenStr == "" {
			authHeader := c.GetHeader("Authorization")
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				denegar(c, "sesión no iniciada")
				return
			}
			tokenStr = parts[1]
		}

		claims, err := session.Parse(tokenStr)
		if err != nil {
			c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
			denegar(c, "sesión inválida o expirada")
			return
		}

		c.Set("usuario", claims.Usuario)
		c.Set("rol", models.ParseRole(claims.Rol))
		c.Set("jti", claims.ID)
		c.Next()
	}
}

// RequiereEdicion corta las peticiones de roles sin permiso de edición.
// Un rol ausente o desconocido nunca pasa: el valor cero de Permisos lo
// niega todo.
func RequiereEdicion() gin.HandlerFunc {
	return func(c *gin.Context) {
		rol := models.RolInvitado
		if v, ok := c.Get("rol"); ok {
			if r, ok := v.(models.Role); ok {
				rol = r
			}
		}
		if !rol.Permisos().PuedeEditar {
			c.JSON(http.StatusForbidden, gin.H{"error": "su rol no permite esta operación"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// denegar responde según el cliente: los navegadores vuelven a la página de
// entrada, las llamadas de API reciben 401.
func denegar(c *gin.Context, motivo string) {
	if strings.Contains(c.GetHeader("Accept"), "text/html") {
		c.Redirect(http.StatusFound, "/")
	} else {
		c.JSON(http.StatusUnauthorized, gin.H{"error": motivo})
	}
	c.Abort()
}
