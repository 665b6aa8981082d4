package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Gomsss16/ArtemisaProyectFrontend/internal/middleware"
)

// SetupRouter arma el motor con todos los caminos del portal.
func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Primero los caminos públicos: ingreso, registro y la sonda de vida.
	RegisterAuthRoutes(r)

	// Todo lo demás exige sesión abierta.
	autenticado := r.Group("/")
	autenticado.Use(middleware.Sesion())
	{
		RegisterAPIRoutes(autenticado)
	}

	return r
}
