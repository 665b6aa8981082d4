package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Gomsss16/ArtemisaProyectFrontend/internal/handlers"
)

// RegisterAuthRoutes registra los caminos públicos del portal.
func RegisterAuthRoutes(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)

	// Formulario de ingreso y registro. El registro nunca abre sesión.
	r.POST("/login", handlers.LoginHandler)
	r.POST("/register", handlers.RegisterHandler)
}
