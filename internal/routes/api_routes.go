package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Gomsss16/ArtemisaProyectFrontend/internal/handlers"
	"github.com/Gomsss16/ArtemisaProyectFrontend/internal/middleware"
)

// RegisterAPIRoutes registra los caminos que exigen sesión. Las lecturas
// quedan abiertas a cualquier rol; crear y eliminar pasan además por el
// permiso de edición (profesor y administrador).
func RegisterAPIRoutes(rg *gin.RouterGroup) {
	rg.GET("/logout", handlers.LogoutHandler)

	api := rg.Group("/api")
	{
		perfil := api.Group("/perfil")
		{
			perfil.GET("", handlers.GetPerfilHandler)
			perfil.POST("/imagen", handlers.ActualizarImagenHandler)
		}

		registrarRecurso(api, "/eventos", handlers.ListEventosHandler, handlers.CreateEventoHandler, handlers.DeleteEventoHandler)
		registrarRecurso(api, "/libros", handlers.ListLibrosHandler, handlers.CreateLibroHandler, handlers.DeleteLibroHandler)
		registrarRecurso(api, "/links", handlers.ListLinksHandler, handlers.CreateLinkHandler, handlers.DeleteLinkHandler)
		registrarRecurso(api, "/problemas", handlers.ListProblemasHandler, handlers.CreateProblemaHandler, handlers.DeleteProblemaHandler)
		registrarRecurso(api, "/temarios", handlers.ListTemariosHandler, handlers.CreateTemarioHandler, handlers.DeleteTemarioHandler)
	}
}

func registrarRecurso(api *gin.RouterGroup, path string, list, create, del gin.HandlerFunc) {
	grupo := api.Group(path)
	{
		grupo.GET("", list)

		edicion := grupo.Group("", middleware.RequiereEdicion())
		{
			edicion.POST("", create)
			edicion.DELETE("/:id", del)
		}
	}
}
