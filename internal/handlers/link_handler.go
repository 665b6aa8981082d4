package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Gomsss16/ArtemisaProyectFrontend/internal/backend"
	"github.com/Gomsss16/ArtemisaProyectFrontend/internal/notify"
	"github.com/Gomsss16/ArtemisaProyectFrontend/models"
)

const maxImagenLink = 5 << 20 // 5 MiB

// ListLinksHandler devuelve los enlaces valiosos.
func ListLinksHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": links.LoadAll(c.Request.Context())})
}

// CreateLinkHandler crea un enlace desde el formulario multipart; la imagen
// es opcional y viaja en base64.
func CreateLinkHandler(c *gin.Context) {
	imagen, err := archivoBase64(c, "imagen", maxImagenLink)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"notification": notify.Advertencia("Error", err.Error()),
		})
		return
	}

	link := models.Link{
		Titulo:       strings.TrimSpace(c.PostForm("titulo")),
		Descripcion:  strings.TrimSpace(c.PostForm("descripcion")),
		Enlace:       strings.TrimSpace(c.PostForm("enlace")),
		ImagenBase64: imagen,
	}

	ctx := c.Request.Context()
	res := links.Create(ctx, link)
	if !res.OK() {
		if res.Outcome == backend.Conflicto {
			res.Detalle = fmt.Sprintf("El link '%s' ya existe", link.Titulo)
		}
		c.JSON(estadoHTTP(res), gin.H{"notification": avisoDe(res, "")})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data":         links.LoadAll(ctx),
		"notification": notify.Exito(fmt.Sprintf("Link '%s' creado exitosamente", link.Titulo)),
	})
}

// DeleteLinkHandler elimina un enlace por id.
func DeleteLinkHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"notification": notify.Advertencia("Error", "El id del link no es válido"),
		})
		return
	}

	ctx := c.Request.Context()
	lista := links.LoadAll(ctx)
	res := links.DeleteByID(ctx, lista, id)
	if !res.OK() {
		c.JSON(estadoHTTP(res), gin.H{"notification": avisoDe(res, "")})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":         links.LoadAll(ctx),
		"notification": notify.Exito(fmt.Sprintf("Link '%s' eliminado", res.Detalle)),
	})
}
