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

// Límites de los archivos del formulario de libros.
const (
	maxPortada = 5 << 20  // 5 MiB
	maxPDF     = 25 << 20 // 25 MiB
)

// ListLibrosHandler devuelve los libros del material de estudio.
func ListLibrosHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": libros.LoadAll(c.Request.Context())})
}

// CreateLibroHandler crea un libro desde el formulario multipart: los
// campos de texto más la portada y el PDF, que viajan al backend en base64.
func CreateLibroHandler(c *gin.Context) {
	portada, err := archivoBase64(c, "portada", maxPortada)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"notification": notify.Advertencia("Error", err.Error()),
		})
		return
	}
	pdf, err := archivoBase64(c, "pdf", maxPDF)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"notification": notify.Advertencia("Error", err.Error()),
		})
		return
	}

	libro := models.Libro{
		Titulo:       strings.TrimSpace(c.PostForm("titulo")),
		Author:       strings.TrimSpace(c.PostForm("author")),
		Descripcion:  strings.TrimSpace(c.PostForm("descripcion")),
		Enlace:       strings.TrimSpace(c.PostForm("enlace")),
		ImagenBase64: portada,
		PdfBase64:    pdf,
	}

	ctx := c.Request.Context()
	res := libros.Create(ctx, libro)
	if !res.OK() {
		if res.Outcome == backend.Conflicto {
			res.Detalle = fmt.Sprintf("El libro '%s' ya existe", libro.Titulo)
		}
		c.JSON(estadoHTTP(res), gin.H{"notification": avisoDe(res, "")})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data":         libros.LoadAll(ctx),
		"notification": notify.Exito(fmt.Sprintf("Libro '%s' creado exitosamente", libro.Titulo)),
	})
}

// DeleteLibroHandler elimina un libro por id.
func DeleteLibroHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"notification": notify.Advertencia("Error", "El id del libro no es válido"),
		})
		return
	}

	ctx := c.Request.Context()
	lista := libros.LoadAll(ctx)
	res := libros.DeleteByID(ctx, lista, id)
	if !res.OK() {
		c.JSON(estadoHTTP(res), gin.H{"notification": avisoDe(res, "")})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":         libros.LoadAll(ctx),
		"notification": notify.Exito(fmt.Sprintf("Libro '%s' eliminado", res.Detalle)),
	})
}
