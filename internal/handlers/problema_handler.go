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

// ProblemaEntrada es el formulario de creación de problemas.
type ProblemaEntrada struct {
	Titulo     string `json:"titulo" form:"titulo"`
	Dificultad int    `json:"dificultad" form:"dificultad"`
	Tema       string `json:"tema" form:"tema"`
	Juez       string `json:"juez" form:"juez"`
	Link       string `json:"link" form:"link"`
}

// ListProblemasHandler devuelve los problemas junto con el catálogo de
// jueces para el formulario.
func ListProblemasHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data":   problemas.LoadAll(c.Request.Context()),
		"jueces": models.Jueces,
	})
}

// CreateProblemaHandler crea un problema y devuelve la lista recargada.
func CreateProblemaHandler(c *gin.Context) {
	var in ProblemaEntrada
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"notification": notify.Advertencia("Error", "Formulario ilegible"),
		})
		return
	}

	// La dificultad se recorta al rango 1-5 en vez de rechazarse.
	dificultad := in.Dificultad
	if dificultad < 1 {
		dificultad = 1
	} else if dificultad > 5 {
		dificultad = 5
	}

	problema := models.Problema{
		Titulo:     strings.TrimSpace(in.Titulo),
		Dificultad: dificultad,
		Tema:       strings.TrimSpace(in.Tema),
		Juez:       strings.TrimSpace(in.Juez),
		Link:       strings.TrimSpace(in.Link),
	}

	ctx := c.Request.Context()
	res := problemas.Create(ctx, problema)
	if !res.OK() {
		if res.Outcome == backend.Conflicto {
			res.Detalle = fmt.Sprintf("El problema '%s' ya existe", problema.Titulo)
		}
		c.JSON(estadoHTTP(res), gin.H{"notification": avisoDe(res, "")})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data":         problemas.LoadAll(ctx),
		"notification": notify.Exito(fmt.Sprintf("Problema '%s' creado exitosamente", problema.Titulo)),
	})
}

// DeleteProblemaHandler elimina un problema por id.
func DeleteProblemaHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"notification": notify.Advertencia("Error", "El id del problema no es válido"),
		})
		return
	}

	ctx := c.Request.Context()
	lista := problemas.LoadAll(ctx)
	res := problemas.DeleteByID(ctx, lista, id)
	if !res.OK() {
		c.JSON(estadoHTTP(res), gin.H{"notification": avisoDe(res, "")})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":         problemas.LoadAll(ctx),
		"notification": notify.Exito(fmt.Sprintf("Problema '%s' eliminado", res.Detalle)),
	})
}
