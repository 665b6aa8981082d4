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

// TemarioEntrada es el formulario de creación de entradas del temario.
type TemarioEntrada struct {
	TemaAlgoritmo string `json:"temaAlgoritmo" form:"temaAlgoritmo"`
	Tipo          string `json:"tipo" form:"tipo"`
	Contenido     string `json:"contenido" form:"contenido"`
	Codigo        string `json:"codigo" form:"codigo"`
}

// ListTemariosHandler devuelve el temario junto con el catálogo de tipos.
func ListTemariosHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data":  temarios.LoadAll(c.Request.Context()),
		"tipos": models.TiposTemario,
	})
}

// CreateTemarioHandler crea una entrada del temario.
func CreateTemarioHandler(c *gin.Context) {
	var in TemarioEntrada
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"notification": notify.Advertencia("Error", "Formulario ilegible"),
		})
		return
	}

	temario := models.Temario{
		TemaAlgoritmo: strings.TrimSpace(in.TemaAlgoritmo),
		Tipo:          strings.TrimSpace(in.Tipo),
		Contenido:     strings.TrimSpace(in.Contenido),
		Codigo:        strings.TrimSpace(in.Codigo),
	}

	ctx := c.Request.Context()
	res := temarios.Create(ctx, temario)
	if !res.OK() {
		if res.Outcome == backend.Conflicto {
			res.Detalle = fmt.Sprintf("El temario '%s' ya existe", temario.TemaAlgoritmo)
		}
		c.JSON(estadoHTTP(res), gin.H{"notification": avisoDe(res, "")})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data":         temarios.LoadAll(ctx),
		"notification": notify.Exito(fmt.Sprintf("Temario '%s' creado exitosamente", temario.TemaAlgoritmo)),
	})
}

// DeleteTemarioHandler elimina una entrada del temario por id.
func DeleteTemarioHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"notification": notify.Advertencia("Error", "El id del temario no es válido"),
		})
		return
	}

	ctx := c.Request.Context()
	lista := temarios.LoadAll(ctx)
	res := temarios.DeleteByID(ctx, lista, id)
	if !res.OK() {
		c.JSON(estadoHTTP(res), gin.H{"notification": avisoDe(res, "")})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":         temarios.LoadAll(ctx),
		"notification": notify.Exito(fmt.Sprintf("Temario '%s' eliminado", res.Detalle)),
	})
}
