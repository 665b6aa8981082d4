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

// EventoEntrada es el formulario de creación de eventos. La fecha llega en
// el formato del backend ("yyyy-MM-dd HH:mm:ss").
type EventoEntrada struct {
	Titulo      string `json:"titulo" form:"titulo"`
	Descripcion string `json:"descripcion" form:"descripcion"`
	Tipo        string `json:"tipo" form:"tipo"`
	Fecha       string `json:"fecha" form:"fecha"`
	Enlace      string `json:"enlace" form:"enlace"`
	Ubicacion   string `json:"ubicacion" form:"ubicacion"`
}

// ListEventosHandler devuelve los eventos y las entradas derivadas del
// calendario, con la etiqueta y la clase de estilo de cada tipo.
func ListEventosHandler(c *gin.Context) {
	lista := eventos.LoadAll(c.Request.Context())

	calendario := make([]gin.H, 0, len(lista))
	for _, e := range lista {
		calendario = append(calendario, gin.H{
			"titulo":      e.Titulo,
			"descripcion": e.Descripcion,
			"fecha":       e.Fecha,
			"ubicacion":   e.Ubicacion,
			"etiqueta":    e.TipoEtiqueta(),
			"styleClass":  e.ClaseEstilo(),
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": lista, "calendario": calendario})
}

// CreateEventoHandler crea un evento y devuelve la lista recargada.
func CreateEventoHandler(c *gin.Context) {
	var in EventoEntrada
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"notification": notify.Advertencia("Error", "Formulario ilegible"),
		})
		return
	}

	tipo := strings.TrimSpace(in.Tipo)
	if tipo == "" {
		tipo = "evento"
	}
	evento := models.Evento{
		Titulo:      strings.TrimSpace(in.Titulo),
		Descripcion: strings.TrimSpace(in.Descripcion),
		Tipo:        tipo,
		Fecha:       strings.TrimSpace(in.Fecha),
		Enlace:      strings.TrimSpace(in.Enlace),
		Ubicacion:   strings.TrimSpace(in.Ubicacion),
	}

	ctx := c.Request.Context()
	res := eventos.Create(ctx, evento)
	if !res.OK() {
		if res.Outcome == backend.Conflicto {
			res.Detalle = fmt.Sprintf("El evento '%s' ya existe", evento.Titulo)
		}
		c.JSON(estadoHTTP(res), gin.H{"notification": avisoDe(res, "")})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data":         eventos.LoadAll(ctx),
		"notification": notify.Exito(fmt.Sprintf("Evento '%s' creado exitosamente", evento.Titulo)),
	})
}

// DeleteEventoHandler elimina un evento por id, resolviendo el título
// contra la lista vigente.
func DeleteEventoHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"notification": notify.Advertencia("Error", "El id del evento no es válido"),
		})
		return
	}

	ctx := c.Request.Context()
	lista := eventos.LoadAll(ctx)
	res := eventos.DeleteByID(ctx, lista, id)
	if !res.OK() {
		c.JSON(estadoHTTP(res), gin.H{"notification": avisoDe(res, "")})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":         eventos.LoadAll(ctx),
		"notification": notify.Exito(fmt.Sprintf("Evento '%s' eliminado", res.Detalle)),
	})
}
