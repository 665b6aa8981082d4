package handlers

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Gomsss16/ArtemisaProyectFrontend/config"
	"github.com/Gomsss16/ArtemisaProyectFrontend/internal/notify"
	"github.com/Gomsss16/ArtemisaProyectFrontend/models"
)

const maxImagenPerfil = 5 << 20 // 5 MiB

// GetPerfilHandler arma el perfil del usuario de la sesión: identidad,
// color e ícono del rol y la imagen de perfil.
func GetPerfilHandler(c *gin.Context) {
	usuario, rol := identidad(c)

	c.JSON(http.StatusOK, gin.H{
		"usuario": usuario,
		"rol":     rol,
		"color":   rol.Color(),
		"icono":   rol.Icono(),
		"imagen":  imagenDePerfil(c.Request.Context(), usuario, rol),
	})
}

// ActualizarImagenHandler sube la imagen de perfil al backend del rol y
// refresca la copia cacheada.
func ActualizarImagenHandler(c *gin.Context) {
	usuario, rol := identidad(c)

	imagen, err := archivoBase64(c, "imagen", maxImagenPerfil)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"notification": notify.Advertencia("Error", err.Error()),
		})
		return
	}
	if imagen == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"notification": notify.Advertencia("Advertencia", "Por favor selecciona una imagen"),
		})
		return
	}

	res := cuentas.ActualizarImagen(c.Request.Context(), usuario, imagen, rol)
	if !res.OK() {
		slog.Warn("No se pudo actualizar la imagen de perfil", "usuario", usuario, "detalle", res.Detalle)
		c.JSON(estadoHTTP(res), gin.H{
			"notification": notify.Critico("Error actualizando la imagen de perfil"),
		})
		return
	}

	dataURI := "data:image/*;base64," + imagen
	guardarImagenCacheada(usuario, rol, dataURI)

	c.JSON(http.StatusOK, gin.H{
		"imagen":       dataURI,
		"notification": notify.Exito("Imagen de perfil actualizada correctamente"),
	})
}

// imagenDePerfil resuelve la imagen del usuario: primero la copia cacheada
// de la sesión, luego el backend y, si no hay imagen, el avatar generado.
func imagenDePerfil(ctx context.Context, usuario string, rol models.Role) string {
	if config.RDB != nil {
		cached, err := config.RDB.Get(config.Ctx, claveImagen(usuario, rol)).Result()
		if err == nil && cached != "" {
			return cached
		}
	}

	b64, err := cuentas.ObtenerImagen(ctx, usuario, rol)
	if err != nil {
		slog.Warn("No se pudo obtener la imagen de perfil", "usuario", usuario, "error", err)
	}

	dataURI := avatarGenerado(usuario, rol)
	if b64 != "" {
		dataURI = "data:image/*;base64," + b64
	}
	guardarImagenCacheada(usuario, rol, dataURI)
	return dataURI
}

// claveImagen lleva el rol porque las tres familias de cuentas son espacios
// de nombres distintos en el backend: puede existir la misma "maria" como
// estudiante y como profesora, cada una con su imagen.
func claveImagen(usuario string, rol models.Role) string {
	return "perfil:" + string(rol) + ":" + usuario + ":imagen"
}

func guardarImagenCacheada(usuario string, rol models.Role, dataURI string) {
	if config.RDB == nil {
		return
	}
	if err := config.RDB.Set(config.Ctx, claveImagen(usuario, rol), dataURI, config.SessionTTL).Err(); err != nil {
		slog.Warn("No se pudo cachear la imagen de perfil", "usuario", usuario, "error", err)
	}
}

// avatarGenerado produce el avatar por defecto: un SVG con la inicial del
// usuario sobre el color del rol, codificado como data URI.
func avatarGenerado(usuario string, rol models.Role) string {
	inicial := "?"
	if t := strings.TrimSpace(usuario); t != "" {
		inicial = strings.ToUpper(string([]rune(t)[0]))
	}

	svg := fmt.Sprintf("<svg xmlns='http://www.w3.org/2000/svg' width='120' height='120' viewBox='0 0 120 120'>"+
		"<circle cx='60' cy='60' r='60' fill='%s'/>"+
		"<text x='60' y='78' font-size='52' font-family='sans-serif' fill='#fff' text-anchor='middle'>%s</text>"+
		"</svg>", rol.Color(), inicial)

	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}
