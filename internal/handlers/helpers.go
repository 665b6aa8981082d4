package handlers

import (
	"encoding/base64"
	"io"
	"net/http"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/Gomsss16/ArtemisaProyectFrontend/internal/backend"
	"github.com/Gomsss16/ArtemisaProyectFrontend/internal/notify"
	"github.com/Gomsss16/ArtemisaProyectFrontend/models"
)

// HealthHandler responde la sonda de vida del portal.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// identidad extrae el usuario y el rol que dejó el middleware de sesión.
// Sin sesión, el rol es invitado y no tiene ningún permiso.
func identidad(c *gin.Context) (string, models.Role) {
	usuario := c.GetString("usuario")
	rol := models.RolInvitado
	if v, ok := c.Get("rol"); ok {
		if r, ok := v.(models.Role); ok {
			rol = r
		}
	}
	return usuario, rol
}

// avisoDe traduce el resultado de una operación al growl correspondiente.
// El detalle de éxito lo pone cada handler; el resto sale del resultado.
func avisoDe(res backend.Result, exito string) notify.Message {
	switch res.Outcome {
	case backend.Hecho, backend.Creado:
		return notify.Exito(exito)
	case backend.Conflicto:
		return notify.Advertencia("Advertencia", res.Detalle)
	case backend.NoEncontrado:
		return notify.Advertencia("No Encontrado", res.Detalle)
	case backend.Invalido, backend.NoAceptable, backend.NoAutorizado:
		return notify.Advertencia("Error", res.Detalle)
	}
	return notify.Critico("Error al procesar la solicitud, comuníquese con el administrador")
}

// estadoHTTP elige el código con el que el portal responde según el
// desenlace de la operación contra el backend.
func estadoHTTP(res backend.Result) int {
	switch res.Outcome {
	case backend.Creado:
		return http.StatusCreated
	case backend.Hecho:
		return http.StatusOK
	case backend.Invalido:
		return http.StatusBadRequest
	case backend.Conflicto:
		return http.StatusConflict
	case backend.NoEncontrado:
		return http.StatusNotFound
	case backend.NoAutorizado:
		return http.StatusUnauthorized
	case backend.NoAceptable:
		return http.StatusNotAcceptable
	}
	return http.StatusBadGateway
}

// archivoBase64 lee un archivo del formulario multipart y lo devuelve
// codificado en base64. Si el campo no vino, devuelve cadena vacía sin
// error; si supera el límite, el error ya trae el tamaño legible.
func archivoBase64(c *gin.Context, campo string, limite int64) (string, error) {
	file, err := c.FormFile(campo)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", errors.Wrapf(err, "leyendo el archivo %q", campo)
	}
	if file.Size > limite {
		return "", errors.Errorf("El archivo %q supera el límite de %s", campo, humanize.IBytes(uint64(limite)))
	}

	f, err := file.Open()
	if err != nil {
		return "", errors.Wrapf(err, "abriendo el archivo %q", campo)
	}
	defer f.Close()

	datos, err := io.ReadAll(f)
	if err != nil {
		return "", errors.Wrapf(err, "leyendo el contenido de %q", campo)
	}
	return base64.StdEncoding.EncodeToString(datos), nil
}

func enBlanco(s string) bool {
	return strings.TrimSpace(s) == ""
}
