package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Gomsss16/ArtemisaProyectFrontend/config"
	"github.com/Gomsss16/ArtemisaProyectFrontend/internal/backend"
	"github.com/Gomsss16/ArtemisaProyectFrontend/internal/notify"
	"github.com/Gomsss16/ArtemisaProyectFrontend/internal/session"
	"github.com/Gomsss16/ArtemisaProyectFrontend/models"
)

// CredencialEntrada es el formulario de ingreso y de registro.
type CredencialEntrada struct {
	Usuario             string `json:"usuario" form:"usuario"`
	Contrasenia         string `json:"contrasenia" form:"contrasenia"`
	ConfirmarContrasena string `json:"confirmarContrasena" form:"confirmarContrasena"`
	NivelDePermiso      string `json:"nivelDePermiso" form:"nivelDePermiso"`
	FechaDeNacimiento   string `json:"fechaDeNacimiento" form:"fechaDeNacimiento"`
}

// LoginHandler valida el formulario, consulta el backend del rol elegido y
// abre la sesión si las credenciales son correctas. Un intento fallido no
// toca la sesión.
func LoginHandler(c *gin.Context) {
	var in CredencialEntrada
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"notification": notify.Sticky(notify.Advertencia("Error", "Formulario ilegible")),
		})
		return
	}

	if enBlanco(in.Usuario) || enBlanco(in.Contrasenia) || enBlanco(in.NivelDePermiso) {
		c.JSON(http.StatusBadRequest, gin.H{
			"notification": notify.Sticky(notify.Advertencia("Error", "Usuario, contraseña y rol son obligatorios")),
		})
		return
	}

	rol := models.ParseRole(in.NivelDePermiso)
	if !rol.Valido() {
		c.JSON(http.StatusBadRequest, gin.H{
			"notification": notify.Sticky(notify.Advertencia("Error", "Debe seleccionar un rol válido")),
		})
		return
	}

	cred := models.Credencial{
		Usuario:        strings.TrimSpace(in.Usuario),
		Contrasenia:    in.Contrasenia,
		NivelDePermiso: string(rol),
	}
	res := cuentas.Login(c.Request.Context(), cred)
	if !res.OK() {
		var msg notify.Message
		switch res.Outcome {
		case backend.NoEncontrado:
			msg = notify.Advertencia("Error", "Usuario no encontrado")
		case backend.Indisponible:
			msg = notify.Critico("El servidor no está disponible, intente más tarde")
		default:
			msg = notify.Advertencia("Error", "Credenciales incorrectas")
		}
		c.JSON(estadoHTTP(res), gin.H{
			"notification": notify.Sticky(msg),
		})
		return
	}

	token, err := session.Issue(cred.Usuario, rol)
	if err != nil {
		slog.Error("No se pudo emitir el token de sesión", "error", err, "usuario", cred.Usuario)
		c.JSON(http.StatusInternalServerError, gin.H{
			"notification": notify.Sticky(notify.Critico("No se pudo abrir la sesión")),
		})
		return
	}

	c.SetCookie(session.CookieName, token, int(config.SessionTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"outcome": "temario?faces-redirect=true",
		"usuario": cred.Usuario,
		"rol":     rol,
		"notification": notify.Sticky(notify.Exito(
			fmt.Sprintf("Bienvenido %s", cred.Usuario))),
	})
}

// RegisterHandler crea la cuenta en el backend del rol elegido. El registro
// nunca abre sesión: el usuario debe ingresar después.
func RegisterHandler(c *gin.Context) {
	var in CredencialEntrada
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"notification": notify.Sticky(notify.Advertencia("Error", "Formulario ilegible")),
		})
		return
	}

	var detalle string
	switch {
	case enBlanco(in.Usuario) || enBlanco(in.Contrasenia) || enBlanco(in.NivelDePermiso):
		detalle = "Usuario, contraseña y rol son obligatorios"
	case in.Contrasenia != in.ConfirmarContrasena:
		detalle = "Las contraseñas no coinciden"
	case len(in.Contrasenia) < 6:
		detalle = "La contraseña debe tener al menos 6 caracteres"
	case !models.ParseRole(in.NivelDePermiso).Valido():
		detalle = "Debe seleccionar un rol válido"
	}
	if detalle != "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"notification": notify.Sticky(notify.Advertencia("Error", detalle)),
		})
		return
	}

	cred := models.Credencial{
		Usuario:           strings.TrimSpace(in.Usuario),
		Contrasenia:       in.Contrasenia,
		NivelDePermiso:    in.NivelDePermiso,
		FechaDeNacimiento: strings.TrimSpace(in.FechaDeNacimiento),
	}
	res := cuentas.Registrar(c.Request.Context(), cred)
	if !res.OK() {
		var msg notify.Message
		switch res.Outcome {
		case backend.Conflicto:
			msg = notify.Advertencia("Error", fmt.Sprintf("El usuario '%s' ya existe", cred.Usuario))
		case backend.NoAceptable:
			msg = notify.Advertencia("Error", "Los datos no fueron aceptados")
		default:
			msg = notify.Critico("Error al crear la cuenta, comuníquese con el administrador")
		}
		c.JSON(estadoHTTP(res), gin.H{"notification": notify.Sticky(msg)})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"notification": notify.Sticky(notify.Exito("Registro exitoso, ya puede iniciar sesión")),
	})
}

// LogoutHandler cierra la sesión: revoca el registro en Redis y borra la
// cookie.
func LogoutHandler(c *gin.Context) {
	session.Revoke(c.GetString("jti"))
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"outcome":      "index?faces-redirect=true",
		"notification": notify.Exito("Sesión cerrada"),
	})
}
