package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"github.com/Gomsss16/ArtemisaProyectFrontend/internal/client"
	"github.com/Gomsss16/ArtemisaProyectFrontend/models"
)

// Cuentas agrupa las operaciones de cuentas del backend. Las tres familias
// de rutas (/admin, /profesor, /estudiante) exponen las mismas operaciones;
// el rol de la credencial decide cuál se consulta.
type Cuentas struct {
	Cliente *client.Client
}

// familia devuelve el prefijo de rutas y el segmento del nombre de las
// operaciones del rol ("/admin" y "admin" para el administrador).
func familia(rol models.Role) (prefijo, segmento string, ok bool) {
	switch rol {
	case models.RolAdministrador:
		return "/admin", "admin", true
	case models.RolProfesor:
		return "/profesor", "profesor", true
	case models.RolEstudiante:
		return "/estudiante", "estudiante", true
	}
	return "", "", false
}

// Login verifica la credencial contra el backend del rol elegido.
func (s *Cuentas) Login(ctx context.Context, cred models.Credencial) Result {
	prefijo, segmento, ok := familia(models.ParseRole(cred.NivelDePermiso))
	if !ok {
		return Result{Outcome: Invalido, Detalle: "debe seleccionar un rol válido"}
	}
	resp, err := s.Cliente.PostJSON(ctx, prefijo+"/login"+segmento, cred)
	return Classify(resp, err)
}

// Registrar crea la cuenta en el backend del rol elegido. El registro nunca
// abre sesión; eso queda en manos del handler de login.
func (s *Cuentas) Registrar(ctx context.Context, cred models.Credencial) Result {
	prefijo, segmento, ok := familia(models.ParseRole(cred.NivelDePermiso))
	if !ok {
		return Result{Outcome: Invalido, Detalle: "debe seleccionar un rol válido"}
	}
	resp, err := s.Cliente.PostJSON(ctx, prefijo+"/create"+segmento+"json", cred)
	return Classify(resp, err)
}

// ObtenerImagen trae la imagen de perfil en base64, o cadena vacía si el
// usuario no tiene imagen guardada.
func (s *Cuentas) ObtenerImagen(ctx context.Context, usuario string, rol models.Role) (string, error) {
	prefijo, _, ok := familia(rol)
	if !ok {
		return "", errors.Errorf("el rol %q no tiene imágenes de perfil", rol)
	}

	query := url.Values{}
	query.Set("usuario", usuario)

	resp, err := s.Cliente.Get(ctx, prefijo+"/obtenerImagen", query)
	if err != nil {
		return "", err
	}
	if resp.StatusCode == http.StatusNotFound {
		return "", nil
	}
	if !resp.OK() {
		return "", errors.Errorf("respuesta %d al pedir la imagen de perfil", resp.StatusCode)
	}

	var payload models.ImagenPerfil
	if err := json.Unmarshal(resp.Body, &payload); err != nil {
		return "", errors.Wrap(err, "imagen de perfil ilegible")
	}
	return payload.ImagenBase64, nil
}

// ActualizarImagen guarda la imagen de perfil del usuario en el backend.
func (s *Cuentas) ActualizarImagen(ctx context.Context, usuario, imagenBase64 string, rol models.Role) Result {
	prefijo, _, ok := familia(rol)
	if !ok {
		return Result{Outcome: Invalido, Detalle: "rol no válido"}
	}
	payload := models.ImagenPerfil{Usuario: usuario, ImagenBase64: imagenBase64}
	resp, err := s.Cliente.UploadJSON(ctx, prefijo+"/actualizarImagen", payload)
	return Classify(resp, err)
}
