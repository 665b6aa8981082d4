package handlers

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/Gomsss16/ArtemisaProyectFrontend/models"
)

func TestClaveImagenSeparaLosRoles(t *testing.T) {
	// La misma "maria" puede existir como estudiante y como profesora; cada
	// cuenta tiene su propia imagen cacheada.
	a := claveImagen("maria", models.RolEstudiante)
	b := claveImagen("maria", models.RolProfesor)
	if a == b {
		t.Errorf("la clave de caché no distingue el rol: %q", a)
	}
	if !strings.Contains(a, "maria") {
		t.Errorf("la clave no lleva el usuario: %q", a)
	}
}

func TestAvatarGeneradoLlevaInicialYColor(t *testing.T) {
	dataURI := avatarGenerado("maria", models.RolEstudiante)

	const prefijo = "data:image/svg+xml;base64,"
	if !strings.HasPrefix(dataURI, prefijo) {
		t.Fatalf("avatar = %q, se esperaba un data URI SVG", dataURI)
	}

	svg, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURI, prefijo))
	if err != nil {
		t.Fatalf("el avatar no es base64 válido: %v", err)
	}
	if !strings.Contains(string(svg), "#28a745") {
		t.Error("el avatar no usa el color del rol estudiante")
	}
	if !strings.Contains(string(svg), ">M<") {
		t.Error("el avatar no lleva la inicial del usuario")
	}
}
