package handlers

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/Gomsss16/ArtemisaProyectFrontend/internal/backend"
	"github.com/Gomsss16/ArtemisaProyectFrontend/internal/client"
	"github.com/Gomsss16/ArtemisaProyectFrontend/models"
)

// Recursos del backend que usan los handlers. Se construyen una sola vez en
// Init, al arrancar el portal.
var (
	eventos   *backend.Resource[models.Evento]
	libros    *backend.Resource[models.Libro]
	links     *backend.Resource[models.Link]
	problemas *backend.Resource[models.Problema]
	temarios  *backend.Resource[models.Temario]
	cuentas   *backend.Cuentas
)

// Init arma los recursos del backend sobre el cliente dado: rutas, campo
// título, identificador y validación de cada entidad.
func Init(c *client.Client) {
	eventos = &backend.Resource[models.Evento]{
		Nombre:  "evento",
		Cliente: c,
		Rutas: backend.Endpoints{
			List:        "/evento/getall",
			Create:      "/evento/createeventojson",
			Delete:      "/evento/deletebyTitle",
			DeleteParam: "title",
		},
		Titulo: func(e models.Evento) string { return e.Titulo },
		ID:     func(e models.Evento) *int64 { return e.ID },
		Validar: func(e models.Evento) error {
			if strings.TrimSpace(e.Titulo) == "" {
				return errors.New("El título es obligatorio")
			}
			if strings.TrimSpace(e.Fecha) == "" {
				return errors.New("La fecha es obligatoria")
			}
			if _, err := time.Parse(models.FormatoFecha, e.Fecha); err != nil {
				return errors.New("La fecha no tiene el formato esperado")
			}
			return nil
		},
	}

	libros = &backend.Resource[models.Libro]{
		Nombre:  "libro",
		Cliente: c,
		Subida:  true,
		Rutas: backend.Endpoints{
			List:        "/libro/getall",
			Create:      "/libro/createlibrojson",
			Delete:      "/libro/deletebyTitle",
			DeleteParam: "title",
		},
		Titulo: func(l models.Libro) string { return l.Titulo },
		ID:     func(l models.Libro) *int64 { return l.ID },
		Validar: func(l models.Libro) error {
			if strings.TrimSpace(l.Titulo) == "" {
				return errors.New("El título es obligatorio")
			}
			if strings.TrimSpace(l.Author) == "" {
				return errors.New("El autor es obligatorio")
			}
			return nil
		},
	}

	links = &backend.Resource[models.Link]{
		Nombre:  "link",
		Cliente: c,
		Subida:  true,
		Rutas: backend.Endpoints{
			List:        "/link/getall",
			Create:      "/link/createlinkjson",
			Delete:      "/link/deletebyTitle",
			DeleteParam: "title",
		},
		Titulo: func(l models.Link) string { return l.Titulo },
		ID:     func(l models.Link) *int64 { return l.ID },
		Validar: func(l models.Link) error {
			if strings.TrimSpace(l.Titulo) == "" {
				return errors.New("El título es obligatorio")
			}
			if strings.TrimSpace(l.Enlace) == "" {
				return errors.New("El enlace es obligatorio")
			}
			return nil
		},
	}

	problemas = &backend.Resource[models.Problema]{
		Nombre:  "problema",
		Cliente: c,
		Rutas: backend.Endpoints{
			List:        "/problema/getall",
			Create:      "/problema/createproblemajson",
			Delete:      "/problema/deletebyTitulo",
			DeleteParam: "titulo",
		},
		Titulo: func(p models.Problema) string { return p.Titulo },
		ID:     func(p models.Problema) *int64 { return p.ID },
		Validar: func(p models.Problema) error {
			if strings.TrimSpace(p.Titulo) == "" {
				return errors.New("El título es obligatorio")
			}
			if strings.TrimSpace(p.Tema) == "" {
				return errors.New("El tema es obligatorio")
			}
			if strings.TrimSpace(p.Juez) == "" {
				return errors.New("El juez es obligatorio")
			}
			if !models.JuezValido(p.Juez) {
				return errors.Errorf("El juez %q no está en el catálogo", p.Juez)
			}
			if p.Dificultad < 1 || p.Dificultad > 5 {
				return errors.New("La dificultad debe estar entre 1 y 5")
			}
			return nil
		},
	}

	temarios = &backend.Resource[models.Temario]{
		Nombre:  "temario",
		Cliente: c,
		Rutas: backend.Endpoints{
			List:        "/temario/getall",
			Create:      "/temario/createtemariojson",
			Delete:      "/temario/deletebyTema",
			DeleteParam: "temaAlgoritmo",
		},
		Titulo: func(t models.Temario) string { return t.TemaAlgoritmo },
		ID:     func(t models.Temario) *int64 { return t.ID },
		Validar: func(t models.Temario) error {
			if strings.TrimSpace(t.TemaAlgoritmo) == "" {
				return errors.New("El tema/algoritmo es obligatorio")
			}
			if strings.TrimSpace(t.Tipo) == "" {
				return errors.New("El tipo es obligatorio")
			}
			if !models.TipoTemarioValido(t.Tipo) {
				return errors.Errorf("El tipo %q no está en el catálogo", t.Tipo)
			}
			return nil
		},
	}

	cuentas = &backend.Cuentas{Cliente: c}
}
