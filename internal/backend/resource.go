package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/Gomsss16/ArtemisaProyectFrontend/internal/client"
)

// Endpoints son los caminos REST de un recurso del backend. El borrado es
// por nombre, no por id: DeleteParam es el parámetro de consulta que lleva
// el título ("title", "titulo" o "temaAlgoritmo" según la entidad).
type Endpoints struct {
	List        string
	Create      string
	Delete      string
	DeleteParam string
}

// Resource reúne las operaciones que los beans originales repetían entidad
// por entidad: cargar la lista, crear con validación previa y eliminar por
// id resolviendo el título contra la lista vigente.
type Resource[T any] struct {
	// Nombre de la entidad en minúscula, para logs y mensajes.
	Nombre  string
	Cliente *client.Client
	Rutas   Endpoints
	// Subida marca los recursos cuyos cuerpos llevan archivos en base64 y
	// necesitan el límite de tiempo largo.
	Subida bool

	// Titulo extrae el campo tipo título: filtra la lista y resuelve el
	// borrado por nombre.
	Titulo func(T) string
	// ID extrae el identificador asignado por el backend, o nil si la
	// entidad aún no está persistida.
	ID func(T) *int64
	// Validar rechaza la entidad antes de tocar la red; nil si es válida.
	Validar func(T) error
}

// LoadAll carga la lista del backend. Nunca devuelve error: cualquier fallo
// de red, de estado o de formato degrada a una lista vacía para que la
// vista siempre pueda pintarse, y queda registrado en el log. Las entradas
// con título en blanco se descartan.
func (r *Resource[T]) LoadAll(ctx context.Context) []T {
	resp, err := r.Cliente.Get(ctx, r.Rutas.List, nil)
	if err != nil {
		slog.Warn("No se pudo cargar la lista", "recurso", r.Nombre, "error", err)
		return []T{}
	}
	if !resp.OK() {
		slog.Warn("El backend respondió con error al listar", "recurso", r.Nombre, "status", resp.StatusCode)
		return []T{}
	}

	body := bytes.TrimSpace(resp.Body)
	if len(body) == 0 || bytes.Equal(body, []byte("[]")) {
		return []T{}
	}

	var lista []T
	if err := json.Unmarshal(body, &lista); err != nil {
		slog.Error("Respuesta de lista ilegible", "recurso", r.Nombre, "error", err)
		return []T{}
	}

	validos := make([]T, 0, len(lista))
	for _, item := range lista {
		if strings.TrimSpace(r.Titulo(item)) == "" {
			continue
		}
		validos = append(validos, item)
	}
	return validos
}

// Create valida la entidad y la envía al backend. Una validación fallida
// devuelve Invalido sin tocar la red.
func (r *Resource[T]) Create(ctx context.Context, item T) Result {
	if err := r.Validar(item); err != nil {
		return Result{Outcome: Invalido, Detalle: err.Error()}
	}

	var (
		resp *client.Response
		err  error
	)
	if r.Subida {
		resp, err = r.Cliente.UploadJSON(ctx, r.Rutas.Create, item)
	} else {
		resp, err = r.Cliente.PostJSON(ctx, r.Rutas.Create, item)
	}

	res := Classify(resp, err)
	if !res.OK() {
		slog.Warn("No se pudo crear", "recurso", r.Nombre, "detalle", res.Detalle)
	}
	return res
}

// DeleteByID busca el id en la lista vigente para recuperar el título y
// borra por nombre en el backend. Si el id no está en la lista no hay
// llamada de red. En caso de éxito, Detalle trae el título eliminado.
func (r *Resource[T]) DeleteByID(ctx context.Context, items []T, id int64) Result {
	var objetivo *T
	for i := range items {
		if pid := r.ID(items[i]); pid != nil && *pid == id {
			objetivo = &items[i]
			break
		}
	}
	if objetivo == nil {
		return Result{
			Outcome: NoEncontrado,
			Detalle: fmt.Sprintf("no se encontró el %s con id %d", r.Nombre, id),
		}
	}

	titulo := r.Titulo(*objetivo)
	query := url.Values{}
	query.Set(r.Rutas.DeleteParam, titulo)

	resp, err := r.Cliente.Delete(ctx, r.Rutas.Delete, query)
	res := Classify(resp, err)
	if res.OK() {
		res.Detalle = titulo
	} else {
		slog.Warn("No se pudo eliminar", "recurso", r.Nombre, "titulo", titulo, "detalle", res.Detalle)
	}
	return res
}
