// Package backend implementa las operaciones del portal sobre el backend
// REST de Artemisa: el recurso genérico de listar/crear/eliminar que antes
// estaba repetido en cada bean, y las operaciones de cuentas por rol.
package backend

import (
	"fmt"
	"net/http"

	"github.com/Gomsss16/ArtemisaProyectFrontend/internal/client"
)

// Outcome es el desenlace clasificado de una operación contra el backend.
// La clasificación sale únicamente del código de estado HTTP, nunca de
// buscar frases dentro del cuerpo de la respuesta.
type Outcome int

const (
	// Fallo es cualquier respuesta no clasificada del backend.
	Fallo Outcome = iota
	// Hecho es un 200/202.
	Hecho
	// Creado es un 201.
	Creado
	// Conflicto es un 409: el recurso ya existe.
	Conflicto
	// NoEncontrado es un 404.
	NoEncontrado
	// NoAutorizado es un 401: credenciales incorrectas.
	NoAutorizado
	// NoAceptable es un 406: el backend rechazó los datos.
	NoAceptable
	// Invalido es un rechazo local de validación; no hubo llamada de red.
	Invalido
	// Indisponible es un fallo de transporte: el backend no respondió.
	Indisponible
)

// Result es lo que una operación le devuelve a los handlers.
type Result struct {
	Outcome Outcome
	Detalle string
}

// OK indica si la operación terminó bien.
func (r Result) OK() bool {
	return r.Outcome == Hecho || r.Outcome == Creado
}

// Classify convierte la respuesta del transporte en un Result.
func Classify(resp *client.Response, err error) Result {
	if err != nil {
		return Result{Outcome: Indisponible, Detalle: "el servidor no está disponible"}
	}
	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted:
		return Result{Outcome: Hecho}
	case http.StatusCreated:
		return Result{Outcome: Creado}
	case http.StatusUnauthorized:
		return Result{Outcome: NoAutorizado, Detalle: "credenciales incorrectas"}
	case http.StatusNotFound:
		return Result{Outcome: NoEncontrado, Detalle: "no encontrado"}
	case http.StatusConflict:
		return Result{Outcome: Conflicto, Detalle: "ya existe"}
	case http.StatusNotAcceptable:
		return Result{Outcome: NoAceptable, Detalle: "datos no aceptables"}
	}
	return Result{Outcome: Fallo, Detalle: fmt.Sprintf("respuesta %d del servidor", resp.StatusCode)}
}
