package models

import "strings"

// FormatoFecha es el formato con el que el backend transporta las fechas de
// los eventos ("yyyy-MM-dd HH:mm:ss").
const FormatoFecha = "2006-01-02 15:04:05"

// Evento es un evento del calendario del semillero: competencias, talleres,
// hackathones y conferencias. El id lo asigna el backend al persistirlo.
type Evento struct {
	ID          *int64 `json:"id,omitempty"`
	Titulo      string `json:"titulo"`
	Descripcion string `json:"descripcion"`
	Tipo        string `json:"tipo"`
	Fecha       string `json:"fecha"`
	Enlace      string `json:"enlace"`
	Ubicacion   string `json:"ubicacion"`
}

// TipoEtiqueta devuelve el nombre visible del tipo de evento.
func (e Evento) TipoEtiqueta() string {
	switch strings.ToLower(e.Tipo) {
	case "acm":
		return "Competencia ACM"
	case "taller":
		return "Taller"
	case "hackathon":
		return "Hackathon"
	case "conferencia":
		return "Conferencia"
	}
	return "Evento"
}

// ClaseEstilo devuelve la clase CSS de la entrada del calendario.
func (e Evento) ClaseEstilo() string {
	switch tipo := strings.ToLower(e.Tipo); tipo {
	case "acm", "taller", "hackathon", "conferencia":
		return "event-" + tipo
	}
	return "event-general"
}
