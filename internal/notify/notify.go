// Package notify modela los avisos que la interfaz muestra como growl o
// como mensaje fijo (sticky). Cada respuesta de una acción lleva uno.
package notify

// Severity es la severidad visual del aviso.
type Severity string

const (
	Info  Severity = "info"
	Warn  Severity = "warn"
	Error Severity = "error"
)

// Message es un aviso para el usuario.
type Message struct {
	Severity Severity `json:"severity"`
	Summary  string   `json:"summary"`
	Detail   string   `json:"detail"`
	Sticky   bool     `json:"sticky,omitempty"`
}

// Exito es el growl informativo estándar del sistema.
func Exito(detail string) Message {
	return Message{Severity: Info, Summary: "Sistema Artemisa", Detail: detail}
}

// Advertencia es el growl de validaciones, conflictos y no-encontrados.
func Advertencia(summary, detail string) Message {
	return Message{Severity: Warn, Summary: summary, Detail: detail}
}

// Critico es el growl de errores de servidor o de red. Nunca lleva el texto
// crudo del backend; ese queda en el log.
func Critico(detail string) Message {
	return Message{Severity: Error, Summary: "Error", Detail: detail}
}

// Sticky convierte un aviso en mensaje fijo, como los del formulario de
// ingreso y registro.
func Sticky(m Message) Message {
	m.Sticky = true
	return m
}
