package models

// Temario es una entrada del temario del semillero: un tema o algoritmo con
// su explicación y un código de ejemplo.
type Temario struct {
	ID            *int64 `json:"id,omitempty"`
	TemaAlgoritmo string `json:"temaAlgoritmo"`
	Tipo          string `json:"tipo"`
	Contenido     string `json:"contenido"`
	Codigo        string `json:"codigo"`
}

// TiposTemario es el catálogo fijo de tipos de entrada del temario.
var TiposTemario = []string{"Algoritmo", "Estructura de Datos", "Matemáticas", "Grafos", "DP",
	"Greedy", "Backtracking", "Búsquedas", "Ordenamiento", "Otros"}

// TipoTemarioValido indica si el tipo pertenece al catálogo.
func TipoTemarioValido(tipo string) bool {
	for _, t := range TiposTemario {
		if t == tipo {
			return true
		}
	}
	return false
}
