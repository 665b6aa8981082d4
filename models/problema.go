package models

// Problema es un problema de programación competitiva publicado en el
// portal, con su juez y su nivel de dificultad (1 a 5).
type Problema struct {
	ID         *int64 `json:"id,omitempty"`
	Titulo     string `json:"titulo"`
	Dificultad int    `json:"dificultad"`
	Tema       string `json:"tema"`
	Juez       string `json:"juez"`
	Link       string `json:"link"`
}

// Jueces es el catálogo fijo de jueces soportados.
var Jueces = []string{"Codeforces", "AtCoder", "LeetCode", "HackerRank", "SPOJ", "UVa", "CodeChef", "Otros"}

// JuezValido indica si el juez pertenece al catálogo.
func JuezValido(juez string) bool {
	for _, j := range Jueces {
		if j == juez {
			return true
		}
	}
	return false
}
