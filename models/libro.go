package models

// Libro es un libro del material de estudio. La portada y el PDF viajan
// siempre como cadenas base64 dentro del JSON; ese es el único contrato
// binario con el backend.
type Libro struct {
	ID           *int64 `json:"id,omitempty"`
	Titulo       string `json:"titulo"`
	Author       string `json:"author"`
	Descripcion  string `json:"descripcion"`
	Enlace       string `json:"enlace"`
	ImagenBase64 string `json:"imagenBase64"`
	PdfBase64    string `json:"pdfBase64"`
}
