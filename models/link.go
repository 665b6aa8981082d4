package models

// Link es un enlace valioso compartido con el semillero. La imagen, si la
// hay, viaja como base64 dentro del JSON.
type Link struct {
	ID           *int64 `json:"id,omitempty"`
	Titulo       string `json:"titulo"`
	Descripcion  string `json:"descripcion"`
	Enlace       string `json:"enlace"`
	ImagenBase64 string `json:"imagenBase64,omitempty"`
}
