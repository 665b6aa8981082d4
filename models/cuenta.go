package models

// Credencial es la forma JSON de una cuenta al hablar con el backend. Los
// tres tipos de cuenta (administrador, profesor y estudiante) comparten esta
// estructura; el rol solo decide la familia de rutas que se consulta.
// La contraseña viaja tal cual: la verificación la hace el backend.
type Credencial struct {
	ID                *int64 `json:"id,omitempty"`
	Usuario           string `json:"usuario"`
	Contrasenia       string `json:"contrasenia"`
	NivelDePermiso    string `json:"nivelDePermiso"`
	FechaDeNacimiento string `json:"fechaDeNacimiento,omitempty"`
}

// ImagenPerfil es el cuerpo de obtenerImagen y actualizarImagen.
type ImagenPerfil struct {
	Usuario      string `json:"usuario"`
	ImagenBase64 string `json:"imagenBase64"`
}
