package models

// Role es el nivel de permiso de una cuenta del sistema Artemisa.
type Role string

const (
	// RolInvitado es el valor cero: sin sesión o con un rol desconocido.
	RolInvitado      Role = ""
	RolAdministrador Role = "Administrador"
	RolProfesor      Role = "Profesor"
	RolEstudiante    Role = "Estudiante"
)

// Permisos son las capacidades que un rol tiene sobre el contenido.
type Permisos struct {
	PuedeCrear    bool
	PuedeEditar   bool
	PuedeEliminar bool
}

// Un rol ausente o desconocido no tiene ningún permiso.
var permisosPorRol = map[Role]Permisos{
	RolAdministrador: {PuedeCrear: true, PuedeEditar: true, PuedeEliminar: true},
	RolProfesor:      {PuedeCrear: true, PuedeEditar: true, PuedeEliminar: true},
	RolEstudiante:    {},
}

// ParseRole convierte el texto del formulario o del token en un Role.
// Cualquier valor que no sea uno de los tres roles queda como invitado.
func ParseRole(s string) Role {
	switch s {
	case string(RolAdministrador):
		return RolAdministrador
	case string(RolProfesor):
		return RolProfesor
	case string(RolEstudiante):
		return RolEstudiante
	}
	return RolInvitado
}

// Valido indica si el rol es uno de los tres roles reales del sistema.
func (r Role) Valido() bool {
	return r == RolAdministrador || r == RolProfesor || r == RolEstudiante
}

// Permisos devuelve la fila de capacidades del rol.
func (r Role) Permisos() Permisos {
	return permisosPorRol[r]
}

// Color devuelve el color hexadecimal con el que la vista pinta el rol.
func (r Role) Color() string {
	switch r {
	case RolAdministrador:
		return "#dc3545"
	case RolProfesor:
		return "#007bff"
	case RolEstudiante:
		return "#28a745"
	}
	return "#6c757d"
}

// Icono devuelve el identificador del ícono del rol.
func (r Role) Icono() string {
	switch r {
	case RolAdministrador:
		return "pi pi-crown"
	case RolProfesor:
		return "pi pi-user-edit"
	case RolEstudiante:
		return "pi pi-graduation-cap"
	}
	return "pi pi-user"
}
