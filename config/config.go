package config

import (
	"log/slog"
	"os"
	"time"
)

// Valores de configuración del portal, cargados una vez al arrancar.
var (
	ListenAddr     string
	BackendURL     string
	JwtKey         []byte
	SessionTTL     time.Duration
	BackendTimeout time.Duration
	UploadTimeout  time.Duration
)

// Load lee la configuración desde las variables de entorno. El portal no
// arranca sin JWT_KEY; todo lo demás tiene un valor por defecto.
func Load() {
	ListenAddr = getenv("LISTEN_ADDR", ":8080")
	BackendURL = getenv("BACKEND_URL", "http://localhost:8081")

	key := os.Getenv("JWT_KEY")
	if key == "" {
		slog.Error("La variable de entorno JWT_KEY no está definida")
		os.Exit(1)
	}
	JwtKey = []byte(key)

	SessionTTL = duracion("SESSION_TTL", 8*time.Hour)
	BackendTimeout = duracion("BACKEND_TIMEOUT", 5*time.Second)
	UploadTimeout = duracion("BACKEND_UPLOAD_TIMEOUT", 120*time.Second)
}

func duracion(name string, fallback time.Duration) time.Duration {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		slog.Error("La variable no es una duración válida", "variable", name, "valor", raw, "error", err)
		os.Exit(1)
	}
	return d
}

func getenv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
