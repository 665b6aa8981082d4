package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/Gomsss16/ArtemisaProyectFrontend/config"
	"github.com/Gomsss16/ArtemisaProyectFrontend/internal/client"
	"github.com/Gomsss16/ArtemisaProyectFrontend/internal/handlers"
	"github.com/Gomsss16/ArtemisaProyectFrontend/internal/routes"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	if err := godotenv.Load(); err != nil {
		slog.Warn("No se encontró el archivo .env, se usan las variables del entorno")
	}

	config.Load()
	config.ConnectRedis()

	handlers.Init(client.New(config.BackendURL,
		client.WithTimeout(config.BackendTimeout),
		client.WithUploadTimeout(config.UploadTimeout)))

	r := routes.SetupRouter()

	slog.Info("Portal Artemisa escuchando", "addr", config.ListenAddr, "backend", config.BackendURL)
	if err := r.Run(config.ListenAddr); err != nil {
		slog.Error("El servidor terminó con error", "error", err)
		os.Exit(1)
	}
}
