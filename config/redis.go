package config

import (
	"context"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"
)

// RDB es el cliente de Redis, o nil cuando Redis no está configurado.
// Con RDB en nil el portal funciona igual: las sesiones viven solo en el
// token y la imagen de perfil se pide al backend en cada consulta.
var RDB *redis.Client
var Ctx = context.Background()

// ConnectRedis intenta conectar con Redis. Un fallo no impide el arranque.
func ConnectRedis() {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		slog.Warn("REDIS_ADDR no está definida, se trabaja sin registro de sesiones")
		return
	}

	RDB = redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})

	if _, err := RDB.Ping(Ctx).Result(); err != nil {
		slog.Error("No se pudo conectar a Redis", "error", err)
		RDB = nil
		return
	}

	slog.Info("Conexión a Redis establecida")
}
