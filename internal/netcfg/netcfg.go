package netcfg

import (
	"os"

	"github.com/joho/godotenv"
)

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// ServerURL is the websocket endpoint. A .env file next to the binary wins
// over nothing, the environment wins over both.
var ServerURL = "ws://127.0.0.1:8080/ws"

func init() {
	_ = godotenv.Load() // missing .env is fine
	ServerURL = getenv("CASTLE_WS_URL", ServerURL)
}
