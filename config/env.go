package config

import (
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables that override the compiled-in defaults.
const (
	EnvServerURL  = "QUACKERS_SERVER_URL"
	EnvPlayerName = "QUACKERS_PLAYER_NAME"
	EnvAssetDir   = "QUACKERS_ASSET_DIR"
	EnvPondMap    = "QUACKERS_POND_MAP"
)

// PondMapPath is an optional Tiled map relative to the asset dir. Empty means
// the configured World bounds are used as is.
var PondMapPath string

// LoadEnv reads the given dotenv files (".env" when none are given) and applies
// any QUACKERS_* overrides. A missing file is not an error.
func LoadEnv(files ...string) error {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if v := os.Getenv(EnvServerURL); v != "" {
		Network.ServerURL = v
	}
	if v := os.Getenv(EnvPlayerName); v != "" {
		Network.PlayerName = v
	}
	if v := os.Getenv(EnvAssetDir); v != "" {
		Sound.AssetDir = v
	}
	if v := os.Getenv(EnvPondMap); v != "" {
		PondMapPath = v
	}

	log.Printf("[config] server=%s asset dir=%s", Network.ServerURL, Sound.AssetDir)
	return nil
}
