package scenes

import (
	"io/fs"
	"os"

	cfg "github.com/JimLynchCodes/Quackers-Frontend-v3/config"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// assetFS is where sounds and the optional pond map are read from.
func assetFS() fs.FS {
	return os.DirFS(cfg.Sound.AssetDir)
}
