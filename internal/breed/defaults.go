package breed

import (
	_ "embed"
)

//go:embed defaults/breeds.yaml
var defaultBreedsYAML []byte
