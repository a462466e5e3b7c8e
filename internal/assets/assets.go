package assets

import _ "embed"

//go:embed starter.yaml
var StarterSeed []byte
