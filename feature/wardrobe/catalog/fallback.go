package catalog

import _ "embed"

// The built-in data set served when the live documents cannot be resolved.
var (
	//go:embed fallback/figuredata.xml
	fallbackFigureData []byte

	//go:embed fallback/furnidata.json
	fallbackMetadata []byte
)
