// Package embedded lists the font faces bundled with the typesetting
// engine. Requirements covered by this table are satisfied without a file
// in the project.
package embedded

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/typmgr/fontctl/internal/fontset"
	"github.com/typmgr/fontctl/internal/manifest"
)

//go:embed embedded_fonts.toml
var embeddedFonts []byte

var load = sync.OnceValue(func() fontset.Set {
	cfg, err := manifest.Parse(embeddedFonts)
	if err != nil {
		// The table is compiled in; failing to parse it is a build defect.
		panic(fmt.Sprintf("embedded font table: %v", err))
	}
	return cfg.Required()
})

// Fonts returns the engine's embedded font identities. The table is parsed
// once per process and is read-only thereafter.
func Fonts() fontset.Set {
	return load()
}
