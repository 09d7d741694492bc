package scripts

import rl "github.com/gen2brain/raylib-go/raylib"

// Emerald is used for gameplay diagnostics: pickup rays and zone messages.
var Emerald = rl.NewColor(21, 219, 101, 255)
