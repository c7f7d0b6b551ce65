package scene

import (
	"slices"

	"github.com/mboyd/shapecast/pkg/core"
)

// Default returns the classic three-sphere scene: a small red and blue
// sphere in front of a large green one, lit from the upper left.
func Default() *Scene {
	s := New(core.NewVec3(1, -1, -1))
	s.AddSphere(core.NewVec3(100, 100, 20), 20, core.NewVec3(1, 0, 0))
	s.AddSphere(core.NewVec3(300, 300, 30), 30, core.NewVec3(0, 0, 1))
	s.AddSphere(core.NewVec3(220, 220, 200), 160, core.NewVec3(0, 1, 0))
	return s
}

// Showcase returns a scene exercising every shape kind
func Showcase() *Scene {
	s := New(core.NewVec3(0, 0, -1))
	s.AddSphere(core.NewVec3(160, 120, 100), 60, core.NewVec3(1, 0, 0))
	s.AddRect(core.NewVec3(480, 120, 150), 120, 80, core.NewVec3(0, 1, 0))
	s.AddCircle(core.NewVec3(160, 360, 150), 70, core.NewVec3(0, 0, 1))
	s.AddTriangle(150,
		core.NewVec2(420, 420),
		core.NewVec2(540, 420),
		core.NewVec2(480, 300),
		core.NewVec3(1, 1, 0))
	return s
}

// Presets maps the scene names accepted by the CLI and the render service
// to their constructors.
var Presets = map[string]func() *Scene{
	"default":  Default,
	"showcase": Showcase,
}

// PresetNames returns the sorted list of preset scene names
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
