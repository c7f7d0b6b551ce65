package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mboyd/shapecast/pkg/core"
	"github.com/mboyd/shapecast/pkg/renderer"
	"github.com/mboyd/shapecast/pkg/scene"
	"github.com/mboyd/shapecast/pkg/screen"
)

// maxDimension caps requested frame sizes
const maxDimension = 4096

// RenderRequest describes one frame to render. Either a preset scene name
// or an explicit shape list; an explicit list may also set the light.
type RenderRequest struct {
	Scene  string      `json:"scene,omitempty"`
	Shapes []ShapeSpec `json:"shapes,omitempty"`
	Light  *[3]float64 `json:"light,omitempty"`
	Width  int         `json:"width"`
	Height int         `json:"height"`
	ZFar   float64     `json:"zFar,omitempty"`
	Format string      `json:"format,omitempty"`
}

// ShapeSpec is the wire form of one shape. Kind selects which fields apply.
type ShapeSpec struct {
	Kind     string        `json:"kind"` // sphere, rect, circle, triangle
	Position [3]float64    `json:"position,omitempty"`
	Radius   float64       `json:"radius,omitempty"`
	Width    float64       `json:"width,omitempty"`
	Height   float64       `json:"height,omitempty"`
	PlaneZ   float64       `json:"planeZ,omitempty"`
	Vertices [3][2]float64 `json:"vertices,omitempty"`
	Color    [3]float64    `json:"color"`
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleScenes lists the preset scene names
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]string{"scenes": scene.PresetNames()})
}

// handleRender renders one frame and responds with the encoded image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if req.Width <= 0 || req.Height <= 0 || req.Width > maxDimension || req.Height > maxDimension {
		http.Error(w, fmt.Sprintf("invalid frame size %dx%d", req.Width, req.Height), http.StatusBadRequest)
		return
	}

	format := screen.FormatPNG
	if req.Format != "" {
		var err error
		if format, err = screen.ParseFormat(req.Format); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	sceneObj, err := buildScene(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	zFar := req.ZFar
	if zFar == 0 {
		zFar = renderer.DefaultZFar
	}

	window := core.NewVec2(float64(req.Width), float64(req.Height))
	camera := renderer.NewCamera(window, window, zFar)
	img, err := renderer.New(sceneObj, camera, req.Width, req.Height).RenderImage()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", screen.ContentType(format))
	if err := screen.Encode(w, img, format); err != nil {
		// Headers are already out; nothing left to do but log.
		slog.Error("encode frame", "format", format, "error", err)
	}
}

// buildScene turns a request into a Scene: an explicit shape list wins,
// otherwise the named preset is used.
func buildScene(req RenderRequest) (*scene.Scene, error) {
	if len(req.Shapes) > 0 {
		light := core.NewVec3(0, 0, -1)
		if req.Light != nil {
			light = core.NewVec3(req.Light[0], req.Light[1], req.Light[2])
		}
		s := scene.New(light)
		for i, spec := range req.Shapes {
			if err := addShape(s, spec); err != nil {
				return nil, fmt.Errorf("shape %d: %w", i, err)
			}
		}
		return s, nil
	}

	name := req.Scene
	if name == "" {
		name = "default"
	}
	preset, ok := scene.Presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", name)
	}
	return preset(), nil
}

func addShape(s *scene.Scene, spec ShapeSpec) error {
	position := core.NewVec3(spec.Position[0], spec.Position[1], spec.Position[2])
	color := core.NewVec3(spec.Color[0], spec.Color[1], spec.Color[2])

	switch spec.Kind {
	case "sphere":
		s.AddSphere(position, spec.Radius, color)
	case "rect":
		s.AddRect(position, spec.Width, spec.Height, color)
	case "circle":
		s.AddCircle(position, spec.Radius, color)
	case "triangle":
		s.AddTriangle(spec.PlaneZ,
			core.NewVec2(spec.Vertices[0][0], spec.Vertices[0][1]),
			core.NewVec2(spec.Vertices[1][0], spec.Vertices[1][1]),
			core.NewVec2(spec.Vertices[2][0], spec.Vertices[2][1]),
			color)
	default:
		return fmt.Errorf("unknown shape kind %q", spec.Kind)
	}
	return nil
}
