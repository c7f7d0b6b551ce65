package scene

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/mboyd/shapecast/pkg/core"
)

// Shape menu choices presented by the interactive builder.
const (
	choiceDone     = 0
	choiceSphere   = 1
	choiceRect     = 2
	choiceCircle   = 3
	choiceTriangle = 4
)

// Builder populates a Scene from an interactive numeric menu, reading
// whitespace-separated values from in and writing prompts to out. It places
// no constraints on where the input comes from, which keeps it testable
// against a strings.Reader.
type Builder struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewBuilder creates a builder reading from in and prompting on out
func NewBuilder(in io.Reader, out io.Writer) *Builder {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &Builder{scanner: scanner, out: out}
}

// Run prompts for the light direction and then for shapes until the user
// selects done. Positions and dimensions are integers, colors are 0-255
// channel values scaled to [0,1], the light direction is three floats.
func (b *Builder) Run() (*Scene, error) {
	fmt.Fprintln(b.out, "Light direction (three floats, e.g. 1 -1 -1):")
	light, err := b.readVec3()
	if err != nil {
		return nil, fmt.Errorf("light direction: %w", err)
	}

	s := New(light)
	for {
		fmt.Fprintln(b.out, "Add shape: 1) sphere 2) rectangle 3) circle 4) triangle 0) done")
		choice, err := b.readInt()
		if err != nil {
			return nil, fmt.Errorf("shape choice: %w", err)
		}

		switch choice {
		case choiceDone:
			return s, nil
		case choiceSphere:
			err = b.addSphere(s)
		case choiceRect:
			err = b.addRect(s)
		case choiceCircle:
			err = b.addCircle(s)
		case choiceTriangle:
			err = b.addTriangle(s)
		default:
			fmt.Fprintf(b.out, "Unknown choice %d\n", choice)
			continue
		}
		if err != nil {
			return nil, err
		}
	}
}

func (b *Builder) addSphere(s *Scene) error {
	fmt.Fprintln(b.out, "Sphere position (x y z) and radius:")
	center, err := b.readIntVec3()
	if err != nil {
		return fmt.Errorf("sphere position: %w", err)
	}
	radius, err := b.readInt()
	if err != nil {
		return fmt.Errorf("sphere radius: %w", err)
	}
	color, err := b.readColor()
	if err != nil {
		return fmt.Errorf("sphere color: %w", err)
	}
	s.AddSphere(center, float64(radius), color)
	return nil
}

func (b *Builder) addRect(s *Scene) error {
	fmt.Fprintln(b.out, "Rectangle position (x y z), width and height:")
	center, err := b.readIntVec3()
	if err != nil {
		return fmt.Errorf("rectangle position: %w", err)
	}
	width, err := b.readInt()
	if err != nil {
		return fmt.Errorf("rectangle width: %w", err)
	}
	height, err := b.readInt()
	if err != nil {
		return fmt.Errorf("rectangle height: %w", err)
	}
	color, err := b.readColor()
	if err != nil {
		return fmt.Errorf("rectangle color: %w", err)
	}
	s.AddRect(center, float64(width), float64(height), color)
	return nil
}

func (b *Builder) addCircle(s *Scene) error {
	fmt.Fprintln(b.out, "Circle position (x y z) and radius:")
	center, err := b.readIntVec3()
	if err != nil {
		return fmt.Errorf("circle position: %w", err)
	}
	radius, err := b.readInt()
	if err != nil {
		return fmt.Errorf("circle radius: %w", err)
	}
	color, err := b.readColor()
	if err != nil {
		return fmt.Errorf("circle color: %w", err)
	}
	s.AddCircle(center, float64(radius), color)
	return nil
}

func (b *Builder) addTriangle(s *Scene) error {
	fmt.Fprintln(b.out, "Triangle plane z, then three vertices (x y each):")
	planeZ, err := b.readInt()
	if err != nil {
		return fmt.Errorf("triangle plane: %w", err)
	}
	var verts [3]core.Vec2
	for i := range verts {
		x, err := b.readInt()
		if err != nil {
			return fmt.Errorf("triangle vertex %d: %w", i+1, err)
		}
		y, err := b.readInt()
		if err != nil {
			return fmt.Errorf("triangle vertex %d: %w", i+1, err)
		}
		verts[i] = core.NewVec2(float64(x), float64(y))
	}
	color, err := b.readColor()
	if err != nil {
		return fmt.Errorf("triangle color: %w", err)
	}
	s.AddTriangle(float64(planeZ), verts[0], verts[1], verts[2], color)
	return nil
}

// readColor reads three 0-255 channel values and scales them to [0,1]
func (b *Builder) readColor() (core.Vec3, error) {
	fmt.Fprintln(b.out, "Color (r g b, 0-255):")
	r, err := b.readInt()
	if err != nil {
		return core.Vec3{}, err
	}
	g, err := b.readInt()
	if err != nil {
		return core.Vec3{}, err
	}
	bl, err := b.readInt()
	if err != nil {
		return core.Vec3{}, err
	}
	return core.NewVec3(float64(r)/255, float64(g)/255, float64(bl)/255), nil
}

func (b *Builder) readIntVec3() (core.Vec3, error) {
	x, err := b.readInt()
	if err != nil {
		return core.Vec3{}, err
	}
	y, err := b.readInt()
	if err != nil {
		return core.Vec3{}, err
	}
	z, err := b.readInt()
	if err != nil {
		return core.Vec3{}, err
	}
	return core.NewVec3(float64(x), float64(y), float64(z)), nil
}

func (b *Builder) readVec3() (core.Vec3, error) {
	x, err := b.readFloat()
	if err != nil {
		return core.Vec3{}, err
	}
	y, err := b.readFloat()
	if err != nil {
		return core.Vec3{}, err
	}
	z, err := b.readFloat()
	if err != nil {
		return core.Vec3{}, err
	}
	return core.NewVec3(x, y, z), nil
}

func (b *Builder) readInt() (int, error) {
	word, err := b.next()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(word)
	if err != nil {
		return 0, fmt.Errorf("expected integer, got %q", word)
	}
	return n, nil
}

func (b *Builder) readFloat() (float64, error) {
	word, err := b.next()
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(word, 64)
	if err != nil {
		return 0, fmt.Errorf("expected number, got %q", word)
	}
	return f, nil
}

func (b *Builder) next() (string, error) {
	if !b.scanner.Scan() {
		if err := b.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return b.scanner.Text(), nil
}
