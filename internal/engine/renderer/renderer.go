// Package renderer provides the OpenGL render target for the sky scene.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/skysaver/internal/engine/shader"
	"github.com/Faultbox/skysaver/internal/geometry"
	"github.com/Faultbox/skysaver/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width     int
	Height    int
	PointSize float32
}

// Renderer uploads meshes to the GPU and draws them.
type Renderer struct {
	config Config
	log    *zap.Logger

	program   uint32
	locMVP    int32
	locColor  int32
	locShade  int32
	locPtSize int32

	meshes []*gpuMesh
	hidden map[string]bool
}

// gpuMesh is one uploaded mesh: a vertex buffer, one packed element buffer
// and the ranges of its batches.
type gpuMesh struct {
	name    string
	vao     uint32
	vbo     uint32
	ebo     uint32
	batches []geometry.BatchRange
}

// New creates a new renderer.
// Must be called after the OpenGL context is created.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
		hidden: make(map[string]bool),
	}
	if r.config.PointSize <= 0 {
		r.config.PointSize = 3
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.ClearColor(0.01, 0.01, 0.04, 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.program, err = shader.CompileProgram(shader.SkyVertexSource, shader.SkyFragmentSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.locMVP = shader.MustGetUniform(r.program, "uMVP")
	r.locColor = shader.MustGetUniform(r.program, "uColor")
	r.locShade = shader.GetUniform(r.program, "uShade")
	r.locPtSize = shader.GetUniform(r.program, "uPointSize")

	r.log.Debug("shader program created", zap.Uint32("program", r.program))
	return r, nil
}

// Accept uploads one mesh. It implements sky.Target.
func (r *Renderer) Accept(name string, vertices []geometry.VertexRecord, batches []geometry.IndexBatch) error {
	if len(vertices) == 0 {
		return fmt.Errorf("mesh %s has no vertices", name)
	}
	for _, b := range batches {
		if _, err := primitiveMode(b.Kind); err != nil {
			return fmt.Errorf("mesh %s/%s: %w", name, b.Tag, err)
		}
		if err := geometry.CheckBounds(b.Indices, len(vertices)); err != nil {
			return fmt.Errorf("mesh %s/%s: %w", name, b.Tag, err)
		}
	}

	floats := geometry.Floats(vertices)
	indices, ranges := geometry.PackBatches(batches)
	m := &gpuMesh{name: name, batches: ranges}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(floats)*geometry.BytesPerFloat, unsafe.Pointer(&floats[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(shader.TexCoordLocation, geometry.TexCoordComponents, gl.FLOAT, false, geometry.VertexStride, geometry.TexCoordOffset)
	gl.EnableVertexAttribArray(shader.TexCoordLocation)
	gl.VertexAttribPointerWithOffset(shader.NormalLocation, geometry.NormalComponents, gl.FLOAT, false, geometry.VertexStride, geometry.NormalOffset)
	gl.EnableVertexAttribArray(shader.NormalLocation)
	gl.VertexAttribPointerWithOffset(shader.PositionLocation, geometry.PositionComponents, gl.FLOAT, false, geometry.VertexStride, geometry.PositionOffset)
	gl.EnableVertexAttribArray(shader.PositionLocation)

	if len(indices) > 0 {
		gl.GenBuffers(1, &m.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*geometry.IndexSize, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	r.meshes = append(r.meshes, m)
	r.log.Debug("mesh uploaded",
		zap.String("mesh", name),
		zap.Int("vertices", len(vertices)),
		zap.Int("indices", len(indices)),
		zap.Int("batches", len(ranges)),
	)
	return nil
}

// SetVisible shows or hides a mesh by name.
func (r *Renderer) SetVisible(name string, visible bool) {
	r.hidden[name] = !visible
}

// Visible reports whether the named mesh is drawn.
func (r *Renderer) Visible(name string) bool {
	return !r.hidden[name]
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// Aspect returns the viewport aspect ratio.
func (r *Renderer) Aspect() float32 {
	if r.config.Height == 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// Draw clears the frame and draws every visible mesh with the given
// view-projection matrix.
func (r *Renderer) Draw(viewProj mgl32.Mat4) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locMVP, 1, false, &viewProj[0])
	gl.Uniform1f(r.locPtSize, r.config.PointSize)

	for _, m := range r.meshes {
		if r.hidden[m.name] {
			continue
		}
		gl.BindVertexArray(m.vao)
		for _, b := range m.batches {
			mode, _ := primitiveMode(b.Kind)
			shade := float32(0)
			if mode == gl.TRIANGLE_FAN || mode == gl.TRIANGLE_STRIP {
				shade = 1
			}
			gl.Uniform1f(r.locShade, shade)
			gl.Uniform4f(r.locColor, b.Color[0], b.Color[1], b.Color[2], b.Color[3])
			gl.DrawElementsWithOffset(mode, int32(b.Count), gl.UNSIGNED_INT, uintptr(b.ByteOffset()))
		}
	}
	gl.BindVertexArray(0)
}

// Reset deletes every uploaded mesh. Visibility settings are kept.
func (r *Renderer) Reset() {
	for _, m := range r.meshes {
		if m.vao != 0 {
			gl.DeleteVertexArrays(1, &m.vao)
		}
		if m.vbo != 0 {
			gl.DeleteBuffers(1, &m.vbo)
		}
		if m.ebo != 0 {
			gl.DeleteBuffers(1, &m.ebo)
		}
	}
	r.meshes = r.meshes[:0]
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	r.Reset()
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

func primitiveMode(kind geometry.PrimitiveKind) (uint32, error) {
	switch kind {
	case geometry.TriangleFan:
		return gl.TRIANGLE_FAN, nil
	case geometry.TriangleStrip:
		return gl.TRIANGLE_STRIP, nil
	case geometry.LineList:
		return gl.LINES, nil
	case geometry.LineLoop:
		return gl.LINE_LOOP, nil
	case geometry.Points:
		return gl.POINTS, nil
	}
	return 0, fmt.Errorf("unsupported primitive kind %s", kind)
}
