// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/sunlit/internal/engine/camera"
	"github.com/Faultbox/sunlit/internal/engine/lighting"
	"github.com/Faultbox/sunlit/internal/engine/model"
	"github.com/Faultbox/sunlit/internal/engine/shader"
	"github.com/Faultbox/sunlit/internal/engine/texture"
	"github.com/Faultbox/sunlit/internal/logger"
)

// Target is the surface frames are drawn to.
type Target interface {
	Size() (width, height int)
}

// Config holds renderer configuration.
type Config struct {
	Projection    camera.Projection
	Ambient       [3]float32
	SpecularPower float32
	ClearColor    [4]float32
}

// DefaultConfig returns the scene defaults: 60° FOV, 0.01-1000 clip range,
// ambient 0.3 and specular power 10.
func DefaultConfig() Config {
	return Config{
		Projection:    camera.Projection{FOV: 60, Near: 0.01, Far: 1000},
		Ambient:       [3]float32{0.3, 0.3, 0.3},
		SpecularPower: 10,
	}
}

// Renderer draws textured, lit meshes with a Phong program.
type Renderer struct {
	config  Config
	program *shader.Program
	log     *zap.Logger

	width, height int
	glErrors      map[uint32]bool
}

// New creates a renderer. No GL calls are made until Init.
func New(cfg Config) *Renderer {
	return &Renderer{
		config:   cfg,
		log:      logger.Named("renderer"),
		glErrors: make(map[uint32]bool),
	}
}

// Init loads GL functions and builds the scene program.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func (r *Renderer) Init(target Target) error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	c := r.config.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])

	program, err := shader.New(sceneVertexShader, sceneFragmentShader)
	if err != nil {
		return fmt.Errorf("failed to create scene program: %w", err)
	}
	r.program = program

	r.resize(target.Size())
	r.log.Debug("scene program created", zap.Uint32("program", program.ID))
	return nil
}

// Render draws one frame. GL errors are logged, never returned.
func (r *Renderer) Render(target Target, cam *camera.Camera, items []*model.Item, point *lighting.PointLight, dir *lighting.DirectionalLight) {
	if r.program == nil {
		return
	}
	if w, h := target.Size(); w != r.width || h != r.height {
		r.resize(w, h)
	}

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	p := r.program
	p.Use()
	p.SetMat4("projectionMatrix", r.config.Projection.Matrix(r.width, r.height))
	p.SetInt("textureSampler", 0)

	amb := r.config.Ambient
	p.SetVec3("ambientLight", vec3(amb))
	p.SetFloat("specularPower", r.config.SpecularPower)

	view := cam.ViewMatrix()
	pl, dl := viewLights(view, point, dir)
	p.SetVec3("pointLight.colour", pl.Color)
	p.SetVec3("pointLight.position", pl.Position)
	p.SetFloat("pointLight.intensity", pl.Intensity)
	p.SetFloat("pointLight.att.constant", pl.Attenuation.Constant)
	p.SetFloat("pointLight.att.linear", pl.Attenuation.Linear)
	p.SetFloat("pointLight.att.exponent", pl.Attenuation.Exponent)
	p.SetVec3("directionalLight.colour", dl.Color)
	p.SetVec3("directionalLight.direction", dl.Direction)
	p.SetFloat("directionalLight.intensity", dl.Intensity)

	for _, item := range items {
		if item == nil || item.Mesh == nil {
			continue
		}
		p.SetMat4("modelViewMatrix", view.Mul(item.ModelMatrix()))
		r.drawMesh(item.Mesh)
	}

	gl.UseProgram(0)
	r.checkError("render")
}

func (r *Renderer) drawMesh(mesh *model.Mesh) {
	buffers, ok := mesh.Handle().(*meshBuffers)
	if !ok {
		buffers = uploadMesh(mesh)
		r.log.Debug("mesh uploaded",
			zap.String("name", mesh.Name),
			zap.Int32("indices", buffers.count))
	}

	mat := mesh.Material
	p := r.program
	p.SetVec4("material.colour", mat.Colour)
	p.SetFloat("material.reflectance", mat.Reflectance)

	if mat.IsTextured() {
		p.SetInt("material.useColour", 0)
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, r.textureID(mat.Texture))
	} else {
		p.SetInt("material.useColour", 1)
	}

	gl.BindVertexArray(buffers.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, buffers.count, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (r *Renderer) textureID(tex *texture.Texture) uint32 {
	if t, ok := tex.Handle().(*glTexture); ok {
		return t.id
	}
	t := uploadTexture(tex)
	w, h := tex.Size()
	r.log.Debug("texture uploaded", zap.String("path", tex.Path), zap.Int("width", w), zap.Int("height", h))
	return t.id
}

// ReadPixels returns the current back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int) {
	width, height = r.width, r.height
	pixels = make([]byte, width*height*4)
	if len(pixels) == 0 {
		return pixels, width, height
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	r.checkError("read pixels")
	return pixels, width, height
}

// Cleanup releases the scene program. Mesh and texture buffers are owned by
// the meshes and released through Mesh.Cleanup.
func (r *Renderer) Cleanup() {
	r.log.Info("closing renderer")
	if r.program != nil {
		r.program.Delete()
		r.program = nil
	}
}

func (r *Renderer) resize(width, height int) {
	r.width, r.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// checkError logs each distinct GL error code once.
func (r *Renderer) checkError(op string) {
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		if r.glErrors[code] {
			continue
		}
		r.glErrors[code] = true
		r.log.Error("OpenGL error", zap.String("op", op), zap.Uint32("code", code))
	}
}
