package demo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/solarlune/glcube"
	"github.com/solarlune/glcube/colors"
	"github.com/solarlune/glcube/gfx"
)

// Game holds the GL resources and models of one scene and animates them. It implements glcube.Game.
type Game struct {
	Program *glcube.Program
	Camera  *glcube.Camera
	Models  []*glcube.Model

	cfg    Config
	ctx    gfx.Context
	logger *slog.Logger

	primitives []*glcube.Primitive
	textures   []gfx.Texture

	spinning []*glcube.Model
	bobbing  *glcube.Model
	bobBase  mgl32.Vec3
	bob      *gween.Sequence

	elapsed time.Duration
	updates uint64
}

var _ glcube.Game = (*Game)(nil)

// New builds the scene cfg names on ctx: its shader program, geometry, texture, camera and models. Loading the
// texture file can be cancelled through c. If anything fails, whatever was already created is released again.
// A nil logger uses slog.Default().
func New(c context.Context, ctx gfx.Context, cfg Config, logger *slog.Logger) (*Game, error) {

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("demo: %w", err)
	}

	if logger == nil {
		logger = slog.Default()
	}

	game := &Game{
		cfg:    cfg,
		ctx:    ctx,
		logger: logger.With("scene", string(cfg.Scene)),
	}

	if err := game.build(c); err != nil {
		game.Release()
		return nil, err
	}

	game.logger.Info("scene ready", "program", game.Program.Name(), "uniforms", game.Program.Mode().String(), "models", len(game.Models))

	return game, nil

}

func (game *Game) build(c context.Context) error {

	cfg := game.cfg

	program, err := glcube.NewProgram(game.ctx, cfg.Scene.Shader(cfg.ShaderDialect(), cfg.UniformMode()), &glcube.ProgramOptions{
		Uniforms: cfg.UniformMode(),
		Minify:   cfg.MinifyShaders,
		Logger:   game.logger,
	})
	if err != nil {
		return err
	}
	game.Program = program

	w, h := cfg.Window.Width, cfg.Window.Height
	game.Camera = glcube.NewCamera(w, h)

	if cfg.Scene == SceneTriangle {
		triangle, err := glcube.NewTriangle(game.ctx)
		if err != nil {
			return err
		}
		game.primitives = append(game.primitives, triangle)
		game.Models = append(game.Models, glcube.NewModel(triangle, "Triangle"))
		return nil
	}

	mesh, err := game.loadMesh()
	if err != nil {
		return err
	}
	game.primitives = append(game.primitives, mesh)

	var texture gfx.Texture
	if cfg.Scene.Textured() {
		if texture, err = game.loadTexture(c); err != nil {
			return err
		}
		game.textures = append(game.textures, texture)
	}

	if cfg.Scene == SceneColorCube {
		cube := glcube.NewModel(mesh, "Cube")
		game.Models = append(game.Models, cube)
		game.spinning = append(game.spinning, cube)
		return nil
	}

	spinner := glcube.NewModel(mesh, "Spinning Cube")
	spinner.Texture = texture
	spinner.SetPosition(-1.75, 0, 0)

	bobber := spinner.Clone()
	bobber.Name = "Bobbing Cube"
	bobber.SetPosition(1.75, 0, 0)
	bobber.Tint = colors.SkyBlue()

	game.Models = append(game.Models, spinner, bobber)
	game.spinning = append(game.spinning, spinner)
	game.bobbing = bobber
	game.bobBase = bobber.Position()

	game.bob = gween.NewSequence(gween.New(-cfg.BobHeight/2, cfg.BobHeight/2, cfg.BobSeconds/2, ease.InOutSine))
	game.bob.SetYoyo(true)
	game.bob.SetLoop(-1)

	return nil

}

func (game *Game) loadMesh() (*glcube.Primitive, error) {

	if game.cfg.Model == "" {
		return glcube.NewCube(game.ctx)
	}

	mesh, err := glcube.LoadGLTFFile(game.cfg.Model)
	if err != nil {
		return nil, fmt.Errorf("demo: loading model: %w", err)
	}

	game.logger.Debug("model loaded", "path", game.cfg.Model, "vertices", mesh.VertexCount(), "triangles", mesh.TriangleCount())

	return mesh.Upload(game.ctx)

}

func (game *Game) loadTexture(c context.Context) (gfx.Texture, error) {

	if game.cfg.Texture == "" {
		return glcube.NewTexture(game.ctx, glcube.Checkerboard(64, 8, colors.White(), colors.Purple()), &glcube.TextureOptions{Nearest: true})
	}

	texture, err := glcube.LoadTextureFile(c, game.ctx, game.cfg.Texture, nil)
	if err != nil {
		return 0, err
	}

	game.logger.Debug("texture loaded", "path", game.cfg.Texture)

	return texture, nil

}

// Update spins and bobs the cubes, moves the camera with the arrow keys, and quits when Escape is held down.
func (game *Game) Update(dt time.Duration, keys *glcube.KeyState) error {

	if keys.Down(glcube.KeyEscape) {
		return glcube.ErrQuit
	}

	seconds := float32(dt.Seconds())

	game.elapsed += dt
	game.updates++

	speed := game.cfg.CameraSpeed * seconds
	game.Camera.Move(
		keys.Axis(glcube.KeyArrowLeft, glcube.KeyArrowRight)*speed,
		0,
		keys.Axis(glcube.KeyArrowUp, glcube.KeyArrowDown)*speed,
	)

	for _, model := range game.spinning {
		model.Rotate(0.3, 1, 0.1, game.cfg.SpinSpeed*seconds)
	}

	if game.bob != nil {
		offset, _, _ := game.bob.Update(seconds)
		game.bobbing.SetPositionVec(game.bobBase.Add(mgl32.Vec3{0, offset, 0}))
	}

	return nil

}

// Render clears the screen, turns on depth testing and draws every model.
func (game *Game) Render() error {

	if game.Program == nil {
		return errors.New("demo: game has been released")
	}

	bg := game.cfg.ClearColor.Color()
	game.ctx.ClearColor(bg.R, bg.G, bg.B, bg.A)

	game.ctx.Enable(gfx.DEPTH_TEST)
	game.ctx.DepthFunc(gfx.LEQUAL)

	game.ctx.Clear(gfx.COLOR_BUFFER_BIT | gfx.DEPTH_BUFFER_BIT)

	game.Program.Use()
	game.Camera.Apply(game.Program)

	for _, model := range game.Models {
		model.Render(game.Program)
	}

	return nil

}

// Resize updates the camera for a new framebuffer size.
func (game *Game) Resize(width, height int) {
	game.Camera.Resize(width, height)
}

// Elapsed returns the total time the Game has been updated by.
func (game *Game) Elapsed() time.Duration { return game.elapsed }

// Updates returns how many times Update has run.
func (game *Game) Updates() uint64 { return game.updates }

// Release deletes every GL object the Game created. It's safe to call more than once.
func (game *Game) Release() {

	for _, prim := range game.primitives {
		prim.Release(game.ctx)
	}
	game.primitives = nil

	for _, texture := range game.textures {
		game.ctx.DeleteTexture(texture)
	}
	game.textures = nil

	if game.Program != nil {
		game.Program.Release()
		game.Program = nil
	}

}
