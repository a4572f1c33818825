package glbackend

import (
	_ "embed"
	"fmt"
	"image"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/hubastard/canopy/engine/core"
	"github.com/hubastard/canopy/engine/errors"
	"github.com/hubastard/canopy/engine/geom"
	"github.com/hubastard/canopy/engine/gfx/batch"
	"github.com/hubastard/canopy/engine/paint"
	"github.com/hubastard/canopy/engine/profiler"
	"github.com/hubastard/canopy/engine/scene"
)

var (
	//go:embed shaders/quad.vert
	vertexSource string
	//go:embed shaders/quad.frag
	fragmentSource string
)

// RendererGL draws painter ops with OpenGL 3.3 core. Every frame the sorted
// ops are tessellated into one buffer and drawn in as few calls as the
// texture slots allow.
type RendererGL struct {
	win     core.Window
	program uint32
	vao     uint32
	vbo     uint32
	ebo     uint32
	uVP     int32

	white    uint32
	textures map[paint.TexID]uint32

	batch  *batch.Batch
	screen *scene.Screen
}

func NewRendererGL(win core.Window, _ core.Config) (*RendererGL, error) {
	r := &RendererGL{
		win:      win,
		textures: map[paint.TexID]uint32{},
		batch:    batch.New(),
		screen:   scene.NewScreen(geom.GS(1, 1)),
	}
	if err := r.Init(); err != nil {
		return nil, errors.Wrap("gl.NewRendererGL", errors.KindInit, err)
	}
	return r, nil
}

func (r *RendererGL) Init() error {
	var err error
	r.program, err = makeProgram(vertexSource+"\x00", fragmentSource+"\x00")
	if err != nil {
		return err
	}
	gl.UseProgram(r.program)
	r.uVP = gl.GetUniformLocation(r.program, gl.Str("uVP\x00"))
	slots := make([]int32, batch.MaxTexSlots)
	for i := range slots {
		slots[i] = int32(i)
	}
	gl.Uniform1iv(gl.GetUniformLocation(r.program, gl.Str("uTex\x00")), int32(len(slots)), &slots[0])
	gl.UseProgram(0)

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	const stride = batch.Stride * 4 // bytes
	attribs := []struct {
		loc    uint32
		size   int32
		offset int
	}{
		{0, 2, batch.PosOffset},
		{1, 4, batch.ColOffset},
		{2, 2, batch.UVOffset},
		{3, 1, batch.TexOffset},
	}
	for _, a := range attribs {
		gl.EnableVertexAttribArray(a.loc)
		gl.VertexAttribPointerWithOffset(a.loc, a.size, gl.FLOAT, false, stride, uintptr(a.offset*4))
	}
	gl.BindVertexArray(0)

	r.white = newTexture(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	whitePix := []byte{255, 255, 255, 255}
	gl.BindTexture(gl.TEXTURE_2D, r.white)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, 1, 1, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(whitePix))

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	return nil
}

func (r *RendererGL) Shutdown() {
	for _, t := range r.textures {
		gl.DeleteTextures(1, &t)
	}
	if r.white != 0 {
		gl.DeleteTextures(1, &r.white)
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(rf, gf, bf, af float32) {
	gl.ClearColor(rf, gf, bf, af)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Stats are the counts of the last Render.
func (r *RendererGL) Stats() batch.Stats { return r.batch.Stats() }

// Render draws everything p recorded this frame. screen is the logical size
// the ops were laid out in.
func (r *RendererGL) Render(p *paint.Painter, screen geom.GblSz) error {
	defer profiler.Start("gl.Render")()

	r.upload(p.Textures())
	r.screen.SetSize(screen)
	r.batch.Build(p.SortedOps())
	calls := r.batch.Calls()
	if len(calls) == 0 {
		return nil
	}

	verts, inds := r.batch.Verts(), r.batch.Indices()
	gl.UseProgram(r.program)
	vp := r.screen.VP()
	gl.UniformMatrix4fv(r.uVP, 1, false, &vp[0])

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STREAM_DRAW)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(inds)*4, gl.Ptr(inds), gl.STREAM_DRAW)

	for _, c := range calls {
		for slot, id := range c.Textures {
			gl.ActiveTexture(gl.TEXTURE0 + uint32(slot))
			gl.BindTexture(gl.TEXTURE_2D, r.texture(id))
		}
		gl.DrawElementsWithOffset(gl.TRIANGLES, int32(c.Count), gl.UNSIGNED_INT, uintptr(c.First*4))
	}
	gl.BindVertexArray(0)
	gl.UseProgram(0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return errors.Wrap("gl.Render", errors.KindRender, fmt.Errorf("GL error 0x%x", code))
	}
	return nil
}

func (r *RendererGL) texture(id paint.TexID) uint32 {
	if t, ok := r.textures[id]; ok {
		return t
	}
	return r.white
}

// upload sends dirty textures to the GPU and clears their flag.
func (r *RendererGL) upload(texs []*paint.Texture) {
	for _, t := range texs {
		if !t.Dirty {
			continue
		}
		h, ok := r.textures[t.ID]
		if !ok {
			h = newTexture(t.Img)
			r.textures[t.ID] = h
		}
		b := t.Img.Bounds()
		gl.BindTexture(gl.TEXTURE_2D, h)
		gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(t.Img.Stride/4))
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(b.Dx()), int32(b.Dy()), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(t.Img.Pix))
		gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
		t.Dirty = false
	}
}

func newTexture(img *image.RGBA) uint32 {
	var h uint32
	b := img.Bounds()
	gl.GenTextures(1, &h)
	gl.BindTexture(gl.TEXTURE_2D, h)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(b.Dx()), int32(b.Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(nil))
	return h
}

// --- Shader utilities ---

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("shader compile error: %s", log)
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("program link error: %s", log)
	}
	return prog, nil
}
