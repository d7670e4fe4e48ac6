package desktop

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const glslVersion = "#version 410 core\n"

// toClip maps playfield coordinates (origin top-left, y down) to clip space.
const toClip = `
uniform vec2 uResolution;

vec4 toClip(vec2 p) {
    vec2 ndc = p / uResolution * 2.0 - 1.0;
    return vec4(ndc.x, -ndc.y, 0.0, 1.0);
}
`

// Flat coloured triangles.
const (
	rectVertSrc = glslVersion + toClip + `
layout(location = 0) in vec2 aPos;
layout(location = 1) in vec4 aColor;

out vec4 vColor;

void main() {
    gl_Position = toClip(aPos);
    vColor = aColor;
}
`
	rectFragSrc = glslVersion + `
in vec4 vColor;
out vec4 FragColor;

void main() {
    FragColor = vColor;
}
`
)

// Glyph quads sampling the font atlas, tinted per vertex.
const (
	textVertSrc = glslVersion + toClip + `
layout(location = 0) in vec2 aPos;
layout(location = 1) in vec2 aUV;
layout(location = 2) in vec4 aColor;

out vec2 vUV;
out vec4 vColor;

void main() {
    gl_Position = toClip(aPos);
    vUV = aUV;
    vColor = aColor;
}
`
	textFragSrc = glslVersion + `
uniform sampler2D uFontTex;

in vec2 vUV;
in vec4 vColor;
out vec4 FragColor;

void main() {
    float a = texture(uFontTex, vUV).a * vColor.a;
    if (a < 0.01) discard;
    FragColor = vec4(vColor.rgb, a);
}
`
)

type ivGetter func(id, pname uint32, params *int32)

type logGetter func(id uint32, bufSize int32, length *int32, log *uint8)

func succeeded(id, pname uint32, get ivGetter) bool {
	var v int32
	get(id, pname, &v)
	return v == gl.TRUE
}

// infoLog reads a shader or program log.
func infoLog(id uint32, get ivGetter, read logGetter) string {
	var n int32
	get(id, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return "no log"
	}
	buf := make([]byte, n)
	read(id, n, nil, &buf[0])
	return strings.TrimRight(string(buf), "\x00\n")
}

func compileShader(kind uint32, src string) (uint32, error) {
	sh := gl.CreateShader(kind)
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(sh, 1, csrc, nil)
	free()
	gl.CompileShader(sh)
	if succeeded(sh, gl.COMPILE_STATUS, gl.GetShaderiv) {
		return sh, nil
	}
	msg := infoLog(sh, gl.GetShaderiv, gl.GetShaderInfoLog)
	gl.DeleteShader(sh)
	return 0, fmt.Errorf("compile: %s", msg)
}

// buildProgram compiles and links a vertex/fragment pair. The shader objects
// are released whether or not linking succeeds.
func buildProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(gl.VERTEX_SHADER, vertSrc)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(gl.FRAGMENT_SHADER, fragSrc)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fs)

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)
	gl.DetachShader(prog, vs)
	gl.DetachShader(prog, fs)
	if succeeded(prog, gl.LINK_STATUS, gl.GetProgramiv) {
		return prog, nil
	}
	msg := infoLog(prog, gl.GetProgramiv, gl.GetProgramInfoLog)
	gl.DeleteProgram(prog)
	return 0, fmt.Errorf("link: %s", msg)
}
