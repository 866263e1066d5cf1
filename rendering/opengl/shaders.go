package opengl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Blinn-Phong cubes with two directional lights, ambient, emissive and fog
const cubeVertexShader = `
#version 410 core

layout (location = 0) in vec3 position;
layout (location = 1) in vec3 normal;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;
uniform mat3 normalMatrix;

out vec3 worldPos;
out vec3 worldNormal;
out float fogDepth;

void main() {
    vec4 wp = model * vec4(position, 1.0);
    vec4 mv = view * wp;
    worldPos = wp.xyz;
    worldNormal = normalize(normalMatrix * normal);
    fogDepth = -mv.z;
    gl_Position = projection * mv;
}
`

const cubeFragmentShader = `
#version 410 core

in vec3 worldPos;
in vec3 worldNormal;
in float fogDepth;
out vec4 outColor;

uniform vec3 diffuse;
uniform vec3 emissive;
uniform float opacity;
uniform float shininess;
uniform vec3 specular;

uniform vec3 ambientColor;
uniform vec3 lightDir[2];
uniform vec3 lightColor[2];
uniform vec3 cameraPos;

uniform vec3 fogColor;
uniform float fogNear;
uniform float fogFar;

void main() {
    vec3 n = normalize(worldNormal);
    if (!gl_FrontFacing) {
        n = -n;
    }
    vec3 v = normalize(cameraPos - worldPos);

    vec3 light = ambientColor;
    vec3 spec = vec3(0.0);
    for (int i = 0; i < 2; i++) {
        vec3 l = normalize(lightDir[i]);
        float ndl = max(dot(n, l), 0.0);
        light += lightColor[i] * ndl;
        vec3 h = normalize(l + v);
        spec += lightColor[i] * pow(max(dot(n, h), 0.0), shininess) * ndl;
    }

    vec3 color = diffuse * light + specular * spec + emissive;
    float fog = smoothstep(fogNear, fogFar, fogDepth);
    outColor = vec4(mix(color, fogColor, fog), opacity);
}
`

// Square point sprites sized in world units, shrinking with distance
const pointVertexShader = `
#version 410 core

layout (location = 0) in vec3 position;

uniform mat4 view;
uniform mat4 projection;
uniform float size;
uniform float scale;

out float fogDepth;

void main() {
    vec4 mv = view * vec4(position, 1.0);
    fogDepth = -mv.z;
    gl_PointSize = max(size * scale / -mv.z, 1.0);
    gl_Position = projection * mv;
}
`

const pointFragmentShader = `
#version 410 core

in float fogDepth;
out vec4 outColor;

uniform vec3 color;
uniform float opacity;
uniform vec3 fogColor;
uniform float fogNear;
uniform float fogFar;

void main() {
    float fog = smoothstep(fogNear, fogFar, fogDepth);
    outColor = vec4(mix(color, fogColor, fog), opacity);
}
`

// compileShader compiles a single shader
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile: %s", strings.TrimRight(log, "\x00"))
	}

	return shader, nil
}

// newProgram compiles and links a vertex/fragment pair
func newProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link failed: %s", strings.TrimRight(log, "\x00"))
	}

	return program, nil
}

// uniforms caches uniform locations of a linked program
type uniforms map[string]int32

func lookupUniforms(program uint32, names ...string) uniforms {
	u := make(uniforms, len(names))
	for _, name := range names {
		u[name] = gl.GetUniformLocation(program, gl.Str(name+"\x00"))
	}
	return u
}
