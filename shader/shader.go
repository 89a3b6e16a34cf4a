package shader

import (
	"fmt"
)

// DefaultUVVarying is the name the fragment shader reads plane UVs from.
const DefaultUVVarying = "vUv"

// ────────────────────────────────── Plane material ──────────────────────────────────

// The vertex stage is native desktop GLSL. Its output name is filled in
// from the translated fragment shader so the two stages link.
const vertexShaderTemplateGL = `#version 410 core
layout (location = 0) in vec3 position;
layout (location = 1) in vec2 uv;
uniform mat4 projectionMatrix;
uniform mat4 modelViewMatrix;
out vec2 %[1]s;
void main() {
    %[1]s = uv;
    gl_Position = projectionMatrix * modelViewMatrix * vec4(position, 1.0);
}
`

// The fragment stage is WebGL2 GLSL and goes through the translator.
const fragmentShaderSourceWebGL2 = `#version 300 es
precision highp float;

uniform float time;
uniform float progress;
uniform vec2 mouse;
uniform vec2 resolution;
uniform vec2 uvRate1;
uniform sampler2D matcap;

in vec2 vUv;
out vec4 fragColor;

const float PI = 3.141592653589793;

mat2 rotate2d(float a) {
    float s = sin(a);
    float c = cos(a);
    return mat2(c, -s, s, c);
}

float blob(vec2 p, vec2 center, float radius) {
    float d = length(p - center);
    return radius * radius / max(d * d, 1e-4);
}

void main() {
    // cover-fit the unit plane: the short axis keeps [0,1], the long one is cropped
    vec2 uv = (vUv * uvRate1 - vec2(0.5)) * resolution + vec2(0.5);
    vec2 p = uv - vec2(0.5);

    vec2 m = mouse * 0.5 * resolution;

    float field = 0.0;
    for (int i = 0; i < 4; i++) {
        float fi = float(i);
        vec2 orbit = rotate2d(time * 0.3 + fi * PI * 0.5) * vec2(0.18 + 0.04 * sin(time + fi), 0.0);
        field += blob(p, orbit, 0.07);
    }
    field += blob(p, m, 0.09 + 0.05 * progress);

    float edge = smoothstep(0.9, 1.1, field);

    // fake a sphere normal from the field gradient and look it up in the matcap
    vec2 grad = vec2(dFdx(field), dFdy(field));
    vec3 normal = normalize(vec3(-grad * 8.0, 1.0));
    vec2 muv = normal.xy * 0.495 + 0.5;
    vec3 lit = texture(matcap, muv).rgb;

    vec3 stripes = vec3(0.5 + 0.5 * sin(40.0 * length(p) - time * 2.0));
    vec3 bg = mix(vec3(0.93), vec3(0.12, 0.12, 0.16), progress) * (0.9 + 0.1 * stripes);

    fragColor = vec4(mix(bg, lit, edge), 1.0);
}
`

// ──────────────────────────────────── Panel overlay ──────────────────────────────────

const panelVertexShaderSourceGL = `#version 410 core
layout (location = 0) in vec2 in_vert;
layout (location = 1) in vec2 in_uv;
uniform mat4 projection;
out vec2 frag_uv;
void main() {
    frag_uv = in_uv;
    gl_Position = projection * vec4(in_vert, 0.0, 1.0);
}
`

const panelFragmentShaderSourceGL = `#version 410 core
in vec2 frag_uv;
out vec4 fragColor;
uniform sampler2D u_texture;
uniform vec4 u_color;
uniform int u_textured;
void main() {
    if (u_textured == 1) {
        fragColor = vec4(u_color.rgb, u_color.a * texture(u_texture, frag_uv).a);
    } else {
        fragColor = u_color;
    }
}
`

// ────────────────────────────────── Public API ─────────────────────────────────

// GenerateVertexShader returns the plane vertex shader writing UVs to
// the varying named uvVarying.
func GenerateVertexShader(uvVarying string) string {
	if uvVarying == "" {
		uvVarying = DefaultUVVarying
	}
	return fmt.Sprintf(vertexShaderTemplateGL, uvVarying)
}

// GetFragmentShader returns the plane fragment shader in WebGL2 GLSL.
func GetFragmentShader() string {
	return fragmentShaderSourceWebGL2
}

// GetPanelShaders returns the vertex and fragment shaders used to draw the
// control panel.
func GetPanelShaders() (vertex, fragment string) {
	return panelVertexShaderSourceGL, panelFragmentShaderSourceGL
}
