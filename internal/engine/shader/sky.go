package shader

// Attribute locations of the sky shader, matching the interleaved
// texcoord/normal/position vertex layout.
const (
	TexCoordLocation = 0
	NormalLocation   = 1
	PositionLocation = 2
)

// SkyVertexSource transforms vertices by a single MVP matrix.
const SkyVertexSource = `#version 410 core

layout (location = 0) in vec2 aTexCoord;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec3 aPosition;

uniform mat4 uMVP;
uniform float uPointSize;

out vec3 vNormal;

void main() {
    gl_Position = uMVP * vec4(aPosition, 1.0);
    gl_PointSize = uPointSize;
    vNormal = aNormal;
}
`

// SkyFragmentSource draws in a flat colour. uShade darkens faces turned away
// from +X so the globe reads as a solid; lines and points pass uShade = 0.
const SkyFragmentSource = `#version 410 core

in vec3 vNormal;

uniform vec4 uColor;
uniform float uShade;

out vec4 FragColor;

void main() {
    float light = mix(1.0, 0.45 + 0.55 * max(dot(normalize(vNormal), vec3(0.8, 0.0, 0.6)), 0.0), uShade);
    FragColor = vec4(uColor.rgb * light, uColor.a);
}
`
