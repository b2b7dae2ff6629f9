// Package shaders holds the GLSL sources of the scene renderers.
package shaders

// WaterVertexShader maps the plane into texture space for the normal map.
const WaterVertexShader = `#version 410 core
layout(location = 0) in vec3 aPosition;

uniform mat4 uModel;
uniform mat4 uViewProj;
uniform mat4 uTexture;

out vec3 vWorldPos;
out vec2 vTexCoord;

void main() {
    vec4 world = uModel * vec4(aPosition, 1.0);
    vWorldPos = world.xyz;
    vTexCoord = (uTexture * vec4(aPosition, 1.0)).xz;
    gl_Position = uViewProj * world;
}
`

// WaterFragmentShader mixes cubemap reflection and refraction by a
// Schlick Fresnel term using normals from the simulated height field.
const WaterFragmentShader = `#version 410 core
in vec3 vWorldPos;
in vec2 vTexCoord;

uniform sampler2D uNormalMap;
uniform samplerCube uCubemap;
uniform vec3 uCameraPos;

out vec4 FragColor;

const float kAirToWater = 1.0 / 1.33;
const float kF0 = 0.02;

void main() {
    vec3 n = normalize(texture(uNormalMap, vTexCoord).rgb * 2.0 - 1.0);
    vec3 v = normalize(vWorldPos - uCameraPos);

    float eta = kAirToWater;
    if (dot(v, n) > 0.0) {
        n = -n;
        eta = 1.0 / kAirToWater;
    }

    vec3 reflected = texture(uCubemap, reflect(v, n)).rgb;
    vec3 r = refract(v, n, eta);
    vec3 refracted = length(r) > 0.0 ? texture(uCubemap, r).rgb : reflected;

    float cosTheta = max(dot(-v, n), 0.0);
    float fresnel = kF0 + (1.0 - kF0) * pow(1.0 - cosTheta, 5.0);

    FragColor = vec4(mix(refracted, reflected, fresnel), 1.0);
}
`

// DuckVertexShader passes the tangent frame for anisotropic highlights.
const DuckVertexShader = `#version 410 core
layout(location = 0) in vec3 aPosition;
layout(location = 1) in vec3 aNormal;
layout(location = 2) in vec3 aTangent;
layout(location = 3) in vec2 aTexCoord;

uniform mat4 uModel;
uniform mat4 uViewProj;

out vec3 vWorldPos;
out vec3 vNormal;
out vec3 vTangent;
out vec2 vTexCoord;

void main() {
    vec4 world = uModel * vec4(aPosition, 1.0);
    mat3 normalMatrix = transpose(inverse(mat3(uModel)));
    vWorldPos = world.xyz;
    vNormal = normalize(normalMatrix * aNormal);
    vTangent = normalize(mat3(uModel) * aTangent);
    vTexCoord = aTexCoord;
    gl_Position = uViewProj * world;
}
`

// DuckFragmentShader lights the duck with a Kajiya-Kay specular term.
const DuckFragmentShader = `#version 410 core
in vec3 vWorldPos;
in vec3 vNormal;
in vec3 vTangent;
in vec2 vTexCoord;

uniform sampler2D uTexture;
uniform vec3 uCameraPos;
uniform vec3 uLightPos;

out vec4 FragColor;

void main() {
    vec3 albedo = texture(uTexture, vTexCoord).rgb;
    vec3 n = normalize(vNormal);
    vec3 t = normalize(vTangent);
    vec3 l = normalize(uLightPos - vWorldPos);
    vec3 v = normalize(uCameraPos - vWorldPos);
    vec3 h = normalize(l + v);

    float diffuse = max(dot(n, l), 0.0);
    float th = dot(t, h);
    float specular = pow(sqrt(max(1.0 - th * th, 0.0)), 64.0) * diffuse;

    vec3 color = albedo * (0.25 + 0.75 * diffuse) + vec3(0.3) * specular;
    FragColor = vec4(color, 1.0);
}
`

// SkyboxVertexShader uses the cube position as the lookup direction.
const SkyboxVertexShader = `#version 410 core
layout(location = 0) in vec3 aPosition;

uniform mat4 uModel;
uniform mat4 uViewProj;

out vec3 vDirection;

void main() {
    vDirection = aPosition;
    gl_Position = uViewProj * uModel * vec4(aPosition, 1.0);
}
`

// SkyboxFragmentShader samples the cubemap.
const SkyboxFragmentShader = `#version 410 core
in vec3 vDirection;

uniform samplerCube uCubemap;

out vec4 FragColor;

void main() {
    FragColor = texture(uCubemap, vDirection);
}
`
