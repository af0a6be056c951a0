package renderer

// Lighting is computed in view space. Light positions and directions are
// transformed on the CPU before upload.
const sceneVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec3 aNormal;

out vec2 vTexCoord;
out vec3 vNormal;
out vec3 vPosition;

uniform mat4 projectionMatrix;
uniform mat4 modelViewMatrix;

void main() {
	vec4 mvPos = modelViewMatrix * vec4(aPosition, 1.0);
	gl_Position = projectionMatrix * mvPos;
	vTexCoord = aTexCoord;
	vNormal = normalize(modelViewMatrix * vec4(aNormal, 0.0)).xyz;
	vPosition = mvPos.xyz;
}
`

const sceneFragmentShader = `
#version 410 core

in vec2 vTexCoord;
in vec3 vNormal;
in vec3 vPosition;

out vec4 fragColor;

struct Attenuation {
	float constant;
	float linear;
	float exponent;
};

struct PointLight {
	vec3 colour;
	vec3 position;
	float intensity;
	Attenuation att;
};

struct DirectionalLight {
	vec3 colour;
	vec3 direction;
	float intensity;
};

struct Material {
	vec4 colour;
	int useColour;
	float reflectance;
};

uniform sampler2D textureSampler;
uniform vec3 ambientLight;
uniform float specularPower;
uniform Material material;
uniform PointLight pointLight;
uniform DirectionalLight directionalLight;

vec4 lightColour(vec3 colour, float intensity, vec3 position, vec3 toLight, vec3 normal) {
	float diffuseFactor = max(dot(normal, toLight), 0.0);
	vec4 diffuse = vec4(colour, 1.0) * intensity * diffuseFactor;

	vec3 toCamera = normalize(-position);
	vec3 reflected = normalize(reflect(-toLight, normal));
	float specularFactor = pow(max(dot(toCamera, reflected), 0.0), specularPower);
	vec4 specular = intensity * specularFactor * material.reflectance * vec4(colour, 1.0);

	return diffuse + specular;
}

vec4 pointLightColour(PointLight light, vec3 position, vec3 normal) {
	vec3 toLight = light.position - position;
	vec4 colour = lightColour(light.colour, light.intensity, position, normalize(toLight), normal);

	float d = length(toLight);
	float att = light.att.constant + light.att.linear * d + light.att.exponent * d * d;
	return colour / max(att, 0.0001);
}

void main() {
	vec4 base = material.colour;
	if (material.useColour == 0) {
		base = texture(textureSampler, vTexCoord);
	}

	vec3 normal = normalize(vNormal);
	vec4 total = vec4(ambientLight, 1.0);
	total += lightColour(directionalLight.colour, directionalLight.intensity,
		vPosition, normalize(directionalLight.direction), normal);
	total += pointLightColour(pointLight, vPosition, normal);

	fragColor = base * total;
}
`
