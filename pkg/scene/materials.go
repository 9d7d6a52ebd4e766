package scene

// Material names.
const (
	MaterialRoad     = "road"
	MaterialSidewalk = "sidewalk"
	MaterialPark     = "park"
	MaterialBody     = "building_body"
	MaterialRoof     = "roof"
	MaterialDoor     = "door"
	MaterialSign     = "sign"
	MaterialWindow   = "window"
	MaterialTrunk    = "trunk"
	MaterialCanopy   = "canopy"
	MaterialPole     = "pole"
	MaterialBulb     = "bulb"
	MaterialGround   = "ground"
)

// DefaultMaterials returns the material table of a night-time street
// scene. Building body, roof and window colors are set per entity.
func DefaultMaterials() map[string]Material {
	return map[string]Material{
		MaterialRoad:     {Color: "#0a0a0a", Roughness: 0.9},
		MaterialSidewalk: {Color: "#0f0f0f", Roughness: 0.8, Metalness: 0.05},
		MaterialPark:     {Color: "#0a1a12", Roughness: 0.9},
		MaterialBody:     {Color: "#3a4f5a", Roughness: 0.35, Metalness: 0.15},
		MaterialRoof:     {Color: "#3d342b", Roughness: 0.6, Metalness: 0.05},
		MaterialDoor:     {Color: "#1b1b1b", Roughness: 0.8, Metalness: 0.1},
		MaterialSign:     {Color: "#101418", Roughness: 0.4, Metalness: 0.2},
		MaterialWindow:   {Color: "#8ecae6", EmissiveIntensity: 0.6},
		MaterialTrunk:    {Color: "#3b2a1a", Roughness: 0.8},
		MaterialCanopy:   {Color: "#0b3a24", Roughness: 0.7},
		MaterialPole:     {Color: "#1a1a1a", Roughness: 0.7, Metalness: 0.2},
		MaterialBulb:     {Color: "#87d7ff", Emissive: "#7fd0ff", EmissiveIntensity: 0.9},
		MaterialGround:   {Color: "#050505", Roughness: 1},
	}
}

// DefaultEnvironment returns dim ambient light with a cyan key light and a
// magenta fill, dark fog and a 200x200 ground plane.
func DefaultEnvironment() Environment {
	return Environment{
		Ambient: 0.2,
		PointLights: []Light{
			{Position: Vec3{X: 10, Y: 20, Z: 10}, Color: "#00ffff", Intensity: 0.9},
			{Position: Vec3{X: -10, Y: 12, Z: -10}, Color: "#ff00ff", Intensity: 0.4},
		},
		Fog:    Fog{Color: "#040404", Near: 20, Far: 120},
		Ground: Ground{Width: 200, Depth: 200, Material: MaterialGround},
	}
}
