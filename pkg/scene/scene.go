package scene

import "github.com/ChicagoDave/neighborhood/pkg/spec"

// EntityType identifies the kind of entity.
type EntityType string

const (
	EntityBuilding EntityType = "building"
	EntityRoof     EntityType = "roof"
	EntityDoor     EntityType = "door"
	EntitySign     EntityType = "sign"
	EntityWindow   EntityType = "window"
	EntityRoad     EntityType = "road"
	EntitySidewalk EntityType = "sidewalk"
	EntityPark     EntityType = "park"
	EntityTrunk    EntityType = "trunk"
	EntityCanopy   EntityType = "canopy"
	EntityPole     EntityType = "pole"
	EntityBulb     EntityType = "bulb"
)

// Geometry is the mesh family an entity is drawn with.
type Geometry string

const (
	GeometryBox         Geometry = "box"
	GeometryCone        Geometry = "cone"
	GeometryCylinder    Geometry = "cylinder"
	GeometrySphere      Geometry = "sphere"
	GeometryIcosahedron Geometry = "icosahedron"
	GeometryPlane       Geometry = "plane"
)

// Batch names a set of entities drawn as one instanced mesh.
type Batch string

const (
	BatchRoads     Batch = "roads"
	BatchSidewalks Batch = "sidewalks"
	BatchTrunks    Batch = "trunks"
	BatchCanopies  Batch = "canopies"
	BatchPoles     Batch = "poles"
	BatchBulbs     Batch = "bulbs"
)

// Batches lists the instanced batches in draw order.
var Batches = []Batch{BatchRoads, BatchSidewalks, BatchTrunks, BatchCanopies, BatchPoles, BatchBulbs}

// Vec3 is a 3D vector.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// BoundingBox defines an axis-aligned bounding box.
type BoundingBox struct {
	Min Vec3 `json:"min"`
	Max Vec3 `json:"max"`
}

// Material is a shared surface description. Entities may override the
// color and emissive color per instance.
type Material struct {
	Color             string  `json:"color"`
	Roughness         float64 `json:"roughness"`
	Metalness         float64 `json:"metalness"`
	Emissive          string  `json:"emissive,omitempty"`
	EmissiveIntensity float64 `json:"emissive_intensity,omitempty"`
}

// Entity is a single element in the scene graph. Position is the center
// of the entity's footprint at its lowest point; Dimensions are its
// extents in its own frame before the yaw in Rotation is applied.
type Entity struct {
	ID         string         `json:"id"`
	Type       EntityType     `json:"type"`
	Geometry   Geometry       `json:"geometry"`
	Position   Vec3           `json:"position"`
	Dimensions Vec3           `json:"dimensions"`
	Rotation   [4]float64     `json:"rotation"` // quaternion [x, y, z, w]
	Material   string         `json:"material"`
	Color      string         `json:"color,omitempty"`
	Emissive   string         `json:"emissive,omitempty"`
	Batch      Batch          `json:"batch,omitempty"`
	Block      string         `json:"block,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	Children   []string       `json:"children,omitempty"`
}

// Graph is the complete scene graph for one layout.
type Graph struct {
	Metadata    Metadata            `json:"metadata"`
	Environment Environment         `json:"environment"`
	Materials   map[string]Material `json:"materials"`
	Entities    []Entity            `json:"entities"`
	Groups      Groups              `json:"groups"`
}

// Metadata holds scene-level information.
type Metadata struct {
	Config      spec.Config `json:"config"`
	GeneratedAt string      `json:"generated_at"`
	Span        float64     `json:"span"`
	Bounds      BoundingBox `json:"bounds"`
}

// Groups organizes entity IDs by various axes for fast filtering.
type Groups struct {
	Blocks      map[string][]string     `json:"blocks"`
	Batches     map[Batch][]string      `json:"batches"`
	EntityTypes map[EntityType][]string `json:"entity_types"`
}

// Light is a colored point light.
type Light struct {
	Position  Vec3    `json:"position"`
	Color     string  `json:"color"`
	Intensity float64 `json:"intensity"`
}

// Fog is linear distance fog.
type Fog struct {
	Color string  `json:"color"`
	Near  float64 `json:"near"`
	Far   float64 `json:"far"`
}

// Ground is the plane the neighborhood stands on.
type Ground struct {
	Width    float64 `json:"width"`
	Depth    float64 `json:"depth"`
	Material string  `json:"material"`
}

// Environment is the lighting and backdrop of the scene.
type Environment struct {
	Ambient     float64 `json:"ambient"`
	PointLights []Light `json:"point_lights"`
	Fog         Fog     `json:"fog"`
	Ground      Ground  `json:"ground"`
}

// NewGraph creates an empty scene graph with the shared materials and the
// default environment.
func NewGraph() *Graph {
	return &Graph{
		Environment: DefaultEnvironment(),
		Materials:   DefaultMaterials(),
		Entities:    []Entity{},
		Groups: Groups{
			Blocks:      make(map[string][]string),
			Batches:     make(map[Batch][]string),
			EntityTypes: make(map[EntityType][]string),
		},
	}
}
