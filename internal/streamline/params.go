// Package streamline implements the streamline generator spec.md §4.C
// describes: seeded tensor-line tracing with density-controlled placement,
// dangling-end joining, and cul-de-sac synthesis.
//
// Follows a two-tier road placement idiom (trace the major network first,
// then minor, each tier consulting the grids the previous tier populated)
// and a candidate-seed-stack pattern for seeding new streamlines,
// generalized from fixed road/path tiers to an arbitrary ordered
// RoadParams list.
package streamline

// RoadParams holds one tier's tracing parameters, matching spec.md §6's
// road parameter record.
type RoadParams struct {
	Name string
	Type string // "road" or "path"

	Dsep        float64
	Dtest       float64
	Dstep       float64
	DCircleJoin float64
	Dlookahead  float64

	RoadJoinAngle        float64
	PathIntegrationLimit int
	MaxSeedTries         int
	EarlyCollisionProb   float64 `json:"earlyCollisionProbability"`
	SimplificationTol    float64 `json:"simplificationTolerance"`
	CulDeSacProbability  float64
	CulDeSacRadiusMin    float64
	CulDeSacRadiusMax    float64
	SeedAtEndpoints      bool
}

// minCulDeSacDistance is the fixed clearance subtracted from the candidate
// join distance when computing a cul-de-sac's allowed radius (spec.md
// §4.C.5's MIN_CULDESAC_DISTANCE). Not spelled out numerically in the
// spec; chosen in line with the other tracing distances (comfortably
// smaller than any tier's CulDeSacRadiusMin in practice).
const minCulDeSacDistance = 1.0

// culDeSacStepRad is CULDESAC_STEP_SIZE_RAD (spec.md §4.C.5).
const culDeSacStepRad = 0.3

// Normalize clamps dtest to at most dsep. It does not check dstep < dsep;
// internal/config's validate rejects that at load time. Called once by
// NewGenerator.
func (p RoadParams) Normalize() RoadParams {
	if p.Dtest > p.Dsep {
		p.Dtest = p.Dsep
	}
	return p
}
