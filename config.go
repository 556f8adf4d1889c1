package citygen

import (
	"github.com/jonaszell97/CityGen/internal/logging"
	"github.com/jonaszell97/CityGen/internal/streamline"
)

// Config is the Map configuration spec.md §6 describes ("Map configuration
// (consumed)"). internal/config loads this from JSON for the CLI; a caller
// embedding this package directly may also construct one in code.
type Config struct {
	Seed int64
	Size float64

	Smooth             bool
	RandomRadialFields int

	ParkAreaPercentage      float64
	MinDistanceBetweenParks float64

	RoadParameters []streamline.RoadParams

	// Logger receives generation progress and §7.2/§7.3 events (tier
	// streamline counts, boundary restart attempts). Nil means discard.
	Logger *logging.Logger
}

func (c Config) logger() *logging.Logger {
	if c.Logger == nil {
		return logging.Discard()
	}
	return c.Logger
}

// maxStreamlinesPerTier bounds how many streamlines CreateAllStreamlines
// will trace per eigenvector direction before giving up, regardless of
// whether seeding is still succeeding. Not a spec.md §6 config field (the
// spec only bounds tracing via seed exhaustion); this is a generosity cap
// so a pathological configuration cannot loop indefinitely. Chosen well
// above any realistic tier's seed-exhaustion point for a single generation.
const maxStreamlinesPerTier = 4000

// maxLoopSize bounds the rightmost-turn face walk in internal/graph the
// same way: a generous cap, not a tunable spec.md §6 exposes.
const maxLoopSize = 256
