package battle

import "github.com/samber/lo"

// Fixed damage kinds bypass the regular damage formula entirely.
const (
	FIXED_NONE = iota
	FIXED_LEVEL
	FIXED_CONSTANT
	FIXED_HALF_HP
	FIXED_SACRIFICE
)

const (
	FLAG_CONTACT = "contact"
	FLAG_SOUND   = "sound"
	FLAG_PUNCH   = "punch"
)

type StatChange struct {
	Stat   string
	Change int
	Self   bool
}

// MoveData is immutable once loaded. An Accuracy of 0 means the move
// always hits. MinHits/MaxHits of 0 means a single hit.
type MoveData struct {
	Name     string
	Type     string
	Category string
	Power    int
	Accuracy int
	Priority int

	MinHits int
	MaxHits int

	Flags []string

	OHKO        bool
	FixedKind   int
	FixedAmount int

	RecoilPercent int
	DrainPercent  int

	Ailment       int
	AilmentChance int

	StatChanges []StatChange
	StatChance  int

	FlinchChance int
	HighCrit     bool

	// Moves like Darkest Lariat treat the target's defense as halved.
	TargetDefHalved bool
}

func (m MoveData) IsNil() bool {
	return m.Name == ""
}

func (m MoveData) MultiHit() bool {
	return m.MaxHits > 1
}

func (m MoveData) AlwaysHits() bool {
	return m.Accuracy <= 0
}

func (m MoveData) HasFlag(flag string) bool {
	return lo.Contains(m.Flags, flag)
}

// Moves whose power is halved by grassy terrain against grounded targets.
var grassyWeakenedMoves = []string{"earthquake", "bulldoze", "magnitude"}
