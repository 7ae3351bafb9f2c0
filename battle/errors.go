package battle

import "fmt"

// InvalidStatError is returned by ComputeStat for unknown stat names or
// stages outside [-6, 6].
type InvalidStatError struct {
	Stat  string
	Stage int
}

func (e InvalidStatError) Error() string {
	return fmt.Sprintf("invalid stat request: stat=%q stage=%d", e.Stat, e.Stage)
}

// TurnResolutionError is returned when a submitted action cannot be
// executed. The battle state may have been partially mutated by the time
// the error surfaces, so callers should treat the state as poisoned.
type TurnResolutionError struct {
	Side   int
	Reason string
}

func (e TurnResolutionError) Error() string {
	return fmt.Sprintf("turn resolution failed for side %d: %s", e.Side, e.Reason)
}

// EnvironmentTerminatedError is returned by Step once the battle is over.
type EnvironmentTerminatedError struct {
	Winner int
}

func (e EnvironmentTerminatedError) Error() string {
	return fmt.Sprintf("battle already terminated, winner side %d", e.Winner)
}
