package sim

// Phase is the turn state of a round.
type Phase int

const (
	PhaseAiming Phase = iota
	PhaseLaunched
	PhaseResolving
	PhaseRoundOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseAiming:
		return "Aiming"
	case PhaseLaunched:
		return "Launched"
	case PhaseResolving:
		return "Resolving"
	case PhaseRoundOver:
		return "RoundOver"
	default:
		return "Unknown"
	}
}

// TurnController sequences players through
// Aiming -> Launched -> Resolving -> Aiming(next), ending in RoundOver.
// Current and shooter are indices into the round's combatant slice.
type TurnController struct {
	phase   Phase
	current int
	shooter int
}

// NewTurnController starts a round with the first living combatant aiming.
func NewTurnController(cs []Combatant) *TurnController {
	tc := &TurnController{}
	tc.Reset(cs)
	return tc
}

// Reset puts the controller back to the first living combatant, or straight
// into RoundOver when fewer than two are alive.
func (tc *TurnController) Reset(cs []Combatant) {
	tc.phase = PhaseAiming
	tc.current = 0
	tc.shooter = -1
	if AliveCount(cs) <= 1 {
		tc.phase = PhaseRoundOver
		return
	}
	if !cs[0].Alive {
		tc.current, _ = NextAlive(cs, 0)
	}
}

// Phase returns the current phase.
func (tc *TurnController) Phase() Phase { return tc.phase }

// Current returns the index of the aiming (or last aiming) combatant.
func (tc *TurnController) Current() int { return tc.current }

// Shooter returns the index of the combatant whose shot is in flight or
// being resolved, or -1 before the first launch.
func (tc *TurnController) Shooter() int { return tc.shooter }

// AcceptsInput reports whether aim, power and launch input may be applied.
// Only the Aiming phase accepts input.
func (tc *TurnController) AcceptsInput() bool {
	return tc.phase == PhaseAiming
}

// Launch moves Aiming to Launched. It reports false in any other phase.
func (tc *TurnController) Launch() bool {
	if tc.phase != PhaseAiming {
		return false
	}
	tc.shooter = tc.current
	tc.phase = PhaseLaunched
	return true
}

// Land moves Launched to Resolving once the flight reached a terminal outcome.
func (tc *TurnController) Land() bool {
	if tc.phase != PhaseLaunched {
		return false
	}
	tc.phase = PhaseResolving
	return true
}

// Finish ends Resolving. The round is over when at most one combatant is
// alive; otherwise the next living combatant starts aiming.
func (tc *TurnController) Finish(cs []Combatant) bool {
	if tc.phase != PhaseResolving {
		return false
	}
	if AliveCount(cs) <= 1 {
		tc.phase = PhaseRoundOver
		return true
	}
	next, ok := NextAlive(cs, tc.current)
	if !ok {
		tc.phase = PhaseRoundOver
		return true
	}
	tc.current = next
	tc.phase = PhaseAiming
	return true
}

// NextAlive returns the first living combatant after from, wrapping around.
// It returns from itself when that is the only one alive, and false when
// nobody is alive.
func NextAlive(cs []Combatant, from int) (int, bool) {
	n := len(cs)
	if AliveCount(cs) == 0 {
		return from, false
	}
	i := from
	for range n {
		i = (i + 1) % n
		if cs[i].Alive {
			return i, true
		}
	}
	return from, false
}
