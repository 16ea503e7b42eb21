package domain

// Phase is the stage a game is currently in. PhaseNoGame is a synthetic value
// returned to callers who are not in any game; it is never stored on a Game.
type Phase string

const (
	PhaseNoGame      Phase = "NO_GAME"
	PhaseWaiting     Phase = "WAITING"
	PhasePreGame     Phase = "PRE_GAME"
	PhasePlaying     Phase = "PLAYING"
	PhaseFindInsider Phase = "FIND_INSIDER"
	PhaseSummary     Phase = "SUMMARY"
	PhaseLost        Phase = "LOST"
)

// GameAction is a caller-initiated operation that may mutate a game.
type GameAction string

const (
	ActionCreate         GameAction = "CREATE"
	ActionJoin           GameAction = "JOIN"
	ActionReady          GameAction = "READY"
	ActionReset          GameAction = "RESET"
	ActionAssignRoles    GameAction = "ASSIGN_ROLES"
	ActionExchangeWord   GameAction = "EXCHANGE_WORD"
	ActionStart          GameAction = "START"
	ActionGuessed        GameAction = "GUESSED"
	ActionTimeUp         GameAction = "TIME_UP"
	ActionVotePlayer     GameAction = "VOTE_PLAYER"
	ActionCompleteVoting GameAction = "COMPLETE_VOTING"
	ActionEnd            GameAction = "END"
)

// legalActions maps each phase to the actions allowed while the game is in it.
// The service re-checks this table before applying any mutating action; the
// same entry is returned to clients so they know which verbs to offer.
var legalActions = map[Phase][]GameAction{
	PhaseNoGame:      {},
	PhaseWaiting:     {ActionReady, ActionReset, ActionAssignRoles, ActionEnd},
	PhasePreGame:     {ActionReset, ActionExchangeWord, ActionStart, ActionEnd},
	PhasePlaying:     {ActionReset, ActionGuessed, ActionTimeUp, ActionEnd},
	PhaseFindInsider: {ActionReset, ActionVotePlayer, ActionCompleteVoting, ActionEnd},
	PhaseSummary:     {ActionReset, ActionEnd},
	PhaseLost:        {ActionReset, ActionEnd},
}

// LegalActions returns the actions allowed in phase p. The returned slice is
// a copy and safe to hand to callers.
func LegalActions(p Phase) []GameAction {
	actions := legalActions[p]
	out := make([]GameAction, len(actions))
	copy(out, actions)
	return out
}

// Allows reports whether action a may be applied while the game is in phase p.
func (p Phase) Allows(a GameAction) bool {
	for _, allowed := range legalActions[p] {
		if allowed == a {
			return true
		}
	}
	return false
}
