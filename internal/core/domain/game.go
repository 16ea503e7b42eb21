package domain

import (
	"errors"
	"sync"
	"time"
)

// PlayerRole is the part a player holds within a single round.
type PlayerRole string

const (
	RoleLeader  PlayerRole = "LEADER"
	RoleInsider PlayerRole = "INSIDER"
	RoleCommon  PlayerRole = "COMMON"
	// RoleNone is the zero value: the player has not been assigned a role.
	RoleNone PlayerRole = ""
)

// ParseRole converts a wire value to a PlayerRole. The empty string is valid
// and means "no role claimed".
func ParseRole(s string) (PlayerRole, error) {
	switch PlayerRole(s) {
	case RoleLeader, RoleInsider, RoleCommon, RoleNone:
		return PlayerRole(s), nil
	}
	return RoleNone, errors.New("unknown role: " + s)
}

// GameSettings is the per-game configuration, fixed when the game is created.
// GuessTimeLimit is a hint forwarded to clients; the server never enforces it
// on a clock, expiry arrives as an explicit TIME_UP action.
type GameSettings struct {
	CanClaimLeader  bool `json:"can_claim_leader"`
	CanClaimInsider bool `json:"can_claim_insider"`
	CanClaimCommon  bool `json:"can_claim_common"`
	GuessTimeLimit  int  `json:"guess_time_limit"`
}

// DefaultSettings returns the settings applied when a game is created without
// explicit overrides: only the Leader role may be self-claimed.
func DefaultSettings() GameSettings {
	return GameSettings{
		CanClaimLeader:  true,
		CanClaimInsider: false,
		CanClaimCommon:  false,
		GuessTimeLimit:  5,
	}
}

// Player is a member of a game. The id is supplied by the caller and is the
// stable identity across all requests. AccusedID holds the id of the player
// this player has voted for; it is resolved against the game's player map at
// projection time, so a vote for a player who has since left simply stops
// resolving.
type Player struct {
	ID        string
	Name      string
	Active    bool
	Role      PlayerRole
	AccusedID string
}

func NewPlayer(id, name string) *Player {
	return &Player{ID: id, Name: name}
}

// Game is one running game instance, keyed by its short code. All state
// mutations and reads of a game's fields must happen while holding its lock;
// the registry owns game lifetime and holds its own lock over the indexes.
type Game struct {
	mu sync.Mutex

	Code         string
	Players      map[string]*Player
	Phase        Phase
	SecretWord   string
	Settings     GameSettings
	LastActivity time.Time
	PlayStart    *time.Time
}

func NewGame(code string, settings GameSettings) *Game {
	return &Game{
		Code:     code,
		Players:  make(map[string]*Player),
		Phase:    PhaseWaiting,
		Settings: settings,
	}
}

func (g *Game) Lock()   { g.mu.Lock() }
func (g *Game) Unlock() { g.mu.Unlock() }

// HasRole reports whether any player in the game currently holds role.
// Callers must hold the game lock.
func (g *Game) HasRole(role PlayerRole) bool {
	for _, p := range g.Players {
		if p.Role == role {
			return true
		}
	}
	return false
}
