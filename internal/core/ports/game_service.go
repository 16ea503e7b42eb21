package ports

import (
	"time"

	"github.com/insider-games/insider-api/internal/core/domain"
)

// PlayerView is the public projection of a game member. AccusedName carries
// the display name (never the id) of whoever this player has accused, or ""
// when they have not voted or the accused has since left.
type PlayerView struct {
	ID          string
	Name        string
	Active      bool
	AccusedName string
}

// GameSummary is populated once the round has ended (SUMMARY or LOST).
// Votes maps accused display name (or the "no vote" sentinel) to the
// number of active players who cast that vote.
type GameSummary struct {
	SecretWord  string
	InsiderName string
	Votes       map[string]int
}

// GameState is the snapshot returned to the requesting player after every
// operation. It is role-filtered: SecretWord is blank unless the requester
// is the Leader or the Insider, whatever the underlying game holds.
type GameState struct {
	PlayerID     string
	Code         string
	Players      []PlayerView
	Phase        domain.Phase
	Settings     domain.GameSettings
	Actions      []domain.GameAction
	LastActivity time.Time
	PlayStart    *time.Time
	SecretWord   string
	YourRole     domain.PlayerRole
	Summary      *GameSummary
}

// GameService is the action interface of the game state machine. Every call
// takes the acting player's id, applies at most one transition, and returns
// the caller's snapshot. Failures are domain.InvalidInputError or
// domain.InvalidStateError and leave the game exactly as it was.
type GameService interface {
	GetState(playerID string) (*GameState, error)
	Create(playerID, playerName string, settings *domain.GameSettings) (*GameState, error)
	Join(playerID, playerName, gameCode string) (*GameState, error)
	Leave(playerID string) (*GameState, error)
	SetReady(playerID string, claimedRole domain.PlayerRole) (*GameState, error)
	SetNotReady(playerID string) (*GameState, error)
	Reset(playerID string) (*GameState, error)
	AssignRoles(playerID string) (*GameState, error)
	ExchangeWord(playerID string) (*GameState, error)
	Start(playerID string) (*GameState, error)
	WordGuessed(playerID string) (*GameState, error)
	TimeUp(playerID string) (*GameState, error)
	VotePlayer(playerID, accusedPlayerID string) (*GameState, error)
	CompleteVoting(playerID string) (*GameState, error)
	End(playerID string) (*GameState, error)
}
