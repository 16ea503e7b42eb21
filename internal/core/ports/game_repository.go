package ports

import "github.com/insider-games/insider-api/internal/core/domain"

// GameRepository is the in-process registry of running games. It owns two
// indexes (game-by-code and current-game-by-player) and is the source of
// truth for membership: every operation that changes which game a player
// belongs to updates both indexes and the game's player map as one atomic
// unit, so neither index can ever disagree with the other.
//
// A game exists from CreateGame until its player map empties, at which point
// RemovePlayer drops it from the code index synchronously. At most one game
// is associated with a player id at any instant.
type GameRepository interface {
	// CreateGame allocates a fresh unique code, creates a game in the
	// WAITING phase with the given settings and p as its only member, and
	// binds p to it.
	CreateGame(p *domain.Player, settings domain.GameSettings) *domain.Game

	FindByCode(code string) (*domain.Game, bool)
	FindByPlayer(playerID string) (*domain.Game, bool)

	// AddPlayer inserts p into g's player map and binds p's id to g. It
	// reports false without binding anything when g has been destroyed
	// since it was resolved, which happens when the last member leaves
	// while the add is in flight.
	AddPlayer(g *domain.Game, p *domain.Player) bool

	// RemovePlayer removes the player from their current game, if any, and
	// destroys the game once its player map empties. No-op for unknown ids.
	RemovePlayer(playerID string)

	// Unbind drops only the player-to-game binding. It is the consistency
	// repair for a stale binding whose game no longer lists the player.
	Unbind(playerID string)

	// Count reports the number of live games.
	Count() int
}
