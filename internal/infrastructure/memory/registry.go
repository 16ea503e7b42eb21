// Package memory holds the process-local game registry. Games live only as
// long as the process and their last member; there is no persistence layer
// behind it and no background sweep: a game dies the moment its last player
// leaves.
package memory

import (
	"sync"

	"github.com/insider-games/insider-api/internal/core/domain"
	"github.com/insider-games/insider-api/internal/core/ports"
	"github.com/insider-games/insider-api/internal/pkg/random"
)

// Registry implements ports.GameRepository with two in-process indexes:
// game-by-code and current-game-by-player. One RWMutex guards both, so every
// membership change lands in both indexes atomically. The lock order is
// always registry before game, never the reverse.
type Registry struct {
	mu      sync.RWMutex
	rng     random.Source
	games   map[string]*domain.Game
	players map[string]*domain.Game
}

func NewRegistry(rng random.Source) *Registry {
	return &Registry{
		rng:     rng,
		games:   make(map[string]*domain.Game),
		players: make(map[string]*domain.Game),
	}
}

var _ ports.GameRepository = (*Registry)(nil)

// CreateGame allocates a unique code, creates the game with p as its only
// member, and registers it in both indexes.
func (r *Registry) CreateGame(p *domain.Player, settings domain.GameSettings) *domain.Game {
	r.mu.Lock()
	defer r.mu.Unlock()

	code := domain.NewGameCode(r.rng)
	for {
		if _, taken := r.games[code]; !taken {
			break
		}
		code = domain.NewGameCode(r.rng)
	}

	g := domain.NewGame(code, settings)
	g.Players[p.ID] = p
	r.games[code] = g
	r.players[p.ID] = g
	return g
}

func (r *Registry) FindByCode(code string) (*domain.Game, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.games[code]
	return g, ok
}

func (r *Registry) FindByPlayer(playerID string) (*domain.Game, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.players[playerID]
	return g, ok
}

// AddPlayer re-checks that g is still the game registered under its code:
// the caller resolved g outside the registry lock, and the last member may
// have left in between, destroying it. Adding to a dead game would bind the
// player to a game absent from the code index.
func (r *Registry) AddPlayer(g *domain.Game, p *domain.Player) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.games[g.Code] != g {
		return false
	}
	g.Lock()
	g.Players[p.ID] = p
	g.Unlock()
	r.players[p.ID] = g
	return true
}

// RemovePlayer takes the player out of their current game and out of the
// player index, and destroys the game once empty. A game must never remain
// reachable by code with zero players.
func (r *Registry) RemovePlayer(playerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.players[playerID]
	if !ok {
		return
	}
	delete(r.players, playerID)

	g.Lock()
	delete(g.Players, playerID)
	empty := len(g.Players) == 0
	g.Unlock()

	if empty {
		delete(r.games, g.Code)
	}
}

func (r *Registry) Unbind(playerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.players, playerID)
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.games)
}
