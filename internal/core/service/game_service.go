package service

import (
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/insider-games/insider-api/internal/core/domain"
	"github.com/insider-games/insider-api/internal/core/ports"
	"github.com/insider-games/insider-api/internal/pkg/random"
)

// noVote is the tally key for active players who never cast an accusation.
const noVote = "no vote"

// missingWord stands in for the secret word in a summary if the round somehow
// ended without one.
const missingWord = "NO WORD"

type gameService struct {
	games ports.GameRepository
	rng   random.Source
	now   func() time.Time
	log   zerolog.Logger
}

// NewGameService returns the game state machine backed by the given registry.
func NewGameService(games ports.GameRepository, rng random.Source, log zerolog.Logger) ports.GameService {
	return &gameService{
		games: games,
		rng:   rng,
		now:   time.Now,
		log:   log,
	}
}

// GetState never mutates and never fails: a player with no game gets a
// synthetic NO_GAME snapshot instead of an error.
func (s *gameService) GetState(playerID string) (*ports.GameState, error) {
	g, ok := s.games.FindByPlayer(playerID)
	if !ok {
		return &ports.GameState{
			PlayerID:     playerID,
			Code:         "",
			Players:      []ports.PlayerView{},
			Phase:        domain.PhaseNoGame,
			Settings:     domain.DefaultSettings(),
			Actions:      domain.LegalActions(domain.PhaseNoGame),
			LastActivity: s.now(),
		}, nil
	}
	g.Lock()
	defer g.Unlock()
	return s.project(g, playerID), nil
}

func (s *gameService) Create(playerID, playerName string, settings *domain.GameSettings) (*ports.GameState, error) {
	if strings.TrimSpace(playerName) == "" {
		return nil, domain.NewInvalidInput("Player name cannot be blank.")
	}

	// A player belongs to at most one game: drop any prior membership first.
	s.games.RemovePlayer(playerID)

	gs := domain.DefaultSettings()
	if settings != nil {
		gs = *settings
	}
	player := domain.NewPlayer(playerID, playerName)
	g := s.games.CreateGame(player, gs)

	g.Lock()
	defer g.Unlock()
	g.LastActivity = s.now()

	s.log.Info().Str("code", g.Code).Str("player_id", playerID).Msg("game created")
	return s.project(g, playerID), nil
}

func (s *gameService) Join(playerID, playerName, gameCode string) (*ports.GameState, error) {
	if strings.TrimSpace(playerName) == "" {
		return nil, domain.NewInvalidInput("Player name cannot be blank.")
	}
	g, ok := s.games.FindByCode(gameCode)
	if !ok {
		return nil, domain.NewInvalidInput("No game found with code %s.", gameCode)
	}

	// Joining a game the player is already in is an idempotent read.
	if current, bound := s.games.FindByPlayer(playerID); bound && current == g {
		g.Lock()
		if _, member := g.Players[playerID]; member {
			defer g.Unlock()
			return s.project(g, playerID), nil
		}
		g.Unlock()
	}

	s.games.RemovePlayer(playerID)
	player := domain.NewPlayer(playerID, playerName)
	if !s.games.AddPlayer(g, player) {
		// The game's last member left between the code lookup and the
		// add; the code no longer resolves.
		return nil, domain.NewInvalidInput("No game found with code %s.", gameCode)
	}

	g.Lock()
	defer g.Unlock()
	g.LastActivity = s.now()

	s.log.Info().Str("code", g.Code).Str("player_id", playerID).Msg("player joined")
	return s.project(g, playerID), nil
}

// Leave removes the player from their current game, destroying the game if
// they were its last member. Leaving with no game is not an error.
func (s *gameService) Leave(playerID string) (*ports.GameState, error) {
	s.games.RemovePlayer(playerID)
	s.log.Info().Str("player_id", playerID).Msg("player left")
	return s.GetState(playerID)
}

func (s *gameService) SetReady(playerID string, claimedRole domain.PlayerRole) (*ports.GameState, error) {
	g, player, err := s.lockedGame(playerID)
	if err != nil {
		return nil, err
	}
	defer g.Unlock()

	if g.Phase != domain.PhaseWaiting {
		return nil, domain.NewInvalidState("The game is not waiting for players to ready-up.")
	}
	switch claimedRole {
	case domain.RoleLeader:
		if !g.Settings.CanClaimLeader {
			return nil, domain.NewInvalidInput("Not allowed to claim Leader role.")
		}
		if g.HasRole(domain.RoleLeader) {
			return nil, domain.NewInvalidState("There is already a Leader.")
		}
	case domain.RoleInsider:
		if !g.Settings.CanClaimInsider {
			return nil, domain.NewInvalidInput("Not allowed to claim Insider role.")
		}
		if g.HasRole(domain.RoleInsider) {
			return nil, domain.NewInvalidState("There is already an Insider.")
		}
	case domain.RoleCommon:
		if !g.Settings.CanClaimCommon {
			return nil, domain.NewInvalidInput("Not allowed to claim Common role.")
		}
	case domain.RoleNone:
		// Readying up without a claim is always allowed.
	default:
		return nil, domain.NewInvalidInput("Unknown role %q.", string(claimedRole))
	}

	player.Role = claimedRole
	player.Active = true
	g.LastActivity = s.now()
	return s.project(g, playerID), nil
}

// SetNotReady has no phase gate: backing out is always allowed.
func (s *gameService) SetNotReady(playerID string) (*ports.GameState, error) {
	g, player, err := s.lockedGame(playerID)
	if err != nil {
		return nil, err
	}
	defer g.Unlock()

	player.Role = domain.RoleNone
	player.Active = false
	g.LastActivity = s.now()
	return s.project(g, playerID), nil
}

func (s *gameService) Reset(playerID string) (*ports.GameState, error) {
	g, _, err := s.lockedGame(playerID)
	if err != nil {
		return nil, err
	}
	defer g.Unlock()

	if !g.Phase.Allows(domain.ActionReset) {
		return nil, domain.NewInvalidState("Game cannot be cancelled in current status.")
	}
	for _, p := range g.Players {
		p.Role = domain.RoleNone
		p.Active = false
		p.AccusedID = ""
	}
	g.Phase = domain.PhaseWaiting
	g.SecretWord = ""
	g.LastActivity = s.now()

	s.log.Info().Str("code", g.Code).Msg("game reset")
	return s.project(g, playerID), nil
}

// AssignRoles fills the Leader, Insider, and Common seats. Roles already
// claimed by active players are kept; the remaining needs are drawn uniformly
// from the active players without a role. The full plan is validated before
// anything is written, so a failing call mutates nothing.
func (s *gameService) AssignRoles(playerID string) (*ports.GameState, error) {
	g, _, err := s.lockedGame(playerID)
	if err != nil {
		return nil, err
	}
	defer g.Unlock()

	if !g.Phase.Allows(domain.ActionAssignRoles) {
		return nil, domain.NewInvalidState("Roles cannot be assigned in current status.")
	}

	needed := map[domain.PlayerRole]int{
		domain.RoleLeader:  1,
		domain.RoleInsider: 1,
		domain.RoleCommon:  1,
	}
	var pool []*domain.Player
	for _, p := range g.Players {
		if !p.Active {
			continue
		}
		if p.Role != domain.RoleNone {
			needed[p.Role]--
		} else {
			pool = append(pool, p)
		}
	}
	// Stable draw order regardless of map iteration.
	slices.SortFunc(pool, func(a, b *domain.Player) int {
		return strings.Compare(a.ID, b.ID)
	})

	shortfall := 0
	for _, n := range needed {
		if n > 0 {
			shortfall += n
		}
	}
	if shortfall > len(pool) {
		return nil, domain.NewInvalidState("Not enough players to assign roles")
	}

	plan := make(map[*domain.Player]domain.PlayerRole)
	for _, role := range []domain.PlayerRole{domain.RoleLeader, domain.RoleInsider, domain.RoleCommon} {
		for i := 0; i < needed[role]; i++ {
			idx := s.rng.IntN(len(pool))
			plan[pool[idx]] = role
			pool = slices.Delete(pool, idx, idx+1)
		}
	}
	for p, role := range plan {
		p.Role = role
	}
	for _, p := range pool {
		p.Role = domain.RoleCommon
	}

	g.SecretWord = domain.RandomWord(s.rng)
	g.Phase = domain.PhasePreGame
	g.LastActivity = s.now()

	s.log.Info().Str("code", g.Code).Msg("roles assigned")
	return s.project(g, playerID), nil
}

func (s *gameService) ExchangeWord(playerID string) (*ports.GameState, error) {
	g, player, err := s.lockedGame(playerID)
	if err != nil {
		return nil, err
	}
	defer g.Unlock()

	if player.Role != domain.RoleLeader {
		return nil, domain.NewInvalidInput("Word can only be exchanged by the leader.")
	}
	if !g.Phase.Allows(domain.ActionExchangeWord) {
		return nil, domain.NewInvalidState("Word cannot be exchanged in current status.")
	}
	g.SecretWord = domain.RandomWord(s.rng)
	g.LastActivity = s.now()
	return s.project(g, playerID), nil
}

func (s *gameService) Start(playerID string) (*ports.GameState, error) {
	g, _, err := s.lockedGame(playerID)
	if err != nil {
		return nil, err
	}
	defer g.Unlock()

	if !g.Phase.Allows(domain.ActionStart) {
		return nil, domain.NewInvalidState("Game cannot be started in current status.")
	}
	g.Phase = domain.PhasePlaying
	started := s.now()
	g.PlayStart = &started
	g.LastActivity = started

	s.log.Info().Str("code", g.Code).Msg("game started")
	return s.project(g, playerID), nil
}

func (s *gameService) WordGuessed(playerID string) (*ports.GameState, error) {
	g, player, err := s.lockedGame(playerID)
	if err != nil {
		return nil, err
	}
	defer g.Unlock()

	if player.Role != domain.RoleLeader {
		return nil, domain.NewInvalidInput("Only the leader can mark the word as guessed.")
	}
	if !g.Phase.Allows(domain.ActionGuessed) {
		return nil, domain.NewInvalidState("Word cannot be guessed in current status.")
	}
	g.Phase = domain.PhaseFindInsider
	g.LastActivity = s.now()
	return s.project(g, playerID), nil
}

func (s *gameService) TimeUp(playerID string) (*ports.GameState, error) {
	g, player, err := s.lockedGame(playerID)
	if err != nil {
		return nil, err
	}
	defer g.Unlock()

	if player.Role != domain.RoleLeader {
		return nil, domain.NewInvalidInput("Only the leader can claim time is up.")
	}
	if !g.Phase.Allows(domain.ActionTimeUp) {
		return nil, domain.NewInvalidState("Time cannot be up in current status.")
	}
	g.Phase = domain.PhaseLost
	g.LastActivity = s.now()
	return s.project(g, playerID), nil
}

// VotePlayer records the caller's accusation. Re-voting overwrites the
// previous accusation.
func (s *gameService) VotePlayer(playerID, accusedPlayerID string) (*ports.GameState, error) {
	g, player, err := s.lockedGame(playerID)
	if err != nil {
		return nil, err
	}
	defer g.Unlock()

	if !g.Phase.Allows(domain.ActionVotePlayer) {
		return nil, domain.NewInvalidState("Accusations cannot be cast in current status.")
	}
	accused, ok := g.Players[accusedPlayerID]
	if !ok {
		return nil, domain.NewInvalidInput("The accused player does not exist.")
	}
	player.AccusedID = accused.ID
	g.LastActivity = s.now()
	return s.project(g, playerID), nil
}

// CompleteVoting shares its phase gate with VotePlayer: both belong to the
// same voting window.
func (s *gameService) CompleteVoting(playerID string) (*ports.GameState, error) {
	g, _, err := s.lockedGame(playerID)
	if err != nil {
		return nil, err
	}
	defer g.Unlock()

	if !g.Phase.Allows(domain.ActionVotePlayer) {
		return nil, domain.NewInvalidState("Voting cannot be completed in current status.")
	}
	g.Phase = domain.PhaseSummary
	g.LastActivity = s.now()
	return s.project(g, playerID), nil
}

// End is a known incompleteness carried over from the original product: the
// action exists in the legality table but always fails.
func (s *gameService) End(playerID string) (*ports.GameState, error) {
	return nil, domain.NewInvalidState("Ending a game doesn't work yet.")
}

// lockedGame resolves the acting player's game and returns it locked. If the
// registry holds a stale binding to a game that no longer lists the player,
// the binding is dropped before failing.
func (s *gameService) lockedGame(playerID string) (*domain.Game, *domain.Player, error) {
	g, ok := s.games.FindByPlayer(playerID)
	if !ok {
		return nil, nil, domain.NewInvalidInput("No game found for player.")
	}
	g.Lock()
	player, ok := g.Players[playerID]
	if !ok {
		g.Unlock()
		s.games.Unbind(playerID)
		s.log.Warn().Str("player_id", playerID).Str("code", g.Code).Msg("repaired stale player binding")
		return nil, nil, domain.NewInvalidInput("No game found for player.")
	}
	return g, player, nil
}

// project builds the requester's snapshot. Callers must hold the game lock.
func (s *gameService) project(g *domain.Game, playerID string) *ports.GameState {
	views := make([]ports.PlayerView, 0, len(g.Players))
	for _, p := range g.Players {
		views = append(views, ports.PlayerView{
			ID:          p.ID,
			Name:        p.Name,
			Active:      p.Active,
			AccusedName: s.accusedName(g, p),
		})
	}
	slices.SortFunc(views, func(a, b ports.PlayerView) int {
		return strings.Compare(a.ID, b.ID)
	})

	var yourRole domain.PlayerRole
	if requester, ok := g.Players[playerID]; ok {
		yourRole = requester.Role
	}

	state := &ports.GameState{
		PlayerID:     playerID,
		Code:         g.Code,
		Players:      views,
		Phase:        g.Phase,
		Settings:     g.Settings,
		Actions:      domain.LegalActions(g.Phase),
		LastActivity: g.LastActivity,
		PlayStart:    g.PlayStart,
		YourRole:     yourRole,
		Summary:      s.summary(g),
	}
	if yourRole == domain.RoleInsider || yourRole == domain.RoleLeader {
		state.SecretWord = g.SecretWord
	}
	return state
}

// accusedName resolves a player's accusation to a display name. An accusation
// pointing at a player who has since left resolves to nothing.
func (s *gameService) accusedName(g *domain.Game, p *domain.Player) string {
	if p.AccusedID == "" {
		return ""
	}
	accused, ok := g.Players[p.AccusedID]
	if !ok {
		return ""
	}
	return accused.Name
}

// summary tallies the round once it has ended. Only active players are
// counted as voters; an unresolvable or missing accusation counts as noVote.
func (s *gameService) summary(g *domain.Game) *ports.GameSummary {
	if g.Phase != domain.PhaseSummary && g.Phase != domain.PhaseLost {
		return nil
	}

	word := g.SecretWord
	if word == "" {
		word = missingWord
	}
	var insiderName string
	for _, p := range g.Players {
		if p.Role == domain.RoleInsider {
			insiderName = p.Name
			break
		}
	}
	votes := make(map[string]int)
	for _, p := range g.Players {
		if !p.Active {
			continue
		}
		name := s.accusedName(g, p)
		if name == "" {
			name = noVote
		}
		votes[name]++
	}
	return &ports.GameSummary{
		SecretWord:  word,
		InsiderName: insiderName,
		Votes:       votes,
	}
}
