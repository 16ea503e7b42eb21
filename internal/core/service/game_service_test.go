package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/insider-games/insider-api/internal/core/domain"
	"github.com/insider-games/insider-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Deterministic random source
// ---------------------------------------------------------------------------

// stubRand replays a fixed sequence; once exhausted it returns 0.
type stubRand struct {
	seq []int
	i   int
}

func (r *stubRand) IntN(n int) int {
	if r.i >= len(r.seq) {
		return 0
	}
	v := r.seq[r.i] % n
	r.i++
	return v
}

// ---------------------------------------------------------------------------
// In-memory stub registry
// ---------------------------------------------------------------------------

type stubRegistry struct {
	games   map[string]*domain.Game
	players map[string]*domain.Game
	created int

	// removeHook runs at the top of RemovePlayer; tests use it to squeeze
	// a concurrent departure into the middle of a join.
	removeHook func()
}

func newStubRegistry() *stubRegistry {
	return &stubRegistry{
		games:   make(map[string]*domain.Game),
		players: make(map[string]*domain.Game),
	}
}

func (r *stubRegistry) CreateGame(p *domain.Player, settings domain.GameSettings) *domain.Game {
	r.created++
	code := fmt.Sprintf("GAME%d", r.created)
	g := domain.NewGame(code, settings)
	g.Players[p.ID] = p
	r.games[code] = g
	r.players[p.ID] = g
	return g
}

func (r *stubRegistry) FindByCode(code string) (*domain.Game, bool) {
	g, ok := r.games[code]
	return g, ok
}

func (r *stubRegistry) FindByPlayer(playerID string) (*domain.Game, bool) {
	g, ok := r.players[playerID]
	return g, ok
}

func (r *stubRegistry) AddPlayer(g *domain.Game, p *domain.Player) bool {
	if r.games[g.Code] != g {
		return false
	}
	g.Players[p.ID] = p
	r.players[p.ID] = g
	return true
}

func (r *stubRegistry) RemovePlayer(playerID string) {
	if r.removeHook != nil {
		r.removeHook()
	}
	g, ok := r.players[playerID]
	if !ok {
		return
	}
	delete(r.players, playerID)
	delete(g.Players, playerID)
	if len(g.Players) == 0 {
		delete(r.games, g.Code)
	}
}

func (r *stubRegistry) Unbind(playerID string) {
	delete(r.players, playerID)
}

func (r *stubRegistry) Count() int { return len(r.games) }

// seed registers a game with the given members already bound.
func (r *stubRegistry) seed(code string, players ...*domain.Player) *domain.Game {
	g := domain.NewGame(code, domain.DefaultSettings())
	for _, p := range players {
		g.Players[p.ID] = p
		r.players[p.ID] = g
	}
	r.games[code] = g
	return g
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestService(reg ports.GameRepository, seq ...int) *gameService {
	return &gameService{
		games: reg,
		rng:   &stubRand{seq: seq},
		now:   func() time.Time { return testNow },
		log:   zerolog.Nop(),
	}
}

func activePlayer(id, name string, role domain.PlayerRole) *domain.Player {
	p := domain.NewPlayer(id, name)
	p.Active = true
	p.Role = role
	return p
}

func roleOf(g *domain.Game, id string) domain.PlayerRole {
	return g.Players[id].Role
}

// ---------------------------------------------------------------------------
// getState
// ---------------------------------------------------------------------------

func TestGetState_NoGame(t *testing.T) {
	svc := newTestService(newStubRegistry())

	state, err := svc.GetState("p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Phase != domain.PhaseNoGame {
		t.Errorf("phase = %s, want %s", state.Phase, domain.PhaseNoGame)
	}
	if state.Code != "" {
		t.Errorf("code = %q, want empty", state.Code)
	}
	if state.PlayerID != "p1" {
		t.Errorf("player id = %q, want p1", state.PlayerID)
	}
	if len(state.Players) != 0 {
		t.Errorf("players = %d, want 0", len(state.Players))
	}
	if len(state.Actions) != 0 {
		t.Errorf("actions = %v, want none", state.Actions)
	}
	if state.YourRole != domain.RoleNone || state.SecretWord != "" {
		t.Errorf("role/word leaked into NO_GAME snapshot: %q %q", state.YourRole, state.SecretWord)
	}
}

func TestGetState_InGame(t *testing.T) {
	reg := newStubRegistry()
	reg.seed("1234", domain.NewPlayer("p1", "jim"), domain.NewPlayer("p2", "bob"))
	svc := newTestService(reg)

	state, err := svc.GetState("p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Code != "1234" {
		t.Errorf("code = %q, want 1234", state.Code)
	}
	if len(state.Players) != 2 {
		t.Fatalf("players = %d, want 2", len(state.Players))
	}
	if state.Players[0].ID != "p1" || state.Players[1].ID != "p2" {
		t.Errorf("players not sorted by id: %+v", state.Players)
	}
	if state.Phase != domain.PhaseWaiting {
		t.Errorf("phase = %s, want WAITING", state.Phase)
	}
}

// ---------------------------------------------------------------------------
// create / join / leave
// ---------------------------------------------------------------------------

func TestCreate_BlankName(t *testing.T) {
	svc := newTestService(newStubRegistry())

	_, err := svc.Create("p1", "   ", nil)
	if !domain.IsInvalidInput(err) {
		t.Fatalf("error = %v, want InvalidInputError", err)
	}
	if err.Error() != "Player name cannot be blank." {
		t.Errorf("message = %q", err.Error())
	}
}

func TestCreate(t *testing.T) {
	reg := newStubRegistry()
	svc := newTestService(reg)

	state, err := svc.Create("p1", "jim", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Phase != domain.PhaseWaiting {
		t.Errorf("phase = %s, want WAITING", state.Phase)
	}
	if len(state.Players) != 1 || state.Players[0].Name != "jim" {
		t.Errorf("players = %+v, want single member jim", state.Players)
	}
	if !state.Settings.CanClaimLeader || state.Settings.CanClaimInsider {
		t.Errorf("default settings not applied: %+v", state.Settings)
	}
	if state.LastActivity != testNow {
		t.Errorf("last activity = %v, want %v", state.LastActivity, testNow)
	}
}

func TestCreate_LeavesPreviousGame(t *testing.T) {
	reg := newStubRegistry()
	reg.seed("OLD01", domain.NewPlayer("p1", "jim"))
	svc := newTestService(reg)

	if _, err := svc.Create("p1", "jim", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := reg.FindByCode("OLD01"); ok {
		t.Error("previous game should have been destroyed when its last member created a new one")
	}
	g, ok := reg.FindByPlayer("p1")
	if !ok {
		t.Fatal("player not bound to new game")
	}
	if g.Code == "OLD01" {
		t.Error("player still bound to old game")
	}
}

func TestCreate_WithSettings(t *testing.T) {
	svc := newTestService(newStubRegistry())

	settings := &domain.GameSettings{CanClaimInsider: true, GuessTimeLimit: 10}
	state, err := svc.Create("p1", "jim", settings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !state.Settings.CanClaimInsider || state.Settings.GuessTimeLimit != 10 {
		t.Errorf("settings not applied: %+v", state.Settings)
	}
}

func TestJoin_UnknownCode(t *testing.T) {
	svc := newTestService(newStubRegistry())

	_, err := svc.Join("p1", "jim", "XXXXX")
	if !domain.IsInvalidInput(err) {
		t.Fatalf("error = %v, want InvalidInputError", err)
	}
	if !strings.Contains(err.Error(), "XXXXX") {
		t.Errorf("message should name the code: %q", err.Error())
	}
}

func TestJoin_BlankName(t *testing.T) {
	reg := newStubRegistry()
	reg.seed("1234", domain.NewPlayer("p1", "jim"))
	svc := newTestService(reg)

	if _, err := svc.Join("p2", "", "1234"); !domain.IsInvalidInput(err) {
		t.Fatalf("error = %v, want InvalidInputError", err)
	}
}

func TestJoin_Idempotent(t *testing.T) {
	reg := newStubRegistry()
	g := reg.seed("1234", domain.NewPlayer("p1", "jim"))
	svc := newTestService(reg)

	// Give p1 state a second join must not clobber.
	g.Players["p1"].Active = true

	state, err := svc.Join("p1", "jim", "1234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(state.Players) != 1 {
		t.Errorf("players = %d, want 1", len(state.Players))
	}
	if !g.Players["p1"].Active {
		t.Error("re-join replaced the existing player record")
	}
}

func TestJoin_MovesPlayerBetweenGames(t *testing.T) {
	reg := newStubRegistry()
	reg.seed("OLD01", domain.NewPlayer("p1", "jim"), domain.NewPlayer("p2", "bob"))
	reg.seed("NEW01", domain.NewPlayer("p3", "amy"))
	svc := newTestService(reg)

	state, err := svc.Join("p1", "jim", "NEW01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Code != "NEW01" {
		t.Errorf("code = %q, want NEW01", state.Code)
	}
	old, _ := reg.FindByCode("OLD01")
	if _, still := old.Players["p1"]; still {
		t.Error("player still listed in previous game")
	}
}

func TestJoin_ResetsPlayerRecord(t *testing.T) {
	reg := newStubRegistry()
	reg.seed("OLD01", activePlayer("p1", "jim", domain.RoleLeader), domain.NewPlayer("p2", "bob"))
	g := reg.seed("NEW01", domain.NewPlayer("p3", "amy"))
	svc := newTestService(reg)

	if _, err := svc.Join("p1", "jim", "NEW01"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := g.Players["p1"]
	if p.Active || p.Role != domain.RoleNone {
		t.Errorf("joining should create a fresh record, got active=%v role=%q", p.Active, p.Role)
	}
}

func TestJoin_GameDestroyedMidJoin(t *testing.T) {
	reg := newStubRegistry()
	g := reg.seed("1234", domain.NewPlayer("p1", "jim"))
	svc := newTestService(reg)

	// The last member leaves after the joiner has resolved the code but
	// before the add lands.
	reg.removeHook = func() {
		reg.removeHook = nil
		delete(g.Players, "p1")
		delete(reg.players, "p1")
		delete(reg.games, g.Code)
	}

	_, err := svc.Join("p2", "bob", "1234")
	if !domain.IsInvalidInput(err) {
		t.Fatalf("error = %v, want InvalidInputError", err)
	}
	if !strings.Contains(err.Error(), "1234") {
		t.Errorf("message should name the code: %q", err.Error())
	}
	if _, bound := reg.players["p2"]; bound {
		t.Error("joiner bound to a game absent from the code index")
	}
}

func TestLeave_DestroysEmptyGame(t *testing.T) {
	reg := newStubRegistry()
	reg.seed("1234", domain.NewPlayer("p1", "jim"))
	svc := newTestService(reg)

	state, err := svc.Leave("p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Phase != domain.PhaseNoGame {
		t.Errorf("phase = %s, want NO_GAME", state.Phase)
	}
	if _, err := svc.Join("p2", "bob", "1234"); !domain.IsInvalidInput(err) {
		t.Fatalf("joining a destroyed game: error = %v, want InvalidInputError", err)
	}
}

func TestLeave_NoGame(t *testing.T) {
	svc := newTestService(newStubRegistry())

	state, err := svc.Leave("p1")
	if err != nil {
		t.Fatalf("leave with no game should be a no-op, got %v", err)
	}
	if state.Phase != domain.PhaseNoGame {
		t.Errorf("phase = %s, want NO_GAME", state.Phase)
	}
}

// ---------------------------------------------------------------------------
// ready / not ready
// ---------------------------------------------------------------------------

func TestSetReady(t *testing.T) {
	reg := newStubRegistry()
	g := reg.seed("1234", domain.NewPlayer("p1", "jim"))
	svc := newTestService(reg)

	state, err := svc.SetReady("p1", domain.RoleNone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !g.Players["p1"].Active {
		t.Error("player not marked active")
	}
	if state.YourRole != domain.RoleNone {
		t.Errorf("role = %q, want none", state.YourRole)
	}
}

func TestSetReady_WrongPhase(t *testing.T) {
	reg := newStubRegistry()
	g := reg.seed("1234", domain.NewPlayer("p1", "jim"))
	g.Phase = domain.PhasePlaying
	svc := newTestService(reg)

	if _, err := svc.SetReady("p1", domain.RoleNone); !domain.IsInvalidState(err) {
		t.Fatalf("error = %v, want InvalidStateError", err)
	}
}

func TestSetReady_ClaimLeader(t *testing.T) {
	reg := newStubRegistry()
	g := reg.seed("1234", domain.NewPlayer("p1", "jim"), domain.NewPlayer("p2", "bob"))
	svc := newTestService(reg)

	if _, err := svc.SetReady("p1", domain.RoleLeader); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if roleOf(g, "p1") != domain.RoleLeader {
		t.Errorf("role = %q, want LEADER", roleOf(g, "p1"))
	}

	// Second claim must fail: there is already a Leader.
	_, err := svc.SetReady("p2", domain.RoleLeader)
	if !domain.IsInvalidState(err) {
		t.Fatalf("error = %v, want InvalidStateError", err)
	}
	if err.Error() != "There is already a Leader." {
		t.Errorf("message = %q", err.Error())
	}
}

func TestSetReady_ClaimForbiddenBySettings(t *testing.T) {
	reg := newStubRegistry()
	g := reg.seed("1234", domain.NewPlayer("p1", "jim"))
	g.Settings.CanClaimLeader = false
	svc := newTestService(reg)

	if _, err := svc.SetReady("p1", domain.RoleLeader); !domain.IsInvalidInput(err) {
		t.Fatalf("leader claim: error = %v, want InvalidInputError", err)
	}
	if _, err := svc.SetReady("p1", domain.RoleInsider); !domain.IsInvalidInput(err) {
		t.Fatalf("insider claim: error = %v, want InvalidInputError", err)
	}
	if _, err := svc.SetReady("p1", domain.RoleCommon); !domain.IsInvalidInput(err) {
		t.Fatalf("common claim: error = %v, want InvalidInputError", err)
	}
}

func TestSetReady_ClaimInsider(t *testing.T) {
	reg := newStubRegistry()
	g := reg.seed("1234", domain.NewPlayer("p1", "jim"), domain.NewPlayer("p2", "bob"))
	g.Settings.CanClaimInsider = true
	svc := newTestService(reg)

	if _, err := svc.SetReady("p1", domain.RoleInsider); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.SetReady("p2", domain.RoleInsider); !domain.IsInvalidState(err) {
		t.Fatalf("second insider: error = %v, want InvalidStateError", err)
	}
}

func TestSetReady_ClaimCommonHasNoExclusivity(t *testing.T) {
	reg := newStubRegistry()
	g := reg.seed("1234", domain.NewPlayer("p1", "jim"), domain.NewPlayer("p2", "bob"))
	g.Settings.CanClaimCommon = true
	svc := newTestService(reg)

	if _, err := svc.SetReady("p1", domain.RoleCommon); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.SetReady("p2", domain.RoleCommon); err != nil {
		t.Fatalf("second common claim should be allowed, got %v", err)
	}
}

func TestSetNotReady_NoPhaseGate(t *testing.T) {
	reg := newStubRegistry()
	g := reg.seed("1234", activePlayer("p1", "jim", domain.RoleLeader))
	g.Phase = domain.PhasePlaying
	svc := newTestService(reg)

	if _, err := svc.SetNotReady("p1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := g.Players["p1"]
	if p.Active || p.Role != domain.RoleNone {
		t.Errorf("not ready should clear state, got active=%v role=%q", p.Active, p.Role)
	}
}

// ---------------------------------------------------------------------------
// reset
// ---------------------------------------------------------------------------

func TestReset(t *testing.T) {
	reg := newStubRegistry()
	p1 := activePlayer("p1", "jim", domain.RoleLeader)
	p2 := activePlayer("p2", "bob", domain.RoleInsider)
	p1.AccusedID = "p2"
	g := reg.seed("1234", p1, p2)
	g.Phase = domain.PhaseSummary
	g.SecretWord = "apple"
	svc := newTestService(reg)

	state, err := svc.Reset("p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Phase != domain.PhaseWaiting {
		t.Errorf("phase = %s, want WAITING", state.Phase)
	}
	if g.SecretWord != "" {
		t.Errorf("secret word = %q, want cleared", g.SecretWord)
	}
	for id, p := range g.Players {
		if p.Active || p.Role != domain.RoleNone || p.AccusedID != "" {
			t.Errorf("player %s not cleared: %+v", id, p)
		}
	}
}

// ---------------------------------------------------------------------------
// assignRoles
// ---------------------------------------------------------------------------

func TestAssignRoles_ThreePlayers(t *testing.T) {
	reg := newStubRegistry()
	g := reg.seed("1234",
		activePlayer("p1", "jim", domain.RoleNone),
		activePlayer("p2", "bob", domain.RoleNone),
		activePlayer("p3", "amy", domain.RoleNone),
	)
	svc := newTestService(reg, 2, 0, 1)

	state, err := svc.AssignRoles("p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seen := map[domain.PlayerRole]int{}
	for _, p := range g.Players {
		seen[p.Role]++
	}
	if seen[domain.RoleLeader] != 1 || seen[domain.RoleInsider] != 1 || seen[domain.RoleCommon] != 1 {
		t.Errorf("roles = %v, want one of each", seen)
	}
	if state.Phase != domain.PhasePreGame {
		t.Errorf("phase = %s, want PRE_GAME", state.Phase)
	}
	if g.SecretWord == "" {
		t.Error("secret word not drawn")
	}
}

func TestAssignRoles_KeepsPreassignedLeader(t *testing.T) {
	reg := newStubRegistry()
	g := reg.seed("1234",
		activePlayer("p1", "jim", domain.RoleLeader),
		activePlayer("p2", "bob", domain.RoleNone),
		activePlayer("p3", "amy", domain.RoleNone),
	)
	svc := newTestService(reg)

	if _, err := svc.AssignRoles("p1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if roleOf(g, "p1") != domain.RoleLeader {
		t.Errorf("preassigned leader changed to %q", roleOf(g, "p1"))
	}
	leaders := 0
	for _, p := range g.Players {
		if p.Role == domain.RoleLeader {
			leaders++
		}
	}
	if leaders != 1 {
		t.Errorf("leaders = %d, want exactly 1", leaders)
	}
}

func TestAssignRoles_ExtrasBecomeCommon(t *testing.T) {
	reg := newStubRegistry()
	g := reg.seed("1234",
		activePlayer("p1", "jim", domain.RoleNone),
		activePlayer("p2", "bob", domain.RoleNone),
		activePlayer("p3", "amy", domain.RoleNone),
		activePlayer("p4", "joe", domain.RoleNone),
		activePlayer("p5", "sue", domain.RoleNone),
	)
	svc := newTestService(reg, 4, 2, 0)

	if _, err := svc.AssignRoles("p1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	commons := 0
	for _, p := range g.Players {
		if p.Role == domain.RoleCommon {
			commons++
		}
	}
	if commons != 3 {
		t.Errorf("commons = %d, want 3", commons)
	}
}

func TestAssignRoles_IgnoresInactivePlayers(t *testing.T) {
	reg := newStubRegistry()
	idle := domain.NewPlayer("p4", "zed")
	g := reg.seed("1234",
		activePlayer("p1", "jim", domain.RoleNone),
		activePlayer("p2", "bob", domain.RoleNone),
		activePlayer("p3", "amy", domain.RoleNone),
		idle,
	)
	svc := newTestService(reg)

	if _, err := svc.AssignRoles("p1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if roleOf(g, "p4") != domain.RoleNone {
		t.Errorf("inactive player got role %q", roleOf(g, "p4"))
	}
}

func TestAssignRoles_NotEnoughPlayers(t *testing.T) {
	reg := newStubRegistry()
	g := reg.seed("1234",
		activePlayer("p1", "jim", domain.RoleNone),
		activePlayer("p2", "bob", domain.RoleNone),
	)
	svc := newTestService(reg)

	_, err := svc.AssignRoles("p1")
	if !domain.IsInvalidState(err) {
		t.Fatalf("error = %v, want InvalidStateError", err)
	}
	if !strings.Contains(err.Error(), "Not enough players") {
		t.Errorf("message = %q", err.Error())
	}
	// A failed assignment must leave the game untouched.
	if g.Phase != domain.PhaseWaiting || g.SecretWord != "" {
		t.Errorf("failed assignment mutated phase/word: %s %q", g.Phase, g.SecretWord)
	}
	for id, p := range g.Players {
		if p.Role != domain.RoleNone {
			t.Errorf("failed assignment wrote role %q to %s", p.Role, id)
		}
	}
}

func TestAssignRoles_WrongPhase(t *testing.T) {
	reg := newStubRegistry()
	g := reg.seed("1234", activePlayer("p1", "jim", domain.RoleNone))
	g.Phase = domain.PhasePlaying
	svc := newTestService(reg)

	if _, err := svc.AssignRoles("p1"); !domain.IsInvalidState(err) {
		t.Fatalf("error = %v, want InvalidStateError", err)
	}
}

// ---------------------------------------------------------------------------
// word flow: exchange / start / guessed / timeUp
// ---------------------------------------------------------------------------

func TestExchangeWord(t *testing.T) {
	reg := newStubRegistry()
	g := reg.seed("1234", activePlayer("p1", "jim", domain.RoleLeader))
	g.Phase = domain.PhasePreGame
	g.SecretWord = "stale"
	svc := newTestService(reg, 7)

	state, err := svc.ExchangeWord("p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.SecretWord == "stale" || g.SecretWord == "" {
		t.Errorf("secret word not replaced: %q", g.SecretWord)
	}
	if state.Phase != domain.PhasePreGame {
		t.Errorf("phase = %s, want unchanged PRE_GAME", state.Phase)
	}
}

func TestExchangeWord_NotLeader(t *testing.T) {
	reg := newStubRegistry()
	g := reg.seed("1234", activePlayer("p1", "jim", domain.RoleCommon))
	g.Phase = domain.PhasePreGame
	svc := newTestService(reg)

	if _, err := svc.ExchangeWord("p1"); !domain.IsInvalidInput(err) {
		t.Fatalf("error = %v, want InvalidInputError", err)
	}
}

func TestStart(t *testing.T) {
	reg := newStubRegistry()
	g := reg.seed("1234", activePlayer("p1", "jim", domain.RoleCommon))
	g.Phase = domain.PhasePreGame
	svc := newTestService(reg)

	state, err := svc.Start("p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Phase != domain.PhasePlaying {
		t.Errorf("phase = %s, want PLAYING", state.Phase)
	}
	if g.PlayStart == nil || !g.PlayStart.Equal(testNow) {
		t.Errorf("play start = %v, want %v", g.PlayStart, testNow)
	}
}

func TestWordGuessed(t *testing.T) {
	reg := newStubRegistry()
	g := reg.seed("1234", activePlayer("p1", "jim", domain.RoleLeader))
	g.Phase = domain.PhasePlaying
	svc := newTestService(reg)

	state, err := svc.WordGuessed("p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Phase != domain.PhaseFindInsider {
		t.Errorf("phase = %s, want FIND_INSIDER", state.Phase)
	}
}

func TestWordGuessed_NotLeader(t *testing.T) {
	reg := newStubRegistry()
	g := reg.seed("1234", activePlayer("p1", "jim", domain.RoleInsider))
	g.Phase = domain.PhasePlaying
	svc := newTestService(reg)

	if _, err := svc.WordGuessed("p1"); !domain.IsInvalidInput(err) {
		t.Fatalf("error = %v, want InvalidInputError", err)
	}
}

func TestTimeUp(t *testing.T) {
	reg := newStubRegistry()
	g := reg.seed("1234", activePlayer("p1", "jim", domain.RoleLeader))
	g.Phase = domain.PhasePlaying
	svc := newTestService(reg)

	state, err := svc.TimeUp("p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Phase != domain.PhaseLost {
		t.Errorf("phase = %s, want LOST", state.Phase)
	}
}

func TestTimeUp_NotLeader(t *testing.T) {
	reg := newStubRegistry()
	g := reg.seed("1234", activePlayer("p1", "jim", domain.RoleCommon))
	g.Phase = domain.PhasePlaying
	svc := newTestService(reg)

	if _, err := svc.TimeUp("p1"); !domain.IsInvalidInput(err) {
		t.Fatalf("error = %v, want InvalidInputError", err)
	}
}

// ---------------------------------------------------------------------------
// voting
// ---------------------------------------------------------------------------

func TestVotePlayer(t *testing.T) {
	reg := newStubRegistry()
	g := reg.seed("1234",
		activePlayer("p1", "jim", domain.RoleCommon),
		activePlayer("p2", "bob", domain.RoleInsider),
	)
	g.Phase = domain.PhaseFindInsider
	svc := newTestService(reg)

	state, err := svc.VotePlayer("p1", "p2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, p := range state.Players {
		if p.ID == "p1" && p.AccusedName != "bob" {
			t.Errorf("accused name = %q, want bob", p.AccusedName)
		}
	}

	// Re-voting overwrites.
	if _, err := svc.VotePlayer("p1", "p1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Players["p1"].AccusedID != "p1" {
		t.Errorf("accusation = %q, want p1", g.Players["p1"].AccusedID)
	}
}

func TestVotePlayer_UnknownAccused(t *testing.T) {
	reg := newStubRegistry()
	g := reg.seed("1234", activePlayer("p1", "jim", domain.RoleCommon))
	g.Phase = domain.PhaseFindInsider
	svc := newTestService(reg)

	_, err := svc.VotePlayer("p1", "ghost")
	if !domain.IsInvalidInput(err) {
		t.Fatalf("error = %v, want InvalidInputError", err)
	}
	if err.Error() != "The accused player does not exist." {
		t.Errorf("message = %q", err.Error())
	}
}

func TestVotePlayer_WrongPhase(t *testing.T) {
	reg := newStubRegistry()
	reg.seed("1234", activePlayer("p1", "jim", domain.RoleCommon))
	svc := newTestService(reg)

	if _, err := svc.VotePlayer("p1", "p1"); !domain.IsInvalidState(err) {
		t.Fatalf("error = %v, want InvalidStateError", err)
	}
}

func TestCompleteVoting(t *testing.T) {
	reg := newStubRegistry()
	g := reg.seed("1234", activePlayer("p1", "jim", domain.RoleCommon))
	g.Phase = domain.PhaseFindInsider
	svc := newTestService(reg)

	state, err := svc.CompleteVoting("p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Phase != domain.PhaseSummary {
		t.Errorf("phase = %s, want SUMMARY", state.Phase)
	}
	if state.Summary == nil {
		t.Fatal("summary missing after voting completed")
	}
}

// ---------------------------------------------------------------------------
// snapshot projection
// ---------------------------------------------------------------------------

func TestSecretWordVisibility(t *testing.T) {
	reg := newStubRegistry()
	g := reg.seed("1234",
		activePlayer("p1", "jim", domain.RoleLeader),
		activePlayer("p2", "bob", domain.RoleInsider),
		activePlayer("p3", "amy", domain.RoleCommon),
	)
	g.Phase = domain.PhasePreGame
	g.SecretWord = "APPLE"
	svc := newTestService(reg)

	for id, want := range map[string]string{"p1": "APPLE", "p2": "APPLE", "p3": ""} {
		state, err := svc.GetState(id)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if state.SecretWord != want {
			t.Errorf("secret word for %s = %q, want %q", id, state.SecretWord, want)
		}
	}
}

func TestSummary_VoteTally(t *testing.T) {
	reg := newStubRegistry()
	first := activePlayer("p1", "jim", domain.RoleCommon)
	second := activePlayer("p2", "bob", domain.RoleInsider)
	third := activePlayer("p3", "amy", domain.RoleCommon)
	fourth := activePlayer("p4", "joe", domain.RoleLeader)
	// Two accuse each other, one accuses the first, one casts no vote.
	first.AccusedID = "p2"
	second.AccusedID = "p1"
	third.AccusedID = "p1"
	g := reg.seed("1234", first, second, third, fourth)
	g.Phase = domain.PhaseSummary
	g.SecretWord = "apple"
	svc := newTestService(reg)

	state, err := svc.GetState("p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Summary == nil {
		t.Fatal("summary missing")
	}
	want := map[string]int{"jim": 2, "bob": 1, "no vote": 1}
	if len(state.Summary.Votes) != len(want) {
		t.Fatalf("votes = %v, want %v", state.Summary.Votes, want)
	}
	for name, count := range want {
		if state.Summary.Votes[name] != count {
			t.Errorf("votes[%q] = %d, want %d", name, state.Summary.Votes[name], count)
		}
	}
	if state.Summary.InsiderName != "bob" {
		t.Errorf("insider name = %q, want bob", state.Summary.InsiderName)
	}
	if state.Summary.SecretWord != "apple" {
		t.Errorf("summary word = %q, want apple", state.Summary.SecretWord)
	}
}

func TestSummary_InactivePlayersExcluded(t *testing.T) {
	reg := newStubRegistry()
	voter := activePlayer("p1", "jim", domain.RoleCommon)
	voter.AccusedID = "p2"
	idle := domain.NewPlayer("p2", "bob")
	idle.AccusedID = "p1"
	g := reg.seed("1234", voter, idle)
	g.Phase = domain.PhaseLost
	g.SecretWord = "apple"
	svc := newTestService(reg)

	state, err := svc.GetState("p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := state.Summary.Votes["bob"]; got != 1 {
		t.Errorf("votes[bob] = %d, want 1", got)
	}
	if _, counted := state.Summary.Votes["jim"]; counted {
		t.Error("inactive player's vote was counted")
	}
}

func TestSummary_AccusedLeftCountsAsNoVote(t *testing.T) {
	reg := newStubRegistry()
	voter := activePlayer("p1", "jim", domain.RoleCommon)
	voter.AccusedID = "gone"
	g := reg.seed("1234", voter)
	g.Phase = domain.PhaseSummary
	g.SecretWord = "apple"
	svc := newTestService(reg)

	state, err := svc.GetState("p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := state.Summary.Votes["no vote"]; got != 1 {
		t.Errorf("votes[no vote] = %d, want 1", got)
	}
}

func TestSummary_MissingWordFallback(t *testing.T) {
	reg := newStubRegistry()
	g := reg.seed("1234", activePlayer("p1", "jim", domain.RoleCommon))
	g.Phase = domain.PhaseLost
	svc := newTestService(reg)

	state, err := svc.GetState("p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Summary.SecretWord != "NO WORD" {
		t.Errorf("summary word = %q, want NO WORD", state.Summary.SecretWord)
	}
	if state.Summary.InsiderName != "" {
		t.Errorf("insider name = %q, want empty", state.Summary.InsiderName)
	}
}

func TestSummary_AbsentOutsideEndPhases(t *testing.T) {
	reg := newStubRegistry()
	g := reg.seed("1234", activePlayer("p1", "jim", domain.RoleCommon))
	g.Phase = domain.PhasePlaying
	svc := newTestService(reg)

	state, err := svc.GetState("p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Summary != nil {
		t.Errorf("summary = %+v, want nil outside SUMMARY/LOST", state.Summary)
	}
}

// ---------------------------------------------------------------------------
// end + consistency repair
// ---------------------------------------------------------------------------

func TestEnd_AlwaysFails(t *testing.T) {
	reg := newStubRegistry()
	reg.seed("1234", activePlayer("p1", "jim", domain.RoleLeader))
	svc := newTestService(reg)

	if _, err := svc.End("p1"); !domain.IsInvalidState(err) {
		t.Fatalf("error = %v, want InvalidStateError", err)
	}
	if _, err := svc.End("nobody"); !domain.IsInvalidState(err) {
		t.Fatalf("end must fail regardless of state, got %v", err)
	}
}

func TestStaleBinding_SelfHeals(t *testing.T) {
	reg := newStubRegistry()
	g := reg.seed("1234", domain.NewPlayer("p1", "jim"))
	// Corrupt the registry: p2 bound to a game that does not list them.
	reg.players["p2"] = g
	svc := newTestService(reg)

	_, err := svc.SetReady("p2", domain.RoleNone)
	if !domain.IsInvalidInput(err) {
		t.Fatalf("error = %v, want InvalidInputError", err)
	}
	if _, still := reg.players["p2"]; still {
		t.Error("stale binding not removed")
	}
}

func TestNoActionForUnboundPlayer(t *testing.T) {
	svc := newTestService(newStubRegistry())

	calls := map[string]func() (*ports.GameState, error){
		"ready":    func() (*ports.GameState, error) { return svc.SetReady("p1", domain.RoleNone) },
		"notReady": func() (*ports.GameState, error) { return svc.SetNotReady("p1") },
		"reset":    func() (*ports.GameState, error) { return svc.Reset("p1") },
		"assign":   func() (*ports.GameState, error) { return svc.AssignRoles("p1") },
		"exchange": func() (*ports.GameState, error) { return svc.ExchangeWord("p1") },
		"start":    func() (*ports.GameState, error) { return svc.Start("p1") },
		"guessed":  func() (*ports.GameState, error) { return svc.WordGuessed("p1") },
		"timeUp":   func() (*ports.GameState, error) { return svc.TimeUp("p1") },
		"vote":     func() (*ports.GameState, error) { return svc.VotePlayer("p1", "p2") },
		"complete": func() (*ports.GameState, error) { return svc.CompleteVoting("p1") },
	}
	for name, call := range calls {
		if _, err := call(); !domain.IsInvalidInput(err) {
			t.Errorf("%s: error = %v, want InvalidInputError", name, err)
		}
	}
}
