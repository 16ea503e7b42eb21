package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

// playerRequest is the shared body for actions that only need the actor.
type playerRequest struct {
	PlayerID string `json:"player_id" validate:"required"`
}

type gameSettingsRequest struct {
	CanClaimLeader  bool `json:"can_claim_leader"`
	CanClaimInsider bool `json:"can_claim_insider"`
	CanClaimCommon  bool `json:"can_claim_common"`
	GuessTimeLimit  int  `json:"guess_time_limit" validate:"omitempty,gt=0"`
}

type createGameRequest struct {
	PlayerID   string               `json:"player_id"   validate:"required"`
	PlayerName string               `json:"player_name" validate:"required"`
	Settings   *gameSettingsRequest `json:"settings"`
}

type joinGameRequest struct {
	PlayerID   string `json:"player_id"   validate:"required"`
	PlayerName string `json:"player_name" validate:"required"`
	GameCode   string `json:"game_code"   validate:"required"`
}

type readyRequest struct {
	PlayerID string `json:"player_id" validate:"required"`
	IsReady  *bool  `json:"is_ready"  validate:"required"`
	// ClaimedRole is only honored when readying up.
	ClaimedRole string `json:"claimed_role" validate:"omitempty,oneof=LEADER INSIDER COMMON"`
}

type voteRequest struct {
	PlayerID        string `json:"player_id"         validate:"required"`
	AccusedPlayerID string `json:"accused_player_id" validate:"required"`
}

// --- Response types ---
// These are intentionally separate from ports/domain types so the JSON
// contract is not coupled to internal service changes.

type playerResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Active      bool   `json:"active"`
	AccusedName string `json:"accused_name,omitempty"`
}

type gameSettingsResponse struct {
	CanClaimLeader  bool `json:"can_claim_leader"`
	CanClaimInsider bool `json:"can_claim_insider"`
	CanClaimCommon  bool `json:"can_claim_common"`
	GuessTimeLimit  int  `json:"guess_time_limit"`
}

type gameSummaryResponse struct {
	SecretWord  string         `json:"secret_word"`
	InsiderName string         `json:"insider_name,omitempty"`
	Votes       map[string]int `json:"votes"`
}

type gameStateResponse struct {
	PlayerID     string               `json:"player_id"`
	Code         string               `json:"code"`
	Players      []playerResponse     `json:"players"`
	Phase        string               `json:"phase"`
	Settings     gameSettingsResponse `json:"settings"`
	Actions      []string             `json:"actions"`
	LastActivity time.Time            `json:"last_activity"`
	PlayStart    *time.Time           `json:"play_start_time,omitempty"`
	SecretWord   string               `json:"secret_word,omitempty"`
	YourRole     string               `json:"your_role,omitempty"`
	Summary      *gameSummaryResponse `json:"summary,omitempty"`
}
