package handler

import (
	"github.com/insider-games/insider-api/internal/core/domain"
	"github.com/insider-games/insider-api/internal/core/ports"
)

// --- Request → Service input ---

func toSettings(r *gameSettingsRequest) *domain.GameSettings {
	if r == nil {
		return nil
	}
	s := domain.GameSettings{
		CanClaimLeader:  r.CanClaimLeader,
		CanClaimInsider: r.CanClaimInsider,
		CanClaimCommon:  r.CanClaimCommon,
		GuessTimeLimit:  r.GuessTimeLimit,
	}
	if s.GuessTimeLimit == 0 {
		s.GuessTimeLimit = domain.DefaultSettings().GuessTimeLimit
	}
	return &s
}

// --- Service result → HTTP response ---

func toGameStateResponse(s *ports.GameState) gameStateResponse {
	players := make([]playerResponse, 0, len(s.Players))
	for _, p := range s.Players {
		players = append(players, playerResponse{
			ID:          p.ID,
			Name:        p.Name,
			Active:      p.Active,
			AccusedName: p.AccusedName,
		})
	}
	actions := make([]string, 0, len(s.Actions))
	for _, a := range s.Actions {
		actions = append(actions, string(a))
	}

	return gameStateResponse{
		PlayerID: s.PlayerID,
		Code:     s.Code,
		Players:  players,
		Phase:    string(s.Phase),
		Settings: gameSettingsResponse{
			CanClaimLeader:  s.Settings.CanClaimLeader,
			CanClaimInsider: s.Settings.CanClaimInsider,
			CanClaimCommon:  s.Settings.CanClaimCommon,
			GuessTimeLimit:  s.Settings.GuessTimeLimit,
		},
		Actions:      actions,
		LastActivity: s.LastActivity,
		PlayStart:    s.PlayStart,
		SecretWord:   s.SecretWord,
		YourRole:     string(s.YourRole),
		Summary:      toSummaryResponse(s.Summary),
	}
}

func toSummaryResponse(s *ports.GameSummary) *gameSummaryResponse {
	if s == nil {
		return nil
	}
	return &gameSummaryResponse{
		SecretWord:  s.SecretWord,
		InsiderName: s.InsiderName,
		Votes:       s.Votes,
	}
}
