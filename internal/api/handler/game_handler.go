package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/insider-games/insider-api/internal/api/metrics"
	"github.com/insider-games/insider-api/internal/core/domain"
	"github.com/insider-games/insider-api/internal/core/ports"
)

// GameHandler exposes the game state machine over HTTP. Every route is a POST
// carrying the acting player's id; every success returns that player's
// snapshot. Clients poll /getState; there is no push channel.
type GameHandler struct {
	service ports.GameService
}

func NewGameHandler(service ports.GameService) *GameHandler {
	return &GameHandler{service: service}
}

// GetState handles POST /getState.
//
// @Summary      Get the caller's current game snapshot
// @Tags         game
// @Accept       json
// @Produce      json
// @Param        body  body      playerRequest  true  "Acting player"
// @Success      200   {object}  gameStateResponse
// @Failure      400   {object}  errorResponse
// @Router       /getState [post]
func (h *GameHandler) GetState(c echo.Context) error {
	req, err := bind[playerRequest](c)
	if err != nil {
		return err
	}
	state, err := h.service.GetState(req.PlayerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toGameStateResponse(state))
}

// Create handles POST /create.
//
// @Summary      Create a new game
// @Tags         game
// @Accept       json
// @Produce      json
// @Param        body  body      createGameRequest  true  "Creator and optional settings"
// @Success      200   {object}  gameStateResponse
// @Failure      400   {object}  errorResponse
// @Router       /create [post]
func (h *GameHandler) Create(c echo.Context) error {
	req, err := bind[createGameRequest](c)
	if err != nil {
		return err
	}
	return h.act(c, domain.ActionCreate, func() (*ports.GameState, error) {
		state, err := h.service.Create(req.PlayerID, req.PlayerName, toSettings(req.Settings))
		if err == nil {
			metrics.GamesCreatedTotal.Inc()
		}
		return state, err
	})
}

// Join handles POST /join.
//
// @Summary      Join an existing game by code
// @Tags         game
// @Accept       json
// @Produce      json
// @Param        body  body      joinGameRequest  true  "Joining player and game code"
// @Success      200   {object}  gameStateResponse
// @Failure      400   {object}  errorResponse
// @Router       /join [post]
func (h *GameHandler) Join(c echo.Context) error {
	req, err := bind[joinGameRequest](c)
	if err != nil {
		return err
	}
	return h.act(c, domain.ActionJoin, func() (*ports.GameState, error) {
		return h.service.Join(req.PlayerID, req.PlayerName, req.GameCode)
	})
}

// Leave handles POST /leave. Leaving with no game is not an error; the
// response is always the caller's post-leave snapshot (NO_GAME).
//
// @Summary      Leave the current game
// @Tags         game
// @Accept       json
// @Produce      json
// @Param        body  body      playerRequest  true  "Acting player"
// @Success      200   {object}  gameStateResponse
// @Failure      400   {object}  errorResponse
// @Router       /leave [post]
func (h *GameHandler) Leave(c echo.Context) error {
	req, err := bind[playerRequest](c)
	if err != nil {
		return err
	}
	state, err := h.service.Leave(req.PlayerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toGameStateResponse(state))
}

// Ready handles POST /ready. is_ready=true readies the player up (optionally
// claiming a role); is_ready=false backs them out again.
//
// @Summary      Set the caller ready or not ready
// @Tags         game
// @Accept       json
// @Produce      json
// @Param        body  body      readyRequest  true  "Ready flag and optional role claim"
// @Success      200   {object}  gameStateResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /ready [post]
func (h *GameHandler) Ready(c echo.Context) error {
	req, err := bind[readyRequest](c)
	if err != nil {
		return err
	}
	role, err := domain.ParseRole(req.ClaimedRole)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return h.act(c, domain.ActionReady, func() (*ports.GameState, error) {
		if !*req.IsReady {
			return h.service.SetNotReady(req.PlayerID)
		}
		return h.service.SetReady(req.PlayerID, role)
	})
}

// Reset handles POST /reset.
//
// @Summary      Reset the game back to WAITING
// @Tags         game
// @Accept       json
// @Produce      json
// @Param        body  body      playerRequest  true  "Acting player"
// @Success      200   {object}  gameStateResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /reset [post]
func (h *GameHandler) Reset(c echo.Context) error {
	req, err := bind[playerRequest](c)
	if err != nil {
		return err
	}
	return h.act(c, domain.ActionReset, func() (*ports.GameState, error) {
		return h.service.Reset(req.PlayerID)
	})
}

// AssignRoles handles POST /assignRoles.
//
// @Summary      Assign roles to all ready players and draw the secret word
// @Tags         game
// @Accept       json
// @Produce      json
// @Param        body  body      playerRequest  true  "Acting player"
// @Success      200   {object}  gameStateResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /assignRoles [post]
func (h *GameHandler) AssignRoles(c echo.Context) error {
	req, err := bind[playerRequest](c)
	if err != nil {
		return err
	}
	return h.act(c, domain.ActionAssignRoles, func() (*ports.GameState, error) {
		return h.service.AssignRoles(req.PlayerID)
	})
}

// ExchangeWord handles POST /exchangeWord.
//
// @Summary      Draw a replacement secret word (leader only)
// @Tags         game
// @Accept       json
// @Produce      json
// @Param        body  body      playerRequest  true  "Acting player"
// @Success      200   {object}  gameStateResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /exchangeWord [post]
func (h *GameHandler) ExchangeWord(c echo.Context) error {
	req, err := bind[playerRequest](c)
	if err != nil {
		return err
	}
	return h.act(c, domain.ActionExchangeWord, func() (*ports.GameState, error) {
		return h.service.ExchangeWord(req.PlayerID)
	})
}

// Start handles POST /start.
//
// @Summary      Start the guessing phase
// @Tags         game
// @Accept       json
// @Produce      json
// @Param        body  body      playerRequest  true  "Acting player"
// @Success      200   {object}  gameStateResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /start [post]
func (h *GameHandler) Start(c echo.Context) error {
	req, err := bind[playerRequest](c)
	if err != nil {
		return err
	}
	return h.act(c, domain.ActionStart, func() (*ports.GameState, error) {
		return h.service.Start(req.PlayerID)
	})
}

// Guessed handles POST /guessed.
//
// @Summary      Mark the word as guessed (leader only)
// @Tags         game
// @Accept       json
// @Produce      json
// @Param        body  body      playerRequest  true  "Acting player"
// @Success      200   {object}  gameStateResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /guessed [post]
func (h *GameHandler) Guessed(c echo.Context) error {
	req, err := bind[playerRequest](c)
	if err != nil {
		return err
	}
	return h.act(c, domain.ActionGuessed, func() (*ports.GameState, error) {
		return h.service.WordGuessed(req.PlayerID)
	})
}

// TimeUp handles POST /timeUp. Expiry is always caller-signaled; the server
// never runs a clock of its own.
//
// @Summary      Signal that the guess time ran out (leader only)
// @Tags         game
// @Accept       json
// @Produce      json
// @Param        body  body      playerRequest  true  "Acting player"
// @Success      200   {object}  gameStateResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /timeUp [post]
func (h *GameHandler) TimeUp(c echo.Context) error {
	req, err := bind[playerRequest](c)
	if err != nil {
		return err
	}
	return h.act(c, domain.ActionTimeUp, func() (*ports.GameState, error) {
		return h.service.TimeUp(req.PlayerID)
	})
}

// VotePlayer handles POST /votePlayer.
//
// @Summary      Accuse a player of being the Insider
// @Tags         game
// @Accept       json
// @Produce      json
// @Param        body  body      voteRequest  true  "Accuser and accused"
// @Success      200   {object}  gameStateResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /votePlayer [post]
func (h *GameHandler) VotePlayer(c echo.Context) error {
	req, err := bind[voteRequest](c)
	if err != nil {
		return err
	}
	return h.act(c, domain.ActionVotePlayer, func() (*ports.GameState, error) {
		return h.service.VotePlayer(req.PlayerID, req.AccusedPlayerID)
	})
}

// Complete handles POST /complete.
//
// @Summary      Close the voting window and show the summary
// @Tags         game
// @Accept       json
// @Produce      json
// @Param        body  body      playerRequest  true  "Acting player"
// @Success      200   {object}  gameStateResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /complete [post]
func (h *GameHandler) Complete(c echo.Context) error {
	req, err := bind[playerRequest](c)
	if err != nil {
		return err
	}
	return h.act(c, domain.ActionCompleteVoting, func() (*ports.GameState, error) {
		return h.service.CompleteVoting(req.PlayerID)
	})
}

// End handles POST /end.
//
// @Summary      End the game (not implemented)
// @Tags         game
// @Accept       json
// @Produce      json
// @Param        body  body      playerRequest  true  "Acting player"
// @Success      200   {object}  gameStateResponse
// @Failure      409   {object}  errorResponse
// @Router       /end [post]
func (h *GameHandler) End(c echo.Context) error {
	req, err := bind[playerRequest](c)
	if err != nil {
		return err
	}
	return h.act(c, domain.ActionEnd, func() (*ports.GameState, error) {
		return h.service.End(req.PlayerID)
	})
}

// act runs one state-machine call, keeps the action counters, and renders the
// resulting snapshot.
func (h *GameHandler) act(c echo.Context, action domain.GameAction, fn func() (*ports.GameState, error)) error {
	state, err := fn()
	if err != nil {
		metrics.ActionErrorsTotal.WithLabelValues(string(action), errReason(err)).Inc()
		return err
	}
	metrics.ActionsTotal.WithLabelValues(string(action)).Inc()
	return c.JSON(http.StatusOK, toGameStateResponse(state))
}

func errReason(err error) string {
	switch {
	case domain.IsInvalidInput(err):
		return "invalid_input"
	case domain.IsInvalidState(err):
		return "invalid_state"
	default:
		return "internal"
	}
}

// bind decodes and validates a request body.
func bind[T any](c echo.Context) (*T, error) {
	var req T
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return &req, nil
}
