package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wege-go/internal/api/apierr"
	"github.com/mcoot/wege-go/internal/api/request"
	"github.com/mcoot/wege-go/internal/api/response"
	"github.com/mcoot/wege-go/internal/model"
	"github.com/mcoot/wege-go/internal/services/bot"
	"github.com/mcoot/wege-go/internal/services/game"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	gameController game.ControllerInterface
	botService     *bot.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController game.ControllerInterface, botService *bot.Service) *GameHandler {
	return &GameHandler{
		gameController: gameController,
		botService:     botService,
	}
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if err := decodeOptional(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	settings := model.DefaultSettings()
	if req.Rows != 0 {
		settings.Rows = req.Rows
	}
	if req.Cols != 0 {
		settings.Cols = req.Cols
	}
	settings.SpecialCount = req.Special

	g, err := h.gameController.CreateGame(r.Context(), settings)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameFromModel(g))
}

// List handles GET /api/v1/games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	ids, err := h.gameController.ListGames(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameListFromModel(ids))
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	g, err := h.gameController.GetGame(r.Context(), gameID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// Delete handles DELETE /api/v1/games/{id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.gameController.DeleteGame(r.Context(), gameID(r)); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Rotate handles POST /api/v1/games/{id}/rotate
func (h *GameHandler) Rotate(w http.ResponseWriter, r *http.Request) {
	g, err := h.gameController.RotateNextTile(r.Context(), gameID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// Place handles POST /api/v1/games/{id}/place
func (h *GameHandler) Place(w http.ResponseWriter, r *http.Request) {
	h.move(w, r, h.gameController.Place)
}

// Swap handles POST /api/v1/games/{id}/swap
func (h *GameHandler) Swap(w http.ResponseWriter, r *http.Request) {
	h.move(w, r, h.gameController.Swap)
}

// Statistics handles GET /api/v1/games/{id}/statistics
func (h *GameHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	result, err := h.gameController.GetResult(r.Context(), gameID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ResultFromModel(result))
}

// Autoplay handles POST /api/v1/games/{id}/autoplay
func (h *GameHandler) Autoplay(w http.ResponseWriter, r *http.Request) {
	var req request.AutoplayRequest
	if err := decodeOptional(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	if req.Strategy == "" {
		req.Strategy = bot.StrategyRandom
	}
	if !h.botService.HasStrategy(req.Strategy) {
		WriteError(w, apierr.NewUnknownStrategyError(req.Strategy))
		return
	}
	if req.Turns < 0 {
		WriteError(w, NewInvalidRequestError("turns must not be negative"))
		return
	}

	id := gameID(r)
	actions, err := h.botService.PlayOut(r.Context(), id, req.Strategy, req.Turns)
	if err != nil {
		WriteError(w, err)
		return
	}

	g, err := h.gameController.GetGame(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AutoplayResponseFromModel(actions, g))
}

// moveFunc applies a move for the waiting tile at pos
type moveFunc func(ctx context.Context, id model.GameID, pos model.Position) (*model.Game, error)

func (h *GameHandler) move(w http.ResponseWriter, r *http.Request, apply moveFunc) {
	var req request.MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	g, err := apply(r.Context(), gameID(r), model.Position{Row: req.Row, Col: req.Col})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

func gameID(r *http.Request) model.GameID {
	return model.GameID(mux.Vars(r)["id"])
}

// decodeOptional decodes a JSON body, leaving v untouched when the body is empty
func decodeOptional(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return NewInvalidRequestError("invalid request body")
	}
	return nil
}
