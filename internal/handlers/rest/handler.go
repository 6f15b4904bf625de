package rest

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/fairgame-io/gametable/internal/services/engine"
)

// callerHeader carries the caller principal on every mutating request.
// Authentication of the principal is the deployment's concern; the
// handler only binds the identity into engine inputs.
const callerHeader = "X-Player-ID"

// Handler translates HTTP requests into engine operations
type Handler struct {
	engine engine.Service
}

// Config holds the configuration for the handler
type Config struct {
	// Game lifecycle engine
	Engine engine.Service
}

// New creates a new REST handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Engine == nil {
		return nil, errors.New("engine cannot be nil")
	}

	return &Handler{
		engine: cfg.Engine,
	}, nil
}

// Routes returns the handler's route table
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/games", h.handleCreateGame)
	mux.HandleFunc("POST /v1/games/{id}/join", h.handleJoinGame)
	mux.HandleFunc("POST /v1/games/{id}/start", h.handleStartGame)
	mux.HandleFunc("POST /v1/games/{id}/resolve", h.handleResolveGame)
	mux.HandleFunc("POST /v1/games/{id}/claim", h.handleClaimPrize)
	mux.HandleFunc("POST /v1/games/{id}/assets", h.handleMintAsset)
	mux.HandleFunc("POST /v1/games/{id}/assets/{assetID}/transfer", h.handleTransferAsset)

	mux.HandleFunc("GET /v1/games/{id}", h.handleGetGame)
	mux.HandleFunc("GET /v1/games/{id}/result", h.handleGetResult)
	mux.HandleFunc("GET /v1/games/{id}/assets/{assetID}", h.handleGetAsset)
	mux.HandleFunc("GET /v1/games/{id}/players/{playerID}", h.handleGetPlayerStatus)

	return mux
}

type createGameRequest struct {
	GameType   string `json:"game_type"`
	EntryFee   uint64 `json:"entry_fee"`
	MaxPlayers int    `json:"max_players"`
	CommitHash []byte `json:"commit_hash"`
}

type createGameResponse struct {
	GameID uint64 `json:"game_id"`
}

func (h *Handler) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	caller := r.Header.Get(callerHeader)

	var req createGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	output, err := h.engine.CreateGame(r.Context(), &engine.CreateGameInput{
		CallerID:   caller,
		GameType:   req.GameType,
		EntryFee:   req.EntryFee,
		MaxPlayers: req.MaxPlayers,
		CommitHash: req.CommitHash,
	})
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, createGameResponse{GameID: output.GameID})
}

type successResponse struct {
	Success bool `json:"success"`
}

func (h *Handler) handleJoinGame(w http.ResponseWriter, r *http.Request) {
	gameID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	output, err := h.engine.JoinGame(r.Context(), &engine.JoinGameInput{
		CallerID: r.Header.Get(callerHeader),
		GameID:   gameID,
	})
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: output.Success})
}

func (h *Handler) handleStartGame(w http.ResponseWriter, r *http.Request) {
	gameID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	output, err := h.engine.StartGame(r.Context(), &engine.StartGameInput{
		CallerID: r.Header.Get(callerHeader),
		GameID:   gameID,
	})
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: output.Success})
}

type resolveGameRequest struct {
	Seed        []byte  `json:"seed"`
	OutcomeData string  `json:"outcome_data"`
	Winner      *string `json:"winner,omitempty"`
}

func (h *Handler) handleResolveGame(w http.ResponseWriter, r *http.Request) {
	gameID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req resolveGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	output, err := h.engine.ResolveGame(r.Context(), &engine.ResolveGameInput{
		CallerID:    r.Header.Get(callerHeader),
		GameID:      gameID,
		Seed:        req.Seed,
		OutcomeData: req.OutcomeData,
		Winner:      req.Winner,
	})
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: output.Success})
}

type claimPrizeResponse struct {
	Success bool   `json:"success"`
	Prize   uint64 `json:"prize"`
}

func (h *Handler) handleClaimPrize(w http.ResponseWriter, r *http.Request) {
	gameID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	output, err := h.engine.ClaimPrize(r.Context(), &engine.ClaimPrizeInput{
		CallerID: r.Header.Get(callerHeader),
		GameID:   gameID,
	})
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, claimPrizeResponse{
		Success: output.Success,
		Prize:   output.Prize,
	})
}

type mintAssetRequest struct {
	AssetID     uint64 `json:"asset_id"`
	TokenID     uint64 `json:"token_id"`
	MetadataURL string `json:"metadata_url"`
}

func (h *Handler) handleMintAsset(w http.ResponseWriter, r *http.Request) {
	gameID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req mintAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	output, err := h.engine.MintGameAsset(r.Context(), &engine.MintGameAssetInput{
		CallerID:    r.Header.Get(callerHeader),
		GameID:      gameID,
		AssetID:     req.AssetID,
		TokenID:     req.TokenID,
		MetadataURL: req.MetadataURL,
	})
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, successResponse{Success: output.Success})
}

type transferAssetRequest struct {
	Recipient string `json:"recipient"`
}

func (h *Handler) handleTransferAsset(w http.ResponseWriter, r *http.Request) {
	gameID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	assetID, ok := pathID(w, r, "assetID")
	if !ok {
		return
	}

	var req transferAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	output, err := h.engine.TransferGameAsset(r.Context(), &engine.TransferGameAssetInput{
		CallerID:    r.Header.Get(callerHeader),
		GameID:      gameID,
		AssetID:     assetID,
		RecipientID: req.Recipient,
	})
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: output.Success})
}

func (h *Handler) handleGetGame(w http.ResponseWriter, r *http.Request) {
	gameID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	output, err := h.engine.GetGameInfo(r.Context(), &engine.GetGameInfoInput{
		GameID: gameID,
	})
	if err != nil {
		writeEngineError(w, err)
		return
	}

	if output.Game == nil {
		writeJSON(w, http.StatusNotFound, nil)
		return
	}

	writeJSON(w, http.StatusOK, output.Game)
}

func (h *Handler) handleGetResult(w http.ResponseWriter, r *http.Request) {
	gameID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	output, err := h.engine.GetGameResult(r.Context(), &engine.GetGameResultInput{
		GameID: gameID,
	})
	if err != nil {
		writeEngineError(w, err)
		return
	}

	if output.Result == nil {
		writeJSON(w, http.StatusNotFound, nil)
		return
	}

	writeJSON(w, http.StatusOK, output.Result)
}

func (h *Handler) handleGetAsset(w http.ResponseWriter, r *http.Request) {
	gameID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	assetID, ok := pathID(w, r, "assetID")
	if !ok {
		return
	}

	output, err := h.engine.GetGameAsset(r.Context(), &engine.GetGameAssetInput{
		GameID:  gameID,
		AssetID: assetID,
	})
	if err != nil {
		writeEngineError(w, err)
		return
	}

	if output.Asset == nil {
		writeJSON(w, http.StatusNotFound, nil)
		return
	}

	writeJSON(w, http.StatusOK, output.Asset)
}

func (h *Handler) handleGetPlayerStatus(w http.ResponseWriter, r *http.Request) {
	gameID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	output, err := h.engine.GetPlayerStatus(r.Context(), &engine.GetPlayerStatusInput{
		GameID:   gameID,
		PlayerID: r.PathValue("playerID"),
	})
	if err != nil {
		writeEngineError(w, err)
		return
	}

	if output.Participation == nil {
		writeJSON(w, http.StatusNotFound, nil)
		return
	}

	writeJSON(w, http.StatusOK, output.Participation)
}

// pathID parses a uint64 path segment, responding 400 on garbage
func pathID(w http.ResponseWriter, r *http.Request, name string) (uint64, bool) {
	id, err := strconv.ParseUint(r.PathValue(name), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid "+name))
		return 0, false
	}
	return id, true
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// writeEngineError maps the engine's typed failures onto HTTP statuses
func writeEngineError(w http.ResponseWriter, err error) {
	var engineErr engine.Error
	if !errors.As(err, &engineErr) {
		log.Printf("Engine operation failed: %v", err)
		writeError(w, http.StatusInternalServerError, errors.New("internal error"))
		return
	}

	switch engineErr {
	case engine.ErrGameNotFound, engine.ErrAssetNotFound:
		writeError(w, http.StatusNotFound, engineErr)
	case engine.ErrUnauthorized, engine.ErrNotAssetOwner, engine.ErrNotWinner, engine.ErrNotParticipant:
		writeError(w, http.StatusForbidden, engineErr)
	case engine.ErrInvalidState, engine.ErrGameFull, engine.ErrAlreadyJoined,
		engine.ErrInsufficientPlayers, engine.ErrCommitMismatch, engine.ErrNotResolved,
		engine.ErrNoWinner, engine.ErrAlreadyClaimed, engine.ErrDuplicateAssetID,
		engine.ErrArithmeticOverflow:
		writeError(w, http.StatusConflict, engineErr)
	default:
		writeError(w, http.StatusBadRequest, engineErr)
	}
}
