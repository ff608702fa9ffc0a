package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"github.com/mcoot/soccermanager/internal/api/apierr"
	"github.com/mcoot/soccermanager/internal/api/request"
	"github.com/mcoot/soccermanager/internal/api/response"
	"github.com/mcoot/soccermanager/internal/model"
	"github.com/mcoot/soccermanager/internal/services/roster"
)

// Roster is the registry surface the HTTP handlers need. It must be safe
// for concurrent use, e.g. *roster.Synchronized.
type Roster interface {
	CreateOutcome(name string, position model.Position, skillRating int) roster.Outcome
	UpdateSkillRankOutcome(name string, skillRank int) roster.Outcome
	Remove(name string) bool
	GetByName(name string) *model.Player
	Search(filter roster.Filter) []*model.Player
	String() string
}

var _ Roster = (*roster.Synchronized)(nil)

// PlayerHandler handles player-related endpoints
type PlayerHandler struct {
	roster Roster
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(r Roster) *PlayerHandler {
	return &PlayerHandler{
		roster: r,
	}
}

// Create handles POST /api/v1/players
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	outcome := h.roster.CreateOutcome(req.Name, model.Position(req.Position), req.SkillRating)
	if err := apierr.FromOutcome(outcome); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.Mutation(w, http.StatusCreated, outcome.Message, h.player(req.Name))
}

// Search handles GET /api/v1/players?name=&position=
func (h *PlayerHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := roster.Filter{Name: query.Get("name")}

	if raw := query.Get("position"); raw != "" {
		position, err := model.ParsePosition(raw)
		if err != nil {
			apierr.WriteError(w, err)
			return
		}
		filter.Position = position
	}

	response.JSON(w, http.StatusOK, response.PlayerListFromModel(h.roster.Search(filter)))
}

// Get handles GET /api/v1/players/{name}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	name, ok := playerName(w, r)
	if !ok {
		return
	}

	player := h.roster.GetByName(name)
	if player == nil {
		apierr.WriteError(w, apierr.NewNotFoundError(fmt.Sprintf("Player %s not found", name)))
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Remove handles DELETE /api/v1/players/{name}
func (h *PlayerHandler) Remove(w http.ResponseWriter, r *http.Request) {
	name, ok := playerName(w, r)
	if !ok {
		return
	}

	if !h.roster.Remove(name) {
		apierr.WriteError(w, apierr.NewNotFoundError(fmt.Sprintf("Player %s not found", name)))
		return
	}

	response.NoContent(w)
}

// UpdateSkill handles PATCH /api/v1/players/{name}/skill
func (h *PlayerHandler) UpdateSkill(w http.ResponseWriter, r *http.Request) {
	name, ok := playerName(w, r)
	if !ok {
		return
	}

	var req request.UpdateSkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	outcome := h.roster.UpdateSkillRankOutcome(name, req.SkillRating)
	if err := apierr.FromOutcome(outcome); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.Mutation(w, http.StatusOK, outcome.Message, h.player(name))
}

// Roster handles GET /api/v1/roster
func (h *PlayerHandler) Roster(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.RosterResponse{Roster: h.roster.String()})
}

func (h *PlayerHandler) player(name string) *response.Player {
	p := h.roster.GetByName(name)
	if p == nil {
		return nil
	}
	resp := response.PlayerFromModel(p)
	return &resp
}

// playerName decodes the {name} route variable. Routes match on the escaped
// path, so names containing "/" arrive as %2F.
func playerName(w http.ResponseWriter, r *http.Request) (string, bool) {
	name, err := url.PathUnescape(mux.Vars(r)["name"])
	if err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid player name in path"))
		return "", false
	}
	return name, true
}
