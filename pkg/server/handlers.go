package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/notjagan/movedex/pkg/model"
	"github.com/notjagan/movedex/pkg/moveset"
)

var ErrBadRequest = errors.New("bad request")

type errorBody struct {
	Error string `json:"error"`
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, moveset.ErrNoAttacksAvailable), errors.Is(err, moveset.ErrInvalidMatchup):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.Printf("error while writing response: %v", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		log.Printf("error while handling %q [%s]: %v", r.URL.Path, RequestID(r.Context()), err)
	}

	writeJSON(w, status, errorBody{Error: err.Error()})
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) lookup(ctx context.Context, key string) (*model.Pokemon, error) {
	return s.model.PokemonByKey(ctx, key)
}

func (s *Server) creature(ctx context.Context, key string) (*moveset.Creature, error) {
	pokemon, err := s.lookup(ctx, key)
	if err != nil {
		return nil, err
	}

	return pokemon.Creature(ctx)
}

// matchup loads the attacker and the optional opponent of a moveset query.
func (s *Server) matchup(ctx context.Context, key string, opponentKey string) (*moveset.Creature, *moveset.Creature, error) {
	creature, err := s.creature(ctx, key)
	if err != nil {
		return nil, nil, fmt.Errorf("error while loading pokemon %q: %w", key, err)
	}

	if opponentKey == "" {
		return creature, nil, nil
	}

	opponent, err := s.creature(ctx, opponentKey)
	if err != nil {
		return nil, nil, fmt.Errorf("error while loading opponent %q: %w", opponentKey, err)
	}

	return creature, opponent, nil
}

func (s *Server) resolveMoveset(ctx context.Context, key string, opponentKey string) (moveset.Moveset, error) {
	creature, opponent, err := s.matchup(ctx, key, opponentKey)
	if err != nil {
		return moveset.Moveset{}, err
	}

	return s.resolver.BestMoveset(creature, opponent)
}

func (s *Server) moveset(w http.ResponseWriter, r *http.Request) {
	ms, err := s.resolveMoveset(r.Context(), r.PathValue("key"), r.URL.Query().Get("opponent"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ms)
}

type rankingBody struct {
	Pokemon  string                 `json:"pokemon"`
	Opponent string                 `json:"opponent,omitempty"`
	Fast     []moveset.ScoredAttack `json:"fastAttacks"`
	Charge   []moveset.ScoredAttack `json:"chargeAttacks"`
}

func (s *Server) attacks(w http.ResponseWriter, r *http.Request) {
	creature, opponent, err := s.matchup(r.Context(), r.PathValue("key"), r.URL.Query().Get("opponent"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	m := moveset.NewMatchup(creature, opponent)
	fast, err := s.resolver.Rank(creature.FastAttacks(), m)
	if err != nil {
		writeError(w, r, err)
		return
	}
	charge, err := s.resolver.Rank(creature.ChargeAttacks(), m)
	if err != nil {
		writeError(w, r, err)
		return
	}

	body := rankingBody{
		Pokemon: creature.Name,
		Fast:    fast,
		Charge:  charge,
	}
	if opponent != nil {
		body.Opponent = opponent.Name
	}
	writeJSON(w, http.StatusOK, body)
}

type matchupsBody struct {
	Pokemon  string   `json:"pokemon"`
	Types    []string `json:"types"`
	WeakTo   []string `json:"weakTo"`
	Resists  []string `json:"resists"`
	Coverage []string `json:"coverage"`
}

// matchups is the defensive chart of a pokemon plus the types its attacks
// hit for bonus damage.
func (s *Server) matchups(w http.ResponseWriter, r *http.Request) {
	creature, err := s.creature(r.Context(), r.PathValue("key"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	graph := s.resolver.Graph()
	defenders := creature.TypeSet()
	writeJSON(w, http.StatusOK, matchupsBody{
		Pokemon:  creature.Name,
		Types:    defenders.Names(),
		WeakTo:   graph.Weaknesses(defenders).Names(),
		Resists:  graph.Resistances(defenders).Names(),
		Coverage: graph.Coverage(creature.AttackTypes()).Names(),
	})
}

type pokemonBody struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	DisplayName string   `json:"displayName"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	Types       []string `json:"types"`
	Stamina     int      `json:"stamina"`
	Attack      int      `json:"attack"`
	Defense     int      `json:"defense"`
	CPMax       int      `json:"cpMax"`
	EvolvesTo   []string `json:"evolvesTo,omitempty"`
	EvolvesFrom []string `json:"evolvesFrom,omitempty"`
	Eggs        []string `json:"eggs,omitempty"`
}

func (s *Server) pokemonBody(ctx context.Context, pokemon *model.Pokemon, detailed bool) (*pokemonBody, error) {
	types, err := pokemon.Types(ctx)
	if err != nil {
		return nil, err
	}

	body := &pokemonBody{
		ID:          pokemon.ID,
		Name:        pokemon.Name,
		DisplayName: pokemon.LocalizedName(),
		Types:       make([]string, len(types)),
		Stamina:     pokemon.Stamina,
		Attack:      pokemon.AttackStat,
		Defense:     pokemon.Defense,
		CPMax:       pokemon.CPMax,
	}
	for i, typ := range types {
		body.Types[i] = typ.Name
	}
	if !detailed {
		return body, nil
	}

	body.Description = pokemon.Description
	category, err := pokemon.Category(ctx)
	if err != nil {
		return nil, err
	}
	body.Category = category.LocalizedName()

	to, err := pokemon.EvolvesTo(ctx)
	if err != nil {
		return nil, err
	}
	for _, evo := range to {
		next, err := evo.To(ctx)
		if err != nil {
			return nil, err
		}
		body.EvolvesTo = append(body.EvolvesTo, next.Name)
	}

	from, err := pokemon.EvolvesFrom(ctx)
	if err != nil {
		return nil, err
	}
	for _, evo := range from {
		prev, err := evo.From(ctx)
		if err != nil {
			return nil, err
		}
		body.EvolvesFrom = append(body.EvolvesFrom, prev.Name)
	}

	eggs, err := pokemon.Eggs(ctx)
	if err != nil {
		return nil, err
	}
	for _, egg := range eggs {
		body.Eggs = append(body.Eggs, egg.Name)
	}

	return body, nil
}

func (s *Server) pokemon(w http.ResponseWriter, r *http.Request) {
	pokemon, err := s.lookup(r.Context(), r.PathValue("key"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	body, err := s.pokemonBody(r.Context(), pokemon, true)
	if err != nil {
		writeError(w, r, fmt.Errorf("error while describing pokemon %q: %w", pokemon.Name, err))
		return
	}

	writeJSON(w, http.StatusOK, body)
}

type Page struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

type pokemonListBody struct {
	Pokemon []*pokemonBody `json:"pokemon"`
	Page    Page           `json:"page"`
	HasNext bool           `json:"hasNext"`
}

func (s *Server) page(r *http.Request) (Page, error) {
	page := Page{Limit: s.config.PageLimit}

	query := r.URL.Query()
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return Page{}, fmt.Errorf("invalid limit %q: %w", raw, ErrBadRequest)
		}
		page.Limit = min(limit, s.config.PageLimit)
	}
	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return Page{}, fmt.Errorf("invalid offset %q: %w", raw, ErrBadRequest)
		}
		page.Offset = offset
	}

	return page, nil
}

func (s *Server) listPokemon(w http.ResponseWriter, r *http.Request) {
	page, err := s.page(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	prefix := strings.ToLower(r.URL.Query().Get("prefix"))
	ps, hasNext, err := s.model.SearchPokemon(r.Context(), prefix, page.Limit, page.Offset)
	if err != nil {
		writeError(w, r, err)
		return
	}

	body := pokemonListBody{
		Pokemon: make([]*pokemonBody, len(ps)),
		Page:    page,
		HasNext: hasNext,
	}
	for i := range ps {
		body.Pokemon[i], err = s.pokemonBody(r.Context(), &ps[i], false)
		if err != nil {
			writeError(w, r, fmt.Errorf("error while describing pokemon %q: %w", ps[i].Name, err))
			return
		}
	}

	writeJSON(w, http.StatusOK, body)
}

type typeBody struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	DisplayName   string   `json:"displayName"`
	StrongAgainst []string `json:"strongAgainst"`
	WeakAgainst   []string `json:"weakAgainst"`
}

func (s *Server) types(w http.ResponseWriter, r *http.Request) {
	types, err := s.model.AllTypes(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	graph := s.resolver.Graph()
	body := make([]typeBody, len(types))
	for i, typ := range types {
		body[i] = typeBody{
			ID:            typ.ID,
			Name:          typ.Name,
			DisplayName:   typ.LocalizedName(),
			StrongAgainst: graph.StrongAgainst(typ.Value()).Names(),
			WeakAgainst:   graph.WeakAgainst(typ.Value()).Names(),
		}
	}

	writeJSON(w, http.StatusOK, body)
}

type itemBody struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
}

func (s *Server) items(w http.ResponseWriter, r *http.Request) {
	items, err := s.model.AllItems(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	body := make([]itemBody, len(items))
	for i, item := range items {
		body[i] = itemBody{
			ID:          item.ID,
			Name:        item.Name,
			DisplayName: item.LocalizedName(),
			Description: item.Description,
		}
	}

	writeJSON(w, http.StatusOK, body)
}
