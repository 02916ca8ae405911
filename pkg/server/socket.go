package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/notjagan/movedex/pkg/moveset"
)

type movesetRequest struct {
	Pokemon  string `json:"pokemon"`
	Opponent string `json:"opponent,omitempty"`
}

type movesetReply struct {
	*moveset.Moveset
	Error string `json:"error,omitempty"`
}

func (s *Server) upgrader() *websocket.Upgrader {
	return &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return s.config.CORSOrigin == "*" || origin == "" || origin == s.config.CORSOrigin
		},
	}
}

// movesetSocket answers one moveset query per inbound message until the
// client disconnects or the server shuts down.
func (s *Server) movesetSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader().Upgrade(w, r, nil)
	if err != nil {
		log.Printf("failed to upgrade websocket [%s]: %v", RequestID(r.Context()), err)
		return
	}
	defer conn.Close()

	ctx := r.Context()
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		var req movesetRequest
		err := conn.ReadJSON(&req)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("websocket closed unexpectedly [%s]: %v", RequestID(ctx), err)
			}
			return
		}

		var reply movesetReply
		if req.Pokemon == "" {
			reply.Error = fmt.Errorf("missing pokemon: %w", ErrBadRequest).Error()
		} else {
			ms, err := s.resolveMoveset(ctx, req.Pokemon, req.Opponent)
			if err != nil {
				reply.Error = err.Error()
			} else {
				reply.Moveset = &ms
			}
		}

		err = conn.WriteJSON(reply)
		if err != nil {
			log.Printf("error while writing websocket reply [%s]: %v", RequestID(ctx), err)
			return
		}
	}
}
