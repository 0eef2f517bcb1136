package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/rs/zerolog/log"
)

const (
	wsReadyMessage = "ready"
	wsWriteTimeout = 5 * time.Second
)

// SessionStateHandler reports loading, identity and expiry as JSON. The token
// itself is never exposed.
func (s *Server) SessionStateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(newSessionState(s.session)); err != nil {
			log.Err(err).Msg("Failed to encode session state")
		}
	}
}

// SessionReadyWSHandler sends "ready" once the startup resume has finished,
// then closes. The waiting page reloads when it arrives.
func (s *Server) SessionReadyWSHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: s.config.GetAllowedOrigins().Patterns(),
		})
		if err != nil {
			log.Err(err).Msg("Failed to accept session websocket")
			return
		}
		defer func() {
			if closeErr := ws.Close(websocket.StatusNormalClosure, "session resolved"); closeErr != nil {
				log.Debug().Err(closeErr).Msg("Failed to close session websocket")
			}
		}()

		// CloseRead discards client frames and cancels ctx when the peer leaves
		ctx := ws.CloseRead(r.Context())

		select {
		case <-s.session.Ready():
		case <-ctx.Done():
			return
		}

		writeCtx, cancel := context.WithTimeout(ctx, wsWriteTimeout)
		defer cancel()
		if err := ws.Write(writeCtx, websocket.MessageText, []byte(wsReadyMessage)); err != nil {
			log.Debug().Err(err).Msg("Failed to send ready message")
		}
	}
}
