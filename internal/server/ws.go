package server

import (
	"net/http"

	json "github.com/bytedance/sonic"
	"github.com/gorilla/websocket"
)

// handleStream upgrades to WebSocket and re-runs validate-then-calculate for
// every snapshot message: the live recalculation loop behind an interactive
// form. One response frame per request frame, on the same connection.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Printf("[stream] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	s.metrics.StreamClients.Inc()
	defer s.metrics.StreamClients.Dec()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Printf("[stream] read: %v", err)
			}
			return
		}
		s.metrics.StreamMessages.Inc()

		var req SimulateRequest
		if err := json.Unmarshal(data, &req); err != nil {
			s.metrics.BadRequests.Inc()
			if err := s.writeFrame(conn, errorResponse{Error: "parse request: " + err.Error()}); err != nil {
				return
			}
			continue
		}
		if !req.Variant.Valid() {
			s.metrics.BadRequests.Inc()
			if err := s.writeFrame(conn, errorResponse{Error: "unknown variant"}); err != nil {
				return
			}
			continue
		}

		resp, _ := s.evaluate(req, s.locale(r, req.Lang))
		if err := s.writeFrame(conn, resp); err != nil {
			s.logger.Printf("[stream] write: %v", err)
			return
		}
	}
}

func (s *Server) writeFrame(conn *websocket.Conn, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, payload)
}
