package server

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// serveWS answers every inbound frame with exactly one reply in the same
// framing: JSON for text frames, protobuf Struct for binary frames.
func serveWS(svc *Service, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade:", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(svc.params.MaxMessageBytes)

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("ws read error: %v", err)
			}
			return
		}

		switch msgType {
		case websocket.TextMessage:
			err = conn.WriteMessage(websocket.TextMessage, svc.handleJSON(data))
		case websocket.BinaryMessage:
			var reply []byte
			reply, err = svc.handleProto(data)
			if err != nil {
				log.Printf("protobuf reply error: %v", err)
				continue
			}
			err = conn.WriteMessage(websocket.BinaryMessage, reply)
		default:
			log.Printf("Received unsupported WebSocket message type %d", msgType)
			continue
		}
		if err != nil {
			log.Printf("send error: %v", err)
			return
		}
	}
}
