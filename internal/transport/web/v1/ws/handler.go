package ws

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/setiawanwcksn/weddingorg-sub000/internal/domain"
	"github.com/setiawanwcksn/weddingorg-sub000/internal/realtime"
	"github.com/setiawanwcksn/weddingorg-sub000/internal/transport/web/logx"
	"github.com/setiawanwcksn/weddingorg-sub000/internal/transport/web/mw"
)

// контрольные кадры маленькие; тела файлов по этому каналу не ходят
const maxInboundFrame = 4 << 10

type Handler struct {
	Log *log.Logger
	Hub *realtime.Hub

	upgrader websocket.Upgrader
}

func New(logger *log.Logger, hub *realtime.Hub) *Handler {
	return &Handler{
		Log: logger,
		Hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// origin фильтрует реверс-прокси перед нами
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Serve godoc
// @Summary     Realtime guest events (websocket)
// @Description Подписка на события гостей владельца токена; без токена — "anonymous"
// @Tags        ws
// @Param       token query string false "токен (альтернатива Authorization: Bearer)"
// @Success     101
// @Router      /api/ws/guests [get]
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	const op = "ws.guests"
	reqID := mw.RequestIDFromCtx(r.Context())

	ownerID := domain.AnonymousOwner
	if me, ok := mw.UserFromCtx(r.Context()); ok {
		ownerID = me.ID.String()
	}

	raw, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade уже ответил клиенту
		logx.Error(h.Log, reqID, op, "upgrade failed", err)
		return
	}
	raw.SetReadLimit(maxInboundFrame)

	conn := realtime.NewWSConn(raw)
	reg := h.Hub.Registry()
	reg.Add(ownerID, conn)
	logx.Info(h.Log, reqID, op, "connected", "owner", ownerID)

	h.send(conn, realtime.Outbound{
		Type:    realtime.TypeConnected,
		Message: "connected to guest updates",
	})

	// Читаем последовательно: два входящих кадра одного соединения
	// никогда не обрабатываются конкурентно.
	for {
		_, data, err := raw.ReadMessage()
		if err != nil {
			// транспорт закрылся или сломался — единственная обязательная чистка;
			// Remove идемпотентен, unsubscribe мог уже убрать соединение
			reg.Remove(ownerID, conn)
			_ = conn.Close()
			logx.Info(h.Log, reqID, op, "closed", "owner", ownerID)
			return
		}
		h.dispatch(reg, ownerID, conn, data)
	}
}

// dispatch разбирает входящий кадр и отвечает на него.
// Повторный subscribe после unsubscribe подтверждается, но соединение
// в реестр не возвращается — точка повторного входа здесь, если
// продукту понадобится настоящая переподписка без реконнекта.
func (h *Handler) dispatch(reg *realtime.Registry, ownerID string, conn realtime.Conn, data []byte) {
	var in realtime.Inbound
	if err := json.Unmarshal(data, &in); err != nil {
		h.send(conn, realtime.Outbound{Type: realtime.TypeError, Message: "malformed message"})
		return
	}

	switch in.Type {
	case realtime.TypeSubscribe:
		if in.Channel != realtime.ChannelGuests {
			h.send(conn, realtime.Outbound{Type: realtime.TypeError, Message: "unknown channel"})
			return
		}
		h.send(conn, realtime.Outbound{
			Type:    realtime.TypeSubscribed,
			Channel: realtime.ChannelGuests,
			Message: "subscribed to guest updates",
		})

	case realtime.TypeUnsubscribe:
		reg.Remove(ownerID, conn)
		h.send(conn, realtime.Outbound{Type: realtime.TypeUnsubscribed})

	default:
		h.send(conn, realtime.Outbound{Type: realtime.TypeError, Message: "unknown message type"})
	}
}

func (h *Handler) send(conn realtime.Conn, out realtime.Outbound) {
	if err := conn.Send(out.Marshal()); err != nil {
		h.Log.Printf("send %s frame: %v", out.Type, err)
	}
}
