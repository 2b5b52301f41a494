package realtime

import (
	"log"

	"github.com/setiawanwcksn/weddingorg-sub000/internal/domain"
)

// Hub — точка входа для гостевого CRUD: этот слой зовёт Broadcast
// при каждой смене состояния гостя. Доставка best-effort, без персиста:
// рестарт сервера молча сбрасывает подписки, клиенты переподписываются сами.
type Hub struct {
	log *log.Logger
	reg *Registry
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		log: logger,
		reg: NewRegistry(logger),
	}
}

// Registry отдаёт реестр ws-обработчику (DI вместо глобальной карты)
func (h *Hub) Registry() *Registry { return h.reg }

// Broadcast уведомляет все живые соединения владельца о событии гостя.
// Пустой ownerID сводится к "anonymous"; отсутствие подписчиков — no-op.
func (h *Hub) Broadcast(event domain.GuestEvent, guestID, ownerID string) int {
	if !event.Valid() {
		h.log.Printf("broadcast: skip unknown event %q", event)
		return 0
	}
	if ownerID == "" {
		ownerID = domain.AnonymousOwner
	}
	sent := h.reg.Broadcast(ownerID, NewEvent(event, guestID).Marshal())
	h.log.Printf("broadcast event=%s guest=%s owner=%s sent=%d", event, guestID, ownerID, sent)
	return sent
}

// Close закрывает все соединения (graceful shutdown)
func (h *Hub) Close() { h.reg.CloseAll() }
