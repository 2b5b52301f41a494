package realtime

import (
	"encoding/json"
	"time"

	"github.com/setiawanwcksn/weddingorg-sub000/internal/domain"
)

// Протокол канала: входящие и исходящие кадры размечены полем type.

const (
	// входящие
	TypeSubscribe   = "subscribe"
	TypeUnsubscribe = "unsubscribe"

	// исходящие
	TypeConnected    = "connected"
	TypeSubscribed   = "subscribed"
	TypeUnsubscribed = "unsubscribed"
	TypeError        = "error"
)

const ChannelGuests = "guests"

// Входящий кадр; лишние поля игнорируем
type Inbound struct {
	Type    string `json:"type"`
	Channel string `json:"channel,omitempty"`
}

type Outbound struct {
	Type    string `json:"type"`
	Channel string `json:"channel,omitempty"`
	Message string `json:"message,omitempty"`
}

// Широковещательное событие о смене состояния гостя
type Event struct {
	Type      domain.GuestEvent `json:"type"`
	GuestID   string            `json:"guestId"`
	Timestamp string            `json:"timestamp"`
}

func NewEvent(t domain.GuestEvent, guestID string) Event {
	return Event{
		Type:      t,
		GuestID:   guestID,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

func (e Event) Marshal() []byte {
	b, _ := json.Marshal(e)
	return b
}

func (o Outbound) Marshal() []byte {
	b, _ := json.Marshal(o)
	return b
}
