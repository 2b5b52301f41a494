package realtime

import (
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"
)

// Conn — узкий интерфейс живого соединения; реестру не нужен весь *websocket.Conn.
type Conn interface {
	// Send пишет готовый JSON-кадр; ошибка — повод выкинуть соединение из реестра
	Send(payload []byte) error
	// IsOpen — транспорт ещё пригоден для записи
	IsOpen() bool
	Close() error
}

// wsConn — адаптер над gorilla/websocket.
// У gorilla один писатель на соединение, поэтому все записи под мьютексом.
type wsConn struct {
	raw    *websocket.Conn
	wmu    sync.Mutex
	closed atomic.Bool
}

func NewWSConn(raw *websocket.Conn) Conn {
	return &wsConn{raw: raw}
}

func (c *wsConn) Send(payload []byte) error {
	if c.closed.Load() {
		return websocket.ErrCloseSent
	}
	c.wmu.Lock()
	defer c.wmu.Unlock()
	if err := c.raw.WriteMessage(websocket.TextMessage, payload); err != nil {
		c.closed.Store(true)
		return err
	}
	return nil
}

func (c *wsConn) IsOpen() bool { return !c.closed.Load() }

func (c *wsConn) Close() error {
	c.closed.Store(true)
	return c.raw.Close()
}
