package realtime

import (
	"log"
	"sync"

	"github.com/setiawanwcksn/weddingorg-sub000/internal/domain"
)

// Registry — общая изменяемая карта владелец → множество живых соединений.
// Единственное место в сервисе, где нужна явная синхронизация.
// Инвариант: ключ с пустым множеством не живёт (сразу удаляется).
type Registry struct {
	log *log.Logger

	mu    sync.RWMutex
	conns map[string]map[Conn]struct{}
}

func NewRegistry(logger *log.Logger) *Registry {
	return &Registry{
		log:   logger,
		conns: make(map[string]map[Conn]struct{}),
	}
}

// Add регистрирует соединение под владельцем (создаёт ключ при первом)
func (r *Registry) Add(ownerID string, c Conn) {
	if ownerID == "" {
		ownerID = domain.AnonymousOwner
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	set, ok := r.conns[ownerID]
	if !ok {
		set = make(map[Conn]struct{})
		r.conns[ownerID] = set
	}
	set[c] = struct{}{}
	r.log.Printf("add owner=%s conns=%d", ownerID, len(set))
}

// Remove идемпотентно выкидывает соединение; пустой ключ удаляется
func (r *Registry) Remove(ownerID string, c Conn) {
	if ownerID == "" {
		ownerID = domain.AnonymousOwner
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.removeLocked(ownerID, c)
}

func (r *Registry) removeLocked(ownerID string, c Conn) {
	set, ok := r.conns[ownerID]
	if !ok {
		return
	}
	if _, ok := set[c]; !ok {
		return
	}
	delete(set, c)
	if len(set) == 0 {
		delete(r.conns, ownerID)
	}
	r.log.Printf("remove owner=%s conns=%d", ownerID, len(set))
}

// Count — количество живых соединений владельца
func (r *Registry) Count(ownerID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.conns[ownerID])
}

// HasOwner — есть ли ключ владельца в реестре
func (r *Registry) HasOwner(ownerID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.conns[ownerID]
	return ok
}

// snapshot копирует множество: слать по живой карте нельзя,
// чистка мёртвых соединений мутирует её прямо во время обхода.
func (r *Registry) snapshot(ownerID string) []Conn {
	r.mu.RLock()
	defer r.mu.RUnlock()
	set, ok := r.conns[ownerID]
	if !ok {
		return nil
	}
	out := make([]Conn, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	return out
}

// Broadcast шлёт payload всем соединениям владельца.
// Закрытые и отказавшие при записи соединения выбрасываются из реестра.
// Возвращает число успешных отправок (только для наблюдаемости).
func (r *Registry) Broadcast(ownerID string, payload []byte) int {
	if ownerID == "" {
		ownerID = domain.AnonymousOwner
	}
	snap := r.snapshot(ownerID)
	if len(snap) == 0 {
		return 0
	}

	sent := 0
	for _, c := range snap {
		if !c.IsOpen() {
			r.Remove(ownerID, c)
			continue
		}
		if err := c.Send(payload); err != nil {
			// отказ записи не глотаем молча — соединение вычищается
			r.log.Printf("broadcast send failed owner=%s: %v", ownerID, err)
			r.Remove(ownerID, c)
			continue
		}
		sent++
	}
	return sent
}

// CloseAll закрывает все соединения и опустошает реестр (останов сервера)
func (r *Registry) CloseAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for owner, set := range r.conns {
		for c := range set {
			_ = c.Close()
		}
		delete(r.conns, owner)
	}
	r.log.Println("all connections closed")
}
