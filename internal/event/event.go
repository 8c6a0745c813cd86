// internal/event/event.go
package event

import "lane-defense/internal/types"

// EventType различает события боевой симуляции.
type EventType string

// HostilePayload — данные HostileKilled/HostileLeaked. Слушатель получает
// копию значений, а не указатель на врага: к моменту обработки арена могла
// уже вычистить запись.
type HostilePayload struct {
	ID     types.EntityID
	DefID  int
	Reward int
}

// Event — событие с опциональными данными. Для HostileKilled/HostileLeaked
// Data несёт HostilePayload, для башенных событий — types.EntityID,
// для WaveEnded — номер волны.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener — подписчик на события.
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher рассылает события подписчикам синхронно, в порядке подписки.
// Диспетчер живёт внутри игрового тика и не потокобезопасен.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[EventType][]Listener)}
}

// Subscribe — подписка на событие.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Dispatch — отправка события всем подписчикам данного типа.
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}
