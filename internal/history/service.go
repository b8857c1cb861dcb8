// Package history records the latest state of every pipeline stage and
// persists each delivery through a connector.
package history

import (
	"github.com/yanun0323/logs"

	"main/internal/bus"
)

// Rower renders a record as historical output fields.
type Rower interface {
	Row() []string
}

// Connector persists one rendered record.
type Connector interface {
	Persist(row []string) error
}

// Service keeps the latest record per key and hands every delivery to its
// connector. Persistence failures are logged; the pipeline keeps flowing.
type Service[V Rower] struct {
	*bus.Service[V]
	conn Connector
}

func NewService[V Rower](keyOf func(V) string, conn Connector) *Service[V] {
	return &Service[V]{
		Service: bus.New(keyOf),
		conn:    conn,
	}
}

func (s *Service[V]) OnMessage(v V) {
	s.Service.OnMessage(v)
	if s.conn == nil {
		return
	}
	if err := s.conn.Persist(v.Row()); err != nil {
		logs.Errorf("persist historical record, err: %+v", err)
	}
}

// Listener forwards upstream adds into the historical service.
type Listener[V Rower] struct {
	bus.NopListener[V]
	svc *Service[V]
}

func NewListener[V Rower](svc *Service[V]) *Listener[V] {
	return &Listener[V]{svc: svc}
}

func (l *Listener[V]) ProcessAdd(v V) {
	l.svc.OnMessage(v)
}

// MultiConnector fans one record out to several connectors.
type MultiConnector []Connector

func (m MultiConnector) Persist(row []string) error {
	var firstErr error
	for _, c := range m {
		if err := c.Persist(row); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
