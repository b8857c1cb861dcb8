package history

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/internal/bus"
)

type record struct {
	key    string
	fields []string
}

func (r record) Row() []string {
	return r.fields
}

func TestServicePersistsEveryDelivery(t *testing.T) {
	var out strings.Builder
	svc := NewService(func(r record) string { return r.key }, NewFileConnector(&out))

	svc.OnMessage(record{key: "k1", fields: []string{"a", "b"}})
	svc.OnMessage(record{key: "k1", fields: []string{"a", "c"}})

	assert.Equal(t, ",a,b,\n,a,c,\n", out.String())

	stored, ok := svc.Get("k1")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "c"}, stored.fields, "store keeps the latest only")
	assert.Equal(t, 1, svc.Len())
}

func TestListenerForwardsAdds(t *testing.T) {
	var out strings.Builder
	hist := NewService(func(r record) string { return r.key }, NewFileConnector(&out))

	upstream := bus.New(func(r record) string { return r.key })
	upstream.AddListener(NewListener(hist))

	upstream.OnMessage(record{key: "k1", fields: []string{"x"}})

	assert.Equal(t, ",x,\n", out.String())
	_, ok := hist.Get("k1")
	assert.True(t, ok)
}

type failingConnector struct{}

func (failingConnector) Persist([]string) error {
	return errors.New("store down")
}

func TestPersistFailureDoesNotStopTheStore(t *testing.T) {
	svc := NewService(func(r record) string { return r.key }, failingConnector{})

	svc.OnMessage(record{key: "k1", fields: []string{"a"}})

	_, ok := svc.Get("k1")
	assert.True(t, ok, "value stored even when persistence fails")
}

func TestMultiConnectorHitsEveryStore(t *testing.T) {
	var first, second strings.Builder
	m := MultiConnector{NewFileConnector(&first), NewFileConnector(&second)}

	require.NoError(t, m.Persist([]string{"a"}))
	assert.Equal(t, ",a,\n", first.String())
	assert.Equal(t, ",a,\n", second.String())

	m = MultiConnector{failingConnector{}, NewFileConnector(&first)}
	assert.Error(t, m.Persist([]string{"b"}))
	assert.Equal(t, ",a,\n,b,\n", first.String(), "later stores still run after a failure")
}
