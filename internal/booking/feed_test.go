package booking

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/internal/model/enum"
	"main/internal/obs"
)

func TestSubscribeBooksTrades(t *testing.T) {
	svc := NewService()
	metrics := obs.NewMetrics()
	feed := NewFeedConnector(svc, metrics)

	input := strings.Join([]string{
		"BONDNO1,T1,99-00,TRSY1,1000000,BUY",
		"BONDNO2,T2,100-16+,TRSY2,2000000,SELL",
		"BONDNO1,T3,99-00,TRSY1,bad,BUY", // malformed quantity
		"BONDNO99,T4,99-00,TRSY1,1,BUY",  // unknown product
	}, "\n")

	require.NoError(t, feed.Subscribe(strings.NewReader(input)))

	snap := metrics.Snapshot()
	assert.Equal(t, uint64(2), snap.TradesIn)
	assert.Equal(t, uint64(2), snap.Malformed)

	trade, ok := svc.Get("T2")
	require.True(t, ok)
	assert.Equal(t, "BONDNO2", trade.Product.ID)
	assert.Equal(t, enum.TradeSideSell, trade.Side)
	assert.Equal(t, int64(2_000_000), trade.Quantity)
	assert.Equal(t, "TRSY2", trade.Book)
}
