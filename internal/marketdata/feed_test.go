package marketdata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/internal/obs"
)

func TestSubscribeGroupsLinesIntoBooks(t *testing.T) {
	svc := NewService(2)
	metrics := obs.NewMetrics()
	feed := NewFeedConnector(svc, metrics)

	input := strings.Join([]string{
		// book 1: 2 bids + 2 offers
		"BONDNO1,99-00,10000000,BID",
		"BONDNO1,98-312,20000000,BID",
		"BONDNO1,99-002,10000000,OFFER",
		"BONDNO1,99-004,20000000,OFFER",
		// book 2, second product
		"BONDNO2,100-00,10000000,BID",
		"BONDNO2,99-31+,20000000,BID",
		"BONDNO2,100-002,10000000,OFFER",
		"BONDNO2,100-004,20000000,OFFER",
	}, "\n")

	require.NoError(t, feed.Subscribe(strings.NewReader(input)))
	assert.Equal(t, uint64(2), metrics.Snapshot().BooksIn)

	best, err := svc.BestBidOffer("BONDNO1")
	require.NoError(t, err)
	assert.True(t, best.Bid.Price.Equal(price("99-00")))
	assert.True(t, best.Offer.Price.Equal(price("99-002")))
	assert.Equal(t, int64(10_000_000), best.Offer.Quantity)

	best, err = svc.BestBidOffer("BONDNO2")
	require.NoError(t, err)
	assert.True(t, best.Bid.Price.Equal(price("100-00")))
}

func TestSubscribeSkipsMalformedWithoutBreakingGroups(t *testing.T) {
	svc := NewService(2)
	metrics := obs.NewMetrics()
	feed := NewFeedConnector(svc, metrics)

	input := strings.Join([]string{
		"BONDNO1,99-00,10000000,BID",
		"BONDNO1,garbage,10000000,BID", // dropped, does not count toward the group
		"BONDNO1,98-312,20000000,BID",
		"BONDNO1,99-002,10000000,OFFER",
		"BONDNO1,99-004,20000000,OFFER",
	}, "\n")

	require.NoError(t, feed.Subscribe(strings.NewReader(input)))

	snap := metrics.Snapshot()
	assert.Equal(t, uint64(1), snap.BooksIn)
	assert.Equal(t, uint64(1), snap.Malformed)

	book, ok := svc.Get("BONDNO1")
	require.True(t, ok)
	assert.Len(t, book.BidStack, 2)
	assert.Len(t, book.OfferStack, 2)
}

func TestSubscribeDropsBookForUnknownProduct(t *testing.T) {
	svc := NewService(1)
	metrics := obs.NewMetrics()
	feed := NewFeedConnector(svc, metrics)

	input := strings.Join([]string{
		"BONDNO99,99-00,10000000,BID",
		"BONDNO99,99-002,10000000,OFFER",
	}, "\n")

	require.NoError(t, feed.Subscribe(strings.NewReader(input)))
	assert.Equal(t, uint64(0), metrics.Snapshot().BooksIn)
	assert.Equal(t, 0, svc.Len())
}
