package marketdata

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/internal/model"
	"main/internal/model/enum"
	"main/pkg/exception"
)

func price(s string) decimal.Decimal {
	d, err := model.ParsePrice(s)
	if err != nil {
		panic(err)
	}
	return d
}

func bid(p string, qty int64) Order {
	return Order{Price: price(p), Quantity: qty, Side: enum.PricingSideBid}
}

func offer(p string, qty int64) Order {
	return Order{Price: price(p), Quantity: qty, Side: enum.PricingSideOffer}
}

func testBook() OrderBook {
	return OrderBook{
		Product: model.Bond{ID: "BONDNO1"},
		BidStack: []Order{
			bid("99-00", 10_000_000),
			bid("99-002", 20_000_000), // best bid, not first
			bid("99-00", 30_000_000),
		},
		OfferStack: []Order{
			offer("99-01", 10_000_000),
			offer("99-004", 20_000_000), // best offer
		},
	}
}

func TestBestBidOffer(t *testing.T) {
	best, err := testBook().BestBidOffer()
	require.NoError(t, err)
	assert.True(t, best.Bid.Price.Equal(price("99-002")))
	assert.Equal(t, int64(20_000_000), best.Bid.Quantity)
	assert.True(t, best.Offer.Price.Equal(price("99-004")))
}

func TestBestBidOfferTieKeepsFirstSeen(t *testing.T) {
	book := OrderBook{
		Product:    model.Bond{ID: "BONDNO1"},
		BidStack:   []Order{bid("99-00", 1), bid("99-00", 2)},
		OfferStack: []Order{offer("99-002", 3), offer("99-002", 4)},
	}
	best, err := book.BestBidOffer()
	require.NoError(t, err)
	assert.Equal(t, int64(1), best.Bid.Quantity)
	assert.Equal(t, int64(3), best.Offer.Quantity)
}

func TestBestBidOfferEmptySide(t *testing.T) {
	book := testBook()
	book.OfferStack = nil
	_, err := book.BestBidOffer()
	assert.ErrorIs(t, err, exception.ErrEmptyBookSide)

	book = testBook()
	book.BidStack = nil
	_, err = book.BestBidOffer()
	assert.ErrorIs(t, err, exception.ErrEmptyBookSide)
}

func TestServiceBestBidOffer(t *testing.T) {
	svc := NewService(DefaultBookDepth)
	svc.RecordBook(testBook())

	best, err := svc.BestBidOffer("BONDNO1")
	require.NoError(t, err)
	assert.True(t, best.Bid.Price.Equal(price("99-002")))

	_, err = svc.BestBidOffer("BONDNO9")
	assert.ErrorIs(t, err, exception.ErrUnknownKey)
}

func TestAggregateDepth(t *testing.T) {
	svc := NewService(DefaultBookDepth)
	svc.RecordBook(testBook())

	agg, err := svc.AggregateDepth("BONDNO1")
	require.NoError(t, err)

	// the two 99-00 bids collapse into one level, first-seen order kept
	require.Len(t, agg.BidStack, 2)
	assert.True(t, agg.BidStack[0].Price.Equal(price("99-00")))
	assert.Equal(t, int64(40_000_000), agg.BidStack[0].Quantity)
	assert.Equal(t, enum.PricingSideBid, agg.BidStack[0].Side)
	assert.Equal(t, int64(20_000_000), agg.BidStack[1].Quantity)
	require.Len(t, agg.OfferStack, 2)

	// aggregating an already aggregated book changes nothing
	again, err := svc.AggregateDepth("BONDNO1")
	require.NoError(t, err)
	assert.Equal(t, agg, again)

	// the aggregated book replaces the stored one
	stored, ok := svc.Get("BONDNO1")
	require.True(t, ok)
	assert.Equal(t, agg, stored)
}

func TestAggregateDepthUnknownProduct(t *testing.T) {
	svc := NewService(DefaultBookDepth)
	_, err := svc.AggregateDepth("BONDNO1")
	assert.ErrorIs(t, err, exception.ErrUnknownKey)
}
