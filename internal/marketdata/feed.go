package marketdata

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"

	"main/internal/model"
	"main/internal/model/enum"
	"main/internal/obs"
	"main/internal/refdata"
	"main/pkg/exception"
)

// FeedConnector reads "productId,price,quantity,BID|OFFER" lines and groups
// 2×depth consecutive lines into one full-book snapshot, alternating bid and
// offer accumulation, flushing one OrderBook per group. Malformed lines are
// logged and skipped without aborting the stream.
type FeedConnector struct {
	svc     *Service
	metrics *obs.Metrics
}

func NewFeedConnector(svc *Service, metrics *obs.Metrics) *FeedConnector {
	return &FeedConnector{svc: svc, metrics: metrics}
}

func (c *FeedConnector) Subscribe(r io.Reader) error {
	linesPerBook := c.svc.BookDepth() * 2

	var (
		bids, offers []Order
		productID    string
		accepted     int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		id, order, err := parseMarketDataLine(line)
		if err != nil {
			c.metrics.IncMalformed()
			logs.Errorf("skip market data line %q, err: %+v", line, err)
			continue
		}

		productID = id
		if order.Side == enum.PricingSideBid {
			bids = append(bids, order)
		} else {
			offers = append(offers, order)
		}

		accepted++
		if accepted < linesPerBook {
			continue
		}

		product, err := refdata.Bond(productID)
		if err != nil {
			c.metrics.IncMalformed()
			logs.Errorf("drop order book, err: %+v", err)
		} else {
			c.metrics.IncBookIn()
			c.svc.RecordBook(OrderBook{Product: product, BidStack: bids, OfferStack: offers})
		}
		bids, offers = nil, nil
		accepted = 0
	}
	return sc.Err()
}

func parseMarketDataLine(line string) (string, Order, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 4 {
		return "", Order{}, errors.Wrap(exception.ErrMalformedRecord, "market data line wants 4 fields")
	}
	price, err := model.ParsePrice(fields[1])
	if err != nil {
		return "", Order{}, err
	}
	quantity, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return "", Order{}, errors.Wrap(exception.ErrMalformedRecord, "quantity "+strconv.Quote(fields[2]))
	}
	side, err := enum.ParsePricingSide(fields[3])
	if err != nil {
		return "", Order{}, err
	}
	return fields[0], Order{Price: price, Quantity: quantity, Side: side}, nil
}
