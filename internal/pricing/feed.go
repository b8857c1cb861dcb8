package pricing

import (
	"bufio"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"

	"main/internal/model"
	"main/internal/obs"
	"main/internal/refdata"
	"main/pkg/exception"
)

var two = decimal.NewFromInt(2)

// FeedConnector reads "productId,bidPrice,offerPrice" lines and publishes one
// Price per line. Malformed lines are logged and skipped; the stream continues.
type FeedConnector struct {
	svc     *Service
	metrics *obs.Metrics
}

func NewFeedConnector(svc *Service, metrics *obs.Metrics) *FeedConnector {
	return &FeedConnector{svc: svc, metrics: metrics}
}

func (c *FeedConnector) Subscribe(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		price, err := parsePriceLine(line)
		if err != nil {
			c.metrics.IncMalformed()
			logs.Errorf("skip price line %q, err: %+v", line, err)
			continue
		}
		c.metrics.IncPriceIn()
		c.svc.OnMessage(price)
	}
	return sc.Err()
}

func parsePriceLine(line string) (Price, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 3 {
		return Price{}, errors.Wrap(exception.ErrMalformedRecord, "price line wants 3 fields")
	}
	product, err := refdata.Bond(fields[0])
	if err != nil {
		return Price{}, err
	}
	bid, err := model.ParsePrice(fields[1])
	if err != nil {
		return Price{}, err
	}
	offer, err := model.ParsePrice(fields[2])
	if err != nil {
		return Price{}, err
	}
	return Price{
		Product:        product,
		Mid:            bid.Add(offer).Div(two),
		BidOfferSpread: offer.Sub(bid),
	}, nil
}
