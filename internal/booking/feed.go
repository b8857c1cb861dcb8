package booking

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

// FeedConnector reads "productId,tradeId,price,book,quantity,BUY|SELL" lines
// and books one trade per line. Malformed lines are logged and skipped.
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
		trade, err := parseTradeLine(line)
		if err != nil {
			c.metrics.IncMalformed()
			logs.Errorf("skip trade line %q, err: %+v", line, err)
			continue
		}
		c.metrics.IncTradeIn()
		c.svc.BookTrade(trade)
	}
	return sc.Err()
}

func parseTradeLine(line string) (Trade, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 6 {
		return Trade{}, errors.Wrap(exception.ErrMalformedRecord, "trade line wants 6 fields")
	}
	product, err := refdata.Bond(fields[0])
	if err != nil {
		return Trade{}, err
	}
	price, err := model.ParsePrice(fields[2])
	if err != nil {
		return Trade{}, err
	}
	quantity, err := strconv.ParseInt(fields[4], 10, 64)
	if err != nil {
		return Trade{}, errors.Wrap(exception.ErrMalformedRecord, "quantity "+strconv.Quote(fields[4]))
	}
	side, err := enum.ParseTradeSide(fields[5])
	if err != nil {
		return Trade{}, err
	}
	return Trade{
		Product:  product,
		TradeID:  fields[1],
		Price:    price,
		Book:     fields[3],
		Quantity: quantity,
		Side:     side,
	}, nil
}
