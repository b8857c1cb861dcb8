package inquiry

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

// FeedConnector reads "inquiryId,productId,side,quantity,price,state" lines
// and delivers each inquiry to the service. Malformed lines are logged and
// skipped; the stream continues.
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
		inq, err := parseInquiryLine(line)
		if err != nil {
			c.metrics.IncMalformed()
			logs.Errorf("skip inquiry line %q, err: %+v", line, err)
			continue
		}
		c.metrics.IncInquiryIn()
		c.svc.OnMessage(inq)
	}
	return sc.Err()
}

func parseInquiryLine(line string) (Inquiry, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 6 {
		return Inquiry{}, errors.Wrap(exception.ErrMalformedRecord, "inquiry line wants 6 fields")
	}
	product, err := refdata.Bond(fields[1])
	if err != nil {
		return Inquiry{}, err
	}
	side, err := enum.ParseTradeSide(fields[2])
	if err != nil {
		return Inquiry{}, err
	}
	quantity, err := strconv.ParseInt(fields[3], 10, 64)
	if err != nil {
		return Inquiry{}, errors.Wrap(exception.ErrMalformedRecord, "bad inquiry quantity "+fields[3])
	}
	price, err := model.ParsePrice(fields[4])
	if err != nil {
		return Inquiry{}, err
	}
	state, err := enum.ParseInquiryState(fields[5])
	if err != nil {
		return Inquiry{}, err
	}
	return Inquiry{
		InquiryID: fields[0],
		Product:   product,
		Side:      side,
		Quantity:  quantity,
		Price:     price,
		State:     state,
	}, nil
}
