package model

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/yanun0323/errors"

	"main/pkg/exception"
)

// Treasury prices quote in 32nds of a point with a trailing eighth-of-a-32nd
// digit, where '+' stands for four eighths (half a 32nd). "100-162" reads
// 100 + 16/32 + 2/256. The finest representable increment is 1/256 of a point.
const TicksPerPoint = 256

var ticksPerPoint = decimal.NewFromInt(TicksPerPoint)

// ParsePrice converts bond notation such as "100-16+" or "99-312" into a
// decimal price. A bare two-digit fraction ("100-16") means zero eighths.
func ParsePrice(s string) (decimal.Decimal, error) {
	dash := strings.IndexByte(s, '-')
	if dash <= 0 {
		return decimal.Decimal{}, errors.Wrap(exception.ErrMalformedRecord, "price "+strconv.Quote(s))
	}

	whole, err := strconv.ParseInt(s[:dash], 10, 64)
	if err != nil || whole < 0 {
		return decimal.Decimal{}, errors.Wrap(exception.ErrMalformedRecord, "price "+strconv.Quote(s))
	}

	frac := s[dash+1:]
	var eighths int64
	switch len(frac) {
	case 2:
		eighths = 0
	case 3:
		switch c := frac[2]; {
		case c == '+':
			eighths = 4
		case c >= '0' && c <= '7':
			eighths = int64(c - '0')
		default:
			return decimal.Decimal{}, errors.Wrap(exception.ErrMalformedRecord, "price "+strconv.Quote(s))
		}
	default:
		return decimal.Decimal{}, errors.Wrap(exception.ErrMalformedRecord, "price "+strconv.Quote(s))
	}

	thirtySeconds, err := strconv.ParseInt(frac[:2], 10, 64)
	if err != nil || thirtySeconds > 31 {
		return decimal.Decimal{}, errors.Wrap(exception.ErrMalformedRecord, "price "+strconv.Quote(s))
	}

	ticks := whole*TicksPerPoint + thirtySeconds*8 + eighths
	return decimal.New(ticks, 0).Div(ticksPerPoint), nil
}

// FormatPrice renders a decimal price in bond notation. The price must be a
// non-negative multiple of 1/256; anything finer has no textual form.
func FormatPrice(d decimal.Decimal) (string, error) {
	ticksDec := d.Mul(ticksPerPoint)
	if !ticksDec.IsInteger() || ticksDec.IsNegative() {
		return "", errors.Wrap(exception.ErrMalformedRecord, "price "+d.String()+" is not a multiple of 1/256")
	}

	ticks := ticksDec.IntPart()
	whole := ticks / TicksPerPoint
	rem := ticks % TicksPerPoint
	thirtySeconds := rem / 8
	eighths := rem % 8

	var b strings.Builder
	b.WriteString(strconv.FormatInt(whole, 10))
	b.WriteByte('-')
	if thirtySeconds < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatInt(thirtySeconds, 10))
	switch eighths {
	case 0:
		// canonical form omits a zero eighths digit
	case 4:
		b.WriteByte('+')
	default:
		b.WriteString(strconv.FormatInt(eighths, 10))
	}
	return b.String(), nil
}

// PriceText renders a price in bond notation, falling back to the plain
// decimal form for values off the 1/256 grid. Used by historical sinks that
// must never fail on formatting.
func PriceText(d decimal.Decimal) string {
	s, err := FormatPrice(d)
	if err != nil {
		return d.String()
	}
	return s
}
