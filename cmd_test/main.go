// Command cmd_test generates deterministic input files for a trader run:
// prices, trades, market data books and inquiries for every known product.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"main/internal/model"
	"main/internal/refdata"
)

var (
	tick     = decimal.New(1, 0).Div(decimal.NewFromInt(model.TicksPerPoint))
	floor    = decimal.NewFromInt(99)
	ceiling  = decimal.NewFromInt(101)
	parPrice = decimal.NewFromInt(100)
)

func main() {
	if err := run(); err != nil {
		log.Printf("cmd_test: %v", err)
		os.Exit(1)
	}
}

func run() error {
	outDir := flag.String("out", ".", "output directory")
	prices := flag.Int("prices", 60, "price updates per product")
	books := flag.Int("books", 20, "order book updates per product")
	depth := flag.Int("depth", 10, "price levels per book side")
	trades := flag.Int("trades", 10, "trades per product")
	inquiries := flag.Int("inquiries", 10, "inquiries per product")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return err
	}

	for _, gen := range []struct {
		name  string
		write func(*bufio.Writer) error
	}{
		{"prices.txt", func(w *bufio.Writer) error { return writePrices(w, *prices) }},
		{"trades.txt", func(w *bufio.Writer) error { return writeTrades(w, *trades) }},
		{"marketdata.txt", func(w *bufio.Writer) error { return writeBooks(w, *books, *depth) }},
		{"inquiries.txt", func(w *bufio.Writer) error { return writeInquiries(w, *inquiries) }},
	} {
		if err := writeFile(filepath.Join(*outDir, gen.name), gen.write); err != nil {
			return fmt.Errorf("generate %s: %w", gen.name, err)
		}
	}
	return nil
}

func writeFile(path string, write func(*bufio.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := write(w); err != nil {
		return err
	}
	return w.Flush()
}

// writePrices oscillates the mid between 99 and 101 one tick at a time while
// the spread alternates between 1/128 and 1/64.
func writePrices(w *bufio.Writer, count int) error {
	spreads := []decimal.Decimal{tick.Mul(decimal.NewFromInt(2)), tick.Mul(decimal.NewFromInt(4))}

	for _, productID := range refdata.ProductIDs() {
		mid := floor
		up := true
		for i := 0; i < count; i++ {
			half := spreads[i%2].Div(decimal.NewFromInt(2))
			bid, err := model.FormatPrice(mid.Sub(half))
			if err != nil {
				return err
			}
			offer, err := model.FormatPrice(mid.Add(half))
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "%s,%s,%s\n", productID, bid, offer); err != nil {
				return err
			}

			if up {
				mid = mid.Add(tick)
				if mid.GreaterThanOrEqual(ceiling) {
					up = false
				}
			} else {
				mid = mid.Sub(tick)
				if mid.LessThanOrEqual(floor) {
					up = true
				}
			}
		}
	}
	return nil
}

// writeBooks emits full-depth snapshots whose top-of-book spread cycles from
// 1/128 out to 1/32 and back, so some books cross and some stay too wide.
func writeBooks(w *bufio.Writer, count, depth int) error {
	// top-of-book half spreads in ticks: 1,2,4,2 gives spreads 1/128..1/32
	halves := []int64{1, 2, 4, 2}

	for _, productID := range refdata.ProductIDs() {
		for i := 0; i < count; i++ {
			half := tick.Mul(decimal.NewFromInt(halves[i%len(halves)]))
			for level := 0; level < depth; level++ {
				away := tick.Mul(decimal.NewFromInt(int64(level)))
				qty := int64(level+1) * 1_000_000
				bid, err := model.FormatPrice(parPrice.Sub(half).Sub(away))
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(w, "%s,%s,%d,BID\n", productID, bid, qty); err != nil {
					return err
				}
			}
			for level := 0; level < depth; level++ {
				away := tick.Mul(decimal.NewFromInt(int64(level)))
				qty := int64(level+1) * 1_000_000
				offer, err := model.FormatPrice(parPrice.Add(half).Add(away))
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(w, "%s,%s,%d,OFFER\n", productID, offer, qty); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// writeTrades alternates buys and sells across the three trading books with
// quantities stepping 1M through 5M.
func writeTrades(w *bufio.Writer, count int) error {
	books := []string{"TRSY1", "TRSY2", "TRSY3"}
	seq := 0

	for _, productID := range refdata.ProductIDs() {
		for i := 0; i < count; i++ {
			seq++
			side := "BUY"
			price := parPrice
			if i%2 == 1 {
				side = "SELL"
				price = floor
			}
			text, err := model.FormatPrice(price)
			if err != nil {
				return err
			}
			qty := int64(i%5+1) * 1_000_000
			if _, err := fmt.Fprintf(w, "%s,TRADE%06d,%s,%s,%d,%s\n",
				productID, seq, text, books[i%3], qty, side); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeInquiries emits RECEIVED inquiries alternating between buys and sells.
func writeInquiries(w *bufio.Writer, count int) error {
	seq := 0

	for _, productID := range refdata.ProductIDs() {
		for i := 0; i < count; i++ {
			seq++
			side := "BUY"
			if i%2 == 1 {
				side = "SELL"
			}
			text, err := model.FormatPrice(parPrice)
			if err != nil {
				return err
			}
			qty := int64(i%5+1) * 1_000_000
			if _, err := fmt.Fprintf(w, "INQ%06d,%s,%s,%d,%s,RECEIVED\n",
				seq, productID, side, qty, text); err != nil {
				return err
			}
		}
	}
	return nil
}
