package main

import (
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"

	pyroscope "github.com/grafana/pyroscope-go"
	"github.com/yanun0323/logs"

	"main/internal/booking"
	"main/internal/execution"
	"main/internal/gui"
	"main/internal/history"
	"main/internal/inquiry"
	"main/internal/marketdata"
	"main/internal/model/enum"
	"main/internal/obs"
	"main/internal/ops"
	"main/internal/position"
	"main/internal/pricing"
	"main/internal/risk"
	"main/internal/streaming"
	"main/pkg/conn"
)

func main() {
	configPath := flag.String("config", "config.json", "Path to JSON config")
	pyroscopeAddr := flag.String("pyroscope", "", "Pyroscope server address (empty=disabled)")
	flag.Parse()

	cfg, err := ops.Load(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if *pyroscopeAddr != "" {
		profiler, err := pyroscope.Start(pyroscope.Config{
			ApplicationName: "trader",
			ServerAddress:   *pyroscopeAddr,
			ProfileTypes: []pyroscope.ProfileType{
				pyroscope.ProfileCPU,
				pyroscope.ProfileAllocSpace,
				pyroscope.ProfileInuseSpace,
			},
		})
		if err != nil {
			log.Fatalf("pyroscope start failed: %v", err)
		}
		defer profiler.Stop()
	}

	if err := run(cfg); err != nil {
		log.Fatalf("trader failed: %v", err)
	}
}

func run(cfg ops.Loaded) error {
	metrics := obs.NewMetrics()

	files, err := openOutputs(cfg.OutputDir)
	if err != nil {
		return err
	}
	defer files.Close()

	var pg *conn.Client
	if cfg.Postgres != nil {
		pg, err = conn.New(*cfg.Postgres)
		if err != nil {
			return err
		}
		defer pg.Close()
	}

	// pricing -> algo streaming -> streaming -> history, plus the GUI mirror
	pricingSvc := pricing.NewService()
	algoStreamSvc := streaming.NewAlgoService()
	streamingSvc := streaming.NewService()
	streamHist, err := newSink(files.streaming, pg, "streaming",
		func(s streaming.PriceStream) string { return s.Product.ID })
	if err != nil {
		return err
	}
	guiSvc := gui.NewService(files.gui, cfg.GUIThrottleMS, cfg.GUIMaxUpdates, metrics)

	pricingSvc.AddListener(streaming.NewPriceListener(algoStreamSvc))
	pricingSvc.AddListener(guiSvc)
	algoStreamSvc.AddListener(streaming.NewAlgoListener(streamingSvc))
	streamingSvc.AddListener(history.NewListener(streamHist))
	streamingSvc.AddListener(obs.NewFanoutCounter[streaming.PriceStream](metrics.IncStream))

	// market data -> algo execution -> execution -> history
	mdSvc := marketdata.NewService(cfg.BookDepth)
	algoExecSvc := execution.NewAlgoService(cfg.AlgoVenue)
	execSvc := execution.NewService(enum.MarketCME)
	execHist, err := newSink(files.executions, pg, "executions",
		func(r execution.Report) string { return r.Order.Product.ID })
	if err != nil {
		return err
	}

	mdSvc.AddListener(execution.NewBookListener(algoExecSvc))
	algoExecSvc.AddListener(execution.NewAlgoListener(execSvc))
	algoExecSvc.AddListener(obs.NewFanoutCounter[execution.AlgoOrder](metrics.IncAlgoOrder))
	execSvc.AddListener(history.NewListener(execHist))
	execSvc.AddListener(obs.NewFanoutCounter[execution.Report](metrics.IncExecution))

	// execution -> booking -> position -> risk, each with a historical sink
	bookingSvc := booking.NewService()
	positionSvc := position.NewService()
	riskSvc := risk.NewService()
	posHist, err := newSink(files.positions, pg, "positions",
		func(p position.Position) string { return p.Product.ID })
	if err != nil {
		return err
	}
	riskHist, err := newSink(files.risk, pg, "risk",
		func(p risk.PV01) string { return p.Product.ID })
	if err != nil {
		return err
	}

	execSvc.AddListener(booking.NewExecutionListener(bookingSvc))
	bookingSvc.AddListener(position.NewTradeListener(positionSvc))
	positionSvc.AddListener(risk.NewPositionListener(riskSvc))
	positionSvc.AddListener(history.NewListener(posHist))
	positionSvc.AddListener(obs.NewFanoutCounter[position.Position](metrics.IncPosition))
	riskSvc.AddListener(history.NewListener(riskHist))
	riskSvc.AddListener(obs.NewFanoutCounter[risk.PV01](metrics.IncRiskUpdate))

	// inquiries quote round-trip -> history
	inqSvc := inquiry.NewService()
	inqSvc.SetQuoter(inquiry.NewQuoteConnector(inqSvc))
	inqHist, err := newSink(files.inquiries, pg, "allinquiries",
		func(i inquiry.Inquiry) string { return i.InquiryID })
	if err != nil {
		return err
	}
	inqSvc.AddListener(history.NewListener(inqHist))
	inqSvc.AddListener(obs.NewFanoutCounter[inquiry.Inquiry](metrics.IncInquiryDone))

	// drive the pipeline, one input file at a time
	if err := subscribeFile(cfg.Inputs.Prices, pricing.NewFeedConnector(pricingSvc, metrics)); err != nil {
		return err
	}
	if err := subscribeFile(cfg.Inputs.Trades, booking.NewFeedConnector(bookingSvc, metrics)); err != nil {
		return err
	}
	if err := subscribeFile(cfg.Inputs.MarketData, marketdata.NewFeedConnector(mdSvc, metrics)); err != nil {
		return err
	}
	if err := subscribeFile(cfg.Inputs.Inquiries, inquiry.NewFeedConnector(inqSvc, metrics)); err != nil {
		return err
	}

	snap := metrics.Snapshot()
	logs.Infof("pipeline drained: prices=%d books=%d trades=%d inquiries=%d malformed=%d",
		snap.PricesIn, snap.BooksIn, snap.TradesIn, snap.InquiriesIn, snap.Malformed)
	logs.Infof("fanout: algoOrders=%d executions=%d streams=%d positions=%d risk=%d gui=%d inquiriesDone=%d",
		snap.AlgoOrders, snap.Executions, snap.Streams, snap.Positions, snap.RiskUpdates, snap.GUIWrites, snap.InquiriesDone)
	return nil
}

type subscriber interface {
	Subscribe(io.Reader) error
}

func subscribeFile(path string, s subscriber) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return s.Subscribe(f)
}

// newSink builds a historical service backed by a file connector, plus the
// Postgres store when configured.
func newSink[V history.Rower](f *os.File, pg *conn.Client, kind string, keyOf func(V) string) (*history.Service[V], error) {
	var c history.Connector = history.NewFileConnector(f)
	if pg != nil {
		pgc, err := history.NewPGConnector(pg, kind)
		if err != nil {
			return nil, err
		}
		c = history.MultiConnector{c, pgc}
	}
	return history.NewService(keyOf, c), nil
}

type outputFiles struct {
	positions  *os.File
	risk       *os.File
	executions *os.File
	streaming  *os.File
	inquiries  *os.File
	gui        *os.File
}

func openOutputs(dir string) (*outputFiles, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	var o outputFiles
	for _, target := range []struct {
		f    **os.File
		name string
	}{
		{&o.positions, "positions.txt"},
		{&o.risk, "risk.txt"},
		{&o.executions, "executions.txt"},
		{&o.streaming, "streaming.txt"},
		{&o.inquiries, "allinquiries.txt"},
		{&o.gui, "gui.txt"},
	} {
		f, err := os.Create(filepath.Join(dir, target.name))
		if err != nil {
			o.Close()
			return nil, err
		}
		*target.f = f
	}
	return &o, nil
}

func (o *outputFiles) Close() {
	for _, f := range []*os.File{o.positions, o.risk, o.executions, o.streaming, o.inquiries, o.gui} {
		if f != nil {
			f.Close()
		}
	}
}
