package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"TickerScope/internal/analyzer"
	"TickerScope/internal/cache"
	"TickerScope/internal/collector"
	"TickerScope/internal/config"
	"TickerScope/internal/model"
	"TickerScope/internal/provider"
	"TickerScope/internal/recorder"
	"TickerScope/internal/report"
	"TickerScope/internal/scheduler"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.SetOutput(os.Stderr)

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}

	var (
		configFlag = flag.String("config", cfgPath, "path to YAML config file")
		periodFlag = flag.String("period", "", "history period (1d 5d 1mo 3mo 6mo 1y 2y 5y 10y ytd max)")
		formatFlag = flag.String("format", "json", "output format: json or text")
		watchFlag  = flag.Bool("watch", false, "run the configured watch list on a cron schedule")
	)
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	var prov provider.Provider
	if cfg.Provider.Source == "mock" {
		prov = &provider.MockProvider{Price: 100}
	} else {
		prov = provider.NewYahooProvider(cfg.Provider.Proxy)
	}

	store := cache.NewStore(cfg.Cache.Dir)
	col := collector.New(prov, store)
	an := analyzer.New(col, cfg.Analysis.SRWindow, cfg.Analysis.SRLevels)

	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	period := cfg.Analysis.DefaultPeriod
	if *periodFlag != "" {
		period = *periodFlag
	}

	if *watchFlag {
		runWatch(cfg, an, rec, period)
		return
	}

	if flag.NArg() < 1 {
		emit(model.ErrorResult("usage: tickerscope [flags] SYMBOL"), *formatFlag)
		os.Exit(1)
	}
	symbol := flag.Arg(0)

	result := an.Analyze(symbol, period)
	if result.Err == "" {
		if err := rec.Record(result.Snapshot); err != nil {
			log.Printf("[ERROR] record snapshot: %v", err)
		}
	}
	emit(result, *formatFlag)
}

func runWatch(cfg *config.Config, an *analyzer.Analyzer, rec recorder.Recorder, period string) {
	if len(cfg.Watch.Symbols) == 0 {
		log.Fatal("[FATAL] watch mode needs watch.symbols in config")
	}

	sched := scheduler.New(an, rec, cfg.Watch.Symbols, period)
	if err := sched.Register(cfg.Watch.Cron); err != nil {
		log.Fatalf("[FATAL] register watch task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing watch task now")
		go sched.RunNow()
	}

	log.Println("[INFO] TickerScope watching. Press Ctrl+C to stop.")
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("[INFO] shutdown signal received, stopping...")
}

func emit(result *model.AnalysisResult, format string) {
	if format == "text" {
		fmt.Print(report.FormatResult(result))
		return
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		// MarshalIndent on these types cannot realistically fail; keep the
		// single-shape contract anyway.
		fmt.Printf("{\"error\": %q}\n", err.Error())
		return
	}
	fmt.Println(string(data))
}
