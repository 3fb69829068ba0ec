package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"antifraud-system/internal/history"
	"antifraud-system/internal/replay"
)

func main() {
	csvPath := flag.String("csv", "./data/transactional-sample.csv", "путь к CSV с транзакциями")
	baseURL := flag.String("url", "http://127.0.0.1:8080", "адрес antifraud сервиса")
	outDir := flag.String("out", "./data/replay", "директория для отчетов")
	pauseMs := flag.Int("pause", 200, "пауза между запросами, мс")
	flag.Parse()

	store, err := history.Load(*csvPath)
	if err != nil {
		log.Fatalf("Failed to load transactions: %v", err)
	}
	transactions := store.All()
	if len(transactions) == 0 {
		log.Fatalf("No transactions to replay in %s", *csvPath)
	}
	log.Printf("Replaying %d transactions against %s", len(transactions), *baseURL)

	// Прерывание по Ctrl+C: уже собранные результаты все равно записываются
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := replay.NewClient(*baseURL, time.Duration(*pauseMs)*time.Millisecond)
	outcomes, summary, err := client.Run(ctx, transactions)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("Replay interrupted: %v", err)
	}

	if err := replay.WriteReports(outcomes, *outDir); err != nil {
		log.Fatalf("Failed to write reports: %v", err)
	}

	log.Printf("Replay finished: total=%d succeeded=%d denied=%d failed=%d",
		summary.Total, summary.Succeeded, summary.Denied, summary.Failed)
	log.Printf("Reports saved to %s", *outDir)

	if summary.Failed > 0 {
		os.Exit(1)
	}
}
