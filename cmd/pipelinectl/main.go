// pipelinectl enqueues pipeline jobs and inspects their status.
//
//	pipelinectl [-config config.yaml] enqueue <job-type> [json-payload]
//	pipelinectl [-config config.yaml] status <job-id>
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-redis/redis/v8"

	"editorial_pipeline/internal/config"
	"editorial_pipeline/internal/queue"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	jobQueue := queue.NewQueue(redisClient, cfg.Worker.ResultTTL, logger)

	switch args[0] {
	case "enqueue":
		payload := json.RawMessage("{}")
		if len(args) > 2 {
			if !json.Valid([]byte(args[2])) {
				fmt.Fprintf(os.Stderr, "payload is not valid JSON: %s\n", args[2])
				os.Exit(2)
			}
			payload = json.RawMessage(args[2])
		}
		id, err := jobQueue.Enqueue(ctx, args[1], payload)
		if err != nil {
			fmt.Fprintf(os.Stderr, "enqueue: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(id)

	case "status":
		status, err := jobQueue.Status(ctx, args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "status: %v\n", err)
			os.Exit(1)
		}
		if status.Status == "" {
			fmt.Fprintln(os.Stderr, "job not found or expired")
			os.Exit(1)
		}
		fmt.Printf("type:     %s\n", status.Type)
		fmt.Printf("status:   %s\n", status.Status)
		fmt.Printf("progress: %.0f%%\n", status.Progress)
		if status.Message != "" {
			fmt.Printf("message:  %s\n", status.Message)
		}
		if status.Error != "" {
			fmt.Printf("error:    %s\n", status.Error)
		}

	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: pipelinectl [-config file] enqueue <job-type> [json-payload]")
	fmt.Fprintln(os.Stderr, "       pipelinectl [-config file] status <job-id>")
}
