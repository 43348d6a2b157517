package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tmc/langchaingo/llms"

	"frigosmart/internal/advisor"
	"frigosmart/internal/api"
	"frigosmart/internal/game"
	"frigosmart/internal/inventory"
	"frigosmart/internal/scanner"
	"frigosmart/internal/shopping"
	"frigosmart/internal/storage"
	"frigosmart/internal/tasks"
)

var (
	port        = flag.Int("port", 8080, "API server port")
	metricsPort = flag.Int("metrics-port", 9090, "Metrics server port")
	configFile  = flag.String("config", "configs/config.yaml", "Path to configuration file")
	dbPath      = flag.String("db", "", "Override the sqlite database path")
)

func main() {
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	config, err := loadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *dbPath != "" {
		config.Database.DSN = *dbPath
	}

	// Open the database and load the persisted state slices. Missing
	// slices fall back to seeds or defaults; the app always starts.
	db, err := storage.Open(config.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	slots := storage.NewSlots(db)

	items, err := storage.LoadInventory(slots)
	if err != nil {
		log.Fatalf("Failed to load inventory: %v", err)
	}
	shoppingItems, err := storage.LoadShopping(slots)
	if err != nil {
		log.Fatalf("Failed to load shopping list: %v", err)
	}
	statsSlot := storage.NewStatsSlot(slots)
	stats, err := statsSlot.Load()
	if err != nil {
		log.Fatalf("Failed to load game stats: %v", err)
	}
	taskBatch, err := storage.LoadTasks(slots)
	if err != nil {
		log.Fatalf("Failed to load tasks: %v", err)
	}

	// Initialize the assistant model. Without credentials the app still
	// runs; task generation degrades to the fixed fallback batch and
	// recipe endpoints report the model as unreachable.
	model, err := advisor.NewModel(config.Advisor)
	if err != nil {
		log.Printf("Assistant model unavailable: %v", err)
		model = offlineModel{}
	}
	adv := advisor.New(model)
	generator := tasks.NewLLMGenerator(model)

	board := tasks.NewBoard(taskBatch, generator, slots.Bind(storage.KeyTasks))
	engine := game.NewEngine(stats, board, statsSlot)
	inv := inventory.NewStore(items, slots.Bind(storage.KeyInventory))
	shop := shopping.NewStore(shoppingItems, slots.Bind(storage.KeyShopping))
	scan := scanner.New(scanner.SimulatedDevice{})

	// Make sure today's task batch exists before serving.
	if refreshed, err := board.RefreshIfStale(ctx, engine.Stats().Level); err != nil {
		log.Printf("Task refresh failed: %v", err)
	} else if refreshed {
		log.Println("Generated a fresh task batch for today")
	}

	apiServer := api.NewServer(inv, shop, engine, board, adv, scan, config.Server.JWTSecret)

	go startMetricsServer(*metricsPort)

	server := &http.Server{
		Addr:    fmt.Sprintf("127.0.0.1:%d", *port),
		Handler: apiServer.Router,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down servers...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("API server shutdown error: %v", err)
		}
		cancel()
	}()

	log.Printf("Starting API server on port %d", *port)
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("API server error: %v", err)
	}
}

// offlineModel stands in when no assistant model is configured. Every
// call fails, so the advisor serves its fallbacks and the task board its
// fixed batch.
type offlineModel struct{}

func (offlineModel) Call(context.Context, string, ...llms.CallOption) (string, error) {
	return "", fmt.Errorf("no assistant model configured")
}

func (offlineModel) GenerateContent(context.Context, []llms.MessageContent, ...llms.CallOption) (*llms.ContentResponse, error) {
	return nil, fmt.Errorf("no assistant model configured")
}

func startMetricsServer(port int) {
	metricsRouter := gin.Default()
	metricsRouter.GET("/metrics", gin.WrapH(promhttp.Handler()))

	metricsServer := &http.Server{
		Addr:    fmt.Sprintf("127.0.0.1:%d", port),
		Handler: metricsRouter,
	}

	log.Printf("Starting metrics server on port %d", port)
	if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
		log.Printf("Metrics server error: %v", err)
	}
}
