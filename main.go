package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"propSettler/models"
	"propSettler/repo"
	"propSettler/scheduler"
	"propSettler/server"
	"propSettler/services"
	"propSettler/services/cacheService"
	"propSettler/services/gameService"
	"propSettler/services/parlayService"
	"propSettler/services/settlementService"
	"propSettler/services/statService"
)

var db *gorm.DB

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	connString := os.Getenv("MYSQL_URL")
	if connString == "" {
		log.Fatalf("MYSQL_URL not set in environment variables")
	}

	var err error
	db, err = gorm.Open(mysql.Open(connString+"?charset=utf8mb4&parseTime=True&loc=Local"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Game{},
		&models.Prediction{},
		&models.Parlay{},
		&models.ParlayLeg{},
		&models.ErrorLog{},
		&models.Migration{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func main() {
	slogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(slogger)

	pageSize := envInt("SWEEP_PAGE_SIZE", 25)
	budget := time.Duration(envInt("SWEEP_BUDGET_MS", 45000)) * time.Millisecond

	var cache *cacheService.PayloadCache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: addr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			slogger.Warn("redis unreachable, running without payload cache", "error", err)
		} else {
			cache = cacheService.New(rdb, 10*time.Minute, slogger)
			defer rdb.Close()
		}
	}

	games := &repo.GormGames{DB: db}
	predictions := &repo.GormPredictions{DB: db}
	parlays := &repo.GormParlays{DB: db}
	errorLogs := &repo.GormErrorLogs{DB: db}

	sweeper := &settlementService.Sweeper{
		Resolver:    &gameService.Resolver{Games: games, Log: slogger},
		Predictions: predictions,
		Adapters:    statService.NewRegistry(cache, slogger),
		ErrorLogs:   errorLogs,
		Log:         slogger,
	}
	settler := &parlayService.Settler{
		Parlays:     parlays,
		Predictions: predictions,
		Log:         slogger,
	}

	if err := services.RunStatKeyNormalization(db, slogger); err != nil {
		slogger.Error("stat key normalization migration failed", "error", err)
	}

	if os.Getenv("CRON_DISABLED") == "" {
		cronService := scheduler.SetupCron(sweeper, settler, slogger, pageSize, budget)
		defer cronService.Stop()
	}

	handlers := &server.Handlers{
		Sweeper:  sweeper,
		Parlays:  settler,
		Log:      slogger,
		PageSize: pageSize,
		Budget:   budget,
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: server.NewRouter(handlers),
	}

	go func() {
		slogger.Info("settlement service listening", "port", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slogger.Error("http server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	slogger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slogger.Error("shutdown error", "error", err)
	}
}

func envInt(name string, fallback int) int {
	if raw := os.Getenv(name); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
	}
	return fallback
}
