package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cube-planet/internal/logger"
	"cube-planet/internal/sims/planet"
	"cube-planet/internal/stream"
)

//go:embed index.html
var indexHTML []byte

func main() {
	addr := flag.String("addr", ":8080", "HTTP listen address")
	tps := flag.Int("tps", 10, "ticks per second")
	scale := flag.Int("scale", 4, "pixel scale of streamed frames")
	configPath := flag.String("config", "", "YAML file with planet settings")
	cfg := planet.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	log := logger.New("stream")

	if *configPath != "" {
		loaded, err := planet.LoadConfig(*configPath)
		if err != nil {
			log.Fatal("%v", err)
		}
		cfg = loaded
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := stream.NewHub(log)
	go hub.Run(ctx)

	world := planet.NewWithConfig(cfg)
	r := newRunner(world, *tps, *scale, hub, log)
	go r.run(ctx, hub.Commands())

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path != "/" {
			http.NotFound(w, req)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(indexHTML)
	})
	mux.HandleFunc("/ws", hub.ServeWS)
	mux.HandleFunc("/stats", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(r.snapshot()); err != nil {
			log.Warn("write stats: %v", err)
		}
	})
	mux.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	srv := &http.Server{Addr: *addr, Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Info("serving face size %d seed %d on %s", world.Surface().Size(), world.Config().Seed, *addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("%v", err)
	}
	log.Info("stopped")
}
