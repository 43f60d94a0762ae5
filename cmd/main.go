package main

import (
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	cnt "github.com/R3DPanda1/envmon/controllers"
	"github.com/R3DPanda1/envmon/models"
	repo "github.com/R3DPanda1/envmon/repositories"
	"github.com/R3DPanda1/envmon/monitor/logging"
	"github.com/R3DPanda1/envmon/shared"
	ws "github.com/R3DPanda1/envmon/webserver"
)

// Entry point of the program.
func main() {
	configPath := flag.String("config", "config.json", "path to the configuration file")
	flag.Parse()

	// Load the configuration file, and if there is an error, log it and terminate the program.
	cfg, err := models.GetConfigFile(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	logging.Setup(cfg.Logging)
	slog.Info("monitor starting", "version", shared.Version, "board", cfg.Board.Kind)

	if cfg.Verbose {
		shared.Verbose = true
		shared.DebugPrint("Verbose mode enabled")
	}
	monitorRepository := repo.NewMonitorRepository()
	monitorController := cnt.NewMonitorController(monitorRepository)
	monitorController.GetInstance(*cfg)

	if cfg.MetricsPort != 0 {
		go startMetrics(cfg)
	}
	if cfg.AutoStart {
		slog.Info("auto-starting monitor")
		monitorController.Run()
	} else {
		slog.Info("autostart not enabled")
	}

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		s := <-sig
		slog.Info("shutting down", "signal", s.String())
		if monitorController.Status() {
			monitorController.Stop()
		}
		os.Exit(0)
	}()

	// Start the web server and serve the panel
	webServer, err := ws.NewWebServer(cfg, monitorController)
	if err != nil {
		log.Fatal(err)
	}
	if err := webServer.Run(); err != nil {
		slog.Error("web server failed", "error", err)
		os.Exit(1)
	}
}

// Prometheus metrics server
func startMetrics(cfg *models.ServerConfig) {
	http.Handle("/metrics", promhttp.Handler())
	err := http.ListenAndServe(cfg.Address+":"+strconv.Itoa(cfg.MetricsPort), nil)
	if err != nil {
		slog.Error("metrics server failed", "error", err)
	}
}
