// launching the server, kafka producer and upstream fetcher
package appServer

import (
	"context"
	"crypto/tls"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ds124wfegd/ezgif-api/config"
	"github.com/ds124wfegd/ezgif-api/internal/pkg/fetcher"
	"github.com/ds124wfegd/ezgif-api/internal/pkg/kafka"
	"github.com/ds124wfegd/ezgif-api/internal/service"
	"github.com/ds124wfegd/ezgif-api/internal/transport"
	"github.com/gin-gonic/gin"

	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.Idle_timeout,
		ReadHeaderTimeout: 3 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},           // ban on outdate TLS certificate
		ErrorLog:          log.New(os.Stderr, "SERVER ERROR: ", log.LstdFlags), // os.Stderr can be replaced with ElsasticSearch in the feature
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// NewHandler wires services and routes from configuration.
func NewHandler(cfg *config.Config, producer kafka.Producer) http.Handler {
	upstream := fetcher.NewFetcher(cfg.Upstream.Timeout, cfg.Upstream.UserAgent)
	statusService := service.NewStatusService(upstream, cfg.Upstream.Website)
	convertService := service.NewConvertService(producer, outputURL(cfg.Upstream.Website))

	return transport.InitRoutes(
		cfg.IsProduction(),
		transport.NewStatusHandler(statusService),
		transport.NewConvertHandler(convertService),
	)
}

func outputURL(website string) string {
	return strings.TrimRight(website, "/") + "/output"
}

func NewServer(cfg *config.Config) {

	logrus.SetFormatter(new(logrus.JSONFormatter))
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)

	if cfg.IsProduction() || cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	producer := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	defer producer.Close()

	srv := new(Server)
	go func() {
		if err := srv.Run(cfg, NewHandler(cfg, producer)); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.WithFields(logrus.Fields{
		"port":    cfg.Server.Port,
		"env":     cfg.Server.Env,
		"website": cfg.Upstream.Website,
	}).Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Print("App Shutting Down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.Timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}
}
