package controller

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"safequeue-viz/config"
	"safequeue-viz/internal/api"
	"safequeue-viz/internal/controller/handler"
	route "safequeue-viz/internal/controller/routes"
	"safequeue-viz/internal/logger"
	"safequeue-viz/internal/service"
	"safequeue-viz/internal/transactions"
)

type Controller struct {
	Config     *config.Config
	Services   *service.Service
	router     *gin.Engine
	httpServer *http.Server
	hub        *api.Hub
}

func NewController(cfg *config.Config, srvc *service.Service) *Controller {
	return &Controller{
		Config:   cfg,
		Services: srvc,
		router:   gin.Default(),
		hub:      api.NewHub(srvc.Logger),
	}
}

func (c *Controller) Serve() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	l := c.Services.Logger

	var wg sync.WaitGroup

	// Graceful shutdown signal handler
	go c.handleShutdown(cancel)

	c.configureRouter()

	// Start HTTP server
	wg.Add(1)
	go func() {
		defer wg.Done()
		l.Info("serving safequeue-viz at http://localhost:" + port())
		if err := c.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Error("server failed to start", logger.Fields{"error": err.Error()})
		}
	}()

	// Start the per-safe queue pollers
	transactions.Poll(ctx, c.Config, c.Services, c.hub, &wg)

	// Wait for shutdown signal
	<-ctx.Done()

	l.Info("shutdown signal received, shutting down services...")

	_ = c.httpServer.Shutdown(context.Background())

	l.Info("waiting for background routines to finish...")
	wg.Wait()

	l.Info("all services shut down cleanly")
	return nil
}

func (c *Controller) handleShutdown(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	cancel()
}

func (c *Controller) configureRouter() {
	queueService := service.NewQueueService(c.Services.Redis, c.Services.Logger)
	h := handler.NewHandler(queueService)

	c.router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	route.RegisterRoutes(c.router, h)

	mux := http.NewServeMux()

	// API routes — mounted on /api/
	mux.Handle("/api/", http.StripPrefix("/api", c.router))

	// Live queue view pushes
	mux.HandleFunc("/ws", c.hub.HandleWebSocket)

	c.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%s", port()),
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}

func port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "8080"
}
