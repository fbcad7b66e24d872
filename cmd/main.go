package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gin-gonic/gin"

	"bistroboss/config"
	"bistroboss/database"
	"bistroboss/logging"
	"bistroboss/routes"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel)

	client, db, err := database.Connect(context.Background(), cfg)
	if err != nil {
		log.Error("mongodb connect failed", "error", err)
		os.Exit(1)
	}
	defer client.Disconnect(context.Background())

	cols := database.NewCollections(db)
	if err := database.EnsureIndexes(context.Background(), cols); err != nil {
		log.Error("index creation failed", "error", err)
		os.Exit(1)
	}

	r := gin.Default()
	r.SetTrustedProxies(nil)
	routes.Register(r, cfg, cols, log)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt)
		<-c
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("server shutdown failed", "error", err)
		}
		close(idleConnsClosed)
	}()

	log.Info("server starting", "port", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server failed", "error", err)
		os.Exit(1)
	}
	<-idleConnsClosed
	log.Info("server stopped")
}
