package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	intconfig "github.com/Haseem12/ArewaRide/internal/config"
	router "github.com/Haseem12/ArewaRide/internal/http"
	"github.com/Haseem12/ArewaRide/internal/repositories"
	"github.com/Haseem12/ArewaRide/internal/utils"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	db := intconfig.ConnectDB(env)
	defer intconfig.CloseDB()

	// Schema and demo catalog on startup for local runs.
	if err := repositories.InitSchema(db); err != nil {
		log.Fatalf("failed to init schema: %v", err)
	}
	if err := repositories.SeedSchedules(db, utils.NowUTC()); err != nil {
		log.Fatalf("failed to seed schedules: %v", err)
	}

	r := router.NewRouter(env)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server listening on http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly.")
}
