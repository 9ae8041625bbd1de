package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "chauffeur-admin/internal/config"
	router "chauffeur-admin/internal/http"
	"chauffeur-admin/internal/http/handlers"
	"chauffeur-admin/internal/http/middleware"
	"chauffeur-admin/internal/metrics"
	"chauffeur-admin/internal/notify"
	"chauffeur-admin/internal/repositories"
	"chauffeur-admin/internal/seed"
	"chauffeur-admin/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/spf13/pflag"
)

func main() {
	env, _, err := intconfig.ParseFlags(intconfig.LoadEnv(), os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatalf("invalid flags: %v", err)
	}
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	scheme, err := repositories.ParseIDScheme(env.IDScheme)
	if err != nil {
		log.Fatalf("invalid ID_SCHEME: %v", err)
	}
	policy, err := repositories.ParseNotifyPolicy(env.NotifyPolicy)
	if err != nil {
		log.Fatalf("invalid NOTIFY_POLICY: %v", err)
	}

	data, err := seed.Load()
	if err != nil {
		log.Fatalf("failed to load seed data: %v", err)
	}

	m := metrics.New()
	recorder := notify.NewRecorder(env.NotifyBuffer)
	hub := notify.NewHub(middleware.Origins(env.CORSOrigins))

	repos := services.NewRepos(repositories.Config{
		IDScheme: scheme,
		Sink:     notify.Multi{notify.LogSink{}, recorder, hub},
		Policy:   policy,
		Observer: m,
	}, data)
	for entity, n := range repos.Len() {
		m.SetRecords(entity, n)
	}

	hs := &handlers.Handlers{
		Services: services.New(repos),
		Recorder: recorder,
		Hub:      hub,
	}

	// Router (Gin engine)
	r := router.NewRouter(env, hs, m)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server running at http://localhost%s (id_scheme=%s notify_policy=%s)", env.AppAddr, scheme, policy)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly.")
}
