package main

import (
	"context"
	"expvar"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"transitlive/tracking-service/internal/catalog"
	"transitlive/tracking-service/internal/config"
	"transitlive/tracking-service/internal/httpapi"
	"transitlive/tracking-service/internal/hub"
	"transitlive/tracking-service/internal/simulator"
	"transitlive/tracking-service/internal/store/memory"
	"transitlive/tracking-service/internal/telemetry"
	"transitlive/tracking-service/internal/token"

	"github.com/google/uuid"
	"github.com/igm/sockjs-go/sockjs"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	cfg := config.Load()
	shutdownTelemetry := telemetry.Setup("tracking-service")
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTelemetry(ctx)
	}()

	directory := memory.NewStore()
	tokens := token.NewService([]byte(cfg.TokenSecret), cfg.TokenValidity)
	stops := catalog.Load()
	h := hub.New()

	handler := httpapi.NewHandler(directory, tokens, stops)
	limiter := httpapi.NewRateLimiter(httpapi.RateLimitConfig{
		PerMinute: cfg.RateLimitPerMinute,
		Burst:     cfg.RateLimitBurst,
	})

	mux := http.NewServeMux()
	mux.Handle("/metrics", expvar.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	sockjsHandler := sockjs.NewHandler("/realtime", sockjs.DefaultOptions, func(session sockjs.Session) {
		raw := sessionTokenFromRequest(session.Request())
		claims, err := tokens.Validate(raw)
		if err != nil {
			_ = session.Close(4001, "invalid token")
			return
		}
		if _, err := directory.FindByID(context.Background(), claims.UserID); err != nil {
			_ = session.Close(4002, "unknown user")
			return
		}

		client := &hub.Client{ID: uuid.NewString(), Send: make(chan []byte, 16)}
		h.Register(client)
		defer h.Unregister(client)

		go func() {
			for msg := range client.Send {
				_ = session.Send(string(msg))
			}
		}()

		for {
			msg, err := session.Recv()
			if err != nil {
				return
			}
			parsed, ok := hub.ParseClientMessage([]byte(msg))
			if !ok {
				continue
			}
			switch parsed.Action {
			case hub.ActionJoinBusTracking:
				h.Join(client, hub.RoomBusTracking)
				log.Printf("user %d joined bus tracking client=%s", claims.UserID, client.ID)
			case hub.ActionLeaveBusTracking:
				h.Leave(client, hub.RoomBusTracking)
			}
		}
	})
	mux.Handle("/realtime/", sockjsHandler)
	mux.Handle("/", handler.Routes())

	otelHandler := otelhttp.NewHandler(httpapi.LoggingMiddleware(limiter.Middleware(mux)), "tracking-service")
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      otelHandler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	simCtx, stopSim := context.WithCancel(context.Background())
	defer stopSim()
	sim := simulator.New(stops.Stops(), h, simulator.Config{
		Interval: cfg.SimInterval,
		Room:     hub.RoomBusTracking,
	})
	go sim.Run(simCtx)

	go func() {
		log.Printf("tracking-service listening on %s stops=%d users=%d", server.Addr, stops.Size(), directory.Count(context.Background()))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	stopSim()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

func sessionTokenFromRequest(r *http.Request) string {
	if r == nil {
		return ""
	}
	if token := bearerToken(r.Header.Get("Authorization")); token != "" {
		return token
	}
	return strings.TrimSpace(r.URL.Query().Get("token"))
}

func bearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) != 2 {
		return ""
	}
	if strings.ToLower(parts[0]) != "bearer" {
		return ""
	}
	return parts[1]
}
