package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"console-draw/core"
	"console-draw/handlers/api/documents"
	renderapi "console-draw/handlers/api/render"
	"console-draw/handlers/websocket"
	"console-draw/session"
	"console-draw/stores"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	socketio "github.com/zishang520/socket.io/v2/socket"
)

func allowLocalOrigin(r *http.Request, origin string) bool {
	parsed, err := url.Parse(origin)
	if origin == "" || err != nil {
		return false
	}

	switch parsed.Scheme {
	case "http", "https":
		switch parsed.Hostname() {
		case "localhost", "127.0.0.1", "::1":
			return true
		}
	}
	return false
}

func setupRouter(documentStore core.DocumentStore, relay *websocket.Relay, background core.ColorFactory) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowOriginFunc:  allowLocalOrigin,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api/v2", func(r chi.Router) {
		r.Post("/post/", documents.HandleCreate(documentStore))
		r.Post("/render", renderapi.HandleRender(background))
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", documents.HandleGet(documentStore))
			r.Get("/png", documents.HandlePNG(documentStore))
		})
	})

	r.Get("/api/sessions", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, relay.GetActiveSessions(r.Context()))
	})

	return r
}

func waitForShutdown(srv *http.Server, ioo *socketio.Server) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGQUIT)
	s := <-signals
	logrus.WithField("signal", s.String()).Info("Shutting down")

	ioo.Close(nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Warn("Server did not shut down cleanly")
	}
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Failed to load .env: %v\n", err)
	}

	logLevel := flag.String("loglevel", "info", "Set the logging level: debug, info, warn, error, fatal, panic")
	listenAddr := flag.String("listen", ":3002", "Set the server listen address")
	flag.Parse()

	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level: %v\n", err)
		os.Exit(1)
	}
	logrus.SetLevel(level)

	background, err := session.BackgroundFromEnv()
	if err != nil {
		logrus.WithError(err).Fatal("Invalid CANVAS_BACKGROUND")
	}

	documentStore := stores.GetStore(context.Background())
	registry, _ := documentStore.(core.SessionRegistry)

	relay := websocket.NewRelay(documentStore, registry, background)
	r := setupRouter(documentStore, relay, background)
	ioo := websocket.SetupSocketIO(relay)
	r.Handle("/socket.io/", ioo.ServeHandler(nil))

	srv := &http.Server{Addr: *listenAddr, Handler: r}
	logrus.WithField("addr", *listenAddr).Info("starting server")
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithField("event", "start server").Fatal(err)
		}
	}()

	waitForShutdown(srv, ioo)
}
