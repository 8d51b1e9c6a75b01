package main

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"llm-qa/internal/app"
	"llm-qa/internal/httputil"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

const (
	errQuestionRequired = "Question is required."
	errEnterQuestion    = "Please enter a question."
	shutdownTimeout     = 10 * time.Second
)

type askRequest struct {
	Question string `json:"question" validate:"required"`
}

type askResponse struct {
	Question          string   `json:"question"`
	ProcessedQuestion string   `json:"processed_question"`
	Tokens            []string `json:"tokens"`
	Answer            string   `json:"answer"`
}

type pageData struct {
	Question          string
	ProcessedQuestion string
	Tokens            []string
	Answer            string
	Error             string
}

func main() {
	deps, err := app.Build(app.Options{})
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}
	defer func() {
		_ = deps.Close()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, deps); err != nil {
		deps.Log.Error("server failed", "err", err)
		os.Exit(1)
	}
}

func newRouter(deps app.Deps) chi.Router {
	r := httputil.NewRouter(deps.Log, deps.Config.RequestTimeout)

	r.Get("/", indexHandler(deps))
	r.Post("/", indexHandler(deps))
	r.Post("/api/ask", askHandler(deps))
	r.Get("/healthz", httputil.HealthHandler(deps))

	return r
}

// serve runs the HTTP server until ctx is cancelled, then shuts it down gracefully.
func serve(ctx context.Context, deps app.Deps) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", deps.Config.Port),
		Handler:           newRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		deps.Log.Info("qa server listening", "addr", srv.Addr, "llm_configured", deps.LLM.Configured())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		deps.Log.Info("qa server shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func indexHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := pageData{Tokens: []string{}}

		if r.Method == http.MethodPost {
			question := strings.TrimSpace(r.PostFormValue("question"))
			data.Question = question
			if question == "" {
				data.Error = errEnterQuestion
			} else {
				result := deps.QA.Answer(r.Context(), question)
				data.ProcessedQuestion = result.ProcessedQuestion
				data.Tokens = result.Tokens
				data.Answer = result.Answer
			}
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := pageTemplate.Execute(w, data); err != nil {
			deps.Log.Error("render page failed", "err", err)
		}
	}
}

func askHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req askRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputil.Fail(deps.Log, w, errQuestionRequired, err, http.StatusBadRequest)
			return
		}

		req.Question = strings.TrimSpace(req.Question)
		if err := httputil.Validator.Struct(&req); err != nil {
			httputil.Fail(deps.Log, w, errQuestionRequired, err, http.StatusBadRequest)
			return
		}

		result := deps.QA.Answer(r.Context(), req.Question)
		httputil.WriteJSON(w, http.StatusOK, askResponse{
			Question:          req.Question,
			ProcessedQuestion: result.ProcessedQuestion,
			Tokens:            result.Tokens,
			Answer:            result.Answer,
		})
	}
}
