// Package main is the devops-board command. It renders sprint, review and
// change views of a work tracking service, either once to stdout or served
// over HTTP.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"devops-board/internal/config"
	"devops-board/internal/devops"
	"devops-board/internal/domain"
	"devops-board/internal/format"
	"devops-board/internal/handler"
	"devops-board/internal/logger"
	"devops-board/internal/report"
	"devops-board/internal/router"
	"devops-board/internal/service"
)

// Exit codes: 1 covers every failure, 2 marks a usable but incomplete
// reviews document.
const (
	exitOK      = 0
	exitFailure = 1
	exitPartial = 2
)

const usage = `Usage: devops-board <command> [flags]

Commands:
  sprint    Current sprint work items for a team
  reviews   Pull requests awaiting the given reviewers
  changes   Changed files of one pull request
  serve     Serve the three views over HTTP

Configuration comes from the environment (or a local .env file); the
personal access token is read from DEVOPS_PAT or AZURE_DEVOPS_PAT.
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return exitFailure
	}

	cmd := args[0]
	switch cmd {
	case "sprint", "reviews", "changes", "serve":
	case "help", "-h", "--help":
		fmt.Fprint(os.Stderr, usage)
		return exitOK
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n%s", cmd, usage)
		return exitFailure
	}

	cfg, err := config.New()
	if err != nil {
		return emitFailure(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logging: %v\n", err)
		return exitFailure
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch cmd {
	case "sprint":
		return runSprint(ctx, args[1:], cfg, log)
	case "reviews":
		return runReviews(ctx, args[1:], cfg, log)
	case "changes":
		return runChanges(ctx, args[1:], cfg, log)
	default:
		return runServe(ctx, cfg, log)
	}
}

func runSprint(ctx context.Context, args []string, cfg *config.Config, log *zap.SugaredLogger) int {
	fs := flag.NewFlagSet("sprint", flag.ContinueOnError)
	team := fs.String("team", "", "team whose current sprint to show (defaults to the configured team)")
	states := fs.String("states", "", "comma-separated work item states")
	types := fs.String("types", "", "comma-separated work item types")
	unassigned := fs.Bool("unassigned", false, "only unassigned work items")
	assignedTo := fs.String("assigned-to", "", "only work items assigned to this user")
	if err := fs.Parse(args); err != nil {
		return exitFailure
	}

	client, err := devops.NewClient(cfg, log)
	if err != nil {
		return emitFailure(err)
	}

	svc := service.NewSprintService(client, format.New(cfg), cfg, log)
	result, err := svc.Sprint(ctx, service.SprintFilter{
		Team:       *team,
		States:     splitList(*states),
		Types:      splitList(*types),
		Unassigned: *unassigned,
		AssignedTo: *assignedTo,
	})
	if err != nil {
		return emitFailure(err)
	}

	return emit(result, exitOK)
}

func runReviews(ctx context.Context, args []string, cfg *config.Config, log *zap.SugaredLogger) int {
	fs := flag.NewFlagSet("reviews", flag.ContinueOnError)
	reviewers := fs.String("reviewers", "", "comma-separated reviewer ids (required)")
	status := fs.String("status", "", "pull request status: active, completed, abandoned or all")
	excludeAuthor := fs.String("exclude-author", "", "drop pull requests authored by this user")
	if err := fs.Parse(args); err != nil {
		return exitFailure
	}

	client, err := devops.NewClient(cfg, log)
	if err != nil {
		return emitFailure(err)
	}

	svc := service.NewReviewService(client, format.New(cfg), cfg, log)
	result, err := svc.Reviews(ctx, service.ReviewFilter{
		ReviewerIDs:     splitList(*reviewers),
		Status:          domain.PullRequestStatus(*status),
		ExcludeAuthorID: *excludeAuthor,
	})
	if err != nil {
		return emitFailure(err)
	}

	code := exitOK
	if result.Partial() {
		code = exitPartial
	}
	return emit(result, code)
}

func runChanges(ctx context.Context, args []string, cfg *config.Config, log *zap.SugaredLogger) int {
	fs := flag.NewFlagSet("changes", flag.ContinueOnError)
	repo := fs.String("repo", "", "repository name (required)")
	prID := fs.Int("pr", 0, "pull request id (required)")
	filePath := fs.String("file", "", "report only this file, with its contents")
	content := fs.Bool("content", false, "include file contents for every change")
	if err := fs.Parse(args); err != nil {
		return exitFailure
	}

	client, err := devops.NewClient(cfg, log)
	if err != nil {
		return emitFailure(err)
	}

	svc := service.NewChangesService(client, format.New(cfg), log)
	result, err := svc.Changes(ctx, service.ChangesFilter{
		Repository:     *repo,
		PullRequestID:  *prID,
		FilePath:       *filePath,
		IncludeContent: *content,
	})
	if err != nil {
		return emitFailure(err)
	}

	return emit(result, exitOK)
}

func runServe(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) int {
	client, err := devops.NewClient(cfg, log)
	if err != nil {
		log.Errorw("client initialization error", "error", err)
		return exitFailure
	}

	formatter := format.New(cfg)
	sprintHandler := handler.NewSprintHandler(service.NewSprintService(client, formatter, cfg, log))
	reviewHandler := handler.NewReviewHandler(service.NewReviewService(client, formatter, cfg, log))
	changesHandler := handler.NewChangesHandler(service.NewChangesService(client, formatter, log))

	srv := &http.Server{
		Addr:    cfg.ServerAddr(),
		Handler: router.SetupRoutes(sprintHandler, reviewHandler, changesHandler),
	}

	go func() {
		log.Infow("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	log.Infow("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warnw("server shutdown timed out", "timeout", cfg.Server.ShutdownTimeout)
		return exitFailure
	}

	log.Infow("server exited")
	return exitOK
}

// emit writes the one JSON document this run produces. Stdout carries
// nothing else; logs go to stderr.
func emit(doc any, code int) int {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode output: %v\n", err)
		return exitFailure
	}
	return code
}

func emitFailure(err error) int {
	return emit(report.FromError(err), exitFailure)
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
