package main

import (
	"context"
	"fmt"
	"time"

	"daily-task-agent/config"
	"daily-task-agent/internal/metrics"
	"daily-task-agent/internal/planning"
	planningUC "daily-task-agent/internal/planning/usecase"
	"daily-task-agent/internal/prioritizer"
	"daily-task-agent/internal/scheduler"
	"daily-task-agent/internal/session"
	"daily-task-agent/internal/summary"
	"daily-task-agent/internal/task"
	"daily-task-agent/internal/task/parser"
	"daily-task-agent/internal/task/repository/jsonfile"
	taskUC "daily-task-agent/internal/task/usecase"
	"daily-task-agent/pkg/datemath"
	"daily-task-agent/pkg/gcalendar"
	"daily-task-agent/pkg/llmprovider"
	"daily-task-agent/pkg/log"
)

// app is the wired object graph shared by the commands.
type app struct {
	cfg        *config.Config
	l          log.Logger
	metrics    *metrics.Metrics
	taskUC     task.UseCase
	planningUC planning.UseCase
}

func newApp(ctx context.Context, opts *rootOptions) (*app, error) {
	// 1. Configuration
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.storePath != "" {
		cfg.Storage.Path = opts.storePath
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		FilePath:     cfg.Logger.FilePath,
	})
	logger.Debugf(ctx, "Environment: %s, store: %s", cfg.Environment.Name, cfg.Storage.Path)

	m := metrics.New()

	// 3. Task domain
	store := jsonfile.New(cfg.Storage.Path, logger)
	history := session.New(cfg.Session.Capacity)
	tasks := taskUC.New(logger, store, newParser(ctx, cfg, logger, m), history, m)

	// 4. Planning domain
	dateMath, err := datemath.NewParser(cfg.Environment.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Environment.Timezone, err)
		dateMath, _ = datemath.NewParser("UTC")
	}

	workStart, err := config.ParseClock(cfg.Schedule.WorkStart)
	if err != nil {
		return nil, err
	}
	workEnd, err := config.ParseClock(cfg.Schedule.WorkEnd)
	if err != nil {
		return nil, err
	}
	sched, err := scheduler.New(logger, workStart, workEnd)
	if err != nil {
		return nil, err
	}

	plan := planningUC.New(logger, planningUC.Config{
		Repo:        store,
		Prioritizer: prioritizer.New(logger),
		Scheduler:   sched,
		Summarizer:  summary.New(),
		DateMath:    dateMath,
		Calendar:    newCalendar(ctx, cfg, logger),
		CalendarID:  cfg.GoogleCalendar.CalendarID,
		Metrics:     m,
	})

	return &app{
		cfg:        cfg,
		l:          logger,
		metrics:    m,
		taskUC:     tasks,
		planningUC: plan,
	}, nil
}

// newParser picks the intake parser: LLM with heuristic fallback when a provider is
// configured and initializes, heuristic only otherwise.
func newParser(ctx context.Context, cfg *config.Config, l log.Logger, m *metrics.Metrics) parser.Parser {
	heuristic := parser.NewHeuristic()
	if !cfg.LLMEnabled() {
		l.Debug(ctx, "No LLM provider enabled, using heuristic parser")
		return heuristic
	}

	providers, skipped, err := llmprovider.InitializeProviders(&cfg.LLM)
	for _, s := range skipped {
		l.Warnf(ctx, "LLM provider skipped: %s", s)
	}
	if err != nil {
		l.Warnf(ctx, "LLM providers unavailable, using heuristic parser: %v", err)
		return heuristic
	}

	var maxTotal time.Duration
	if cfg.LLM.MaxTotalTimeout != "" {
		maxTotal, _ = time.ParseDuration(cfg.LLM.MaxTotalTimeout)
	}
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		MaxTotalTimeout: maxTotal,
	}, l)
	l.Debugf(ctx, "LLM parser enabled with %d provider(s)", manager.Providers())

	return parser.NewFallback(l, parser.NewLLM(manager, l), heuristic, parser.WithMetrics(m))
}

// newCalendar returns nil when no credentials are configured or they cannot be used.
func newCalendar(ctx context.Context, cfg *config.Config, l log.Logger) planningUC.Calendar {
	if cfg.GoogleCalendar.CredentialsPath == "" {
		return nil
	}

	client, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
	if err != nil {
		l.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		l.Warn(ctx, "Run `taskagent calendar-auth` to generate a token")
		return nil
	}
	return client
}
