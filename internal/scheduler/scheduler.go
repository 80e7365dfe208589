package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/preston-bernstein/friday-night-bytes/internal/app/checker"
	"github.com/preston-bernstein/friday-night-bytes/internal/logging"
	"github.com/preston-bernstein/friday-night-bytes/internal/preferences"
)

const (
	// DefaultSchedule runs the weekly check Monday mornings.
	DefaultSchedule = "0 9 * * 1"
	defaultTimeout  = 5 * time.Minute
)

// ErrNoPreferences is returned when the scheduler has nothing to check.
var ErrNoPreferences = errors.New("scheduler: no favourite teams configured")

// Runner performs the weekly check and delivers its summary.
type Runner interface {
	Week(ctx context.Context, prefs preferences.Preferences) (checker.Result, error)
	Notify(ctx context.Context, res checker.Result) error
}

// Config controls when the scheduler runs.
type Config struct {
	// Schedule is a standard five-field cron expression or descriptor such as "@daily".
	Schedule   string
	Location   *time.Location
	RunOnStart bool
	Timeout    time.Duration
}

// Status describes the recent health of scheduled runs.
type Status struct {
	Running             bool
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
	LastGames           int
	NextRun             time.Time
}

// IsReady reports whether the scheduler is running or has completed a run, and runs are not failing
// repeatedly. A started scheduler waiting for its first weekly slot is ready.
func (s Status) IsReady() bool {
	if !s.Running && s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// Scheduler runs the weekly check on a cron schedule and pushes the summary.
type Scheduler struct {
	runner  Runner
	prefs   preferences.Preferences
	logger  *slog.Logger
	timeout time.Duration
	onStart bool
	spec    string

	cron     *cron.Cron
	entry    cron.EntryID
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// New validates the cron expression and constructs a Scheduler.
func New(runner Runner, prefs preferences.Preferences, cfg Config, logger *slog.Logger) (*Scheduler, error) {
	if prefs.IsEmpty() {
		return nil, ErrNoPreferences
	}
	spec := cfg.Schedule
	if spec == "" {
		spec = DefaultSchedule
	}
	if _, err := cron.ParseStandard(spec); err != nil {
		return nil, fmt.Errorf("scheduler: invalid schedule %q: %w", spec, err)
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = logging.Discard()
	}

	return &Scheduler{
		runner:  runner,
		prefs:   prefs,
		logger:  logger,
		timeout: timeout,
		onStart: cfg.RunOnStart,
		spec:    spec,
		cron:    cron.New(cron.WithLocation(loc)),
	}, nil
}

// Start registers the job and begins running it until ctx is cancelled or Stop is called.
func (s *Scheduler) Start(ctx context.Context) error {
	s.startMu.Lock()
	defer s.startMu.Unlock()
	if s.started {
		return nil
	}

	id, err := s.cron.AddFunc(s.spec, func() { _ = s.RunOnce(ctx) })
	if err != nil {
		return fmt.Errorf("scheduler: add job: %w", err)
	}
	s.entry = id
	s.started = true
	s.setRunning(true)
	s.cron.Start()
	s.setNextRun()

	logging.Info(s.logger, "scheduler started", "schedule", s.spec, "next_run", s.Status().NextRun)

	if s.onStart {
		go func() { _ = s.RunOnce(ctx) }()
	}
	go func() {
		<-ctx.Done()
		_ = s.Stop(context.Background())
	}()
	return nil
}

// Stop halts the schedule and waits for a running check to finish or ctx to end.
func (s *Scheduler) Stop(ctx context.Context) error {
	var err error
	s.stopOnce.Do(func() {
		done := s.cron.Stop()
		select {
		case <-done.Done():
		case <-ctx.Done():
			err = ctx.Err()
		}
		s.setRunning(false)
		logging.Info(s.logger, "scheduler stopped")
	})
	return err
}

// RunOnce performs one weekly check and sends its summary.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	s.recordAttempt(start)

	res, err := s.runner.Week(ctx, s.prefs)
	if err == nil {
		err = s.runner.Notify(ctx, res)
	}
	if err != nil {
		logging.Error(s.logger, "scheduled check failed", err,
			logging.FieldDurationMS, time.Since(start).Milliseconds(),
		)
		s.recordFailure(err, start)
		return err
	}

	s.recordSuccess(start, len(res.Games))
	logging.Info(s.logger, "scheduled check sent",
		logging.FieldCount, len(res.Games),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return nil
}

func (s *Scheduler) setNextRun() {
	next := s.cron.Entry(s.entry).Next
	s.statusMu.Lock()
	s.status.NextRun = next
	s.statusMu.Unlock()
}

func (s *Scheduler) recordAttempt(at time.Time) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.LastAttempt = at
}

func (s *Scheduler) recordSuccess(at time.Time, found int) {
	s.statusMu.Lock()
	s.status.ConsecutiveFailures = 0
	s.status.LastError = ""
	s.status.LastSuccess = at
	s.status.LastGames = found
	s.statusMu.Unlock()
	s.refreshNextRun()
}

func (s *Scheduler) recordFailure(err error, at time.Time) {
	s.statusMu.Lock()
	s.status.ConsecutiveFailures++
	if err != nil {
		s.status.LastError = err.Error()
	}
	s.status.LastAttempt = at
	s.statusMu.Unlock()
	s.refreshNextRun()
}

func (s *Scheduler) setRunning(running bool) {
	s.statusMu.Lock()
	s.status.Running = running
	s.statusMu.Unlock()
}

func (s *Scheduler) refreshNextRun() {
	s.startMu.Lock()
	started := s.started
	s.startMu.Unlock()
	if started {
		s.setNextRun()
	}
}

// Status returns a snapshot of the scheduler's recent health.
func (s *Scheduler) Status() Status {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return s.status
}
