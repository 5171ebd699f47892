package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"blogpilot/config"
	deliverycontext "blogpilot/internal/delivery/context"
	"blogpilot/internal/domain/entity"
	domainerrors "blogpilot/internal/domain/errors"
	"blogpilot/internal/domain/lifecycle"
	"blogpilot/internal/domain/service"
	"blogpilot/internal/errors"
	"blogpilot/internal/infra/metrics"
	"blogpilot/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

// generationRun is one tracked job and the poll that drives it.
type generationRun struct {
	job      *entity.GenerationJob
	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}
	doneOnce sync.Once
}

func (r *generationRun) stop() {
	r.cancel()
	r.doneOnce.Do(func() { close(r.done) })
}

// generationService implements the GenerationUsecase interface.
// Polls run on the service's root context so they outlive the request that
// started them; Cancel, a new Start or Close stops them.
type generationService struct {
	api       service.PostAPI
	credits   usecase.CreditUsecase
	probe     service.ImageProbe
	sanitizer service.HTMLSanitizer
	publisher service.EventPublisher
	metrics   metrics.Recorder
	validate  *validator.Validate
	interval  time.Duration
	timeout   time.Duration
	logger    *slog.Logger
	now       func() time.Time

	rootCtx    context.Context
	rootCancel context.CancelFunc
	wg         sync.WaitGroup

	mu       sync.RWMutex
	run      *generationRun
	listener usecase.ProgressListener
	closed   bool
}

// GenerationServiceParams holds dependencies for GenerationService, injected by Fx.
type GenerationServiceParams struct {
	fx.In

	Lc        fx.Lifecycle `optional:"true"`
	Config    *config.Config
	API       service.BackendAPI
	Credits   usecase.CreditUsecase
	Probe     service.ImageProbe
	Sanitizer service.HTMLSanitizer
	Publisher service.EventPublisher
	Metrics   metrics.Recorder
	Logger    *slog.Logger
}

// NewGenerationService is the constructor for generationService.
func NewGenerationService(params GenerationServiceParams) usecase.GenerationUsecase {
	rootCtx, rootCancel := context.WithCancel(context.Background())

	srv := &generationService{
		api:        params.API,
		credits:    params.Credits,
		probe:      params.Probe,
		sanitizer:  params.Sanitizer,
		publisher:  params.Publisher,
		metrics:    params.Metrics,
		validate:   newValidator(),
		interval:   params.Config.Poller.Interval,
		timeout:    params.Config.Poller.Timeout,
		logger:     params.Logger,
		now:        time.Now,
		rootCtx:    rootCtx,
		rootCancel: rootCancel,
	}
	if srv.metrics == nil {
		srv.metrics = metrics.Nop{}
	}

	if params.Lc != nil {
		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return srv.Close()
			},
		})
	}

	return srv
}

func (srv *generationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SetProgressListener registers fn to receive job snapshots. Passing nil removes it.
func (srv *generationService) SetProgressListener(fn usecase.ProgressListener) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.listener = fn
}

// Start validates the request, cancels any outstanding job and calls preview.
// The returned snapshot is processing while images are still rendering.
func (srv *generationService) Start(ctx context.Context, req entity.GenerationRequest) (entity.GenerationJob, error) {
	if err := srv.validate.Struct(req); err != nil {
		return entity.GenerationJob{}, validationError(err)
	}

	srv.mu.Lock()
	if srv.closed {
		srv.mu.Unlock()

		return entity.GenerationJob{}, errors.Wrap(domainerrors.ErrInternalError, "generation service is closed")
	}
	if srv.run != nil {
		srv.run.stop()
	}

	runCtx, cancel := context.WithCancel(srv.rootCtx)
	run := &generationRun{
		job: &entity.GenerationJob{
			ID:        uuid.New(),
			Status:    entity.JobStatusIdle,
			FreeTrial: req.FreeTrial,
			StartedAt: srv.now(),
		},
		ctx:    runCtx,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	srv.run = run
	srv.mu.Unlock()

	srv.metrics.RecordJobStarted()
	log := srv.log(ctx).With(slog.String("job_id", run.job.ID.String()))
	log.Info("Generation started", slog.Bool("free_trial", req.FreeTrial))

	result, err := srv.api.Preview(ctx, req)

	// The balance changes on both outcomes.
	srv.credits.Refresh(ctx)

	if err != nil {
		snapshot, _ := srv.finish(run, entity.JobStatusError, err.Error())
		log.Error("Generation request failed", slog.Any("error", err))

		return snapshot, err
	}

	snapshot, polling := srv.applyResult(run, result)
	if !polling {
		return snapshot, nil
	}

	srv.wg.Add(1)
	go srv.poll(run)

	return snapshot, nil
}

// applyResult fills the job from the preview response. It reports whether
// slots are left to poll.
func (srv *generationService) applyResult(run *generationRun, result *entity.GenerationResult) (entity.GenerationJob, bool) {
	srv.mu.Lock()
	if run.ctx.Err() != nil {
		snapshot := run.job.Clone()
		srv.mu.Unlock()

		return snapshot, false
	}

	job := run.job
	job.PostID = result.PostID
	job.HTML = result.HTML
	job.Summary = result.Summary
	job.CreditsRequired = result.CreditsRequired
	if srv.sanitizer != nil {
		job.SanitizedHTML = srv.sanitizer.Sanitize(result.HTML)
	}
	job.Slots = make([]entity.ImageSlot, len(result.Images))
	for i, u := range result.Images {
		job.Slots[i] = entity.ImageSlot{Index: i, URL: u}
	}
	srv.mu.Unlock()

	if len(result.Images) == 0 {
		snapshot, _ := srv.finish(run, entity.JobStatusCompleted, "")

		return snapshot, false
	}

	srv.mu.Lock()
	job.Status = entity.JobStatusProcessing
	snapshot := job.Clone()
	listener := srv.listener
	srv.mu.Unlock()

	srv.notify(listener, snapshot)

	return snapshot, true
}

// poll checks every unresolved slot once per interval until all resolve, the
// timeout passes or the run is cancelled.
func (srv *generationService) poll(run *generationRun) {
	defer srv.wg.Done()

	ticker := time.NewTicker(srv.interval)
	defer ticker.Stop()

	var deadline <-chan time.Time
	if srv.timeout > 0 {
		timer := time.NewTimer(srv.timeout)
		defer timer.Stop()
		deadline = timer.C
	}

	for {
		select {
		case <-run.ctx.Done():
			return
		case <-deadline:
			srv.finish(run, entity.JobStatusTimedOut, "images were not ready before the poll timeout")

			return
		case <-ticker.C:
			if srv.checkSlots(run) {
				return
			}
		}
	}
}

// checkSlots probes the unresolved slots. It reports whether polling is over.
func (srv *generationService) checkSlots(run *generationRun) bool {
	srv.mu.RLock()
	pending := make([]entity.ImageSlot, 0, len(run.job.Slots))
	for _, slot := range run.job.Slots {
		if !slot.Resolved {
			pending = append(pending, slot)
		}
	}
	srv.mu.RUnlock()

	found := make([]int, 0, len(pending))
	for _, slot := range pending {
		if run.ctx.Err() != nil {
			return true
		}

		ok, err := srv.probe.Exists(run.ctx, slot.URL)
		if err != nil {
			if run.ctx.Err() != nil {
				return true
			}
			srv.logger.Debug("Image probe failed", slog.String("url", slot.URL), slog.Any("error", err))

			continue
		}
		if ok {
			found = append(found, slot.Index)
		}
	}

	srv.mu.Lock()
	if run.ctx.Err() != nil {
		srv.mu.Unlock()

		return true
	}

	job := run.job
	now := srv.now()
	changed := false
	for _, idx := range found {
		slot := &job.Slots[idx]
		if slot.Resolved {
			continue
		}
		slot.Resolved = true
		slot.ResolvedAt = &now
		job.ResolvedCount++
		changed = true
		srv.metrics.RecordSlotResolved()
	}
	complete := job.ResolvedCount == len(job.Slots)
	snapshot := job.Clone()
	listener := srv.listener
	srv.mu.Unlock()

	if complete {
		srv.finish(run, entity.JobStatusCompleted, "")

		return true
	}
	if changed {
		srv.notify(listener, snapshot)
	}

	return false
}

// finish moves the run to a terminal state once, publishes the event and
// releases waiters. It reports false when the run was already stopped.
func (srv *generationService) finish(run *generationRun, status entity.JobStatus, message string) (entity.GenerationJob, bool) {
	srv.mu.Lock()
	if run.ctx.Err() != nil || run.job.Status.IsTerminal() {
		snapshot := run.job.Clone()
		srv.mu.Unlock()

		return snapshot, false
	}

	finishedAt := srv.now()
	job := run.job
	job.Status = status
	job.Error = message
	job.FinishedAt = &finishedAt
	snapshot := job.Clone()
	listener := srv.listener
	srv.mu.Unlock()

	run.stop()

	srv.metrics.RecordJobFinished(string(status), finishedAt.Sub(job.StartedAt))
	srv.logger.Info("Generation finished",
		slog.String("job_id", job.ID.String()),
		slog.String("status", string(status)),
		slog.Int("resolved", snapshot.ResolvedCount),
		slog.Int("total", len(snapshot.Slots)),
	)

	srv.notify(listener, snapshot)
	srv.publish(snapshot)

	return snapshot, true
}

func (srv *generationService) publish(job entity.GenerationJob) {
	if srv.publisher == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	event := &entity.GenerationEvent{
		JobID:         job.ID,
		PostID:        job.PostID,
		Status:        job.Status,
		ImageTotal:    len(job.Slots),
		ResolvedCount: job.ResolvedCount,
		FreeTrial:     job.FreeTrial,
		FinishedAt:    *job.FinishedAt,
	}
	if err := srv.publisher.PublishGenerationEvent(ctx, event); err != nil {
		srv.logger.Warn("Failed to publish generation event",
			slog.String("job_id", job.ID.String()),
			slog.Any("error", err),
		)
	}
}

func (srv *generationService) notify(listener usecase.ProgressListener, job entity.GenerationJob) {
	if listener != nil {
		listener(job)
	}
}

// Current returns the tracked job.
func (srv *generationService) Current() (entity.GenerationJob, bool) {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	if srv.run == nil {
		return entity.GenerationJob{}, false
	}

	return srv.run.job.Clone(), true
}

// Job returns the tracked job when its id matches.
func (srv *generationService) Job(id uuid.UUID) (entity.GenerationJob, error) {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	if srv.run == nil || srv.run.job.ID != id {
		return entity.GenerationJob{}, errors.Wrapf(domainerrors.ErrJobNotFound, "job %s", id)
	}

	return srv.run.job.Clone(), nil
}

// Wait blocks until the job stops polling, whether it finished or was
// cancelled, and returns its last state.
func (srv *generationService) Wait(ctx context.Context, id uuid.UUID) (entity.GenerationJob, error) {
	srv.mu.RLock()
	run := srv.run
	srv.mu.RUnlock()

	if run == nil || run.job.ID != id {
		return entity.GenerationJob{}, errors.Wrapf(domainerrors.ErrJobNotFound, "job %s", id)
	}

	select {
	case <-run.done:
	case <-ctx.Done():
		srv.mu.RLock()
		snapshot := run.job.Clone()
		srv.mu.RUnlock()

		return snapshot, errors.WithStack(ctx.Err())
	}

	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return run.job.Clone(), nil
}

// Cancel stops the current poll. The job keeps its last state.
func (srv *generationService) Cancel() {
	srv.mu.Lock()
	run := srv.run
	srv.mu.Unlock()

	if run != nil {
		run.stop()
	}
}

// Close cancels all polling and waits for the poll goroutine to exit.
func (srv *generationService) Close() error {
	srv.mu.Lock()
	srv.closed = true
	srv.mu.Unlock()

	srv.Cancel()
	srv.rootCancel()
	srv.wg.Wait()

	return nil
}
