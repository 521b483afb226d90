package session

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"mytodo/internal/client"
	"mytodo/internal/model"
	"mytodo/internal/store"
	"mytodo/internal/views"
)

// Gateway is the slice of the REST client the session needs. *client.Client
// satisfies it; tests substitute a fake.
type Gateway interface {
	GetTodos(ctx context.Context, opts client.ListOptions) ([]model.Todo, error)
	GetTodo(ctx context.Context, id int) (model.Todo, error)
	CreateTodo(ctx context.Context, todo model.Todo) (model.Todo, error)
	UpdateTodo(ctx context.Context, todo model.Todo) (model.Todo, error)
	DeleteTodo(ctx context.Context, id int) error
	ReorderTodos(ctx context.Context, ids []int) error
	GetProjects(ctx context.Context) ([]model.Project, error)
	GetProject(ctx context.Context, id int) (model.Project, error)
}

// maxCompletionDelay bounds how long a completed todo may linger in an
// active-filtered view after its toggle was confirmed.
const maxCompletionDelay = time.Second

// defaultCompletionDelay matches the checkbox animation the web client used.
const defaultCompletionDelay = 300 * time.Millisecond

// Session owns the client-side state: the optimistic collection, the loaded
// projects and the event hub. All mutations go through it so the optimistic
// apply, the gateway call and the authoritative reconcile happen in one
// place. Failed mutations are deliberately NOT rolled back; the collection
// stays diverged until the next Refresh, matching the behavior users of the
// original client rely on. Each failure Result carries a pre-mutation
// snapshot so a future caller can change that policy.
type Session struct {
	gw    Gateway
	col   *store.Collection
	hub   *store.Hub
	log   *zap.SugaredLogger
	delay time.Duration
	now   func() time.Time

	mu       sync.RWMutex
	projects []model.Project

	nextTempID int64
	closed     chan struct{}
	closeOnce  sync.Once
}

type Option func(*Session)

func WithLogger(log *zap.SugaredLogger) Option {
	return func(s *Session) { s.log = log }
}

// WithCompletionDelay sets how long the authoritative replace after a
// completion toggle is held back. Values above one second are clamped.
func WithCompletionDelay(d time.Duration) Option {
	return func(s *Session) {
		if d > maxCompletionDelay {
			d = maxCompletionDelay
		}
		if d < 0 {
			d = 0
		}
		s.delay = d
	}
}

// WithClock overrides the time source for the date-based views.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

func New(gw Gateway, opts ...Option) *Session {
	s := &Session{
		gw:     gw,
		col:    store.NewCollection(),
		hub:    store.NewHub(),
		log:    zap.NewNop().Sugar(),
		delay:  defaultCompletionDelay,
		now:    time.Now,
		closed: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Collection exposes the underlying optimistic collection.
func (s *Session) Collection() *store.Collection { return s.col }

// Subscribe registers a listener for collection events.
func (s *Session) Subscribe(fn func(store.Event)) func() { return s.hub.Subscribe(fn) }

// Refresh fetches todos and projects as two concurrent requests and joins
// them before anything becomes visible. If either fails the whole refresh
// fails and the previous state is kept; there is no partial render of todos
// without projects.
func (s *Session) Refresh(ctx context.Context) error {
	var (
		todos    []model.Todo
		projects []model.Project
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		todos, err = s.gw.GetTodos(gctx, client.ListOptions{})
		return err
	})
	g.Go(func() error {
		var err error
		projects, err = s.gw.GetProjects(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Errorw("failed to load todos", "error", err)
		return fmt.Errorf("refresh: %w", err)
	}

	for i := range todos {
		todos[i].Status = model.NormalizeStatus(todos[i].Status)
	}
	s.col.Load(todos)
	s.mu.Lock()
	s.projects = projects
	s.mu.Unlock()
	s.hub.Publish(store.Event{Kind: store.EventLoaded})
	return nil
}

// Projects returns the projects from the last successful Refresh.
func (s *Session) Projects() []model.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Project(nil), s.projects...)
}

// Project looks up a loaded project by id, falling back to the gateway when
// it is not in the local set.
func (s *Session) Project(ctx context.Context, id int) (model.Project, error) {
	s.mu.RLock()
	for _, p := range s.projects {
		if p.ID == id {
			s.mu.RUnlock()
			return p, nil
		}
	}
	s.mu.RUnlock()
	return s.gw.GetProject(ctx, id)
}

// Add validates, inserts the todo optimistically under a temporary id, and
// confirms with the gateway. On confirmation the temporary record is swapped
// for the authoritative one; on failure the optimistic record stays.
func (s *Session) Add(ctx context.Context, todo model.Todo) store.Result {
	todo.Title = strings.TrimSpace(todo.Title)
	if todo.Title == "" {
		return store.Failed(store.ErrEmptyTitle, nil)
	}
	if todo.Status == "" {
		todo.Status = model.StatusPending
	}
	if todo.Priority == "" {
		todo.Priority = model.PriorityLow
	}

	snapshot := s.col.Snapshot()

	optimistic := todo
	optimistic.ID = int(atomic.AddInt64(&s.nextTempID, -1))
	s.col.Insert(optimistic)
	s.hub.Publish(store.Event{Kind: store.EventInserted, Todo: optimistic})

	created, err := s.gw.CreateTodo(ctx, todo)
	if err != nil {
		s.log.Errorw("failed to create todo", "title", todo.Title, "error", err)
		return store.Failed(err, snapshot)
	}

	created.Status = model.NormalizeStatus(created.Status)
	s.col.Remove(optimistic.ID)
	s.col.Insert(created)
	s.hub.Publish(store.Event{Kind: store.EventReplaced, Todo: created})
	return store.Confirmed(created)
}

// Toggle flips the completion state. The collection record is replaced
// synchronously so the checked state is immediately visible; the
// authoritative record from the gateway is applied after the configured
// delay, which is what lets the checkbox animation finish before the item
// drops out of a status-filtered view.
func (s *Session) Toggle(ctx context.Context, id int) store.Result {
	current, ok := s.col.Get(id)
	if !ok {
		return store.Failed(fmt.Errorf("todo %d not found", id), nil)
	}
	snapshot := s.col.Snapshot()

	flipped := current
	if flipped.Completed() {
		flipped.Status = model.StatusPending
		flipped.CompletedAt = nil
	} else {
		flipped.Status = model.StatusCompleted
		done := s.now()
		flipped.CompletedAt = &done
	}
	s.col.Replace(flipped)
	s.hub.Publish(store.Event{Kind: store.EventReplaced, Todo: flipped})

	updated, err := s.gw.UpdateTodo(ctx, flipped)
	if err != nil {
		s.log.Errorw("failed to toggle todo", "id", id, "error", err)
		return store.Failed(err, snapshot)
	}
	updated.Status = model.NormalizeStatus(updated.Status)

	s.afterDelay(func() {
		s.col.Replace(updated)
		s.hub.Publish(store.Event{Kind: store.EventReplaced, Todo: updated})
	})
	return store.Confirmed(updated)
}

// Update merges local edits into a full replacement record and sends it.
// The optimistic replace happens before the gateway call.
func (s *Session) Update(ctx context.Context, todo model.Todo) store.Result {
	todo.Title = strings.TrimSpace(todo.Title)
	if todo.Title == "" {
		return store.Failed(store.ErrEmptyTitle, nil)
	}

	previous, ok := s.col.Get(todo.ID)
	snapshot := s.col.Snapshot()
	if ok {
		s.col.Replace(todo)
		s.hub.Publish(store.Event{Kind: store.EventReplaced, Todo: todo})
	}

	updated, err := s.gw.UpdateTodo(ctx, todo)
	if err != nil {
		s.log.Errorw("failed to update todo", "id", todo.ID, "error", err)
		return store.Failed(err, snapshot)
	}
	updated.Status = model.NormalizeStatus(updated.Status)
	s.col.Replace(updated)

	if ok && previous.ProjectID == nil && updated.ProjectID != nil {
		s.hub.Publish(store.Event{Kind: store.EventLeftInbox, Todo: updated})
	} else {
		s.hub.Publish(store.Event{Kind: store.EventReplaced, Todo: updated})
	}
	return store.Confirmed(updated)
}

// Delete removes the todo optimistically and confirms with the gateway.
func (s *Session) Delete(ctx context.Context, id int) store.Result {
	snapshot := s.col.Snapshot()
	if removed, ok := s.col.Get(id); ok {
		s.col.Remove(id)
		s.hub.Publish(store.Event{Kind: store.EventRemoved, Todo: removed})
	}

	if err := s.gw.DeleteTodo(ctx, id); err != nil {
		s.log.Errorw("failed to delete todo", "id", id, "error", err)
		return store.Failed(err, snapshot)
	}
	return store.Confirmed(model.Todo{ID: id})
}

// Reorder submits a complete ordering of todo ids.
func (s *Session) Reorder(ctx context.Context, ids []int) error {
	if err := s.gw.ReorderTodos(ctx, ids); err != nil {
		s.log.Errorw("failed to reorder todos", "error", err)
		return err
	}
	return nil
}

// Inbox derives the view of unassigned todos. Recently created records keep
// showing here until the next full refresh even if the server already knows
// their project, covering the pagination edge the old client had.
func (s *Session) Inbox(status, search string) views.View {
	return views.Compose(s.col.Todos(), views.Options{
		Status: status,
		Custom: views.Inbox(s.col.RecentlyCreated),
		Search: search,
	})
}

// Today derives the view of todos due on the current calendar date.
func (s *Session) Today(status, search string) views.View {
	return views.Compose(s.col.Todos(), views.Options{
		Status: status,
		Custom: views.DeadlineToday(s.now()),
		Search: search,
	})
}

// Upcoming derives the seven-day forward-looking buckets.
func (s *Session) Upcoming() []views.Bucket {
	return views.Upcoming(s.col.Todos(), s.now())
}

// Logbook derives the completed todos, most recent first.
func (s *Session) Logbook() []model.Todo {
	return views.Logbook(s.col.Todos())
}

// ProjectView derives one project's todos with completion metrics.
func (s *Session) ProjectView(projectID int, status, search string) views.View {
	return views.Compose(s.col.Todos(), views.Options{
		Project: &projectID,
		Status:  status,
		Search:  search,
	})
}

// List composes an arbitrary view over the collection.
func (s *Session) List(opts views.Options) views.View {
	return views.Compose(s.col.Todos(), opts)
}

// Close stops the session. Delayed reconciles scheduled before Close become
// no-ops instead of touching state after the owner has navigated away.
func (s *Session) Close() {
	s.closeOnce.Do(func() { close(s.closed) })
}

func (s *Session) afterDelay(fn func()) {
	if s.delay <= 0 {
		select {
		case <-s.closed:
		default:
			fn()
		}
		return
	}
	time.AfterFunc(s.delay, func() {
		select {
		case <-s.closed:
		default:
			fn()
		}
	})
}
