package store

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vibeos/vibe-os/internal/logging"
	"github.com/vibeos/vibe-os/internal/model"
)

// Snapshot is everything the app persists.
type Snapshot struct {
	Tasks    []model.Task
	Habits   []model.Habit
	Sessions []model.FocusSession
	Theme    string
}

// Repository mirrors the lists to a KV backend. Each list is read once and
// overwritten wholesale on every change.
type Repository struct {
	kv           KV
	log          *logrus.Entry
	defaultTheme string

	mu        sync.Mutex
	committed map[string]uint64
}

// NewRepository wraps kv. A nil log discards messages.
func NewRepository(kv KV, log *logrus.Entry) *Repository {
	if log == nil {
		log = logging.Discard()
	}
	return &Repository{
		kv:           kv,
		log:          log,
		defaultTheme: model.DefaultTheme,
		committed:    make(map[string]uint64),
	}
}

// SetDefaultTheme sets the theme used while none is stored. Unknown names
// are ignored.
func (r *Repository) SetDefaultTheme(name string) {
	if model.IsTheme(name) {
		r.defaultTheme = name
	}
}

// Close closes the backend.
func (r *Repository) Close() error {
	return r.kv.Close()
}

// Load reads every key and resets habits that were not completed today.
// When the reset changes anything the habit list is written back.
func (r *Repository) Load(today string) (Snapshot, error) {
	var s Snapshot
	var err error

	if s.Tasks, err = r.LoadTasks(); err != nil {
		return s, err
	}
	if s.Habits, err = r.LoadHabits(today); err != nil {
		return s, err
	}
	if s.Sessions, err = r.LoadSessions(); err != nil {
		return s, err
	}
	if s.Theme, err = r.LoadTheme(); err != nil {
		return s, err
	}
	return s, nil
}

// LoadTasks returns the stored tasks, or an empty list when nothing valid is stored.
func (r *Repository) LoadTasks() ([]model.Task, error) {
	return loadList[model.Task](r, KeyTasks)
}

// LoadHabits returns the stored habits with the daily reset applied.
func (r *Repository) LoadHabits(today string) ([]model.Habit, error) {
	habits, err := loadList[model.Habit](r, KeyHabits)
	if err != nil {
		return nil, err
	}

	reset, changed := model.ResetHabitsForDay(habits, today)
	if changed {
		r.log.WithField("date", today).Info("reset habits for new day")
		if err := r.SaveHabits(reset); err != nil {
			return reset, err
		}
	}
	return reset, nil
}

// LoadSessions returns the recorded focus sessions.
func (r *Repository) LoadSessions() ([]model.FocusSession, error) {
	return loadList[model.FocusSession](r, KeySessions)
}

// LoadTheme returns the stored theme name, falling back to the default.
func (r *Repository) LoadTheme() (string, error) {
	v, ok, err := r.kv.Get(KeyTheme)
	if err != nil {
		return r.defaultTheme, err
	}
	if !ok {
		return r.defaultTheme, nil
	}

	var name string
	if err := json.Unmarshal([]byte(v), &name); err != nil {
		// Older data stored the bare name.
		name = v
	}
	if !model.IsTheme(name) {
		r.log.WithField("theme", name).Warn("unknown theme, using default")
		return r.defaultTheme, nil
	}
	return name, nil
}

func (r *Repository) SaveTasks(tasks []model.Task) error {
	return r.saveJSON(KeyTasks, nonNil(tasks))
}

func (r *Repository) SaveHabits(habits []model.Habit) error {
	return r.saveJSON(KeyHabits, nonNil(habits))
}

func (r *Repository) SaveSessions(sessions []model.FocusSession) error {
	return r.saveJSON(KeySessions, nonNil(sessions))
}

func (r *Repository) SaveTheme(name string) error {
	return r.saveJSON(KeyTheme, name)
}

// Save writes every list of the snapshot.
func (r *Repository) Save(s Snapshot) error {
	if err := r.SaveTasks(s.Tasks); err != nil {
		return err
	}
	if err := r.SaveHabits(s.Habits); err != nil {
		return err
	}
	if err := r.SaveSessions(s.Sessions); err != nil {
		return err
	}
	return r.SaveTheme(s.Theme)
}

// Commit writes v under key unless a write with a higher version already
// landed. Writes issued concurrently from snapshots therefore never let an
// older snapshot overwrite a newer one. It reports whether v was written.
func (r *Repository) Commit(key string, version uint64, v any) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if version <= r.committed[key] {
		return false, nil
	}
	if err := r.saveJSON(key, v); err != nil {
		return false, err
	}
	r.committed[key] = version
	return true, nil
}

// NewSession builds a focus session record with a fresh id.
func NewSession(mode, task string, at time.Time) model.FocusSession {
	return model.FocusSession{
		ID:          uuid.NewString(),
		Mode:        mode,
		Task:        task,
		CompletedAt: at,
	}
}

// AppendSession loads the stored sessions, appends one and writes them back.
// The TUI keeps sessions in memory; this is for headless runs.
func (r *Repository) AppendSession(fs model.FocusSession) ([]model.FocusSession, error) {
	sessions, err := r.LoadSessions()
	if err != nil {
		return nil, err
	}
	sessions = append(sessions, fs)
	return sessions, r.SaveSessions(sessions)
}

func loadList[T any](r *Repository, key string) ([]T, error) {
	v, ok, err := r.kv.Get(key)
	if err != nil {
		return nil, err
	}
	if !ok || v == "" {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal([]byte(v), &items); err != nil {
		r.log.WithError(err).WithField("key", key).Warn("malformed stored data, starting empty")
		return []T{}, nil
	}
	return nonNil(items), nil
}

func (r *Repository) saveJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return &Error{Op: "encode", Key: key, Err: err}
	}
	if err := r.kv.Set(key, string(data)); err != nil {
		return err
	}
	r.log.WithField("key", key).Debug("saved")
	return nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
