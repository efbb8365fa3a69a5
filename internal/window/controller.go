package window

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/sandeepkv93/todo/internal/filter"
	"github.com/sandeepkv93/todo/internal/logging"
	"github.com/sandeepkv93/todo/internal/model"
	"github.com/sandeepkv93/todo/internal/observable"
	"github.com/sandeepkv93/todo/internal/settings"
	"github.com/sandeepkv93/todo/internal/storage"
)

var (
	ErrEmptyTitle        = errors.New("window: collection title must not be empty")
	ErrEmptyContent      = errors.New("window: task content must not be empty")
	ErrUnknownCollection = errors.New("window: unknown collection")
	ErrNoCollections     = errors.New("window: no collections")
	ErrRowOutOfRange     = errors.New("window: task row out of range")
	ErrAlreadyLoaded     = errors.New("window: state already loaded")
)

type State string

const (
	StateNoCollections  State = "NoCollections"
	StateHasCollections State = "HasCollections"
)

// Page is the visible child of the main stack.
type Page string

const (
	PagePlaceholder Page = "placeholder"
	PageMain        Page = "main"
)

// NewCollectionPrompt is the dialog issued by NewCollection.
var NewCollectionPrompt = Prompt{
	Heading:     "New Collection",
	Placeholder: "Name",
	Confirm:     "Create",
	Cancel:      "Cancel",
}

// Controller owns the collections of the window and the selection into them.
// It is not safe for concurrent use: every method must run on the UI loop.
type Controller struct {
	store    settings.Store
	dataPath string
	log      zerolog.Logger

	collections *observable.List[*model.Collection]
	currentID   string
	view        *observable.Filtered[*model.Task]
	setting     filter.Setting

	page            Page
	showContent     bool
	taskListVisible bool
	loaded          bool

	cancels        []func()
	currentCancels []func()
	taskWatchers   []func()
}

type Option func(*Controller)

func WithLogger(log zerolog.Logger) Option {
	return func(c *Controller) { c.log = log }
}

// WithDataPath sets the JSON file read by Load and written by Close.
func WithDataPath(path string) Option {
	return func(c *Controller) { c.dataPath = path }
}

func New(store settings.Store, opts ...Option) *Controller {
	c := &Controller{
		store:       store,
		log:         zerolog.Nop(),
		collections: observable.NewList[*model.Collection](),
		setting:     filter.All,
		page:        PagePlaceholder,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = logging.Component(c.log, "window")

	c.cancels = append(c.cancels,
		c.collections.Subscribe(func(observable.Change) { c.onCollectionsChanged() }),
		store.OnChange(filter.Key, func(v string) { c.applyFilter(filter.Setting(v)) }),
	)
	return c
}

// Load restores persisted collections. It runs once, before any other
// transition; a malformed file is returned as an error and nothing is restored.
func (c *Controller) Load(ctx context.Context) error {
	if c.loaded {
		return ErrAlreadyLoaded
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	// A corrupt stored filter is fatal here, before any collection exists.
	c.setting = c.readFilter()
	c.predicate(c.setting)

	data, err := storage.Load(c.dataPath)
	if err != nil {
		return fmt.Errorf("restore collections: %w", err)
	}
	c.loaded = true

	restored := make([]*model.Collection, 0, len(data))
	for _, d := range data {
		restored = append(restored, model.CollectionFromData(d))
	}
	c.collections.Extend(restored)
	if len(restored) > 0 {
		c.setCurrent(restored[0])
	}
	c.log.Info().Str("path", c.dataPath).Int("collections", len(restored)).Msg("state restored")
	return nil
}

// Close saves every collection, in order, and detaches all subscriptions.
func (c *Controller) Close(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	items := c.collections.Items()
	data := make([]model.CollectionData, 0, len(items))
	for _, col := range items {
		data = append(data, col.ToData())
	}
	err := storage.Save(c.dataPath, data)
	c.detachCurrent()
	for _, cancel := range c.cancels {
		cancel()
	}
	c.cancels = nil
	if err != nil {
		return fmt.Errorf("save collections: %w", err)
	}
	c.log.Info().Str("path", c.dataPath).Int("collections", len(data)).Msg("state saved")
	return nil
}

func (c *Controller) State() State {
	if c.collections.Len() == 0 {
		return StateNoCollections
	}
	return StateHasCollections
}

func (c *Controller) StackPage() Page       { return c.page }
func (c *Controller) ShowContent() bool     { return c.showContent }
func (c *Controller) TaskListVisible() bool { return c.taskListVisible }
func (c *Controller) Filter() filter.Setting {
	return c.setting
}

// HideContent returns from the detail view to the collection list.
func (c *Controller) HideContent() { c.showContent = false }

func (c *Controller) Collections() *observable.List[*model.Collection] {
	return c.collections
}

// Tasks is the filtered view over the current collection, or nil when no
// collection is current.
func (c *Controller) Tasks() *observable.Filtered[*model.Task] {
	return c.view
}

func (c *Controller) HasCurrent() bool {
	return c.currentIndex() >= 0
}

// CurrentCollection panics when nothing is current; callers that can run
// before a collection exists must check HasCurrent first.
func (c *Controller) CurrentCollection() *model.Collection {
	idx := c.currentIndex()
	if idx < 0 {
		panic("window: current collection is not set")
	}
	col, _ := c.collections.ItemAt(idx)
	return col
}

// CurrentIndex is the row of the current collection, or -1.
func (c *Controller) CurrentIndex() int {
	return c.currentIndex()
}

func (c *Controller) currentIndex() int {
	if c.currentID == "" {
		return -1
	}
	return c.collections.IndexFunc(func(col *model.Collection) bool { return col.ID == c.currentID })
}

// CreateCollection appends an empty collection, makes it current and asks for
// the detail view.
func (c *Controller) CreateCollection(title string) (*model.Collection, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	col := model.NewCollection(title, nil)
	c.collections.Append(col)
	c.setCurrent(col)
	c.showContent = true
	c.log.Info().Str("title", title).Int("collections", c.collections.Len()).Msg("collection created")
	return col, nil
}

// AwaitTitle waits for the answer to a new-collection prompt without touching
// state, so it may run off the UI loop. ok is false on cancel or an empty title.
func (c *Controller) AwaitTitle(ctx context.Context, f Future) (string, bool) {
	r := Await(ctx, f)
	if !r.OK || r.Text == "" {
		return "", false
	}
	return r.Text, true
}

// NewCollection is the whole dialog flow: prompt, wait, create. A cancelled
// prompt leaves the state untouched and returns ok == false.
func (c *Controller) NewCollection(ctx context.Context, p Prompter) (*model.Collection, bool, error) {
	title, ok := c.AwaitTitle(ctx, p.RequestInput(ctx, NewCollectionPrompt))
	if !ok {
		c.log.Debug().Msg("new collection cancelled")
		return nil, false, nil
	}
	col, err := c.CreateCollection(title)
	if err != nil {
		return nil, false, err
	}
	return col, true, nil
}

func (c *Controller) SelectCollection(id string) error {
	if c.collections.Len() == 0 {
		return ErrNoCollections
	}
	idx := c.collections.IndexFunc(func(col *model.Collection) bool { return col.ID == id })
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownCollection, id)
	}
	return c.SelectIndex(idx)
}

// SelectIndex activates the collection row at idx.
func (c *Controller) SelectIndex(idx int) error {
	if c.collections.Len() == 0 {
		return ErrNoCollections
	}
	col, ok := c.collections.ItemAt(idx)
	if !ok {
		return fmt.Errorf("%w: row %d", ErrUnknownCollection, idx)
	}
	c.setCurrent(col)
	c.showContent = true
	c.log.Debug().Str("title", col.Title()).Int("row", idx).Msg("collection selected")
	return nil
}

// AddTask appends an open task to the current collection. Only the empty
// string is rejected; whitespace is kept as typed.
func (c *Controller) AddTask(content string) bool {
	if content == "" {
		return false
	}
	c.CurrentCollection().Tasks().Append(model.NewTask(false, content))
	return true
}

// ToggleTask flips the task shown at row of the filtered view.
func (c *Controller) ToggleTask(row int) error {
	task, err := c.taskAt(row)
	if err != nil {
		return err
	}
	task.Toggle()
	return nil
}

func (c *Controller) EditTask(row int, content string) error {
	if content == "" {
		return ErrEmptyContent
	}
	task, err := c.taskAt(row)
	if err != nil {
		return err
	}
	task.SetContent(content)
	return nil
}

func (c *Controller) taskAt(row int) (*model.Task, error) {
	c.CurrentCollection()
	task, ok := c.view.ItemAt(row)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrRowOutOfRange, row)
	}
	return task, nil
}

// RemoveDoneTasks drops every completed task of the current collection in a
// single pass, keeping the order of the rest. It returns how many went.
func (c *Controller) RemoveDoneTasks() int {
	tasks := c.CurrentCollection().Tasks()
	removed := 0
	for pos := 0; pos < tasks.Len(); {
		task, _ := tasks.ItemAt(pos)
		if task.Completed() {
			tasks.RemoveAt(pos)
			removed++
			continue
		}
		pos++
	}
	if removed > 0 {
		c.log.Info().Int("removed", removed).Msg("done tasks removed")
	}
	return removed
}

// SetFilter writes the filter setting; the view follows via the store's
// change notification.
func (c *Controller) SetFilter(s filter.Setting) error {
	return c.store.Set(filter.Key, string(s))
}

func (c *Controller) CycleFilter() error {
	return c.SetFilter(filter.Next(c.setting))
}

func (c *Controller) setCurrent(col *model.Collection) {
	c.detachCurrent()

	c.currentID = col.ID
	c.setting = c.readFilter()
	c.view = observable.NewFiltered(col.Tasks(), c.predicate(c.setting))

	tasks := col.Tasks()
	c.watchTasks(tasks)
	c.updateTaskListVisible()
	c.currentCancels = append(c.currentCancels, tasks.Subscribe(func(observable.Change) {
		c.watchTasks(tasks)
		c.updateTaskListVisible()
	}))
}

func (c *Controller) detachCurrent() {
	for _, cancel := range c.currentCancels {
		cancel()
	}
	c.currentCancels = nil
	c.unwatchTasks()
	if c.view != nil {
		c.view.Close()
		c.view = nil
	}
}

// watchTasks refilters the view whenever a task of the current collection
// changes, so a toggled task leaves an Open or Done view.
func (c *Controller) watchTasks(tasks *observable.List[*model.Task]) {
	c.unwatchTasks()
	for _, t := range tasks.Items() {
		c.taskWatchers = append(c.taskWatchers, t.Subscribe(func(*model.Task) {
			if c.view != nil {
				c.view.Refilter()
			}
		}))
	}
}

func (c *Controller) unwatchTasks() {
	for _, cancel := range c.taskWatchers {
		cancel()
	}
	c.taskWatchers = nil
}

func (c *Controller) updateTaskListVisible() {
	if !c.HasCurrent() {
		c.taskListVisible = false
		return
	}
	c.taskListVisible = c.CurrentCollection().Tasks().Len() > 0
}

func (c *Controller) onCollectionsChanged() {
	if c.currentID != "" && c.currentIndex() < 0 {
		c.currentID = ""
		c.detachCurrent()
		c.showContent = false
		c.taskListVisible = false
	}
	if c.collections.Len() > 0 {
		c.page = PageMain
	} else {
		c.page = PagePlaceholder
	}
}

func (c *Controller) applyFilter(s filter.Setting) {
	pred := c.predicate(s)
	c.setting = s
	c.log.Info().Str("filter", string(s)).Msg("filter changed")
	if c.view != nil {
		c.view.SetPredicate(pred)
	}
}

func (c *Controller) readFilter() filter.Setting {
	v, err := c.store.Get(filter.Key)
	if err != nil {
		panic(fmt.Sprintf("window: read filter setting: %v", err))
	}
	return filter.Setting(v)
}

// predicate turns a setting into a view predicate. The settings schema fixes
// the permitted values, so anything else means the store is corrupt.
func (c *Controller) predicate(s filter.Setting) func(*model.Task) bool {
	p, err := filter.For(s)
	if err != nil {
		c.log.Error().Err(err).Msg("filter setting corrupt")
		panic(err)
	}
	return p
}
