package admin

import (
	"context"
	"fmt"
	"sync"

	"github.com/geunaseh/jeumala/pkg/domain/interfaces"
	"github.com/geunaseh/jeumala/pkg/domain/model"
	"github.com/geunaseh/jeumala/pkg/domain/model/config"
	"github.com/geunaseh/jeumala/pkg/domain/types"
	"github.com/geunaseh/jeumala/pkg/utils/errutil"
	"github.com/geunaseh/jeumala/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// Controller owns the CRUD lifecycle of one resource collection against the
// REST API. All methods are safe for concurrent use; network calls run
// without holding the lock.
type Controller struct {
	schema    *config.ResourceSchema
	form      *model.Form
	api       interfaces.ResourceAPI
	tokens    interfaces.TokenSource
	notifier  interfaces.Notifier
	confirmer interfaces.Confirmer
	parser    interfaces.TaskParser
	render    func(model.Record) string

	mu         sync.Mutex
	state      State
	items      []model.Record
	draft      model.Record
	editingID  string
	dialogOpen bool
	submitting bool
	active     bool
	// generation changes on every Mount and Unmount; a response is applied
	// only if the generation it was issued under is still current
	generation uint64
}

// Option is a functional option for Controller
type Option func(*Controller)

// WithNotifier sets where success and failure messages are shown
func WithNotifier(n interfaces.Notifier) Option {
	return func(c *Controller) {
		c.notifier = n
	}
}

// WithConfirmer sets the callback asked before deleting
func WithConfirmer(cf interfaces.Confirmer) Option {
	return func(c *Controller) {
		c.confirmer = cf
	}
}

// WithTaskParser enables BeginFromText
func WithTaskParser(p interfaces.TaskParser) Option {
	return func(c *Controller) {
		c.parser = p
	}
}

// WithItemRenderer sets how an item is summarised in lists
func WithItemRenderer(fn func(model.Record) string) Option {
	return func(c *Controller) {
		c.render = fn
	}
}

// New creates a controller for one (title, endpoint, descriptors) configuration
func New(schema *config.ResourceSchema, api interfaces.ResourceAPI, tokens interfaces.TokenSource, opts ...Option) *Controller {
	c := &Controller{
		schema:    schema,
		form:      model.NewForm(schema.Fields),
		api:       api,
		tokens:    tokens,
		notifier:  logNotifier{},
		confirmer: denyConfirmer{},
		render:    defaultRender(schema),
		state:     StateIdle,
		items:     []model.Record{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Title returns the display title of the resource
func (c *Controller) Title() string { return c.schema.Title }

// Endpoint returns the REST endpoint name
func (c *Controller) Endpoint() types.ResourceName { return c.schema.Endpoint }

// Fields returns the descriptors driving the edit surface
func (c *Controller) Fields() []config.FieldDescriptor { return c.form.Fields() }

// Render summarises an item with the configured renderer
func (c *Controller) Render(item model.Record) string { return c.render(item) }

// State returns the current lifecycle state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Items returns a copy of the last fetched collection
func (c *Controller) Items() []model.Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	return model.CloneRecords(c.items)
}

// Draft returns a copy of the record being edited, or nil
func (c *Controller) Draft() model.Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.Clone()
}

// EditingID returns the id of the item being updated, or empty for a new item
func (c *Controller) EditingID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editingID
}

// DialogOpen reports whether the edit surface is presented
func (c *Controller) DialogOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dialogOpen
}

// Submitting reports whether a create or update call is in flight
func (c *Controller) Submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitting
}

// Mount starts a session and fetches the collection. A failed fetch yields
// an empty list and is only logged.
func (c *Controller) Mount(ctx context.Context) {
	c.mu.Lock()
	c.active = true
	c.generation++
	gen := c.generation
	c.state = StateListing
	c.mu.Unlock()

	items := c.fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.current(gen) {
		logging.From(ctx).Debug("discarding list response of inactive session", "resource", c.schema.Endpoint)
		return
	}
	c.items = items
	c.state = StateReady
}

// Unmount ends the session. Responses still in flight are discarded on arrival.
func (c *Controller) Unmount() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = false
	c.generation++
	c.state = StateIdle
	c.draft = nil
	c.editingID = ""
	c.dialogOpen = false
	c.submitting = false
}

// Refresh re-fetches the collection
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StateReady {
		state := c.state
		c.mu.Unlock()
		return goerr.Wrap(ErrNotReady, "cannot refresh", goerr.V(StateKey, state.String()))
	}
	gen := c.generation
	c.mu.Unlock()

	items := c.fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current(gen) {
		c.items = items
	}
	return nil
}

func (c *Controller) current(gen uint64) bool {
	return c.active && c.generation == gen
}

func (c *Controller) fetch(ctx context.Context) []model.Record {
	records, err := c.api.List(ctx, c.schema.Endpoint, c.tokens.Token())
	if err != nil {
		logging.From(ctx).Warn("failed to fetch items",
			"resource", c.schema.Endpoint, "error", err.Error())
		return []model.Record{}
	}
	if records == nil {
		return []model.Record{}
	}
	return records
}

// BeginCreate opens the edit surface with an empty draft
func (c *Controller) BeginCreate() error {
	return c.openEditor(nil, "")
}

// BeginEdit opens the edit surface with a copy of item
func (c *Controller) BeginEdit(item model.Record) error {
	id := item.ID()
	if id == "" {
		return goerr.Wrap(ErrNoRecordID, "cannot edit item", goerr.V(ResourceKey, c.schema.Endpoint))
	}
	return c.openEditor(item, id)
}

// BeginFromText asks the task parser for a draft and opens the edit surface
// with it as a new item. Parser failures are notified and leave the state
// unchanged.
func (c *Controller) BeginFromText(ctx context.Context, text string) error {
	if c.parser == nil {
		return goerr.Wrap(ErrNoTaskParser, "cannot create from text")
	}

	c.mu.Lock()
	if c.state != StateReady {
		state := c.state
		c.mu.Unlock()
		return goerr.Wrap(ErrNotReady, "cannot create from text", goerr.V(StateKey, state.String()))
	}
	gen := c.generation
	c.mu.Unlock()

	draft, err := c.parser.ParseTask(ctx, text)
	if err != nil {
		_ = errutil.Handle(ctx, err, "failed to parse task text")
		c.notifier.Notify("Failed to create task from text", types.NoticeError)
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.current(gen) || c.state != StateReady {
		return nil
	}
	c.draft = c.form.InitializeDraft(draft)
	c.editingID = ""
	c.dialogOpen = true
	c.state = StateEditing
	return nil
}

func (c *Controller) openEditor(source model.Record, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateReady {
		return goerr.Wrap(ErrNotReady, "cannot open editor",
			goerr.V(StateKey, c.state.String()), goerr.V(ResourceKey, c.schema.Endpoint))
	}
	c.draft = c.form.InitializeDraft(source)
	c.editingID = id
	c.dialogOpen = true
	c.state = StateEditing
	return nil
}

// SetField writes one field of the draft through the form engine
func (c *Controller) SetField(name, raw string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateEditing {
		return goerr.Wrap(ErrNotEditing, "cannot set field", goerr.V(StateKey, c.state.String()))
	}
	next, err := c.form.SetField(c.draft, name, raw)
	if err != nil {
		return err
	}
	c.draft = next
	return nil
}

// Cancel discards the draft and closes the edit surface. It has no effect
// while a submission is in flight.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateEditing {
		return
	}
	c.closeEditor()
}

func (c *Controller) closeEditor() {
	c.draft = nil
	c.editingID = ""
	c.dialogOpen = false
	c.state = StateReady
}

// Submit validates the draft and sends it as an update when editing an
// existing item, otherwise as a create. Only a *model.ValidationError is
// returned; transport failures are notified and logged, leaving the draft
// open. A call while another submission is in flight does nothing.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.submitting || c.state != StateEditing {
		c.mu.Unlock()
		return nil
	}
	payload, err := c.form.Serialize(c.draft)
	if err != nil {
		c.mu.Unlock()
		return err
	}
	c.submitting = true
	c.state = StateSubmitting
	gen := c.generation
	id := c.editingID
	c.mu.Unlock()

	token := c.tokens.Token()
	if id != "" {
		err = c.api.Update(ctx, c.schema.Endpoint, token, id, payload)
	} else {
		err = c.api.Create(ctx, c.schema.Endpoint, token, payload)
	}

	if err != nil {
		c.mu.Lock()
		if !c.current(gen) {
			c.mu.Unlock()
			return nil
		}
		c.submitting = false
		c.state = StateEditing
		c.mu.Unlock()

		_ = errutil.Handle(ctx, goerr.Wrap(err, "failed to save item",
			goerr.V(ResourceKey, c.schema.Endpoint), goerr.V(RecordIDKey, id)), "submit failed")
		c.notifier.Notify(fmt.Sprintf("Failed to save %s", c.schema.Title), types.NoticeError)
		return nil
	}

	items := c.fetch(ctx)

	c.mu.Lock()
	if !c.current(gen) {
		c.mu.Unlock()
		return nil
	}
	c.items = items
	c.submitting = false
	c.closeEditor()
	c.mu.Unlock()

	c.notifier.Notify(fmt.Sprintf("%s saved", c.schema.Title), types.NoticeSuccess)
	return nil
}

// Delete asks for confirmation and removes item id. Declining does nothing.
// Failures are notified and logged; the collection is left unchanged.
func (c *Controller) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	if c.state != StateReady {
		state := c.state
		c.mu.Unlock()
		return goerr.Wrap(ErrNotReady, "cannot delete", goerr.V(StateKey, state.String()))
	}
	c.state = StateConfirmingDelete
	gen := c.generation
	c.mu.Unlock()

	confirmed := c.confirmer.Confirm(ctx, fmt.Sprintf("Delete this item from %s?", c.schema.Title))
	if !confirmed {
		c.mu.Lock()
		if c.current(gen) {
			c.state = StateReady
		}
		c.mu.Unlock()
		return nil
	}

	if err := c.api.Delete(ctx, c.schema.Endpoint, c.tokens.Token(), id); err != nil {
		c.mu.Lock()
		if !c.current(gen) {
			c.mu.Unlock()
			return nil
		}
		c.state = StateReady
		c.mu.Unlock()

		_ = errutil.Handle(ctx, goerr.Wrap(err, "failed to delete item",
			goerr.V(ResourceKey, c.schema.Endpoint), goerr.V(RecordIDKey, id)), "delete failed")
		c.notifier.Notify(fmt.Sprintf("Failed to delete from %s", c.schema.Title), types.NoticeError)
		return nil
	}

	items := c.fetch(ctx)

	c.mu.Lock()
	if !c.current(gen) {
		c.mu.Unlock()
		return nil
	}
	c.items = items
	c.state = StateReady
	c.mu.Unlock()

	c.notifier.Notify(fmt.Sprintf("Deleted from %s", c.schema.Title), types.NoticeSuccess)
	return nil
}
