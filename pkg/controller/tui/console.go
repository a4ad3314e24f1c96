package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/geunaseh/jeumala/pkg/admin"
	"github.com/geunaseh/jeumala/pkg/domain/interfaces"
	"github.com/geunaseh/jeumala/pkg/domain/model"
	"github.com/geunaseh/jeumala/pkg/domain/model/config"
	"github.com/geunaseh/jeumala/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

const (
	menuDashboard = "Dashboard"
	menuQuit      = "Quit"

	actionCreate   = "Create"
	actionEdit     = "Edit"
	actionDelete   = "Delete"
	actionFromText = "Create task from text"
	actionRefresh  = "Refresh"
	actionBack     = "Back"

	pickCancel = "(cancel)"
)

// Console is the interactive admin. Each screen is backed by one
// admin.Controller for the resource it shows.
type Console struct {
	api      interfaces.ResourceAPI
	tokens   interfaces.TokenSource
	schema   *config.Schema
	driver   PromptDriver
	parser   interfaces.TaskParser
	notifier interfaces.Notifier
	out      io.Writer
}

type Option func(*Console)

// WithDriver replaces the survey prompt driver
func WithDriver(d PromptDriver) Option {
	return func(c *Console) {
		c.driver = d
	}
}

// WithOutput sets where lists and notices are printed
func WithOutput(w io.Writer) Option {
	return func(c *Console) {
		c.out = w
	}
}

// WithTaskParser enables creating tasks from natural-language text
func WithTaskParser(p interfaces.TaskParser) Option {
	return func(c *Console) {
		c.parser = p
	}
}

func New(api interfaces.ResourceAPI, tokens interfaces.TokenSource, schema *config.Schema, opts ...Option) *Console {
	c := &Console{
		api:    api,
		tokens: tokens,
		schema: schema,
		out:    os.Stdout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.driver == nil {
		c.driver = NewSurveyDriver(c.out)
	}
	c.notifier = newColorNotifier(c.out)
	return c
}

// screens returns the resources that have an admin screen
func (c *Console) screens() []*config.ResourceSchema {
	var result []*config.ResourceSchema
	for i := range c.schema.Resources {
		if !c.schema.Resources[i].Hidden {
			result = append(result, &c.schema.Resources[i])
		}
	}
	return result
}

// Run shows the main menu until the user quits or interrupts
func (c *Console) Run(ctx context.Context) error {
	screens := c.screens()
	options := []string{menuDashboard}
	for _, s := range screens {
		options = append(options, s.Title)
	}
	options = append(options, menuQuit)

	for {
		idx, err := c.driver.Select(ctx, SelectConfig{
			Message:  "Geunaseh Jeumala Admin",
			Options:  options,
			PageSize: len(options),
		})
		if errors.Is(err, ErrAborted) {
			return nil
		}
		if err != nil {
			return goerr.Wrap(err, "failed to read menu choice")
		}

		switch {
		case idx == 0:
			c.showDashboard(ctx)
		case idx > 0 && idx <= len(screens):
			if err := c.runScreen(ctx, screens[idx-1]); err != nil {
				if errors.Is(err, ErrAborted) {
					return nil
				}
				return err
			}
		default:
			return nil
		}
	}
}

func (c *Console) title(name types.ResourceName) string {
	for _, r := range c.schema.Resources {
		if r.Endpoint == name {
			return r.Title
		}
	}
	return name.String()
}

func (c *Console) showDashboard(ctx context.Context) {
	counts := admin.LoadDashboard(ctx, c.api, c.tokens, admin.DashboardResources)

	_, _ = color.New(color.Bold).Fprintln(c.out, "\nDashboard")
	for _, dc := range counts {
		_, _ = fmt.Fprintf(c.out, "  %-12s %d\n", c.title(dc.Resource), dc.Count)
	}
	_, _ = fmt.Fprintln(c.out)
}

func (c *Console) newController(schema *config.ResourceSchema) *admin.Controller {
	opts := []admin.Option{
		admin.WithNotifier(c.notifier),
		admin.WithConfirmer(&driverConfirmer{driver: c.driver}),
	}
	if c.parser != nil && schema.Endpoint == types.ResourceTasks {
		opts = append(opts, admin.WithTaskParser(c.parser))
	}
	return admin.New(schema, c.api, c.tokens, opts...)
}

func (c *Console) runScreen(ctx context.Context, schema *config.ResourceSchema) error {
	ctrl := c.newController(schema)
	ctrl.Mount(ctx)
	defer ctrl.Unmount()

	actions := []string{actionCreate, actionEdit, actionDelete}
	if c.parser != nil && schema.Endpoint == types.ResourceTasks {
		actions = append(actions, actionFromText)
	}
	actions = append(actions, actionRefresh, actionBack)

	for {
		c.printItems(ctrl)

		idx, err := c.driver.Select(ctx, SelectConfig{Message: schema.Title, Options: actions})
		if err != nil {
			return err
		}

		switch actions[idx] {
		case actionCreate:
			if err := ctrl.BeginCreate(); err != nil {
				return err
			}
			if err := c.edit(ctx, ctrl); err != nil {
				return err
			}

		case actionEdit:
			item, err := c.pickItem(ctx, ctrl, "Edit which item?")
			if err != nil {
				return err
			}
			if item == nil {
				continue
			}
			if err := ctrl.BeginEdit(item); err != nil {
				return err
			}
			if err := c.edit(ctx, ctrl); err != nil {
				return err
			}

		case actionDelete:
			item, err := c.pickItem(ctx, ctrl, "Delete which item?")
			if err != nil {
				return err
			}
			if item == nil {
				continue
			}
			if err := ctrl.Delete(ctx, item.ID()); err != nil {
				return err
			}

		case actionFromText:
			text, err := c.driver.TextArea(ctx, InputConfig{
				Message: "Describe the task",
				Help:    "The text becomes the description; its beginning becomes the title",
			})
			if err != nil {
				return err
			}
			if err := ctrl.BeginFromText(ctx, text); err != nil {
				return err
			}
			if ctrl.State() == admin.StateEditing {
				if err := c.edit(ctx, ctrl); err != nil {
					return err
				}
			}

		case actionRefresh:
			if err := ctrl.Refresh(ctx); err != nil {
				return err
			}

		case actionBack:
			return nil
		}
	}
}

func (c *Console) printItems(ctrl *admin.Controller) {
	items := ctrl.Items()
	_, _ = color.New(color.Bold).Fprintf(c.out, "\n%s (%d)\n", ctrl.Title(), len(items))
	if len(items) == 0 {
		_, _ = fmt.Fprintln(c.out, "  No items yet")
	}
	for i, item := range items {
		_, _ = fmt.Fprintf(c.out, "  %2d. %s\n", i+1, ctrl.Render(item))
	}
	_, _ = fmt.Fprintln(c.out)
}

// pickItem returns nil when the list is empty or the user cancels
func (c *Console) pickItem(ctx context.Context, ctrl *admin.Controller, message string) (model.Record, error) {
	items := ctrl.Items()
	if len(items) == 0 {
		return nil, c.driver.Info(ctx, "Nothing to choose from")
	}

	options := make([]string, 0, len(items)+1)
	for i, item := range items {
		options = append(options, fmt.Sprintf("%d. %s", i+1, ctrl.Render(item)))
	}
	options = append(options, pickCancel)

	idx, err := c.driver.Select(ctx, SelectConfig{Message: message, Options: options})
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(items) {
		return nil, nil
	}
	return items[idx], nil
}

// edit prompts every field of the open draft and submits it. A validation
// failure or a failed save lets the user revise the draft or give up.
func (c *Console) edit(ctx context.Context, ctrl *admin.Controller) error {
	for {
		if err := c.promptFields(ctx, ctrl); err != nil {
			ctrl.Cancel()
			return err
		}

		err := ctrl.Submit(ctx)
		var ve *model.ValidationError
		switch {
		case errors.As(err, &ve):
			label := ve.Field
			for _, f := range ctrl.Fields() {
				if f.Name == ve.Field {
					label = f.Label
				}
			}
			c.notifier.Notify(label+" is required", types.NoticeError)
		case err != nil:
			ctrl.Cancel()
			return err
		case !ctrl.DialogOpen():
			return nil
		}

		again, err := c.driver.Confirm(ctx, ConfirmConfig{Message: "Continue editing?", Default: true})
		if err != nil {
			ctrl.Cancel()
			return err
		}
		if !again {
			ctrl.Cancel()
			return nil
		}
	}
}

func (c *Console) promptFields(ctx context.Context, ctrl *admin.Controller) error {
	draft := ctrl.Draft()
	for _, f := range ctrl.Fields() {
		raw, err := c.promptField(ctx, f, displayValue(f, draft[f.Name]))
		if err != nil {
			return err
		}
		if err := ctrl.SetField(f.Name, raw); err != nil {
			return err
		}
	}
	return nil
}

// promptField asks for one field with the prompt matching its kind and
// returns the raw input
func (c *Console) promptField(ctx context.Context, f config.FieldDescriptor, current string) (string, error) {
	message := f.Label
	if f.Required {
		message += " *"
	}
	cfg := InputConfig{Message: message, Default: current}

	switch f.Kind {
	case types.FieldKindPassword:
		return c.driver.Password(ctx, cfg)

	case types.FieldKindTextArea:
		return c.driver.TextArea(ctx, cfg)

	case types.FieldKindSelect:
		options := make([]string, len(f.Options))
		def := 0
		for i, o := range f.Options {
			options[i] = o.Label
			if o.Value == current {
				def = i
			}
		}
		idx, err := c.driver.Select(ctx, SelectConfig{Message: message, Options: options, DefaultIndex: def})
		if err != nil {
			return "", err
		}
		if idx < 0 || idx >= len(f.Options) {
			return current, nil
		}
		return f.Options[idx].Value, nil

	case types.FieldKindTags:
		cfg.Help = "Comma separated"
	case types.FieldKindNumber:
		cfg.Help = "Whole number"
	case types.FieldKindDate:
		cfg.Help = "YYYY-MM-DD"
	case types.FieldKindDateTime:
		cfg.Help = "YYYY-MM-DDTHH:MM"
	}
	return c.driver.Input(ctx, cfg)
}

// displayValue renders a stored value as the raw text a prompt would accept
func displayValue(f config.FieldDescriptor, v any) string {
	if v == nil {
		return ""
	}
	switch f.Kind {
	case types.FieldKindTags:
		return model.JoinTags(model.StringSlice(v))
	case types.FieldKindNumber:
		switch n := v.(type) {
		case int:
			return strconv.Itoa(n)
		case int64:
			return strconv.FormatInt(n, 10)
		case float64:
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
