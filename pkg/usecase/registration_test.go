package usecase_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/geunaseh/jeumala/pkg/domain/model"
	"github.com/geunaseh/jeumala/pkg/domain/types"
	"github.com/geunaseh/jeumala/pkg/usecase"
	"github.com/m-mizutani/gt"
)

type notification struct {
	event        map[string]any
	registration map[string]any
}

type fakeRegistrationNotifier struct {
	ch chan notification
}

func (f *fakeRegistrationNotifier) NotifyRegistration(ctx context.Context, event, registration map[string]any) error {
	f.ch <- notification{event: event, registration: registration}
	return nil
}

func TestRegistrationUseCase(t *testing.T) {
	ctx := context.Background()
	notifier := &fakeRegistrationNotifier{ch: make(chan notification, 4)}
	uc := newTestUseCases(t, usecase.WithRegistrationNotifier(notifier))

	event, err := uc.Resource.Create(ctx, types.ResourceEvents, model.Record{
		"title": "Seminar", "slug": "seminar", "date": "2025-07-15",
	})
	gt.NoError(t, err).Required()

	t.Run("unknown event", func(t *testing.T) {
		_, err := uc.Registration.Register(ctx, "missing", model.Record{
			"fullName": "A", "email": "a@example.com", "phone": "1",
		})
		gt.Error(t, err).Is(usecase.ErrEventNotFound)
	})

	t.Run("missing phone", func(t *testing.T) {
		_, err := uc.Registration.Register(ctx, event.ID(), model.Record{
			"fullName": "A", "email": "a@example.com",
		})
		gt.Error(t, err).Is(model.ErrMissingRequired)
	})

	reg, err := uc.Registration.Register(ctx, event.ID(), model.Record{
		"fullName": "Aisyah Putri", "email": "aisyah@example.com", "phone": "0812", "eventId": "spoofed",
	})
	gt.NoError(t, err).Required()
	gt.Value(t, reg.String("eventId")).Equal(event.ID())
	gt.Value(t, reg.String("organization")).Equal("")

	t.Run("notifier receives the registration", func(t *testing.T) {
		select {
		case n := <-notifier.ch:
			gt.Value(t, n.event["slug"]).Equal(any("seminar"))
			gt.Value(t, n.registration["fullName"]).Equal(any("Aisyah Putri"))
		case <-time.After(time.Second):
			t.Fatal("notification not delivered")
		}
	})

	_, err = uc.Registration.Register(ctx, event.ID(), model.Record{
		"fullName": "Umar, Jr.", "email": "umar@example.com", "phone": "0813", "organization": "Kampus",
	})
	gt.NoError(t, err).Required()

	t.Run("list is scoped to the event", func(t *testing.T) {
		regs, err := uc.Registration.List(ctx, event.ID())
		gt.NoError(t, err).Required()
		gt.Array(t, regs).Length(2)
		gt.Value(t, regs[0].String("fullName")).Equal("Umar, Jr.")

		none, err := uc.Registration.List(ctx, "other")
		gt.NoError(t, err).Required()
		gt.Array(t, none).Length(0)
	})

	t.Run("csv export", func(t *testing.T) {
		var buf bytes.Buffer
		gt.NoError(t, uc.Registration.ExportCSV(ctx, event.ID(), &buf)).Required()

		rows, err := csv.NewReader(&buf).ReadAll()
		gt.NoError(t, err).Required()
		gt.Array(t, rows).Length(3)
		gt.Value(t, rows[0][0]).Equal("Full Name")
		gt.Value(t, rows[0][len(rows[0])-1]).Equal("Registered At")
		gt.Value(t, rows[1][0]).Equal("Umar, Jr.")
		gt.Value(t, rows[1][3]).Equal("Kampus")
	})

	t.Run("csv export of unknown event", func(t *testing.T) {
		var buf bytes.Buffer
		gt.Error(t, uc.Registration.ExportCSV(ctx, "missing", &buf)).Is(usecase.ErrEventNotFound)
	})
}
