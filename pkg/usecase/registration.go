package usecase

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"time"

	"github.com/geunaseh/jeumala/pkg/domain/interfaces"
	"github.com/geunaseh/jeumala/pkg/domain/model"
	"github.com/geunaseh/jeumala/pkg/domain/types"
	"github.com/geunaseh/jeumala/pkg/utils/async"
	"github.com/geunaseh/jeumala/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// RegistrationConfirmation is the message shown after a successful registration
const RegistrationConfirmation = "Pendaftaran berhasil!"

const registrationEventKey = "eventId"

// RegistrationUseCase handles public sign-ups for events
type RegistrationUseCase struct {
	repo     interfaces.Repository
	registry *model.ResourceRegistry
	notifier interfaces.RegistrationNotifier
	now      func() time.Time
}

func NewRegistrationUseCase(repo interfaces.Repository, registry *model.ResourceRegistry, notifier interfaces.RegistrationNotifier, now func() time.Time) *RegistrationUseCase {
	return &RegistrationUseCase{
		repo:     repo,
		registry: registry,
		notifier: notifier,
		now:      now,
	}
}

func (uc *RegistrationUseCase) getEvent(ctx context.Context, eventID string) (model.Record, error) {
	event, err := uc.repo.Record().Get(ctx, types.ResourceEvents, eventID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrEventNotFound, "event not found", goerr.V(EventIDKey, eventID))
		}
		return nil, goerr.Wrap(err, "failed to get event", goerr.V(EventIDKey, eventID))
	}
	return event, nil
}

// Register stores a registration for eventID. The configured notifier is
// called asynchronously and its failure does not affect the result.
func (uc *RegistrationUseCase) Register(ctx context.Context, eventID string, payload model.Record) (model.Record, error) {
	event, err := uc.getEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	schema, err := uc.registry.Get(types.ResourceRegistrations)
	if err != nil {
		return nil, err
	}
	rec, err := model.NewForm(schema.Fields).Serialize(payload)
	if err != nil {
		return nil, err
	}
	for _, f := range schema.Fields {
		if _, ok := rec[f.Name]; !ok {
			rec[f.Name] = storedDefault(f)
		}
	}

	rec[model.KeyID] = model.NewRecordID()
	rec[registrationEventKey] = eventID
	rec[model.KeyCreatedAt] = model.FormatTime(uc.now())

	if err := uc.repo.Record().Create(ctx, types.ResourceRegistrations, rec); err != nil {
		return nil, goerr.Wrap(err, "failed to create registration", goerr.V(EventIDKey, eventID))
	}

	logging.From(ctx).Info("event registration received",
		"event_id", eventID, "registration_id", rec.ID())

	if uc.notifier != nil {
		notified := rec.Clone()
		async.Dispatch(ctx, "notify_registration", func(ctx context.Context) error {
			return uc.notifier.NotifyRegistration(ctx, event, notified)
		})
	}

	return rec, nil
}

// List returns registrations of eventID, newest first
func (uc *RegistrationUseCase) List(ctx context.Context, eventID string) ([]model.Record, error) {
	records, err := uc.repo.Record().List(ctx, types.ResourceRegistrations,
		interfaces.WithFilter(registrationEventKey, eventID),
		interfaces.WithSort(model.KeyCreatedAt, true),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list registrations", goerr.V(EventIDKey, eventID))
	}
	return records, nil
}

// ExportCSV writes registrations of eventID as CSV with a header row
// derived from the registration schema
func (uc *RegistrationUseCase) ExportCSV(ctx context.Context, eventID string, w io.Writer) error {
	if _, err := uc.getEvent(ctx, eventID); err != nil {
		return err
	}

	schema, err := uc.registry.Get(types.ResourceRegistrations)
	if err != nil {
		return err
	}
	records, err := uc.List(ctx, eventID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	header := make([]string, 0, len(schema.Fields)+1)
	for _, f := range schema.Fields {
		header = append(header, f.Label)
	}
	header = append(header, "Registered At")
	if err := cw.Write(header); err != nil {
		return goerr.Wrap(err, "failed to write csv header")
	}

	for _, rec := range records {
		row := make([]string, 0, len(header))
		for _, f := range schema.Fields {
			if f.Kind.Normalize() == types.FieldKindTags {
				row = append(row, model.JoinTags(rec.Strings(f.Name)))
				continue
			}
			row = append(row, rec.String(f.Name))
		}
		row = append(row, rec.String(model.KeyCreatedAt))
		if err := cw.Write(row); err != nil {
			return goerr.Wrap(err, "failed to write csv row", goerr.V(RecordIDKey, rec.ID()))
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return goerr.Wrap(err, "failed to flush csv")
	}
	return nil
}
