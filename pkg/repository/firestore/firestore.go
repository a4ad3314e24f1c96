package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/geunaseh/jeumala/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
)

type Firestore struct {
	client *firestore.Client
	record *recordRepository
	user   *userRepository
	page   *pageRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollectionPrefix isolates collections, e.g. per test run
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.record.collectionPrefix = prefix
		f.user.collectionPrefix = prefix
		f.page.collectionPrefix = prefix
	}
}

// New connects to Firestore. An empty databaseID selects the default database.
func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	var (
		client *firestore.Client
		err    error
	)
	if databaseID == "" {
		client, err = firestore.NewClient(ctx, projectID)
	} else {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID), goerr.V("databaseID", databaseID))
	}

	f := &Firestore{
		client: client,
		record: newRecordRepository(client),
		user:   newUserRepository(client),
		page:   newPageRepository(client),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) Record() interfaces.RecordRepository {
	return f.record
}

func (f *Firestore) User() interfaces.UserRepository {
	return f.user
}

func (f *Firestore) Page() interfaces.PageRepository {
	return f.page
}

// Close releases the underlying client
func (f *Firestore) Close() error {
	return f.client.Close()
}

func collectionName(prefix, name string) string {
	if prefix != "" {
		return prefix + "_" + name
	}
	return name
}
