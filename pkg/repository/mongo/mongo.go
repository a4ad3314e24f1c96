package mongo

import (
	"context"
	"time"

	"github.com/geunaseh/jeumala/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 10 * time.Second

// Mongo stores each resource in its own MongoDB collection
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
	record *recordRepository
	user   *userRepository
	page   *pageRepository
}

var _ interfaces.Repository = &Mongo{}

type Option func(*Mongo)

// WithCollectionPrefix isolates collections, e.g. per test run
func WithCollectionPrefix(prefix string) Option {
	return func(m *Mongo) {
		m.record.collectionPrefix = prefix
		m.user.collectionPrefix = prefix
		m.page.collectionPrefix = prefix
	}
}

// New connects to MongoDB and verifies the connection with a ping
func New(ctx context.Context, uri, database string, opts ...Option) (*Mongo, error) {
	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to connect to mongodb", goerr.V("database", database))
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, goerr.Wrap(err, "failed to ping mongodb", goerr.V("database", database))
	}

	db := client.Database(database)
	m := &Mongo{
		client: client,
		db:     db,
		record: &recordRepository{db: db},
		user:   &userRepository{db: db},
		page:   &pageRepository{db: db},
	}

	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

func (m *Mongo) Record() interfaces.RecordRepository {
	return m.record
}

func (m *Mongo) User() interfaces.UserRepository {
	return m.user
}

func (m *Mongo) Page() interfaces.PageRepository {
	return m.page
}

// Close disconnects the client
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func collectionName(prefix, name string) string {
	if prefix != "" {
		return prefix + "_" + name
	}
	return name
}
