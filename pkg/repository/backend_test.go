package repository_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/geunaseh/jeumala/pkg/domain/interfaces"
	"github.com/geunaseh/jeumala/pkg/repository/firestore"
	"github.com/geunaseh/jeumala/pkg/repository/memory"
	"github.com/geunaseh/jeumala/pkg/repository/mongo"
	"github.com/geunaseh/jeumala/pkg/repository/sqlite"
	"github.com/m-mizutani/gt"
)

type repoFactory func(t *testing.T) interfaces.Repository

func testPrefix() string {
	return fmt.Sprintf("test_%d", time.Now().UnixNano())
}

func newMemoryRepo(t *testing.T) interfaces.Repository {
	return memory.New()
}

func newSQLiteRepo(t *testing.T) interfaces.Repository {
	repo, err := sqlite.New(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	gt.NoError(t, err).Required()
	t.Cleanup(func() {
		gt.NoError(t, repo.Close())
	})
	return repo
}

func firestoreFactory(t *testing.T) repoFactory {
	projectID := os.Getenv("JEUMALA_TEST_FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("JEUMALA_TEST_FIRESTORE_PROJECT_ID not set")
	}
	databaseID := os.Getenv("JEUMALA_TEST_FIRESTORE_DATABASE_ID")

	return func(t *testing.T) interfaces.Repository {
		repo, err := firestore.New(context.Background(), projectID, databaseID,
			firestore.WithCollectionPrefix(testPrefix()))
		gt.NoError(t, err).Required()
		t.Cleanup(func() {
			_ = repo.Close()
		})
		return repo
	}
}

func mongoFactory(t *testing.T) repoFactory {
	uri := os.Getenv("JEUMALA_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("JEUMALA_TEST_MONGO_URI not set")
	}

	return func(t *testing.T) interfaces.Repository {
		repo, err := mongo.New(context.Background(), uri, "jeumala_test",
			mongo.WithCollectionPrefix(testPrefix()))
		gt.NoError(t, err).Required()
		t.Cleanup(func() {
			_ = repo.Close(context.Background())
		})
		return repo
	}
}
