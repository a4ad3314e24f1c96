package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"github.com/geunaseh/jeumala/pkg/domain/interfaces"
	"github.com/geunaseh/jeumala/pkg/domain/model"
	"github.com/geunaseh/jeumala/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type recordRepository struct {
	db *sql.DB
}

var errInvalidKey = goerr.New("record key contains a quote")

// jsonPath builds a json_extract path for a record key
func jsonPath(key string) (string, error) {
	if strings.ContainsAny(key, `"\`) {
		return "", goerr.Wrap(errInvalidKey, "invalid key", goerr.V("key", key))
	}
	return `$."` + key + `"`, nil
}

func decodeRecord(data string) (model.Record, error) {
	var rec model.Record
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return nil, goerr.Wrap(err, "failed to decode record")
	}
	return rec, nil
}

func (r *recordRepository) Create(ctx context.Context, resource types.ResourceName, rec model.Record) error {
	id := rec.ID()
	if id == "" {
		return goerr.New("record ID is required", goerr.V(model.ResourceKey, resource))
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return goerr.Wrap(err, "failed to encode record", goerr.V(model.RecordIDKey, id))
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO records (resource, id, data) VALUES (?, ?, ?)`,
		resource.String(), id, string(data))
	if err != nil {
		return goerr.Wrap(err, "failed to insert record",
			goerr.V(model.ResourceKey, resource), goerr.V(model.RecordIDKey, id))
	}
	return nil
}

func (r *recordRepository) Get(ctx context.Context, resource types.ResourceName, id string) (model.Record, error) {
	var data string
	err := r.db.QueryRowContext(ctx,
		`SELECT data FROM records WHERE resource = ? AND id = ?`,
		resource.String(), id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "record not found",
			goerr.V(model.ResourceKey, resource), goerr.V(model.RecordIDKey, id))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get record",
			goerr.V(model.ResourceKey, resource), goerr.V(model.RecordIDKey, id))
	}
	return decodeRecord(data)
}

func (r *recordRepository) FindOne(ctx context.Context, resource types.ResourceName, key, value string) (model.Record, error) {
	path, err := jsonPath(key)
	if err != nil {
		return nil, err
	}

	var data string
	err = r.db.QueryRowContext(ctx,
		`SELECT data FROM records WHERE resource = ? AND json_extract(data, ?) = ? ORDER BY rowid LIMIT 1`,
		resource.String(), path, value).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "record not found",
			goerr.V(model.ResourceKey, resource), goerr.V("key", key), goerr.V("value", value))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query record",
			goerr.V(model.ResourceKey, resource), goerr.V("key", key))
	}
	return decodeRecord(data)
}

func (r *recordRepository) List(ctx context.Context, resource types.ResourceName, opts ...interfaces.ListOption) ([]model.Record, error) {
	cfg := interfaces.BuildListConfig(opts...)

	var (
		query strings.Builder
		args  = []any{resource.String()}
	)
	query.WriteString(`SELECT data FROM records WHERE resource = ?`)

	for k, v := range cfg.Filters() {
		path, err := jsonPath(k)
		if err != nil {
			return nil, err
		}
		query.WriteString(` AND json_extract(data, ?) = ?`)
		args = append(args, path, v)
	}

	if cfg.SortBy() != "" {
		path, err := jsonPath(cfg.SortBy())
		if err != nil {
			return nil, err
		}
		query.WriteString(` ORDER BY json_extract(data, ?)`)
		if cfg.Desc() {
			query.WriteString(` DESC`)
		}
		query.WriteString(`, rowid`)
		args = append(args, path)
	} else {
		query.WriteString(` ORDER BY rowid`)
	}

	if cfg.Limit() > 0 {
		query.WriteString(` LIMIT ?`)
		args = append(args, cfg.Limit())
	}

	rows, err := r.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list records", goerr.V(model.ResourceKey, resource))
	}
	defer rows.Close()

	records := []model.Record{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, goerr.Wrap(err, "failed to scan record", goerr.V(model.ResourceKey, resource))
		}
		rec, err := decodeRecord(data)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate records", goerr.V(model.ResourceKey, resource))
	}
	return records, nil
}

func (r *recordRepository) Update(ctx context.Context, resource types.ResourceName, id string, fields model.Record) (model.Record, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	var data string
	err = tx.QueryRowContext(ctx,
		`SELECT data FROM records WHERE resource = ? AND id = ?`,
		resource.String(), id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "record not found",
			goerr.V(model.ResourceKey, resource), goerr.V(model.RecordIDKey, id))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get record", goerr.V(model.RecordIDKey, id))
	}

	rec, err := decodeRecord(data)
	if err != nil {
		return nil, err
	}
	for k, v := range fields {
		if k != model.KeyID {
			rec[k] = v
		}
	}

	encoded, err := json.Marshal(rec)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode record", goerr.V(model.RecordIDKey, id))
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE records SET data = ? WHERE resource = ? AND id = ?`,
		string(encoded), resource.String(), id); err != nil {
		return nil, goerr.Wrap(err, "failed to update record",
			goerr.V(model.ResourceKey, resource), goerr.V(model.RecordIDKey, id))
	}
	if err := tx.Commit(); err != nil {
		return nil, goerr.Wrap(err, "failed to commit update", goerr.V(model.RecordIDKey, id))
	}

	// Return the stored form so numbers decode the same way as on Get
	return decodeRecord(string(encoded))
}

func (r *recordRepository) Delete(ctx context.Context, resource types.ResourceName, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM records WHERE resource = ? AND id = ?`, resource.String(), id)
	if err != nil {
		return goerr.Wrap(err, "failed to delete record",
			goerr.V(model.ResourceKey, resource), goerr.V(model.RecordIDKey, id))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return goerr.Wrap(err, "failed to get affected rows")
	}
	if n == 0 {
		return goerr.Wrap(interfaces.ErrNotFound, "record not found",
			goerr.V(model.ResourceKey, resource), goerr.V(model.RecordIDKey, id))
	}
	return nil
}

func (r *recordRepository) DeleteAll(ctx context.Context, resource types.ResourceName) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM records WHERE resource = ?`, resource.String()); err != nil {
		return goerr.Wrap(err, "failed to delete records", goerr.V(model.ResourceKey, resource))
	}
	return nil
}

func (r *recordRepository) PutMany(ctx context.Context, resource types.ResourceName, records []model.Record) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to begin transaction")
	}
	defer func() { _ = tx.Rollback() }()

	for _, rec := range records {
		id := rec.ID()
		if id == "" {
			return goerr.New("record ID is required", goerr.V(model.ResourceKey, resource))
		}
		data, err := json.Marshal(rec)
		if err != nil {
			return goerr.Wrap(err, "failed to encode record", goerr.V(model.RecordIDKey, id))
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO records (resource, id, data) VALUES (?, ?, ?)
			 ON CONFLICT(resource, id) DO UPDATE SET data = excluded.data`,
			resource.String(), id, string(data)); err != nil {
			return goerr.Wrap(err, "failed to put record",
				goerr.V(model.ResourceKey, resource), goerr.V(model.RecordIDKey, id))
		}
	}

	if err := tx.Commit(); err != nil {
		return goerr.Wrap(err, "failed to commit records", goerr.V(model.ResourceKey, resource))
	}
	return nil
}
