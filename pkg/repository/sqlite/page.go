package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/geunaseh/jeumala/pkg/domain/interfaces"
	"github.com/geunaseh/jeumala/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

type pageRepository struct {
	db *sql.DB
}

func (r *pageRepository) Put(ctx context.Context, page *model.Page) error {
	if err := page.Validate(); err != nil {
		return goerr.Wrap(err, "invalid page")
	}

	data, err := json.Marshal(page)
	if err != nil {
		return goerr.Wrap(err, "failed to encode page", goerr.V("page_id", page.PageID))
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO pages (page_id, data) VALUES (?, ?)
		 ON CONFLICT(page_id) DO UPDATE SET data = excluded.data`,
		page.PageID, string(data))
	if err != nil {
		return goerr.Wrap(err, "failed to upsert page", goerr.V("page_id", page.PageID))
	}
	return nil
}

func (r *pageRepository) Get(ctx context.Context, pageID string) (*model.Page, error) {
	var data string
	err := r.db.QueryRowContext(ctx, `SELECT data FROM pages WHERE page_id = ?`, pageID).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "page not found", goerr.V("page_id", pageID))
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get page", goerr.V("page_id", pageID))
	}

	var page model.Page
	if err := json.Unmarshal([]byte(data), &page); err != nil {
		return nil, goerr.Wrap(err, "failed to decode page", goerr.V("page_id", pageID))
	}
	return &page, nil
}

func (r *pageRepository) List(ctx context.Context) ([]*model.Page, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT data FROM pages ORDER BY page_id`)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list pages")
	}
	defer rows.Close()

	pages := []*model.Page{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, goerr.Wrap(err, "failed to scan page")
		}
		var page model.Page
		if err := json.Unmarshal([]byte(data), &page); err != nil {
			return nil, goerr.Wrap(err, "failed to decode page")
		}
		pages = append(pages, &page)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to iterate pages")
	}
	return pages, nil
}

func (r *pageRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM pages`); err != nil {
		return goerr.Wrap(err, "failed to delete pages")
	}
	return nil
}
