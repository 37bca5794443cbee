package postgres

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/logger"
	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/mapper"
	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/rowstore"
)

const _createTable = `CREATE TABLE IF NOT EXISTS rows (
	id         uuid PRIMARY KEY,
	collection text NOT NULL,
	user_id    uuid NOT NULL,
	data       jsonb NOT NULL
);
CREATE INDEX IF NOT EXISTS rows_collection_user_idx ON rows (collection, user_id);`

const (
	_querySelect = "SELECT id, data FROM rows WHERE collection = $1 AND user_id = $2"
	_queryInsert = "INSERT INTO rows (id, collection, user_id, data) VALUES ($1, $2, $3, $4)"
	_queryUpsert = `INSERT INTO rows (id, collection, user_id, data)
					VALUES ($1, $2, $3, $4)
					ON CONFLICT (id)
					DO UPDATE SET data = EXCLUDED.data;`
	_queryUpdate = "UPDATE rows SET data = data || $1::jsonb WHERE id = $2 AND collection = $3 AND user_id = $4"
	_queryDelete = "DELETE FROM rows WHERE id = $1 AND collection = $2 AND user_id = $3"
)

type RowStore struct {
	db     *sqlx.DB
	userID string
	logger logger.Logger
}

func NewRowStore(db *sqlx.DB, cfg *Config, logger logger.Logger) *RowStore {
	return &RowStore{
		db:     db,
		userID: cfg.UserID,
		logger: logger,
	}
}

// UserID implements rowstore.Session.
func (s *RowStore) UserID() string {
	return s.userID
}

func (s *RowStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, _createTable); err != nil {
		return fmt.Errorf("%w: can't create rows table", err)
	}
	return nil
}

type row struct {
	ID   string `db:"id"`
	Data []byte `db:"data"`
}

func (s *RowStore) Select(ctx context.Context, collection string) ([]mapper.Record, error) {
	var rows []row
	if err := s.db.SelectContext(ctx, &rows, _querySelect, collection, s.userID); err != nil {
		return nil, fmt.Errorf("%w: can't select %s", err, collection)
	}

	records := make([]mapper.Record, 0, len(rows))
	for _, r := range rows {
		rec := mapper.Record{}
		if err := sonic.Unmarshal(r.Data, &rec); err != nil {
			s.logger.Warnf("%s: can't decode row %s in %s, skipping", err, r.ID, collection)
			continue
		}
		rec["id"] = r.ID
		rec["user_id"] = s.userID
		records = append(records, rec)
	}

	return records, nil
}

// payload strips the column-backed keys out of the jsonb document.
func payload(rec mapper.Record) ([]byte, error) {
	doc := make(mapper.Record, len(rec))
	for k, v := range rec {
		if k == "id" || k == "user_id" {
			continue
		}
		doc[k] = v
	}
	return sonic.Marshal(doc)
}

func (s *RowStore) Insert(ctx context.Context, collection string, rec mapper.Record) (mapper.Record, error) {
	data, err := payload(rec)
	if err != nil {
		return nil, fmt.Errorf("%w: can't encode row for %s", err, collection)
	}

	id := uuid.NewString()
	if _, err := s.db.ExecContext(ctx, _queryInsert, id, collection, s.userID, data); err != nil {
		return nil, fmt.Errorf("%w: can't insert into %s", err, collection)
	}

	rec["id"] = id
	rec["user_id"] = s.userID
	return rec, nil
}

func (s *RowStore) Upsert(ctx context.Context, collection string, rec mapper.Record) error {
	data, err := payload(rec)
	if err != nil {
		return fmt.Errorf("%w: can't encode row for %s", err, collection)
	}

	id, _ := rec["id"].(string)
	if id == "" {
		id = uuid.NewString()
	}
	if _, err := s.db.ExecContext(ctx, _queryUpsert, id, collection, s.userID, data); err != nil {
		return fmt.Errorf("%w: can't upsert into %s", err, collection)
	}

	return nil
}

func (s *RowStore) Update(ctx context.Context, collection, id string, patch mapper.Record) error {
	data, err := sonic.Marshal(patch)
	if err != nil {
		return fmt.Errorf("%w: can't encode patch for %s", err, collection)
	}

	res, err := s.db.ExecContext(ctx, _queryUpdate, data, id, collection, s.userID)
	if err != nil {
		return fmt.Errorf("%w: can't update %s/%s", err, collection, id)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s/%s", rowstore.ErrNotFound, collection, id)
	}

	return nil
}

func (s *RowStore) Delete(ctx context.Context, collection, id string) error {
	if _, err := s.db.ExecContext(ctx, _queryDelete, id, collection, s.userID); err != nil {
		return fmt.Errorf("%w: can't delete %s/%s", err, collection, id)
	}
	return nil
}
