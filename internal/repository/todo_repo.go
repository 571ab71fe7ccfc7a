package repository

import (
	"context"
	"errors"

	"todo_api/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrTodoNotFound covers both a missing id and an id owned by someone else.
// The two cases must stay indistinguishable to callers.
var ErrTodoNotFound = errors.New("todo not found")

const defaultListLimit = 100

type TodoRepository struct {
	db *pgxpool.Pool
}

func NewTodoRepository(db *pgxpool.Pool) *TodoRepository {
	return &TodoRepository{db: db}
}

func (r *TodoRepository) Create(ctx context.Context, t *domain.Todo) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO todos (owner_id, title, description)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		t.OwnerID,
		t.Title,
		t.Description,
	).Scan(&t.ID, &t.CreatedAt)
}

func (r *TodoRepository) GetByID(ctx context.Context, ownerID, id int64) (*domain.Todo, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, owner_id, title, description, created_at
		 FROM todos
		 WHERE id = $1 AND owner_id = $2`,
		id,
		ownerID,
	)

	var t domain.Todo
	if err := row.Scan(&t.ID, &t.OwnerID, &t.Title, &t.Description, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTodoNotFound
		}
		return nil, err
	}
	return &t, nil
}

// List returns the owner's todos in insertion order. Negative skip and
// non-positive limit clamp to 0 and defaultListLimit.
func (r *TodoRepository) List(ctx context.Context, ownerID int64, skip, limit int) ([]*domain.Todo, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, owner_id, title, description, created_at
		 FROM todos
		 WHERE owner_id = $1
		 ORDER BY id
		 OFFSET $2 LIMIT $3`,
		ownerID,
		skip,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.Todo
	for rows.Next() {
		var t domain.Todo
		if err := rows.Scan(&t.ID, &t.OwnerID, &t.Title, &t.Description, &t.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, &t)
	}
	return res, rows.Err()
}

// Update applies the patch in a single statement; nil patch fields keep the
// stored value.
func (r *TodoRepository) Update(ctx context.Context, ownerID, id int64, patch domain.TodoPatch) (*domain.Todo, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE todos
		 SET title = COALESCE($1, title),
		     description = COALESCE($2, description)
		 WHERE id = $3 AND owner_id = $4
		 RETURNING id, owner_id, title, description, created_at`,
		patch.Title,
		patch.Description,
		id,
		ownerID,
	)

	var t domain.Todo
	if err := row.Scan(&t.ID, &t.OwnerID, &t.Title, &t.Description, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTodoNotFound
		}
		return nil, err
	}
	return &t, nil
}

// Delete reports whether a matching owned todo was removed. A missing or
// foreign id is false, not an error.
func (r *TodoRepository) Delete(ctx context.Context, ownerID, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM todos WHERE id = $1 AND owner_id = $2`,
		id,
		ownerID,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
