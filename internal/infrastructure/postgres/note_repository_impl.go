package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/369Dsharma/Notes-backend/internal/domain/entity"
	"github.com/369Dsharma/Notes-backend/internal/domain/repository"
)

type NoteRepository struct {
	pool *pgxpool.Pool
}

func NewNoteRepository(pool *pgxpool.Pool) *NoteRepository {
	return &NoteRepository{pool: pool}
}

const noteColumns = `id, user_id, title, content, tags, is_pinned, created_on, updated_at`

func scanNote(row pgx.Row) (*entity.Note, error) {
	n := &entity.Note{}
	if err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.Tags,
		&n.IsPinned, &n.CreatedOn, &n.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return n, nil
}

func (r *NoteRepository) Create(n *entity.Note) error {
	ctx := context.Background()
	if n.Tags == nil {
		n.Tags = []string{}
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO notes (user_id, title, content, tags, is_pinned)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_on, updated_at
	`, n.UserID, n.Title, n.Content, n.Tags, n.IsPinned)

	return row.Scan(&n.ID, &n.CreatedOn, &n.UpdatedAt)
}

func (r *NoteRepository) GetByID(id, userID string) (*entity.Note, error) {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		SELECT `+noteColumns+`
		FROM notes
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	return scanNote(row)
}

// ListByUser returns all notes for a user, pinned notes first, newest first.
func (r *NoteRepository) ListByUser(userID string) ([]*entity.Note, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT `+noteColumns+`
		FROM notes
		WHERE user_id = $1
		ORDER BY is_pinned DESC, created_on DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectNotes(rows)
}

func (r *NoteRepository) Update(n *entity.Note) error {
	ctx := context.Background()
	n.UpdatedAt = time.Now()
	if n.Tags == nil {
		n.Tags = []string{}
	}

	res, err := r.pool.Exec(ctx, `
		UPDATE notes
		SET title = $1, content = $2, tags = $3, is_pinned = $4, updated_at = $5
		WHERE id = $6 AND user_id = $7
	`, n.Title, n.Content, n.Tags, n.IsPinned, n.UpdatedAt, n.ID, n.UserID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *NoteRepository) Delete(id, userID string) error {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `
		DELETE FROM notes WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Search matches the query as a case-insensitive substring of title or content.
func (r *NoteRepository) Search(userID, query string) ([]*entity.Note, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT `+noteColumns+`
		FROM notes
		WHERE user_id = $1 AND (title ILIKE '%' || $2 || '%' OR content ILIKE '%' || $2 || '%')
		ORDER BY is_pinned DESC, created_on DESC
	`, userID, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectNotes(rows)
}

func collectNotes(rows pgx.Rows) ([]*entity.Note, error) {
	notes := make([]*entity.Note, 0)
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

var _ repository.NoteRepository = (*NoteRepository)(nil)
