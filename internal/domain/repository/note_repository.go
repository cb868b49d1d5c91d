package repository

import "github.com/369Dsharma/Notes-backend/internal/domain/entity"

// NoteRepository defines the interface for note persistence. Every
// lookup takes the owning user id; a note id from another user behaves
// like a missing note.
type NoteRepository interface {
	Create(n *entity.Note) error
	GetByID(id, userID string) (*entity.Note, error)
	ListByUser(userID string) ([]*entity.Note, error)
	Update(n *entity.Note) error
	Delete(id, userID string) error
	Search(userID, query string) ([]*entity.Note, error)
}
