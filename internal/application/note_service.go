package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/369Dsharma/Notes-backend/internal/domain/entity"
	repo "github.com/369Dsharma/Notes-backend/internal/domain/repository"
)

// NoteService implements note CRUD, pinning, and search for a single
// owner. Postgres is authoritative; Elasticsearch, when configured,
// mirrors the notes for search and falls back to the repository on
// any indexing or query failure.
type NoteService struct {
	Notes        repo.NoteRepository
	Logger       *logrus.Logger
	ES           *elasticsearch.Client
	ESNotesIndex string
}

func NewNoteService(notes repo.NoteRepository, logger *logrus.Logger, es *elasticsearch.Client, esNotesIndex string) *NoteService {
	return &NoteService{Notes: notes, Logger: logger, ES: es, ESNotesIndex: esNotesIndex}
}

func (s *NoteService) Create(ctx context.Context, userID, title, content string, tags []string) (*entity.Note, error) {
	n := &entity.Note{
		UserID:  userID,
		Title:   title,
		Content: content,
		Tags:    tags,
	}
	if err := s.Notes.Create(n); err != nil {
		return nil, err
	}
	s.indexNote(ctx, n)
	return n, nil
}

// UpdateInput carries a partial note edit. Nil fields are left untouched.
type UpdateInput struct {
	Title    *string
	Content  *string
	Tags     []string
	IsPinned *bool
}

func (in UpdateInput) empty() bool {
	return in.Title == nil && in.Content == nil && in.Tags == nil && in.IsPinned == nil
}

func (s *NoteService) Update(ctx context.Context, userID, noteID string, in UpdateInput) (*entity.Note, error) {
	if in.empty() {
		return nil, ErrNoChanges
	}
	n, err := s.Notes.GetByID(noteID, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}
	if in.Title != nil {
		n.Title = *in.Title
	}
	if in.Content != nil {
		n.Content = *in.Content
	}
	if in.Tags != nil {
		n.Tags = in.Tags
	}
	if in.IsPinned != nil {
		n.IsPinned = *in.IsPinned
	}
	if err := s.Notes.Update(n); err != nil {
		return nil, err
	}
	s.indexNote(ctx, n)
	return n, nil
}

func (s *NoteService) SetPinned(ctx context.Context, userID, noteID string, pinned bool) (*entity.Note, error) {
	n, err := s.Notes.GetByID(noteID, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}
	n.IsPinned = pinned
	if err := s.Notes.Update(n); err != nil {
		return nil, err
	}
	s.indexNote(ctx, n)
	return n, nil
}

func (s *NoteService) List(ctx context.Context, userID string) ([]*entity.Note, error) {
	return s.Notes.ListByUser(userID)
}

func (s *NoteService) Delete(ctx context.Context, userID, noteID string) error {
	if err := s.Notes.Delete(noteID, userID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNoteNotFound
		}
		return err
	}
	s.deleteFromIndex(ctx, noteID)
	return nil
}

// Search matches query as a case-insensitive substring of title or
// content. The ES path uses wildcard queries to keep the substring
// semantics; the repository is the fallback.
func (s *NoteService) Search(ctx context.Context, userID, query string) ([]*entity.Note, error) {
	if s.ES != nil && s.ESNotesIndex != "" {
		if notes, err := s.searchES(ctx, userID, query); err == nil {
			return notes, nil
		} else if s.Logger != nil {
			s.Logger.WithError(err).Warn("es search failed, falling back to sql")
		}
	}
	return s.Notes.Search(userID, query)
}

func (s *NoteService) indexNote(ctx context.Context, n *entity.Note) {
	if s.ES == nil || s.ESNotesIndex == "" {
		return
	}
	doc := map[string]any{
		"id":         n.ID,
		"user_id":    n.UserID,
		"title":      n.Title,
		"content":    n.Content,
		"tags":       n.Tags,
		"is_pinned":  n.IsPinned,
		"created_on": n.CreatedOn.Format(time.RFC3339Nano),
		"updated_at": n.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESNotesIndex, DocumentID: n.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("note_id", n.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("note_id", n.ID).Warn("es index response error")
	}
}

func (s *NoteService) deleteFromIndex(ctx context.Context, noteID string) {
	if s.ES == nil || s.ESNotesIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESNotesIndex, DocumentID: noteID}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("note_id", noteID).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

func (s *NoteService) searchES(ctx context.Context, userID, query string) ([]*entity.Note, error) {
	// Wildcards on analyzed text match within a single token. The
	// keyword subfields cover substrings spanning token boundaries,
	// up to the mapping's ignore_above cutoff for long content.
	sub := "*" + strings.ToLower(query) + "*"
	wildcard := func(field string) map[string]any {
		return map[string]any{"wildcard": map[string]any{field: map[string]any{"value": sub, "case_insensitive": true}}}
	}
	esQuery := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"filter": []map[string]any{
					{"term": map[string]any{"user_id": userID}},
				},
				"should": []map[string]any{
					wildcard("title"),
					wildcard("title.keyword"),
					wildcard("content"),
					wildcard("content.keyword"),
				},
				"minimum_should_match": 1,
			},
		},
		"size": 100,
	}
	b, _ := json.Marshal(esQuery)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESNotesIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source struct {
					ID        string    `json:"id"`
					UserID    string    `json:"user_id"`
					Title     string    `json:"title"`
					Content   string    `json:"content"`
					Tags      []string  `json:"tags"`
					IsPinned  bool      `json:"is_pinned"`
					CreatedOn time.Time `json:"created_on"`
					UpdatedAt time.Time `json:"updated_at"`
				} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]*entity.Note, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		src := h.Source
		out = append(out, &entity.Note{
			ID:        src.ID,
			UserID:    src.UserID,
			Title:     src.Title,
			Content:   src.Content,
			Tags:      src.Tags,
			IsPinned:  src.IsPinned,
			CreatedOn: src.CreatedOn,
			UpdatedAt: src.UpdatedAt,
		})
	}
	return out, nil
}
