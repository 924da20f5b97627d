package application

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jericho-forum/jericho/internal/domain/entity"
	"github.com/jericho-forum/jericho/internal/domain/repository"
)

// PostService orchestrates validation and persistence for posts. Search and
// indexing against Elasticsearch are best effort and never fail a write.
type PostService struct {
	repo    repository.PostRepository
	logger  *logrus.Logger
	es      *elasticsearch.Client
	esIndex string
}

func NewPostService(repo repository.PostRepository, logger *logrus.Logger, es *elasticsearch.Client, esIndex string) *PostService {
	return &PostService{repo: repo, logger: logger, es: es, esIndex: esIndex}
}

// CreatePost validates the post and inserts it. On validation failure no I/O
// happens. The inserted document is re-read by id before being returned.
func (s *PostService) CreatePost(ctx context.Context, p *entity.PostEntity) (ServiceResult[*entity.PostEntity], error) {
	if errs := p.Validate(); len(errs) > 0 {
		return Failed[*entity.PostEntity](fromFieldErrors(errs)...), nil
	}

	id, err := s.repo.Insert(ctx, p)
	if err != nil {
		return ServiceResult[*entity.PostEntity]{}, err
	}

	inserted, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ServiceResult[*entity.PostEntity]{}, err
	}

	s.indexPost(ctx, inserted)
	return Succeed(inserted), nil
}

// GetPost returns the post, or nil when the id matches nothing. A malformed
// hex id surfaces as an error.
func (s *PostService) GetPost(ctx context.Context, id string) (*entity.PostEntity, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, oid)
}

// GetPosts lists posts matching the query parameters, skip = page*limit.
func (s *PostService) GetPosts(ctx context.Context, params map[string]string, page, limit int) ([]entity.PostEntity, error) {
	return s.repo.Find(ctx, params, page, limit)
}

// UpdatePost replaces the stored document. It reports false when no document
// matched the id.
func (s *PostService) UpdatePost(ctx context.Context, p *entity.PostEntity) (bool, error) {
	matched, err := s.repo.Replace(ctx, p)
	if err != nil {
		return false, err
	}
	if matched {
		s.indexPost(ctx, p)
	}
	return matched, nil
}

// DeletePost soft-deletes by flipping the flag and replacing the document.
// An unknown id returns false without issuing a write.
func (s *PostService) DeletePost(ctx context.Context, id string) (bool, error) {
	p, err := s.GetPost(ctx, id)
	if err != nil {
		return false, err
	}
	if p == nil {
		return false, nil
	}
	p.IsDeleted = true
	return s.UpdatePost(ctx, p)
}

func (s *PostService) indexPost(ctx context.Context, p *entity.PostEntity) {
	if s.es == nil || s.esIndex == "" || p == nil {
		return
	}
	doc := map[string]any{
		"id":        p.ID.Hex(),
		"title":     p.Title,
		"text":      p.Text,
		"type":      p.Type,
		"postedby":  p.PostedBy,
		"createdon": p.CreatedOn.Format(time.RFC3339Nano),
		"isdeleted": p.IsDeleted,
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.esIndex, DocumentID: p.ID.Hex(), Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.es)
	if err != nil {
		if s.logger != nil {
			s.logger.WithError(err).WithField("post_id", p.ID.Hex()).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.logger != nil {
		s.logger.WithField("status", res.Status()).WithField("post_id", p.ID.Hex()).Warn("es index response error")
	}
}

// SearchPosts runs a multi_match query on title and text.
func (s *PostService) SearchPosts(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.es == nil || s.esIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "text"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.es.Search(
		s.es.Search.WithContext(c),
		s.es.Search.WithIndex(s.esIndex),
		s.es.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
