package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/jericho-forum/jericho/internal/application"
	"github.com/jericho-forum/jericho/internal/domain/entity"
	"github.com/jericho-forum/jericho/pkg/validation"
)

type stubPostRepo struct {
	posts map[primitive.ObjectID]*entity.PostEntity
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{posts: map[primitive.ObjectID]*entity.PostEntity{}}
}

func (r *stubPostRepo) Insert(_ context.Context, p *entity.PostEntity) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	cp := *p
	cp.ID = id
	r.posts[id] = &cp
	return id, nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id primitive.ObjectID) (*entity.PostEntity, error) {
	if p, ok := r.posts[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *stubPostRepo) Find(_ context.Context, _ map[string]string, _, _ int) ([]entity.PostEntity, error) {
	out := make([]entity.PostEntity, 0, len(r.posts))
	for _, p := range r.posts {
		if !p.IsDeleted {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPostRepo) Replace(_ context.Context, p *entity.PostEntity) (bool, error) {
	if _, ok := r.posts[p.ID]; !ok {
		return false, nil
	}
	cp := *p
	r.posts[p.ID] = &cp
	return true, nil
}

func newPostRouter(repo *stubPostRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	validation.Init()

	logger := logrus.New()
	svc := application.NewPostService(repo, logger, nil, "")
	h := NewPostHandler(svc, logger)

	r := gin.New()
	r.POST("/posts", h.Create)
	r.GET("/posts", h.List)
	r.GET("/posts/:id", h.Get)
	r.PUT("/posts", h.Update)
	r.DELETE("/posts/:id", h.Delete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPostHandlerCreate(t *testing.T) {
	r := newPostRouter(newStubPostRepo())

	w := doJSON(t, r, http.MethodPost, "/posts", `{"title":"Hello World","text":"body","type":"Text","postedby":"alice"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool              `json:"success"`
		Data    entity.PostEntity `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.False(t, resp.Data.ID.IsZero())
	assert.Equal(t, "Hello World", resp.Data.Title)
	assert.True(t, strings.HasPrefix(resp.Data.URL, "hello_world_"))
}

func TestPostHandlerCreateInvalidPayload(t *testing.T) {
	r := newPostRouter(newStubPostRepo())

	tests := []struct {
		name string
		body string
	}{
		{"missing title", `{"text":"body","postedby":"alice"}`},
		{"missing postedby", `{"title":"x"}`},
		{"broken json", `{"title":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/posts", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestPostHandlerGet(t *testing.T) {
	repo := newStubPostRepo()
	r := newPostRouter(repo)

	id, err := repo.Insert(context.Background(), &entity.PostEntity{Title: "t", PostedBy: "a", CreatedOn: time.Now().UTC()})
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodGet, "/posts/"+id.Hex(), "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/posts/"+primitive.NewObjectID().Hex(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/posts/not-hex", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostHandlerUpdateNotFound(t *testing.T) {
	r := newPostRouter(newStubPostRepo())

	body := `{"id":"` + primitive.NewObjectID().Hex() + `","title":"t","postedby":"a"}`
	w := doJSON(t, r, http.MethodPut, "/posts", body)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPostHandlerDelete(t *testing.T) {
	repo := newStubPostRepo()
	r := newPostRouter(repo)

	id, err := repo.Insert(context.Background(), &entity.PostEntity{Title: "t", PostedBy: "a", CreatedOn: time.Now().UTC()})
	require.NoError(t, err)

	w := doJSON(t, r, http.MethodDelete, "/posts/"+id.Hex(), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, repo.posts[id].IsDeleted)

	w = doJSON(t, r, http.MethodDelete, "/posts/"+primitive.NewObjectID().Hex(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPostHandlerList(t *testing.T) {
	repo := newStubPostRepo()
	r := newPostRouter(repo)

	for i := 0; i < 3; i++ {
		_, err := repo.Insert(context.Background(), &entity.PostEntity{Title: "t", PostedBy: "a", CreatedOn: time.Now().UTC()})
		require.NoError(t, err)
	}

	w := doJSON(t, r, http.MethodGet, "/posts?postedby=a&page=0&limit=10", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []entity.PostEntity `json:"data"`
		Meta map[string]any      `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 3)
	assert.EqualValues(t, 3, resp.Meta["count"])
}
