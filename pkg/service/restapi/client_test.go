package restapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/geunaseh/jeumala/pkg/domain/model"
	"github.com/geunaseh/jeumala/pkg/service/restapi"
	"github.com/m-mizutani/gt"
)

type recordedRequest struct {
	Method string
	Path   string
	Auth   string
	Body   map[string]any
}

func newServer(t *testing.T, status int, response any) (*httptest.Server, *[]recordedRequest) {
	t.Helper()
	var reqs []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recordedRequest{Method: r.Method, Path: r.URL.Path, Auth: r.Header.Get("Authorization")}
		if r.Body != nil && r.ContentLength > 0 {
			_ = json.NewDecoder(r.Body).Decode(&rec.Body)
		}
		reqs = append(reqs, rec)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if response != nil {
			_ = json.NewEncoder(w).Encode(response)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &reqs
}

func TestClient_List(t *testing.T) {
	srv, reqs := newServer(t, http.StatusOK, []map[string]any{
		{"id": "1", "title": "A"},
		{"id": "2", "title": "B"},
	})
	client := restapi.New(srv.URL)

	records, err := client.List(context.Background(), "articles", "")
	gt.NoError(t, err).Required()
	gt.Array(t, records).Length(2)
	gt.Value(t, records[1].ID()).Equal("2")

	gt.Value(t, (*reqs)[0].Method).Equal(http.MethodGet)
	gt.Value(t, (*reqs)[0].Path).Equal("/api/articles")
	gt.Value(t, (*reqs)[0].Auth).Equal("")
}

func TestClient_Mutations(t *testing.T) {
	srv, reqs := newServer(t, http.StatusOK, map[string]any{"success": true})
	client := restapi.New(srv.URL + "/")
	ctx := context.Background()

	gt.NoError(t, client.Create(ctx, "articles", "tok", model.Record{"title": "Hello"})).Required()
	gt.NoError(t, client.Update(ctx, "articles", "tok", "42", model.Record{"title": "New"})).Required()
	gt.NoError(t, client.Delete(ctx, "articles", "tok", "7")).Required()

	gt.Array(t, *reqs).Length(3)

	gt.Value(t, (*reqs)[0].Method).Equal(http.MethodPost)
	gt.Value(t, (*reqs)[0].Path).Equal("/api/articles")
	gt.Value(t, (*reqs)[0].Auth).Equal("Bearer tok")
	gt.Value(t, (*reqs)[0].Body["title"]).Equal(any("Hello"))

	gt.Value(t, (*reqs)[1].Method).Equal(http.MethodPut)
	gt.Value(t, (*reqs)[1].Path).Equal("/api/articles/42")

	gt.Value(t, (*reqs)[2].Method).Equal(http.MethodDelete)
	gt.Value(t, (*reqs)[2].Path).Equal("/api/articles/7")
}

func TestClient_TransportErrors(t *testing.T) {
	t.Run("non-2xx is a TransportError", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusBadRequest, map[string]any{"error": "slug is required"})
		err := restapi.New(srv.URL).Create(context.Background(), "articles", "tok", model.Record{})
		gt.Error(t, err).Is(restapi.ErrTransport)
		gt.Bool(t, errors.Is(err, restapi.ErrAuthExpired)).False()

		var te *restapi.TransportError
		gt.Bool(t, errors.As(err, &te)).True()
		gt.Value(t, te.StatusCode).Equal(http.StatusBadRequest)
		gt.Value(t, te.Message).Equal("slug is required")
	})

	t.Run("401 and 403 are auth expired", func(t *testing.T) {
		for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
			srv, _ := newServer(t, status, map[string]any{"error": "Invalid token"})
			err := restapi.New(srv.URL).Delete(context.Background(), "articles", "old", "1")
			gt.Error(t, err).Is(restapi.ErrAuthExpired)
			gt.Error(t, err).Is(restapi.ErrTransport)
		}
	})

	t.Run("unreachable server", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusOK, nil)
		url := srv.URL
		srv.Close()

		_, err := restapi.New(url).List(context.Background(), "articles", "")
		gt.Error(t, err).Is(restapi.ErrTransport)
	})
}

func TestClient_Login(t *testing.T) {
	srv, reqs := newServer(t, http.StatusOK, map[string]any{
		"access_token": "jwt-token",
		"token_type":   "bearer",
		"user":         map[string]any{"id": "u1", "username": "admin"},
	})

	resp, err := restapi.New(srv.URL).Login(context.Background(), restapi.LoginRequest{
		Username: "admin", Password: "pw", SecretCode: "code",
	})
	gt.NoError(t, err).Required()
	gt.Value(t, resp.AccessToken).Equal("jwt-token")
	gt.Value(t, resp.User.Username).Equal("admin")
	gt.Value(t, (*reqs)[0].Path).Equal("/api/auth/login")
	gt.Value(t, (*reqs)[0].Body["secretCode"]).Equal(any("code"))
}

func TestClient_TaskParser(t *testing.T) {
	srv, reqs := newServer(t, http.StatusOK, map[string]any{
		"success": true,
		"task":    map[string]any{"title": "Buy snacks", "status": "pending", "priority": "medium"},
	})
	client := restapi.New(srv.URL)
	session := restapi.NewSession("tok")

	task, err := client.TaskParser(session).ParseTask(context.Background(), "Buy snacks")
	gt.NoError(t, err).Required()
	gt.Value(t, task.String("title")).Equal("Buy snacks")
	gt.Value(t, (*reqs)[0].Auth).Equal("Bearer tok")
	gt.Value(t, (*reqs)[0].Body["text"]).Equal(any("Buy snacks"))
}

func TestSession(t *testing.T) {
	s := restapi.NewSession("")
	gt.Value(t, s.Token()).Equal("")
	s.Set("abc")
	gt.Value(t, s.Token()).Equal("abc")
}
