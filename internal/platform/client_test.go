package platform

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type staticTokens struct {
	token string
}

func (s staticTokens) Token() (string, bool) {
	return s.token, s.token != ""
}

func TestListCommunityPostsSendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[{"id":"1"}]`))
	}))
	defer srv.Close()
	viper.Set("platform.origin", srv.URL)

	client := NewClient(zap.NewNop(), staticTokens{token: "tok"}, nil)
	posts, err := client.ListCommunityPosts(context.Background())
	if err != nil {
		t.Fatalf("ListCommunityPosts returned error: %v", err)
	}

	if gotAuth != "Bearer tok" {
		t.Fatalf("Authorization header = %q, want Bearer tok", gotAuth)
	}
	if len(posts) != 1 || posts[0].ID != "1" {
		t.Fatalf("posts = %v, want one post with id 1", posts)
	}
}

func TestListCommunityPostsEnvelopeBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"id":"1"},{"id":"2"}]}`))
	}))
	defer srv.Close()
	viper.Set("platform.origin", srv.URL)

	client := NewClient(zap.NewNop(), staticTokens{}, nil)
	posts, err := client.ListCommunityPosts(context.Background())
	if err != nil {
		t.Fatalf("ListCommunityPosts returned error: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("got %d posts, want 2", len(posts))
	}
}

func TestUnauthorizedHookFiresOncePerResponseAndErrorStillReachesCaller(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()
	viper.Set("platform.origin", srv.URL)

	hookCalls := 0
	client := NewClient(zap.NewNop(), staticTokens{token: "expired"}, func() { hookCalls++ })

	_, err := client.ListCommunityPosts(context.Background())
	if err != ErrUnexpectedStatus {
		t.Fatalf("err = %v, want ErrUnexpectedStatus delivered to the caller", err)
	}
	if hookCalls != 1 {
		t.Fatalf("unauthorized hook fired %d times, want 1", hookCalls)
	}

	if err := client.DeleteCommunityPost(context.Background(), "1"); err != ErrUnexpectedStatus {
		t.Fatalf("delete err = %v, want ErrUnexpectedStatus", err)
	}
	if hookCalls != 2 {
		t.Fatalf("unauthorized hook fired %d times after two 401 responses, want 2", hookCalls)
	}
}

func TestDeleteCommunityPostStatusHandling(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s, want DELETE", r.Method)
		}
		if r.URL.Path == "/community/ok" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()
	viper.Set("platform.origin", srv.URL)

	client := NewClient(zap.NewNop(), staticTokens{}, nil)

	if err := client.DeleteCommunityPost(context.Background(), "ok"); err != nil {
		t.Fatalf("DeleteCommunityPost returned error on 200: %v", err)
	}
	if err := client.DeleteCommunityPost(context.Background(), "bad"); err != ErrUnexpectedStatus {
		t.Fatalf("err = %v, want ErrUnexpectedStatus on 500", err)
	}
}

func TestFetchStatistics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/admin/statistics" {
			t.Errorf("path = %s, want /admin/statistics", r.URL.Path)
		}
		w.Write([]byte(`{"total_users":10,"total_alerts":0,"total_locations":5,"total_articles":0}`))
	}))
	defer srv.Close()
	viper.Set("platform.origin", srv.URL)
	viper.Set("platform.statistics_path", "/admin/statistics")

	client := NewClient(zap.NewNop(), staticTokens{}, nil)
	stats, err := client.FetchStatistics(context.Background())
	if err != nil {
		t.Fatalf("FetchStatistics returned error: %v", err)
	}

	if stats.TotalUsers != 10 || stats.TotalLocations != 5 {
		t.Fatalf("stats = %+v, want users 10 and locations 5", stats)
	}
}
