package devops

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devops-board/internal/domain"
)

func TestClient_PullRequestIterations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/contoso/payments/_apis/git/repositories/gateway/pullrequests/101/iterations", r.URL.Path)
		fmt.Fprint(w, `{"value": [{"id": 1}, {"id": 2}, {"id": 3}]}`)
	}))
	defer srv.Close()

	ids, err := testClient(t, srv.URL).PullRequestIterations(context.Background(), "gateway", 101)

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, ids)
}

func TestClient_IterationChanges(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/contoso/payments/_apis/git/repositories/gateway/pullrequests/101/iterations/3/changes", r.URL.Path)
		fmt.Fprint(w, `{"changeEntries": [
			{"changeType": "edit", "item": {"path": "/src/gateway.go"}},
			{"changeType": "add", "item": {"path": "/src/retry.go"}},
			{"changeType": "rename", "item": {"path": "/src/new_name.go", "originalObjectId": "0a1b2c"}}
		]}`)
	}))
	defer srv.Close()

	changes, err := testClient(t, srv.URL).IterationChanges(context.Background(), "gateway", 101, 3)

	require.NoError(t, err)
	require.Len(t, changes, 3)
	assert.Equal(t, domain.ChangeEdit, changes[0].ChangeType)
	assert.Equal(t, "/src/gateway.go", changes[0].Path)
	assert.Equal(t, domain.ChangeAdd, changes[1].ChangeType)
	assert.Equal(t, "0a1b2c", changes[2].OriginalPath)
}

func TestClient_CommitDiffStat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "def456", r.URL.Query().Get("baseVersion"))
		assert.Equal(t, "abc123", r.URL.Query().Get("targetVersion"))
		fmt.Fprint(w, `{"aheadCount": 4, "behindCount": 1}`)
	}))
	defer srv.Close()

	stat, err := testClient(t, srv.URL).CommitDiffStat(context.Background(), "gateway", "def456", "abc123")

	require.NoError(t, err)
	assert.Equal(t, 4, stat.Ahead)
	assert.Equal(t, 1, stat.Behind)
}

func TestClient_FileContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "src/gateway.go", r.URL.Query().Get("path"))
		assert.Equal(t, "commit", r.URL.Query().Get("versionType"))
		assert.Equal(t, "abc123", r.URL.Query().Get("version"))
		assert.Equal(t, "true", r.URL.Query().Get("includeContent"))
		assert.Equal(t, "application/octet-stream", r.Header.Get("Accept"))

		fmt.Fprint(w, "package gateway\n")
	}))
	defer srv.Close()

	content, found, err := testClient(t, srv.URL).FileContent(context.Background(), "gateway", "abc123", "/src/gateway.go")

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "package gateway\n", content)
}

func TestClient_FileContent_AbsentAtCommit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	content, found, err := testClient(t, srv.URL).FileContent(context.Background(), "gateway", "def456", "/src/added.go")

	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, content)
}
