package audit_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"followaudit/pkg/audit"
	"followaudit/pkg/followset"
	"followaudit/pkg/logger"
	"followaudit/pkg/storage"
	"followaudit/pkg/threads"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// threadsServer fakes the follow endpoints, rejecting a wrong bearer token
type threadsServer struct {
	mu        sync.Mutex
	following []string
	rejected  map[string]int
	unfollows []string
}

func (s *threadsServer) handler(token string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/users/following", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+token {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		resp := threads.FollowingResponse{}
		for _, id := range s.following {
			resp.Data = append(resp.Data, threads.Account{ID: id})
		}
		_ = json.NewEncoder(w).Encode(resp)
	})
	mux.HandleFunc("/friendships/destroy/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		id := strings.TrimPrefix(r.URL.Path, "/friendships/destroy/")
		s.mu.Lock()
		defer s.mu.Unlock()
		s.unfollows = append(s.unfollows, id)
		if status, ok := s.rejected[id]; ok {
			w.WriteHeader(status)
			return
		}
		_, _ = io.WriteString(w, `{"status":"ok"}`)
	})
	return mux
}

func TestFollowAuditEndToEnd(t *testing.T) {
	fake := &threadsServer{
		following: []string{"a", "c"},
		rejected:  map[string]int{"d": http.StatusBadRequest},
	}
	server := httptest.NewServer(fake.handler("secret"))
	defer server.Close()

	cacheFile := filepath.Join(t.TempDir(), "following_list.json")
	require.NoError(t, os.WriteFile(cacheFile, []byte(`["a","b","c","d"]`), 0644))

	log := logger.NewTestLogger()
	client := threads.NewClient(server.URL, "secret", 0, log)
	store := storage.NewFollowStore(cacheFile, log)
	notes := audit.NewRecordingNotifier()

	a, err := audit.New("secret", client, store, notes, audit.WithLogger(log))
	require.NoError(t, err)
	require.NoError(t, a.Load())

	drift := a.ComputeDrift()
	assert.Equal(t, []string{"b", "d"}, drift.Sorted())

	report := a.Unfollow(drift)
	assert.Equal(t, []string{"b"}, report.Succeeded.Sorted())
	assert.Contains(t, report.Failed, "d")
	assert.Equal(t, []string{"a", "c", "d"}, a.Cache().Sorted())

	// Unfollow leaves the file alone
	onDisk, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, 4, onDisk.Len())

	require.NoError(t, a.RefreshCache())
	onDisk, err = store.Load()
	require.NoError(t, err)
	assert.True(t, onDisk.Equal(followset.New("a", "c")))

	assert.ElementsMatch(t, []string{"b", "d"}, fake.unfollows)
	assert.True(t, log.HasMessage("Unfollow succeeded"))
	assert.True(t, log.HasMessage("Unfollow failed"))
}

func TestFollowAuditWrongToken(t *testing.T) {
	fake := &threadsServer{following: []string{"a"}}
	server := httptest.NewServer(fake.handler("secret"))
	defer server.Close()

	store := storage.NewFollowStore(filepath.Join(t.TempDir(), "following_list.json"), logger.NewNopLogger())
	notes := audit.NewRecordingNotifier()
	client := threads.NewClient(server.URL, "wrong", 0, logger.NewNopLogger())

	a, err := audit.New("wrong", client, store, notes, audit.WithLogger(logger.NewNopLogger()))
	require.NoError(t, err)
	require.NoError(t, a.Load())

	live := a.FetchLive()
	assert.True(t, live.IsEmpty())
	require.Error(t, a.LastFetchError())

	errs := notes.ByLevel(audit.LevelError)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "401")
	assert.Equal(t, []string{audit.NoticeStartingFresh}, notes.ByLevel(audit.LevelWarn))
}
