package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/atinyakov/pwncheck/internal/client/rangeapi"
	"github.com/atinyakov/pwncheck/internal/config"
)

// rangeServer answers /range/5BAA6 with the suffix of "password" and every
// other prefix with an unrelated line. fail makes every request return 503.
func rangeServer(t *testing.T, fail bool) (*httptest.Server, func() []string) {
	t.Helper()
	var (
		mu    sync.Mutex
		paths []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.URL.Path)
		mu.Unlock()
		if fail {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		if r.URL.Path == "/range/5BAA6" {
			_, _ = w.Write([]byte("011053FD0102E94D6AE2F8B83D76FAF94F6:1\r\n1E4C9B93F3F0682250B6CF8331B7EE68FD8:3730471\r\n"))
			return
		}
		_, _ = w.Write([]byte("0000000000000000000000000000000000A:5\r\n"))
	}))
	t.Cleanup(srv.Close)
	return srv, func() []string {
		mu.Lock()
		defer mu.Unlock()
		return append([]string(nil), paths...)
	}
}

func writeList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "password.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func testOptions(apiURL string, args ...string) *config.Options {
	return &config.Options{APIURL: apiURL, Timeout: config.Duration(time.Second), Args: args}
}

func TestRun_ReportsEachPassword(t *testing.T) {
	srv, paths := rangeServer(t, false)
	path := writeList(t, "password\nxk9#nonsense-unlikely-pw!\n")

	var out bytes.Buffer
	err := run(context.Background(), testOptions(srv.URL, path), zap.NewNop(), &out)
	require.NoError(t, err)

	assert.Equal(t,
		"password was found 3730471 times... you should probably change your password!\n"+
			"xk9#nonsense-unlikely-pw! was NOT found. Carry on!\n"+
			"done!\n",
		out.String())
	got := paths()
	require.Len(t, got, 2)
	assert.Equal(t, "/range/5BAA6", got[0])
	for _, p := range got {
		assert.NotContains(t, p, "password")
	}
}

func TestRun_RemoteFailureAborts(t *testing.T) {
	srv, _ := rangeServer(t, true)
	path := writeList(t, "password\n")

	var out bytes.Buffer
	err := run(context.Background(), testOptions(srv.URL, path), zap.NewNop(), &out)

	var qerr *rangeapi.RemoteQueryError
	require.ErrorAs(t, err, &qerr)
	assert.Equal(t, http.StatusServiceUnavailable, qerr.Status)
	assert.Empty(t, out.String())
}

func TestRun_Usage(t *testing.T) {
	err := run(context.Background(), testOptions("http://unused"), zap.NewNop(), &bytes.Buffer{})
	assert.EqualError(t, err, usage)

	err = run(context.Background(), testOptions("http://unused", "a", "b"), zap.NewNop(), &bytes.Buffer{})
	assert.EqualError(t, err, usage)
}

func TestRun_MissingFile(t *testing.T) {
	err := run(context.Background(), testOptions("http://unused", filepath.Join(t.TempDir(), "nope")), zap.NewNop(), &bytes.Buffer{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
