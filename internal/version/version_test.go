package version

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	exterrors "github.com/wexinc/extcat/internal/errors"
)

func TestNewInfo(t *testing.T) {
	info := NewInfo("1.0.0", "abc123", "2024-01-01")

	if info.Version != "1.0.0" {
		t.Errorf("Version = %q, want %q", info.Version, "1.0.0")
	}
	if info.Commit != "abc123" {
		t.Errorf("Commit = %q, want %q", info.Commit, "abc123")
	}
	if info.Date != "2024-01-01" {
		t.Errorf("Date = %q, want %q", info.Date, "2024-01-01")
	}
	if info.GoVer == "" || info.OS == "" || info.Arch == "" {
		t.Errorf("runtime fields should be set: %+v", info)
	}
}

func TestInfoString(t *testing.T) {
	info := NewInfo("1.0.0", "abc123", "2024-01-01")

	if s := info.String(); s != "extcat 1.0.0 (commit: abc123, built: 2024-01-01)" {
		t.Errorf("String() = %q, unexpected format", s)
	}
}

func TestInfoFullString(t *testing.T) {
	info := NewInfo("1.0.0", "abc123", "2024-01-01")
	s := info.FullString()

	for _, want := range []string{"extcat 1.0.0", "Commit:   abc123", "OS/Arch:"} {
		if !strings.Contains(s, want) {
			t.Errorf("FullString() missing %q:\n%s", want, s)
		}
	}
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"1.0.1", "1.0.0", 1},
		{"1.0.0", "1.0.1", -1},
		{"1.1.0", "1.0.0", 1},
		{"2.0.0", "1.0.0", 1},
		{"10.0.0", "2.0.0", 1},
		{"1.10.0", "1.2.0", 1},
		{"v1.0.0", "1.0.0", 0},
		{"1.0.0-rc1", "1.0.0", -1},
		{"1.0.0", "1.0.0-rc1", 1},
		{"1.0.0", "dev", 1},
		{"dev", "dev", 0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			if got := CompareVersions(tt.a, tt.b); got != tt.want {
				t.Errorf("CompareVersions(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func newReleaseServer(t *testing.T, status int, body string) *Checker {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/wexinc/extcat/releases/latest" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if ua := r.Header.Get("User-Agent"); ua != "extcat-version-checker" {
			t.Errorf("unexpected User-Agent %q", ua)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	c := NewChecker()
	c.APIBase = server.URL
	return c
}

func TestGetLatestRelease(t *testing.T) {
	c := newReleaseServer(t, http.StatusOK, `{"tag_name": "v1.2.0", "html_url": "https://example.com/r"}`)

	release, err := c.GetLatestRelease(context.Background())
	if err != nil {
		t.Fatalf("GetLatestRelease() error = %v", err)
	}
	if release.TagName != "v1.2.0" {
		t.Errorf("TagName = %q, want v1.2.0", release.TagName)
	}
}

func TestGetLatestRelease_NotFound(t *testing.T) {
	c := newReleaseServer(t, http.StatusNotFound, `{"message": "Not Found"}`)

	_, err := c.GetLatestRelease(context.Background())
	if !errors.Is(err, exterrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetLatestRelease_ServerError(t *testing.T) {
	c := newReleaseServer(t, http.StatusInternalServerError, "boom")

	_, err := c.GetLatestRelease(context.Background())
	if err == nil || !strings.Contains(err.Error(), "500") {
		t.Errorf("expected status error, got %v", err)
	}
}

func TestGetLatestRelease_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	base := server.URL
	server.Close()

	c := NewChecker()
	c.APIBase = base

	_, err := c.GetLatestRelease(context.Background())
	if !exterrors.IsRetryable(err) {
		t.Errorf("connection failures should be retryable network errors, got %v", err)
	}
}

func TestCheckForUpdate(t *testing.T) {
	tests := []struct {
		name    string
		current string
		update  bool
	}{
		{"older", "1.1.0", true},
		{"same", "v1.2.0", false},
		{"newer", "1.3.0", false},
		{"dev build", "dev", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newReleaseServer(t, http.StatusOK, `{"tag_name": "v1.2.0"}`)

			release, err := c.CheckForUpdate(context.Background(), tt.current)
			if err != nil {
				t.Fatalf("CheckForUpdate() error = %v", err)
			}
			if (release != nil) != tt.update {
				t.Errorf("update available = %v, want %v", release != nil, tt.update)
			}
		})
	}
}
