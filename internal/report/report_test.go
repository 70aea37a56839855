package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/atinyakov/pwncheck/internal/models"
)

func TestWrite(t *testing.T) {
	cases := []struct {
		name string
		in   models.LeakResult
		want string
	}{
		{"found", models.LeakResult{Password: "abc123", Count: 389000}, "abc123 was found 389000 times... you should probably change your password!\n"},
		{"not found", models.LeakResult{Password: "xk9#nonsense-unlikely-pw!"}, "xk9#nonsense-unlikely-pw! was NOT found. Carry on!\n"},
		{"empty password", models.LeakResult{Password: "", Count: 1}, " was found 1 times... you should probably change your password!\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, tc.in); err != nil {
				t.Fatalf("Write returned error: %v", err)
			}
			if got := buf.String(); got != tc.want {
				t.Errorf("Write = %q; want %q", got, tc.want)
			}
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWriter_PropagatesError(t *testing.T) {
	emit := Writer(failingWriter{})
	if err := emit(models.LeakResult{Password: "a"}); err == nil {
		t.Fatal("expected write error")
	}
}
