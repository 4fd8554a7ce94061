package testlogger

import (
	"strings"
	"testing"

	"github.com/Cloud-Foundations/containers/lib/log"
)

var _ log.DebugLogger = (*Logger)(nil)

type recorder struct {
	fatals []string
	logs   []string
}

func (r *recorder) Fatal(v ...interface{}) {
	r.fatals = append(r.fatals, v[0].(string))
}

func (r *recorder) Fatalf(format string, v ...interface{}) {
	panic("Fatalf should not be called")
}

func (r *recorder) Log(v ...interface{}) {
	r.logs = append(r.logs, v[0].(string))
}

func (r *recorder) Logf(format string, v ...interface{}) {
	panic("Logf should not be called")
}

func TestTrailingNewlineStripped(t *testing.T) {
	r := &recorder{}
	logger := New(r)
	logger.Printf("length=%d\n", 3)
	logger.Println("done")
	logger.Debugf(2, "level %d", 2)
	expected := []string{"length=3", "done", "level 2"}
	if len(r.logs) != len(expected) {
		t.Fatalf("got: %q, expected: %q", r.logs, expected)
	}
	for index, line := range expected {
		if r.logs[index] != line {
			t.Fatalf("got: %q, expected: %q", r.logs, expected)
		}
	}
}

func TestFatalAndPanic(t *testing.T) {
	r := &recorder{}
	logger := New(r)
	logger.Fatalf("bad %s", "thing")
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("Panic() did not panic")
			}
		}()
		logger.Panic("worse")
	}()
	if len(r.fatals) != 2 || r.fatals[0] != "bad thing" ||
		r.fatals[1] != "worse" {
		t.Fatalf("fatals: %q", r.fatals)
	}
}

func TestTimestamps(t *testing.T) {
	r := &recorder{}
	NewWithTimestamps(r).Print("hello")
	if len(r.logs) != 1 || !strings.HasPrefix(r.logs[0], "[") ||
		!strings.HasSuffix(r.logs[0], "s] hello") {
		t.Fatalf("logs: %q", r.logs)
	}
}

func TestAdaptsTestingT(t *testing.T) {
	New(t).Println("logging through testing.T")
}
