package dotenv

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func readAll(t *testing.T, r io.Reader, max int) []string {
	t.Helper()
	lr := newLineReader(r, max)
	var lines []string
	for {
		line, ok, err := lr.next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			return lines
		}
		lines = append(lines, line)
	}
}

func TestLineReaderSplitsLines(t *testing.T) {
	got := readAll(t, strings.NewReader("A=1\n\nB=2\r\nC=3"), DefaultMaxLineLength)
	want := []string{"A=1", "", "B=2\r", "C=3"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestLineReaderChunksLongLines(t *testing.T) {
	got := readAll(t, strings.NewReader("abcdefghij\nk"), 5)
	want := []string{"abcd", "efgh", "ij", "k"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestLineReaderExactFitLeavesEmptyLine(t *testing.T) {
	got := readAll(t, strings.NewReader("abcd\nX"), 5)
	want := []string{"abcd", "", "X"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestLineReaderEmptyInput(t *testing.T) {
	if got := readAll(t, strings.NewReader(""), DefaultMaxLineLength); len(got) != 0 {
		t.Fatalf("expected no lines, got %q", got)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk gone")
}

func TestLineReaderPropagatesErrors(t *testing.T) {
	lr := newLineReader(failingReader{}, DefaultMaxLineLength)
	if _, _, err := lr.next(); err == nil {
		t.Fatal("expected read error")
	}
}
