package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	if err != nil || got != "hello world" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetTextWithDefault(t *testing.T) {
	var out bytes.Buffer

	// empty reply keeps the current value
	got, err := GetTextWithDefault(rdr("\n"), "Name", "Gmail", &out)
	if err != nil || got != "Gmail" {
		t.Fatalf("got %q, err=%v", got, err)
	}
	if !strings.Contains(out.String(), "[Gmail]") {
		t.Fatalf("prompt should show the current value, got %q", out.String())
	}

	// non-empty reply overrides
	got, err = GetTextWithDefault(rdr("Netflix\n"), "Name", "Gmail", &out)
	if err != nil || got != "Netflix" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetPassword_Error(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}
	var out bytes.Buffer
	if _, err := GetPassword(&out); err == nil {
		t.Fatal("expected error")
	}
}

func TestGetPasswordWithDefault_EmptyKeepsCurrent(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, nil
	}
	var out bytes.Buffer
	got, err := GetPasswordWithDefault(&out, "current")
	if err != nil || got != "current" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}
