package main

import (
	"errors"
	"flag"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		args []string
		want Config
	}{
		{nil, Config{TabStop: 8}},
		{[]string{"main.go"}, Config{TabStop: 8, Filename: "main.go"}},
		{[]string{"-tabstop", "4", "a.c"}, Config{TabStop: 4, Filename: "a.c"}},
		{[]string{"-log", "/tmp/red.log", "-debug"}, Config{TabStop: 8, LogPath: "/tmp/red.log", Debug: true}},
		{[]string{"-system-clipboard"}, Config{TabStop: 8, SystemClipboard: true}},
		{[]string{"-version"}, Config{TabStop: 8, ShowVersion: true}},
	}
	for _, tc := range tests {
		got, err := parseConfig(tc.args, io.Discard)
		if err != nil {
			t.Errorf("parseConfig(%q) returned error: %v", tc.args, err)
			continue
		}
		if *got != tc.want {
			t.Errorf("parseConfig(%q)=%+v, want %+v", tc.args, *got, tc.want)
		}
	}
}

func TestParseConfig_Errors(t *testing.T) {
	tests := [][]string{
		{"-tabstop", "0"},
		{"-tabstop", "x"},
		{"-unknown"},
		{"a.txt", "b.txt"},
	}
	for _, args := range tests {
		if _, err := parseConfig(args, io.Discard); err == nil {
			t.Errorf("parseConfig(%q) returned no error", args)
		}
	}
}

func TestParseConfig_Help(t *testing.T) {
	var out strings.Builder
	_, err := parseConfig([]string{"-h"}, &out)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("parseConfig(-h)=%v, want flag.ErrHelp", err)
	}
	if !strings.HasPrefix(out.String(), "usage: red [flags] [file]") {
		t.Fatalf("usage output=%q", out.String())
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger(&Config{})
	if err != nil {
		t.Fatalf("newLogger returned error: %v", err)
	}
	if logger.Core().Enabled(zapcore.DebugLevel) || logger.Core().Enabled(zapcore.ErrorLevel) {
		t.Fatalf("expected a no-op logger without a log path")
	}

	path := filepath.Join(t.TempDir(), "red.log")
	logger, err = newLogger(&Config{LogPath: path})
	if err != nil {
		t.Fatalf("newLogger returned error: %v", err)
	}
	if logger.Core().Enabled(zapcore.DebugLevel) || !logger.Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("expected info level logging")
	}

	logger, err = newLogger(&Config{LogPath: path, Debug: true})
	if err != nil {
		t.Fatalf("newLogger returned error: %v", err)
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug level logging")
	}
}
