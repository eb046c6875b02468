package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sandeepkv93/rem/internal/config"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAddListThenPrintLists(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "rem.db")
	logFile := filepath.Join(dir, "rem.log")

	out, err := run(t, "--db", db, "--log-file", logFile, "add-list", "Work", "--color", "#FF8800")
	require.NoError(t, err)
	require.Contains(t, out, "created list Work")

	out, err = run(t, "--db", db, "--log-file", logFile, "lists")
	require.NoError(t, err)
	require.Contains(t, out, defaultListName)
	require.Contains(t, out, "Work")
	require.Less(t, strings.Index(out, defaultListName), strings.Index(out, "Work"))

	logs, err := os.ReadFile(logFile)
	require.NoError(t, err)
	require.Contains(t, string(logs), "list created")
}

func TestAddListRejectsDuplicateAndBlank(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "rem.db")
	logFile := filepath.Join(dir, "rem.log")

	_, err := run(t, "--db", db, "--log-file", logFile, "add-list", "Home")
	require.NoError(t, err)
	_, err = run(t, "--db", db, "--log-file", logFile, "add-list", "Home")
	require.Error(t, err)
	_, err = run(t, "--db", db, "--log-file", logFile, "add-list", "  ")
	require.Error(t, err)
}

func TestLoggerHonoursDebug(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Defaults(dir)
	cfg.Debug = true
	logger, err := newLogger(cfg)
	require.NoError(t, err)
	logger.Debug("debug line")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	require.Contains(t, string(data), "debug line")
}
