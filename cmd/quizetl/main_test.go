package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunWritesOutputs(t *testing.T) {
	dir := t.TempDir()
	input := "question,subject,use,remark,response_A,response_B,correct\n" +
		"Capital of France?,Geo,Quiz,,Paris,Lyon,A\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "questions.csv"), []byte(input), 0o644))

	var stdout, stderr bytes.Buffer
	code := run([]string{"-data-dir", dir}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	require.FileExists(t, filepath.Join(dir, "questions_clean.csv"))
	require.FileExists(t, filepath.Join(dir, "quiz.json"))
	require.Contains(t, stdout.String(), "file loaded")
	require.Contains(t, stdout.String(), "Capital of France?")
}

func TestRunMissingRequiredColumn(t *testing.T) {
	dir := t.TempDir()
	input := "question,response_A\nWhat?,Yes\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "questions.csv"), []byte(input), 0o644))

	var stdout, stderr bytes.Buffer
	code := run([]string{"-data-dir", dir, "-preview", "0"}, &stdout, &stderr)
	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "configuration:")
	require.Contains(t, stderr.String(), "correct")
	require.NoFileExists(t, filepath.Join(dir, "quiz.json"))
}

func TestRunMalformedInput(t *testing.T) {
	dir := t.TempDir()
	input := "question,correct\nWhat?,A,extra\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "questions.csv"), []byte(input), 0o644))

	var stdout, stderr bytes.Buffer
	code := run([]string{"-data-dir", dir}, &stdout, &stderr)
	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "malformed input:")
	require.NoFileExists(t, filepath.Join(dir, "questions_clean.csv"))
}

func TestRunAcceptsQuotesInsideQuestion(t *testing.T) {
	dir := t.TempDir()
	input := "question,correct,response_A\nQue signifie \"SQL\" ?,A,Structured Query Language\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "questions.csv"), []byte(input), 0o644))

	var stdout, stderr bytes.Buffer
	code := run([]string{"-data-dir", dir, "-preview", "0"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	data, err := os.ReadFile(filepath.Join(dir, "quiz.json"))
	require.NoError(t, err)
	require.Contains(t, string(data), `"question": "Que signifie \"SQL\" ?"`)
}

func TestRunBadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 2, run([]string{"-nope"}, &stdout, &stderr))
}
