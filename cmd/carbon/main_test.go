package main_test

import (
	"bytes"
	"context"
	"testing"

	main "github.com/ashton-krac/ibm-carbon-terminal-chatbot/cmd/carbon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run(t *testing.T) {
	t.Run("no arguments shows help and errors", func(t *testing.T) {
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		m := main.NewMain()
		err := m.Run(context.Background(), nil, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
		assert.Contains(t, stdout.String(), "Usage:")
	})

	t.Run("help command succeeds", func(t *testing.T) {
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		m := main.NewMain()
		err := m.Run(context.Background(), []string{"help"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Usage:")
		assert.Contains(t, stdout.String(), "chat")
	})

	t.Run("unknown command errors", func(t *testing.T) {
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		m := main.NewMain()
		err := m.Run(context.Background(), []string{"bogus"}, stdout, stderr)

		require.Error(t, err)
	})

	t.Run("chat without OPENAI_API_KEY errors with hint", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "")

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		m := main.NewMain()
		err := m.Run(context.Background(), []string{"chat"}, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "OPENAI_API_KEY not set")
		assert.Contains(t, stderr.String(), "OPENAI_API_KEY environment variable not set")
	})

	t.Run("build without GEMINI_API_KEY errors with hint", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "")

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		m := main.NewMain()
		err := m.Run(context.Background(), []string{"--provider", "gemini", "build"}, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "GEMINI_API_KEY not set")
		assert.Contains(t, stderr.String(), "GEMINI_API_KEY environment variable not set")
	})

	t.Run("rejects unknown provider", func(t *testing.T) {
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		m := main.NewMain()
		err := m.Run(context.Background(), []string{"--provider", "anthropic", "chat"}, stdout, stderr)

		require.Error(t, err)
	})
}
