package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thread-conductor/internal/config"
	"thread-conductor/internal/jokes"
)

func testSpec() Spec {
	return Spec{
		Use:       "jokes-test",
		Short:     "test demo",
		AppID:     "test.jokes",
		Title:     "Jokes",
		EnvPrefix: "CLITEST_",
		Jokes:     jokes.Classic,
		Defaults:  config.Default(),
	}
}

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand(testSpec())

	require.NotNil(t, cmd)
	assert.Equal(t, "jokes-test", cmd.Use)
	assert.NotNil(t, cmd.RunE)

	for _, name := range []string{"headless", "count", "delay", "log-level", "log-format"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
	assert.Equal(t, "3", cmd.Flags().Lookup("count").DefValue)
	assert.Equal(t, "1s", cmd.Flags().Lookup("delay").DefValue)
}

func TestHeadlessRun(t *testing.T) {
	cmd := NewRootCommand(testSpec())
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"--headless", "--count", "2", "--delay", "0s", "--log-level", "error"})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, cmd.ExecuteContext(ctx))

	assert.Contains(t, out.String(), jokes.Classic[0].Setup)
	assert.Contains(t, out.String(), jokes.Classic[1].Punchline)
}

func TestEnvironmentSelectsHeadless(t *testing.T) {
	t.Setenv("CLITEST_HEADLESS", "true")
	t.Setenv("CLITEST_COUNT", "1")
	t.Setenv("CLITEST_PUNCHLINE_DELAY", "0s")
	t.Setenv("CLITEST_LOG_LEVEL", "error")

	cmd := NewRootCommand(testSpec())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), jokes.Classic[0].Punchline)
}

func TestInvalidFlagValue(t *testing.T) {
	cmd := NewRootCommand(testSpec())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--headless", "--count", "-1"})

	assert.Error(t, cmd.ExecuteContext(context.Background()))
}

func TestRejectsArguments(t *testing.T) {
	cmd := NewRootCommand(testSpec())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})

	assert.Error(t, cmd.ExecuteContext(context.Background()))
}
