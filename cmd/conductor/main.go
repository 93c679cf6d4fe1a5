package main

import (
	"context"
	"os"

	"thread-conductor/internal/cli"
	"thread-conductor/internal/config"
	"thread-conductor/internal/jokes"
)

func main() {
	defaults := config.Default()
	// joke and punchline go out back to back
	defaults.PunchlineDelay = 0

	cmd := cli.NewRootCommand(cli.Spec{
		Use:       "conductor",
		Short:     "Minimal conductor demo: one worker, one window, two labels",
		AppID:     "com.threadconductor.demo",
		Title:     "Conductor",
		EnvPrefix: "CONDUCTOR_",
		Jokes:     jokes.Classic,
		Defaults:  defaults,
	})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
