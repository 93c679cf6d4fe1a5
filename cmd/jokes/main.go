package main

import (
	"context"
	"os"

	"thread-conductor/internal/cli"
	"thread-conductor/internal/config"
	"thread-conductor/internal/jokes"
)

const (
	AppID = "com.threadconductor.jokes"
	Title = "Jokes"
)

func main() {
	cmd := cli.NewRootCommand(cli.Spec{
		Use:       "jokes",
		Short:     "Tell jokes from a worker goroutine, punchline after a dramatic pause",
		AppID:     AppID,
		Title:     Title,
		EnvPrefix: "JOKES_",
		Jokes:     jokes.Extended,
		Defaults:  config.Default(),
	})

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
