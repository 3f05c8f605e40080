package main

import (
	"os"

	"github.com/saulo-duarte/trivia-api/internal/config"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		config.Logger.WithError(err).Fatal("trivia-api exited with error")
	}
}
