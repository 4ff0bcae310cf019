package main

import (
	"os"

	"github.com/opencourse/enroll/logger"
	"github.com/opencourse/enroll/server"
)

func main() {
	l := logger.New()

	srv, err := server.New(server.ConfigFromEnv())
	if err != nil {
		l.Fatal("failed constructing server", &logger.LogContext{Error: err})
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		l.Fatal("server exited", &logger.LogContext{Error: err})
		os.Exit(1)
	}
}
