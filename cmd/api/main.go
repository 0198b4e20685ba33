package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/ekurova/postflow/backend/internal/server"
)

func main() {
	srv := server.NewHTTPServer()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server error: %v", err)
	}
}
