package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
)

func main() {
	// a missing .env is fine, the variables may come from the environment
	_ = godotenv.Load()

	server, err := InitializeServer()
	if err != nil {
		log.Fatal(fmt.Sprintf("could not create server: %s", err))
	}

	log.Printf("starting server at: localhost:%s", server.Port)
	err = server.Run(fmt.Sprintf(":%s", server.Port))
	if err != nil {
		log.Fatal(fmt.Sprintf("could not start server: %s", err))
	}
}
