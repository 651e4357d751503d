package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-parallel-pathtracer/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	workers := flag.Int("workers", 0, "Workers per render (0 = one per logical core)")
	flag.Parse()

	// Create and start web server
	webServer := server.NewServer(*port)
	webServer.SetNumWorkers(*workers)

	log.Printf("Parallel Path Tracer Web Server")
	log.Printf("Render a scene at http://localhost:%d/api/render?scene=default", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
