package main

import (
	"flag"
	"log"

	"github.com/df07/go-reference-pathtracer/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port to serve on")
	flag.Parse()

	srv := server.NewServer(*port)
	log.Fatal(srv.Start())
}
