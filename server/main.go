//go:build !js
// +build !js

// Development server for the bandstand page: serves the embedded page at /
// and the compiled GopherJS bundle from a static directory.
package main

import (
	_ "embed"
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

//go:embed index.html
var indexHTML []byte

func newRouter(staticDir string) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(indexHTML)
	}).Methods(http.MethodGet)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	r.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))

	return r
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	staticDir := flag.String("static", "./static", "directory with the compiled bundle")
	flag.Parse()

	handler := cors.Default().Handler(newRouter(*staticDir))

	srv := &http.Server{
		Addr:         *addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Printf("bandstand dev server on %s (static: %s)", *addr, *staticDir)
	log.Fatal(srv.ListenAndServe())
}
