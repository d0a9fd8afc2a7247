package handler

import "net/http"

// Greeting is the body served on GET /.
const Greeting = "Hello World from CI/CD demo!"

// Hello handles GET / with a fixed plain-text greeting.
func Hello(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(Greeting))
}
