// Package greeting serves the same greeting as the HTTP service as a
// Cloud Functions HTTP entry point.
package greeting

import (
	"encoding/json"
	"net/http"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
)

// Message is the fixed greeting text.
const Message = "Hello, world!"

func init() {
	functions.HTTP("Greeting", greetingHandler)
}

// Response is the function response body.
type Response struct {
	Message string `json:"message"`
}

func greetingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(Response{Message: Message})
}
