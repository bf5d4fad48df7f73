package utils

import (
	"encoding/json"
	"net/http"
	"time"

	"freshbasket/models"
	"freshbasket/session"
)

type M map[string]interface{}

func RespondWithError(w http.ResponseWriter, code int, msg string) {
	RespondWithJSON(w, code, map[string]string{"error": msg})
}

// Sends a JSON response
func RespondWithJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// SendResponse wraps data in the standard {status, message, data} envelope.
func SendResponse(w http.ResponseWriter, status int, data any, message string, err error) {
	resp := map[string]any{
		"status":  status,
		"message": message,
		"data":    data,
	}
	if err != nil {
		resp["error"] = err.Error()
	}
	RespondWithJSON(w, status, resp)
}

// RenderPage sends the view model of a page. Every page carries the session
// identity and consumes pending flash messages.
func RenderPage(w http.ResponseWriter, r *http.Request, status int, page string, data M) {
	sess := session.FromContext(r.Context())
	if data == nil {
		data = M{}
	}
	data["page"] = page
	data["is_logged_in"] = sess.IsLoggedIn()
	data["is_admin"] = sess.IsAdmin()
	data["user_name"] = sess.UserName
	data["flashes"] = sess.PopFlashes()
	data["now"] = time.Now().Format(models.TimeLayout)
	SendResponse(w, status, data, http.StatusText(status), nil)
}

// Redirect flashes message (when not empty) and sends a 303 to target.
func Redirect(w http.ResponseWriter, r *http.Request, target, category, message string) {
	if message != "" {
		session.FromContext(r.Context()).AddFlash(category, message)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// JSONResult answers the {success, message} calls of the storefront scripts.
func JSONResult(w http.ResponseWriter, success bool, message string, extra M) {
	resp := M{"success": success}
	if message != "" {
		resp["message"] = message
	}
	for k, v := range extra {
		resp[k] = v
	}
	RespondWithJSON(w, http.StatusOK, resp)
}
