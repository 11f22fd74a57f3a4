package middleware

import (
	"net/http"

	"github.com/hadirly/attendance-backend-go/internal/handler/http/response"
	"golang.org/x/crypto/bcrypt"
)

// PassphraseHeader carries the shared administrator passphrase. One static
// passphrase distinguishes admin actions from employee self check-in; this
// is deliberately not per-user authentication.
const PassphraseHeader = "X-Admin-Passphrase"

// AdminOnly gates a route group behind the shared passphrase. The hash is
// computed once at config load; requests are compared with bcrypt.
func AdminOnly(passphraseHash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			passphrase := r.Header.Get(PassphraseHeader)
			if passphrase == "" {
				response.Unauthorized(w, "Administrator passphrase required")
				return
			}
			if err := bcrypt.CompareHashAndPassword([]byte(passphraseHash), []byte(passphrase)); err != nil {
				response.Forbidden(w, "Invalid administrator passphrase")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
