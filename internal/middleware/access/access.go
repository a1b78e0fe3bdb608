package access

import (
	"log/slog"
	"net/http"

	"github.com/MahlumInnovationsLLC/MasterScheduler-sub001/internal/authz"
)

// RoleHeader carries the caller's role, set by the auth gateway in front of
// this service.
const RoleHeader = "X-User-Role"

// RequireCapability rejects requests whose role lacks the capability. An
// absent or unknown role downgrades to viewer, so mutating routes fail closed.
func RequireCapability(log *slog.Logger, capability authz.Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := authz.RoleFromString(r.Header.Get(RoleHeader))
			if !authz.Allowed(role, capability) {
				log.Warn("capability denied",
					slog.String("role", string(role)),
					slog.String("capability", string(capability)),
					slog.String("path", r.URL.Path),
				)
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
