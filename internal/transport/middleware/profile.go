package middleware

import (
	"net/http"

	"github.com/heartmarshall/teambuilder/pkg/ctxutil"
)

// ProfileHeader names the profile whose saved teams and draft a request
// works with.
const ProfileHeader = "X-Profile-Id"

// Profile stores the request's profile id in the context. Requests without
// the header use ctxutil.DefaultProfile. Websocket clients cannot set
// headers, so the "profile" query parameter is accepted as a fallback.
func Profile(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(ProfileHeader)
		if id == "" {
			id = r.URL.Query().Get("profile")
		}
		next.ServeHTTP(w, r.WithContext(ctxutil.WithProfile(r.Context(), id)))
	})
}
