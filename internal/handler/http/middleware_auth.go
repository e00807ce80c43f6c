package http

import (
	"net/http"

	"github.com/MKhiriev/go-market-keeper/internal/logger"
	"github.com/MKhiriev/go-market-keeper/internal/service"
	"github.com/MKhiriev/go-market-keeper/internal/utils"
)

// auth admits the request only when the access gate accepts its
// "Authorization" header, and stores the admitted admin id in the request
// context under [utils.AdminIDCtxKey].
//
// Every rejection gets the same 401 body so callers cannot tell a missing
// header from an expired or forged token.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		adminID, err := h.services.AccessGate.Authorize(ctx, r.Header.Get("Authorization"))
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Str("func", "*Handler.auth").Msg("request rejected by access gate")
			unauthorized(w)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithAdminID(ctx, adminID)))
	})
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="market"`)
	utils.WriteError(w, service.ErrUnauthenticated.Error(), http.StatusUnauthorized)
}
