package rest

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/teambuilder/internal/codec"
)

// writeQR responds with link rendered as a PNG QR code. The optional
// size query parameter sets the edge length in pixels.
func writeQR(log *slog.Logger, w http.ResponseWriter, r *http.Request, link string) {
	size := codec.DefaultQRSize
	if raw := r.URL.Query().Get("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "size must be an integer")
			return
		}
		size = n
	}

	img, err := codec.QRCode(link, size)
	if err != nil {
		handleError(log, w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(img) //nolint:errcheck
}
