package helpers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

func RespondWithJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("Failed to encode response payload", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, status int, codes []string) {
	RespondWithJSON(w, status, map[string][]string{"errors": codes})
}
