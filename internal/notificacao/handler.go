package notificacao

import (
	"encoding/json"
	"net/http"
)

// Handler expõe o disparo manual de alertas
type Handler struct{}

// NewHandler cria um novo Handler
func NewHandler() *Handler {
	return &Handler{}
}

// EnviarAlerta trata POST /notificar
func (h *Handler) EnviarAlerta(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Medico string `json:"medico"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Medico == "" {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	go EnviarWebhookAlerta(payload.Medico)

	w.WriteHeader(http.StatusAccepted)
}
