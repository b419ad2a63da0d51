package medico

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"

	"github.com/ClinicaVitalis/api-repasses/internal/auth"
	"github.com/ClinicaVitalis/api-repasses/internal/despesa"
	"github.com/ClinicaVitalis/api-repasses/internal/repasse"
)

// Handler gerencia a listagem de médicos. Médico não é uma entidade própria:
// o nome aparece nos repasses e na subcategoria das despesas avulsas, e a
// lista é a união das duas fontes.
type Handler struct {
	Repasses *repasse.Repository
	Despesas *despesa.Repository
}

// NewHandler cria um novo Handler
func NewHandler(repasses *repasse.Repository, despesas *despesa.Repository) *Handler {
	return &Handler{Repasses: repasses, Despesas: despesas}
}

// Listar trata GET /medicos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	usuarioID := r.Context().Value(auth.CtxUserID).(uint)

	dosRepasses, err := h.Repasses.ListMedicos(usuarioID)
	if err != nil {
		http.Error(w, "erro ao buscar médicos", http.StatusInternalServerError)
		return
	}
	dasDespesas, err := h.Despesas.ListMedicos(usuarioID)
	if err != nil {
		http.Error(w, "erro ao buscar médicos", http.StatusInternalServerError)
		return
	}

	vistos := make(map[string]bool)
	nomes := []string{}
	for _, nome := range append(dosRepasses, dasDespesas...) {
		nome = strings.TrimSpace(nome)
		if nome == "" || vistos[nome] {
			continue
		}
		vistos[nome] = true
		nomes = append(nomes, nome)
	}
	sort.Strings(nomes)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(nomes)
}
