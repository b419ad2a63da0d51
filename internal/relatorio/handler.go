package relatorio

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ClinicaVitalis/api-repasses/internal/auth"
	"github.com/ClinicaVitalis/api-repasses/internal/despesa"
	"github.com/ClinicaVitalis/api-repasses/internal/repasse"
	"github.com/gorilla/mux"
)

// Handler gerencia a rota de relatório por médico
type Handler struct {
	Repasses *repasse.Repository
	Despesas *despesa.Repository
}

// NewHandler cria um novo Handler
func NewHandler(repasses *repasse.Repository, despesas *despesa.Repository) *Handler {
	return &Handler{Repasses: repasses, Despesas: despesas}
}

// GerarRelatorio trata GET /medicos/{nome}/relatorio
// Query params opcionais: `mes` ("YYYY-MM") ou `inicio`/`fim` ("2006-01-02");
// o período customizado tem precedência sobre o mês. Médico sem registros
// devolve um relatório zerado, não um erro.
func (h *Handler) GerarRelatorio(w http.ResponseWriter, r *http.Request) {
	usuarioID := r.Context().Value(auth.CtxUserID).(uint)
	nome := mux.Vars(r)["nome"]

	f := Filtro{
		NomeMedico:    nome,
		MesReferencia: r.URL.Query().Get("mes"),
	}
	if s := r.URL.Query().Get("inicio"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			http.Error(w, "data de início inválida", http.StatusBadRequest)
			return
		}
		f.Inicio = &t
	}
	if s := r.URL.Query().Get("fim"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			http.Error(w, "data de fim inválida", http.StatusBadRequest)
			return
		}
		f.Fim = &t
	}

	repasses, err := h.Repasses.ListByMedico(usuarioID, nome)
	if err != nil {
		http.Error(w, "erro ao buscar repasses", http.StatusInternalServerError)
		return
	}
	avulsas, err := h.Despesas.ListAvulsasPorMedico(usuarioID, nome)
	if err != nil {
		http.Error(w, "erro ao buscar despesas", http.StatusInternalServerError)
		return
	}

	rel := Gerar(repasses, avulsas, f)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rel)
}
