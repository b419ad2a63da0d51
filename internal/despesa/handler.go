package despesa

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ClinicaVitalis/api-repasses/internal/auth"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// DespesaDTO carrega os campos editáveis de um lançamento avulso
type DespesaDTO struct {
	Data          string  `json:"data"` // "2006-01-02"
	Valor         float64 `json:"valor"`
	Descricao     string  `json:"descricao"`
	Categoria     string  `json:"categoria"`
	Subcategoria  string  `json:"subcategoria"`
	MesReferencia string  `json:"mesReferencia"`
}

// Handler gerencia rotas de despesas avulsas
type Handler struct {
	Repo *Repository
}

// NewHandler cria um novo Handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

func aplicarDTO(d *Despesa, dto *DespesaDTO) error {
	data, err := time.Parse("2006-01-02", dto.Data)
	if err != nil {
		return err
	}

	d.Data = data
	d.Valor = dto.Valor
	d.Descricao = dto.Descricao
	d.Categoria = dto.Categoria
	d.Subcategoria = dto.Subcategoria
	d.MesReferencia = dto.MesReferencia
	return nil
}

// Criar trata POST /despesas
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	usuarioID := r.Context().Value(auth.CtxUserID).(uint)
	defer r.Body.Close()

	var dto DespesaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	d := Despesa{
		ID:        uuid.NewString(),
		UsuarioID: usuarioID,
		Tipo:      TipoDespesa,
	}
	if err := aplicarDTO(&d, &dto); err != nil {
		http.Error(w, "data inválida", http.StatusBadRequest)
		return
	}

	if err := h.Repo.Create(&d); err != nil {
		http.Error(w, "erro ao criar despesa", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(d)
}

// Listar trata GET /despesas
// Aceita um query param opcional `medico` para filtrar pela subcategoria.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	usuarioID := r.Context().Value(auth.CtxUserID).(uint)

	medico := r.URL.Query().Get("medico")

	var list []Despesa
	var err error
	if medico != "" {
		list, err = h.Repo.ListAvulsasPorMedico(usuarioID, medico)
	} else {
		list, err = h.Repo.ListByUsuario(usuarioID)
	}
	if err != nil {
		http.Error(w, "erro ao buscar despesas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// BuscarPorID trata GET /despesas/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	usuarioID := r.Context().Value(auth.CtxUserID).(uint)

	d, err := h.Repo.FindByID(usuarioID, mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "despesa não encontrada", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(d)
}

// Atualizar trata PUT /despesas/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	usuarioID := r.Context().Value(auth.CtxUserID).(uint)

	d, err := h.Repo.FindByID(usuarioID, mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "despesa não encontrada", http.StatusNotFound)
		return
	}

	var dto DespesaDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	if err := aplicarDTO(d, &dto); err != nil {
		http.Error(w, "data inválida", http.StatusBadRequest)
		return
	}

	if err := h.Repo.Update(d); err != nil {
		http.Error(w, "erro ao atualizar despesa", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(d)
}

// Deletar trata DELETE /despesas/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	usuarioID := r.Context().Value(auth.CtxUserID).(uint)

	d, err := h.Repo.FindByID(usuarioID, mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "despesa não encontrada", http.StatusNotFound)
		return
	}

	if err := h.Repo.Delete(d); err != nil {
		http.Error(w, "erro ao excluir despesa", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
