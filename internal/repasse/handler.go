package repasse

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ClinicaVitalis/api-repasses/internal/auth"
	"github.com/ClinicaVitalis/api-repasses/internal/notificacao"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// Handler gerencia rotas de repasses médicos
type Handler struct {
	Repo *Repository
}

// NewHandler cria um novo Handler
func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

func tipoOpcaoValido(tipo string) bool {
	switch tipo {
	case TipoOpcao1, TipoOpcao2, TipoOpcao3, TipoDespesa:
		return true
	}
	return false
}

// aplicarDTO preenche o model a partir do DTO e recalcula todos os campos
// derivados. Usado na criação e na edição: nunca confia em valores de
// desconto vindos do cliente ou previamente armazenados.
func aplicarDTO(rep *Repasse, dto *RepasseDTO) error {
	data, err := time.Parse("2006-01-02", dto.Data)
	if err != nil {
		return err
	}

	rep.Data = data
	rep.MesReferencia = dto.MesReferencia
	rep.NomeMedico = dto.NomeMedico
	rep.TipoOpcao = dto.TipoOpcao
	rep.Categoria = dto.Categoria
	rep.Descricao = dto.Descricao
	rep.FormaPagamento = dto.FormaPagamento
	rep.CategoriaDespesa = dto.CategoriaDespesa
	rep.ValorDespesa = dto.ValorDespesa

	if dto.TipoOpcao == TipoDespesa {
		// lançamento de pura despesa: campos de entrada zerados
		rep.Valor = 0
		rep.PercentualDesconto = 0
		rep.ValorDesconto = 0
		rep.PercentualDescontoPagamento = 0
		rep.ValorDescontoPagamento = 0
		rep.ValorLiquido = 0
		return nil
	}

	valores := CalcularValores(dto.Valor, dto.TipoOpcao, dto.FormaPagamento)
	rep.Valor = dto.Valor
	rep.PercentualDesconto = valores.PercentualDesconto
	rep.ValorDesconto = valores.ValorDesconto
	rep.PercentualDescontoPagamento = valores.PercentualDescontoPagamento
	rep.ValorDescontoPagamento = valores.ValorDescontoPagamento
	rep.ValorLiquido = valores.ValorLiquido
	return nil
}

func validarDTO(dto *RepasseDTO) string {
	if dto.NomeMedico == "" {
		return "nome do médico é obrigatório"
	}
	if dto.MesReferencia == "" {
		return "mês de referência é obrigatório"
	}
	if !tipoOpcaoValido(dto.TipoOpcao) {
		return "tipo de opção inválido"
	}
	if dto.ValorDespesa > 0 && dto.CategoriaDespesa == "" {
		return "categoria de despesa é obrigatória quando há valor de despesa"
	}
	if dto.TipoOpcao == TipoDespesa && dto.ValorDespesa <= 0 {
		return "lançamento de despesa exige valor de despesa"
	}
	return ""
}

// Criar trata POST /repasses
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	usuarioID := r.Context().Value(auth.CtxUserID).(uint)
	defer r.Body.Close()

	var dto RepasseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if msg := validarDTO(&dto); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	rep := Repasse{
		ID:        uuid.NewString(),
		UsuarioID: usuarioID,
	}
	if err := aplicarDTO(&rep, &dto); err != nil {
		http.Error(w, "data inválida", http.StatusBadRequest)
		return
	}

	conhecido, err := h.Repo.ExisteMedico(usuarioID, rep.NomeMedico)
	if err != nil {
		http.Error(w, "erro ao consultar médicos", http.StatusInternalServerError)
		return
	}

	if err := h.Repo.Create(&rep); err != nil {
		http.Error(w, "erro ao criar repasse", http.StatusInternalServerError)
		return
	}

	// O vínculo com o médico é por nome; um nome nunca visto pode ser um
	// médico novo ou um erro de digitação, então dispara o alerta.
	if !conhecido {
		go notificacao.EnviarWebhookAlerta(rep.NomeMedico)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(rep)
}

// Listar trata GET /repasses
// Aceita query params opcionais `medico` e `mes` para filtrar os resultados.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	usuarioID := r.Context().Value(auth.CtxUserID).(uint)

	medico := r.URL.Query().Get("medico")
	mes := r.URL.Query().Get("mes")

	var list []Repasse
	var err error
	if medico != "" {
		list, err = h.Repo.ListByMedico(usuarioID, medico)
	} else {
		list, err = h.Repo.ListByUsuario(usuarioID)
	}
	if err != nil {
		http.Error(w, "erro ao buscar repasses", http.StatusInternalServerError)
		return
	}

	if mes != "" {
		filtrados := make([]Repasse, 0, len(list))
		for _, rep := range list {
			if rep.MesReferencia == mes {
				filtrados = append(filtrados, rep)
			}
		}
		list = filtrados
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// BuscarPorID trata GET /repasses/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	usuarioID := r.Context().Value(auth.CtxUserID).(uint)

	rep, err := h.Repo.FindByID(usuarioID, mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "repasse não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rep)
}

// Atualizar trata PUT /repasses/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	usuarioID := r.Context().Value(auth.CtxUserID).(uint)

	rep, err := h.Repo.FindByID(usuarioID, mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "repasse não encontrado", http.StatusNotFound)
		return
	}

	var dto RepasseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if msg := validarDTO(&dto); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	if err := aplicarDTO(rep, &dto); err != nil {
		http.Error(w, "data inválida", http.StatusBadRequest)
		return
	}

	if err := h.Repo.Update(rep); err != nil {
		http.Error(w, "erro ao atualizar repasse", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rep)
}

// Deletar trata DELETE /repasses/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	usuarioID := r.Context().Value(auth.CtxUserID).(uint)

	rep, err := h.Repo.FindByID(usuarioID, mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "repasse não encontrado", http.StatusNotFound)
		return
	}

	if err := h.Repo.Delete(rep); err != nil {
		http.Error(w, "erro ao excluir repasse", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
