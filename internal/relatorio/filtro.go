package relatorio

import (
	"sort"
	"time"

	"github.com/ClinicaVitalis/api-repasses/internal/repasse"
)

// Filtro delimita os registros de um médico em um período antes da
// agregação. Quando Inicio ou Fim estão definidos, o período customizado tem
// precedência sobre o mês de referência.
type Filtro struct {
	NomeMedico    string
	MesReferencia string
	Inicio        *time.Time
	Fim           *time.Time
}

func (f Filtro) temPeriodo() bool {
	return f.Inicio != nil || f.Fim != nil
}

// contemData verifica se a data está dentro do período customizado,
// inclusive nas bordas
func (f Filtro) contemData(data time.Time) bool {
	if f.Inicio != nil && data.Before(*f.Inicio) {
		return false
	}
	if f.Fim != nil && data.After(*f.Fim) {
		return false
	}
	return true
}

// contemMes aplica a regra de período a um mês "YYYY-MM"
func (f Filtro) contemMes(mes string) bool {
	if f.MesReferencia == "" {
		return true
	}
	return mes == f.MesReferencia
}

// DescricaoPeriodo monta o texto do período ativo para exibição
func (f Filtro) DescricaoPeriodo() string {
	switch {
	case f.Inicio != nil && f.Fim != nil:
		return f.Inicio.Format("2006-01-02") + " a " + f.Fim.Format("2006-01-02")
	case f.Inicio != nil:
		return "a partir de " + f.Inicio.Format("2006-01-02")
	case f.Fim != nil:
		return "até " + f.Fim.Format("2006-01-02")
	case f.MesReferencia != "":
		return f.MesReferencia
	default:
		return "todos os meses"
	}
}

// FiltrarRepasses restringe a lista aos repasses do médico dentro do
// período, ordenados por data decrescente. Médico sem registros resulta em
// lista vazia, nunca em erro.
func FiltrarRepasses(repasses []repasse.Repasse, f Filtro) []repasse.Repasse {
	filtrados := make([]repasse.Repasse, 0, len(repasses))
	if f.NomeMedico == "" {
		return filtrados
	}

	for _, rep := range repasses {
		if rep.NomeMedico != f.NomeMedico {
			continue
		}
		if f.temPeriodo() {
			if !f.contemData(rep.Data) {
				continue
			}
		} else if !f.contemMes(rep.MesReferencia) {
			continue
		}
		filtrados = append(filtrados, rep)
	}

	sort.SliceStable(filtrados, func(i, j int) bool {
		return filtrados[i].Data.After(filtrados[j].Data)
	})
	return filtrados
}
