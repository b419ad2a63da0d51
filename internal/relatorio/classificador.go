package relatorio

import (
	"sort"
	"strings"
	"time"

	"github.com/ClinicaVitalis/api-repasses/internal/despesa"
	"github.com/ClinicaVitalis/api-repasses/internal/repasse"
)

// Origem de uma despesa normalizada.
const (
	OrigemRepasse = "repasse"
	OrigemAvulsa  = "avulsa"
)

// Marcador usado nas descrições de despesas geradas automaticamente.
// Classificação por texto livre é frágil e vale apenas como indicativo; o
// sistema não persiste uma origem explícita.
const marcadorViaSistema = "lançado via sistema"

// DespesaNormalizada unifica despesas embutidas em repasses e despesas
// avulsas do livro-caixa em um único formato
type DespesaNormalizada struct {
	ID            string    `json:"id"`
	Data          time.Time `json:"data"`
	MesReferencia string    `json:"mesReferencia"`
	Descricao     string    `json:"descricao"`
	Valor         float64   `json:"valor"`
	Categoria     string    `json:"categoria"`
	Origem        string    `json:"origem"`
	ViaSistema    bool      `json:"viaSistema"`
}

// Classificacao particiona os registros filtrados de um médico em entradas
// e nas duas populações de despesa
type Classificacao struct {
	Entradas        []repasse.Repasse
	DespesasRepasse []DespesaNormalizada
	DespesasAvulsas []DespesaNormalizada
	TodasDespesas   []DespesaNormalizada
}

// LancadaViaSistema indica se a despesa embutida parece ter sido gerada
// automaticamente: ou o repasse é um lançamento puro de despesa, ou a
// descrição carrega o marcador
func LancadaViaSistema(rep repasse.Repasse) bool {
	if rep.TipoOpcao == repasse.TipoDespesa {
		return true
	}
	return strings.Contains(strings.ToLower(rep.Descricao), marcadorViaSistema)
}

// Classificar separa os repasses filtrados em entradas e despesas embutidas,
// junta as despesas avulsas vinculadas ao médico sob a mesma regra de
// período e produz a lista unificada ordenada por data decrescente. As
// entradas de input nunca são modificadas.
func Classificar(repasses []repasse.Repasse, avulsas []despesa.Despesa, f Filtro) Classificacao {
	c := Classificacao{
		Entradas:        make([]repasse.Repasse, 0, len(repasses)),
		DespesasRepasse: []DespesaNormalizada{},
		DespesasAvulsas: []DespesaNormalizada{},
	}

	for _, rep := range repasses {
		if rep.TipoOpcao != repasse.TipoDespesa {
			c.Entradas = append(c.Entradas, rep)
		}
		// Uma entrada pode carregar a própria despesa deduzida; um
		// lançamento de pura despesa entra apenas aqui.
		if rep.ValorDespesa > 0 && rep.CategoriaDespesa != "" {
			c.DespesasRepasse = append(c.DespesasRepasse, DespesaNormalizada{
				ID:            rep.ID,
				Data:          rep.Data,
				MesReferencia: rep.MesReferencia,
				Descricao:     rep.Descricao,
				Valor:         rep.ValorDespesa,
				Categoria:     rep.CategoriaDespesa,
				Origem:        OrigemRepasse,
				ViaSistema:    LancadaViaSistema(rep),
			})
		}
	}

	for _, d := range avulsas {
		if d.Subcategoria != f.NomeMedico {
			continue
		}
		if f.temPeriodo() {
			if !f.contemData(d.Data) {
				continue
			}
		} else if !f.contemMes(d.Mes()) {
			continue
		}
		c.DespesasAvulsas = append(c.DespesasAvulsas, DespesaNormalizada{
			ID:            d.ID,
			Data:          d.Data,
			MesReferencia: d.Mes(),
			Descricao:     d.Descricao,
			Valor:         d.Valor,
			Categoria:     d.Categoria,
			Origem:        OrigemAvulsa,
		})
	}

	c.TodasDespesas = make([]DespesaNormalizada, 0, len(c.DespesasRepasse)+len(c.DespesasAvulsas))
	c.TodasDespesas = append(c.TodasDespesas, c.DespesasRepasse...)
	c.TodasDespesas = append(c.TodasDespesas, c.DespesasAvulsas...)
	sort.SliceStable(c.TodasDespesas, func(i, j int) bool {
		return c.TodasDespesas[i].Data.After(c.TodasDespesas[j].Data)
	})

	return c
}
