package relatorio

import (
	"sort"

	"github.com/ClinicaVitalis/api-repasses/internal/despesa"
	"github.com/ClinicaVitalis/api-repasses/internal/repasse"
)

// Totais é o resumo global do período filtrado. O saldo é sempre a entrada
// líquida menos TODAS as despesas, das duas origens; nunca é calculado de
// outra forma.
type Totais struct {
	EntradaBruta    float64 `json:"entradaBruta"`
	TotalDescontos  float64 `json:"totalDescontos"`
	EntradaLiquida  float64 `json:"entradaLiquida"`
	DespesasRepasse float64 `json:"despesasRepasse"`
	DespesasAvulsas float64 `json:"despesasAvulsas"`
	TotalDespesas   float64 `json:"totalDespesas"`
	Saldo           float64 `json:"saldo"`
	QtdEntradas     int     `json:"qtdEntradas"`
	QtdDespesas     int     `json:"qtdDespesas"`
}

// ResumoTipo acumula as entradas de um tipo de opção. TotalLiquido desconta
// apenas a despesa embutida de cada repasse; despesas avulsas são dedução do
// médico, não do procedimento.
type ResumoTipo struct {
	Rotulo         string  `json:"rotulo"`
	Quantidade     int     `json:"quantidade"`
	TotalBruto     float64 `json:"totalBruto"`
	TotalDescontos float64 `json:"totalDescontos"`
	TotalDespesas  float64 `json:"totalDespesas"`
	TotalLiquido   float64 `json:"totalLiquido"`
}

// ResumoCategoria acumula a lista unificada de despesas por categoria
type ResumoCategoria struct {
	Rotulo            string  `json:"rotulo"`
	Quantidade        int     `json:"quantidade"`
	Total             float64 `json:"total"`
	QtdRepasse        int     `json:"qtdRepasse"`
	QtdAvulsa         int     `json:"qtdAvulsa"`
	QtdViaSistema     int     `json:"qtdViaSistema"`
	PercentualDoTotal float64 `json:"percentualDoTotal"`
}

// ResumoMensal é uma linha do agrupamento por mês de referência
type ResumoMensal struct {
	Mes             string  `json:"mes"`
	EntradaLiquida  float64 `json:"entradaLiquida"`
	DespesasRepasse float64 `json:"despesasRepasse"`
	DespesasAvulsas float64 `json:"despesasAvulsas"`
	TotalDespesas   float64 `json:"totalDespesas"`
	Saldo           float64 `json:"saldo"`
	QtdEntradas     int     `json:"qtdEntradas"`
	QtdDespesas     int     `json:"qtdDespesas"`
}

// Relatorio é o resultado derivado de uma invocação do filtro; efêmero,
// recalculado do zero a cada mudança de filtro
type Relatorio struct {
	NomeMedico   string                     `json:"nomeMedico"`
	Periodo      string                     `json:"periodo"`
	Totais       Totais                     `json:"totais"`
	PorTipo      map[string]ResumoTipo      `json:"porTipo"`
	PorCategoria map[string]ResumoCategoria `json:"porCategoria"`
	PorMes       []ResumoMensal             `json:"porMes"`
}

// PercentualDespesa calcula a participação de um valor no total de
// despesas, protegendo contra divisão por zero
func PercentualDespesa(valor, totalDespesas float64) float64 {
	if totalDespesas == 0 {
		return 0
	}
	return valor * 100 / totalDespesas
}

// Agregar reduz a classificação nos três agrupamentos do relatório. As
// reduções seguem a ordem das listas de entrada para que a soma em ponto
// flutuante seja reproduzível.
func Agregar(c Classificacao) (Totais, map[string]ResumoTipo, map[string]ResumoCategoria, []ResumoMensal) {
	var totais Totais

	for _, rep := range c.Entradas {
		totais.EntradaBruta += rep.Valor
		totais.TotalDescontos += rep.ValorDesconto + rep.ValorDescontoPagamento
		totais.EntradaLiquida += rep.ValorLiquido
	}
	for _, d := range c.DespesasRepasse {
		totais.DespesasRepasse += d.Valor
	}
	for _, d := range c.DespesasAvulsas {
		totais.DespesasAvulsas += d.Valor
	}
	totais.TotalDespesas = totais.DespesasRepasse + totais.DespesasAvulsas
	totais.Saldo = totais.EntradaLiquida - totais.TotalDespesas
	totais.QtdEntradas = len(c.Entradas)
	totais.QtdDespesas = len(c.TodasDespesas)

	porTipo := make(map[string]ResumoTipo)
	for _, rep := range c.Entradas {
		resumo := porTipo[rep.TipoOpcao]
		resumo.Rotulo = repasse.RotuloTipoOpcao(rep.TipoOpcao)
		resumo.Quantidade++
		resumo.TotalBruto += rep.Valor
		resumo.TotalDescontos += rep.ValorDesconto + rep.ValorDescontoPagamento
		resumo.TotalDespesas += rep.ValorDespesa
		resumo.TotalLiquido += rep.ValorLiquido - rep.ValorDespesa
		porTipo[rep.TipoOpcao] = resumo
	}

	porCategoria := make(map[string]ResumoCategoria)
	for _, d := range c.TodasDespesas {
		categoria := d.Categoria
		if categoria == "" {
			categoria = "outros"
		}
		resumo := porCategoria[categoria]
		resumo.Rotulo = repasse.RotuloCategoriaDespesa(categoria)
		resumo.Quantidade++
		resumo.Total += d.Valor
		switch d.Origem {
		case OrigemRepasse:
			resumo.QtdRepasse++
		case OrigemAvulsa:
			resumo.QtdAvulsa++
		}
		if d.ViaSistema {
			resumo.QtdViaSistema++
		}
		porCategoria[categoria] = resumo
	}
	for categoria, resumo := range porCategoria {
		resumo.PercentualDoTotal = PercentualDespesa(resumo.Total, totais.TotalDespesas)
		porCategoria[categoria] = resumo
	}

	porMesIdx := make(map[string]*ResumoMensal)
	meses := []string{}
	resumoDoMes := func(mes string) *ResumoMensal {
		if resumo, ok := porMesIdx[mes]; ok {
			return resumo
		}
		resumo := &ResumoMensal{Mes: mes}
		porMesIdx[mes] = resumo
		meses = append(meses, mes)
		return resumo
	}
	for _, rep := range c.Entradas {
		resumo := resumoDoMes(rep.MesReferencia)
		resumo.EntradaLiquida += rep.ValorLiquido
		resumo.QtdEntradas++
	}
	for _, d := range c.TodasDespesas {
		resumo := resumoDoMes(d.MesReferencia)
		switch d.Origem {
		case OrigemRepasse:
			resumo.DespesasRepasse += d.Valor
		case OrigemAvulsa:
			resumo.DespesasAvulsas += d.Valor
		}
		resumo.QtdDespesas++
	}

	// "YYYY-MM" tem largura fixa, então a ordenação lexicográfica
	// decrescente equivale à cronológica
	sort.Sort(sort.Reverse(sort.StringSlice(meses)))
	porMes := make([]ResumoMensal, 0, len(meses))
	for _, mes := range meses {
		resumo := porMesIdx[mes]
		resumo.TotalDespesas = resumo.DespesasRepasse + resumo.DespesasAvulsas
		resumo.Saldo = resumo.EntradaLiquida - resumo.TotalDespesas
		porMes = append(porMes, *resumo)
	}

	return totais, porTipo, porCategoria, porMes
}

// Gerar executa o pipeline completo: filtro, classificação e agregação.
// Computação pura e síncrona sobre as duas listas em memória; quem chama
// fornece os dados e re-executa o pipeline quando eles mudam.
func Gerar(repasses []repasse.Repasse, avulsas []despesa.Despesa, f Filtro) Relatorio {
	filtrados := FiltrarRepasses(repasses, f)
	classificacao := Classificar(filtrados, avulsas, f)
	totais, porTipo, porCategoria, porMes := Agregar(classificacao)

	return Relatorio{
		NomeMedico:   f.NomeMedico,
		Periodo:      f.DescricaoPeriodo(),
		Totais:       totais,
		PorTipo:      porTipo,
		PorCategoria: porCategoria,
		PorMes:       porMes,
	}
}
