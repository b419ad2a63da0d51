package repasse

// Percentuais fixos de desconto por tipo de opção (nota fiscal)
const (
	DescontoOpcao1 = 16.33
	DescontoOpcao2 = 10.93
	DescontoOpcao3 = 10.93
)

// Percentuais fixos de desconto por forma de pagamento (taxa da operadora)
const (
	DescontoCartaoDebito  = 1.70
	DescontoCartaoCredito = 2.50
)

// ValoresCalculados é o detalhamento completo do desconto de um repasse
type ValoresCalculados struct {
	PercentualDesconto          float64 `json:"percentualDesconto"`
	ValorDesconto               float64 `json:"valorDesconto"`
	PercentualDescontoPagamento float64 `json:"percentualDescontoPagamento"`
	ValorDescontoPagamento      float64 `json:"valorDescontoPagamento"`
	ValorLiquido                float64 `json:"valorLiquido"`
}

// PercentualDesconto retorna o percentual de desconto do tipo de opção.
// Lançamentos de despesa não têm desconto.
func PercentualDesconto(tipoOpcao string) float64 {
	switch tipoOpcao {
	case TipoOpcao1:
		return DescontoOpcao1
	case TipoOpcao2:
		return DescontoOpcao2
	case TipoOpcao3:
		return DescontoOpcao3
	default:
		return 0
	}
}

// PercentualDescontoPagamento retorna a taxa da forma de pagamento.
// Dinheiro e PIX não têm taxa.
func PercentualDescontoPagamento(formaPagamento string) float64 {
	switch formaPagamento {
	case PagamentoCartaoDebito:
		return DescontoCartaoDebito
	case PagamentoCartaoCredito:
		return DescontoCartaoCredito
	default:
		return 0
	}
}

// CalcularValores calcula o detalhamento de descontos para um valor bruto.
// Função pura: deve ser chamada tanto na criação quanto na edição de um
// repasse, para que os campos derivados sejam sempre recalculados em vez de
// confiar em valores armazenados. Valores negativos são aceitos e
// propagados; a validação é responsabilidade de quem chama.
func CalcularValores(valor float64, tipoOpcao, formaPagamento string) ValoresCalculados {
	percentual := PercentualDesconto(tipoOpcao)
	percentualPagamento := PercentualDescontoPagamento(formaPagamento)

	valorDesconto := valor * percentual / 100
	valorDescontoPagamento := valor * percentualPagamento / 100

	return ValoresCalculados{
		PercentualDesconto:          percentual,
		ValorDesconto:               valorDesconto,
		PercentualDescontoPagamento: percentualPagamento,
		ValorDescontoPagamento:      valorDescontoPagamento,
		ValorLiquido:                valor - valorDesconto - valorDescontoPagamento,
	}
}
