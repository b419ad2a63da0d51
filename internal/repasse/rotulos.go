package repasse

// RotulosTipoOpcao mapeia o tipo de opção para o nome exibido
var RotulosTipoOpcao = map[string]string{
	TipoOpcao1:  "Procedimentos Básicos",
	TipoOpcao2:  "Procedimentos Especiais",
	TipoOpcao3:  "Hospitais",
	TipoDespesa: "Despesa",
}

// RotulosFormaPagamento mapeia a forma de pagamento para o nome exibido
var RotulosFormaPagamento = map[string]string{
	PagamentoDinheiro:      "Dinheiro",
	PagamentoPix:           "PIX",
	PagamentoCartaoDebito:  "Cartão de Débito",
	PagamentoCartaoCredito: "Cartão de Crédito",
}

// RotulosCategoriaDespesa mapeia a categoria de despesa para o nome exibido
var RotulosCategoriaDespesa = map[string]string{
	"rateio_mensal": "Rateio Mensal",
	"medicacao":     "Medicação",
	"insumo":        "Insumo",
	"outros":        "Outros",
}

// CategoriasPorTipo lista as categorias sugeridas para cada tipo de opção.
// A categoria continua sendo texto livre; a lista é apenas sugestão para o
// formulário.
var CategoriasPorTipo = map[string][]string{
	TipoOpcao1: {"Consulta", "Onda de choque", "Retirada de pontos", "Medicação", "Coleta de sangue", "Outros"},
	TipoOpcao2: {"Infiltração", "Viscossuplementação", "Cirurgia", "Outros"},
	TipoOpcao3: {"UDI", "HSD", "Natus Lumine", "Dom Hospital", "Centro Médico", "Outros"},
}

// RotuloTipoOpcao retorna o nome exibido de um tipo de opção, ou o próprio
// valor quando desconhecido
func RotuloTipoOpcao(tipoOpcao string) string {
	if rotulo, ok := RotulosTipoOpcao[tipoOpcao]; ok {
		return rotulo
	}
	return tipoOpcao
}

// RotuloCategoriaDespesa retorna o nome exibido de uma categoria de despesa
func RotuloCategoriaDespesa(categoria string) string {
	if rotulo, ok := RotulosCategoriaDespesa[categoria]; ok {
		return rotulo
	}
	return categoria
}
