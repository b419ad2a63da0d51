package repasse

import (
	"math"
	"testing"
)

func quaseIgual(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}

func TestCalcularValores(t *testing.T) {
	tests := []struct {
		name                       string
		valor                      float64
		tipoOpcao                  string
		formaPagamento             string
		wantDesconto               float64
		wantDescontoPagamento      float64
		wantLiquido                float64
		wantPercentual             float64
		wantPercentualPagamento    float64
	}{
		{
			name:                    "opção 1 via pix",
			valor:                   1000,
			tipoOpcao:               TipoOpcao1,
			formaPagamento:          PagamentoPix,
			wantDesconto:            163.30,
			wantDescontoPagamento:   0,
			wantLiquido:             836.70,
			wantPercentual:          16.33,
			wantPercentualPagamento: 0,
		},
		{
			name:                    "opção 2 no cartão de crédito",
			valor:                   500,
			tipoOpcao:               TipoOpcao2,
			formaPagamento:          PagamentoCartaoCredito,
			wantDesconto:            54.65,
			wantDescontoPagamento:   12.50,
			wantLiquido:             432.85,
			wantPercentual:          10.93,
			wantPercentualPagamento: 2.50,
		},
		{
			name:                    "opção 3 no cartão de débito",
			valor:                   200,
			tipoOpcao:               TipoOpcao3,
			formaPagamento:          PagamentoCartaoDebito,
			wantDesconto:            21.86,
			wantDescontoPagamento:   3.40,
			wantLiquido:             174.74,
			wantPercentual:          10.93,
			wantPercentualPagamento: 1.70,
		},
		{
			name:                    "dinheiro não tem taxa",
			valor:                   100,
			tipoOpcao:               TipoOpcao1,
			formaPagamento:          PagamentoDinheiro,
			wantDesconto:            16.33,
			wantDescontoPagamento:   0,
			wantLiquido:             83.67,
			wantPercentual:          16.33,
			wantPercentualPagamento: 0,
		},
		{
			name:           "valor zero",
			valor:          0,
			tipoOpcao:      TipoOpcao2,
			formaPagamento: PagamentoPix,
			wantPercentual: 10.93,
		},
		{
			name:                    "valor negativo propaga sem erro",
			valor:                   -100,
			tipoOpcao:               TipoOpcao2,
			formaPagamento:          PagamentoCartaoCredito,
			wantDesconto:            -10.93,
			wantDescontoPagamento:   -2.50,
			wantLiquido:             -86.57,
			wantPercentual:          10.93,
			wantPercentualPagamento: 2.50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcularValores(tt.valor, tt.tipoOpcao, tt.formaPagamento)

			if got.PercentualDesconto != tt.wantPercentual {
				t.Errorf("PercentualDesconto = %v, esperado %v", got.PercentualDesconto, tt.wantPercentual)
			}
			if got.PercentualDescontoPagamento != tt.wantPercentualPagamento {
				t.Errorf("PercentualDescontoPagamento = %v, esperado %v", got.PercentualDescontoPagamento, tt.wantPercentualPagamento)
			}
			if !quaseIgual(got.ValorDesconto, tt.wantDesconto) {
				t.Errorf("ValorDesconto = %v, esperado %v", got.ValorDesconto, tt.wantDesconto)
			}
			if !quaseIgual(got.ValorDescontoPagamento, tt.wantDescontoPagamento) {
				t.Errorf("ValorDescontoPagamento = %v, esperado %v", got.ValorDescontoPagamento, tt.wantDescontoPagamento)
			}
			if !quaseIgual(got.ValorLiquido, tt.wantLiquido) {
				t.Errorf("ValorLiquido = %v, esperado %v", got.ValorLiquido, tt.wantLiquido)
			}
		})
	}
}

// A função é pura: chamadas repetidas com os mesmos argumentos devem ser
// bit a bit idênticas, inclusive na edição de um repasse existente.
func TestCalcularValoresIdempotente(t *testing.T) {
	primeira := CalcularValores(1234.56, TipoOpcao1, PagamentoCartaoCredito)
	segunda := CalcularValores(1234.56, TipoOpcao1, PagamentoCartaoCredito)

	if primeira != segunda {
		t.Errorf("resultados divergentes: %+v != %+v", primeira, segunda)
	}
}

// Para qualquer combinação, o líquido deve fechar com bruto menos descontos
// dentro da tolerância de arredondamento.
func TestConsistenciaValorLiquido(t *testing.T) {
	valores := []float64{0.01, 1, 99.99, 500, 1000, 12345.67}
	tipos := []string{TipoOpcao1, TipoOpcao2, TipoOpcao3}
	formas := []string{PagamentoDinheiro, PagamentoPix, PagamentoCartaoDebito, PagamentoCartaoCredito}

	for _, valor := range valores {
		for _, tipo := range tipos {
			for _, forma := range formas {
				got := CalcularValores(valor, tipo, forma)
				esperado := valor - got.ValorDesconto - got.ValorDescontoPagamento
				if !quaseIgual(got.ValorLiquido, esperado) {
					t.Errorf("CalcularValores(%v, %s, %s): liquido %v, esperado %v",
						valor, tipo, forma, got.ValorLiquido, esperado)
				}
			}
		}
	}
}

func TestPercentualDescontoTipoDesconhecido(t *testing.T) {
	if got := PercentualDesconto("option9"); got != 0 {
		t.Errorf("tipo desconhecido deveria ter desconto 0, veio %v", got)
	}
	if got := PercentualDesconto(TipoDespesa); got != 0 {
		t.Errorf("lançamento de despesa deveria ter desconto 0, veio %v", got)
	}
}
