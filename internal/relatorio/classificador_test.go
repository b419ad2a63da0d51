package relatorio

import (
	"testing"

	"github.com/ClinicaVitalis/api-repasses/internal/despesa"
	"github.com/ClinicaVitalis/api-repasses/internal/repasse"
)

func TestClassificarParticiona(t *testing.T) {
	comDespesa := novaEntrada("entrada-com-despesa", "Dr. A", "2025-01", "2025-01-10", 1000, repasse.TipoOpcao1, repasse.PagamentoPix)
	comDespesa.CategoriaDespesa = "medicacao"
	comDespesa.ValorDespesa = 50

	repasses := []repasse.Repasse{
		comDespesa,
		novaEntrada("entrada-simples", "Dr. A", "2025-01", "2025-01-11", 500, repasse.TipoOpcao2, repasse.PagamentoCartaoCredito),
		novaDespesaPura("pura-despesa", "Dr. A", "2025-01", "2025-01-12", "rateio_mensal", 200),
	}

	c := Classificar(repasses, nil, Filtro{NomeMedico: "Dr. A"})

	if len(c.Entradas) != 2 {
		t.Fatalf("esperadas 2 entradas, vieram %d", len(c.Entradas))
	}
	if len(c.DespesasRepasse) != 2 {
		t.Fatalf("esperadas 2 despesas de repasse (embutida + pura), vieram %d", len(c.DespesasRepasse))
	}

	// nenhum registro é descartado: a entrada com despesa embutida aparece
	// nos dois lados
	ids := map[string]bool{}
	for _, e := range c.Entradas {
		ids[e.ID] = true
	}
	if !ids["entrada-com-despesa"] || !ids["entrada-simples"] || ids["pura-despesa"] {
		t.Fatalf("partição incorreta das entradas: %v", ids)
	}
}

func TestClassificarDespesaSemCategoriaNaoConta(t *testing.T) {
	rep := novaEntrada("a", "Dr. A", "2025-01", "2025-01-10", 100, repasse.TipoOpcao1, repasse.PagamentoPix)
	rep.ValorDespesa = 30 // sem categoria

	c := Classificar([]repasse.Repasse{rep}, nil, Filtro{NomeMedico: "Dr. A"})
	if len(c.DespesasRepasse) != 0 {
		t.Fatalf("despesa embutida sem categoria não deve ser classificada")
	}
}

func TestLancadaViaSistema(t *testing.T) {
	tests := []struct {
		name string
		rep  repasse.Repasse
		want bool
	}{
		{
			name: "lançamento puro de despesa",
			rep:  novaDespesaPura("a", "Dr. A", "2025-01", "2025-01-10", "insumo", 10),
			want: true,
		},
		{
			name: "marcador na descrição, caixa mista",
			rep:  repasse.Repasse{TipoOpcao: repasse.TipoOpcao1, Descricao: "Rateio Lançado VIA Sistema em janeiro"},
			want: true,
		},
		{
			name: "descrição comum",
			rep:  repasse.Repasse{TipoOpcao: repasse.TipoOpcao1, Descricao: "consulta particular"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LancadaViaSistema(tt.rep); got != tt.want {
				t.Errorf("LancadaViaSistema = %v, esperado %v", got, tt.want)
			}
		})
	}
}

func TestClassificarAvulsas(t *testing.T) {
	semMes := novaAvulsa("sem-mes", "Dr. A", "", "2025-02-10", "rateio_mensal", 80)

	avulsas := []despesa.Despesa{
		novaAvulsa("jan", "Dr. A", "2025-01", "2025-01-05", "medicacao", 40),
		semMes,
		novaAvulsa("outro-medico", "Dr. B", "2025-01", "2025-01-06", "medicacao", 99),
	}

	// mês deriva da data quando o mês de referência está vazio
	c := Classificar(nil, avulsas, Filtro{NomeMedico: "Dr. A", MesReferencia: "2025-02"})
	if len(c.DespesasAvulsas) != 1 || c.DespesasAvulsas[0].ID != "sem-mes" {
		t.Fatalf("esperada apenas a avulsa de fevereiro (mês derivado da data), veio %+v", c.DespesasAvulsas)
	}
	if c.DespesasAvulsas[0].MesReferencia != "2025-02" {
		t.Errorf("mês normalizado = %q, esperado 2025-02", c.DespesasAvulsas[0].MesReferencia)
	}
	if c.DespesasAvulsas[0].Origem != OrigemAvulsa {
		t.Errorf("origem = %q, esperado %q", c.DespesasAvulsas[0].Origem, OrigemAvulsa)
	}

	// o vínculo por subcategoria é igualdade exata de nome
	c = Classificar(nil, avulsas, Filtro{NomeMedico: "Dr. A", MesReferencia: "2025-01"})
	if len(c.DespesasAvulsas) != 1 || c.DespesasAvulsas[0].ID != "jan" {
		t.Fatalf("avulsa de outro médico não deve entrar, veio %+v", c.DespesasAvulsas)
	}
}

func TestClassificarUnificaEOrdena(t *testing.T) {
	repasses := []repasse.Repasse{
		novaDespesaPura("repasse-dia-12", "Dr. A", "2025-01", "2025-01-12", "insumo", 20),
	}
	avulsas := []despesa.Despesa{
		novaAvulsa("avulsa-dia-20", "Dr. A", "2025-01", "2025-01-20", "medicacao", 30),
		novaAvulsa("avulsa-dia-05", "Dr. A", "2025-01", "2025-01-05", "medicacao", 10),
	}

	c := Classificar(repasses, avulsas, Filtro{NomeMedico: "Dr. A"})

	if len(c.TodasDespesas) != 3 {
		t.Fatalf("lista unificada deveria ter 3 despesas, veio %d", len(c.TodasDespesas))
	}
	ordem := []string{"avulsa-dia-20", "repasse-dia-12", "avulsa-dia-05"}
	for i, id := range ordem {
		if c.TodasDespesas[i].ID != id {
			t.Fatalf("posição %d: esperado %q, veio %q", i, id, c.TodasDespesas[i].ID)
		}
	}
}

func TestClassificarNaoModificaEntradas(t *testing.T) {
	rep := novaEntrada("a", "Dr. A", "2025-01", "2025-01-10", 1000, repasse.TipoOpcao1, repasse.PagamentoPix)
	rep.CategoriaDespesa = "medicacao"
	rep.ValorDespesa = 50
	repasses := []repasse.Repasse{rep}

	Classificar(repasses, nil, Filtro{NomeMedico: "Dr. A"})

	if repasses[0] != rep {
		t.Fatalf("classificação não deve modificar os registros de entrada")
	}
}
