package service

import (
	"testing"

	"github.com/lugorito/pedidos-http/internal/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmission() entities.Submission {
	return entities.Submission{
		TipoCliente: "PF",
		Nome:        "  Maria da Silva  ",
		Documento:   "111.444.777-35",
		Email:       "maria@example.com",
		Telefone:    "(85) 99999-0000",
		IndIEDest:   "9",
		Endereco: &entities.EnderecoSubmission{
			CEP:        "60000-000",
			Logradouro: "Rua das Flores",
			Numero:     "100",
			Bairro:     "Centro",
			Municipio:  "Fortaleza",
			UF:         "ce",
		},
		Itens: []entities.ItemSubmission{
			{SKU: "ABC", Qtd: float64(2)},
		},
		Envio:       "PAC",
		Observacoes: "entregar à tarde",
	}
}

func TestValidateSubmission_OK(t *testing.T) {
	v, err := validateSubmission(validSubmission())
	require.NoError(t, err)

	assert.Equal(t, "Maria da Silva", v.cliente.Nome)
	assert.Equal(t, "11144477735", v.cliente.CPF)
	assert.Empty(t, v.cliente.CNPJ)
	assert.Equal(t, "60000000", v.endereco.CEP)
	assert.Equal(t, "CE", v.endereco.UF)
	require.Len(t, v.itens, 1)
	assert.Equal(t, "ABC", v.itens[0].SKU)
	assert.Equal(t, 2.0, v.itens[0].Qtd)
}

func TestValidateSubmission_PJ(t *testing.T) {
	sub := validSubmission()
	sub.TipoCliente = "PJ"
	sub.Documento = "11.222.333/0001-81"
	sub.IndIEDest = "1"
	sub.IE = "0123456789"

	v, err := validateSubmission(sub)
	require.NoError(t, err)

	assert.Equal(t, "11222333000181", v.cliente.CNPJ)
	assert.Empty(t, v.cliente.CPF)
	assert.Equal(t, "0123456789", v.cliente.IE)
}

func TestValidateSubmission_FailFast(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(sub *entities.Submission)
		wantMsg string
	}{
		{
			name:    "unknown client type",
			mutate:  func(sub *entities.Submission) { sub.TipoCliente = "PX" },
			wantMsg: `tipoCliente deve ser "PF" ou "PJ"`,
		},
		{
			name:    "blank name",
			mutate:  func(sub *entities.Submission) { sub.Nome = "   " },
			wantMsg: "nome é obrigatório",
		},
		{
			name:    "missing document",
			mutate:  func(sub *entities.Submission) { sub.Documento = "" },
			wantMsg: "documento é obrigatório",
		},
		{
			name:    "missing email",
			mutate:  func(sub *entities.Submission) { sub.Email = " " },
			wantMsg: "email é obrigatório",
		},
		{
			name:    "missing phone",
			mutate:  func(sub *entities.Submission) { sub.Telefone = "" },
			wantMsg: "telefone é obrigatório",
		},
		{
			name:    "missing address",
			mutate:  func(sub *entities.Submission) { sub.Endereco = nil },
			wantMsg: "endereço é obrigatório",
		},
		{
			name:    "missing cep",
			mutate:  func(sub *entities.Submission) { sub.Endereco.CEP = "" },
			wantMsg: "endereço: cep é obrigatório",
		},
		{
			name:    "missing municipio",
			mutate:  func(sub *entities.Submission) { sub.Endereco.Municipio = "  " },
			wantMsg: "endereço: municipio é obrigatório",
		},
		{
			name:    "empty items",
			mutate:  func(sub *entities.Submission) { sub.Itens = []entities.ItemSubmission{} },
			wantMsg: "itens é obrigatório e não pode ser vazio",
		},
		{
			name:    "invalid cpf",
			mutate:  func(sub *entities.Submission) { sub.Documento = "11144477736" },
			wantMsg: "CPF inválido",
		},
		{
			name: "invalid cnpj",
			mutate: func(sub *entities.Submission) {
				sub.TipoCliente = "PJ"
				sub.Documento = "11222333000182"
			},
			wantMsg: "CNPJ inválido",
		},
		{
			name:    "unknown indIEDest",
			mutate:  func(sub *entities.Submission) { sub.IndIEDest = "3" },
			wantMsg: `indIEDest deve ser "1", "2" ou "9"`,
		},
		{
			name: "contribuinte without IE",
			mutate: func(sub *entities.Submission) {
				sub.IndIEDest = "1"
				sub.IE = ""
			},
			wantMsg: "IE é obrigatória para contribuinte do ICMS (indIEDest=1)",
		},
		{
			name: "item without sku",
			mutate: func(sub *entities.Submission) {
				sub.Itens = append(sub.Itens, entities.ItemSubmission{SKU: " ", Qtd: float64(1)})
			},
			wantMsg: "item 2: sku é obrigatório",
		},
		{
			name: "item with zero quantity",
			mutate: func(sub *entities.Submission) {
				sub.Itens[0].Qtd = float64(0)
			},
			wantMsg: "item 1: qtd deve ser um número maior que zero",
		},
		{
			name: "item with non-numeric quantity",
			mutate: func(sub *entities.Submission) {
				sub.Itens[0].Qtd = "duas"
			},
			wantMsg: "item 1: qtd deve ser um número maior que zero",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sub := validSubmission()
			tc.mutate(&sub)

			_, err := validateSubmission(sub)

			var ve *entities.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.wantMsg, ve.Message)
		})
	}
}

// Isento e não contribuinte dispensam IE.
func TestValidateSubmission_IEOptional(t *testing.T) {
	for _, ind := range []string{"2", "9"} {
		sub := validSubmission()
		sub.IndIEDest = ind
		sub.IE = ""

		_, err := validateSubmission(sub)
		assert.NoErrorf(t, err, "indIEDest=%s should not require IE", ind)
	}
}

func TestParseQuantidade(t *testing.T) {
	testCases := []struct {
		name   string
		raw    any
		want   float64
		wantOK bool
	}{
		{name: "json number", raw: float64(3), want: 3, wantOK: true},
		{name: "numeric string", raw: "2", want: 2, wantOK: true},
		{name: "numeric string with spaces", raw: " 1.5 ", want: 1.5, wantOK: true},
		{name: "zero", raw: float64(0), wantOK: false},
		{name: "negative", raw: float64(-1), wantOK: false},
		{name: "infinite from string", raw: "Inf", wantOK: false},
		{name: "not a number", raw: "abc", wantOK: false},
		{name: "nil", raw: nil, wantOK: false},
		{name: "object", raw: map[string]any{}, wantOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := parseQuantidade(tc.raw)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}
