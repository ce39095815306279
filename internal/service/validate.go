package service

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lugorito/pedidos-http/internal/entities"
	"github.com/lugorito/pedidos-http/pkg/docbr"
	"github.com/lugorito/pedidos-http/pkg/utils"
)

// validatedSubmission é o intermediário entre a validação e a montagem
// do pedido canônico: tudo já normalizado, só faltam id, data e origem.
type validatedSubmission struct {
	cliente     entities.Cliente
	endereco    entities.Endereco
	itens       []entities.Item
	envio       string
	observacoes string
}

// validateSubmission aplica as regras de negócio em ordem e para na
// primeira violação, devolvendo *entities.ValidationError com mensagem
// apontando o campo problemático.
func validateSubmission(sub entities.Submission) (validatedSubmission, error) {
	var v validatedSubmission

	tipo := utils.TrimString(sub.TipoCliente)
	if tipo != entities.TipoClientePF && tipo != entities.TipoClientePJ {
		return v, entities.NewValidationError(`tipoCliente deve ser "PF" ou "PJ"`)
	}

	nome := utils.TrimString(sub.Nome)
	if nome == "" {
		return v, entities.NewValidationError("nome é obrigatório")
	}
	documento := utils.TrimString(sub.Documento)
	if documento == "" {
		return v, entities.NewValidationError("documento é obrigatório")
	}
	email := utils.TrimString(sub.Email)
	if email == "" {
		return v, entities.NewValidationError("email é obrigatório")
	}
	telefone := utils.TrimString(sub.Telefone)
	if telefone == "" {
		return v, entities.NewValidationError("telefone é obrigatório")
	}

	if sub.Endereco == nil {
		return v, entities.NewValidationError("endereço é obrigatório")
	}
	endereco := entities.Endereco{
		CEP:         utils.TrimString(sub.Endereco.CEP),
		Logradouro:  utils.TrimString(sub.Endereco.Logradouro),
		Numero:      utils.TrimString(sub.Endereco.Numero),
		Complemento: utils.TrimString(sub.Endereco.Complemento),
		Bairro:      utils.TrimString(sub.Endereco.Bairro),
		Municipio:   utils.TrimString(sub.Endereco.Municipio),
		UF:          strings.ToUpper(utils.TrimString(sub.Endereco.UF)),
	}
	for _, campo := range []struct{ nome, valor string }{
		{"cep", endereco.CEP},
		{"logradouro", endereco.Logradouro},
		{"numero", endereco.Numero},
		{"bairro", endereco.Bairro},
		{"municipio", endereco.Municipio},
		{"uf", endereco.UF},
	} {
		if campo.valor == "" {
			return v, entities.NewValidationError(fmt.Sprintf("endereço: %s é obrigatório", campo.nome))
		}
	}
	endereco.CEP = utils.OnlyDigits(endereco.CEP)

	if len(sub.Itens) == 0 {
		return v, entities.NewValidationError("itens é obrigatório e não pode ser vazio")
	}

	if tipo == entities.TipoClientePF {
		if !docbr.ValidCPF(documento) {
			return v, entities.NewValidationError("CPF inválido")
		}
	} else {
		if !docbr.ValidCNPJ(documento) {
			return v, entities.NewValidationError("CNPJ inválido")
		}
	}

	indIEDest := utils.TrimString(sub.IndIEDest)
	switch indIEDest {
	case entities.IndIEDestContribuinte, entities.IndIEDestIsento, entities.IndIEDestNaoContribuinte:
	default:
		return v, entities.NewValidationError(`indIEDest deve ser "1", "2" ou "9"`)
	}
	ie := utils.TrimString(sub.IE)
	if indIEDest == entities.IndIEDestContribuinte && ie == "" {
		return v, entities.NewValidationError("IE é obrigatória para contribuinte do ICMS (indIEDest=1)")
	}

	itens := make([]entities.Item, 0, len(sub.Itens))
	for i, item := range sub.Itens {
		sku := utils.TrimString(item.SKU)
		if sku == "" {
			return v, entities.NewValidationError(fmt.Sprintf("item %d: sku é obrigatório", i+1))
		}
		qtd, ok := parseQuantidade(item.Qtd)
		if !ok {
			return v, entities.NewValidationError(fmt.Sprintf("item %d: qtd deve ser um número maior que zero", i+1))
		}
		itens = append(itens, entities.Item{
			SKU:      sku,
			Qtd:      qtd,
			Variacao: utils.TrimString(item.Variacao),
		})
	}

	cliente := entities.Cliente{
		TipoCliente: tipo,
		Nome:        nome,
		IndIEDest:   indIEDest,
		IE:          ie,
		Email:       email,
		Telefone:    telefone,
	}
	if tipo == entities.TipoClientePF {
		cliente.CPF = utils.OnlyDigits(documento)
	} else {
		cliente.CNPJ = utils.OnlyDigits(documento)
	}

	return validatedSubmission{
		cliente:     cliente,
		endereco:    endereco,
		itens:       itens,
		envio:       utils.TrimString(sub.Envio),
		observacoes: utils.TrimString(sub.Observacoes),
	}, nil
}

// parseQuantidade aceita número JSON ou string numérica; só vale
// quantidade finita e maior que zero.
func parseQuantidade(raw any) (float64, bool) {
	var qtd float64
	switch value := raw.(type) {
	case float64:
		qtd = value
	case json.Number:
		f, err := value.Float64()
		if err != nil {
			return 0, false
		}
		qtd = f
	case string:
		f, err := strconv.ParseFloat(utils.TrimString(value), 64)
		if err != nil {
			return 0, false
		}
		qtd = f
	default:
		return 0, false
	}

	if math.IsNaN(qtd) || math.IsInf(qtd, 0) || qtd <= 0 {
		return 0, false
	}
	return qtd, true
}
