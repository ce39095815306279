package entities

// Submission é o corpo cru do POST /api/pedidos, antes de qualquer
// validação. Qtd fica como any porque clientes mandam tanto número
// quanto string ("2").
type Submission struct {
	TipoCliente string              `json:"tipoCliente"`
	Nome        string              `json:"nome"`
	Documento   string              `json:"documento"`
	Email       string              `json:"email"`
	Telefone    string              `json:"telefone"`
	IndIEDest   string              `json:"indIEDest"`
	IE          string              `json:"ie"`
	Endereco    *EnderecoSubmission `json:"endereco"`
	Itens       []ItemSubmission    `json:"itens"`
	Envio       string              `json:"envio"`
	Observacoes string              `json:"observacoes"`
}

type EnderecoSubmission struct {
	CEP         string `json:"cep"`
	Logradouro  string `json:"logradouro"`
	Numero      string `json:"numero"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Municipio   string `json:"municipio"`
	UF          string `json:"uf"`
}

type ItemSubmission struct {
	SKU      string `json:"sku"`
	Qtd      any    `json:"qtd"`
	Variacao string `json:"variacao"`
}
