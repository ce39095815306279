package entities

import "time"

const (
	TipoClientePF = "PF"
	TipoClientePJ = "PJ"
)

// Indicador de IE do destinatário (indIEDest), códigos da NF-e.
const (
	IndIEDestContribuinte    = "1"
	IndIEDestIsento          = "2"
	IndIEDestNaoContribuinte = "9"
)

// Order é o pedido canônico: todo campo já validado e normalizado.
// Depois de montado pelo serviço, nunca é alterado.
type Order struct {
	ID          string    `json:"pedidoId"`
	CriadoEm    time.Time `json:"criadoEm"`
	Origem      string    `json:"origem"`
	Cliente     Cliente   `json:"cliente"`
	Endereco    Endereco  `json:"endereco"`
	Itens       []Item    `json:"itens"`
	Envio       string    `json:"envio,omitempty"`
	Observacoes string    `json:"observacoes,omitempty"`
}

// Cliente carrega exatamente um documento preenchido:
// CPF quando TipoCliente é PF, CNPJ quando é PJ. Sempre só dígitos.
type Cliente struct {
	TipoCliente string `json:"tipoCliente"`
	Nome        string `json:"nome"`
	CPF         string `json:"cpf,omitempty"`
	CNPJ        string `json:"cnpj,omitempty"`
	IndIEDest   string `json:"indIEDest"`
	IE          string `json:"ie,omitempty"`
	Email       string `json:"email"`
	Telefone    string `json:"telefone"`
}

type Endereco struct {
	CEP         string `json:"cep"`
	Logradouro  string `json:"logradouro"`
	Numero      string `json:"numero"`
	Complemento string `json:"complemento,omitempty"`
	Bairro      string `json:"bairro"`
	Municipio   string `json:"municipio"`
	UF          string `json:"uf"`
}

type Item struct {
	SKU      string  `json:"sku"`
	Qtd      float64 `json:"qtd"`
	Variacao string  `json:"variacao,omitempty"`
}
