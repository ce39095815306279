package handler

// CreateOrderResponse confirma a aceitação do pedido
// swagger:model CreateOrderResponse
type CreateOrderResponse struct {
	OK       bool   `json:"ok"`
	PedidoID string `json:"pedidoId"`
}
