package entities

// Notification é o e-mail de aviso de pedido novo, já composto pelo serviço.
type Notification struct {
	ReplyTo        string
	Subject        string
	Body           string
	AttachmentName string
	Attachment     []byte
}
