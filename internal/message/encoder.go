// Package message turns an order into the WhatsApp text the shopper sends to
// the store after paying with e-Mola, and into the wa.me deep link that opens it.
package message

import (
	"net/url"
	"strconv"
	"strings"

	"dropsmob/internal/domain"
)

const (
	lineBreakEscape = "%0A"
	noAddress       = "Não informado"
)

// Payload is everything the checkout hands to the chat client.
type Payload struct {
	Text    string `json:"text"`
	Escaped string `json:"escaped"`
	URI     string `json:"uri"`
}

// Encoder is stateless; identical inputs give byte-identical payloads.
type Encoder struct {
	StoreName string
	Recipient string
	BaseURL   string
}

func NewEncoder(storeName, recipient, baseURL string) *Encoder {
	if baseURL == "" {
		baseURL = "https://wa.me/"
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Encoder{StoreName: storeName, Recipient: recipient, BaseURL: baseURL}
}

func (e *Encoder) Encode(o domain.Order, form domain.CustomerForm) Payload {
	text := e.Text(o, form)
	return Payload{
		Text:    text,
		Escaped: EscapeLineBreaks(text),
		URI:     e.Link(text),
	}
}

// Text builds the multi-line confirmation message.
func (e *Encoder) Text(o domain.Order, form domain.CustomerForm) string {
	address := strings.TrimSpace(form.Address)
	if address == "" {
		address = noAddress
	}
	lines := []string{
		"Olá " + e.StoreName + " 👋",
		"",
		"Já efectuei o pagamento via e-Mola.",
		"",
		"👤 *Nome:* " + o.CustomerName,
		"📱 *Número e-Mola:* " + o.EmolaNumber,
		"💰 *Valor:* " + FormatMZN(o.Total),
		"📋 *Pedido:* " + ItemsSummary(o.Items),
		"🔑 *Referência:* " + o.Reference,
		"📍 *Endereço:* " + address,
		"",
		"Aguardando confirmação!",
	}
	return strings.Join(lines, "\n")
}

// ItemsSummary renders "2x Camiseta + 1x Chaleira".
func ItemsSummary(items []domain.CartLine) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, itemLabel(it))
	}
	return strings.Join(parts, " + ")
}

func itemLabel(it domain.CartLine) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(it.Quantity))
	b.WriteString("x ")
	b.WriteString(it.Name)
	return b.String()
}

// EscapeLineBreaks replaces every newline with its URI escape.
func EscapeLineBreaks(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", lineBreakEscape)
}

// Link builds the deep link carrying text as its only query parameter.
func (e *Encoder) Link(text string) string {
	q := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return e.BaseURL + e.Recipient + "?text=" + q
}

// SupportLink opens a plain question to the store, used by the help button.
func (e *Encoder) SupportLink() string {
	return e.Link("Olá " + e.StoreName + ", gostaria de tirar uma dúvida.")
}
