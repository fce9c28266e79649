package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultWhatsAppURL is used when no messaging base URL is configured.
const DefaultWhatsAppURL = "https://wa.me/"

// Message is the handoff payload. The transaction id is intentionally left
// blank; the buyer fills it in after paying.
type Message struct {
	ProductName  string
	ProductID    string
	Amount       decimal.Decimal
	BuyerName    string
	BuyerAddress string
}

// Text renders the fixed-format handoff message.
func (m Message) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Payment for - %s\n", m.ProductName)
	fmt.Fprintf(&b, "Product ID - %s\n", m.ProductID)
	fmt.Fprintf(&b, "Amount - $%s\n", m.Amount.String())
	fmt.Fprintf(&b, "Buyer Name - %s\n", m.BuyerName)
	fmt.Fprintf(&b, "Buyer Address - %s\n", m.BuyerAddress)
	b.WriteString("Transaction ID - \n")
	b.WriteString("\nNote: Please don't forget to attach the transaction screenshot")
	return b.String()
}

// HandoffURL builds the external messaging link for the message. The base
// defaults to WhatsApp's short-link host when empty.
func (m Message) HandoffURL(base string) string {
	if base == "" {
		base = DefaultWhatsAppURL
	}
	return base + "?text=" + url.QueryEscape(m.Text())
}
