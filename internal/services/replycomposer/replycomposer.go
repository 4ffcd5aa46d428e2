// Package replycomposer renders the outbound reply text for an inbound message.
package replycomposer

import (
	"fmt"
	"strings"

	"github.com/storekit/whatsapp-replies-api/internal/products"
)

// ProductReply renders the reply for a product search. With matches it renders
// a header plus one line per product; without matches it echoes the term in a
// fixed not-found message.
func ProductReply(term string, matches []products.Product) string {
	if len(matches) == 0 {
		return fmt.Sprintf("Sorry, we couldn't find any products matching %q. Try another name or model.", term)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here's what we found for %q:\n", term)
	for _, p := range matches {
		fmt.Fprintf(&b, "- %s (%s): $%.2f, %d in stock, %s\n", p.Name, p.Model, p.Price, p.Stock, p.Category)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Echo renders the no-backend reply, repeating the inbound text back to the
// sender.
func Echo(text string) string {
	return fmt.Sprintf("Hi there! You said: %s", text)
}
