package chatbot

import (
	"context"
	"fmt"
	"strings"

	"github.com/jordanhale/lapstore-backend/internal/catalog"
	"github.com/jordanhale/lapstore-backend/pkg/db/models"
	pkgerrors "github.com/jordanhale/lapstore-backend/pkg/errors"
)

// Service answers shopper questions against a product snapshot taken once at
// construction. The matcher itself is a pure function so it can be tested
// without a database.
type Service interface {
	Reply(ctx context.Context, message string) (string, error)
}

type service struct {
	products []models.Laptop
}

// NewService loads the active catalog once and serves every reply from that
// snapshot. Restart the service to pick up new listings.
func NewService(ctx context.Context, repo *catalog.Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	products, err := repo.ListLaptops(ctx, catalog.ListFilter{ActiveOnly: true})
	if err != nil {
		return nil, fmt.Errorf("loading chatbot product cache: %w", err)
	}
	return &service{products: products}, nil
}

func (s *service) Reply(_ context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "message is required")
	}
	return Match(message, s.products), nil
}

// Match maps a free-text message to a reply using keyword and substring
// heuristics over the product list. It never errors; unmatched messages get a
// generic prompt.
func Match(message string, products []models.Laptop) string {
	normalized := strings.ToLower(strings.TrimSpace(message))

	if isGreeting(normalized) {
		return "Hi! I can help you find a laptop. Ask me about models, specs or prices."
	}

	if matched := matchProducts(normalized, products); len(matched) > 0 {
		if wantsPrice(normalized) {
			return priceReply(matched)
		}
		return listingReply(matched)
	}

	if wantsPrice(normalized) {
		return "Which laptop are you asking about? Tell me the model name and I'll look up the price."
	}
	if wantsCheapest(normalized) {
		if cheapest := cheapestOf(products); cheapest != nil {
			return fmt.Sprintf("Our most affordable laptop right now is the %s at $%s.",
				cheapest.Name, cheapest.Price.StringFixed(2))
		}
	}

	return "I'm not sure about that one. Try asking about a laptop model, its specs or its price."
}

func isGreeting(message string) bool {
	for _, greeting := range []string{"hello", "hi", "hey", "good morning", "good afternoon"} {
		if message == greeting || strings.HasPrefix(message, greeting+" ") || strings.HasPrefix(message, greeting+",") {
			return true
		}
	}
	return false
}

func wantsPrice(message string) bool {
	for _, keyword := range []string{"price", "cost", "how much", "expensive", "cheap"} {
		if strings.Contains(message, keyword) {
			return true
		}
	}
	return false
}

func wantsCheapest(message string) bool {
	for _, keyword := range []string{"cheapest", "affordable", "budget", "lowest"} {
		if strings.Contains(message, keyword) {
			return true
		}
	}
	return false
}

// matchProducts keeps every product whose name, or any name token longer than
// three characters, appears in the message. Spec fields are searched too so
// "i7" or "16gb" style questions still hit.
func matchProducts(message string, products []models.Laptop) []models.Laptop {
	var matched []models.Laptop
	for _, product := range products {
		if productMatches(message, product) {
			matched = append(matched, product)
		}
	}
	return matched
}

func productMatches(message string, product models.Laptop) bool {
	name := strings.ToLower(product.Name)
	if name != "" && strings.Contains(message, name) {
		return true
	}
	for _, token := range strings.Fields(name) {
		if len(token) > 3 && strings.Contains(message, token) {
			return true
		}
	}
	for _, spec := range []string{
		product.Specs.Processor,
		product.Specs.RAM,
		product.Specs.Storage,
		product.Specs.Graphics,
	} {
		spec = strings.ToLower(strings.TrimSpace(spec))
		if spec != "" && strings.Contains(message, spec) {
			return true
		}
	}
	return false
}

func priceReply(matched []models.Laptop) string {
	if len(matched) == 1 {
		return fmt.Sprintf("The %s is $%s.", matched[0].Name, matched[0].Price.StringFixed(2))
	}
	var lines []string
	for _, product := range matched {
		lines = append(lines, fmt.Sprintf("%s: $%s", product.Name, product.Price.StringFixed(2)))
	}
	return "Here are the prices I found: " + strings.Join(lines, "; ") + "."
}

func listingReply(matched []models.Laptop) string {
	if len(matched) == 1 {
		product := matched[0]
		parts := []string{fmt.Sprintf("The %s", product.Name)}
		if product.Specs.Processor != "" {
			parts = append(parts, "runs a "+product.Specs.Processor)
		}
		if product.Specs.RAM != "" {
			parts = append(parts, "with "+product.Specs.RAM+" of memory")
		}
		return strings.Join(parts, " ") + fmt.Sprintf(", priced at $%s.", product.Price.StringFixed(2))
	}
	var names []string
	for _, product := range matched {
		names = append(names, product.Name)
	}
	return "I found a few matches: " + strings.Join(names, ", ") + ". Which one would you like to know more about?"
}

func cheapestOf(products []models.Laptop) *models.Laptop {
	var cheapest *models.Laptop
	for i := range products {
		if cheapest == nil || products[i].Price.LessThan(cheapest.Price) {
			cheapest = &products[i]
		}
	}
	return cheapest
}
