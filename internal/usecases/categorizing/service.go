package categorizing

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const (
	NoPurchasesLabel      = "Sin compras registradas"
	NoCategoriesLabel     = "Sin categorías registradas"
	CategoriesErrorLabel  = "Error al cargar categorías"
	profileItemsSeparator = ", "
)

var dniPattern = regexp.MustCompile(`^\d{8}$`)

type Service struct {
	source ClientSource
}

func NewService(source ClientSource) *Service {
	return &Service{source: source}
}

func (s *Service) BuildClientProfile(ctx context.Context, dni string) (*domain.ClientPurchaseProfile, error) {
	dni = strings.TrimSpace(dni)
	if !dniPattern.MatchString(dni) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDNI, dni)
	}

	client, err := s.source.FetchClientByDNI(ctx, dni)
	if err != nil {
		return nil, err
	}

	if client == nil {
		return nil, ErrClientNotFound
	}

	profile := &domain.ClientPurchaseProfile{
		DNI:            client.DNI,
		Name:           strings.TrimSpace(client.FirstName + " " + client.LastName),
		OrderCount:     len(client.Orders),
		TotalPurchases: decimal.Zero,
		ProductsBought: []string{},
		Categories:     []string{},
	}

	if len(client.Orders) == 0 {
		profile.ProductsSummary = NoPurchasesLabel
		profile.CategorySummary = NoPurchasesLabel
		return profile, nil
	}

	for _, order := range client.Orders {
		// total inválido conta como zero
		amount, _ := utils.ParseAmount(order.Total)
		profile.TotalPurchases = profile.TotalPurchases.Add(amount)
	}

	profile.ProductsBought = distinctProducts(client.Orders)
	profile.ProductsSummary = strings.Join(profile.ProductsBought, profileItemsSeparator)

	resolver, err := s.resolver(ctx)
	if err != nil {
		logrus.WithError(err).WithField("dni", dni).Error("Erro ao carregar inventário para o perfil do cliente")
		profile.CategorySummary = CategoriesErrorLabel
		return profile, nil
	}

	seen := make(map[string]struct{})
	for _, product := range profile.ProductsBought {
		category := resolver.Resolve(product)
		if _, exists := seen[category]; exists {
			continue
		}
		seen[category] = struct{}{}
		profile.Categories = append(profile.Categories, category)
	}

	profile.CategorySummary = strings.Join(profile.Categories, profileItemsSeparator)
	if profile.CategorySummary == "" {
		profile.CategorySummary = NoCategoriesLabel
	}

	return profile, nil
}

// resolver carrega o inventário completo. Sem a tabela de categorias a
// resolução continua funcionando com o nome vindo do inventário.
func (s *Service) resolver(ctx context.Context) (*Resolver, error) {
	inventory, err := s.source.FetchInventory(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := s.source.FetchCategories(ctx)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao carregar categorias, seguindo sem a tabela de categorias")
		categories = []domain.Category{}
	}

	return NewResolver(inventory, categories), nil
}

func distinctProducts(orders []domain.Order) []string {
	products := make([]string, 0)
	seen := make(map[string]struct{})

	for _, order := range orders {
		for _, line := range order.Items {
			name := strings.TrimSpace(line.ProductName)
			if name == "" {
				continue
			}
			if _, exists := seen[name]; exists {
				continue
			}
			seen[name] = struct{}{}
			products = append(products, name)
		}
	}

	return products
}
