// Package categorizing resolve categorias de produtos e monta o perfil de compras dos clientes
package categorizing

import (
	"fmt"
	"strings"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const UncategorizedLabel = "Sin Categoría"

// Keywords associa o nome normalizado de uma categoria às palavras que
// aparecem no nome dos produtos dela
type Keywords map[string][]string

// DefaultKeywords retorna a tabela de palavras-chave padrão
func DefaultKeywords() Keywords {
	return Keywords{
		"lacteos":  {"leche", "milk", "queso", "cheese", "yogur", "yogurt", "mantequilla"},
		"bebidas":  {"bebida", "juice", "jugo", "agua", "refresco", "gaseosa", "coca", "inka"},
		"snacks":   {"galleta", "oreo", "chips", "papas", "dulce", "chocolate"},
		"limpieza": {"detergente", "jabon", "shampoo", "limpia"},
		"cereales": {"pasta", "espagueti", "fideo", "arroz", "avena", "cereal"},
	}
}

// InferCategory deduz a categoria pelo nome do produto usando as palavras-chave padrão
func InferCategory(productName string, known []domain.Category) string {
	return InferCategoryWithKeywords(productName, known, DefaultKeywords())
}

// InferCategoryWithKeywords percorre as categorias conhecidas na ordem recebida
// e retorna a primeira cujo nome aparece no produto ou que tenha alguma
// palavra-chave no nome do produto
func InferCategoryWithKeywords(productName string, known []domain.Category, keywords Keywords) string {
	name := utils.NormalizeText(productName)
	if name == "" {
		return UncategorizedLabel
	}

	for _, category := range known {
		categoryName := utils.NormalizeText(category.Name)
		if categoryName == "" {
			continue
		}

		if strings.Contains(name, categoryName) || containsAny(name, keywords[categoryName]) {
			return category.Name
		}
	}

	return UncategorizedLabel
}

func containsAny(name string, words []string) bool {
	for _, word := range words {
		if strings.Contains(name, word) {
			return true
		}
	}
	return false
}

// CategoryByCode busca o nome da categoria pelo código
func CategoryByCode(code int, known []domain.Category) string {
	for _, category := range known {
		if category.ID == code {
			return category.Name
		}
	}
	return fmt.Sprintf("Categoría %d", code)
}

// Resolver indexa o inventário completo (vigente e descontinuado) pelo nome
type Resolver struct {
	byName   map[string]domain.InventoryItem
	known    []domain.Category
	keywords Keywords
}

func NewResolver(inventory []domain.InventoryItem, known []domain.Category) *Resolver {
	byName := make(map[string]domain.InventoryItem, len(inventory))
	for _, item := range inventory {
		name := utils.NormalizeText(item.Name)
		if _, exists := byName[name]; !exists {
			byName[name] = item
		}
	}

	return &Resolver{
		byName:   byName,
		known:    known,
		keywords: DefaultKeywords(),
	}
}

// Resolve segue a cadeia: categoria do inventário, código da categoria,
// inferência pelo nome e por fim "Sin Categoría"
func (r *Resolver) Resolve(productName string) string {
	item, found := r.byName[utils.NormalizeText(productName)]
	if !found {
		return InferCategoryWithKeywords(productName, r.known, r.keywords)
	}

	if item.CategoryName != "" {
		return item.CategoryName
	}

	return CategoryByCode(item.CategoryID, r.known)
}

// ResolveCategory resolve a categoria de um único produto
func ResolveCategory(productName string, inventory []domain.InventoryItem, known []domain.Category) string {
	return NewResolver(inventory, known).Resolve(productName)
}
