// Package seed содержит стартовые данные демо-магазина.
package seed

import "github.com/DRSN-tech/dropflow/internal/domain"

func int64Ptr(v int64) *int64 {
	return &v
}

// Products возвращает стартовый каталог, записываемый при первом запуске.
func Products() []domain.Product {
	return []domain.Product{
		{
			ID:             "1",
			Title:          "Minimalist Smart Watch",
			Description:    "Track your health with style. Features heart rate monitoring, sleep tracking, and 7-day battery life.",
			Price:          4999,
			CompareAtPrice: int64Ptr(8999),
			CostPrice:      1500,
			Supplier:       "AliExpress",
			Image:          "https://picsum.photos/400/400?random=1",
			Category:       "Electronics",
			Inventory:      45,
			Rating:         4.8,
			Reviews:        120,
		},
		{
			ID:             "2",
			Title:          "Ergonomic Laptop Stand",
			Description:    "Aluminum alloy stand, adjustable height, improves posture while working.",
			Price:          2999,
			CompareAtPrice: int64Ptr(4500),
			CostPrice:      850,
			Supplier:       "CJDropshipping",
			Image:          "https://picsum.photos/400/400?random=2",
			Category:       "Office",
			Inventory:      120,
			Rating:         4.5,
			Reviews:        85,
		},
		{
			ID:             "3",
			Title:          "Wireless Noise Cancelling Headphones",
			Description:    "Immersive sound with active noise cancellation. 30 hours playtime.",
			Price:          7999,
			CompareAtPrice: int64Ptr(15000),
			CostPrice:      2500,
			Supplier:       "Spocket",
			Image:          "https://picsum.photos/400/400?random=3",
			Category:       "Audio",
			Inventory:      30,
			Rating:         4.9,
			Reviews:        210,
		},
		{
			ID:          "4",
			Title:       "Portable Blender Bottle",
			Description: "Make smoothies on the go. USB rechargeable, BPA free.",
			Price:       3499,
			CostPrice:   1000,
			Supplier:    "AliExpress",
			Image:       "https://picsum.photos/400/400?random=4",
			Category:    "Home & Kitchen",
			Inventory:   200,
			Rating:      4.2,
			Reviews:     55,
		},
	}
}

// Suppliers возвращает фиксированный набор поставщиков.
func Suppliers() []domain.Supplier {
	return []domain.Supplier{
		{ID: "sup_1", Name: "AliExpress Official", APIStatus: domain.SupplierConnected, AutoSync: true},
		{ID: "sup_2", Name: "CJDropshipping", APIStatus: domain.SupplierConnected, AutoSync: true},
		{ID: "sup_3", Name: "Spocket US", APIStatus: domain.SupplierDisconnected, AutoSync: false},
	}
}
