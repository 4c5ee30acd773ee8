package catalog

import "marketly/domain"

var seedProducts = []domain.Product{
	{
		ID: "1", Name: "Wireless Bluetooth Headphones", Category: domain.CategoryElectronics,
		Price: 89.99, Stock: 45, Rating: 4.5, ReviewCount: 128, Featured: true,
		Description: "Over-ear headphones with active noise cancellation and 30-hour battery life.",
		Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500&q=80",
	},
	{
		ID: "2", Name: "Smart Watch Series 7", Category: domain.CategoryElectronics,
		Price: 299.99, Stock: 23, Rating: 4.7, ReviewCount: 256, Featured: true,
		Description: "Fitness tracking, heart rate monitoring and an always-on display.",
		Image:       "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=500&q=80",
	},
	{
		ID: "3", Name: "Leather Laptop Bag", Category: domain.CategoryAccessories,
		Price: 129.99, Stock: 15, Rating: 4.3, ReviewCount: 64,
		Description: "Full-grain leather bag with a padded sleeve for 15-inch laptops.",
		Image:       "https://images.unsplash.com/photo-1548036328-c9fa89d128fa?w=500&q=80",
	},
	{
		ID: "4", Name: "Ergonomic Office Chair", Category: domain.CategoryFurniture,
		Price: 349.99, Stock: 8, Rating: 4.6, ReviewCount: 89, Featured: true,
		Description: "Adjustable lumbar support, breathable mesh back and 4D armrests.",
		Image:       "https://images.unsplash.com/photo-1580480055273-228ff5388ef8?w=500&q=80",
	},
	{
		ID: "5", Name: "Yoga Mat Pro", Category: domain.CategorySports,
		Price: 39.99, Stock: 60, Rating: 4.4, ReviewCount: 210,
		Description: "Non-slip 6mm mat with alignment lines and a carry strap.",
		Image:       "https://images.unsplash.com/photo-1601925260368-ae2f83cf8b7f?w=500&q=80",
	},
	{
		ID: "6", Name: "Standing Desk", Category: domain.CategoryFurniture,
		Price: 499.99, Stock: 0, Rating: 4.8, ReviewCount: 47,
		Description: "Electric height-adjustable desk with memory presets.",
		Image:       "https://images.unsplash.com/photo-1595515106969-1ce29566ff1c?w=500&q=80",
	},
	{
		ID: "7", Name: "Ceramic Coffee Mug Set", Category: domain.CategoryHome,
		Price: 29.99, Stock: 80, Rating: 4.2, ReviewCount: 95,
		Description: "Set of four stoneware mugs, dishwasher and microwave safe.",
		Image:       "https://images.unsplash.com/photo-1514228742587-6b1558fcca3d?w=500&q=80",
	},
	{
		ID: "8", Name: "Running Shoes", Category: domain.CategorySports,
		Price: 119.99, Stock: 12, Rating: 4.1, ReviewCount: 178,
		Description: "Lightweight trainers with responsive foam cushioning.",
		Image:       "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=500&q=80",
	},
	{
		ID: "9", Name: "Mechanical Keyboard", Category: domain.CategoryElectronics,
		Price: 149.99, Stock: 30, Rating: 4.6, ReviewCount: 312, Featured: true,
		Description: "Hot-swappable switches, RGB backlight and aluminium frame.",
		Image:       "https://images.unsplash.com/photo-1511467687858-23d96c32e4ae?w=500&q=80",
	},
	{
		ID: "10", Name: "Wireless Mouse", Category: domain.CategoryAccessories,
		Price: 24.99, Stock: 100, Rating: 4.0, ReviewCount: 420,
		Description: "Silent-click mouse with a 2.4GHz receiver and 18-month battery.",
		Image:       "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=500&q=80",
	},
	{
		ID: "11", Name: "Desk Lamp LED", Category: domain.CategoryHome,
		Price: 49.99, Stock: 18, Rating: 3.9, ReviewCount: 73,
		Description: "Dimmable lamp with five colour temperatures and a USB charging port.",
		Image:       "https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=500&q=80",
	},
	{
		ID: "12", Name: "Water Bottle Insulated", Category: domain.CategorySports,
		Price: 19.99, Stock: 5, Rating: 4.5, ReviewCount: 160,
		Description: "Stainless steel bottle that keeps drinks cold for 24 hours.",
		Image:       "https://images.unsplash.com/photo-1602143407151-7111542de6e8?w=500&q=80",
	},
}

var seedOrders = []domain.Order{
	{
		ID:     "ORD-2024-001",
		Date:   "2024-01-15",
		Status: domain.StatusDelivered,
		Items: []domain.OrderLine{
			{ProductID: "1", ProductName: "Wireless Bluetooth Headphones", Quantity: 1, Price: 89.99},
			{ProductID: "10", ProductName: "Wireless Mouse", Quantity: 2, Price: 24.99},
		},
		Total:          139.97,
		TrackingNumber: "TRK1234567890",
	},
	{
		ID:     "ORD-2024-002",
		Date:   "2024-01-20",
		Status: domain.StatusShipped,
		Items: []domain.OrderLine{
			{ProductID: "2", ProductName: "Smart Watch Series 7", Quantity: 1, Price: 299.99},
		},
		Total:             299.99,
		TrackingNumber:    "TRK9876543210",
		EstimatedDelivery: "2024-01-25",
	},
	{
		ID:     "ORD-2024-003",
		Date:   "2024-01-22",
		Status: domain.StatusProcessing,
		Items: []domain.OrderLine{
			{ProductID: "4", ProductName: "Ergonomic Office Chair", Quantity: 1, Price: 349.99},
			{ProductID: "11", ProductName: "Desk Lamp LED", Quantity: 1, Price: 49.99},
		},
		Total:             399.98,
		EstimatedDelivery: "2024-01-28",
	},
}
