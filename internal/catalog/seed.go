package catalog

// Categories is the fixed category list served by /api/categories. Not every
// category has seeded products.
var Categories = []string{
	"fruits", "vegetables", "pulses", "dairy", "grains",
	"bakery", "spices", "beverages", "snacks", "meat",
}

const imgBase = "https://images.unsplash.com/"

// SeedProducts returns a fresh copy of the sample catalog.
func SeedProducts() []Product {
	seed := []Product{
		{ID: "1", Name: "Fresh Bananas", Category: "fruits", Price: 2.99, ImageURL: imgBase + "photo-1571771894821-ce9b6c11b08e?w=300", Description: "Fresh yellow bananas, rich in potassium", Stock: 50},
		{ID: "2", Name: "Organic Apples", Category: "fruits", Price: 4.99, ImageURL: imgBase + "photo-1560806887-1e4cd0b6cbd6?w=300", Description: "Crisp organic apples, perfect for snacking", Stock: 30},
		{ID: "3", Name: "Fresh Oranges", Category: "fruits", Price: 3.49, ImageURL: imgBase + "photo-1547514701-42782101795e?w=300", Description: "Juicy Valencia oranges, high in Vitamin C", Stock: 40},
		{ID: "4", Name: "Red Grapes", Category: "fruits", Price: 5.99, ImageURL: imgBase + "photo-1537640538966-79f369143f8f?w=300", Description: "Sweet red grapes, seedless variety", Stock: 25},

		{ID: "5", Name: "Fresh Tomatoes", Category: "vegetables", Price: 3.29, ImageURL: imgBase + "photo-1546470427-e5d491d7a6fe?w=300", Description: "Ripe red tomatoes, perfect for cooking", Stock: 60},
		{ID: "6", Name: "Green Broccoli", Category: "vegetables", Price: 2.79, ImageURL: imgBase + "photo-1459411621453-7b03977f4bfc?w=300", Description: "Fresh green broccoli crowns", Stock: 35},
		{ID: "7", Name: "Organic Carrots", Category: "vegetables", Price: 2.49, ImageURL: imgBase + "photo-1445282768818-728615cc910a?w=300", Description: "Organic carrots, sweet and crunchy", Stock: 45},
		{ID: "8", Name: "Fresh Spinach", Category: "vegetables", Price: 1.99, ImageURL: imgBase + "photo-1576045057995-568f588f82fb?w=300", Description: "Fresh baby spinach leaves", Stock: 40},
		{ID: "9", Name: "Bell Peppers", Category: "vegetables", Price: 4.29, ImageURL: imgBase + "photo-1563565375-f3fdfdbefa83?w=300", Description: "Mixed colored bell peppers", Stock: 30},

		{ID: "10", Name: "Red Lentils", Category: "pulses", Price: 3.99, ImageURL: imgBase + "photo-1586201375761-83865001e31c?w=300", Description: "Premium red lentils, 1kg pack", Stock: 80},
		{ID: "11", Name: "Chickpeas", Category: "pulses", Price: 4.49, ImageURL: imgBase + "photo-1610348725531-843dff563e2c?w=300", Description: "Dried chickpeas, excellent source of protein", Stock: 70},
		{ID: "12", Name: "Black Beans", Category: "pulses", Price: 3.79, ImageURL: imgBase + "photo-1586201375761-83865001e31c?w=300", Description: "Organic black beans, 500g pack", Stock: 60},
		{ID: "13", Name: "Green Peas", Category: "pulses", Price: 2.99, ImageURL: imgBase + "photo-1586201375318-d1b6c2e96e66?w=300", Description: "Dried green peas, perfect for soups", Stock: 55},

		{ID: "14", Name: "Fresh Milk", Category: "dairy", Price: 3.49, ImageURL: imgBase + "photo-1563636619-e9143da7973b?w=300", Description: "Fresh whole milk, 1 liter", Stock: 90},
		{ID: "15", Name: "Greek Yogurt", Category: "dairy", Price: 4.99, ImageURL: imgBase + "photo-1488477181946-6428a0291777?w=300", Description: "Creamy Greek yogurt, 500g", Stock: 40},
		{ID: "16", Name: "Cheddar Cheese", Category: "dairy", Price: 6.99, ImageURL: imgBase + "photo-1486297678162-eb2a19b0a32d?w=300", Description: "Aged cheddar cheese block", Stock: 25},

		{ID: "17", Name: "Basmati Rice", Category: "grains", Price: 7.99, ImageURL: imgBase + "photo-1586201375761-83865001e31c?w=300", Description: "Premium basmati rice, 2kg pack", Stock: 100},
		{ID: "18", Name: "Whole Wheat Flour", Category: "grains", Price: 4.49, ImageURL: imgBase + "photo-1574323347407-f5e1ad6d020b?w=300", Description: "Organic whole wheat flour, 1kg", Stock: 75},
		{ID: "19", Name: "Rolled Oats", Category: "grains", Price: 3.99, ImageURL: imgBase + "photo-1574323347407-f5e1ad6d020b?w=300", Description: "Premium rolled oats for breakfast", Stock: 65},

		{ID: "20", Name: "Whole Wheat Bread", Category: "bakery", Price: 2.99, ImageURL: imgBase + "photo-1509440159596-0249088772ff?w=300", Description: "Fresh baked whole wheat bread", Stock: 20},
		{ID: "21", Name: "Croissants", Category: "bakery", Price: 5.99, ImageURL: imgBase + "photo-1555507036-ab1f4038808a?w=300", Description: "Buttery French croissants, pack of 6", Stock: 15},

		{ID: "22", Name: "Turmeric Powder", Category: "spices", Price: 2.49, ImageURL: imgBase + "photo-1599909713857-b6a0e5d36b20?w=300", Description: "Pure turmeric powder, 100g", Stock: 50},
		{ID: "23", Name: "Cumin Seeds", Category: "spices", Price: 3.29, ImageURL: imgBase + "photo-1599909713857-b6a0e5d36b20?w=300", Description: "Whole cumin seeds, aromatic", Stock: 45},
		{ID: "24", Name: "Fresh Basil", Category: "spices", Price: 1.99, ImageURL: imgBase + "photo-1618375569909-0b8a69d3eb5c?w=300", Description: "Fresh basil leaves", Stock: 30},
	}
	return seed
}
