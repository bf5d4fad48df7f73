package catalog

import "freshbasket/models"

// SeedProducts is the catalog loaded into an empty products collection.
var SeedProducts = []models.Product{
	{ProductID: "1", Name: "Green Apples", Category: "Fruits", Price: 120, Unit: "kg",
		Description: "Crisp and juicy green apples",
		Image:       "https://images.unsplash.com/photo-1619546813926-a78fa6372cd2?w=500&h=500&fit=crop",
		Stock:       40, Active: true},
	{ProductID: "2", Name: "Red Apples", Category: "Fruits", Price: 130, Unit: "kg",
		Description: "Sweet and crunchy red apples",
		Image:       "https://images.unsplash.com/photo-1560806887-1e4cd0b6cbd6?w=500&h=500&fit=crop",
		Stock:       45, Active: true},
	{ProductID: "3", Name: "Bananas", Category: "Fruits", Price: 50, Unit: "dozen",
		Description: "Yellow ripe bananas",
		Image:       "https://images.unsplash.com/photo-1571771894821-ce9b6c11b08e?w=500&h=500&fit=crop",
		Stock:       100, Active: true},
	{ProductID: "4", Name: "Oranges", Category: "Fruits", Price: 80, Unit: "kg",
		Description: "Sweet juicy oranges",
		Image:       "https://images.unsplash.com/photo-1547514701-42782101795e?w=500&h=500&fit=crop",
		Stock:       45, Active: true},
	{ProductID: "5", Name: "Mangoes", Category: "Fruits", Price: 150, Unit: "kg",
		Description: "Sweet Alphonso mangoes",
		Image:       "https://images.unsplash.com/photo-1605027990121-cbae9f90ffb0?w=500&h=500&fit=crop",
		Stock:       25, Active: true},
	{ProductID: "6", Name: "Strawberries", Category: "Fruits", Price: 200, Unit: "kg",
		Description: "Fresh sweet strawberries",
		Image:       "https://images.unsplash.com/photo-1464965911861-746a04b4bca6?w=500&h=500&fit=crop",
		Stock:       20, Active: true},
	{ProductID: "7", Name: "Watermelon", Category: "Fruits", Price: 30, Unit: "kg",
		Description: "Refreshing red watermelon",
		Image:       "https://images.unsplash.com/photo-1587049352846-4a222e784e38?w=500&h=500&fit=crop",
		Stock:       35, Active: true},
	{ProductID: "8", Name: "Grapes", Category: "Fruits", Price: 90, Unit: "kg",
		Description: "Sweet green grapes",
		Image:       "https://images.unsplash.com/photo-1599819177041-fbb9ea8b0e25?w=500&h=500&fit=crop",
		Stock:       30, Active: true},
	{ProductID: "9", Name: "Pineapple", Category: "Fruits", Price: 60, Unit: "piece",
		Description: "Fresh tropical pineapple",
		Image:       "https://images.unsplash.com/photo-1550828520-4cb496926fc9?w=500&h=500&fit=crop",
		Stock:       40, Active: true},
	{ProductID: "10", Name: "Papaya", Category: "Fruits", Price: 45, Unit: "kg",
		Description: "Fresh ripe papaya",
		Image:       "https://images.unsplash.com/photo-1517282009859-f000ec3b26fe?w=500&h=500&fit=crop",
		Stock:       28, Active: true},
	{ProductID: "11", Name: "Pomegranate", Category: "Fruits", Price: 140, Unit: "kg",
		Description: "Ruby red pomegranate",
		Image:       "https://images.unsplash.com/photo-1553279964-67a92de6ff81?w=500&h=500&fit=crop",
		Stock:       22, Active: true},
	{ProductID: "12", Name: "Kiwi", Category: "Fruits", Price: 180, Unit: "kg",
		Description: "Fresh green kiwi",
		Image:       "https://images.unsplash.com/photo-1585059895524-72359e06133a?w=500&h=500&fit=crop",
		Stock:       18, Active: true},
	{ProductID: "13", Name: "Blueberries", Category: "Fruits", Price: 250, Unit: "kg",
		Description: "Fresh organic blueberries",
		Image:       "https://images.unsplash.com/photo-1498557850523-fd3d118b962e?w=500&h=500&fit=crop",
		Stock:       15, Active: true},
	{ProductID: "14", Name: "Cherries", Category: "Fruits", Price: 300, Unit: "kg",
		Description: "Premium fresh cherries",
		Image:       "https://images.unsplash.com/photo-1528821128474-27f963b062bf?w=500&h=500&fit=crop",
		Stock:       12, Active: true},
	{ProductID: "15", Name: "Dragon Fruit", Category: "Fruits", Price: 220, Unit: "kg",
		Description: "Exotic dragon fruit",
		Image:       "https://images.unsplash.com/photo-1527325678964-54921661f888?w=500&h=500&fit=crop",
		Stock:       16, Active: true},
	{ProductID: "16", Name: "Fresh Tomatoes", Category: "Vegetables", Price: 40, Unit: "kg",
		Description: "Fresh red tomatoes",
		Image:       "https://images.unsplash.com/photo-1546470427-227ddde4e638?w=500&h=500&fit=crop",
		Stock:       50, Active: true},
	{ProductID: "17", Name: "Fresh Carrots", Category: "Vegetables", Price: 35, Unit: "kg",
		Description: "Organic carrots",
		Image:       "https://images.unsplash.com/photo-1598170845058-32b9d6a5da37?w=500&h=500&fit=crop",
		Stock:       60, Active: true},
	{ProductID: "18", Name: "Fresh Spinach", Category: "Vegetables", Price: 30, Unit: "kg",
		Description: "Green leafy spinach",
		Image:       "https://images.unsplash.com/photo-1576045057995-568f588f82fb?w=500&h=500&fit=crop",
		Stock:       35, Active: true},
	{ProductID: "19", Name: "Bell Peppers", Category: "Vegetables", Price: 60, Unit: "kg",
		Description: "Colorful bell peppers",
		Image:       "https://images.unsplash.com/photo-1563565375-f3fdfdbefa83?w=500&h=500&fit=crop",
		Stock:       30, Active: true},
	{ProductID: "20", Name: "Broccoli", Category: "Vegetables", Price: 70, Unit: "kg",
		Description: "Fresh green broccoli",
		Image:       "https://images.unsplash.com/photo-1459411621453-7b03977f4bfc?w=500&h=500&fit=crop",
		Stock:       25, Active: true},
	{ProductID: "21", Name: "Cauliflower", Category: "Vegetables", Price: 40, Unit: "kg",
		Description: "Fresh white cauliflower",
		Image:       "https://images.unsplash.com/photo-1568584711271-4cdaa2bd9299?w=500&h=500&fit=crop",
		Stock:       38, Active: true},
	{ProductID: "22", Name: "Potatoes", Category: "Vegetables", Price: 25, Unit: "kg",
		Description: "Fresh potatoes",
		Image:       "https://images.unsplash.com/photo-1518977676601-b53f82aba655?w=500&h=500&fit=crop",
		Stock:       80, Active: true},
	{ProductID: "23", Name: "Onions", Category: "Vegetables", Price: 35, Unit: "kg",
		Description: "Fresh red onions",
		Image:       "https://images.unsplash.com/photo-1587049352851-8d4e89133924?w=500&h=500&fit=crop",
		Stock:       70, Active: true},
	{ProductID: "24", Name: "Cucumbers", Category: "Vegetables", Price: 30, Unit: "kg",
		Description: "Fresh crunchy cucumbers",
		Image:       "https://images.unsplash.com/photo-1589621316382-008455b857cd?w=500&h=500&fit=crop",
		Stock:       45, Active: true},
	{ProductID: "25", Name: "Lettuce", Category: "Vegetables", Price: 50, Unit: "kg",
		Description: "Fresh crispy lettuce",
		Image:       "https://images.unsplash.com/photo-1622206151226-18ca2c9ab4a1?w=500&h=500&fit=crop",
		Stock:       32, Active: true},
	{ProductID: "26", Name: "Green Beans", Category: "Vegetables", Price: 55, Unit: "kg",
		Description: "Fresh green beans",
		Image:       "https://images.unsplash.com/photo-1592921870789-04563d55041c?w=500&h=500&fit=crop",
		Stock:       28, Active: true},
	{ProductID: "27", Name: "Cabbage", Category: "Vegetables", Price: 20, Unit: "kg",
		Description: "Fresh green cabbage",
		Image:       "https://images.unsplash.com/photo-1594282486552-05b4d80fbb9f?w=500&h=500&fit=crop",
		Stock:       42, Active: true},
	{ProductID: "28", Name: "Eggplant", Category: "Vegetables", Price: 45, Unit: "kg",
		Description: "Fresh purple eggplant",
		Image:       "https://images.unsplash.com/photo-1659261200833-ec8761558af7?w=500&h=500&fit=crop",
		Stock:       34, Active: true},
	{ProductID: "29", Name: "Mushrooms", Category: "Vegetables", Price: 120, Unit: "kg",
		Description: "Fresh button mushrooms",
		Image:       "https://images.unsplash.com/photo-1608896820203-1b5c5d9f0d4f?w=500&h=500&fit=crop",
		Stock:       18, Active: true},
	{ProductID: "30", Name: "Sweet Corn", Category: "Vegetables", Price: 40, Unit: "kg",
		Description: "Fresh sweet corn",
		Image:       "https://images.unsplash.com/photo-1551754655-cd27e38d2076?w=500&h=500&fit=crop",
		Stock:       50, Active: true},
}
