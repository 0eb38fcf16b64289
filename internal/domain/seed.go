package domain

// Default content used on first run and after a factory reset.

const DefaultWhatsAppNumber = "971506380007"

func SeedMenu() []MenuItem {
	return []MenuItem{
		{
			ID:            "1",
			Category:      "Chef Special",
			DishName:      "Veg Platter",
			Price:         59.99,
			IsVeg:         true,
			Bestseller:    true,
			Description:   "A generous vegetarian platter featuring three types of Paneer Tikka, Veg Seekh Kabab, Soya Chaap Tikka, 2 Butter Naan, and Dal Fry.",
			Ingredients:   []string{"Paneer", "Soya Chaap", "Potatoes", "Onions", "Spices", "Yogurt", "Butter", "Naan", "Dal"},
			CookTime:      1,
			PricingOption: "1",
			PhotoLink:     "https://images.unsplash.com/photo-1603133172100-6fe3e52239b7?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80",
			SpicyLevel:    "Mild",
			ServesHowMany: 2,
		},
		{
			ID:            "2",
			Category:      "Chef Special",
			DishName:      "Non Veg Platter",
			Price:         69.99,
			IsVeg:         false,
			Bestseller:    true,
			Description:   "A hearty non-vegetarian feast with three types of Chicken Tikka, half Tandoori Chicken, Seekh Kabab, 2 Butter Naan, and Dal Fry.",
			Ingredients:   []string{"Chicken", "Seekh Kabab", "Naan", "Dal", "Yogurt", "Spices", "Butter"},
			CookTime:      1,
			PricingOption: "1",
			PhotoLink:     "https://images.unsplash.com/photo-1606755962773-d324e0a13086?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80",
			SpicyLevel:    "Medium",
			ServesHowMany: 2,
		},
	}
}

func SeedAppData() AppData {
	return AppData{
		Offers: []SpecialOffer{
			{ID: "1", Title: "Weekend Biryani Bash", Description: "Get a free dessert with any family-size Biryani order this weekend!", Image: "https://images.unsplash.com/photo-1589302168068-964664d93dc0?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80"},
		},
		Discounts: []Discount{
			{ID: "1", Category: "Grills & Kebabs", Percentage: 20, Type: DiscountHappyHour, StartTime: "17:00", EndTime: "19:00"},
		},
		Events: []Event{
			{ID: "1", Title: "Diwali Gala Dinner", Date: "Nov 12, 2024", Image: "https://images.unsplash.com/photo-1517457373958-b7bdd4587205?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80", Description: "Join us for a festival of lights with a special grand buffet."},
			{ID: "2", Title: "Sufi Night", Date: "Every Friday", Image: "https://images.unsplash.com/photo-1470225620780-dba8ba36b745?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80", Description: "Live Sufi music accompanied by our signature kebabs."},
		},
		Reviews: []Review{
			{ID: "1", Name: "John Doe", Rating: 5, Comment: "Best Butter Chicken in town! The ambiance is lovely.", Date: "2 days ago", Avatar: "https://randomuser.me/api/portraits/men/1.jpg", Source: "google"},
			{ID: "2", Name: "Sarah Lee", Rating: 4, Comment: "Great service and authentic flavors. Highly recommend.", Date: "1 week ago", Avatar: "https://randomuser.me/api/portraits/women/2.jpg", Source: "app"},
		},
		Awards: []Award{
			{ID: "1", Title: "Best Indian Cuisine", Organization: "City Food Awards", Year: "2023"},
			{ID: "2", Title: "Certificate of Excellence", Organization: "TripAdvisor", Year: "2022"},
		},
		Chefs: []Chef{
			{ID: 1, Name: "Sanjeev Kapoor", Role: "Executive Chef", Image: "https://images.unsplash.com/photo-1583394838336-acd977736f90?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&q=80", Bio: "Master of Indian spices with over 20 years of experience."},
			{ID: 2, Name: "Vikas Khanna", Role: "Head of Pastry", Image: "https://images.unsplash.com/photo-1577219491135-ce391730fb2c?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&q=80", Bio: "Award-winning pastry chef known for fusion desserts."},
		},
		Branches: []Branch{
			{ID: 1, Name: "Downtown Branch", Address: "123 Main St, City Centre", Phone: "+1 234 567 890", MapImage: "https://images.unsplash.com/photo-1569336415962-a4bd9f69cd83?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80"},
			{ID: 2, Name: "Westside Branch", Address: "456 West Ave, Business Park", Phone: "+1 987 654 321", MapImage: "https://images.unsplash.com/photo-1524661135-423995f22d0b?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&q=80"},
		},
		IsAiEnabled: true,
	}
}
