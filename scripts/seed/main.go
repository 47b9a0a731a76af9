// Seeds the service catalog. Drops all existing services and inserts the
// default catalog, so run it against a fresh database or when the catalog
// should be reset.
//
//	go run ./scripts/seed
package main

import (
	"servease/config"
	"servease/database"
	serviceRepo "servease/database/repository/service"
	"servease/models"
	"servease/services/catalog"
	"servease/utils"
)

var initialServices = []models.Service{
	// Cleaning
	{Category: "Cleaning", Name: "Full House Cleaning", Description: "Complete house cleaning including all rooms, kitchen, and bathrooms", BasePrice: 999, Duration: 120, Icon: "🧹"},
	{Category: "Cleaning", Name: "Deep Cleaning", Description: "Intensive deep cleaning with carpet shampooing and upholstery cleaning", BasePrice: 1499, Duration: 180, Icon: "✨"},
	{Category: "Cleaning", Name: "Kitchen Cleaning", Description: "Complete kitchen cleaning including appliances, cabinets, and surfaces", BasePrice: 599, Duration: 90, Icon: "🍳"},

	// Plumbing
	{Category: "Plumbing", Name: "Tap Repair", Description: "Fix leaking or damaged taps and faucets", BasePrice: 299, Duration: 45, Icon: "🚰"},
	{Category: "Plumbing", Name: "Drain Cleaning", Description: "Clear blocked drains and pipes", BasePrice: 499, Duration: 60, Icon: "🔧"},
	{Category: "Plumbing", Name: "Bathroom Plumbing", Description: "Complete bathroom plumbing solutions including toilet and shower", BasePrice: 799, Duration: 120, Icon: "🚿"},

	// Electrician
	{Category: "Electrician", Name: "Wiring & Installation", Description: "Electrical wiring, switch, and socket installation", BasePrice: 699, Duration: 90, Icon: "💡"},
	{Category: "Electrician", Name: "Fan Installation", Description: "Ceiling fan installation and repair", BasePrice: 399, Duration: 60, Icon: "🌀"},
	{Category: "Electrician", Name: "Light Fixture Repair", Description: "Repair and installation of light fixtures", BasePrice: 349, Duration: 45, Icon: "🔦"},

	// Cooking
	{Category: "Cooking", Name: "Daily Meal Cooking", Description: "Professional cook for daily meals", BasePrice: 499, Duration: 120, Icon: "👨‍🍳"},
	{Category: "Cooking", Name: "Party Catering", Description: "Cooking service for parties and events", BasePrice: 1999, Duration: 240, Icon: "🎉"},
	{Category: "Cooking", Name: "Tiffin Service", Description: "Healthy home-cooked tiffin service delivered daily", BasePrice: 899, Duration: 90, Icon: "🍱"},

	// Gardening
	{Category: "Gardening", Name: "Lawn Mowing", Description: "Professional lawn mowing and maintenance", BasePrice: 599, Duration: 90, Icon: "🌱"},
	{Category: "Gardening", Name: "Plant Care", Description: "Plant watering, pruning, and general care", BasePrice: 399, Duration: 60, Icon: "🌿"},
	{Category: "Gardening", Name: "Garden Landscaping", Description: "Complete garden design and landscaping service", BasePrice: 2499, Duration: 360, Icon: "🌳"},

	// Painting
	{Category: "Painting", Name: "Room Painting", Description: "Interior room painting with premium quality paint", BasePrice: 2999, Duration: 480, Icon: "🎨"},
	{Category: "Painting", Name: "Wall Touch-up", Description: "Minor wall repairs and touch-up painting", BasePrice: 799, Duration: 120, Icon: "🖌️"},
	{Category: "Painting", Name: "Exterior Painting", Description: "Weather-resistant exterior wall painting", BasePrice: 3999, Duration: 600, Icon: "🏠"},

	// Carpentry
	{Category: "Carpentry", Name: "Furniture Repair", Description: "Repair and restoration of wooden furniture", BasePrice: 599, Duration: 90, Icon: "🪚"},
	{Category: "Carpentry", Name: "Door & Window Repair", Description: "Repair and installation of doors and windows", BasePrice: 899, Duration: 120, Icon: "🚪"},
	{Category: "Carpentry", Name: "Custom Furniture Making", Description: "Custom wooden furniture design and creation", BasePrice: 4999, Duration: 480, Icon: "🛋️"},

	// AC Repair
	{Category: "AC Repair", Name: "AC Service", Description: "Complete AC servicing and maintenance", BasePrice: 799, Duration: 90, Icon: "❄️"},
	{Category: "AC Repair", Name: "AC Installation", Description: "New AC installation service", BasePrice: 1499, Duration: 150, Icon: "🌡️"},
	{Category: "AC Repair", Name: "AC Gas Refill", Description: "AC gas refilling and cooling optimization", BasePrice: 699, Duration: 60, Icon: "💨"},

	// Pest Control
	{Category: "Pest Control", Name: "General Pest Control", Description: "Complete pest control for common household pests", BasePrice: 999, Duration: 120, Icon: "🐛"},
	{Category: "Pest Control", Name: "Termite Treatment", Description: "Professional termite inspection and treatment", BasePrice: 1999, Duration: 180, Icon: "🪲"},
	{Category: "Pest Control", Name: "Cockroach Control", Description: "Specialized cockroach elimination service", BasePrice: 1, Duration: 90, Icon: "🪳"},

	// Appliance Repair
	{Category: "Appliance Repair", Name: "Washing Machine Repair", Description: "Repair all types of washing machines", BasePrice: 599, Duration: 90, Icon: "🧺"},
	{Category: "Appliance Repair", Name: "Refrigerator Repair", Description: "Complete refrigerator repair and maintenance", BasePrice: 799, Duration: 120, Icon: "🧊"},
	{Category: "Appliance Repair", Name: "Microwave Repair", Description: "Expert microwave oven repair service", BasePrice: 499, Duration: 60, Icon: "📱"},
}

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	catalogSvc := &catalog.DefaultCatalogService{Repo: serviceRepo.NewMongoServiceRepo()}
	if err := catalogSvc.ReplaceAll(initialServices); err != nil {
		logger.Sugar().Fatalf("seed: failed to initialize services: %v", err)
	}

	logger.Sugar().Infof("seed: %d services initialized", len(initialServices))
}
