package catalog

import (
	contractx "github.com/tanpawarit/Bazaar-AI-Marketplace-Negotiation/agent/contract"
	promptx "github.com/tanpawarit/Bazaar-AI-Marketplace-Negotiation/agent/prompt"
)

const customerAgentName = "USCustomerAgent"

// Seller agent names. The classifier rule table and the storefront hub both
// reference these.
const (
	AgentWalmart    = "WalmartNYC"
	AgentTarget     = "TargetLA"
	AgentBestBuy    = "BestBuyChicago"
	AgentUlta       = "UltaBeautyNYC"
	AgentUBreakiFix = "uBreakiFixChicago"
)

// Product is one retail inventory line.
type Product struct {
	Model           string            `json:"model"`
	Brand           string            `json:"brand"`
	BasePrice       float64           `json:"base_price"`
	Stock           int               `json:"stock"`
	Specs           map[string]string `json:"specs"`
	DeliveryOptions []string          `json:"delivery_options"`
}

// Store is a retail storefront with inventory and discount rules.
type Store struct {
	ID        string             `json:"store_id"`
	Name      string             `json:"name"`
	Location  string             `json:"location"`
	Inventory []Product          `json:"inventory"`
	Perks     []string           `json:"perks"`
	Rules     map[string]float64 `json:"rules"`
}

// ServiceOffering is one bookable service with time slots.
type ServiceOffering struct {
	Type           string   `json:"service_type"`
	BasePrice      float64  `json:"base_price"`
	Duration       string   `json:"duration"`
	AvailableSlots []string `json:"available_slots"`
}

// Provider is a service business (salon, repair shop).
type Provider struct {
	ID       string             `json:"service_id"`
	Name     string             `json:"name"`
	Location string             `json:"location"`
	Services []ServiceOffering  `json:"services"`
	Perks    []string           `json:"perks"`
	Rules    map[string]float64 `json:"rules"`
}

func sellerDescriptors(prompts promptx.PromptSet) []Descriptor {
	return []Descriptor{
		{
			Name:         AgentWalmart,
			Role:         contractx.RoleSeller,
			Domain:       contractx.DomainProduct,
			Location:     "New York",
			FloorPrice:   949,
			SystemPrompt: prompts.Walmart,
		},
		{
			Name:         AgentTarget,
			Role:         contractx.RoleSeller,
			Domain:       contractx.DomainProduct,
			Location:     "Los Angeles",
			FloorPrice:   930,
			SystemPrompt: prompts.Target,
		},
		{
			Name:         AgentBestBuy,
			Role:         contractx.RoleSeller,
			Domain:       contractx.DomainProduct,
			Location:     "Chicago",
			FloorPrice:   899,
			SystemPrompt: prompts.BestBuy,
		},
		{
			Name:         AgentUlta,
			Role:         contractx.RoleSeller,
			Domain:       contractx.DomainService,
			Location:     "New York",
			FloorPrice:   55,
			SystemPrompt: prompts.Ulta,
		},
		{
			Name:         AgentUBreakiFix,
			Role:         contractx.RoleSeller,
			Domain:       contractx.DomainService,
			Location:     "Chicago",
			FloorPrice:   179,
			SystemPrompt: prompts.UBreakiFix,
		},
	}
}

func staticStores() []Store {
	return []Store{
		{
			ID:       "store_1",
			Name:     "Walmart Electronics",
			Location: "New York",
			Inventory: []Product{
				{
					Model:           "iPhone 15 Pro",
					Brand:           "Apple",
					BasePrice:       999.00,
					Stock:           15,
					Specs:           map[string]string{"screen": "6.1 inch", "storage": "256GB", "camera": "48MP"},
					DeliveryOptions: []string{"2-day shipping", "pickup today", "same-day urban"},
				},
				{
					Model:           "Galaxy S24 Ultra",
					Brand:           "Samsung",
					BasePrice:       1199.00,
					Stock:           10,
					Specs:           map[string]string{"screen": "6.8 inch", "storage": "512GB", "camera": "200MP"},
					DeliveryOptions: []string{"2-day shipping", "pickup today"},
				},
			},
			Perks: []string{"Walmart+ FREE", "Price match"},
			Rules: map[string]float64{"max_discount": 5, "pickup_discount": 30, "walmart_plus": 34},
		},
		{
			ID:       "store_2",
			Name:     "Target Mobile",
			Location: "Los Angeles",
			Inventory: []Product{
				{
					Model:           "iPhone 15 Pro",
					Brand:           "Apple",
					BasePrice:       979.00,
					Stock:           12,
					Specs:           map[string]string{"screen": "6.1 inch", "storage": "256GB", "camera": "48MP"},
					DeliveryOptions: []string{"2-day shipping", "same-day urban", "pickup today"},
				},
				{
					Model:           "Pixel 8 Pro",
					Brand:           "Google",
					BasePrice:       899.00,
					Stock:           20,
					Specs:           map[string]string{"screen": "6.7 inch", "storage": "256GB", "camera": "50MP"},
					DeliveryOptions: []string{"2-day shipping", "pickup today"},
				},
			},
			Perks: []string{"RedCard 5% off", "Free returns"},
			Rules: map[string]float64{"redcard_discount": 5, "floor": 930},
		},
		{
			ID:       "store_3",
			Name:     "Best Buy",
			Location: "Chicago",
			Inventory: []Product{
				{
					Model:           "iPhone 15 Pro",
					Brand:           "Apple",
					BasePrice:       949.00,
					Stock:           25,
					Specs:           map[string]string{"screen": "6.1 inch", "storage": "256GB", "camera": "48MP"},
					DeliveryOptions: []string{"pickup today", "2-day shipping", "same-day urban"},
				},
				{
					Model:           "MacBook Pro 14",
					Brand:           "Apple",
					BasePrice:       1299.00,
					Stock:           8,
					Specs:           map[string]string{"screen": "14 inch", "storage": "512GB", "chip": "M3"},
					DeliveryOptions: []string{"pickup today", "2-day shipping"},
				},
			},
			Perks: []string{"Geek Squad", "Student discount", "Price match"},
			Rules: map[string]float64{"student_discount": 50, "pickup_discount": 50, "floor": 899},
		},
	}
}

func staticProviders() []Provider {
	return []Provider{
		{
			ID:       "salon_1",
			Name:     "Ulta Beauty",
			Location: "New York",
			Services: []ServiceOffering{
				{
					Type:           "haircut",
					BasePrice:      65.00,
					Duration:       "45 min",
					AvailableSlots: []string{"5PM", "6PM", "7PM"},
				},
			},
			Perks: []string{"First-time discount", "Loyalty"},
			Rules: map[string]float64{"first_time": 10, "cash_discount": 9, "floor": 55},
		},
		{
			ID:       "salon_2",
			Name:     "Great Clips",
			Location: "Los Angeles",
			Services: []ServiceOffering{
				{
					Type:           "haircut",
					BasePrice:      45.00,
					Duration:       "30 min",
					AvailableSlots: []string{"4PM", "5:30PM", "6:30PM"},
				},
			},
			Perks: []string{"Walk-ins", "Cash discount"},
			Rules: map[string]float64{"cash_discount": 9, "floor": 40},
		},
		{
			ID:       "repair_1",
			Name:     "uBreakiFix",
			Location: "Chicago",
			Services: []ServiceOffering{
				{
					Type:           "screen_repair",
					BasePrice:      199.00,
					Duration:       "2 hours",
					AvailableSlots: []string{"10AM", "12PM", "2PM", "4PM"},
				},
			},
			Perks: []string{"Same-day", "90-day warranty"},
			Rules: map[string]float64{"same_day_discount": 20, "floor": 179},
		},
	}
}
