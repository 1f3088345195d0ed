package contract

// Domain separates product negotiations (phones, laptops) from service
// negotiations (haircuts, repairs). The price extractor applies a different
// plausibility floor per domain.
type Domain string

const (
	DomainProduct Domain = "product"
	DomainService Domain = "service"
)

type Role string

const (
	RoleRequester Role = "requester"
	RoleSeller    Role = "seller"
)

// RoleContext is everything the text-generation collaborator needs to speak
// as one side of an exchange.
type RoleContext struct {
	Name         string `json:"name"`
	Role         Role   `json:"role"`
	SystemPrompt string `json:"system_prompt"`
}

// Query is the parsed form of one incoming request. Built once, never
// mutated afterwards.
type Query struct {
	Raw      string `json:"raw"`
	Domain   Domain `json:"domain"`
	Item     string `json:"item,omitempty"`
	Budget   int    `json:"budget,omitempty"` // 0 means no ceiling mentioned
	Location string `json:"location,omitempty"`
	Delivery string `json:"delivery,omitempty"`
}

type ExchangeStatus string

const (
	ExchangePending    ExchangeStatus = "pending"
	ExchangeInProgress ExchangeStatus = "in_progress"
	ExchangeCompleted  ExchangeStatus = "completed"
	ExchangeFailed     ExchangeStatus = "failed"
)

// ExchangeRecord is one negotiation_log entry. Exactly one record is
// produced per candidate seller, failed or not.
type ExchangeRecord struct {
	Round    int    `json:"round"`
	Customer string `json:"customer,omitempty"`
	Seller   string `json:"seller,omitempty"`
	Summary  string `json:"summary"`
	Error    string `json:"error,omitempty"`
}

// Offer is a priced result derived from exactly one completed exchange.
type Offer struct {
	Agent   string  `json:"agent"`
	Price   float64 `json:"price"`
	Details string  `json:"details"`
}

// Result is the outcome of one negotiation run. RankedOffers is sorted
// ascending by price; BestDeal is nil when no offer was extracted.
type Result struct {
	RankedOffers   []Offer
	NegotiationLog []ExchangeRecord
	AIUsed         string
	BestDeal       *Offer
}
