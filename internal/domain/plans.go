package domain

// Currency is the only currency orders are created in.
const Currency = "INR"

// PlanName identifies a pricing tier. The set of names is closed.
type PlanName string

const (
	PlanStarter PlanName = "Starter"
	PlanGrowth  PlanName = "Growth"
	PlanPro     PlanName = "Pro"
)

// Plan is a pricing tier with a server-authoritative price.
type Plan struct {
	Name        PlanName `json:"name"`
	PriceINR    int64    `json:"priceInr"` // whole rupees
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Highlighted bool     `json:"highlighted"`
}

// AmountPaise returns the price in minor units, as the gateway expects it.
func (p Plan) AmountPaise() int64 {
	return p.PriceINR * 100
}

// Catalog is an immutable, ordered set of plans keyed by exact name.
type Catalog struct {
	plans map[PlanName]Plan
	order []PlanName
}

// NewCatalog builds a catalog. Later duplicates replace earlier ones.
func NewCatalog(plans ...Plan) *Catalog {
	c := &Catalog{plans: make(map[PlanName]Plan, len(plans))}
	for _, p := range plans {
		if _, exists := c.plans[p.Name]; !exists {
			c.order = append(c.order, p.Name)
		}
		p.Features = append([]string(nil), p.Features...)
		c.plans[p.Name] = p
	}
	return c
}

// DefaultCatalog returns the plans offered on the site.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		Plan{
			Name:        PlanStarter,
			PriceINR:    1999,
			Description: "Perfect for students & personal portfolios.",
			Features: []string{
				"1-page responsive website",
				"Basic animations",
				"Contact form",
				"3-day delivery",
				"1 revision",
			},
		},
		Plan{
			Name:        PlanGrowth,
			PriceINR:    3499,
			Description: "Ideal for freelancers & professionals.",
			Features: []string{
				"Up to 3 pages",
				"Modern UI design",
				"Smooth animations",
				"Contact form",
				"Social media links",
				"Basic SEO setup",
				"5-day delivery",
				"2 revisions",
			},
			Highlighted: true,
		},
		Plan{
			Name:        PlanPro,
			PriceINR:    5999,
			Description: "Best for small businesses.",
			Features: []string{
				"Up to 5 pages",
				"Premium layout",
				"Advanced animations",
				"WhatsApp integration",
				"Basic SEO",
				"Performance optimization",
				"7-day delivery",
				"3 revisions",
			},
		},
	)
}

// Lookup finds a plan by exact, case-sensitive name.
func (c *Catalog) Lookup(name string) (Plan, bool) {
	p, ok := c.plans[PlanName(name)]
	if !ok || p.PriceINR <= 0 {
		return Plan{}, false
	}
	return p, true
}

// List returns the plans in catalog order.
func (c *Catalog) List() []Plan {
	out := make([]Plan, 0, len(c.order))
	for _, name := range c.order {
		p := c.plans[name]
		p.Features = append([]string(nil), p.Features...)
		out = append(out, p)
	}
	return out
}

// PlanResponse is the public view of a plan served by GET /api/plans.
type PlanResponse struct {
	Plan
	Amount   int64  `json:"amount"` // paise
	Currency string `json:"currency"`
}
