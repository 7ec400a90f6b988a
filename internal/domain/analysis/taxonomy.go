package analysis

// RiskCategory is one entry of the static risk taxonomy: a short id, the
// human-readable name/description shown to users, the scoring weight and the
// keyword list used by the keyword classifier. Loaded once, read-only.
type RiskCategory struct {
	ID          string
	Name        string
	Description string
	Weight      int
	Keywords    []string
}

// riskCategories is the fixed catalog. Weights currently sum to 100 but that
// is not an invariant the scorer relies on.
var riskCategories = []RiskCategory{
	{
		ID:          "data_sharing",
		Name:        "Data Sharing with Third Parties",
		Description: "Your personal data may be shared with external companies",
		Weight:      20,
		Keywords:    []string{"share", "third party", "partner", "affiliate", "vendor", "service provider"},
	},
	{
		ID:          "arbitration",
		Name:        "Mandatory Arbitration",
		Description: "You cannot sue the company in court, only through arbitration",
		Weight:      25,
		Keywords:    []string{"arbitration", "binding arbitration", "dispute resolution", "no class action", "waive"},
	},
	{
		ID:          "auto_renewal",
		Name:        "Automatic Subscription Renewal",
		Description: "Your subscription will automatically renew and charge you",
		Weight:      15,
		Keywords:    []string{"auto-renew", "automatic renewal", "recurring", "subscription", "billing cycle"},
	},
	{
		ID:          "no_liability",
		Name:        "Limited Company Liability",
		Description: "Company limits or excludes their liability for damages",
		Weight:      15,
		Keywords:    []string{"no liability", "disclaim", "not liable", "exclude liability", "limitation of damages"},
	},
	{
		ID:          "tracking",
		Name:        "Extensive Tracking & Advertising",
		Description: "Comprehensive tracking of your behavior for advertising",
		Weight:      10,
		Keywords:    []string{"cookies", "tracking", "analytics", "advertising", "behavioral", "personalized ads"},
	},
	{
		ID:          "content_rights",
		Name:        "Content Rights and Ownership",
		Description: "Company claims rights to content you create or upload",
		Weight:      10,
		Keywords:    []string{"intellectual property", "license", "content ownership", "user content", "grant rights"},
	},
	{
		ID:          "account_termination",
		Name:        "Account Termination Rights",
		Description: "Company can terminate your account without notice",
		Weight:      5,
		Keywords:    []string{"terminate", "suspend", "disable account", "at our discretion", "without notice"},
	},
}

var categoryIndex = func() map[string]RiskCategory {
	idx := make(map[string]RiskCategory, len(riskCategories))
	for _, c := range riskCategories {
		idx[c.ID] = c
	}
	return idx
}()

// Categories returns the full taxonomy in its declared order.
func Categories() []RiskCategory {
	return riskCategories
}

// LookupCategory returns the category for an already-normalized id.
func LookupCategory(id string) (RiskCategory, bool) {
	c, ok := categoryIndex[id]
	return c, ok
}
