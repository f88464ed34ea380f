package handler

import "net/http"

// SiteHandler serves static site configuration: the consultancy's service
// catalog and the budget ranges offered on the contact form.
type SiteHandler struct{}

// NewSiteHandler creates a SiteHandler.
func NewSiteHandler() *SiteHandler {
	return &SiteHandler{}
}

// serviceCatalog lists the services a contact submission can express
// interest in. "Other" is a free-text escape hatch on the form.
var serviceCatalog = []string{
	"Web Development",
	"Cybersecurity Services",
	"UI/UX Design",
	"Mobile App Development",
	"Cloud Solutions",
	"Consulting Services",
	"Other",
}

// budgetRange pairs the stored value with its display label.
type budgetRange struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var budgetRanges = []budgetRange{
	{Value: "under-10k", Label: "Under $10,000"},
	{Value: "10k-25k", Label: "$10,000 - $25,000"},
	{Value: "25k-50k", Label: "$25,000 - $50,000"},
	{Value: "50k-100k", Label: "$50,000 - $100,000"},
	{Value: "over-100k", Label: "Over $100,000"},
}

type servicesResponse struct {
	Services     []string      `json:"services"`
	BudgetRanges []budgetRange `json:"budget_ranges"`
}

// Services handles GET /api/services.
func (h *SiteHandler) Services(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, servicesResponse{
		Services:     serviceCatalog,
		BudgetRanges: budgetRanges,
	})
}
