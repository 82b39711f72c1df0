package domain

// services is the firm's fixed service catalog
var services = []string{
	"Tax Preparation",
	"Bookkeeping",
	"Financial Planning",
	"Business Consulting",
	"Audit Services",
	"Payroll Services",
	"Other",
}

// Services returns the ordered service catalog
func Services() []string {
	out := make([]string, len(services))
	copy(out, services)
	return out
}

// IsValidService returns true if the value is one of the catalog entries
func IsValidService(s string) bool {
	for _, v := range services {
		if v == s {
			return true
		}
	}
	return false
}
