package seed

import "orgsynth/internal/platform/sampler"

// Static name and attribute pools for generated employees. Named
// individuals never draw from these; their attributes are pinned in the
// profile table.

var firstNames = []string{
	"Aaron", "Alice", "Andre", "Angela", "Ben", "Bianca", "Carlos", "Carmen",
	"Chris", "Claire", "Daniel", "Deepa", "Derek", "Elena", "Eric", "Fatima",
	"Gavin", "Grace", "Hannah", "Hector", "Imani", "Ivan", "Jasmine", "Jorge",
	"Julia", "Kevin", "Laura", "Leo", "Maya", "Miguel", "Nadia", "Nathan",
	"Nina", "Oliver", "Paulo", "Rachel", "Rohan", "Sofia", "Trevor", "Wei",
	"Yusuf", "Zoe",
}

var lastNames = []string{
	"Adams", "Ali", "Anderson", "Baker", "Bennett", "Brooks", "Campbell",
	"Castillo", "Clark", "Collins", "Cruz", "Daniels", "Edwards", "Evans",
	"Flores", "Gray", "Green", "Hayes", "Henderson", "Howard", "Hughes",
	"Iyer", "James", "Kaur", "Kelly", "Lee", "Lopez", "Mitchell", "Morgan",
	"Murphy", "Nguyen", "Ortiz", "Park", "Peterson", "Price", "Reed",
	"Rivera", "Ross", "Sanders", "Singh", "Torres", "Ward", "Watson", "Young",
}

var genderChoices = []sampler.WeightedChoice{
	{Value: "female", Weight: 48},
	{Value: "male", Weight: 48},
	{Value: "nonbinary", Weight: 2},
	{Value: "undisclosed", Weight: 2},
}

var ethnicityChoices = []sampler.WeightedChoice{
	{Value: "white", Weight: 52},
	{Value: "asian", Weight: 16},
	{Value: "hispanic", Weight: 14},
	{Value: "black", Weight: 12},
	{Value: "two or more", Weight: 4},
	{Value: "undisclosed", Weight: 2},
}

var workStateChoices = []sampler.WeightedChoice{
	{Value: "CA", Weight: 24},
	{Value: "NY", Weight: 15},
	{Value: "TX", Weight: 12},
	{Value: "WA", Weight: 10},
	{Value: "IL", Weight: 8},
	{Value: "CO", Weight: 8},
	{Value: "GA", Weight: 7},
	{Value: "AZ", Weight: 6},
	{Value: "OR", Weight: 5},
	{Value: "NC", Weight: 5},
}

var terminationReasons = []string{
	"voluntary", "involuntary", "position eliminated", "end of contract",
}

var contributorTitles = map[string][]string{
	"Engineering": {
		"Software Engineer", "Senior Software Engineer", "Site Reliability Engineer",
		"QA Engineer", "Data Engineer",
	},
	"Sales": {
		"Account Executive", "Sales Development Representative", "Solutions Consultant",
	},
	"Marketing": {
		"Marketing Specialist", "Content Strategist", "Demand Generation Specialist",
	},
	"Customer Success": {
		"Customer Success Associate", "Support Specialist", "Onboarding Specialist",
	},
	"Finance": {
		"Financial Analyst", "Staff Accountant", "Payroll Specialist",
	},
	"People Operations": {
		"Recruiter", "People Operations Specialist", "HR Generalist",
	},
}

var defaultContributorTitles = []string{"Specialist", "Senior Specialist", "Analyst"}

func contributorTitlesFor(department string) []string {
	if titles, ok := contributorTitles[department]; ok {
		return titles
	}
	return defaultContributorTitles
}

func headTitleFor(department string) string {
	return "VP of " + department
}

func managerTitleFor(department string) string {
	return department + " Manager"
}
