package models

// Category is a topic label produced by the classifier and used to route
// intent retrieval and fallback selection.
type Category string

const (
	CategoryPhishing         Category = "phishing"
	CategoryPasswords        Category = "passwords"
	CategoryMalware          Category = "malware"
	CategoryNetworks         Category = "networks"
	CategoryIncidentResponse Category = "incident_response"
	CategoryGeneral          Category = "general"
)

// KnownCategories lists the labels the shipped classifier was trained on plus general.
var KnownCategories = []Category{
	CategoryPhishing,
	CategoryPasswords,
	CategoryMalware,
	CategoryNetworks,
	CategoryIncidentResponse,
	CategoryGeneral,
}

func (c Category) String() string {
	return string(c)
}

// IsKnown reports whether c is one of KnownCategories.
func (c Category) IsKnown() bool {
	for _, known := range KnownCategories {
		if c == known {
			return true
		}
	}
	return false
}
