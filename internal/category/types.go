package category

// Label is one spending category.
type Label string

const LabelOther Label = "Other"

// Labels is the closed vocabulary a description is classified into.
var Labels = []Label{
	"Food", "Transport", "Groceries", "Entertainment", "Utilities", "Shopping",
	"Health", "Education", "Travel", "Bills", "Subscriptions", "Gifts",
	"Insurance", "Rent", "Salary", "Investment", "Charity", "Pets", "Kids",
	"Personal Care", "Beauty", "Clothing", "Recharge", "Petrol", "Home Items",
	"Stationary", "Phone Accessory", "Laptop and Computer Accessory", LabelOther,
}

var labelSet = func() map[Label]struct{} {
	set := make(map[Label]struct{}, len(Labels))
	for _, l := range Labels {
		set[l] = struct{}{}
	}
	return set
}()

// IsValid reports whether l belongs to the vocabulary. Matching is exact.
func (l Label) IsValid() bool {
	_, ok := labelSet[l]
	return ok
}

// LabelStrings returns the vocabulary as candidate labels for the classifier.
func LabelStrings() []string {
	out := make([]string, len(Labels))
	for i, l := range Labels {
		out[i] = string(l)
	}
	return out
}

// --- UseCase Inputs ---

type ClassifyInput struct {
	Description string
}

// --- UseCase Outputs ---

type ClassifyOutput struct {
	Category Label
	Score    float64
	Cached   bool
}

// ClassifiedEvent is the audit record published for every classification.
type ClassifiedEvent struct {
	Description string  `json:"description"`
	Category    Label   `json:"category"`
	Score       float64 `json:"score"`
}

const EventTypeClassified = "category.classified"
