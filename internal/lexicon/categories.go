package lexicon

// Product categories
const (
	CategoryHealth   = "health"
	CategoryFood     = "food"
	CategoryTech     = "tech"
	CategoryFashion  = "fashion"
	CategoryBusiness = "business"
)

// Categories lists every category with its triggers. The slice order is the
// priority order used for subtext and hashtags. It comes from the order the
// checks were historically written in and carries no meaning beyond keeping
// output stable.
var Categories = []KeywordSet{
	{ID: CategoryHealth, Triggers: []string{"health", "fitness"}},
	{ID: CategoryFood, Triggers: []string{"food", "recipe"}},
	{ID: CategoryTech, Triggers: []string{"tech", "app"}},
	{ID: CategoryFashion, Triggers: []string{"fashion", "apparel", "clothing"}},
	{ID: CategoryBusiness, Triggers: []string{"business", "productivity"}},
}

// CategoryLabels are the display names served by the meta endpoints.
var CategoryLabels = map[string]string{
	CategoryHealth:   "Health & Fitness",
	CategoryFood:     "Food & Cooking",
	CategoryTech:     "Technology",
	CategoryFashion:  "Fashion",
	CategoryBusiness: "Business",
}

var categoryHashtags = map[string][]string{
	CategoryHealth:   {"#wellness", "#healthylifestyle", "#fitness"},
	CategoryFood:     {"#foodie", "#delicious", "#tasty"},
	CategoryTech:     {"#innovation", "#technology", "#digital"},
	CategoryFashion:  {"#style", "#fashion", "#trendy"},
	CategoryBusiness: {"#productivity", "#success", "#professional"},
}

// CategoryHashtags returns the industry hashtags for a category, nil if unknown.
func CategoryHashtags(category string) []string {
	return categoryHashtags[category]
}

type subtextPair struct {
	playful string
	plain   string
}

// Only these categories carry their own subtext, checked in this order.
var subtextOrder = []string{CategoryHealth, CategoryFood, CategoryTech}

var subtexts = map[string]subtextPair{
	CategoryHealth: {playful: "Your wellness journey starts here! 💪", plain: "Transform your health today"},
	CategoryFood:   {playful: "Taste the difference! 😋", plain: "Premium quality you can taste"},
	CategoryTech:   {playful: "Innovation made simple! 📱", plain: "Technology that works for you"},
}

var genericSubtext = subtextPair{
	playful: "You're going to love this! ✨",
	plain:   "Quality that speaks for itself",
}

// SubtextCategories returns the categories that have subtext phrasing, in priority order.
func SubtextCategories() []string {
	return subtextOrder
}

// Subtext returns the phrasing for category. Unknown categories get the generic
// phrase and ok=false.
func Subtext(category string, playful bool) (text string, ok bool) {
	p, ok := subtexts[category]
	if !ok {
		p = genericSubtext
	}
	if playful {
		return p.playful, ok
	}
	return p.plain, ok
}
