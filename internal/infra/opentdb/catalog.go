package opentdb

// categoryIDs maps quiz category slugs to Open Trivia DB numeric category ids.
var categoryIDs = map[string]string{
	"science":       "17",
	"computers":     "18",
	"mathematics":   "19",
	"mythology":     "20",
	"sports":        "21",
	"geography":     "22",
	"history":       "23",
	"politics":      "24",
	"art":           "25",
	"celebrities":   "26",
	"animals":       "27",
	"vehicles":      "28",
	"entertainment": "11",
	"music":         "12",
	"film":          "11",
	"television":    "14",
	"books":         "10",
	"nature":        "17",
}

// programmingCategories are served from the built-in programming bank and
// never forwarded to the trivia API.
var programmingCategories = map[string]bool{
	"react":       true,
	"javascript":  true,
	"html":        true,
	"css":         true,
	"java":        true,
	"python":      true,
	"nodejs":      true,
	"webdev":      true,
	"programming": true,
}

// CategoryID resolves a category slug to its API id. Unknown slugs and "any"
// report false so the query stays unfiltered.
func CategoryID(category string) (string, bool) {
	id, ok := categoryIDs[category]
	return id, ok
}

// IsProgrammingCategory reports whether the category is served locally from
// the programming bank.
func IsProgrammingCategory(category string) bool {
	return programmingCategories[category]
}

// Category is a selectable quiz category.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Difficulty is a selectable difficulty level.
type Difficulty struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Categories lists the selectable categories in menu order.
func Categories() []Category {
	return []Category{
		{ID: "any", Name: "Any Category"},
		{ID: "science", Name: "Science"},
		{ID: "computers", Name: "Computers"},
		{ID: "mathematics", Name: "Mathematics"},
		{ID: "mythology", Name: "Mythology"},
		{ID: "sports", Name: "Sports"},
		{ID: "geography", Name: "Geography"},
		{ID: "history", Name: "History"},
		{ID: "politics", Name: "Politics"},
		{ID: "art", Name: "Art"},
		{ID: "celebrities", Name: "Celebrities"},
		{ID: "animals", Name: "Animals"},
		{ID: "vehicles", Name: "Vehicles"},
		{ID: "entertainment", Name: "Entertainment"},
		{ID: "music", Name: "Music"},
		{ID: "film", Name: "Film"},
		{ID: "television", Name: "Television"},
		{ID: "books", Name: "Books"},
		{ID: "nature", Name: "Nature"},
		{ID: "react", Name: "React"},
		{ID: "javascript", Name: "JavaScript"},
		{ID: "html", Name: "HTML"},
		{ID: "css", Name: "CSS"},
		{ID: "java", Name: "Java"},
		{ID: "python", Name: "Python"},
		{ID: "nodejs", Name: "Node.js"},
		{ID: "webdev", Name: "Web Development"},
		{ID: "programming", Name: "Programming (Mixed)"},
	}
}

// Difficulties lists the selectable difficulty levels.
func Difficulties() []Difficulty {
	return []Difficulty{
		{ID: "easy", Name: "Easy", Description: "Perfect for beginners"},
		{ID: "medium", Name: "Medium", Description: "Moderate challenge"},
		{ID: "hard", Name: "Hard", Description: "Expert level"},
		{ID: "any", Name: "Mixed", Description: "All difficulty levels"},
	}
}
