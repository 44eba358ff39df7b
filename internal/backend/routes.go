package backend

// Routes holds the backend path segment for each resource. The backend we
// talk to exposes mixed-case segments for categories and borrowings, and a
// different segment for category reads than for category writes; the casing
// is carried here as configuration rather than treated as meaningful.
type Routes struct {
	Books          string `yaml:"books"`
	Authors        string `yaml:"authors"`
	Categories     string `yaml:"categories"`
	CategoriesEdit string `yaml:"categories_edit"`
	Borrowings     string `yaml:"borrowings"`
}

func DefaultRoutes() Routes {
	return Routes{}.withDefaults()
}

func (r Routes) withDefaults() Routes {
	if r.Books == "" {
		r.Books = "books"
	}
	if r.Authors == "" {
		r.Authors = "authors"
	}
	if r.Categories == "" {
		r.Categories = "bookcategories"
	}
	if r.CategoriesEdit == "" {
		r.CategoriesEdit = "BookCategory"
	}
	if r.Borrowings == "" {
		r.Borrowings = "BookBorrowing"
	}
	return r
}
