package category

type ListCategoriesResponse struct {
	Success         bool            `json:"success"`
	Categories      map[uint]string `json:"categories"`
	TotalCategories int             `json:"total_categories"`
}

// ToMap indexes categories by id, the shape every listing endpoint reports.
func ToMap(categories []*Category) map[uint]string {
	m := make(map[uint]string, len(categories))
	for _, c := range categories {
		m[c.ID] = c.Type
	}
	return m
}
