package models

type CategoryCount struct {
	Slug  string `json:"slug"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type TagCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
