package models

// All lists every persisted model, parents before children.
func All() []any {
	return []any{&User{}, &Movie{}, &Review{}, &Rating{}, &Favorite{}}
}
