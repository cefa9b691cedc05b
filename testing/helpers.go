// Package testing provides test utilities for blueprint.
package testing

import (
	"github.com/zoobzio/blueprint"
)

// Author is a nested fixture type for association rendering.
type Author struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Post is the primary fixture type.
type Post struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	Draft  bool   `json:"draft"`
	Author *Author
	Tags   []string
}

// Upcased returns the title upcased the lazy way; exercises method extraction.
func (p Post) Upcased() string {
	out := []rune(p.Title)
	for i, r := range out {
		if r >= 'a' && r <= 'z' {
			out[i] = r - 32
		}
	}
	return string(out)
}

// PostPage is a container fixture implementing blueprint.Collection.
type PostPage struct {
	Posts []Post
}

// RenderItems implements blueprint.Collection.
func (p PostPage) RenderItems() []any {
	items := make([]any, len(p.Posts))
	for i, post := range p.Posts {
		items[i] = post
	}
	return items
}

// AuthorView returns a view over Author.
func AuthorView() *blueprint.View {
	return blueprint.NewView("author").
		Attribute("id", "ID").
		Attribute("name", "Name")
}

// PostViews returns a view collection with "default" and "extended" views
// over Post.
func PostViews() *blueprint.ViewCollection {
	return blueprint.NewViewCollection(
		blueprint.NewView("default").
			Attribute("id", "ID").
			Attribute("title", "Title"),
		blueprint.NewView("extended").
			Attribute("id", "ID").
			Attribute("title", "Title").
			Attribute("body", "Body").
			Association("author", "Author", AuthorView(), blueprint.ExcludeIfNil()),
	)
}

// SamplePost returns a populated fixture post.
func SamplePost() Post {
	return Post{
		ID:     1,
		Title:  "hello world",
		Body:   "first!",
		Author: &Author{ID: "a1", Name: "Alice"},
		Tags:   []string{"intro", "meta"},
	}
}
