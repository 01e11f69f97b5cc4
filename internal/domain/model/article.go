package model

// Article represents a recent news entry pulled from a syndication feed.
type Article struct {
	Title   string
	Link    string
	Summary string
}
