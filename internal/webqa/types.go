package webqa

type SearchInput struct {
	Query string
}

// SearchOutput is an answer grounded in live search results.
// Source is the URL of the first result, or nil when there were no
// results or the first one had no URL.
type SearchOutput struct {
	Query    string
	Response string
	Source   *string
}
