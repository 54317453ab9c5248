package usecase

const (
	noResultsContext = "No relevant search results found."
	missingField     = "N/A"
	resultSeparator  = "\n\n"
)

const answerPrompt = `You are an assistant that answers questions using internet search results.
Use the search results below to answer the user's query.
If they do not contain enough information, say that you cannot find a definitive answer.

Search Results:
%s

User Query: %s

Answer:`
