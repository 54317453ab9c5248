package usecase

const summaryPrompt = `You are an expert summarizer. Write a concise and accurate summary of the document below.

Document:
%s

Summary:`

const keywordsPrompt = `Extract the most important keywords from the document below.
Return them as a single comma-separated list and nothing else.

Document:
%s

Keywords:`
