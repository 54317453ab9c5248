package usecase

const documentSeparator = "\n\n"

const answerPrompt = `You are a helpful assistant. Answer the user's query using only the documents below.
If the documents do not contain the answer, say clearly that you do not have enough information.

Documents:
%s

User Query: %s

Answer:`
