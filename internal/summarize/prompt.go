// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"bytes"
	"text/template"
)

// Fixed phrases the model is told to use. Callers and tests match on them.
const (
	MostRelevantPhrase = "The most relevant paper to read is"
	NotMentionedPhrase = "Not mentioned in these papers."
)

// synthesisPromptTmpl asks for a structured synthesis grounded only in the
// corpus. The corpus is embedded verbatim.
var synthesisPromptTmpl = template.Must(template.New("synthesis").Parse(`You are a Senior Biomedical Researcher. Do not fabricate information. If you are uncertain, state that the information is not available.
Use a heading for each task below, and never mention "provided abstracts" in your answer.

The following abstracts come from recent PubMed papers on one research topic. Perform these tasks:
1. Synthesize a summary of the findings based ONLY on these abstracts.
2. Identify the single most relevant paper for the reader. Begin with "{{.MostRelevant}}", then explain your choice in one sentence.
3. Provide a reference section with links to the papers cited.

Abstracts:
{{.Corpus}}
`))

// answerPromptTmpl asks a follow-up question scoped strictly to the corpus.
var answerPromptTmpl = template.Must(template.New("answer").Parse(`Answer the user's question based strictly on the abstracts below.
If the answer is not in the text, reply exactly "{{.NotMentioned}}"

Abstracts:
{{.Corpus}}

Question:
{{.Question}}
`))

type promptData struct {
	Corpus       string
	Question     string
	MostRelevant string
	NotMentioned string
}

func renderSynthesisPrompt(corpus string) (string, error) {
	return execute(synthesisPromptTmpl, promptData{Corpus: corpus, MostRelevant: MostRelevantPhrase})
}

func renderAnswerPrompt(corpus, question string) (string, error) {
	return execute(answerPromptTmpl, promptData{Corpus: corpus, Question: question, NotMentioned: NotMentionedPhrase})
}

func execute(tmpl *template.Template, data promptData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
