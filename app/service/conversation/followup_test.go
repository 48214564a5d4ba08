package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The fixed refusal sentence is a contract callers rely on; it must be pinned
// verbatim in the prompt, never paraphrased.
func TestFollowupTemplateContract(t *testing.T) {
	assert.Contains(t, followupPromptTemplate, `reply exactly: "I don't know based on the summary."`)
	assert.Contains(t, followupPromptTemplate, "ONLY the provided summary and the chat_history")

	assert.Contains(t, followupPromptTemplate, "{{.chat_history}}")
	assert.Contains(t, followupPromptTemplate, "{{.summary}}")
	assert.Contains(t, followupPromptTemplate, "{{.question}}")
}

func TestTopicTemplateContract(t *testing.T) {
	assert.Contains(t, topicPromptTemplate, "Maximum 6 words.")
	assert.Contains(t, topicPromptTemplate, "{{.summary}}")
}

func TestAuthorTemplateContract(t *testing.T) {
	assert.Contains(t, authorPromptTemplate, "reply exactly: Unknown")
	assert.Contains(t, authorPromptTemplate, "{{.summary}}")
	assert.Contains(t, authorPromptTemplate, "{{.url}}")
}
