package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyQuestionMessage(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    QuestionOutcome
	}{
		{
			name:    "duplicate message",
			message: "Same type of question already exists",
			want:    OutcomeDuplicate,
		},
		{
			name:    "rejected message",
			message: "Provide a relevant Question",
			want:    OutcomeRejected,
		},
		{
			name:    "created message",
			message: "Question added successfully",
			want:    OutcomeCreated,
		},
		{
			name:    "unknown message treated as created",
			message: "Question processed",
			want:    OutcomeCreated,
		},
		{
			name:    "empty message treated as created",
			message: "",
			want:    OutcomeCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyQuestionMessage(tt.message))
		})
	}
}

func TestQuestionOutcome_String(t *testing.T) {
	assert.Equal(t, "created", OutcomeCreated.String())
	assert.Equal(t, "duplicate", OutcomeDuplicate.String())
	assert.Equal(t, "rejected", OutcomeRejected.String())
	assert.Equal(t, "unknown", QuestionOutcome(99).String())
}

func TestConversation_StatusLabel(t *testing.T) {
	c := Conversation{Processed: false}
	assert.Equal(t, "Pending", c.StatusLabel())

	c.Processed = true
	assert.Equal(t, "Processed", c.StatusLabel())
}

func TestProcessedConversation_Label(t *testing.T) {
	p := ProcessedConversation{
		DomainName:   "Support",
		Conversation: Conversation{Filename: "call_0412.txt"},
	}
	assert.Equal(t, "Support - call_0412.txt", p.Label())
}
