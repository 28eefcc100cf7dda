package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractKeywordsBlankInput(t *testing.T) {
	assert.Empty(t, ExtractKeywords(""))
	assert.Empty(t, ExtractKeywords("   \t\n"))
}

func TestExtractKeywordsVocabulary(t *testing.T) {
	got := ExtractKeywords("We need react and docker experience, postgres a plus")

	assert.Contains(t, got, "react")
	assert.Contains(t, got, "docker")
	assert.Contains(t, got, "postgres")
}

func TestExtractKeywordsWordBoundary(t *testing.T) {
	// "reactive" must not match the "react" vocabulary entry.
	got := ExtractKeywords("reactive streams processing")
	assert.NotContains(t, got, "react")
}

func TestExtractKeywordsDottedVariants(t *testing.T) {
	got := ExtractKeywords("Experience with Next.js and Vue.js frameworks")

	assert.Contains(t, got, "next.js")
	assert.Contains(t, got, "vue.js")
}

func TestExtractKeywordsCapitalizedWords(t *testing.T) {
	got := ExtractKeywords("Familiarity with Terraform and Ansible required")

	assert.Contains(t, got, "terraform")
	assert.Contains(t, got, "ansible")
	// Stoplist words never surface even when capitalized.
	assert.NotContains(t, got, "and")
}

func TestExtractKeywordsDomainInjection(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"frontend title", "Frontend Engineer", []string{"frontend"}},
		{"backend title", "Backend Developer", []string{"backend"}},
		{"full stack title", "Full Stack Engineer", []string{"fullstack", "frontend", "backend"}},
		{"server hint", "Server side position", []string{"backend"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractKeywords(tt.text)
			for _, kw := range tt.want {
				assert.Contains(t, got, kw)
			}
		})
	}
}

func TestExtractKeywordsDeduplicates(t *testing.T) {
	got := ExtractKeywords("React react REACT React")

	count := 0
	for _, kw := range got {
		if kw == "react" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
