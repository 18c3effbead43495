package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/codehubhq/codehub-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFences(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain code", "plain code"},
		{"```go\nfunc main() {}\n```", "func main() {}"},
		{"```\nno language tag\n```", "no language tag"},
		{"  ```js\nconst x = 1\n```  ", "const x = 1"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, stripCodeFences(tc.in), "stripCodeFences(%q)", tc.in)
	}
}

func chatCompletionServer(t *testing.T, status int, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Contains(t, r.Header.Get("Authorization"), "Bearer ")

		w.WriteHeader(status)
		if status == http.StatusOK {
			resp := map[string]interface{}{
				"choices": []map[string]interface{}{
					{"message": map[string]string{"content": content}},
				},
			}
			require.NoError(t, json.NewEncoder(w).Encode(resp))
		}
	}))
}

func TestGenerateSnippetUsesPrimaryProvider(t *testing.T) {
	primary := chatCompletionServer(t, http.StatusOK, "```python\nprint('hi')\n```")
	defer primary.Close()

	svc := NewAIService(&config.Config{
		GLMAPIKey: "key",
		GLMAPIURL: primary.URL,
		GLMModel:  "glm-4-flash",
	})

	code, err := svc.GenerateSnippet("print hello", "python")
	require.NoError(t, err)
	assert.Equal(t, "print('hi')", code)
}

func TestGenerateSnippetFallsBackToSecondary(t *testing.T) {
	primary := chatCompletionServer(t, http.StatusInternalServerError, "")
	defer primary.Close()
	secondary := chatCompletionServer(t, http.StatusOK, "console.log('hi')")
	defer secondary.Close()

	svc := NewAIService(&config.Config{
		GLMAPIKey:      "key",
		GLMAPIURL:      primary.URL,
		GLMModel:       "glm-4-flash",
		DeepSeekAPIKey: "key2",
		DeepSeekAPIURL: secondary.URL,
		DeepSeekModel:  "deepseek-chat",
	})

	code, err := svc.GenerateSnippet("log hello", "")
	require.NoError(t, err)
	assert.Equal(t, "console.log('hi')", code)
}

func TestGenerateSnippetAllProvidersFail(t *testing.T) {
	primary := chatCompletionServer(t, http.StatusInternalServerError, "")
	defer primary.Close()

	svc := NewAIService(&config.Config{
		GLMAPIKey: "key",
		GLMAPIURL: primary.URL,
		GLMModel:  "glm-4-flash",
	})

	_, err := svc.GenerateSnippet("anything", "go")
	assert.ErrorIs(t, err, ErrProviderFailure)
}

func TestGenerateSnippetNoProvidersConfigured(t *testing.T) {
	svc := NewAIService(&config.Config{})

	_, err := svc.GenerateSnippet("anything", "go")
	assert.ErrorIs(t, err, ErrProviderFailure)
}

func TestConvertCodeValidation(t *testing.T) {
	svc := NewAIService(&config.Config{})

	_, err := svc.ConvertCode("", "js", "go")
	assert.Error(t, err)

	_, err = svc.ConvertCode("x = 1", "", "go")
	assert.Error(t, err)

	_, err = svc.ConvertCode("x = 1", "python", "")
	assert.Error(t, err)
}

func TestExplainCodeKeepsProse(t *testing.T) {
	server := chatCompletionServer(t, http.StatusOK, "This function adds two numbers.")
	defer server.Close()

	svc := NewAIService(&config.Config{
		GLMAPIKey: "key",
		GLMAPIURL: server.URL,
		GLMModel:  "glm-4-flash",
	})

	out, err := svc.ExplainCode("func add(a, b int) int { return a + b }", "go")
	require.NoError(t, err)
	assert.Equal(t, "This function adds two numbers.", out)
}
