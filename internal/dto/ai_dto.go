package dto

type GenerateSnippetRequest struct {
	Description string `json:"description"`
	Language    string `json:"language"`
}

type GenerateSnippetResponse struct {
	Code string `json:"code"`
}

type ConvertCodeRequest struct {
	Code         string `json:"code"`
	FromLanguage string `json:"from_language"`
	ToLanguage   string `json:"to_language"`
}

type ConvertCodeResponse struct {
	Code string `json:"code"`
}

type ExplainCodeRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

type ExplainCodeResponse struct {
	Explanation string `json:"explanation"`
}
